package auth

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/filebox/service/internal/middleware"
	"github.com/filebox/service/internal/response"
)

// Handler holds HTTP handlers for the connect/disconnect endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new auth Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type tokenData struct {
	Token string `json:"token" example:"031bffac-3edc-4e51-a39b-7f2a298a9cd7"`
}

// Connect godoc
//
//	@Summary		Login
//	@Description	Verify HTTP Basic credentials (base64 "email:password") and return a fresh 24h session token.
//	@Tags			auth
//	@Produce		json
//	@Param			Authorization	header		string	true	"Basic credentials"
//	@Success		200				{object}	response.Envelope{data=tokenData}
//	@Failure		401				{object}	response.Envelope
//	@Failure		503				{object}	response.Envelope
//	@Router			/connect [get]
func (h *Handler) Connect(w http.ResponseWriter, r *http.Request) {
	email, password, ok := basicCredentials(r.Header.Get("Authorization"))
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	token, err := h.svc.Connect(r.Context(), email, password)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, tokenData{Token: token})
}

// Disconnect godoc
//
//	@Summary		Logout
//	@Description	Revoke the session token. The token is unusable afterward.
//	@Tags			auth
//	@Produce		json
//	@Param			X-Token	header	string	true	"Session token"
//	@Success		204
//	@Failure		401	{object}	response.Envelope
//	@Failure		503	{object}	response.Envelope
//	@Router			/disconnect [get]
func (h *Handler) Disconnect(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.Token(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	if err := h.svc.Disconnect(r.Context(), token); err != nil {
		response.FromError(w, err)
		return
	}

	response.NoContent(w)
}

// basicCredentials decodes an "Authorization: Basic base64(email:password)"
// header. Malformed input yields ok=false, never an error.
func basicCredentials(header string) (email, password string, ok bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Basic" {
		return "", "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", "", false
	}
	email, password, ok = strings.Cut(string(decoded), ":")
	if !ok || email == "" || password == "" {
		return "", "", false
	}
	return email, password, true
}
