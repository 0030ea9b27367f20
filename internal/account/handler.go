package account

import (
	"encoding/json"
	"net/http"

	"github.com/filebox/service/internal/middleware"
	"github.com/filebox/service/internal/response"
)

// Handler holds HTTP handlers for account endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new account Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type registerRequest struct {
	Email    string `json:"email"    example:"alice@example.com"`
	Password string `json:"password" example:"secret"`
}

// accountBody is the external projection of an account. The password hash
// is never exposed.
type accountBody struct {
	ID    string `json:"id"    example:"e7eedc79-0707-4fe4-8734-526b7ef13a7b"`
	Email string `json:"email" example:"alice@example.com"`
}

// Register godoc
//
//	@Summary		Register account
//	@Description	Create a new account with email and password. The email must be unique.
//	@Tags			accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		registerRequest	true	"Credentials"
//	@Success		201		{object}	response.Envelope{data=accountBody}
//	@Failure		400		{object}	response.Envelope
//	@Failure		500		{object}	response.Envelope
//	@Router			/users [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	a, err := h.svc.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, accountBody{ID: a.ID, Email: a.Email})
}

// Me godoc
//
//	@Summary		Get current account
//	@Description	Returns the account associated with the session token.
//	@Tags			accounts
//	@Produce		json
//	@Param			X-Token	header		string	true	"Session token"
//	@Success		200		{object}	response.Envelope{data=accountBody}
//	@Failure		401		{object}	response.Envelope
//	@Failure		500		{object}	response.Envelope
//	@Router			/users/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountID(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	a, err := h.svc.GetByID(r.Context(), accountID)
	if err != nil {
		// The token resolved but the account is gone; treat as a stale
		// session rather than leaking a not-found distinction.
		if h.svc.IsNotFound(err) {
			response.Unauthorized(w, "Unauthorized")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, accountBody{ID: a.ID, Email: a.Email})
}
