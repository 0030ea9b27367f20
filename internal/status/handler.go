// Package status reports liveness of the backing stores and basic counters.
package status

import (
	"context"
	"net/http"

	"github.com/filebox/service/internal/account"
	"github.com/filebox/service/internal/file"
	"github.com/filebox/service/internal/response"
	"github.com/filebox/service/internal/session"
)

// Pinger reports backend liveness. *pgxpool.Pool satisfies it directly.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler serves the /status and /stats endpoints.
type Handler struct {
	sessions session.Store
	db       Pinger
	accounts *account.Service
	files    *file.Service
}

// NewHandler creates a new status Handler.
func NewHandler(sessions session.Store, db Pinger, accounts *account.Service, files *file.Service) *Handler {
	return &Handler{sessions: sessions, db: db, accounts: accounts, files: files}
}

type statusBody struct {
	Redis bool `json:"redis" example:"true"`
	DB    bool `json:"db"    example:"true"`
}

type statsBody struct {
	Users int64 `json:"users" example:"12"`
	Files int64 `json:"files" example:"1231"`
}

// Status godoc
//
//	@Summary		Backend liveness
//	@Description	Reports whether the session store and the database are reachable. 503 when either is down.
//	@Tags			status
//	@Produce		json
//	@Success		200	{object}	statusBody
//	@Failure		503	{object}	statusBody
//	@Router			/status [get]
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	body := statusBody{
		Redis: h.sessions.Ping(r.Context()) == nil,
		DB:    h.db.Ping(r.Context()) == nil,
	}
	code := http.StatusOK
	if !body.Redis || !body.DB {
		code = http.StatusServiceUnavailable
	}
	response.JSON(w, code, body)
}

// Stats godoc
//
//	@Summary		Counters
//	@Description	Returns the number of registered accounts and stored file nodes.
//	@Tags			status
//	@Produce		json
//	@Success		200	{object}	statsBody
//	@Failure		500	{object}	response.Envelope
//	@Router			/stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	users, err := h.accounts.Count(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}
	files, err := h.files.Count(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}
	response.JSON(w, http.StatusOK, statsBody{Users: users, Files: files})
}
