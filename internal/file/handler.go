package file

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/filebox/service/internal/middleware"
	"github.com/filebox/service/internal/response"
)

// Handler holds HTTP handlers for file endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new file Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// parentID accepts both the JSON number 0 and a string id, since the
// original clients send parentId: 0 for root.
type parentID string

func (p *parentID) UnmarshalJSON(b []byte) error {
	trimmed := strings.Trim(string(b), `"`)
	if trimmed == "null" {
		trimmed = ""
	}
	*p = parentID(trimmed)
	return nil
}

type uploadRequest struct {
	Name     string   `json:"name"     example:"a.txt"`
	Type     string   `json:"type"     example:"file"`
	IsPublic bool     `json:"isPublic" example:"false"`
	ParentID parentID `json:"parentId" swaggertype:"string" example:"0"`
	Data     string   `json:"data"     example:"aGVsbG8="`
}

// fileBody is the external projection of a FileNode. The storage key is
// never exposed.
type fileBody struct {
	ID       string `json:"id"       example:"58c70352-8eb9-467c-a9ad-69ba80f6d6f1"`
	UserID   string `json:"userId"   example:"e7eedc79-0707-4fe4-8734-526b7ef13a7b"`
	Name     string `json:"name"     example:"a.txt"`
	Type     string `json:"type"     example:"file"`
	IsPublic bool   `json:"isPublic" example:"false"`
	ParentID string `json:"parentId" example:"0"`
}

func project(node *FileNode) fileBody {
	return fileBody{
		ID:       node.ID,
		UserID:   node.OwnerID,
		Name:     node.Name,
		Type:     string(node.Kind),
		IsPublic: node.IsPublic,
		ParentID: node.Parent.External(),
	}
}

// Upload godoc
//
//	@Summary		Create a file, folder, or image
//	@Description	Creates a node under the given parent (0 for root). File and image kinds carry base64-encoded content; images additionally get a thumbnail job dispatched.
//	@Tags			files
//	@Accept			json
//	@Produce		json
//	@Param			X-Token	header		string			true	"Session token"
//	@Param			request	body		uploadRequest	true	"Node to create"
//	@Success		201		{object}	response.Envelope{data=fileBody}
//	@Failure		400		{object}	response.Envelope
//	@Failure		401		{object}	response.Envelope
//	@Failure		503		{object}	response.Envelope
//	@Router			/files [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountID(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	kind, ok := ParseKind(req.Type)
	if !ok {
		response.BadRequest(w, "Missing type")
		return
	}

	var data []byte
	if req.Data != "" {
		decoded, err := base64.StdEncoding.DecodeString(req.Data)
		if err != nil {
			response.BadRequest(w, "data must be base64-encoded")
			return
		}
		data = decoded
	}

	node, err := h.svc.Create(r.Context(), CreateParams{
		OwnerID:  accountID,
		Name:     req.Name,
		Kind:     kind,
		IsPublic: req.IsPublic,
		Parent:   ParseParentRef(string(req.ParentID)),
		Data:     data,
	})
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, project(node))
}

// Show godoc
//
//	@Summary		Get file metadata
//	@Description	Returns the node when the requester owns it or it is public.
//	@Tags			files
//	@Produce		json
//	@Param			X-Token	header		string	true	"Session token"
//	@Param			id		path		string	true	"File id"
//	@Success		200		{object}	response.Envelope{data=fileBody}
//	@Failure		401		{object}	response.Envelope
//	@Failure		404		{object}	response.Envelope
//	@Router			/files/{id} [get]
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountID(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	node, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"), accountID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, project(node))
}

// List godoc
//
//	@Summary		List files
//	@Description	Lists the requester's nodes under parentId (0 or absent for root), 20 per page. Pages past the end are empty.
//	@Tags			files
//	@Produce		json
//	@Param			X-Token		header		string	true	"Session token"
//	@Param			parentId	query		string	false	"Parent folder id, 0 for root"
//	@Param			page		query		int		false	"Zero-based page"
//	@Success		200			{object}	response.Envelope{data=[]fileBody}
//	@Failure		401			{object}	response.Envelope
//	@Router			/files [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountID(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		page = 0
	}

	nodes, err := h.svc.List(r.Context(), accountID, ParseParentRef(r.URL.Query().Get("parentId")), page)
	if err != nil {
		response.FromError(w, err)
		return
	}

	bodies := make([]fileBody, 0, len(nodes))
	for _, node := range nodes {
		bodies = append(bodies, project(node))
	}
	response.OK(w, bodies)
}

// Publish godoc
//
//	@Summary		Make a file public
//	@Description	Sets isPublic=true. Owner only; idempotent.
//	@Tags			files
//	@Produce		json
//	@Param			X-Token	header		string	true	"Session token"
//	@Param			id		path		string	true	"File id"
//	@Success		200		{object}	response.Envelope{data=fileBody}
//	@Failure		401		{object}	response.Envelope
//	@Failure		404		{object}	response.Envelope
//	@Router			/files/{id}/publish [put]
func (h *Handler) Publish(w http.ResponseWriter, r *http.Request) {
	h.setVisibility(w, r, true)
}

// Unpublish godoc
//
//	@Summary		Make a file private
//	@Description	Sets isPublic=false. Owner only; idempotent.
//	@Tags			files
//	@Produce		json
//	@Param			X-Token	header		string	true	"Session token"
//	@Param			id		path		string	true	"File id"
//	@Success		200		{object}	response.Envelope{data=fileBody}
//	@Failure		401		{object}	response.Envelope
//	@Failure		404		{object}	response.Envelope
//	@Router			/files/{id}/unpublish [put]
func (h *Handler) Unpublish(w http.ResponseWriter, r *http.Request) {
	h.setVisibility(w, r, false)
}

func (h *Handler) setVisibility(w http.ResponseWriter, r *http.Request, isPublic bool) {
	accountID, ok := middleware.AccountID(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	node, err := h.svc.SetVisibility(r.Context(), chi.URLParam(r, "id"), accountID, isPublic)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, project(node))
}

// Data godoc
//
//	@Summary		Download file content
//	@Description	Streams the content bytes with a Content-Type derived from the file name. Folders have no content.
//	@Tags			files
//	@Produce		octet-stream
//	@Param			X-Token	header		string	true	"Session token"
//	@Param			id		path		string	true	"File id"
//	@Success		200		{string}	binary	"raw content"
//	@Failure		400		{object}	response.Envelope
//	@Failure		401		{object}	response.Envelope
//	@Failure		404		{object}	response.Envelope
//	@Router			/files/{id}/data [get]
func (h *Handler) Data(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountID(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	rc, node, err := h.svc.Data(r.Context(), chi.URLParam(r, "id"), accountID)
	if err != nil {
		response.FromError(w, err)
		return
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(filepath.Ext(node.Name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	// Headers are already written; a copy error here only aborts the stream.
	_, _ = io.Copy(w, rc)
}
