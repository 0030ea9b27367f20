package file

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filebox/service/internal/middleware"
	"github.com/filebox/service/internal/response"
	"github.com/filebox/service/internal/session"
	"github.com/filebox/service/internal/storage"
)

func newTestRouter(t *testing.T) (http.Handler, session.Store) {
	t.Helper()

	store, err := storage.NewDiskStorage(t.TempDir())
	require.NoError(t, err)
	svc := NewService(NewMemoryRepository(), store, &stubDispatcher{})
	handler := NewHandler(svc)
	sessions := session.NewMemoryStore(time.Hour)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(sessions))
		r.Post("/files", handler.Upload)
		r.Get("/files", handler.List)
		r.Get("/files/{id}", handler.Show)
		r.Put("/files/{id}/publish", handler.Publish)
		r.Put("/files/{id}/unpublish", handler.Unpublish)
		r.Get("/files/{id}/data", handler.Data)
	})
	return r, sessions
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("X-Token", token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeFile(t *testing.T, rec *httptest.ResponseRecorder) fileBody {
	t.Helper()
	var envelope struct {
		Success bool     `json:"success"`
		Data    fileBody `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.True(t, envelope.Success)
	return envelope.Data
}

func TestHandler_UploadFolderThenFile(t *testing.T) {
	router, sessions := newTestRouter(t)
	token, err := sessions.Issue(context.Background(), "alice")
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodPost, "/files", token, map[string]interface{}{
		"name": "docs", "type": "folder",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	folder := decodeFile(t, rec)
	assert.Equal(t, "0", folder.ParentID)
	assert.Equal(t, "folder", folder.Type)

	rec = doJSON(t, router, http.MethodPost, "/files", token, map[string]interface{}{
		"name":     "a.txt",
		"type":     "file",
		"parentId": folder.ID,
		"data":     base64.StdEncoding.EncodeToString([]byte("hello")),
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	file := decodeFile(t, rec)
	assert.Equal(t, folder.ID, file.ParentID)
	assert.Equal(t, "alice", file.UserID)

	rec = doJSON(t, router, http.MethodGet, "/files/"+file.ID+"/data", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello", rec.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestHandler_UploadAcceptsNumericRootParent(t *testing.T) {
	router, sessions := newTestRouter(t)
	token, err := sessions.Issue(context.Background(), "alice")
	require.NoError(t, err)

	// The original clients send parentId: 0 as a JSON number.
	rec := doJSON(t, router, http.MethodPost, "/files", token, map[string]interface{}{
		"name": "docs", "type": "folder", "parentId": 0,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "0", decodeFile(t, rec).ParentID)
}

func TestHandler_UploadRejectsBadBase64(t *testing.T) {
	router, sessions := newTestRouter(t)
	token, err := sessions.Issue(context.Background(), "alice")
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodPost, "/files", token, map[string]interface{}{
		"name": "a.txt", "type": "file", "data": "not base64!!!",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_RequiresToken(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/files", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/files", "bogus-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_PublishFlowAcrossAccounts(t *testing.T) {
	router, sessions := newTestRouter(t)
	ctx := context.Background()
	aliceToken, err := sessions.Issue(ctx, "alice")
	require.NoError(t, err)
	bobToken, err := sessions.Issue(ctx, "bob")
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodPost, "/files", aliceToken, map[string]interface{}{
		"name": "a.txt", "type": "file",
		"data": base64.StdEncoding.EncodeToString([]byte("hi")),
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	file := decodeFile(t, rec)

	rec = doJSON(t, router, http.MethodGet, "/files/"+file.ID, bobToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/files/"+file.ID+"/publish", aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeFile(t, rec).IsPublic)

	rec = doJSON(t, router, http.MethodGet, "/files/"+file.ID, bobToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/files/"+file.ID+"/unpublish", aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decodeFile(t, rec).IsPublic)

	rec = doJSON(t, router, http.MethodGet, "/files/"+file.ID, bobToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_InvalidParentError(t *testing.T) {
	router, sessions := newTestRouter(t)
	token, err := sessions.Issue(context.Background(), "alice")
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodPost, "/files", token, map[string]interface{}{
		"name": "a.txt", "type": "file",
		"data": base64.StdEncoding.EncodeToString([]byte("x")),
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	leaf := decodeFile(t, rec)

	rec = doJSON(t, router, http.MethodPost, "/files", token, map[string]interface{}{
		"name": "b.txt", "type": "file", "parentId": leaf.ID,
		"data": base64.StdEncoding.EncodeToString([]byte("x")),
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "invalid_parent", envelope.Error.Code)
}
