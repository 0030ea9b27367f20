package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filebox/service/internal/apperr"
)

func TestFromErrorMapsKinds(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{apperr.New(apperr.KindUnauthenticated, "Unauthorized"), http.StatusUnauthorized, "unauthenticated"},
		{apperr.New(apperr.KindValidationFailed, "Missing name"), http.StatusBadRequest, "validation_failed"},
		{apperr.New(apperr.KindInvalidParent, "Parent not found"), http.StatusBadRequest, "invalid_parent"},
		{apperr.New(apperr.KindNotFound, "Not found"), http.StatusNotFound, "not_found"},
		{apperr.New(apperr.KindNoContent, "A folder doesn't have content"), http.StatusBadRequest, "no_content"},
		{apperr.New(apperr.KindContentMissing, "Not found"), http.StatusNotFound, "content_missing"},
		{apperr.New(apperr.KindAlreadyExists, "Already exist"), http.StatusBadRequest, "already_exists"},
		{apperr.New(apperr.KindDependencyUnavailable, "session store unavailable"), http.StatusServiceUnavailable, "dependency_unavailable"},
		{errors.New("raw backend error"), http.StatusInternalServerError, "internal"},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		FromError(rec, tc.err)
		assert.Equal(t, tc.status, rec.Code)

		var envelope Envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		require.NotNil(t, envelope.Error)
		assert.False(t, envelope.Success)
		assert.Equal(t, tc.code, envelope.Error.Code)
	}
}

func TestFromErrorNeverLeaksCause(t *testing.T) {
	cause := errors.New("pq: password authentication failed for user")
	rec := httptest.NewRecorder()
	FromError(rec, fmt.Errorf("create account: %w", cause))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password authentication")
}

func TestOKEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	OK(rec, map[string]string{"token": "abc"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var envelope Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Nil(t, envelope.Error)
}
