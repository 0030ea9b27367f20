// Package response provides shared JSON response helpers for HTTP handlers.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/filebox/service/internal/apperr"
)

// Envelope is the standard API response envelope.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
}

// ErrorBody is the serialized form of a failure: a stable machine-readable
// code plus a human-readable message. Internal identifiers and storage
// locators never appear here.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// JSON writes a JSON-encoded payload with the given HTTP status code.
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// OK writes a 200 response with data.
func OK(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, Envelope{Success: true, Data: data})
}

// Created writes a 201 response with data.
func Created(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusCreated, Envelope{Success: true, Data: data})
}

// NoContent writes an empty 204 response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error writes an error response with the given status, code, and message.
func Error(w http.ResponseWriter, status int, code, message string) {
	JSON(w, status, Envelope{Success: false, Error: &ErrorBody{Code: code, Message: message}})
}

// BadRequest writes a 400 response with the validation_failed code.
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, string(apperr.KindValidationFailed), message)
}

// Unauthorized writes a 401 response.
func Unauthorized(w http.ResponseWriter, message string) {
	Error(w, http.StatusUnauthorized, string(apperr.KindUnauthenticated), message)
}

// NotFound writes a 404 response.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, string(apperr.KindNotFound), message)
}

// InternalError writes a 500 response with a generic message.
func InternalError(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, string(apperr.KindInternal), "internal server error")
}

// statusByKind maps every stable error kind to its HTTP status.
var statusByKind = map[apperr.Kind]int{
	apperr.KindUnauthenticated:       http.StatusUnauthorized,
	apperr.KindValidationFailed:      http.StatusBadRequest,
	apperr.KindInvalidParent:         http.StatusBadRequest,
	apperr.KindNoContent:             http.StatusBadRequest,
	apperr.KindAlreadyExists:         http.StatusBadRequest,
	apperr.KindNotFound:              http.StatusNotFound,
	apperr.KindContentMissing:        http.StatusNotFound,
	apperr.KindDependencyUnavailable: http.StatusServiceUnavailable,
}

// FromError maps a service error to its HTTP representation. Unclassified
// errors become a generic 500.
func FromError(w http.ResponseWriter, err error) {
	kind := apperr.KindOf(err)
	status, ok := statusByKind[kind]
	if !ok {
		InternalError(w)
		return
	}
	Error(w, status, string(kind), apperr.MessageOf(err))
}
