// SPDX-License-Identifier: MIT

package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/katalvlaran/graphd/engine"
)

// statusFor maps engine errors to HTTP status codes.
func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, engine.ErrVertexNotFound):
		return http.StatusNotFound
	case errors.Is(err, engine.ErrVertexExists):
		return http.StatusConflict
	case errors.Is(err, engine.ErrNoPath), errors.Is(err, engine.ErrNotEulerian):
		return http.StatusUnprocessableEntity
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, engine.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.l.Warn("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

// fail writes err with the status statusFor picks. Unexpected errors are
// logged and reported without detail.
func (s *Server) fail(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.l.Error("request failed", zap.Error(err))
		s.writeError(w, status, http.StatusText(status))
		return
	}
	s.writeError(w, status, err.Error())
}
