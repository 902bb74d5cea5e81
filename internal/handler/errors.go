package handler

import (
	"errors"
	"net/http"

	"docshelf/internal/domain"
	"docshelf/internal/httputil"
)

// handleError converts domain errors to HTTP responses. Adapter failures are
// reported generically, never as raw internals.
func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrNotEmpty):
		httputil.RespondError(w, http.StatusConflict, err.Error())
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}
