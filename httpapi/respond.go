package httpapi

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"chat-core/errors"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError maps the error taxonomy onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case stderrors.Is(err, errors.ErrInvalidCredentials),
		stderrors.Is(err, errors.ErrTokenExpired),
		stderrors.Is(err, errors.ErrTokenMalformed),
		stderrors.Is(err, errors.ErrMissingBearer):
		writeError(w, http.StatusUnauthorized, err.Error())
	case stderrors.Is(err, errors.ErrNotParticipant):
		writeError(w, http.StatusForbidden, err.Error())
	case stderrors.Is(err, errors.ErrUserNotFound),
		stderrors.Is(err, errors.ErrConversationNotFound),
		stderrors.Is(err, errors.ErrRequestNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case stderrors.Is(err, errors.ErrUserAlreadyExists):
		writeError(w, http.StatusConflict, err.Error())
	case stderrors.Is(err, errors.ErrInvalidPassword):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
