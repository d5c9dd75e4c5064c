package api

import (
	"encoding/json"
	"net/http"

	"github.com/narravis/narravis/pkg/errors"
)

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	respondJSON(w, statusFor(code), errorResponse{
		Error: errorBody{
			Code:      string(code),
			Message:   errors.UserMessage(err),
			RequestID: RequestID(r.Context()),
		},
	})
}

// statusFor maps structured error codes to HTTP statuses. Unknown codes are
// treated as internal faults.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidArchetype,
		errors.ErrCodeInvalidConfig,
		errors.ErrCodeInvalidDocument,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound,
		errors.ErrCodeLayoutNotFound,
		errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
