package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/vmss-tech/vmss-backend/internal/errors"
	"github.com/vmss-tech/vmss-backend/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

// WriteJSONError writes a {"error": msg} body with the given status code.
func WriteJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(errorResponse{Error: message}); err != nil {
		logger.Log.Error("failed to write error response", "error", err)
	}
}

// WriteErrorAndStatusCode maps an error to its HTTP representation.
// Errors without a carried status code are internal failures: they are
// logged server-side and surfaced as a generic 500 so provider detail
// never leaks to the caller.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	if e, ok := err.(*errors.ErrorWithStatusCode); ok {
		WriteJSONError(w, e.Message, e.StatusCode)
		return
	}
	logger.Log.Error("unhandled error", "error", err)
	WriteJSONError(w, "Server error", http.StatusInternalServerError)
}

// DecodeValidate decodes a JSON body and checks validator struct tags.
func DecodeValidate(r io.Reader, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("invalid request body", "error", err)
		return errors.NewValidation("Body is invalid json")
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		logger.Log.Debug("request validation failed", "error", err)
		return errors.NewValidation("Required fields missing or invalid")
	}
	return nil
}
