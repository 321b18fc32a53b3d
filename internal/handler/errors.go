package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"socialCPT/internal/apperror"
	"socialCPT/internal/service"
)

const GenericErrorMessage = "An unexpected error occurred. Please try again later."

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Path      string `json:"path"`
	Timestamp string `json:"timestamp"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

func WriteError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	writeJSON(w, statusCode, ErrorResponse{
		Status:    statusCode,
		Error:     http.StatusText(statusCode),
		Message:   message,
		Path:      r.URL.Path,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeAppError is the single place where domain errors become HTTP statuses.
// Unknown errors are logged and answered with a generic message.
func (h *Handlers) writeAppError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := apperror.Message(err)

	switch {
	case errors.Is(err, apperror.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperror.ErrUnauthorized), errors.Is(err, apperror.ErrMalformedToken):
		status = http.StatusUnauthorized
	case errors.Is(err, apperror.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, apperror.ErrValidation), errors.Is(err, apperror.ErrSelfFollow):
		status = http.StatusBadRequest
	case errors.Is(err, apperror.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, service.ErrStorageDisabled):
		status = http.StatusServiceUnavailable
		message = "Image storage is not available"
	}

	fields := logrus.Fields{"method": r.Method, "path": r.URL.Path, "status": status}
	switch {
	case status == http.StatusInternalServerError:
		fields["error"] = err.Error()
		h.Log.WithFields(fields).Error("Request failed")
		message = GenericErrorMessage
	case status == http.StatusForbidden || errors.Is(err, apperror.ErrSelfFollow):
		h.Log.WithFields(fields).Warn(message)
	}

	if message == "" {
		message = http.StatusText(status)
	}

	WriteError(w, r, status, message)
}

// decodeAndValidate reads a JSON body into dst and runs struct validation.
// It writes the 400 response itself and reports whether the caller may go on.
func (h *Handlers) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteError(w, r, http.StatusBadRequest, "Invalid request body")
		return false
	}

	if err := h.Validate.Struct(dst); err != nil {
		WriteError(w, r, http.StatusBadRequest, validationMessage(err))
		return false
	}

	return true
}

func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "Invalid request data"
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "url", "optional_url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
