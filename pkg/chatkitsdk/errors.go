package chatkitsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error codes shared between the server handlers and this client.
const (
	ErrorCodeInvalidRequest    = "invalid_request"
	ErrorCodeUnauthenticated   = "unauthenticated"
	ErrorCodeNotFound          = "not_found"
	ErrorCodePayloadTooLarge   = "payload_too_large"
	ErrorCodeConversationTaken = "conversation_taken"
	ErrorCodeServerError       = "server_error"
	ErrorCodeRateLimited       = "rate_limit_exceeded"
)

// APIError is the JSON error envelope every chatkit endpoint uses. It
// implements error so the SDK can return server failures directly, and
// handlers use it to write responses, keeping the wire shape in one place.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the snake_case error code (e.g. "invalid_request")
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer. Token and
// conversation responses must never be cached, so errors aren't either.
func (e *APIError) WriteError(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

// ErrorResponse is the wire shape of an error body.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

var (
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	ErrInvalidJSONBody = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "request body is not valid JSON",
	}

	ErrInvalidContentType = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "expected application/json content type",
	}

	ErrUnauthenticated = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeUnauthenticated,
		Description: "authentication is required or has failed",
	}

	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "the requested resource does not exist",
	}

	ErrPayloadTooLarge = &APIError{
		StatusCode:  http.StatusRequestEntityTooLarge,
		Code:        ErrorCodePayloadTooLarge,
		Description: "conversation payload exceeds the size limit",
	}

	ErrConversationTaken = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeConversationTaken,
		Description: "conversation id belongs to another user",
	}

	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "an unexpected server error occurred",
	}
)

// parseAPIError decodes an error body from resp into an *APIError, falling
// back to a generic error when the body isn't the standard envelope.
func parseAPIError(statusCode int, body []byte) *APIError {
	var er ErrorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Error != "" {
		return &APIError{StatusCode: statusCode, Code: er.Error, Description: er.ErrorDescription}
	}
	// Bearer middleware 401s carry only a WWW-Authenticate header, no body.
	if statusCode == http.StatusUnauthorized {
		return &APIError{
			StatusCode:  statusCode,
			Code:        ErrorCodeUnauthenticated,
			Description: "authentication is required or has failed",
		}
	}
	return &APIError{
		StatusCode:  statusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("unexpected response (status %d)", statusCode),
	}
}
