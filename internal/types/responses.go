package types

import "time"

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ErrorResponse is the envelope returned by every failed request.
// Successful requests return the bare resource.
type ErrorResponse struct {
	Success   bool     `json:"success"`
	Message   string   `json:"message"`
	ErrorCode string   `json:"error_code,omitempty"`
	Details   []string `json:"details,omitempty"`
	Timestamp string   `json:"timestamp"`
}

// Error codes surfaced in ErrorResponse.ErrorCode.
const (
	CodeValidationError   = "VALIDATION_ERROR"
	CodeNoUpdateFields    = "NO_UPDATE_FIELDS"
	CodeUserAlreadyExists = "USER_ALREADY_EXISTS"
	CodeInvalidCreds      = "INVALID_CREDENTIALS"
	CodeTokenMissing      = "AUTH_TOKEN_MISSING"
	CodeTokenInvalid      = "AUTH_TOKEN_INVALID"
	CodeUserNotFound      = "AUTH_USER_NOT_FOUND"
	CodeForbidden         = "FORBIDDEN"
	CodeNotFound          = "NOT_FOUND"
	CodeInternalError     = "INTERNAL_ERROR"
)
