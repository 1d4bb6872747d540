package errors

import (
	"errors"
	"net/http"
	"strings"
)

var (
	// ErrUserAlreadyExists is returned when signing up with a taken username.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// ErrInvalidToken is returned for invalid, expired or revoked tokens.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrContentNotFound is returned when content is absent or owned by someone else.
	ErrContentNotFound = errors.New("content not found")
	// ErrFileNotFound is returned when content has no stored file.
	ErrFileNotFound = errors.New("file not found")
	// ErrLinkNotFound is returned when a share hash does not resolve.
	ErrLinkNotFound = errors.New("input is invalid")
	// ErrShareTokenExhausted is returned when no unused share hash could be generated.
	ErrShareTokenExhausted = errors.New("failed to generate unique share link")

	// ErrMissingRequiredField is the kind of a ValidationError for absent fields.
	ErrMissingRequiredField = errors.New("missing required field")
	// ErrInvalidType is returned for content types outside the enumeration.
	ErrInvalidType = errors.New("invalid content type")
	// ErrFileTooLarge is returned when an upload exceeds the size limit.
	ErrFileTooLarge = errors.New("file too large")
	// ErrInvalidFileType is returned when an upload is not an allowed document type.
	ErrInvalidFileType = errors.New("invalid file type")
	// ErrInvalidLink is returned when a link is not an absolute http(s) URL.
	ErrInvalidLink = errors.New("invalid link")
	// ErrInvalidContentID is returned when a content id cannot be parsed.
	ErrInvalidContentID = errors.New("invalid content id")
	// ErrTitleTooLong is returned when a title exceeds 255 characters.
	ErrTitleTooLong = errors.New("title too long")
	// ErrPasswordTooLong is returned when a password exceeds bcrypt's 72 byte input limit.
	ErrPasswordTooLong = errors.New("password too long")
)

// ValidationError describes a rejected content submission.
type ValidationError struct {
	Kind    error
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if len(e.Fields) > 0 {
		return e.Kind.Error() + ": " + strings.Join(e.Fields, ", ")
	}
	return e.Kind.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// NewValidationError creates a ValidationError of the given kind.
func NewValidationError(kind error, message string, fields ...string) *ValidationError {
	return &ValidationError{Kind: kind, Fields: fields, Message: message}
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Code    string   `json:"code"`
	Fields  []string `json:"fields,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Fields     []string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Success: false,
		Message: e.Message,
		Code:    e.Code,
		Fields:  e.Fields,
	}
}

// IsInternal reports whether the error maps to a 500 response.
func (e *HTTPError) IsInternal() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

var validationCodes = []struct {
	kind error
	code string
}{
	{ErrMissingRequiredField, "MISSING_REQUIRED_FIELD"},
	{ErrInvalidType, "INVALID_TYPE"},
	{ErrFileTooLarge, "FILE_TOO_LARGE"},
	{ErrInvalidFileType, "INVALID_FILE_TYPE"},
	{ErrInvalidLink, "INVALID_LINK"},
	{ErrInvalidContentID, "INVALID_CONTENT_ID"},
	{ErrTitleTooLong, "TITLE_TOO_LONG"},
	{ErrPasswordTooLong, "PASSWORD_TOO_LONG"},
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var verr *ValidationError
	if errors.As(err, &verr) {
		httpErr := NewHTTPError(http.StatusBadRequest, verr.Error(), "VALIDATION_ERROR")
		httpErr.Fields = verr.Fields
		for _, vc := range validationCodes {
			if errors.Is(verr.Kind, vc.kind) {
				httpErr.Code = vc.code
				break
			}
		}
		return httpErr
	}
	for _, vc := range validationCodes {
		if errors.Is(err, vc.kind) {
			return NewHTTPError(http.StatusBadRequest, vc.kind.Error(), vc.code)
		}
	}

	switch {
	case errors.Is(err, ErrUserAlreadyExists):
		return NewHTTPError(http.StatusForbidden, ErrUserAlreadyExists.Error(), "USER_ALREADY_EXISTS")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusForbidden, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusForbidden, ErrInvalidToken.Error(), "INVALID_TOKEN")
	case errors.Is(err, ErrContentNotFound):
		return NewHTTPError(http.StatusNotFound, ErrContentNotFound.Error(), "CONTENT_NOT_FOUND")
	case errors.Is(err, ErrFileNotFound):
		return NewHTTPError(http.StatusNotFound, ErrFileNotFound.Error(), "FILE_NOT_FOUND")
	case errors.Is(err, ErrLinkNotFound):
		return NewHTTPError(http.StatusLengthRequired, ErrLinkNotFound.Error(), "LINK_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
