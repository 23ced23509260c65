package render

import "fmt"

// Render error codes
const (
	ErrCodeColumnMismatch = "COLUMN_MISMATCH"
	ErrCodeAssetMissing   = "ASSET_MISSING"
	ErrCodeEncodeFailed   = "ENCODE_FAILED"
	ErrCodeArchiveFailed  = "ARCHIVE_FAILED"
)

// RenderError carries a stable code for the interfaces layer plus the
// underlying cause for logs.
type RenderError struct {
	Code    string
	Message string
	Cause   error
}

// Error implements the error interface
func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the cause for errors.Is/As chains
func (e *RenderError) Unwrap() error {
	return e.Cause
}

// NewRenderError creates a RenderError with the given code and message
func NewRenderError(code, message string, cause error) *RenderError {
	return &RenderError{Code: code, Message: message, Cause: cause}
}
