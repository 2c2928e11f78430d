package errors

// ErrorCode is a machine-readable error code.
type ErrorCode string

// Input errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidFormat indicates a field has an invalid format.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// Configuration and internal errors
const (
	// ErrCodeConfiguration indicates the client configuration cannot be used.
	ErrCodeConfiguration ErrorCode = "CONFIGURATION_ERROR"
	// ErrCodeInternal indicates an unexpected local failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
