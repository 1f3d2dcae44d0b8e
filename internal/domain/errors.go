package domain

import (
	"errors"
	"fmt"

	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/domain/entity"
)

// Sentinel domain errors.
var (
	// ErrNotFound resource does not exist
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidInput invalid input
	ErrInvalidInput = errors.New("invalid input")
	// ErrChatService chat orchestration failure
	ErrChatService = errors.New("chat service error")
	// ErrInternal internal error
	ErrInternal = errors.New("internal error")
)

// DomainError carries an error code and a user-facing message.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface (for logs and internal wrapping).
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// UserMessage returns the message shown to API clients.
func (e *DomainError) UserMessage() string {
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a resource-not-found error.
func NewNotFoundError(resourceType, name string) error {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s '%s' not found", resourceType, name),
		Err:     ErrNotFound,
	}
}

// NewInvalidInputError creates an invalid-input error.
func NewInvalidInputError(message string) error {
	return &DomainError{
		Code:    "INVALID_INPUT",
		Message: message,
		Err:     ErrInvalidInput,
	}
}

// NewChatServiceError wraps any failure of the chat orchestration into
// a single descriptive error. The underlying message is embedded and
// surfaced to the client; that exposure is a documented tradeoff.
func NewChatServiceError(err error) error {
	return &DomainError{
		Code:    "CHAT_SERVICE_ERROR",
		Message: fmt.Sprintf("Gemini/Chat error: %v", err),
		Err:     fmt.Errorf("%w: %v", ErrChatService, err),
	}
}

// NewInternalError creates an internal error without exposing details.
func NewInternalError(err error) error {
	return &DomainError{
		Code:    "INTERNAL_ERROR",
		Message: "an internal error occurred",
		Err:     fmt.Errorf("%w: %v", ErrInternal, err),
	}
}

// IsNotFound reports whether err is a resource-not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidInput reports whether err is an invalid-input error,
// including entity construction failures.
func IsInvalidInput(err error) bool {
	var ve *entity.ValidationError
	return errors.Is(err, ErrInvalidInput) || errors.As(err, &ve)
}

// IsChatServiceError reports whether err is a chat orchestration error.
func IsChatServiceError(err error) bool {
	return errors.Is(err, ErrChatService)
}
