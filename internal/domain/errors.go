package domain

import "fmt"

// DomainError represents a domain-specific error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new DomainError
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     nil,
	}
}

// NewDomainErrorWithCause creates a new DomainError with an underlying cause
func NewDomainErrorWithCause(code, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain error codes
const (
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeAlreadyExists    = "ALREADY_EXISTS"
	ErrCodeInternalError    = "INTERNAL_ERROR"
	ErrCodeInvalidOperation = "INVALID_OPERATION"
)

// Validation errors
var (
	ErrMissingRequiredField = NewDomainError(ErrCodeValidation, "missing required field")
	ErrInvalidEmail         = NewDomainError(ErrCodeValidation, "invalid email address")
)

// Not found errors
var (
	ErrProjectNotFound     = NewDomainError(ErrCodeNotFound, "project not found")
	ErrBlogPostNotFound    = NewDomainError(ErrCodeNotFound, "blog post not found")
	ErrFAQNotFound         = NewDomainError(ErrCodeNotFound, "faq entry not found")
	ErrResourceNotFound    = NewDomainError(ErrCodeNotFound, "resource not found")
	ErrTagNotFound         = NewDomainError(ErrCodeNotFound, "tag not found")
	ErrSearchQueryNotFound = NewDomainError(ErrCodeNotFound, "search query not found")
)

// Already exists errors
var (
	ErrSubscriberAlreadyExists = NewDomainError(ErrCodeAlreadyExists, "email is already subscribed")
	ErrTagAlreadyExists        = NewDomainError(ErrCodeAlreadyExists, "tag already exists")
)
