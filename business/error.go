package business

import "fmt"

type ErrorReason string

const (
	REASON_LOCAL_PRECONDITION   ErrorReason = "LOCAL_PRECONDITION"
	REASON_VERIFICATION_SERVICE ErrorReason = "VERIFICATION_SERVICE"
)

type Error struct {
	Reason  ErrorReason
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s. Cause: %s", e.Reason, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newBusinessError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

func NewLocalPreconditionError(message string, cause error) *Error {
	return newBusinessError(REASON_LOCAL_PRECONDITION, message, cause)
}

// NewVerificationServiceError is retryable; the result stays UNVERIFIED.
func NewVerificationServiceError(message string, cause error) *Error {
	return newBusinessError(REASON_VERIFICATION_SERVICE, message, cause)
}
