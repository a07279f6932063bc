package challenge

import "fmt"

type ErrorReason string

const (
	REASON_DUPLICATE_ISSUANCE   ErrorReason = "DUPLICATE_ISSUANCE"
	REASON_ALREADY_ISSUED       ErrorReason = "ALREADY_ISSUED"
	REASON_DISPATCH_FAILED      ErrorReason = "DISPATCH_FAILED"
	REASON_CODE_MISMATCH        ErrorReason = "CODE_MISMATCH"
	REASON_CONFIRMATION_FAILED  ErrorReason = "CONFIRMATION_FAILED"
	REASON_NOT_ISSUED           ErrorReason = "NOT_ISSUED"
	REASON_OPERATION_IN_FLIGHT  ErrorReason = "OPERATION_IN_FLIGHT"
	REASON_SESSION_RESET        ErrorReason = "SESSION_RESET"
	REASON_ISSUANCE_UNAVAILABLE ErrorReason = "ISSUANCE_UNAVAILABLE"
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

// Retryable reports whether the user can try the same operation again
// without changing anything.
func (e *Error) Retryable() bool {
	switch e.Reason {
	case REASON_DISPATCH_FAILED, REASON_CODE_MISMATCH, REASON_CONFIRMATION_FAILED, REASON_ISSUANCE_UNAVAILABLE:
		return true
	default:
		return false
	}
}

func newChallengeError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

func NewDuplicateIssuanceError(phoneNumber string) *Error {
	return newChallengeError(REASON_DUPLICATE_ISSUANCE, fmt.Sprintf("A code was already requested for %s", phoneNumber), nil)
}

func NewAlreadyIssuedError(status Status) *Error {
	return newChallengeError(REASON_ALREADY_ISSUED, fmt.Sprintf("A code was already sent for this signup, status is %s", status), nil)
}

func NewDispatchFailedError(message string, cause error) *Error {
	return newChallengeError(REASON_DISPATCH_FAILED, message, cause)
}

func NewCodeMismatchError(cause error) *Error {
	return newChallengeError(REASON_CODE_MISMATCH, "The code entered is incorrect", cause)
}

func NewConfirmationFailedError(message string, cause error) *Error {
	return newChallengeError(REASON_CONFIRMATION_FAILED, message, cause)
}

func NewNotIssuedError(status Status) *Error {
	return newChallengeError(REASON_NOT_ISSUED, fmt.Sprintf("No code is waiting for confirmation, status is %s", status), nil)
}

func NewOperationInFlightError(message string) *Error {
	return newChallengeError(REASON_OPERATION_IN_FLIGHT, message, nil)
}

func NewSessionResetError(message string) *Error {
	return newChallengeError(REASON_SESSION_RESET, message, nil)
}

func NewIssuanceUnavailableError(message string, cause error) *Error {
	return newChallengeError(REASON_ISSUANCE_UNAVAILABLE, message, cause)
}
