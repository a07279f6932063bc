package registration

import (
	"fmt"

	"github.com/International-Combat-Archery-Alliance/account-signup/validation"
)

type ErrorReason string

const (
	REASON_OPERATION_IN_FLIGHT ErrorReason = "OPERATION_IN_FLIGHT"
	REASON_TAX_ID_CHANGED      ErrorReason = "TAX_ID_CHANGED"
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

func newRegistrationError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

func NewOperationInFlightError(message string) *Error {
	return newRegistrationError(REASON_OPERATION_IN_FLIGHT, message, nil)
}

func NewTaxIDChangedError() *Error {
	return newRegistrationError(REASON_TAX_ID_CHANGED, "GST number changed while it was being verified", nil)
}

// AccountCreationError is returned by an AccountCreator when it refuses the
// payload. Field says which form field the user should correct; it defaults
// to email.
type AccountCreationError struct {
	Field   validation.Field
	Message string
	Cause   error
}

func (e *AccountCreationError) Error() string {
	return fmt.Sprintf("account creation failed on %s: %s. Cause: %s", e.Field, e.Message, e.Cause)
}

func (e *AccountCreationError) Unwrap() error {
	return e.Cause
}

func NewAccountCreationError(field validation.Field, message string, cause error) *AccountCreationError {
	return &AccountCreationError{
		Field:   field,
		Message: message,
		Cause:   cause,
	}
}
