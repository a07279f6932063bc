package accounts

import "fmt"

type ErrorReason string

const (
	REASON_FAILED_TO_TRANSLATE_TO_DB_MODEL ErrorReason = "FAILED_TO_TRANSLATE_TO_DB_MODEL"
	REASON_FAILED_TO_WRITE                 ErrorReason = "FAILED_TO_WRITE"
	REASON_ACCOUNT_ALREADY_EXISTS          ErrorReason = "ACCOUNT_ALREADY_EXISTS"
	REASON_TIMEOUT                         ErrorReason = "TIMEOUT"
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

func newAccountError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

func NewFailedToWriteError(message string, cause error) *Error {
	return newAccountError(REASON_FAILED_TO_WRITE, message, cause)
}

func NewFailedToTranslateToDBModelError(message string, cause error) *Error {
	return newAccountError(REASON_FAILED_TO_TRANSLATE_TO_DB_MODEL, message, cause)
}

func NewAccountAlreadyExistsError(emailAddress string, cause error) *Error {
	return newAccountError(REASON_ACCOUNT_ALREADY_EXISTS, fmt.Sprintf("Account with email %s already exists", emailAddress), cause)
}

func NewTimeoutError(message string) *Error {
	return newAccountError(REASON_TIMEOUT, message, nil)
}
