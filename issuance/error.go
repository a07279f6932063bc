package issuance

import "fmt"

type ErrorReason string

const (
	REASON_FAILED_TO_TRANSLATE_TO_DB_MODEL ErrorReason = "FAILED_TO_TRANSLATE_TO_DB_MODEL"
	REASON_FAILED_TO_WRITE                 ErrorReason = "FAILED_TO_WRITE"
	REASON_FAILED_TO_FETCH                 ErrorReason = "FAILED_TO_FETCH"
	REASON_RECORD_DOES_NOT_EXIST           ErrorReason = "RECORD_DOES_NOT_EXIST"
	REASON_RECORD_ALREADY_EXISTS           ErrorReason = "RECORD_ALREADY_EXISTS"
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

func newIssuanceError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

func NewFailedToTranslateToDBModelError(message string, cause error) *Error {
	return newIssuanceError(REASON_FAILED_TO_TRANSLATE_TO_DB_MODEL, message, cause)
}

func NewFailedToWriteError(message string, cause error) *Error {
	return newIssuanceError(REASON_FAILED_TO_WRITE, message, cause)
}

func NewFailedToFetchError(message string, cause error) *Error {
	return newIssuanceError(REASON_FAILED_TO_FETCH, message, cause)
}

func NewRecordDoesNotExistError(message string, cause error) *Error {
	return newIssuanceError(REASON_RECORD_DOES_NOT_EXIST, message, cause)
}

func NewRecordAlreadyExistsError(message string, cause error) *Error {
	return newIssuanceError(REASON_RECORD_ALREADY_EXISTS, message, cause)
}

func NewTimeoutError(message string) *Error {
	return newIssuanceError(REASON_TIMEOUT, message, nil)
}
