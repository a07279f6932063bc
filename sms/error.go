package sms

import "fmt"

type ErrorReason string

const (
	REASON_CAPTCHA_INVALID   ErrorReason = "CAPTCHA_INVALID"
	REASON_CODE_GENERATION   ErrorReason = "CODE_GENERATION"
	REASON_SEND_FAILED       ErrorReason = "SEND_FAILED"
	REASON_UNKNOWN_HANDLE    ErrorReason = "UNKNOWN_HANDLE"
	REASON_CODE_EXPIRED      ErrorReason = "CODE_EXPIRED"
	REASON_TOO_MANY_ATTEMPTS ErrorReason = "TOO_MANY_ATTEMPTS"
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

func newSMSError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

func NewCaptchaInvalidError(cause error) *Error {
	return newSMSError(REASON_CAPTCHA_INVALID, "Anti-automation token was rejected", cause)
}

func NewCodeGenerationError(cause error) *Error {
	return newSMSError(REASON_CODE_GENERATION, "Failed to generate verification code", cause)
}

func NewSendFailedError(phoneNumber string, cause error) *Error {
	return newSMSError(REASON_SEND_FAILED, fmt.Sprintf("Failed to send verification code to %s", phoneNumber), cause)
}

func NewUnknownHandleError() *Error {
	return newSMSError(REASON_UNKNOWN_HANDLE, "No verification code is outstanding for this handle", nil)
}

func NewCodeExpiredError() *Error {
	return newSMSError(REASON_CODE_EXPIRED, "Verification code has expired", nil)
}

func NewTooManyAttemptsError() *Error {
	return newSMSError(REASON_TOO_MANY_ATTEMPTS, "Too many incorrect attempts for this verification code", nil)
}
