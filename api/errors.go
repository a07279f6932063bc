package api

import (
	"errors"
	"net/http"

	"github.com/International-Combat-Archery-Alliance/account-signup/business"
	"github.com/International-Combat-Archery-Alliance/account-signup/challenge"
	"github.com/International-Combat-Archery-Alliance/account-signup/ptr"
	"github.com/International-Combat-Archery-Alliance/account-signup/registration"
	"github.com/International-Combat-Archery-Alliance/account-signup/sms"
	"github.com/International-Combat-Archery-Alliance/account-signup/validation"
)

var internalError = Error{Code: InternalError, Message: "Something went wrong"}

// errorToApi maps an error from the signup flow onto a status code and body.
func errorToApi(err error) (int, Error) {
	var fieldErr *validation.FieldError
	if errors.As(err, &fieldErr) {
		return http.StatusBadRequest, Error{
			Code:    InputValidationError,
			Message: fieldErr.Message,
			Field:   ptr.String(string(fieldErr.Field)),
		}
	}

	var challengeErr *challenge.Error
	if errors.As(err, &challengeErr) {
		return challengeErrorToApi(challengeErr)
	}

	var businessErr *business.Error
	if errors.As(err, &businessErr) {
		switch businessErr.Reason {
		case business.REASON_LOCAL_PRECONDITION:
			return http.StatusBadRequest, Error{Code: NotASeller, Message: businessErr.Message}
		case business.REASON_VERIFICATION_SERVICE:
			return http.StatusBadGateway, Error{Code: UpstreamFailure, Message: "GST number could not be checked, please try again", Retryable: ptr.Bool(true)}
		}
	}

	var registrationErr *registration.Error
	if errors.As(err, &registrationErr) {
		switch registrationErr.Reason {
		case registration.REASON_OPERATION_IN_FLIGHT:
			return http.StatusConflict, Error{Code: OperationInFlight, Message: registrationErr.Message}
		case registration.REASON_TAX_ID_CHANGED:
			return http.StatusConflict, Error{Code: StateChanged, Message: registrationErr.Message, Field: ptr.String(string(validation.TAX_ID))}
		}
	}

	return http.StatusInternalServerError, internalError
}

func challengeErrorToApi(err *challenge.Error) (int, Error) {
	phone := ptr.String(string(validation.PHONE))
	otp := ptr.String(string(validation.OTP))

	switch err.Reason {
	case challenge.REASON_DUPLICATE_ISSUANCE:
		return http.StatusConflict, Error{Code: DuplicateIssuance, Message: err.Message, Field: phone}
	case challenge.REASON_ALREADY_ISSUED:
		return http.StatusConflict, Error{Code: AlreadyIssued, Message: err.Message, Field: phone}
	case challenge.REASON_OPERATION_IN_FLIGHT:
		return http.StatusConflict, Error{Code: OperationInFlight, Message: err.Message}
	case challenge.REASON_SESSION_RESET:
		return http.StatusConflict, Error{Code: StateChanged, Message: err.Message, Field: phone}
	case challenge.REASON_NOT_ISSUED:
		return http.StatusConflict, Error{Code: CodeNotIssued, Message: err.Message, Field: phone}
	case challenge.REASON_CODE_MISMATCH:
		return http.StatusBadRequest, Error{Code: CodeMismatch, Message: err.Message, Field: otp, Retryable: ptr.Bool(true)}
	case challenge.REASON_DISPATCH_FAILED:
		var smsErr *sms.Error
		if errors.As(err.Cause, &smsErr) && smsErr.Reason == sms.REASON_CAPTCHA_INVALID {
			return http.StatusBadRequest, Error{Code: CaptchaInvalid, Message: "Bot check failed, please try again", Retryable: ptr.Bool(true)}
		}
		return http.StatusBadGateway, Error{Code: UpstreamFailure, Message: "Verification code could not be sent, please try again", Field: phone, Retryable: ptr.Bool(true)}
	case challenge.REASON_CONFIRMATION_FAILED:
		return http.StatusBadGateway, Error{Code: UpstreamFailure, Message: "Verification code could not be checked, please try again", Field: otp, Retryable: ptr.Bool(true)}
	case challenge.REASON_ISSUANCE_UNAVAILABLE:
		return http.StatusBadGateway, Error{Code: UpstreamFailure, Message: "Verification is unavailable right now, please try again", Retryable: ptr.Bool(true)}
	}

	return http.StatusInternalServerError, internalError
}
