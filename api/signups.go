package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/International-Combat-Archery-Alliance/account-signup/ptr"
	"github.com/International-Combat-Archery-Alliance/account-signup/registration"
	"github.com/International-Combat-Archery-Alliance/account-signup/validation"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime/types"
)

const maxBodyBytes = 4096

var (
	signupNotFound = Error{Code: NotFound, Message: "Signup not found"}
	emptyBody      = Error{Code: InvalidBody, Message: "Must specify a JSON body in the request"}
)

func (a *API) CreateSignup(ctx context.Context, request CreateSignupRequestObject) (CreateSignupResponseObject, error) {
	machine := a.newMachine()
	id, expiresAt := a.drafts.Create(machine)

	a.getLoggerOrBaseLogger(ctx).Info("Created signup draft", slog.String("signup-id", id.String()))

	return CreateSignup201JSONResponse(stateToApiSignup(id, expiresAt, machine.Snapshot())), nil
}

func (a *API) GetSignup(ctx context.Context, request GetSignupRequestObject) (GetSignupResponseObject, error) {
	machine, expiresAt, ok := a.drafts.Get(request.Id)
	if !ok {
		return GetSignup404JSONResponse(signupNotFound), nil
	}

	return GetSignup200JSONResponse(stateToApiSignup(request.Id, expiresAt, machine.Snapshot())), nil
}

func (a *API) DeleteSignup(ctx context.Context, request DeleteSignupRequestObject) (DeleteSignupResponseObject, error) {
	if !a.drafts.Delete(request.Id) {
		return DeleteSignup404JSONResponse(signupNotFound), nil
	}

	return DeleteSignup204Response{}, nil
}

func (a *API) UpdateSignupField(ctx context.Context, request UpdateSignupFieldRequestObject) (UpdateSignupFieldResponseObject, error) {
	machine, expiresAt, ok := a.drafts.Get(request.Id)
	if !ok {
		return UpdateSignupField404JSONResponse(signupNotFound), nil
	}
	if request.Body == nil {
		return UpdateSignupFielddefaultJSONResponse{Body: emptyBody, StatusCode: http.StatusBadRequest}, nil
	}

	field := validation.Field(request.Field)
	if field == validation.OTP {
		return UpdateSignupFielddefaultJSONResponse{
			Body:       Error{Code: InvalidBody, Message: "The code is submitted through the confirm endpoint"},
			StatusCode: http.StatusBadRequest,
		}, nil
	}

	resp := FieldUpdate{}
	err := machine.UpdateField(field, request.Body.Value)
	if err != nil {
		status, e := errorToApi(err)
		if status != http.StatusBadRequest || e.Code != InputValidationError {
			a.logFlowError(ctx, "Failed to update signup field", request.Id, status, e, err)
			return UpdateSignupFielddefaultJSONResponse{Body: e, StatusCode: status}, nil
		}
		resp.FieldError = &FieldError{Field: string(field), Message: e.Message}
	}

	resp.Signup = stateToApiSignup(request.Id, expiresAt, machine.Snapshot())
	return UpdateSignupField200JSONResponse(resp), nil
}

func (a *API) SetSignupSeller(ctx context.Context, request SetSignupSellerRequestObject) (SetSignupSellerResponseObject, error) {
	machine, expiresAt, ok := a.drafts.Get(request.Id)
	if !ok {
		return SetSignupSeller404JSONResponse(signupNotFound), nil
	}
	if request.Body == nil {
		return SetSignupSellerdefaultJSONResponse{Body: emptyBody, StatusCode: http.StatusBadRequest}, nil
	}

	machine.SetSeller(request.Body.IsSeller)

	return SetSignupSeller200JSONResponse(stateToApiSignup(request.Id, expiresAt, machine.Snapshot())), nil
}

func (a *API) RequestSignupOTP(ctx context.Context, request RequestSignupOTPRequestObject) (RequestSignupOTPResponseObject, error) {
	machine, expiresAt, ok := a.drafts.Get(request.Id)
	if !ok {
		return RequestSignupOTP404JSONResponse(signupNotFound), nil
	}

	err := machine.RequestChallenge(ctx, request.Params.XCaptchaToken)
	if err != nil {
		status, e := errorToApi(err)
		a.logFlowError(ctx, "Failed to request verification code", request.Id, status, e, err)
		return RequestSignupOTPdefaultJSONResponse{Body: e, StatusCode: status}, nil
	}

	return RequestSignupOTP200JSONResponse(stateToApiSignup(request.Id, expiresAt, machine.Snapshot())), nil
}

func (a *API) ConfirmSignupOTP(ctx context.Context, request ConfirmSignupOTPRequestObject) (ConfirmSignupOTPResponseObject, error) {
	machine, expiresAt, ok := a.drafts.Get(request.Id)
	if !ok {
		return ConfirmSignupOTP404JSONResponse(signupNotFound), nil
	}
	if request.Body == nil {
		return ConfirmSignupOTPdefaultJSONResponse{Body: emptyBody, StatusCode: http.StatusBadRequest}, nil
	}

	err := machine.ConfirmCode(ctx, request.Body.Code)
	if err != nil {
		status, e := errorToApi(err)
		a.logFlowError(ctx, "Failed to confirm verification code", request.Id, status, e, err)
		return ConfirmSignupOTPdefaultJSONResponse{Body: e, StatusCode: status}, nil
	}

	return ConfirmSignupOTP200JSONResponse(stateToApiSignup(request.Id, expiresAt, machine.Snapshot())), nil
}

func (a *API) VerifySignupBusiness(ctx context.Context, request VerifySignupBusinessRequestObject) (VerifySignupBusinessResponseObject, error) {
	machine, expiresAt, ok := a.drafts.Get(request.Id)
	if !ok {
		return VerifySignupBusiness404JSONResponse(signupNotFound), nil
	}

	err := machine.VerifyBusiness(ctx)
	if err != nil {
		status, e := errorToApi(err)
		a.logFlowError(ctx, "Failed to verify GST number", request.Id, status, e, err)
		return VerifySignupBusinessdefaultJSONResponse{Body: e, StatusCode: status}, nil
	}

	return VerifySignupBusiness200JSONResponse(stateToApiSignup(request.Id, expiresAt, machine.Snapshot())), nil
}

func (a *API) SubmitSignup(ctx context.Context, request SubmitSignupRequestObject) (SubmitSignupResponseObject, error) {
	machine, _, ok := a.drafts.Get(request.Id)
	if !ok {
		return SubmitSignup404JSONResponse(signupNotFound), nil
	}
	logger := a.getLoggerOrBaseLogger(ctx)

	result, err := machine.Submit(ctx)
	if err != nil {
		status, e := errorToApi(err)
		a.logFlowError(ctx, "Failed to submit signup", request.Id, status, e, err)
		return SubmitSignupdefaultJSONResponse{Body: e, StatusCode: status}, nil
	}

	if result.Outcome == registration.REJECTED {
		logger.Info("Signup submission rejected", slog.String("signup-id", request.Id.String()), slog.String("errors", result.FieldErrors.Error()))

		fieldErrors := fieldErrorsToApi(result.FieldErrors)
		return SubmitSignup422JSONResponse{
			Code:        SubmissionRejected,
			Message:     "Signup is not ready to submit",
			FieldErrors: &fieldErrors,
		}, nil
	}

	a.drafts.Delete(request.Id)
	logger.Info("Account created", slog.String("signup-id", request.Id.String()), slog.String("account-id", result.AccountID))

	return SubmitSignup201JSONResponse{
		AccountId: result.AccountID,
		Email:     types.Email(result.Payload.Email),
	}, nil
}

func (a *API) logFlowError(ctx context.Context, msg string, id uuid.UUID, status int, e Error, err error) {
	logger := a.getLoggerOrBaseLogger(ctx)
	attrs := []any{slog.String("signup-id", id.String()), slog.String("error", err.Error()), slog.String("code", string(e.Code))}
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(ctx, msg, attrs...)
	} else {
		logger.WarnContext(ctx, msg, attrs...)
	}
}

func fieldErrorsToApi(errs validation.FieldErrors) []FieldError {
	out := make([]FieldError, 0, len(errs))
	for _, e := range errs {
		out = append(out, FieldError{Field: string(e.Field), Message: e.Message})
	}
	return out
}

// The password and the OTP code never leave the server.
func stateToApiSignup(id uuid.UUID, expiresAt time.Time, state registration.State) Signup {
	var businessPayload *map[string]interface{}
	if state.Business.Payload != nil {
		businessPayload = &state.Business.Payload
	}

	return Signup{
		Id:                id,
		Name:              state.Draft.Name,
		Email:             state.Draft.Email,
		Phone:             state.Draft.Phone,
		IsSeller:          state.Draft.IsSeller,
		TaxId:             ptr.NonEmptyString(state.Draft.TaxID),
		ChallengeStatus:   ChallengeStatus(state.ChallengeStatus.String()),
		BusinessStatus:    BusinessStatus(state.Business.Status.String()),
		Business:          businessPayload,
		FieldErrors:       fieldErrorsToApi(state.FieldErrors),
		CanSubmit:         state.CanSubmit,
		CanRequestCode:    state.CanRequestCode,
		CanConfirmCode:    state.CanConfirmCode,
		CanVerifyBusiness: state.CanVerifyBusiness,
		ExpiresAt:         expiresAt,
	}
}
