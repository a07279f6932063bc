package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/International-Combat-Archery-Alliance/account-signup/business"
	"github.com/International-Combat-Archery-Alliance/account-signup/challenge"
	"github.com/International-Combat-Archery-Alliance/account-signup/issuance"
	"github.com/International-Combat-Archery-Alliance/account-signup/ptr"
	"github.com/International-Combat-Archery-Alliance/account-signup/registration"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(provider *mockProvider, service *mockBusinessService, accounts *mockAccountCreator) *API {
	guard := issuance.NewGuard(issuance.NewMemoryRepository())
	verifier := business.NewVerifier(service)

	newMachine := func() *registration.Machine {
		return registration.NewMachine(challenge.NewSession(guard, provider, noopLogger), verifier, accounts)
	}

	return NewAPI(newMachine, NewDraftStore(DefaultDraftTTL), noopLogger, LOCAL)
}

func createDraft(t *testing.T, api *API) uuid.UUID {
	t.Helper()

	resp, err := api.CreateSignup(ctxWithLogger(context.Background(), noopLogger), CreateSignupRequestObject{})
	require.NoError(t, err)
	created, ok := resp.(CreateSignup201JSONResponse)
	require.True(t, ok)

	return created.Id
}

func fillDraft(t *testing.T, api *API, id uuid.UUID, fields map[SignupField]string) {
	t.Helper()

	for field, value := range fields {
		resp, err := api.UpdateSignupField(ctxWithLogger(context.Background(), noopLogger), UpdateSignupFieldRequestObject{
			Id:    id,
			Field: field,
			Body:  &UpdateSignupFieldJSONRequestBody{Value: value},
		})
		require.NoError(t, err)
		require.IsType(t, UpdateSignupField200JSONResponse{}, resp)
	}
}

var buyerFields = map[SignupField]string{
	Name:     "Priya Shah",
	Email:    "priya@example.com",
	Phone:    "+919876543210",
	Password: "Str0ng!pass",
}

func TestGetSignupV1(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown draft", func(t *testing.T) {
		api := newTestAPI(&mockProvider{}, &mockBusinessService{}, &mockAccountCreator{})

		resp, err := api.GetSignup(ctxWithLogger(ctx, noopLogger), GetSignupRequestObject{Id: uuid.New()})

		assert.NoError(t, err)
		switch resp := resp.(type) {
		case GetSignup404JSONResponse:
			assert.Equal(t, NotFound, resp.Code)
		default:
			t.Errorf("unexpected response type %T", resp)
		}
	})

	t.Run("fresh draft", func(t *testing.T) {
		api := newTestAPI(&mockProvider{}, &mockBusinessService{}, &mockAccountCreator{})
		id := createDraft(t, api)

		resp, err := api.GetSignup(ctxWithLogger(ctx, noopLogger), GetSignupRequestObject{Id: id})

		assert.NoError(t, err)
		switch resp := resp.(type) {
		case GetSignup200JSONResponse:
			assert.Equal(t, id, resp.Id)
			assert.Equal(t, IDLE, resp.ChallengeStatus)
			assert.Equal(t, UNVERIFIED, resp.BusinessStatus)
			assert.Nil(t, resp.TaxId)
			assert.Nil(t, resp.Business)
		default:
			t.Errorf("unexpected response type %T", resp)
		}
	})
}

func TestUpdateSignupFieldV1(t *testing.T) {
	ctx := context.Background()

	t.Run("missing body", func(t *testing.T) {
		api := newTestAPI(&mockProvider{}, &mockBusinessService{}, &mockAccountCreator{})
		id := createDraft(t, api)

		resp, err := api.UpdateSignupField(ctxWithLogger(ctx, noopLogger), UpdateSignupFieldRequestObject{Id: id, Field: Name})

		assert.NoError(t, err)
		switch resp := resp.(type) {
		case UpdateSignupFielddefaultJSONResponse:
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, InvalidBody, resp.Body.Code)
		default:
			t.Errorf("unexpected response type %T", resp)
		}
	})

	t.Run("otp cannot be set as a field", func(t *testing.T) {
		api := newTestAPI(&mockProvider{}, &mockBusinessService{}, &mockAccountCreator{})
		id := createDraft(t, api)

		resp, err := api.UpdateSignupField(ctxWithLogger(ctx, noopLogger), UpdateSignupFieldRequestObject{
			Id:    id,
			Field: SignupField("otp"),
			Body:  &UpdateSignupFieldJSONRequestBody{Value: correctCode},
		})

		assert.NoError(t, err)
		assert.IsType(t, UpdateSignupFielddefaultJSONResponse{}, resp)
	})

	t.Run("invalid value comes back as a field error", func(t *testing.T) {
		api := newTestAPI(&mockProvider{}, &mockBusinessService{}, &mockAccountCreator{})
		id := createDraft(t, api)

		resp, err := api.UpdateSignupField(ctxWithLogger(ctx, noopLogger), UpdateSignupFieldRequestObject{
			Id:    id,
			Field: Phone,
			Body:  &UpdateSignupFieldJSONRequestBody{Value: "12345"},
		})

		assert.NoError(t, err)
		switch resp := resp.(type) {
		case UpdateSignupField200JSONResponse:
			require.NotNil(t, resp.FieldError)
			assert.Equal(t, "phone", resp.FieldError.Field)
			assert.Equal(t, "12345", resp.Signup.Phone)
			assert.False(t, resp.Signup.CanRequestCode)
		default:
			t.Errorf("unexpected response type %T", resp)
		}
	})
}

func TestRequestSignupOTPV1(t *testing.T) {
	ctx := context.Background()

	t.Run("captcha token is passed to the provider", func(t *testing.T) {
		var gotToken string
		provider := &mockProvider{
			DispatchFunc: func(ctx context.Context, phoneNumber string, antiAutomationToken string) (challenge.Handle, error) {
				gotToken = antiAutomationToken
				return "handle", nil
			},
		}
		api := newTestAPI(provider, &mockBusinessService{}, &mockAccountCreator{})
		id := createDraft(t, api)
		fillDraft(t, api, id, buyerFields)

		resp, err := api.RequestSignupOTP(ctxWithLogger(ctx, noopLogger), RequestSignupOTPRequestObject{
			Id:     id,
			Params: RequestSignupOTPParams{XCaptchaToken: "turnstile-token"},
		})

		assert.NoError(t, err)
		switch resp := resp.(type) {
		case RequestSignupOTP200JSONResponse:
			assert.Equal(t, ISSUED, resp.ChallengeStatus)
			assert.True(t, resp.CanConfirmCode)
		default:
			t.Errorf("unexpected response type %T", resp)
		}
		assert.Equal(t, "turnstile-token", gotToken)
	})

	t.Run("provider failure maps to a retryable upstream error", func(t *testing.T) {
		provider := &mockProvider{
			DispatchFunc: func(ctx context.Context, phoneNumber string, antiAutomationToken string) (challenge.Handle, error) {
				return "", errors.New("carrier down")
			},
		}
		api := newTestAPI(provider, &mockBusinessService{}, &mockAccountCreator{})
		id := createDraft(t, api)
		fillDraft(t, api, id, buyerFields)

		resp, err := api.RequestSignupOTP(ctxWithLogger(ctx, noopLogger), RequestSignupOTPRequestObject{
			Id:     id,
			Params: RequestSignupOTPParams{XCaptchaToken: "token"},
		})

		assert.NoError(t, err)
		switch resp := resp.(type) {
		case RequestSignupOTPdefaultJSONResponse:
			assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
			assert.Equal(t, UpstreamFailure, resp.Body.Code)
			assert.Equal(t, ptr.Bool(true), resp.Body.Retryable)
		default:
			t.Errorf("unexpected response type %T", resp)
		}
	})
}

func TestSubmitSignupV1(t *testing.T) {
	ctx := context.Background()

	t.Run("unverified phone is rejected with field errors", func(t *testing.T) {
		accounts := &mockAccountCreator{}
		api := newTestAPI(&mockProvider{}, &mockBusinessService{}, accounts)
		id := createDraft(t, api)
		fillDraft(t, api, id, buyerFields)

		resp, err := api.SubmitSignup(ctxWithLogger(ctx, noopLogger), SubmitSignupRequestObject{Id: id})

		assert.NoError(t, err)
		switch resp := resp.(type) {
		case SubmitSignup422JSONResponse:
			assert.Equal(t, SubmissionRejected, resp.Code)
			require.NotNil(t, resp.FieldErrors)
			assert.Equal(t, []FieldError{{Field: "phone", Message: "Phone number has not been verified"}}, *resp.FieldErrors)
		default:
			t.Errorf("unexpected response type %T", resp)
		}
	})

	t.Run("verified draft creates the account and is discarded", func(t *testing.T) {
		api := newTestAPI(&mockProvider{}, &mockBusinessService{}, &mockAccountCreator{})
		id := createDraft(t, api)
		fillDraft(t, api, id, buyerFields)

		_, err := api.RequestSignupOTP(ctxWithLogger(ctx, noopLogger), RequestSignupOTPRequestObject{Id: id, Params: RequestSignupOTPParams{XCaptchaToken: "token"}})
		require.NoError(t, err)
		confirmResp, err := api.ConfirmSignupOTP(ctxWithLogger(ctx, noopLogger), ConfirmSignupOTPRequestObject{Id: id, Body: &ConfirmSignupOTPJSONRequestBody{Code: correctCode}})
		require.NoError(t, err)
		require.IsType(t, ConfirmSignupOTP200JSONResponse{}, confirmResp)

		resp, err := api.SubmitSignup(ctxWithLogger(ctx, noopLogger), SubmitSignupRequestObject{Id: id})

		assert.NoError(t, err)
		switch resp := resp.(type) {
		case SubmitSignup201JSONResponse:
			assert.Equal(t, "account-1", resp.AccountId)
			assert.Equal(t, "priya@example.com", string(resp.Email))
		default:
			t.Errorf("unexpected response type %T", resp)
		}

		getResp, err := api.GetSignup(ctxWithLogger(ctx, noopLogger), GetSignupRequestObject{Id: id})
		assert.NoError(t, err)
		assert.IsType(t, GetSignup404JSONResponse{}, getResp)
	})
}

func TestDeleteSignupV1(t *testing.T) {
	ctx := context.Background()
	api := newTestAPI(&mockProvider{}, &mockBusinessService{}, &mockAccountCreator{})
	id := createDraft(t, api)

	resp, err := api.DeleteSignup(ctxWithLogger(ctx, noopLogger), DeleteSignupRequestObject{Id: id})
	assert.NoError(t, err)
	assert.IsType(t, DeleteSignup204Response{}, resp)

	resp, err = api.DeleteSignup(ctxWithLogger(ctx, noopLogger), DeleteSignupRequestObject{Id: id})
	assert.NoError(t, err)
	assert.IsType(t, DeleteSignup404JSONResponse{}, resp)
}
