package registration

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/International-Combat-Archery-Alliance/account-signup/business"
	"github.com/International-Combat-Archery-Alliance/account-signup/challenge"
	"github.com/International-Combat-Archery-Alliance/account-signup/issuance"
	"github.com/International-Combat-Archery-Alliance/account-signup/validation"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPhone = "+15551234567"
	testTaxID = "18AAACR5055K1Z6"
	goodCode  = "123456"
)

var noopLogger = slog.New(slog.DiscardHandler)

type mockProvider struct {
	DispatchFunc func(ctx context.Context, phoneNumber string, antiAutomationToken string) (challenge.Handle, error)
	ConfirmFunc  func(ctx context.Context, handle challenge.Handle, code string) error
}

func (m *mockProvider) Dispatch(ctx context.Context, phoneNumber string, antiAutomationToken string) (challenge.Handle, error) {
	if m.DispatchFunc != nil {
		return m.DispatchFunc(ctx, phoneNumber, antiAutomationToken)
	}
	return challenge.Handle("handle-" + phoneNumber), nil
}

func (m *mockProvider) Confirm(ctx context.Context, handle challenge.Handle, code string) error {
	if m.ConfirmFunc != nil {
		return m.ConfirmFunc(ctx, handle, code)
	}
	if code != goodCode {
		return challenge.ErrCodeMismatch
	}
	return nil
}

type mockVerifier struct {
	VerifyFunc func(ctx context.Context, isSeller bool, taxID string) (business.Result, error)
	calls      int
}

func (m *mockVerifier) Verify(ctx context.Context, isSeller bool, taxID string) (business.Result, error) {
	m.calls++
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, isSeller, taxID)
	}
	return business.Result{TaxID: taxID, Status: business.VERIFIED, Payload: map[string]any{"tradeName": "Acme"}}, nil
}

type mockAccountCreator struct {
	CreateFunc func(ctx context.Context, payload Payload) (string, error)
	calls      int
}

func (m *mockAccountCreator) Create(ctx context.Context, payload Payload) (string, error) {
	m.calls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, payload)
	}
	return "account-1", nil
}

type fixture struct {
	machine  *Machine
	session  *challenge.Session
	provider *mockProvider
	verifier *mockVerifier
	accounts *mockAccountCreator
}

func newFixture() *fixture {
	f := &fixture{
		provider: &mockProvider{},
		verifier: &mockVerifier{},
		accounts: &mockAccountCreator{},
	}
	f.session = challenge.NewSession(issuance.NewGuard(issuance.NewMemoryRepository()), f.provider, noopLogger)
	f.machine = NewMachine(f.session, f.verifier, f.accounts)
	return f
}

func fillBuyer(t *testing.T, m *Machine) {
	t.Helper()
	require.NoError(t, m.UpdateField(validation.NAME, "Ana"))
	require.NoError(t, m.UpdateField(validation.EMAIL, "ana@x.com"))
	require.NoError(t, m.UpdateField(validation.PHONE, testPhone))
	require.NoError(t, m.UpdateField(validation.PASSWORD, "Secret123!"))
}

func verifyPhone(t *testing.T, m *Machine) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, m.RequestChallenge(ctx, "token"))
	require.NoError(t, m.ConfirmCode(ctx, goodCode))
	require.Equal(t, challenge.CONFIRMED, m.Snapshot().ChallengeStatus)
}

func TestSubmitScenarios(t *testing.T) {
	ctx := context.Background()

	t.Run("buyer with confirmed phone is accepted", func(t *testing.T) {
		f := newFixture()
		fillBuyer(t, f.machine)
		verifyPhone(t, f.machine)

		var got Payload
		f.accounts.CreateFunc = func(ctx context.Context, payload Payload) (string, error) {
			got = payload
			return "acct-123", nil
		}

		require.True(t, f.machine.CanSubmit())
		result, err := f.machine.Submit(ctx)
		require.NoError(t, err)
		assert.Equal(t, ACCEPTED, result.Outcome)
		assert.Equal(t, "acct-123", result.AccountID)

		want := Payload{
			Name:     "Ana",
			Email:    "ana@x.com",
			Phone:    testPhone,
			Password: "Secret123!",
			IsSeller: false,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("payload mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("seller with unverified business id is rejected", func(t *testing.T) {
		f := newFixture()
		fillBuyer(t, f.machine)
		f.machine.SetSeller(true)
		require.NoError(t, f.machine.UpdateField(validation.TAX_ID, testTaxID))
		verifyPhone(t, f.machine)

		assert.False(t, f.machine.CanSubmit())
		result, err := f.machine.Submit(ctx)
		require.NoError(t, err)
		assert.Equal(t, REJECTED, result.Outcome)
		require.Len(t, result.FieldErrors, 1)
		assert.Equal(t, validation.TAX_ID, result.FieldErrors[0].Field)
		assert.Equal(t, businessNotVerifiedMessage, result.FieldErrors[0].Message)
		assert.Equal(t, 0, f.accounts.calls)
	})

	t.Run("verified seller is accepted with tax id in payload", func(t *testing.T) {
		f := newFixture()
		fillBuyer(t, f.machine)
		f.machine.SetSeller(true)
		require.NoError(t, f.machine.UpdateField(validation.TAX_ID, testTaxID))
		verifyPhone(t, f.machine)
		require.NoError(t, f.machine.VerifyBusiness(ctx))

		result, err := f.machine.Submit(ctx)
		require.NoError(t, err)
		require.Equal(t, ACCEPTED, result.Outcome)
		require.NotNil(t, result.Payload.TaxID)
		assert.Equal(t, testTaxID, *result.Payload.TaxID)
		assert.True(t, result.Payload.IsSeller)
	})

	t.Run("unverified phone is rejected", func(t *testing.T) {
		f := newFixture()
		fillBuyer(t, f.machine)

		result, err := f.machine.Submit(ctx)
		require.NoError(t, err)
		assert.Equal(t, REJECTED, result.Outcome)
		require.Len(t, result.FieldErrors, 1)
		assert.Equal(t, validation.PHONE, result.FieldErrors[0].Field)
		assert.Equal(t, phoneNotVerifiedMessage, result.FieldErrors[0].Message)
	})

	t.Run("every failing gate is reported", func(t *testing.T) {
		f := newFixture()
		f.machine.SetSeller(true)
		require.Error(t, f.machine.UpdateField(validation.EMAIL, "nope"))

		result, err := f.machine.Submit(ctx)
		require.NoError(t, err)
		assert.Equal(t, REJECTED, result.Outcome)
		for _, field := range []validation.Field{validation.NAME, validation.EMAIL, validation.PHONE, validation.PASSWORD, validation.TAX_ID} {
			assert.True(t, result.FieldErrors.Has(field), "missing error for %s", field)
		}
	})

	t.Run("account creation failure is a field error and keeps verification", func(t *testing.T) {
		f := newFixture()
		fillBuyer(t, f.machine)
		f.machine.SetSeller(true)
		require.NoError(t, f.machine.UpdateField(validation.TAX_ID, testTaxID))
		verifyPhone(t, f.machine)
		require.NoError(t, f.machine.VerifyBusiness(ctx))

		f.accounts.CreateFunc = func(ctx context.Context, payload Payload) (string, error) {
			return "", NewAccountCreationError(validation.EMAIL, "An account with this email already exists", nil)
		}

		result, err := f.machine.Submit(ctx)
		require.NoError(t, err)
		assert.Equal(t, REJECTED, result.Outcome)
		require.Len(t, result.FieldErrors, 1)
		assert.Equal(t, validation.EMAIL, result.FieldErrors[0].Field)
		assert.Equal(t, "An account with this email already exists", result.FieldErrors[0].Message)

		state := f.machine.Snapshot()
		assert.Equal(t, challenge.CONFIRMED, state.ChallengeStatus)
		assert.Equal(t, business.VERIFIED, state.Business.Status)

		f.accounts.CreateFunc = nil
		require.NoError(t, f.machine.UpdateField(validation.EMAIL, "ana2@x.com"))
		result, err = f.machine.Submit(ctx)
		require.NoError(t, err)
		assert.Equal(t, ACCEPTED, result.Outcome)
	})

	t.Run("opaque account creation failure lands on email", func(t *testing.T) {
		f := newFixture()
		fillBuyer(t, f.machine)
		verifyPhone(t, f.machine)
		f.accounts.CreateFunc = func(ctx context.Context, payload Payload) (string, error) {
			return "", errors.New("connection refused")
		}

		result, err := f.machine.Submit(ctx)
		require.NoError(t, err)
		require.Len(t, result.FieldErrors, 1)
		assert.Equal(t, validation.EMAIL, result.FieldErrors[0].Field)
		assert.Equal(t, accountCreationMessage, result.FieldErrors[0].Message)
	})

	t.Run("concurrent submit is rejected", func(t *testing.T) {
		f := newFixture()
		fillBuyer(t, f.machine)
		verifyPhone(t, f.machine)

		entered := make(chan struct{})
		release := make(chan struct{})
		f.accounts.CreateFunc = func(ctx context.Context, payload Payload) (string, error) {
			close(entered)
			<-release
			return "acct", nil
		}

		done := make(chan SubmitResult)
		go func() {
			result, _ := f.machine.Submit(ctx)
			done <- result
		}()
		<-entered

		_, err := f.machine.Submit(ctx)
		var regErr *Error
		require.ErrorAs(t, err, &regErr)
		assert.Equal(t, REASON_OPERATION_IN_FLIGHT, regErr.Reason)

		close(release)
		assert.Equal(t, ACCEPTED, (<-done).Outcome)
	})
}

func TestPhoneVerification(t *testing.T) {
	ctx := context.Background()

	t.Run("wrong code keeps the session issued and can be resubmitted", func(t *testing.T) {
		f := newFixture()
		fillBuyer(t, f.machine)
		require.NoError(t, f.machine.RequestChallenge(ctx, "token"))

		err := f.machine.ConfirmCode(ctx, "000000")
		var challengeErr *challenge.Error
		require.ErrorAs(t, err, &challengeErr)
		assert.Equal(t, challenge.REASON_CODE_MISMATCH, challengeErr.Reason)

		state := f.machine.Snapshot()
		assert.Equal(t, challenge.ISSUED, state.ChallengeStatus)
		assert.Equal(t, "000000", state.Draft.OTPCode)
		assert.True(t, state.CanConfirmCode)

		require.NoError(t, f.machine.ConfirmCode(ctx, goodCode))
		assert.Equal(t, challenge.CONFIRMED, f.machine.Snapshot().ChallengeStatus)
	})

	t.Run("second request for the same number is a duplicate", func(t *testing.T) {
		f := newFixture()
		fillBuyer(t, f.machine)
		require.NoError(t, f.machine.RequestChallenge(ctx, "token"))

		err := f.machine.RequestChallenge(ctx, "token")
		var challengeErr *challenge.Error
		require.ErrorAs(t, err, &challengeErr)
		assert.Equal(t, challenge.REASON_DUPLICATE_ISSUANCE, challengeErr.Reason)
		assert.Equal(t, challenge.ISSUED, f.machine.Snapshot().ChallengeStatus)
	})

	for _, target := range []challenge.Status{challenge.ISSUED, challenge.CONFIRMED} {
		t.Run("editing phone resets from "+target.String(), func(t *testing.T) {
			f := newFixture()
			fillBuyer(t, f.machine)
			require.NoError(t, f.machine.RequestChallenge(ctx, "token"))
			if target == challenge.CONFIRMED {
				require.NoError(t, f.machine.ConfirmCode(ctx, goodCode))
			}

			require.NoError(t, f.machine.UpdateField(validation.PHONE, "+15559999999"))
			assert.Equal(t, challenge.IDLE, f.machine.Snapshot().ChallengeStatus)
			assert.False(t, f.machine.CanSubmit())
		})
	}

	t.Run("editing phone while confirming resets", func(t *testing.T) {
		f := newFixture()
		fillBuyer(t, f.machine)
		require.NoError(t, f.machine.RequestChallenge(ctx, "token"))

		entered := make(chan struct{})
		release := make(chan struct{})
		f.provider.ConfirmFunc = func(ctx context.Context, handle challenge.Handle, code string) error {
			close(entered)
			<-release
			return nil
		}

		done := make(chan error)
		go func() {
			done <- f.machine.ConfirmCode(ctx, goodCode)
		}()
		<-entered
		assert.Equal(t, challenge.CONFIRMING, f.machine.Snapshot().ChallengeStatus)

		require.NoError(t, f.machine.UpdateField(validation.PHONE, "+15559999999"))
		assert.Equal(t, challenge.IDLE, f.machine.Snapshot().ChallengeStatus)

		close(release)
		<-done
		assert.Equal(t, challenge.IDLE, f.machine.Snapshot().ChallengeStatus)
	})

	t.Run("code confirmed for another number does not open the gate", func(t *testing.T) {
		f := newFixture()
		fillBuyer(t, f.machine)

		require.NoError(t, f.session.Request(ctx, "+15559999999", "token"))
		require.NoError(t, f.session.Confirm(ctx, goodCode))
		require.Equal(t, challenge.CONFIRMED, f.machine.Snapshot().ChallengeStatus)

		assert.False(t, f.machine.CanSubmit())
		result, err := f.machine.Submit(ctx)
		require.NoError(t, err)
		assert.Equal(t, REJECTED, result.Outcome)
		assert.True(t, result.FieldErrors.Has(validation.PHONE))
		assert.Equal(t, 0, f.accounts.calls)
	})

	t.Run("issued session refuses a second request", func(t *testing.T) {
		f := newFixture()
		fillBuyer(t, f.machine)
		verifyPhone(t, f.machine)

		err := f.machine.RequestChallenge(ctx, "token")
		var challengeErr *challenge.Error
		require.ErrorAs(t, err, &challengeErr)
		assert.Equal(t, challenge.REASON_DUPLICATE_ISSUANCE, challengeErr.Reason)
		assert.Equal(t, challenge.CONFIRMED, f.machine.Snapshot().ChallengeStatus)
		assert.True(t, f.machine.CanSubmit())
	})

	t.Run("correcting back to the original number stays blocked", func(t *testing.T) {
		f := newFixture()
		fillBuyer(t, f.machine)
		require.NoError(t, f.machine.RequestChallenge(ctx, "token"))

		require.NoError(t, f.machine.UpdateField(validation.PHONE, "+15559999999"))
		require.NoError(t, f.machine.UpdateField(validation.PHONE, testPhone))

		err := f.machine.RequestChallenge(ctx, "token")
		var challengeErr *challenge.Error
		require.ErrorAs(t, err, &challengeErr)
		assert.Equal(t, challenge.REASON_DUPLICATE_ISSUANCE, challengeErr.Reason)
	})

	t.Run("invalid phone is kept on the draft but not dispatched", func(t *testing.T) {
		f := newFixture()
		err := f.machine.UpdateField(validation.PHONE, "555")
		var fieldErr *validation.FieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, "555", f.machine.Snapshot().Draft.Phone)
		assert.False(t, f.machine.Snapshot().CanRequestCode)

		require.ErrorAs(t, f.machine.RequestChallenge(ctx, "token"), &fieldErr)
	})
}

func TestBusinessVerification(t *testing.T) {
	ctx := context.Background()

	sellerFixture := func(t *testing.T) *fixture {
		f := newFixture()
		fillBuyer(t, f.machine)
		f.machine.SetSeller(true)
		require.NoError(t, f.machine.UpdateField(validation.TAX_ID, testTaxID))
		verifyPhone(t, f.machine)
		return f
	}

	t.Run("seller toggle keeps a verified result", func(t *testing.T) {
		f := sellerFixture(t)
		require.NoError(t, f.machine.VerifyBusiness(ctx))

		f.machine.SetSeller(false)
		assert.Equal(t, business.VERIFIED, f.machine.Snapshot().Business.Status)
		assert.True(t, f.machine.CanSubmit())

		f.machine.SetSeller(true)
		assert.Equal(t, business.VERIFIED, f.machine.Snapshot().Business.Status)
		assert.True(t, f.machine.CanSubmit())
		assert.Equal(t, 1, f.verifier.calls)
	})

	t.Run("buyer payload drops tax id even after verification", func(t *testing.T) {
		f := sellerFixture(t)
		require.NoError(t, f.machine.VerifyBusiness(ctx))
		f.machine.SetSeller(false)

		result, err := f.machine.Submit(ctx)
		require.NoError(t, err)
		assert.Equal(t, ACCEPTED, result.Outcome)
		assert.Nil(t, result.Payload.TaxID)
	})

	t.Run("editing tax id resets a prior result", func(t *testing.T) {
		f := sellerFixture(t)
		require.NoError(t, f.machine.VerifyBusiness(ctx))

		require.NoError(t, f.machine.UpdateField(validation.TAX_ID, "27AAPFU0939F1ZV"))
		state := f.machine.Snapshot()
		assert.Equal(t, business.UNVERIFIED, state.Business.Status)
		assert.False(t, state.CanSubmit)
		assert.True(t, state.CanVerifyBusiness)
	})

	t.Run("verifying an already verified id does not call the service", func(t *testing.T) {
		f := sellerFixture(t)
		require.NoError(t, f.machine.VerifyBusiness(ctx))
		require.NoError(t, f.machine.VerifyBusiness(ctx))
		assert.Equal(t, 1, f.verifier.calls)
	})

	t.Run("rejected result blocks submission", func(t *testing.T) {
		f := sellerFixture(t)
		f.verifier.VerifyFunc = func(ctx context.Context, isSeller bool, taxID string) (business.Result, error) {
			return business.Result{TaxID: taxID, Status: business.REJECTED}, nil
		}

		require.NoError(t, f.machine.VerifyBusiness(ctx))
		assert.Equal(t, business.REJECTED, f.machine.Snapshot().Business.Status)
		assert.False(t, f.machine.CanSubmit())
	})

	t.Run("service error leaves result unverified", func(t *testing.T) {
		f := sellerFixture(t)
		f.verifier.VerifyFunc = func(ctx context.Context, isSeller bool, taxID string) (business.Result, error) {
			return business.Unverified(taxID), business.NewVerificationServiceError("down", nil)
		}

		err := f.machine.VerifyBusiness(ctx)
		var businessErr *business.Error
		require.ErrorAs(t, err, &businessErr)
		assert.Equal(t, business.REASON_VERIFICATION_SERVICE, businessErr.Reason)
		assert.Equal(t, business.UNVERIFIED, f.machine.Snapshot().Business.Status)
	})

	t.Run("tax id edited during verification discards the result", func(t *testing.T) {
		f := sellerFixture(t)
		entered := make(chan struct{})
		release := make(chan struct{})
		f.verifier.VerifyFunc = func(ctx context.Context, isSeller bool, taxID string) (business.Result, error) {
			close(entered)
			<-release
			return business.Result{TaxID: taxID, Status: business.VERIFIED}, nil
		}

		done := make(chan error)
		go func() {
			done <- f.machine.VerifyBusiness(ctx)
		}()
		<-entered

		var regErr *Error
		require.ErrorAs(t, f.machine.VerifyBusiness(ctx), &regErr)
		assert.Equal(t, REASON_OPERATION_IN_FLIGHT, regErr.Reason)

		require.NoError(t, f.machine.UpdateField(validation.TAX_ID, "27AAPFU0939F1ZV"))
		close(release)

		require.ErrorAs(t, <-done, &regErr)
		assert.Equal(t, REASON_TAX_ID_CHANGED, regErr.Reason)
		assert.Equal(t, business.UNVERIFIED, f.machine.Snapshot().Business.Status)
	})
}

func TestCanSubmitMatchesGate(t *testing.T) {
	ctx := context.Background()

	for _, fieldsValid := range []bool{false, true} {
		for _, phoneConfirmed := range []bool{false, true} {
			for _, isSeller := range []bool{false, true} {
				for _, businessVerified := range []bool{false, true} {
					f := newFixture()
					fillBuyer(t, f.machine)
					require.NoError(t, f.machine.UpdateField(validation.TAX_ID, testTaxID))
					if isSeller || businessVerified {
						f.machine.SetSeller(true)
					}
					if businessVerified {
						require.NoError(t, f.machine.VerifyBusiness(ctx))
					}
					f.machine.SetSeller(isSeller)
					if phoneConfirmed {
						verifyPhone(t, f.machine)
					}
					if !fieldsValid {
						require.Error(t, f.machine.UpdateField(validation.NAME, ""))
					}

					want := fieldsValid && phoneConfirmed && (!isSeller || businessVerified)
					assert.Equal(t, want, f.machine.CanSubmit(),
						"fields=%v phone=%v seller=%v business=%v", fieldsValid, phoneConfirmed, isSeller, businessVerified)
				}
			}
		}
	}
}

func TestUpdateFieldUnknown(t *testing.T) {
	f := newFixture()

	err := f.machine.UpdateField(validation.Field("nickname"), "x")
	var fieldErr *validation.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, Draft{}, f.machine.Snapshot().Draft)
}
