package registration

import (
	"context"
	"errors"
	"sync"

	"github.com/International-Combat-Archery-Alliance/account-signup/business"
	"github.com/International-Combat-Archery-Alliance/account-signup/challenge"
	"github.com/International-Combat-Archery-Alliance/account-signup/validation"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	phoneNotVerifiedMessage    = "Phone number has not been verified"
	businessNotVerifiedMessage = "GST number has not been verified"
	accountCreationMessage     = "Failed to create account"
)

var tracer = otel.Tracer("github.com/International-Combat-Archery-Alliance/account-signup/registration")

type Draft struct {
	Name     string
	Email    string
	Phone    string
	Password string
	OTPCode  string
	IsSeller bool
	TaxID    string
}

func (d Draft) form() validation.Form {
	return validation.Form{
		Name:     d.Name,
		Email:    d.Email,
		Phone:    d.Phone,
		Password: d.Password,
		IsSeller: d.IsSeller,
		TaxID:    d.TaxID,
	}
}

// Payload is handed to the AccountCreator. It never carries the OTP code or
// the challenge handle.
type Payload struct {
	Name     string
	Email    string
	Phone    string
	Password string
	IsSeller bool
	TaxID    *string
}

type AccountCreator interface {
	Create(ctx context.Context, payload Payload) (accountID string, err error)
}

type BusinessVerifier interface {
	Verify(ctx context.Context, isSeller bool, taxID string) (business.Result, error)
}

type Outcome string

const (
	ACCEPTED Outcome = "ACCEPTED"
	REJECTED Outcome = "REJECTED"
)

type SubmitResult struct {
	Outcome     Outcome
	AccountID   string
	Payload     Payload
	FieldErrors validation.FieldErrors
}

type State struct {
	Draft             Draft
	ChallengeStatus   challenge.Status
	Business          business.Result
	FieldErrors       validation.FieldErrors
	CanSubmit         bool
	CanRequestCode    bool
	CanConfirmCode    bool
	CanVerifyBusiness bool
}

// Machine orchestrates one signup draft: it owns the form values, the phone
// challenge and the business verification result, and decides when the form
// may be submitted.
type Machine struct {
	session  *challenge.Session
	verifier BusinessVerifier
	accounts AccountCreator

	mu            sync.Mutex
	draft         Draft
	business      business.Result
	taxGeneration uint64
	verifying     bool
	submitting    bool
}

func NewMachine(session *challenge.Session, verifier BusinessVerifier, accounts AccountCreator) *Machine {
	return &Machine{
		session:  session,
		verifier: verifier,
		accounts: accounts,
		business: business.Unverified(""),
	}
}

// UpdateField stores value even when it is invalid so the form keeps what the
// user typed; the validation error is returned for display. Editing the phone
// drops the phone challenge and editing the tax ID drops the business result.
func (m *Machine) UpdateField(field validation.Field, value string) error {
	validationErr := validation.Validate(field, value)

	m.mu.Lock()
	defer m.mu.Unlock()

	switch field {
	case validation.NAME:
		m.draft.Name = value
	case validation.EMAIL:
		m.draft.Email = value
	case validation.PASSWORD:
		m.draft.Password = value
	case validation.OTP:
		m.draft.OTPCode = value
	case validation.PHONE:
		m.draft.Phone = value
		m.session.Reset()
	case validation.TAX_ID:
		m.draft.TaxID = value
		m.business = business.Unverified(value)
		m.taxGeneration++
	}

	return validationErr
}

// SetSeller toggles the seller flag. A VERIFIED business result is kept when
// the flag is cleared so toggling back does not force a new lookup.
func (m *Machine) SetSeller(isSeller bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.draft.IsSeller = isSeller
}

func (m *Machine) RequestChallenge(ctx context.Context, antiAutomationToken string) (err error) {
	ctx, span := tracer.Start(ctx, "registration.RequestChallenge")
	defer func() { endSpan(span, err) }()

	m.mu.Lock()
	phone := m.draft.Phone
	m.mu.Unlock()

	return m.session.Request(ctx, phone, antiAutomationToken)
}

// ConfirmCode stores code on the draft and confirms it against the
// outstanding challenge.
func (m *Machine) ConfirmCode(ctx context.Context, code string) (err error) {
	ctx, span := tracer.Start(ctx, "registration.ConfirmCode")
	defer func() { endSpan(span, err) }()

	if err := m.UpdateField(validation.OTP, code); err != nil {
		return err
	}

	return m.session.Confirm(ctx, code)
}

func (m *Machine) VerifyBusiness(ctx context.Context) (err error) {
	ctx, span := tracer.Start(ctx, "registration.VerifyBusiness")
	defer func() { endSpan(span, err) }()

	m.mu.Lock()
	if m.verifying {
		m.mu.Unlock()
		return NewOperationInFlightError("GST number is already being verified")
	}
	if m.business.Status == business.VERIFIED && m.business.TaxID == m.draft.TaxID {
		m.mu.Unlock()
		return nil
	}
	isSeller := m.draft.IsSeller
	taxID := m.draft.TaxID
	gen := m.taxGeneration
	m.verifying = true
	m.mu.Unlock()

	result, verifyErr := m.verifier.Verify(ctx, isSeller, taxID)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.verifying = false

	if gen != m.taxGeneration {
		return NewTaxIDChangedError()
	}
	if verifyErr != nil {
		return verifyErr
	}

	m.business = result
	span.SetAttributes(attribute.String("business.status", result.Status.String()))

	return nil
}

func (m *Machine) CanSubmit() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.gateErrors()) == 0
}

// Submit hands the payload to the AccountCreator when every gate is open.
// A closed gate, or a refusal from the AccountCreator, comes back as a
// REJECTED result naming the fields to fix; verification state is never
// touched by a failed submission.
func (m *Machine) Submit(ctx context.Context) (result SubmitResult, err error) {
	ctx, span := tracer.Start(ctx, "registration.Submit")
	defer func() {
		span.SetAttributes(attribute.String("submit.outcome", string(result.Outcome)))
		endSpan(span, err)
	}()

	m.mu.Lock()
	if m.submitting {
		m.mu.Unlock()
		return SubmitResult{}, NewOperationInFlightError("The form is already being submitted")
	}
	if errs := m.gateErrors(); len(errs) > 0 {
		m.mu.Unlock()
		return SubmitResult{Outcome: REJECTED, FieldErrors: errs}, nil
	}
	payload := m.payload()
	m.submitting = true
	m.mu.Unlock()

	accountID, createErr := m.accounts.Create(ctx, payload)

	m.mu.Lock()
	m.submitting = false
	m.mu.Unlock()

	if createErr != nil {
		span.RecordError(createErr)

		fieldErr := validation.FieldError{Field: validation.EMAIL, Message: accountCreationMessage}
		var accountErr *AccountCreationError
		if errors.As(createErr, &accountErr) {
			if accountErr.Field != "" {
				fieldErr.Field = accountErr.Field
			}
			fieldErr.Message = accountErr.Message
		}

		return SubmitResult{Outcome: REJECTED, FieldErrors: validation.FieldErrors{fieldErr}}, nil
	}

	return SubmitResult{Outcome: ACCEPTED, AccountID: accountID, Payload: payload}, nil
}

func (m *Machine) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	status := m.session.Status()
	gateErrs := m.gateErrors()
	phoneValid := validation.Validate(validation.PHONE, m.draft.Phone) == nil
	taxIDValid := validation.Validate(validation.TAX_ID, m.draft.TaxID) == nil

	canVerify := m.draft.IsSeller && taxIDValid && !m.verifying && m.business.Status != business.VERIFIED

	return State{
		Draft:             m.draft,
		ChallengeStatus:   status,
		Business:          m.business,
		FieldErrors:       gateErrs,
		CanSubmit:         len(gateErrs) == 0 && !m.submitting,
		CanRequestCode:    phoneValid && !m.session.Dispatching() && (status == challenge.IDLE || status == challenge.FAILED),
		CanConfirmCode:    status == challenge.ISSUED,
		CanVerifyBusiness: canVerify,
	}
}

// gateErrors computes the submission gate. Callers hold m.mu.
func (m *Machine) gateErrors() validation.FieldErrors {
	errs := validation.ValidateAll(m.draft.form())

	// A phone edit racing a code request can leave the session confirmed for
	// the previous number.
	phoneVerified := m.session.Status() == challenge.CONFIRMED && m.session.PhoneNumber() == m.draft.Phone
	if !phoneVerified && !errs.Has(validation.PHONE) {
		errs = append(errs, validation.FieldError{Field: validation.PHONE, Message: phoneNotVerifiedMessage})
	}

	if m.draft.IsSeller && m.business.Status != business.VERIFIED && !errs.Has(validation.TAX_ID) {
		errs = append(errs, validation.FieldError{Field: validation.TAX_ID, Message: businessNotVerifiedMessage})
	}

	return errs
}

func (m *Machine) payload() Payload {
	p := Payload{
		Name:     m.draft.Name,
		Email:    m.draft.Email,
		Phone:    m.draft.Phone,
		Password: m.draft.Password,
		IsSeller: m.draft.IsSeller,
	}
	if m.draft.IsSeller {
		taxID := m.draft.TaxID
		p.TaxID = &taxID
	}

	return p
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
