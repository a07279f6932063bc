package challenge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/International-Combat-Archery-Alliance/account-signup/validation"
)

// Session tracks the one outstanding phone verification code of a signup
// draft.
//
// The mutex only guards state; it is never held while waiting on the
// provider. Reset bumps the generation so that a provider response arriving
// after a reset is dropped instead of resurrecting the old session.
type Session struct {
	guard    IssuanceGuard
	provider Provider
	logger   *slog.Logger

	mu          sync.Mutex
	status      Status
	phoneNumber string
	handle      Handle
	dispatching bool
	generation  uint64
}

func NewSession(guard IssuanceGuard, provider Provider, logger *slog.Logger) *Session {
	return &Session{
		guard:    guard,
		provider: provider,
		logger:   logger,
		status:   IDLE,
	}
}

func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.status
}

// PhoneNumber is the number the current code was sent to, empty when idle.
func (s *Session) PhoneNumber() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.phoneNumber
}

// Dispatching reports whether a Request is waiting on the provider.
func (s *Session) Dispatching() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.dispatching
}

// Request sends a verification code to phoneNumber. Only an IDLE or FAILED
// session may request; a new number goes through Reset first.
func (s *Session) Request(ctx context.Context, phoneNumber string, antiAutomationToken string) error {
	if err := validation.Validate(validation.PHONE, phoneNumber); err != nil {
		return err
	}

	s.mu.Lock()
	if s.dispatching {
		s.mu.Unlock()
		return NewOperationInFlightError("A code is already being sent")
	}
	switch s.status {
	case CONFIRMING:
		s.mu.Unlock()
		return NewOperationInFlightError("A code is being confirmed")
	case ISSUED, CONFIRMED:
		status := s.status
		sameNumber := s.phoneNumber == phoneNumber
		s.mu.Unlock()
		if sameNumber {
			return NewDuplicateIssuanceError(phoneNumber)
		}
		return NewAlreadyIssuedError(status)
	}
	s.dispatching = true
	gen := s.generation
	s.mu.Unlock()

	err := s.dispatch(ctx, gen, phoneNumber, antiAutomationToken)

	s.mu.Lock()
	s.dispatching = false
	s.mu.Unlock()

	return err
}

func (s *Session) dispatch(ctx context.Context, gen uint64, phoneNumber string, antiAutomationToken string) error {
	ok, err := s.guard.Reserve(ctx, phoneNumber)
	if err != nil {
		return NewIssuanceUnavailableError("Could not reserve the phone number", err)
	}
	if !ok {
		return NewDuplicateIssuanceError(phoneNumber)
	}

	handle, dispatchErr := s.provider.Dispatch(ctx, phoneNumber, antiAutomationToken)

	// A code that went out spends the number even if the session was reset
	// while we waited. One that did not go out gives the number back.
	if dispatchErr != nil {
		if err := s.guard.Release(ctx, phoneNumber); err != nil {
			s.logger.WarnContext(ctx, "failed to release phone number reservation", slog.String("error", err.Error()))
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return NewSessionResetError("Phone number changed while the code was being sent")
	}

	if dispatchErr != nil {
		s.status = FAILED
		s.handle = ""
		s.phoneNumber = ""
		return NewDispatchFailedError(fmt.Sprintf("Failed to send code to %s", phoneNumber), dispatchErr)
	}

	s.status = ISSUED
	s.handle = handle
	s.phoneNumber = phoneNumber

	return nil
}

// Confirm submits code for the outstanding challenge. A wrong code leaves the
// session ISSUED so the user can try again without a new code being sent.
func (s *Session) Confirm(ctx context.Context, code string) error {
	if err := validation.Validate(validation.OTP, code); err != nil {
		return err
	}

	s.mu.Lock()
	switch s.status {
	case ISSUED:
	case CONFIRMING:
		s.mu.Unlock()
		return NewOperationInFlightError("The code is already being confirmed")
	default:
		status := s.status
		s.mu.Unlock()
		return NewNotIssuedError(status)
	}
	s.status = CONFIRMING
	handle := s.handle
	gen := s.generation
	s.mu.Unlock()

	err := s.provider.Confirm(ctx, handle, code)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return NewSessionResetError("Phone number changed while the code was being confirmed")
	}

	if err != nil {
		s.status = ISSUED
		if errors.Is(err, ErrCodeMismatch) {
			return NewCodeMismatchError(err)
		}
		return NewConfirmationFailedError("Failed to confirm code", err)
	}

	s.status = CONFIRMED

	return nil
}

// Reset drops any outstanding challenge and returns the session to IDLE.
// Issuance records are left alone.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.status = IDLE
	s.handle = ""
	s.phoneNumber = ""
}
