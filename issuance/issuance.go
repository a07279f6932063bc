package issuance

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Record marks that a verification code was sent to PhoneNumber. Records
// never expire on their own.
type Record struct {
	PhoneNumber string
	IssuedAt    time.Time
}

type Repository interface {
	GetIssuanceRecord(ctx context.Context, phoneNumber string) (Record, error)
	CreateIssuanceRecord(ctx context.Context, record Record) error
	DeleteIssuanceRecord(ctx context.Context, phoneNumber string) error
}

// Guard blocks a second verification code from being sent to a phone number
// that has already been sent one. It is a local throttle, not an anti-abuse
// control.
type Guard struct {
	repo Repository
	now  func() time.Time
}

func NewGuard(repo Repository) *Guard {
	return &Guard{
		repo: repo,
		now:  time.Now,
	}
}

func (g *Guard) CanIssue(ctx context.Context, phoneNumber string) (bool, error) {
	_, err := g.repo.GetIssuanceRecord(ctx, phoneNumber)
	if err == nil {
		return false, nil
	}

	var issuanceErr *Error
	if errors.As(err, &issuanceErr) && issuanceErr.Reason == REASON_RECORD_DOES_NOT_EXIST {
		return true, nil
	}

	return false, NewFailedToFetchError(fmt.Sprintf("Failed to look up issuance record for %s", phoneNumber), err)
}

// RecordIssuance stores the issuance marker. Recording a number that already
// has a record is not an error: the invariant of one record per number holds.
func (g *Guard) RecordIssuance(ctx context.Context, phoneNumber string) error {
	err := g.repo.CreateIssuanceRecord(ctx, Record{
		PhoneNumber: phoneNumber,
		IssuedAt:    g.now().UTC(),
	})
	if err != nil {
		var issuanceErr *Error
		if errors.As(err, &issuanceErr) && issuanceErr.Reason == REASON_RECORD_ALREADY_EXISTS {
			return nil
		}

		return err
	}

	return nil
}

// Reserve atomically writes the marker for phoneNumber before a code is sent.
// It reports false when the number already has one, so two callers racing on
// the same number cannot both send.
func (g *Guard) Reserve(ctx context.Context, phoneNumber string) (bool, error) {
	err := g.repo.CreateIssuanceRecord(ctx, Record{
		PhoneNumber: phoneNumber,
		IssuedAt:    g.now().UTC(),
	})
	if err == nil {
		return true, nil
	}

	var issuanceErr *Error
	if errors.As(err, &issuanceErr) && issuanceErr.Reason == REASON_RECORD_ALREADY_EXISTS {
		return false, nil
	}

	return false, err
}

// Release gives back a reservation whose code was never sent.
func (g *Guard) Release(ctx context.Context, phoneNumber string) error {
	return g.repo.DeleteIssuanceRecord(ctx, phoneNumber)
}

// Clear removes the marker for phoneNumber. Nothing in the signup flow calls
// this; it exists for operators clearing storage by hand.
func (g *Guard) Clear(ctx context.Context, phoneNumber string) error {
	return g.repo.DeleteIssuanceRecord(ctx, phoneNumber)
}
