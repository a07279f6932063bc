package challenge

import (
	"context"
	"errors"
)

// Handle identifies one dispatched code at the provider. It is opaque to the
// session.
type Handle string

// ErrCodeMismatch is returned by Provider.Confirm when the code is wrong.
// Any other error is treated as a provider failure.
var ErrCodeMismatch = errors.New("verification code does not match")

type Provider interface {
	// Dispatch sends a code to phoneNumber. antiAutomationToken is whatever
	// the client obtained from the bot check and is passed through untouched.
	Dispatch(ctx context.Context, phoneNumber string, antiAutomationToken string) (Handle, error)
	Confirm(ctx context.Context, handle Handle, code string) error
}

// IssuanceGuard hands out one code per phone number. Reserve must be atomic:
// of two concurrent callers for the same number only one gets true.
type IssuanceGuard interface {
	Reserve(ctx context.Context, phoneNumber string) (bool, error)
	Release(ctx context.Context, phoneNumber string) error
}
