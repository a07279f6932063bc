package api

import (
	"context"
	"log/slog"

	"github.com/International-Combat-Archery-Alliance/account-signup/business"
	"github.com/International-Combat-Archery-Alliance/account-signup/challenge"
	"github.com/International-Combat-Archery-Alliance/account-signup/registration"
)

var noopLogger = slog.New(slog.DiscardHandler)

const correctCode = "123456"

type mockProvider struct {
	DispatchFunc func(ctx context.Context, phoneNumber string, antiAutomationToken string) (challenge.Handle, error)
	ConfirmFunc  func(ctx context.Context, handle challenge.Handle, code string) error
}

var _ challenge.Provider = &mockProvider{}

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
	if code != correctCode {
		return challenge.ErrCodeMismatch
	}
	return nil
}

type mockBusinessService struct {
	LookupFunc func(ctx context.Context, taxID string) (business.LookupResult, error)
}

var _ business.Service = &mockBusinessService{}

func (m *mockBusinessService) Lookup(ctx context.Context, taxID string) (business.LookupResult, error) {
	if m.LookupFunc != nil {
		return m.LookupFunc(ctx, taxID)
	}
	return business.LookupResult{Status: business.VERIFIED, Payload: map[string]any{"lgnm": "ACME TRADERS"}}, nil
}

type mockAccountCreator struct {
	CreateFunc func(ctx context.Context, payload registration.Payload) (string, error)
}

var _ registration.AccountCreator = &mockAccountCreator{}

func (m *mockAccountCreator) Create(ctx context.Context, payload registration.Payload) (string, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, payload)
	}
	return "account-1", nil
}
