package accounts

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/International-Combat-Archery-Alliance/account-signup/registration"
	"github.com/International-Combat-Archery-Alliance/account-signup/validation"
	"github.com/International-Combat-Archery-Alliance/email"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Account struct {
	ID           uuid.UUID
	Version      int
	CreatedAt    time.Time
	Name         string
	Email        string
	Phone        string
	PasswordHash []byte
	IsSeller     bool
	TaxID        string
}

type Repository interface {
	CreateAccount(ctx context.Context, account Account) error
}

var _ registration.AccountCreator = &Service{}

// Service is the account creation collaborator of the signup flow. It stores
// the account and sends a welcome email.
type Service struct {
	repo        Repository
	emailSender email.Sender
	fromAddress string
	logger      *slog.Logger
	now         func() time.Time
}

func NewService(repo Repository, emailSender email.Sender, fromAddress string, logger *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		emailSender: emailSender,
		fromAddress: fromAddress,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *Service) Create(ctx context.Context, payload registration.Payload) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", registration.NewAccountCreationError(validation.PASSWORD, "Password could not be used", err)
	}

	account := Account{
		ID:           uuid.New(),
		Version:      1,
		CreatedAt:    s.now().UTC(),
		Name:         payload.Name,
		Email:        payload.Email,
		Phone:        payload.Phone,
		PasswordHash: hash,
		IsSeller:     payload.IsSeller,
	}
	if payload.TaxID != nil {
		account.TaxID = *payload.TaxID
	}

	err = s.repo.CreateAccount(ctx, account)
	if err != nil {
		var accountErr *Error
		if errors.As(err, &accountErr) && accountErr.Reason == REASON_ACCOUNT_ALREADY_EXISTS {
			return "", registration.NewAccountCreationError(validation.EMAIL, "An account with this email already exists", err)
		}

		return "", registration.NewAccountCreationError(validation.EMAIL, "Failed to create account, please try again", err)
	}

	err = SendAccountCreatedEmail(ctx, s.emailSender, s.fromAddress, account)
	if err != nil {
		// The account already exists, so this is only logged.
		s.logger.ErrorContext(ctx, "failed to send account created email",
			slog.String("error", err.Error()),
			slog.String("accountId", account.ID.String()),
		)
	}

	return account.ID.String(), nil
}
