package sms

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"github.com/International-Combat-Archery-Alliance/account-signup/challenge"
	"github.com/International-Combat-Archery-Alliance/account-signup/validation"
	"github.com/International-Combat-Archery-Alliance/captcha"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultCodeTTL     = 10 * time.Minute
	DefaultMaxAttempts = 5
)

type pendingCode struct {
	phoneNumber string
	codeHash    []byte
	expiresAt   time.Time
	attempts    int
}

var _ challenge.Provider = &Provider{}

// Provider sends one-time codes by text message and checks them. Codes are
// held in memory, hashed, and are dropped once confirmed or expired.
type Provider struct {
	sender          Sender
	captcha         captcha.Validator
	captchaHostname string
	logger          *slog.Logger
	ttl             time.Duration
	maxAttempts     int

	now          func() time.Time
	generateCode func() (string, error)
	hashCost     int

	mu      sync.Mutex
	pending map[challenge.Handle]*pendingCode
}

// NewProvider builds a Provider. When captchaHostname is set, captcha tokens
// solved on any other site are refused.
func NewProvider(sender Sender, captchaValidator captcha.Validator, captchaHostname string, logger *slog.Logger) *Provider {
	return &Provider{
		sender:          sender,
		captcha:         captchaValidator,
		captchaHostname: captchaHostname,
		logger:          logger,
		ttl:             DefaultCodeTTL,
		maxAttempts:     DefaultMaxAttempts,
		now:             time.Now,
		generateCode:    generateCode,
		hashCost:        bcrypt.DefaultCost,
		pending:         make(map[challenge.Handle]*pendingCode),
	}
}

func generateCode() (string, error) {
	limit := big.NewInt(1)
	for range validation.OTPLength {
		limit.Mul(limit, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", validation.OTPLength, n.Int64()), nil
}

func (p *Provider) Dispatch(ctx context.Context, phoneNumber string, antiAutomationToken string) (challenge.Handle, error) {
	captchaData, err := p.captcha.Validate(ctx, antiAutomationToken, "")
	if err != nil {
		return "", NewCaptchaInvalidError(err)
	}
	if p.captchaHostname != "" && captchaData.Hostname() != p.captchaHostname {
		return "", NewCaptchaInvalidError(fmt.Errorf("token was solved on %q", captchaData.Hostname()))
	}

	code, err := p.generateCode()
	if err != nil {
		return "", NewCodeGenerationError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), p.hashCost)
	if err != nil {
		return "", NewCodeGenerationError(err)
	}

	message := fmt.Sprintf("Your ICAA verification code is %s. It expires in %d minutes.", code, int(p.ttl.Minutes()))
	err = p.sender.SendSMS(ctx, phoneNumber, message)
	if err != nil {
		return "", NewSendFailedError(phoneNumber, err)
	}

	handle := challenge.Handle(uuid.New().String())

	p.mu.Lock()
	defer p.mu.Unlock()

	p.sweepExpired()
	p.pending[handle] = &pendingCode{
		phoneNumber: phoneNumber,
		codeHash:    hash,
		expiresAt:   p.now().Add(p.ttl),
	}

	return handle, nil
}

// Confirm checks code against the pending entry for handle. The attempt is
// counted before the hash comparison so concurrent guesses cannot exceed
// maxAttempts, and the comparison itself runs without p.mu.
func (p *Provider) Confirm(ctx context.Context, handle challenge.Handle, code string) error {
	p.mu.Lock()
	pending, ok := p.pending[handle]
	if !ok {
		p.mu.Unlock()
		return NewUnknownHandleError()
	}

	if p.now().After(pending.expiresAt) {
		delete(p.pending, handle)
		p.mu.Unlock()
		return NewCodeExpiredError()
	}

	if pending.attempts >= p.maxAttempts {
		p.mu.Unlock()
		return NewTooManyAttemptsError()
	}

	pending.attempts++
	attempts := pending.attempts
	codeHash := pending.codeHash
	phoneNumber := pending.phoneNumber
	p.mu.Unlock()

	err := bcrypt.CompareHashAndPassword(codeHash, []byte(code))
	if err != nil {
		p.logger.InfoContext(ctx, "verification code mismatch",
			slog.String("phone", phoneNumber),
			slog.Int("attempts", attempts),
		)
		return challenge.ErrCodeMismatch
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pending[handle] != pending {
		return NewUnknownHandleError()
	}
	delete(p.pending, handle)

	return nil
}

// must hold p.mu
func (p *Provider) sweepExpired() {
	now := p.now()
	for handle, pending := range p.pending {
		if now.After(pending.expiresAt) {
			delete(p.pending, handle)
		}
	}
}
