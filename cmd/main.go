package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/International-Combat-Archery-Alliance/account-signup/accounts"
	"github.com/International-Combat-Archery-Alliance/account-signup/api"
	"github.com/International-Combat-Archery-Alliance/account-signup/business"
	"github.com/International-Combat-Archery-Alliance/account-signup/challenge"
	"github.com/International-Combat-Archery-Alliance/account-signup/dynamo"
	"github.com/International-Combat-Archery-Alliance/account-signup/gstin"
	"github.com/International-Combat-Archery-Alliance/account-signup/issuance"
	"github.com/International-Combat-Archery-Alliance/account-signup/redisstore"
	"github.com/International-Combat-Archery-Alliance/account-signup/registration"
	"github.com/International-Combat-Archery-Alliance/account-signup/sms"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	settings := getServerSettingsFromEnv()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	err := run(ctx, settings, logger)
	if err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, settings ServerSettings, logger *slog.Logger) error {
	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to get aws config: %w", err)
	}

	db := dynamo.NewDB(dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if settings.DynamoEndpoint != "" {
			o.BaseEndpoint = aws.String(settings.DynamoEndpoint)
		}
	}), settings.DynamoTable)

	issuanceRepo, closeIssuanceRepo, err := createIssuanceRepository(ctx, settings, db)
	if err != nil {
		return err
	}
	defer closeIssuanceRepo()

	secrets, err := loadSecrets(ctx, awsCfg, settings)
	if err != nil {
		return err
	}

	captchaValidator := createCaptchaValidator(settings.Env, newCaptchaHTTPClient(), secrets.TurnstileSecret, settings.CaptchaHostname)

	var smsSender sms.Sender
	if settings.Env == api.LOCAL {
		smsSender = sms.NewLogSender(logger)
	} else {
		smsSender = sms.NewSNSSender(sns.NewFromConfig(awsCfg), settings.SMSSenderID)
	}

	emailSender := createEmailSender(awsCfg, logger, settings.Env)

	guard := issuance.NewGuard(issuanceRepo)
	provider := sms.NewProvider(smsSender, captchaValidator, settings.CaptchaHostname, logger)
	verifier := business.NewVerifier(gstin.NewClient(secrets.GSTINAPIKey, settings.GSTINBaseURL))
	accountService := accounts.NewService(db, emailSender, settings.EmailFrom, logger)

	newMachine := func() *registration.Machine {
		return registration.NewMachine(challenge.NewSession(guard, provider, logger), verifier, accountService)
	}

	drafts := api.NewDraftStore(api.DefaultDraftTTL)
	go drafts.RunSweeper(ctx, time.Minute, logger)

	handler, err := api.NewAPI(newMachine, drafts, logger, settings.Env).Handler()
	if err != nil {
		return err
	}

	s := &http.Server{
		Handler:           handler,
		Addr:              net.JoinHostPort(settings.Host, settings.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := s.Shutdown(shutdownCtx)
		if err != nil {
			logger.Error("Failed to shut down server", slog.String("error", err.Error()))
		}
	}()

	logger.Info("Starting server", slog.String("addr", s.Addr), slog.String("issuance-backend", settings.IssuanceBackend))

	err = s.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func createIssuanceRepository(ctx context.Context, settings ServerSettings, db *dynamo.DB) (issuance.Repository, func(), error) {
	switch settings.IssuanceBackend {
	case "redis":
		client, err := redisstore.NewClient(ctx, settings.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return redisstore.NewStore(client), func() { _ = client.Close() }, nil
	case "memory":
		return issuance.NewMemoryRepository(), func() {}, nil
	case "dynamo":
		return db, func() {}, nil
	}

	return nil, nil, fmt.Errorf("unknown issuance backend %q", settings.IssuanceBackend)
}

type ServerSettings struct {
	Host string
	Port string
	Env  api.Environment

	DynamoTable    string
	DynamoEndpoint string

	IssuanceBackend string
	RedisURL        string

	EmailFrom       string
	SMSSenderID     string
	GSTINBaseURL    string
	CaptchaHostname string

	GSTINAPIKeyParam     string
	TurnstileSecretParam string
}

func getServerSettingsFromEnv() ServerSettings {
	env := api.LOCAL
	if getEnvOrDefault("ENV", "LOCAL") == "PROD" {
		env = api.PROD
	}

	return ServerSettings{
		Host: getEnvOrDefault("HOST", "0.0.0.0"),
		Port: getEnvOrDefault("PORT", "8080"),
		Env:  env,

		DynamoTable:    getEnvOrDefault("DYNAMO_TABLE", "AccountSignup"),
		DynamoEndpoint: getEnvOrDefault("DYNAMO_ENDPOINT", ""),

		IssuanceBackend: getEnvOrDefault("ISSUANCE_BACKEND", "dynamo"),
		RedisURL:        getEnvOrDefault("REDIS_URL", "redis://localhost:6379/0"),

		EmailFrom:       getEnvOrDefault("EMAIL_FROM", "ICAA <info@icaa.world>"),
		SMSSenderID:     getEnvOrDefault("SMS_SENDER_ID", "ICAA"),
		GSTINBaseURL:    getEnvOrDefault("GSTIN_BASE_URL", ""),
		CaptchaHostname: getEnvOrDefault("CAPTCHA_HOSTNAME", "icaa.world"),

		GSTINAPIKeyParam:     getEnvOrDefault("GSTIN_API_KEY_PARAM", "/account-signup/gstin-api-key"),
		TurnstileSecretParam: getEnvOrDefault("TURNSTILE_SECRET_PARAM", "/account-signup/turnstile-secret"),
	}
}

func getEnvOrDefault(key string, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return defaultVal
}
