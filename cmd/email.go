package main

import (
	"context"
	"log/slog"

	"github.com/International-Combat-Archery-Alliance/account-signup/api"
	"github.com/International-Combat-Archery-Alliance/email"
	"github.com/International-Combat-Archery-Alliance/email/awsses"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
)

var _ email.Sender = &EmailLogger{}

// email.Sender that logs out the email contents for local dev
type EmailLogger struct {
	logger *slog.Logger
}

func (el *EmailLogger) SendEmail(ctx context.Context, e email.Email) error {
	el.logger.Info("email that would be sent", slog.Any("email", e))

	return nil
}

func createProdAWSEmailSender(awsCfg aws.Config) *awsses.AWSSESSender {
	sesClient := sesv2.NewFromConfig(awsCfg)
	return awsses.NewAWSSESSender(sesClient)
}

func createEmailSender(awsCfg aws.Config, logger *slog.Logger, env api.Environment) email.Sender {
	if env == api.LOCAL {
		return &EmailLogger{logger: logger}
	}

	return createProdAWSEmailSender(awsCfg)
}
