package sms

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

type Sender interface {
	SendSMS(ctx context.Context, phoneNumber string, message string) error
}

type snsPublisher interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

var _ Sender = &SNSSender{}

// SNSSender delivers text messages directly to a phone number through SNS.
type SNSSender struct {
	client   snsPublisher
	senderID string
}

func NewSNSSender(client *sns.Client, senderID string) *SNSSender {
	return &SNSSender{
		client:   client,
		senderID: senderID,
	}
}

func (s *SNSSender) SendSMS(ctx context.Context, phoneNumber string, message string) error {
	attributes := map[string]types.MessageAttributeValue{
		"AWS.SNS.SMS.SMSType": {
			DataType:    aws.String("String"),
			StringValue: aws.String("Transactional"),
		},
	}
	if s.senderID != "" {
		attributes["AWS.SNS.SMS.SenderID"] = types.MessageAttributeValue{
			DataType:    aws.String("String"),
			StringValue: aws.String(s.senderID),
		}
	}

	_, err := s.client.Publish(ctx, &sns.PublishInput{
		PhoneNumber:       aws.String(phoneNumber),
		Message:           aws.String(message),
		MessageAttributes: attributes,
	})
	return err
}

var _ Sender = &LogSender{}

// LogSender writes messages to the log instead of sending them. Local dev only.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (l *LogSender) SendSMS(ctx context.Context, phoneNumber string, message string) error {
	l.logger.InfoContext(ctx, "sms that would be sent", slog.String("phone", phoneNumber), slog.String("message", message))

	return nil
}
