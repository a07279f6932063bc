package accounts

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	textTemplate "text/template"

	"github.com/International-Combat-Archery-Alliance/email"
)

//go:embed templates
var templates embed.FS

func SendAccountCreatedEmail(ctx context.Context, emailSender email.Sender, fromAddress string, account Account) error {
	htmlBody, err := makeHtmlBody(account)
	if err != nil {
		return err
	}

	textOnlyBody, err := makeTextOnlyBody(account)
	if err != nil {
		return err
	}

	return emailSender.SendEmail(ctx, email.Email{
		FromAddress: fromAddress,
		ToAddresses: []string{account.Email},
		Subject:     "Your account has been created",
		HTMLBody:    htmlBody,
		TextBody:    textOnlyBody,
	})
}

func makeHtmlBody(account Account) (string, error) {
	tmpl, err := template.ParseFS(templates, "templates/account-created.tmpl")
	if err != nil {
		return "", fmt.Errorf("failed to parse email template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, map[string]any{
		"Account": account,
	})
	if err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}

	return buf.String(), nil
}

func makeTextOnlyBody(account Account) (string, error) {
	tmpl, err := textTemplate.ParseFS(templates, "templates/account-created-textonly.tmpl")
	if err != nil {
		return "", fmt.Errorf("failed to parse email template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, map[string]any{
		"Account": account,
	})
	if err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}

	return buf.String(), nil
}
