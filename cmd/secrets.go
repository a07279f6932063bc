package main

import (
	"context"
	"fmt"

	"github.com/International-Combat-Archery-Alliance/account-signup/api"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

type Secrets struct {
	GSTINAPIKey     string
	TurnstileSecret string
}

type parameterGetter interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// loadSecrets reads secrets from SSM in PROD. Locally they come from the
// environment and may be empty.
func loadSecrets(ctx context.Context, awsCfg aws.Config, settings ServerSettings) (Secrets, error) {
	if settings.Env == api.LOCAL {
		return Secrets{
			GSTINAPIKey:     getEnvOrDefault("GSTIN_API_KEY", ""),
			TurnstileSecret: getEnvOrDefault("TURNSTILE_SECRET", ""),
		}, nil
	}

	return loadSecretsFromSSM(ctx, ssm.NewFromConfig(awsCfg), settings)
}

func loadSecretsFromSSM(ctx context.Context, client parameterGetter, settings ServerSettings) (Secrets, error) {
	gstinKey, err := getSecureParameter(ctx, client, settings.GSTINAPIKeyParam)
	if err != nil {
		return Secrets{}, err
	}

	turnstileSecret, err := getSecureParameter(ctx, client, settings.TurnstileSecretParam)
	if err != nil {
		return Secrets{}, err
	}

	return Secrets{
		GSTINAPIKey:     gstinKey,
		TurnstileSecret: turnstileSecret,
	}, nil
}

func getSecureParameter(ctx context.Context, client parameterGetter, name string) (string, error) {
	resp, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get ssm parameter %q: %w", name, err)
	}
	if resp.Parameter == nil || resp.Parameter.Value == nil {
		return "", fmt.Errorf("ssm parameter %q has no value", name)
	}

	return *resp.Parameter.Value, nil
}
