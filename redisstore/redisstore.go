package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/International-Combat-Archery-Alliance/account-signup/issuance"
	"github.com/redis/go-redis/v9"
)

const (
	issuanceKeyPrefix = "signup:issuance:"
	requestTimeout    = time.Second
)

var _ issuance.Repository = &Store{}

// Store keeps issuance records in Redis so every API instance sees the same
// set of phone numbers. Records never expire.
type Store struct {
	client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// NewClient parses a redis:// URL and pings the server.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return client, nil
}

func issuanceKey(phoneNumber string) string {
	return issuanceKeyPrefix + phoneNumber
}

func (s *Store) GetIssuanceRecord(ctx context.Context, phoneNumber string) (issuance.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	value, err := s.client.Get(ctx, issuanceKey(phoneNumber)).Result()
	if errors.Is(err, redis.Nil) {
		return issuance.Record{}, issuance.NewRecordDoesNotExistError(fmt.Sprintf("Issuance record for %s not found", phoneNumber), nil)
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return issuance.Record{}, issuance.NewTimeoutError("GetIssuanceRecord timed out")
		}
		return issuance.Record{}, issuance.NewFailedToFetchError(fmt.Sprintf("Failed to fetch issuance record for %s", phoneNumber), err)
	}

	issuedAt, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return issuance.Record{}, issuance.NewFailedToTranslateToDBModelError(fmt.Sprintf("Stored issuance time %q is invalid", value), err)
	}

	return issuance.Record{PhoneNumber: phoneNumber, IssuedAt: issuedAt}, nil
}

func (s *Store) CreateIssuanceRecord(ctx context.Context, record issuance.Record) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	created, err := s.client.SetNX(ctx, issuanceKey(record.PhoneNumber), record.IssuedAt.UTC().Format(time.RFC3339Nano), 0).Result()
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return issuance.NewTimeoutError("CreateIssuanceRecord timed out")
		}
		return issuance.NewFailedToWriteError("Failed SETNX call", err)
	}
	if !created {
		return issuance.NewRecordAlreadyExistsError(fmt.Sprintf("Issuance record for %s already exists", record.PhoneNumber), nil)
	}

	return nil
}

func (s *Store) DeleteIssuanceRecord(ctx context.Context, phoneNumber string) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	err := s.client.Del(ctx, issuanceKey(phoneNumber)).Err()
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return issuance.NewTimeoutError("DeleteIssuanceRecord timed out")
		}
		return issuance.NewFailedToWriteError(fmt.Sprintf("Failed to delete issuance record for %s", phoneNumber), err)
	}

	return nil
}
