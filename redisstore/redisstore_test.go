package redisstore

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/International-Combat-Archery-Alliance/account-signup/issuance"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

var redisTestContainer *tcredis.RedisContainer
var redisClient *redis.Client
var store *Store

func TestMain(m *testing.M) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*60)
	defer cancel()

	err := setupRedis(ctx)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer shutdownRedis(ctx)

	os.Exit(m.Run())
}

func setupRedis(ctx context.Context) error {
	url := "redis://localhost:6379"
	if _, ok := os.LookupEnv("TEST_IN_CI"); !ok {
		var err error
		redisTestContainer, err = tcredis.Run(ctx, "redis:7-alpine")
		if err != nil {
			return fmt.Errorf("error starting redis testcontainer: %w", err)
		}

		url, err = redisTestContainer.ConnectionString(ctx)
		if err != nil {
			return fmt.Errorf("failed to get redis connection string: %w", err)
		}
	}

	var err error
	redisClient, err = NewClient(ctx, url)
	if err != nil {
		return err
	}
	store = NewStore(redisClient)

	return nil
}

func resetRedis(ctx context.Context) {
	err := redisClient.FlushAll(ctx).Err()
	if err != nil {
		fmt.Printf("failed to flush redis: %s", err)
	}
}

func shutdownRedis(ctx context.Context) {
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if redisTestContainer == nil {
		return
	}

	err := redisTestContainer.Terminate(ctx)
	if err != nil {
		fmt.Printf("error terminating redis testcontainer: %s\n", err)
	}
}

func TestIssuanceRecords(t *testing.T) {
	ctx := context.Background()
	a := assert.New(t)

	t.Run("record does not exist", func(t *testing.T) {
		resetRedis(ctx)

		_, err := store.GetIssuanceRecord(ctx, "+15550000001")
		var issuanceErr *issuance.Error
		require.ErrorAs(t, err, &issuanceErr)
		a.Equal(issuance.REASON_RECORD_DOES_NOT_EXIST, issuanceErr.Reason)
	})

	t.Run("create then get", func(t *testing.T) {
		resetRedis(ctx)
		record := issuance.Record{
			PhoneNumber: "+15550000002",
			IssuedAt:    time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		}

		require.NoError(t, store.CreateIssuanceRecord(ctx, record))

		retrieved, err := store.GetIssuanceRecord(ctx, record.PhoneNumber)
		a.NoError(err)
		a.Equal(record, retrieved)
	})

	t.Run("records do not expire", func(t *testing.T) {
		resetRedis(ctx)
		record := issuance.Record{PhoneNumber: "+15550000003", IssuedAt: time.Now().UTC()}
		require.NoError(t, store.CreateIssuanceRecord(ctx, record))

		ttl, err := redisClient.TTL(ctx, issuanceKey(record.PhoneNumber)).Result()
		require.NoError(t, err)
		a.Equal(time.Duration(-1), ttl)
	})

	t.Run("creating twice fails with already exists", func(t *testing.T) {
		resetRedis(ctx)
		record := issuance.Record{PhoneNumber: "+15550000004", IssuedAt: time.Now().UTC()}
		require.NoError(t, store.CreateIssuanceRecord(ctx, record))

		err := store.CreateIssuanceRecord(ctx, record)
		var issuanceErr *issuance.Error
		require.ErrorAs(t, err, &issuanceErr)
		a.Equal(issuance.REASON_RECORD_ALREADY_EXISTS, issuanceErr.Reason)
	})

	t.Run("delete removes the record", func(t *testing.T) {
		resetRedis(ctx)
		record := issuance.Record{PhoneNumber: "+15550000005", IssuedAt: time.Now().UTC()}
		require.NoError(t, store.CreateIssuanceRecord(ctx, record))

		a.NoError(store.DeleteIssuanceRecord(ctx, record.PhoneNumber))

		_, err := store.GetIssuanceRecord(ctx, record.PhoneNumber)
		var issuanceErr *issuance.Error
		require.ErrorAs(t, err, &issuanceErr)
		a.Equal(issuance.REASON_RECORD_DOES_NOT_EXIST, issuanceErr.Reason)
	})

	t.Run("corrupt value is reported", func(t *testing.T) {
		resetRedis(ctx)
		require.NoError(t, redisClient.Set(ctx, issuanceKey("+15550000006"), "yesterday", 0).Err())

		_, err := store.GetIssuanceRecord(ctx, "+15550000006")
		var issuanceErr *issuance.Error
		require.ErrorAs(t, err, &issuanceErr)
		a.Equal(issuance.REASON_FAILED_TO_TRANSLATE_TO_DB_MODEL, issuanceErr.Reason)
	})
}
