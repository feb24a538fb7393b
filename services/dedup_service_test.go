package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupService_Claim(t *testing.T) {
	ctx := context.Background()
	ttl := 10 * time.Minute

	t.Run("first claim wins", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectSetNX("contact:idempotency:abc", "1", ttl).SetVal(true)

		ok, err := NewDedupService(db, ttl).Claim(ctx, "abc")

		require.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("repeat claim loses", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectSetNX("contact:idempotency:abc", "1", ttl).SetVal(false)

		ok, err := NewDedupService(db, ttl).Claim(ctx, "abc")

		require.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis error", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectSetNX("contact:idempotency:abc", "1", ttl).SetErr(errors.New("connection refused"))

		_, err := NewDedupService(db, ttl).Claim(ctx, "abc")

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDedupService_Release(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.ExpectDel("contact:idempotency:abc").SetVal(1)

	err := NewDedupService(db, time.Minute).Release(context.Background(), "abc")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
