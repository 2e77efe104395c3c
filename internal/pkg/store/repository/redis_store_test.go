package repository

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestNewRedisStoreAdapter(t *testing.T) {
	db, mock := redismock.NewClientMock()

	adapter := NewRedisStoreAdapter(db)

	assert.NotNil(t, adapter)
	assert.Equal(t, db, adapter.client)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStoreAdapter_Set(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db)
		ctx := context.Background()
		key := "session:abc"
		value := []byte(`{"session_id":"abc"}`)
		expiration := 24 * time.Hour

		mock.ExpectSet(key, value, expiration).SetVal("OK")

		err := adapter.Set(ctx, key, value, expiration)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db)
		ctx := context.Background()
		key := "session:abc"
		value := []byte(`{"session_id":"abc"}`)
		expiration := 24 * time.Hour

		mock.ExpectSet(key, value, expiration).SetErr(redis.ErrClosed)

		err := adapter.Set(ctx, key, value, expiration)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisStoreAdapter_Get(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db)
		ctx := context.Background()
		key := "session:abc"
		expectedValue := []byte(`{"session_id":"abc"}`)

		mock.ExpectGet(key).SetVal(string(expectedValue))

		result, err := adapter.Get(ctx, key)

		assert.NoError(t, err)
		assert.Equal(t, expectedValue, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("MissingKeyReturnsRedisNil", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db)
		ctx := context.Background()
		key := "session:missing"

		mock.ExpectGet(key).RedisNil()

		result, err := adapter.Get(ctx, key)

		assert.ErrorIs(t, err, redis.Nil)
		assert.Nil(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisStoreAdapter_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db)
		ctx := context.Background()
		key := "session:abc"

		mock.ExpectDel(key).SetVal(1)

		err := adapter.Delete(ctx, key)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db)
		ctx := context.Background()
		key := "session:abc"

		mock.ExpectDel(key).SetErr(redis.ErrClosed)

		err := adapter.Delete(ctx, key)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisStoreAdapter_Exists(t *testing.T) {
	t.Run("KeyPresent", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db)
		ctx := context.Background()
		key := "session:abc"

		mock.ExpectExists(key).SetVal(1)

		exists, err := adapter.Exists(ctx, key)

		assert.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("KeyAbsent", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db)
		ctx := context.Background()
		key := "session:missing"

		mock.ExpectExists(key).SetVal(0)

		exists, err := adapter.Exists(ctx, key)

		assert.NoError(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisStoreAdapter_TTL(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisStoreAdapter(db)
	ctx := context.Background()
	key := "session:abc"

	mock.ExpectTTL(key).SetVal(12 * time.Hour)

	ttl, err := adapter.TTL(ctx, key)

	assert.NoError(t, err)
	assert.Equal(t, 12*time.Hour, ttl)
	assert.NoError(t, mock.ExpectationsWereMet())
}
