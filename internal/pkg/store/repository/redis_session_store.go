package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yashdave182/FinAgent/internal/pkg/consts"
	"github.com/yashdave182/FinAgent/internal/pkg/logger"
	"github.com/yashdave182/FinAgent/internal/pkg/models"
)

// RedisStoreOperations is the subset of redis operations the session store needs.
type RedisStoreOperations interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (interface{}, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

const sessionKeyPrefix = "session:"

// RedisSessionStore keeps one JSON blob per conversation session. Every Put
// refreshes the TTL, so sessions expire ttl after the last turn, and the
// history is capped with oldest entries dropped first.
type RedisSessionStore struct {
	store      RedisStoreOperations
	ttl        time.Duration
	maxHistory int
}

func NewRedisSessionStore(store RedisStoreOperations, ttl time.Duration, maxHistory int) *RedisSessionStore {
	return &RedisSessionStore{
		store:      store,
		ttl:        ttl,
		maxHistory: maxHistory,
	}
}

// GetSession returns (nil, nil) when the session does not exist; any other
// failure is an infrastructure error.
func (s *RedisSessionStore) GetSession(ctx context.Context, sessionId string) (*models.ConversationSession, error) {

	raw, err := s.store.Get(ctx, sessionKeyPrefix+sessionId)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		logger.Error(ctx, "SessionStore : error reading session %v: %v", sessionId, err)
		return nil, consts.ErrorSessionStoreUnavailable
	}

	payload, ok := raw.([]byte)
	if !ok {
		logger.Error(ctx, "SessionStore : unexpected payload type for session %v", sessionId)
		return nil, consts.ErrorSessionStoreUnavailable
	}

	var session models.ConversationSession
	if err := json.Unmarshal(payload, &session); err != nil {
		logger.Error(ctx, "SessionStore : error decoding session %v: %v", sessionId, err)
		return nil, consts.ErrorSessionStoreUnavailable
	}

	return &session, nil
}

func (s *RedisSessionStore) PutSession(ctx context.Context, session *models.ConversationSession) error {

	session.UpdatedAt = time.Now().UTC()

	payload, err := json.Marshal(session)
	if err != nil {
		logger.Error(ctx, "SessionStore : error encoding session %v: %v", session.SessionId, err)
		return consts.ErrorSessionStoreUnavailable
	}

	if err := s.store.Set(ctx, sessionKeyPrefix+session.SessionId, payload, s.ttl); err != nil {
		logger.Error(ctx, "SessionStore : error writing session %v: %v", session.SessionId, err)
		return consts.ErrorSessionStoreUnavailable
	}

	return nil
}

// AppendHistory adds a chat entry to the stored session, evicting the oldest
// entries beyond the configured cap. A missing session is a no-op failure the
// caller can ignore on first contact.
func (s *RedisSessionStore) AppendHistory(ctx context.Context, sessionId string, entry models.ChatHistoryEntry) error {

	session, err := s.GetSession(ctx, sessionId)
	if err != nil {
		return err
	}
	if session == nil {
		return consts.ErrorSessionNotFound
	}

	session.ChatHistory = append(session.ChatHistory, entry)
	if len(session.ChatHistory) > s.maxHistory {
		session.ChatHistory = session.ChatHistory[len(session.ChatHistory)-s.maxHistory:]
	}

	return s.PutSession(ctx, session)
}

func (s *RedisSessionStore) DeleteSession(ctx context.Context, sessionId string) error {

	if err := s.store.Delete(ctx, sessionKeyPrefix+sessionId); err != nil {
		logger.Error(ctx, "SessionStore : error deleting session %v: %v", sessionId, err)
		return consts.ErrorSessionStoreUnavailable
	}

	return nil
}

func (s *RedisSessionStore) SessionExists(ctx context.Context, sessionId string) (bool, error) {
	return s.store.Exists(ctx, sessionKeyPrefix+sessionId)
}
