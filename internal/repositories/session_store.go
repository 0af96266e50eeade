package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"invenBack/internal/models"
)

const sessionKeyPrefix = "session:"

// SessionStore keeps refresh-token sessions in Redis. Expiry is enforced
// by the key TTL, so a missing key means the session is gone or expired.
type SessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func (s *SessionStore) Set(ctx context.Context, refreshToken string, session models.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, sessionKeyPrefix+refreshToken, payload, s.TTL).Err()
}

func (s *SessionStore) Get(ctx context.Context, refreshToken string) (models.Session, error) {
	payload, err := s.Client.Get(ctx, sessionKeyPrefix+refreshToken).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Session{}, models.ErrSessionNotFound
	}
	if err != nil {
		return models.Session{}, err
	}

	var session models.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return models.Session{}, err
	}
	return session, nil
}

func (s *SessionStore) Delete(ctx context.Context, refreshToken string) error {
	return s.Client.Del(ctx, sessionKeyPrefix+refreshToken).Err()
}
