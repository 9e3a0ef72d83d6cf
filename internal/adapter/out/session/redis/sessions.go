package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"myforum/internal/model"
	"myforum/internal/service"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "forum:session:"

var (
	ErrEmptyConnectionURL = errors.New("redis: empty connection url")
	ErrConnectionFailed   = errors.New("redis: connection failed")
)

type SessionStore struct {
	client redis.UniversalClient
	now    func() time.Time
}

func NewSessionStore(client redis.UniversalClient) *SessionStore {
	return &SessionStore{client: client, now: time.Now}
}

type storedSession struct {
	UserID    int64     `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Save stores the session with a TTL matching its expiry.
func (s *SessionStore) Save(ctx context.Context, session model.Session) error {
	ttl := session.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return fmt.Errorf("%w: session already expired", service.ErrInvalidRequest)
	}

	data, err := json.Marshal(storedSession{UserID: session.UserID, ExpiresAt: session.ExpiresAt})
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+session.Token, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, token string) (model.Session, error) {
	data, err := s.client.Get(ctx, keyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.Session{}, service.ErrNotFound
		}
		return model.Session{}, fmt.Errorf("redis get session: %w", err)
	}

	var st storedSession
	if err := json.Unmarshal(data, &st); err != nil {
		return model.Session{}, fmt.Errorf("unmarshal session: %w", err)
	}
	return model.Session{Token: token, UserID: st.UserID, ExpiresAt: st.ExpiresAt}, nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("redis del session: %w", err)
	}
	return nil
}

// Open connects to url (redis:// or rediss://) and pings it, retrying with a
// linear backoff.
func Open(ctx context.Context, url string, attempts int, interval time.Duration) (redis.UniversalClient, error) {
	if url == "" {
		return nil, ErrEmptyConnectionURL
	}
	if !strings.HasPrefix(url, "redis://") && !strings.HasPrefix(url, "rediss://") {
		return nil, fmt.Errorf("%w: unsupported scheme", ErrConnectionFailed)
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Join(ErrConnectionFailed, err)
	}

	var lastErr error
	for i, n := 0, max(attempts, 1); i < n; i++ {
		client := redis.NewClient(opts)
		if lastErr = client.Ping(ctx).Err(); lastErr == nil {
			return client, nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrConnectionFailed, ctx.Err())
		case <-time.After(time.Duration(i+1) * interval):
		}
	}
	return nil, errors.Join(ErrConnectionFailed, lastErr)
}
