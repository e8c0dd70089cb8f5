package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/model"
)

const (
	redisKeyPrefix = "web:session:"
	redisSeqKey    = "web:session:seq"
)

// RedisClient is the subset of *redis.Client the store uses.
type RedisClient interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
}

// RedisStore keeps sessions in redis; expiry is delegated to key TTLs.
type RedisStore struct {
	client RedisClient
	sealer *Sealer
}

func NewRedisStore(client RedisClient, sealer *Sealer) *RedisStore {
	return &RedisStore{client: client, sealer: sealer}
}

type redisSession struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	FullName    string    `json:"full_name"`
	Role        string    `json:"role"`
	YearOfBirth string    `json:"year_of_birth"`
	Bearer      []byte    `json:"bearer"`
	ExpiresAt   time.Time `json:"expires_at"`
	CreatedAt   time.Time `json:"created_at"`
}

func (s *RedisStore) Create(ctx context.Context, d Data) (*model.Session, error) {
	ttl := time.Until(d.ExpiresAt)
	if ttl <= 0 {
		return nil, errors.New("session already expired")
	}
	token, err := newToken()
	if err != nil {
		return nil, err
	}
	sealed, err := s.sealer.Seal(d.Bearer)
	if err != nil {
		return nil, fmt.Errorf("seal bearer: %w", err)
	}
	id, err := s.client.Incr(ctx, redisSeqKey).Result()
	if err != nil {
		return nil, fmt.Errorf("next session id: %w", err)
	}

	rs := redisSession{
		ID:          id,
		UserID:      d.UserID,
		Username:    d.Username,
		FullName:    d.FullName,
		Role:        d.Role,
		YearOfBirth: d.YearOfBirth,
		Bearer:      sealed,
		ExpiresAt:   d.ExpiresAt.UTC(),
		CreatedAt:   time.Now().UTC(),
	}
	payload, err := json.Marshal(rs)
	if err != nil {
		return nil, fmt.Errorf("marshal session: %w", err)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+token, string(payload), ttl).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return rs.toModel(token, d.Bearer), nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (*model.Session, error) {
	raw, err := s.client.Get(ctx, redisKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var rs redisSession
	if err := json.Unmarshal([]byte(raw), &rs); err != nil {
		return nil, fmt.Errorf("decode session: %w: %w", ErrUnreadable, err)
	}
	if !rs.ExpiresAt.After(time.Now()) {
		return nil, nil
	}
	bearer, err := s.sealer.Open(rs.Bearer)
	if err != nil {
		return nil, fmt.Errorf("open bearer: %w: %w", ErrUnreadable, err)
	}
	return rs.toModel(token, bearer), nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteExpired is a no-op: redis evicts keys when their TTL runs out.
func (s *RedisStore) DeleteExpired(ctx context.Context) (int64, error) {
	return 0, nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (rs redisSession) toModel(token, bearer string) *model.Session {
	return &model.Session{
		ID:          rs.ID,
		Token:       token,
		UserID:      rs.UserID,
		Username:    rs.Username,
		FullName:    rs.FullName,
		Role:        rs.Role,
		YearOfBirth: rs.YearOfBirth,
		Bearer:      bearer,
		ExpiresAt:   rs.ExpiresAt,
		CreatedAt:   rs.CreatedAt,
	}
}
