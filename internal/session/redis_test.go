package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// mockRedis implements RedisClient over an in-memory map.
type mockRedis struct {
	mu   sync.Mutex
	data map[string]string
	ttl  map[string]time.Duration
	seq  int64

	SetError error
}

func newMockRedis() *mockRedis {
	return &mockRedis{data: map[string]string{}, ttl: map[string]time.Duration{}}
}

func (m *mockRedis) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	cmd := redis.NewStatusCmd(ctx)
	if m.SetError != nil {
		cmd.SetErr(m.SetError)
		return cmd
	}
	m.data[key] = value.(string)
	m.ttl[key] = expiration
	cmd.SetVal("OK")
	return cmd
}

func (m *mockRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	cmd := redis.NewStringCmd(ctx)
	v, ok := m.data[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(v)
	return cmd
}

func (m *mockRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	cmd := redis.NewIntCmd(ctx)
	var n int64
	for _, k := range keys {
		if _, ok := m.data[k]; ok {
			delete(m.data, k)
			n++
		}
	}
	cmd.SetVal(n)
	return cmd
}

func (m *mockRedis) Incr(ctx context.Context, key string) *redis.IntCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	cmd := redis.NewIntCmd(ctx)
	cmd.SetVal(m.seq)
	return cmd
}

func (m *mockRedis) Ping(ctx context.Context) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx)
	cmd.SetVal("PONG")
	return cmd
}

func setupRedisStore(t *testing.T) (*RedisStore, *mockRedis) {
	t.Helper()
	sealer, err := NewSealer("test-secret")
	if err != nil {
		t.Fatalf("new sealer: %v", err)
	}
	m := newMockRedis()
	return NewRedisStore(m, sealer), m
}

func TestRedisCreateGet(t *testing.T) {
	st, m := setupRedisStore(t)
	ctx := context.Background()

	created, err := st.Create(ctx, testData(time.Now().Add(time.Hour)))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("id = %d, want 1", created.ID)
	}
	if ttl := m.ttl[redisKeyPrefix+created.Token]; ttl <= 0 || ttl > time.Hour {
		t.Errorf("ttl = %v, want (0, 1h]", ttl)
	}

	got, err := st.Get(ctx, created.Token)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected session")
	}
	if got.Bearer != "bearer-token" {
		t.Errorf("bearer = %q", got.Bearer)
	}
	if got.Role != "admin" {
		t.Errorf("role = %q", got.Role)
	}
}

func TestRedisGetAfterSecretRotation(t *testing.T) {
	st, m := setupRedisStore(t)
	ctx := context.Background()
	created, err := st.Create(ctx, testData(time.Now().Add(time.Hour)))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	rotated, err := NewSealer("rotated-secret")
	if err != nil {
		t.Fatalf("new sealer: %v", err)
	}
	if _, err := NewRedisStore(m, rotated).Get(ctx, created.Token); !errors.Is(err, ErrUnreadable) {
		t.Errorf("err = %v, want ErrUnreadable", err)
	}
}

func TestRedisCreateExpired(t *testing.T) {
	st, _ := setupRedisStore(t)
	if _, err := st.Create(context.Background(), testData(time.Now().Add(-time.Second))); err == nil {
		t.Error("expected error for already-expired session")
	}
}

func TestRedisCreateSetError(t *testing.T) {
	st, m := setupRedisStore(t)
	m.SetError = errors.New("connection refused")
	if _, err := st.Create(context.Background(), testData(time.Now().Add(time.Hour))); err == nil {
		t.Error("expected error when redis SET fails")
	}
}

func TestRedisGetMissingAndDelete(t *testing.T) {
	st, _ := setupRedisStore(t)
	ctx := context.Background()

	if s, err := st.Get(ctx, "missing"); err != nil || s != nil {
		t.Errorf("Get(missing) = %v, %v; want nil, nil", s, err)
	}

	created, _ := st.Create(ctx, testData(time.Now().Add(time.Hour)))
	if err := st.Delete(ctx, created.Token); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if s, _ := st.Get(ctx, created.Token); s != nil {
		t.Error("expected nil after delete")
	}
}

func TestRedisPingAndDeleteExpired(t *testing.T) {
	st, _ := setupRedisStore(t)
	if err := st.Ping(context.Background()); err != nil {
		t.Errorf("ping: %v", err)
	}
	if n, err := st.DeleteExpired(context.Background()); n != 0 || err != nil {
		t.Errorf("DeleteExpired = %d, %v", n, err)
	}
}
