// Package session keeps browser sessions and the backend bearer token that
// belongs to each of them.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/model"
)

// Data is what a new session is created from.
type Data struct {
	UserID      string
	Username    string
	FullName    string
	Role        string
	YearOfBirth string
	Bearer      string
	ExpiresAt   time.Time
}

// ErrUnreadable marks a stored session whose bearer can no longer be
// decrypted or decoded, as after a session secret rotation. Such a session
// is dead and should be deleted.
var ErrUnreadable = errors.New("session unreadable")

// Store persists sessions keyed by their cookie token. Get returns nil, nil
// for unknown or expired tokens.
type Store interface {
	Create(ctx context.Context, d Data) (*model.Session, error)
	Get(ctx context.Context, token string) (*model.Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
}

func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
