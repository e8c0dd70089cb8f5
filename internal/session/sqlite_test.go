package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/database"
)

func setupSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	sealer, err := NewSealer("test-secret")
	if err != nil {
		t.Fatalf("new sealer: %v", err)
	}
	return NewSQLiteStore(db, sealer)
}

func testData(expires time.Time) Data {
	return Data{
		UserID:      "u1",
		Username:    "ana",
		FullName:    "Ana Anić",
		Role:        "admin",
		YearOfBirth: "1990",
		Bearer:      "bearer-token",
		ExpiresAt:   expires,
	}
}

func TestSQLiteCreate(t *testing.T) {
	st := setupSQLiteStore(t)
	ctx := context.Background()

	sess, err := st.Create(ctx, testData(time.Now().Add(time.Hour)))
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if len(sess.Token) != 64 {
		t.Errorf("token length = %d, want 64", len(sess.Token))
	}
	if sess.UserID != "u1" {
		t.Errorf("user_id = %q, want u1", sess.UserID)
	}
	if sess.Bearer != "bearer-token" {
		t.Errorf("bearer = %q, want bearer-token", sess.Bearer)
	}
}

func TestSQLiteBearerStoredSealed(t *testing.T) {
	st := setupSQLiteStore(t)
	ctx := context.Background()

	sess, _ := st.Create(ctx, testData(time.Now().Add(time.Hour)))

	var raw []byte
	if err := st.db.QueryRow(`SELECT bearer FROM sessions WHERE id = ?`, sess.ID).Scan(&raw); err != nil {
		t.Fatalf("select bearer: %v", err)
	}
	if string(raw) == "bearer-token" {
		t.Error("bearer stored in plaintext")
	}
}

func TestSQLiteGet(t *testing.T) {
	st := setupSQLiteStore(t)
	ctx := context.Background()

	created, _ := st.Create(ctx, testData(time.Now().Add(time.Hour)))

	sess, err := st.Get(ctx, created.Token)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if sess == nil {
		t.Fatal("expected session, got nil")
	}
	if sess.ID != created.ID {
		t.Errorf("id = %d, want %d", sess.ID, created.ID)
	}
	if sess.FullName != "Ana Anić" {
		t.Errorf("full_name = %q", sess.FullName)
	}
}

func TestSQLiteGetUnknown(t *testing.T) {
	st := setupSQLiteStore(t)

	sess, err := st.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if sess != nil {
		t.Error("expected nil for unknown token")
	}
}

func TestSQLiteGetAfterSecretRotation(t *testing.T) {
	st := setupSQLiteStore(t)
	ctx := context.Background()
	created, _ := st.Create(ctx, testData(time.Now().Add(time.Hour)))

	rotated, err := NewSealer("rotated-secret")
	if err != nil {
		t.Fatalf("new sealer: %v", err)
	}
	_, err = NewSQLiteStore(st.db, rotated).Get(ctx, created.Token)
	if !errors.Is(err, ErrUnreadable) {
		t.Errorf("err = %v, want ErrUnreadable", err)
	}
}

func TestSQLiteGetExpired(t *testing.T) {
	st := setupSQLiteStore(t)
	ctx := context.Background()

	created, _ := st.Create(ctx, testData(time.Now().Add(-time.Minute)))

	sess, err := st.Get(ctx, created.Token)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if sess != nil {
		t.Error("expected nil for expired session")
	}
}

func TestSQLiteDelete(t *testing.T) {
	st := setupSQLiteStore(t)
	ctx := context.Background()

	created, _ := st.Create(ctx, testData(time.Now().Add(time.Hour)))
	if err := st.Delete(ctx, created.Token); err != nil {
		t.Fatalf("delete: %v", err)
	}
	sess, _ := st.Get(ctx, created.Token)
	if sess != nil {
		t.Error("expected nil after delete")
	}
}

func TestSQLiteDeleteExpired(t *testing.T) {
	st := setupSQLiteStore(t)
	ctx := context.Background()

	st.Create(ctx, testData(time.Now().Add(-time.Hour)))
	st.Create(ctx, testData(time.Now().Add(-time.Minute)))
	live, _ := st.Create(ctx, testData(time.Now().Add(time.Hour)))

	n, err := st.DeleteExpired(ctx)
	if err != nil {
		t.Fatalf("delete expired: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted = %d, want 2", n)
	}
	if sess, _ := st.Get(ctx, live.Token); sess == nil {
		t.Error("live session should survive cleanup")
	}
}
