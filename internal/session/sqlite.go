package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/model"
)

// SQLiteStore keeps sessions in the local sessions table.
type SQLiteStore struct {
	db     *sql.DB
	sealer *Sealer
}

func NewSQLiteStore(db *sql.DB, sealer *Sealer) *SQLiteStore {
	return &SQLiteStore{db: db, sealer: sealer}
}

const sessionCols = `id, token, user_id, username, full_name, role, year_of_birth, bearer, expires_at, created_at`

func (s *SQLiteStore) scan(row interface{ Scan(...any) error }) (*model.Session, error) {
	var (
		sess   model.Session
		sealed []byte
	)
	err := row.Scan(&sess.ID, &sess.Token, &sess.UserID, &sess.Username, &sess.FullName,
		&sess.Role, &sess.YearOfBirth, &sealed, &sess.ExpiresAt, &sess.CreatedAt)
	if err != nil {
		return nil, err
	}
	bearer, err := s.sealer.Open(sealed)
	if err != nil {
		return nil, fmt.Errorf("open bearer: %w: %w", ErrUnreadable, err)
	}
	sess.Bearer = bearer
	return &sess, nil
}

func (s *SQLiteStore) Create(ctx context.Context, d Data) (*model.Session, error) {
	token, err := newToken()
	if err != nil {
		return nil, err
	}
	sealed, err := s.sealer.Seal(d.Bearer)
	if err != nil {
		return nil, fmt.Errorf("seal bearer: %w", err)
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (token, user_id, username, full_name, role, year_of_birth, bearer, expires_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		token, d.UserID, d.Username, d.FullName, d.Role, d.YearOfBirth, sealed, d.ExpiresAt.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	row := s.db.QueryRowContext(ctx, `SELECT `+sessionCols+` FROM sessions WHERE id = ?`, id)
	return s.scan(row)
}

func (s *SQLiteStore) Get(ctx context.Context, token string) (*model.Session, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+sessionCols+` FROM sessions WHERE token = ? AND expires_at > ?`,
		token, time.Now().UTC(),
	)
	sess, err := s.scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sess, nil
}

func (s *SQLiteStore) Delete(ctx context.Context, token string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = ?`, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) DeleteExpired(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= ?`, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return count, nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
