package session

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	_ "modernc.org/sqlite"

	"github.com/habithero/habitctl/internal/client"
	errorvalues "github.com/habithero/habitctl/internal/error_values"
	"github.com/habithero/habitctl/pkg/entity"
)

const schema = `
CREATE TABLE IF NOT EXISTS session (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	token TEXT NOT NULL,
	user_id INTEGER NOT NULL,
	username TEXT NOT NULL,
	email TEXT NOT NULL,
	saved_at TEXT NOT NULL
);`

// Session is the explicit holder of the authenticated user's bearer token,
// persisted in a local sqlite file and handed by reference to everything
// that needs credentials. No ambient storage reads anywhere else.
type Session struct {
	db *sql.DB

	mu    sync.Mutex
	token string
	user  *entity.User
}

// Open loads (or initializes) the session database at path.
func Open(path string) (*Session, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, errors.New("creating state directory: " + err.Error())
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.New("opening session db: " + err.Error())
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.New("initializing session db: " + err.Error())
	}
	s := &Session{db: db}
	if err := s.load(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Session) load() error {
	row := s.db.QueryRow(`SELECT token, user_id, username, email FROM session WHERE id = 1;`)
	var (
		token string
		user  entity.User
	)
	err := row.Scan(&token, &user.ID, &user.Username, &user.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return errors.New("reading session row: " + err.Error())
	}
	s.token = token
	s.user = &user
	return nil
}

// Token implements client.TokenSource. Empty when logged out.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Session) User() *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Save persists the token and profile, replacing any previous session.
func (s *Session) Save(token string, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(
		`INSERT INTO session (id, token, user_id, username, email, saved_at)
		 VALUES (1, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			token = excluded.token,
			user_id = excluded.user_id,
			username = excluded.username,
			email = excluded.email,
			saved_at = excluded.saved_at;`,
		token, user.ID, user.Username, user.Email, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return errors.New("saving session: " + err.Error())
	}
	s.token = token
	s.user = user
	return nil
}

// Clear drops the stored session. Used on logout and on token invalidation.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.Exec(`DELETE FROM session WHERE id = 1;`); err != nil {
		return errors.New("clearing session: " + err.Error())
	}
	s.token = ""
	s.user = nil
	return nil
}

func (s *Session) Close() error {
	return s.db.Close()
}

// Restore validates the stored session on startup. An expired token or a
// failed profile fetch clears the session silently and reports ErrNoSession;
// only the session database itself failing is surfaced as an error.
func (s *Session) Restore(ctx context.Context, auth client.AuthAPI) (*entity.User, error) {
	token := s.Token()
	if token == "" {
		return nil, errorvalues.ErrNoSession
	}
	if expired(token, time.Now()) {
		slog.Debug("stored token expired, clearing session")
		if err := s.Clear(); err != nil {
			return nil, err
		}
		return nil, errorvalues.ErrNoSession
	}
	user, err := auth.Profile(ctx)
	if err != nil {
		slog.Debug("profile fetch failed, clearing session", slog.String("error", err.Error()))
		if clearErr := s.Clear(); clearErr != nil {
			return nil, clearErr
		}
		return nil, errorvalues.ErrNoSession
	}
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return user, nil
}

// expired inspects the token's exp claim without verifying the signature;
// the signing key lives on the server. A token that cannot be parsed at all
// is treated as expired.
func expired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
