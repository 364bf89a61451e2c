package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shelterops/shelter-api/internal/database"
	"github.com/shelterops/shelter-api/internal/model"
)

// DefaultSessionTTL is how long an issued session stays valid.
const DefaultSessionTTL = time.Hour

type UserStore interface {
	Get(ctx context.Context, id model.ID) (model.User, error)
	GetByUsername(ctx context.Context, username string) (model.User, error)
}

type SessionStore interface {
	GetByToken(ctx context.Context, token uuid.UUID) (model.Session, error)
	Insert(ctx context.Context, dto database.InsertSessionDTO) (model.ID, error)
	DeleteByToken(ctx context.Context, token uuid.UUID) error
	DeleteAllForUser(ctx context.Context, user model.ID, keep *uuid.UUID) error
}

// Manager issues and validates opaque session tokens. Resolving a token is
// a side-effecting read: expired sessions and sessions of disabled users
// are deleted on first access, there is no background sweep.
type Manager struct {
	logger   *slog.Logger
	users    UserStore
	sessions SessionStore
	ttl      time.Duration
	now      func() time.Time
}

func NewManager(logger *slog.Logger, users UserStore, sessions SessionStore, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	return &Manager{
		logger:   logger.With("module", "auth"),
		users:    users,
		sessions: sessions,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create issues a new session for the named user.
func (m *Manager) Create(ctx context.Context, username string) (model.Session, error) {
	user, err := m.users.GetByUsername(ctx, username)
	if err != nil {
		return model.Session{}, err
	}

	session := model.Session{
		Token:      uuid.New(),
		Expiration: m.now().Add(m.ttl),
		User:       user.ID,
	}

	id, err := m.sessions.Insert(ctx, database.InsertSessionDTO{
		User:       session.User,
		Token:      session.Token,
		Expiration: session.Expiration,
	})
	if err != nil {
		return model.Session{}, err
	}
	session.ID = id

	m.logger.Debug("session created", "user", user.ID, "expiration", session.Expiration)

	return session, nil
}

// Resolve maps a raw token to an Identity. Absent, malformed, unknown and
// expired tokens all resolve to anonymous, never to an error. A valid
// session owned by a disabled account is deleted and reported as
// model.ErrDisabled so the caller redirects to re-authentication instead
// of treating the request as logged-out.
func (m *Manager) Resolve(ctx context.Context, token string) (Identity, error) {
	if token == "" {
		return Anonymous(), nil
	}

	parsed, err := uuid.Parse(token)
	if err != nil {
		return Anonymous(), nil
	}

	session, err := m.sessions.GetByToken(ctx, parsed)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return Anonymous(), nil
		}

		return Anonymous(), err
	}

	if session.Expiration.Before(m.now()) {
		if err := m.sessions.DeleteByToken(ctx, parsed); err != nil {
			m.logger.Warn("failed to delete expired session", "error", err)
		}

		return Anonymous(), nil
	}

	user, err := m.users.Get(ctx, session.User)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// Owner row is gone, the session is orphaned.
			if err := m.sessions.DeleteByToken(ctx, parsed); err != nil {
				m.logger.Warn("failed to delete orphaned session", "error", err)
			}

			return Anonymous(), nil
		}

		return Anonymous(), err
	}

	if user.Disabled {
		if err := m.sessions.DeleteByToken(ctx, parsed); err != nil {
			m.logger.Warn("failed to delete session of disabled user", "error", err)
		}

		return Anonymous(), model.NewError("user", model.ErrDisabled)
	}

	return Authenticated(user, session), nil
}

// Revoke deletes the session for the token. Unknown and malformed tokens
// are no-ops, so revoking twice never fails.
func (m *Manager) Revoke(ctx context.Context, token string) error {
	parsed, err := uuid.Parse(token)
	if err != nil {
		return nil
	}

	return m.sessions.DeleteByToken(ctx, parsed)
}

// RevokeAll deletes every session of the user. When keepToken parses to a
// valid token, that session survives.
func (m *Manager) RevokeAll(ctx context.Context, user model.ID, keepToken string) error {
	var keep *uuid.UUID
	if parsed, err := uuid.Parse(keepToken); err == nil {
		keep = &parsed
	}

	return m.sessions.DeleteAllForUser(ctx, user, keep)
}
