package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shelterops/shelter-api/internal/database"
	"github.com/shelterops/shelter-api/internal/model"
)

type fakeUserStore struct {
	users map[model.ID]model.User
}

func (s *fakeUserStore) Get(_ context.Context, id model.ID) (model.User, error) {
	user, ok := s.users[id]
	if !ok {
		return model.User{}, model.NewError("user", model.ErrNotFound)
	}
	return user, nil
}

func (s *fakeUserStore) GetByUsername(_ context.Context, username string) (model.User, error) {
	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return model.User{}, model.NewError("user", model.ErrNotFound)
}

type fakeSessionStore struct {
	sessions map[uuid.UUID]model.Session
	nextID   model.ID
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[uuid.UUID]model.Session)}
}

func (s *fakeSessionStore) GetByToken(_ context.Context, token uuid.UUID) (model.Session, error) {
	session, ok := s.sessions[token]
	if !ok {
		return model.Session{}, model.NewError("session", model.ErrNotFound)
	}
	return session, nil
}

func (s *fakeSessionStore) Insert(_ context.Context, dto database.InsertSessionDTO) (model.ID, error) {
	s.nextID++
	s.sessions[dto.Token] = model.Session{
		ID:         s.nextID,
		User:       dto.User,
		Token:      dto.Token,
		Expiration: dto.Expiration,
	}
	return s.nextID, nil
}

func (s *fakeSessionStore) DeleteByToken(_ context.Context, token uuid.UUID) error {
	delete(s.sessions, token)
	return nil
}

func (s *fakeSessionStore) DeleteAllForUser(_ context.Context, user model.ID, keep *uuid.UUID) error {
	for token, session := range s.sessions {
		if session.User != user {
			continue
		}
		if keep != nil && token == *keep {
			continue
		}
		delete(s.sessions, token)
	}
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testManager(users *fakeUserStore, sessions *fakeSessionStore, now time.Time) *Manager {
	m := NewManager(testLogger(), users, sessions, time.Hour)
	m.now = func() time.Time { return now }
	return m
}

func TestManagerCreate(t *testing.T) {
	now := time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)
	users := &fakeUserStore{users: map[model.ID]model.User{
		1: {ID: 1, Username: "alice", Role: model.RoleRegistered},
	}}
	sessions := newFakeSessionStore()
	m := testManager(users, sessions, now)

	session, err := m.Create(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if session.User != 1 {
		t.Errorf("got user %d, want 1", session.User)
	}
	if !session.Expiration.Equal(now.Add(time.Hour)) {
		t.Errorf("got expiration %v, want %v", session.Expiration, now.Add(time.Hour))
	}
	if _, ok := sessions.sessions[session.Token]; !ok {
		t.Error("session was not persisted")
	}
}

func TestManagerCreateUnknownUser(t *testing.T) {
	m := testManager(&fakeUserStore{users: map[model.ID]model.User{}}, newFakeSessionStore(), time.Now())

	_, err := m.Create(context.Background(), "ghost")
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestManagerResolve(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)

	setup := func(user model.User) (*Manager, *fakeSessionStore, model.Session) {
		users := &fakeUserStore{users: map[model.ID]model.User{user.ID: user}}
		sessions := newFakeSessionStore()
		m := testManager(users, sessions, now)

		session, err := m.Create(ctx, user.Username)
		if err != nil {
			t.Fatalf("setup: %v", err)
		}
		return m, sessions, session
	}

	alice := model.User{ID: 1, Username: "alice", Role: model.RoleVolunteer}

	t.Run("valid token", func(t *testing.T) {
		m, _, session := setup(alice)

		identity, err := m.Resolve(ctx, session.Token.String())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		user, ok := identity.User()
		if !ok {
			t.Fatal("got anonymous, want authenticated")
		}
		if user.ID != alice.ID {
			t.Errorf("got user %d, want %d", user.ID, alice.ID)
		}
	})

	t.Run("empty token", func(t *testing.T) {
		m, _, _ := setup(alice)

		identity, err := m.Resolve(ctx, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !identity.IsAnonymous() {
			t.Error("got authenticated, want anonymous")
		}
	})

	t.Run("malformed token", func(t *testing.T) {
		m, _, _ := setup(alice)

		identity, err := m.Resolve(ctx, "not-a-uuid")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !identity.IsAnonymous() {
			t.Error("got authenticated, want anonymous")
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		m, _, _ := setup(alice)

		identity, err := m.Resolve(ctx, uuid.NewString())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !identity.IsAnonymous() {
			t.Error("got authenticated, want anonymous")
		}
	})

	t.Run("expired session is deleted on access", func(t *testing.T) {
		m, sessions, session := setup(alice)

		m.now = func() time.Time { return now.Add(2 * time.Hour) }

		identity, err := m.Resolve(ctx, session.Token.String())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !identity.IsAnonymous() {
			t.Error("got authenticated, want anonymous")
		}
		if _, ok := sessions.sessions[session.Token]; ok {
			t.Error("expired session still in store")
		}

		// A second resolve of the same token stays anonymous and error-free.
		identity, err = m.Resolve(ctx, session.Token.String())
		if err != nil {
			t.Fatalf("unexpected error on second resolve: %v", err)
		}
		if !identity.IsAnonymous() {
			t.Error("second resolve: got authenticated, want anonymous")
		}
	})

	t.Run("disabled user", func(t *testing.T) {
		disabled := model.User{ID: 2, Username: "bob", Disabled: true}
		m, sessions, session := setup(disabled)

		_, err := m.Resolve(ctx, session.Token.String())
		if !errors.Is(err, model.ErrDisabled) {
			t.Fatalf("got %v, want ErrDisabled", err)
		}
		if _, ok := sessions.sessions[session.Token]; ok {
			t.Error("session of disabled user still in store")
		}
	})

	t.Run("orphaned session", func(t *testing.T) {
		users := &fakeUserStore{users: map[model.ID]model.User{alice.ID: alice}}
		sessions := newFakeSessionStore()
		m := testManager(users, sessions, now)

		session, err := m.Create(ctx, alice.Username)
		if err != nil {
			t.Fatalf("setup: %v", err)
		}

		delete(users.users, alice.ID)

		identity, err := m.Resolve(ctx, session.Token.String())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !identity.IsAnonymous() {
			t.Error("got authenticated, want anonymous")
		}
		if _, ok := sessions.sessions[session.Token]; ok {
			t.Error("orphaned session still in store")
		}
	})
}

func TestManagerRevoke(t *testing.T) {
	ctx := context.Background()
	users := &fakeUserStore{users: map[model.ID]model.User{
		1: {ID: 1, Username: "alice"},
	}}
	sessions := newFakeSessionStore()
	m := testManager(users, sessions, time.Now())

	session, err := m.Create(ctx, "alice")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	if err := m.Revoke(ctx, session.Token.String()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sessions.sessions) != 0 {
		t.Error("session still in store")
	}

	// Revoking again, and revoking garbage, both succeed.
	if err := m.Revoke(ctx, session.Token.String()); err != nil {
		t.Errorf("second revoke: %v", err)
	}
	if err := m.Revoke(ctx, "not-a-uuid"); err != nil {
		t.Errorf("malformed revoke: %v", err)
	}
}

func TestManagerRevokeAll(t *testing.T) {
	ctx := context.Background()
	users := &fakeUserStore{users: map[model.ID]model.User{
		1: {ID: 1, Username: "alice"},
		2: {ID: 2, Username: "bob"},
	}}
	sessions := newFakeSessionStore()
	m := testManager(users, sessions, time.Now())

	var current model.Session
	for i := 0; i < 3; i++ {
		session, err := m.Create(ctx, "alice")
		if err != nil {
			t.Fatalf("setup: %v", err)
		}
		current = session
	}
	other, err := m.Create(ctx, "bob")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	if err := m.RevokeAll(ctx, 1, current.Token.String()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := sessions.sessions[current.Token]; !ok {
		t.Error("kept session was deleted")
	}
	if _, ok := sessions.sessions[other.Token]; !ok {
		t.Error("another user's session was deleted")
	}
	if len(sessions.sessions) != 2 {
		t.Errorf("store holds %d sessions, want 2", len(sessions.sessions))
	}

	// Without a kept token everything goes.
	if err := m.RevokeAll(ctx, 1, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := sessions.sessions[current.Token]; ok {
		t.Error("session survived a full revocation")
	}
}
