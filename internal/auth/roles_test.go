package auth

import (
	"errors"
	"testing"

	"github.com/shelterops/shelter-api/internal/model"
)

func TestCapabilities(t *testing.T) {
	testCases := []struct {
		role     model.Role
		required model.Role
		want     bool
	}{
		{model.RoleAdmin, model.RoleAdmin, true},
		{model.RoleAdmin, model.RoleStaff, true},
		{model.RoleAdmin, model.RoleVet, true},
		{model.RoleAdmin, model.RoleVolunteer, true},
		{model.RoleAdmin, model.RoleRegistered, true},

		{model.RoleStaff, model.RoleStaff, true},
		{model.RoleStaff, model.RoleAdmin, false},
		{model.RoleStaff, model.RoleVet, false},
		{model.RoleStaff, model.RoleVolunteer, false},

		{model.RoleVet, model.RoleVet, true},
		{model.RoleVet, model.RoleStaff, false},

		{model.RoleVolunteer, model.RoleVolunteer, true},
		{model.RoleVolunteer, model.RoleRegistered, false},

		{model.RoleRegistered, model.RoleRegistered, true},
		{model.RoleRegistered, model.RoleVolunteer, false},
		{model.RoleRegistered, model.RoleAdmin, false},
	}

	for _, tc := range testCases {
		got := CapabilitiesFor(tc.role).Allows(tc.required)
		if got != tc.want {
			t.Errorf("CapabilitiesFor(%s).Allows(%s) = %v, want %v", tc.role, tc.required, got, tc.want)
		}
	}
}

func TestRequireAuthenticated(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		_, err := RequireAuthenticated(Anonymous())
		if !errors.Is(err, model.ErrLoginRequired) {
			t.Fatalf("got %v, want ErrLoginRequired", err)
		}
	})

	t.Run("authenticated", func(t *testing.T) {
		alice := model.User{ID: 1, Username: "alice"}

		user, err := RequireAuthenticated(Authenticated(alice, model.Session{User: 1}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != alice.ID {
			t.Errorf("got user %d, want %d", user.ID, alice.ID)
		}
	})
}

func TestRequireRole(t *testing.T) {
	identity := func(role model.Role) Identity {
		return Authenticated(model.User{ID: 1, Role: role}, model.Session{User: 1})
	}

	t.Run("anonymous", func(t *testing.T) {
		_, err := RequireRole(Anonymous(), model.RoleStaff)
		if !errors.Is(err, model.ErrLoginRequired) {
			t.Fatalf("got %v, want ErrLoginRequired", err)
		}
	})

	t.Run("wrong role", func(t *testing.T) {
		_, err := RequireRole(identity(model.RoleVolunteer), model.RoleStaff)
		if !errors.Is(err, model.ErrForbidden) {
			t.Fatalf("got %v, want ErrForbidden", err)
		}
	})

	t.Run("exact role", func(t *testing.T) {
		if _, err := RequireRole(identity(model.RoleStaff), model.RoleStaff); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("admin passes every gate", func(t *testing.T) {
		for _, role := range model.Roles() {
			if _, err := RequireRole(identity(model.RoleAdmin), role); err != nil {
				t.Errorf("admin blocked from %s gate: %v", role, err)
			}
		}
	})
}

func TestIdentityZeroValueIsAnonymous(t *testing.T) {
	var identity Identity

	if !identity.IsAnonymous() {
		t.Error("zero value is not anonymous")
	}
	if _, ok := identity.User(); ok {
		t.Error("zero value exposes a user")
	}
	if _, ok := identity.Session(); ok {
		t.Error("zero value exposes a session")
	}
}
