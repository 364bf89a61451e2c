package auth

import (
	"github.com/shelterops/shelter-api/internal/model"
)

// Capabilities is the set of role-gated actions a user may perform,
// computed once from the stored role. Admin implies all of them.
type Capabilities struct {
	Staff      bool
	Vet        bool
	Volunteer  bool
	Registered bool
}

func CapabilitiesFor(role model.Role) Capabilities {
	if role == model.RoleAdmin {
		return Capabilities{Staff: true, Vet: true, Volunteer: true, Registered: true}
	}

	return Capabilities{
		Staff:      role == model.RoleStaff,
		Vet:        role == model.RoleVet,
		Volunteer:  role == model.RoleVolunteer,
		Registered: role == model.RoleRegistered,
	}
}

func (c Capabilities) Allows(role model.Role) bool {
	switch role {
	case model.RoleAdmin:
		// Only the admin capability set has everything enabled.
		return c.Staff && c.Vet && c.Volunteer && c.Registered
	case model.RoleStaff:
		return c.Staff
	case model.RoleVet:
		return c.Vet
	case model.RoleVolunteer:
		return c.Volunteer
	case model.RoleRegistered:
		return c.Registered
	}
	return false
}

// RequireAuthenticated fails with model.ErrLoginRequired for anonymous
// identities.
func RequireAuthenticated(id Identity) (model.User, error) {
	user, ok := id.User()
	if !ok {
		return model.User{}, model.ErrLoginRequired
	}

	return user, nil
}

// RequireRole fails with model.ErrLoginRequired for anonymous identities
// and model.ErrForbidden when the user's capabilities do not cover role.
func RequireRole(id Identity, role model.Role) (model.User, error) {
	user, err := RequireAuthenticated(id)
	if err != nil {
		return model.User{}, err
	}

	if !CapabilitiesFor(user.Role).Allows(role) {
		return model.User{}, model.ErrForbidden
	}

	return user, nil
}
