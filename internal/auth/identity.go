package auth

import (
	"github.com/shelterops/shelter-api/internal/model"
)

// Identity is the result of resolving a session token: either an
// authenticated user together with its session, or anonymous. The zero
// value is anonymous, so identities can be threaded through call
// signatures without a shared sentinel object.
type Identity struct {
	user    model.User
	session model.Session
	ok      bool
}

func Anonymous() Identity {
	return Identity{}
}

func Authenticated(user model.User, session model.Session) Identity {
	return Identity{user: user, session: session, ok: true}
}

func (id Identity) IsAnonymous() bool {
	return !id.ok
}

// User returns the authenticated user. ok is false for anonymous identities.
func (id Identity) User() (model.User, bool) {
	return id.user, id.ok
}

func (id Identity) Session() (model.Session, bool) {
	return id.session, id.ok
}
