package main

import (
	"net/http"

	"github.com/shelterops/shelter-api/internal/model"
)

const _sessionCookie = "session_id"

func setSessionCookie(w http.ResponseWriter, session model.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     _sessionCookie,
		Value:    session.Token.String(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  session.Expiration,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     _sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// sessionTokenFromRequest returns the raw cookie value, or "" when the
// cookie is absent. Malformed values are handled by the session manager.
func sessionTokenFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(_sessionCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}
