package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/cors"
	"github.com/shelterops/shelter-api/internal/auth"
	"github.com/shelterops/shelter-api/internal/ctxstore"
	"github.com/shelterops/shelter-api/internal/model"
	"github.com/shelterops/shelter-api/internal/response"

	"github.com/tomasen/realip"
)

const (
	_traceIDKey  = ctxstore.Key("traceId")
	_identityKey = ctxstore.Key("identity")
)

func (app *application) traceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tid := genTraceID()
		ctx := ctxstore.With(r.Context(), _traceIDKey, tid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			err := recover()
			if err != nil {
				app.serverError(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (app *application) logAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mw := response.NewMetricsResponseWriter(w)
		next.ServeHTTP(mw, r)

		var (
			ip     = realip.FromRequest(r)
			method = r.Method
			url    = r.URL.String()
			proto  = r.Proto
			tid    = ctxstore.MustFrom[string](r.Context(), _traceIDKey)
		)

		userAttrs := slog.Group("user", "ip", ip)
		requestAttrs := slog.Group("request", "method", method, "url", url, "proto", proto, _traceIDKey.String(), tid)
		responseAttrs := slog.Group("response", "status", mw.StatusCode, "size", mw.BytesCount)

		app.serverLogger().Info("access", userAttrs, requestAttrs, responseAttrs)
	})
}

func (app *application) CORS(next http.Handler) http.Handler {
	return cors.AllowAll().Handler(next)
}

// authenticate resolves the session cookie into an Identity and stores it
// in the request context. Resolution is a side-effecting read: expired
// sessions are deleted on access, and a session owned by a disabled
// account is deleted with the caller redirected to sign in again.
func (app *application) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := app.auth.Resolve(r.Context(), sessionTokenFromRequest(r))
		if err != nil {
			if errors.Is(err, model.ErrDisabled) {
				clearSessionCookie(w)
				app.redirectToSignin(w, r, err.Error())
				return
			}

			app.serverError(w, r, err)
			return
		}

		ctx := ctxstore.With(r.Context(), _identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (app *application) requireAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := identityFromRequest(r)

		if _, err := auth.RequireAuthenticated(identity); err != nil {
			app.redirectToSignin(w, r, "You need to login")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (app *application) requireRole(role model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := identityFromRequest(r)

			if _, err := auth.RequireRole(identity, role); err != nil {
				switch {
				case errors.Is(err, model.ErrLoginRequired):
					app.redirectToSignin(w, r, "You need to login")
				case errors.Is(err, model.ErrForbidden):
					app.errorMessage(w, r, http.StatusForbidden, "You are not allowed to access this", nil)
				default:
					app.serverError(w, r, err)
				}
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func identityFromRequest(r *http.Request) auth.Identity {
	identity, ok := ctxstore.From[auth.Identity](r.Context(), _identityKey)
	if !ok {
		return auth.Anonymous()
	}
	return identity
}

func genTraceID() string {
	id, _ := uuid.NewRandom()
	return id.String()
}
