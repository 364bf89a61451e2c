package main

import (
	"errors"
	"net/http"

	"github.com/shelterops/shelter-api/internal/auth"
	"github.com/shelterops/shelter-api/internal/ctxstore"
	"github.com/shelterops/shelter-api/internal/database"
	"github.com/shelterops/shelter-api/internal/model"
	"github.com/shelterops/shelter-api/internal/request"
	"github.com/shelterops/shelter-api/internal/response"
	"github.com/shelterops/shelter-api/internal/validator"
)

// Handle Signup
// @Summary Sign Up
// @Description Register a new user account
// @Tags user
// @Accept json
// @Produce json
// @Param input body main.requestSignup true "Registration form"
// @Success 201 {object} main.responseUser
// @Failure 400 {object} any "Bad request input"
// @Failure 409 {object} any "Username already taken"
// @Failure 422 {object} validator.Validator "Invalid input data"
// @Router /user/signup [post]
func (app *application) handleSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	if !identityFromRequest(r).IsAnonymous() {
		response.JSON(w, http.StatusOK, response.JSONObject{"message": "Already logged in"})
		return
	}

	var input requestSignup
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	validateSignup(&v, input)

	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	dao := database.NewUserDAO(logger, app.db)

	userID, err := dao.Insert(ctx, database.InsertUserDTO{
		Name:     input.Name,
		Username: input.Username,
		Password: hash,
		Role:     model.RoleRegistered,
	})
	if err != nil {
		if errors.Is(err, model.ErrExists) {
			app.errorMessage(w, r, http.StatusConflict, "User with such username already exists", nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	user, err := dao.Get(ctx, userID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusCreated, responseUser{User: user}); err != nil {
		app.serverError(w, r, err)
	}
}

type requestSignup struct {
	Name            string `json:"name"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type responseUser struct {
	User model.User `json:"user"`
}

// Handle Signin
// @Summary Sign In
// @Description Authenticate and receive a session cookie
// @Tags user
// @Accept json
// @Produce json
// @Param input body main.requestSignin true "Credentials"
// @Success 200 {object} map[string]string
// @Failure 400 {object} any "Unknown user or wrong password"
// @Failure 403 {object} any "Account disabled"
// @Router /user/signin [post]
func (app *application) handleSignin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	if !identityFromRequest(r).IsAnonymous() {
		response.JSON(w, http.StatusOK, response.JSONObject{"message": "Already logged in"})
		return
	}

	var input requestSignin
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	dao := database.NewUserDAO(logger, app.db)

	user, err := dao.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusBadRequest, "User not found", nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	if !auth.VerifyPassword(input.Password, user.Password) {
		app.errorMessage(w, r, http.StatusBadRequest, "Incorrect password", nil)
		return
	}

	if user.Disabled {
		app.errorMessage(w, r, http.StatusForbidden, "User is disabled", nil)
		return
	}

	session, err := app.auth.Create(ctx, input.Username)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	setSessionCookie(w, session)

	if err := response.JSON(w, http.StatusOK, response.JSONObject{_sessionCookie: session.Token.String()}); err != nil {
		app.serverError(w, r, err)
	}
}

type requestSignin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Handle Logout
// @Summary Log Out
// @Description Revoke the current session and clear the cookie
// @Tags user
// @Produce json
// @Success 200 {object} map[string]string
// @Router /user/logout [post]
func (app *application) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := app.auth.Revoke(r.Context(), sessionTokenFromRequest(r)); err != nil {
		app.serverError(w, r, err)
		return
	}

	clearSessionCookie(w)

	if err := response.JSON(w, http.StatusOK, response.JSONObject{"message": "Logged out"}); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Logout All
// @Summary Log Out Everywhere
// @Description Revoke every session of the current user
// @Tags user
// @Produce json
// @Param exceptCurrent query bool false "Keep the current session"
// @Success 200 {object} map[string]string
// @Router /user/logout/all [post]
func (app *application) handleLogoutAll(w http.ResponseWriter, r *http.Request) {
	user, err := auth.RequireAuthenticated(identityFromRequest(r))
	if err != nil {
		app.redirectToSignin(w, r, "You need to login")
		return
	}

	exceptCurrent := defaultBoolQueryParams(r, "exceptCurrent", false)

	keepToken := ""
	if exceptCurrent {
		keepToken = sessionTokenFromRequest(r)
	}

	if err := app.auth.RevokeAll(r.Context(), user.ID, keepToken); err != nil {
		app.serverError(w, r, err)
		return
	}

	if !exceptCurrent {
		clearSessionCookie(w)
	}

	if err := response.JSON(w, http.StatusOK, response.JSONObject{"message": "Logged out from all devices"}); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Profile
// @Summary Profile
// @Description The profile of the signed-in user
// @Tags user
// @Produce json
// @Success 200 {object} main.responseUser
// @Router /user/profile [get]
func (app *application) handleProfile(w http.ResponseWriter, r *http.Request) {
	user, err := auth.RequireAuthenticated(identityFromRequest(r))
	if err != nil {
		app.redirectToSignin(w, r, "You need to login")
		return
	}

	if err := response.JSON(w, http.StatusOK, responseUser{User: user}); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Change Password
// @Summary Change Password
// @Description Change the signed-in user's password and revoke other sessions
// @Tags user
// @Accept json
// @Produce json
// @Param input body main.requestChangePassword true "Current and new password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} any "Wrong current password"
// @Failure 422 {object} validator.Validator "Invalid input data"
// @Router /user/password [post]
func (app *application) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	user, err := auth.RequireAuthenticated(identityFromRequest(r))
	if err != nil {
		app.redirectToSignin(w, r, "You need to login")
		return
	}

	var input requestChangePassword
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	validatePassword(&v, input.NewPassword)

	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	if !auth.VerifyPassword(input.CurrentPassword, user.Password) {
		app.errorMessage(w, r, http.StatusBadRequest, "Incorrect password", nil)
		return
	}

	hash, err := auth.HashPassword(input.NewPassword)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	dao := database.NewUserDAO(logger, app.db)

	if err := dao.Update(ctx, user.ID, database.UpdateUserDTO{Password: &hash}); err != nil {
		app.serverError(w, r, err)
		return
	}

	// Changing the password invalidates every other device.
	if err := app.auth.RevokeAll(ctx, user.ID, sessionTokenFromRequest(r)); err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, response.JSONObject{"message": "Password changed"}); err != nil {
		app.serverError(w, r, err)
	}
}

type requestChangePassword struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
