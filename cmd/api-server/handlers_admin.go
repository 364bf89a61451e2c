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
)

// rootAdminUsername is the built-in administrator account seeded on
// startup. It cannot be disabled, demoted or deleted through the API.
const rootAdminUsername = "admin"

// Handle List Users
// @Summary List Users
// @Description List all registered accounts
// @Tags admin
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string][]model.User
// @Router /admin/users [get]
func (app *application) handleListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	opts := database.DefaultFindOptions()
	opts.Limit = defaultIntQueryParams(r, "limit", opts.Limit)
	opts.Offset = defaultIntQueryParams(r, "offset", opts.Offset)

	dao := database.NewUserDAO(logger, app.db)

	users, err := dao.Find(ctx, opts)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, response.JSONObject{"users": users}); err != nil {
		app.serverError(w, r, err)
	}
}

// targetUserFromRequest loads the user addressed by the URL and rejects
// mutations an administrator must not perform: changing their own account
// through the admin surface, or touching the root administrator.
func (app *application) targetUserFromRequest(w http.ResponseWriter, r *http.Request, dao *database.UserDAO) (model.User, bool) {
	actor, err := auth.RequireAuthenticated(identityFromRequest(r))
	if err != nil {
		app.redirectToSignin(w, r, "You need to login")
		return model.User{}, false
	}

	userID, err := userIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return model.User{}, false
	}

	if userID == actor.ID {
		app.errorMessage(w, r, http.StatusForbidden, "You cannot change your own account here", nil)
		return model.User{}, false
	}

	target, err := dao.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.notFound(w, r)
			return model.User{}, false
		}

		app.serverError(w, r, err)
		return model.User{}, false
	}

	if target.Username == rootAdminUsername {
		app.errorMessage(w, r, http.StatusForbidden, "The root administrator cannot be changed", nil)
		return model.User{}, false
	}

	return target, true
}

// Handle Update User State
// @Summary Enable Or Disable User
// @Description Disable or re-enable an account. Disabling kills the user's sessions lazily on their next request.
// @Tags admin
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Param input body main.requestUpdateUserState true "New state"
// @Success 200 {object} map[string]string
// @Failure 403 {object} any "Self-change or root administrator"
// @Failure 404 {object} any "User not found"
// @Router /admin/users/{userId}/state [patch]
func (app *application) handleUpdateUserState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	dao := database.NewUserDAO(logger, app.db)

	target, ok := app.targetUserFromRequest(w, r, dao)
	if !ok {
		return
	}

	var input requestUpdateUserState
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	if err := dao.Update(ctx, target.ID, database.UpdateUserDTO{Disabled: &input.Disabled}); err != nil {
		app.serverError(w, r, err)
		return
	}

	message := "User enabled"
	if input.Disabled {
		message = "User disabled"
	}

	if err := response.JSON(w, http.StatusOK, response.JSONObject{"message": message}); err != nil {
		app.serverError(w, r, err)
	}
}

type requestUpdateUserState struct {
	Disabled bool `json:"disabled"`
}

// Handle Update User Role
// @Summary Change User Role
// @Description Assign a new role to an account
// @Tags admin
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Param input body main.requestUpdateUserRole true "New role"
// @Success 200 {object} map[string]string
// @Failure 400 {object} any "Unknown role"
// @Failure 403 {object} any "Self-change or root administrator"
// @Failure 404 {object} any "User not found"
// @Router /admin/users/{userId}/role [patch]
func (app *application) handleUpdateUserRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	dao := database.NewUserDAO(logger, app.db)

	target, ok := app.targetUserFromRequest(w, r, dao)
	if !ok {
		return
	}

	var input requestUpdateUserRole
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	if !input.Role.Valid() {
		app.errorMessage(w, r, http.StatusBadRequest, "Unknown role", nil)
		return
	}

	if err := dao.Update(ctx, target.ID, database.UpdateUserDTO{Role: &input.Role}); err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, response.JSONObject{"message": "Role updated"}); err != nil {
		app.serverError(w, r, err)
	}
}

type requestUpdateUserRole struct {
	Role model.Role `json:"role"`
}

// Handle Delete User
// @Summary Delete User
// @Description Delete an account together with its sessions and requests
// @Tags admin
// @Produce json
// @Param userId path int true "User ID"
// @Success 204
// @Failure 403 {object} any "Self-change or root administrator"
// @Failure 404 {object} any "User not found"
// @Router /admin/users/{userId} [delete]
func (app *application) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	dao := database.NewUserDAO(logger, app.db)

	target, ok := app.targetUserFromRequest(w, r, dao)
	if !ok {
		return
	}

	if err := dao.Delete(ctx, target.ID); err != nil {
		app.serverError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
