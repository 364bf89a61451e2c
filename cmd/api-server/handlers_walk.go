package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shelterops/shelter-api/internal/auth"
	"github.com/shelterops/shelter-api/internal/ctxstore"
	"github.com/shelterops/shelter-api/internal/database"
	"github.com/shelterops/shelter-api/internal/model"
	"github.com/shelterops/shelter-api/internal/request"
	"github.com/shelterops/shelter-api/internal/response"
	"github.com/shelterops/shelter-api/internal/scheduler"
	"github.com/shelterops/shelter-api/internal/validator"
)

// Handle Reserve Walks
// @Summary Reserve Walks
// @Description Book walking slots for an animal. Contiguous slots merge into one walk.
// @Tags volunteer
// @Accept json
// @Produce json
// @Param animalId path int true "Animal ID"
// @Param input body main.requestReserveWalks true "Slots and location"
// @Success 201 {object} map[string][]model.Walk
// @Failure 400 {object} any "Slots overlap an existing walk"
// @Failure 403 {object} any "Animal is not available for walks"
// @Failure 404 {object} any "Animal not found"
// @Failure 422 {object} validator.Validator "Invalid input data"
// @Router /volunteer/animals/{animalId}/reserve [post]
func (app *application) handleReserveWalks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	volunteer, err := auth.RequireAuthenticated(identityFromRequest(r))
	if err != nil {
		app.redirectToSignin(w, r, "You need to login")
		return
	}

	animalDAO := database.NewAnimalDAO(logger, app.db)

	animal, ok := app.animalFromRequest(w, r, animalDAO)
	if !ok {
		return
	}

	var input requestReserveWalks
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	validateReserveWalks(&v, input)

	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	walks, err := app.sched.Reserve(ctx, animal, volunteer.ID, input.Location, input.Slots)
	if err != nil {
		var conflict *scheduler.ConflictError
		switch {
		case errors.Is(err, model.ErrUnavailable):
			app.errorMessage(w, r, http.StatusForbidden, "The animal is not available for walks", nil)
		case errors.Is(err, scheduler.ErrNoSlots):
			app.errorMessage(w, r, http.StatusBadRequest, "No slots selected", nil)
		case errors.As(err, &conflict):
			app.errorMessage(w, r, http.StatusBadRequest, conflict.Error(), nil)
		default:
			app.serverError(w, r, err)
		}
		return
	}

	if err := response.JSON(w, http.StatusCreated, response.JSONObject{"walks": walks}); err != nil {
		app.serverError(w, r, err)
	}
}

type requestReserveWalks struct {
	Slots    []time.Time `json:"slots"`
	Location string      `json:"location"`
}

// Handle Scheduled Walks
// @Summary Scheduled Walks
// @Description The occupied hourly slots of an animal within a date range
// @Tags volunteer
// @Produce json
// @Param animalId path int true "Animal ID"
// @Param start query string true "Range start"
// @Param end query string true "Range end"
// @Success 200 {object} map[string][]scheduler.Slot
// @Failure 403 {object} any "Animal is not available for walks"
// @Failure 404 {object} any "Animal not found"
// @Router /volunteer/animals/{animalId}/scheduled-walks [get]
func (app *application) handleScheduledWalks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	animalDAO := database.NewAnimalDAO(logger, app.db)

	animal, ok := app.animalFromRequest(w, r, animalDAO)
	if !ok {
		return
	}

	if !animal.Bookable() {
		app.errorMessage(w, r, http.StatusForbidden, "The animal is not available for walks", nil)
		return
	}

	start, _, err := timeQueryParams(r, "start")
	if err != nil {
		app.badRequest(w, r, err)
		return
	}
	end, _, err := timeQueryParams(r, "end")
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	validateDateRange(&v, start, end)

	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	walkDAO := database.NewWalkDAO(logger, app.db)

	walks, err := walkDAO.FindActiveByAnimal(ctx, animal.ID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	slots := scheduler.ScheduledSlots(walks, start, end)

	if err := response.JSON(w, http.StatusOK, response.JSONObject{"scheduledSlots": slots}); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Walk History
// @Summary Walk History
// @Description All walks ever booked by the signed-in volunteer, newest first
// @Tags volunteer
// @Produce json
// @Success 200 {object} map[string][]model.Walk
// @Router /volunteer/history [get]
func (app *application) handleWalkHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	volunteer, err := auth.RequireAuthenticated(identityFromRequest(r))
	if err != nil {
		app.redirectToSignin(w, r, "You need to login")
		return
	}

	dao := database.NewWalkDAO(logger, app.db)

	walks, err := dao.FindByUser(ctx, volunteer.ID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, response.JSONObject{"walks": walks}); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Cancel Walk
// @Summary Cancel Walk
// @Description Cancel an own upcoming walk. Only pending or accepted walks scheduled for a future day can be cancelled.
// @Tags volunteer
// @Produce json
// @Param walkId path int true "Walk ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} any "The walk can no longer be cancelled"
// @Failure 403 {object} any "Walk belongs to another volunteer"
// @Failure 404 {object} any "Walk not found"
// @Router /volunteer/walks/{walkId}/cancel [delete]
func (app *application) handleCancelWalk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	volunteer, err := auth.RequireAuthenticated(identityFromRequest(r))
	if err != nil {
		app.redirectToSignin(w, r, "You need to login")
		return
	}

	walkID, err := walkIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	dao := database.NewWalkDAO(logger, app.db)

	walk, err := dao.Get(ctx, walkID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.notFound(w, r)
			return
		}

		app.serverError(w, r, err)
		return
	}

	if err := app.sched.Cancel(ctx, walk, volunteer.ID, time.Now()); err != nil {
		switch {
		case errors.Is(err, model.ErrForbidden):
			app.errorMessage(w, r, http.StatusForbidden, "You cannot cancel another volunteer's walk", nil)
		case errors.Is(err, model.ErrInvalidTransition):
			app.errorMessage(w, r, http.StatusBadRequest, "The walk can no longer be cancelled", nil)
		default:
			app.serverError(w, r, err)
		}
		return
	}

	if err := response.JSON(w, http.StatusOK, response.JSONObject{"message": "Walk cancelled"}); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle List Walk Requests
// @Summary List Walk Requests
// @Description Walks across all animals, optionally filtered by status
// @Tags staff
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {object} map[string][]model.Walk
// @Router /staff/walk-requests [get]
func (app *application) handleListWalkRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	filter := database.FindWalkFilter{}
	if raw := optionalStringQueryParams(r, "status"); raw != nil {
		status := model.WalkStatus(*raw)
		if !status.Valid() {
			app.errorMessage(w, r, http.StatusBadRequest, "Unknown status", nil)
			return
		}
		filter.Status = &status
	}

	dao := database.NewWalkDAO(logger, app.db)

	walks, err := dao.Find(ctx, filter)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, response.JSONObject{"walks": walks}); err != nil {
		app.serverError(w, r, err)
	}
}

// walkActions maps the URL action verb onto the target walk status.
var walkActions = map[string]model.WalkStatus{
	"accept": model.WalkAccepted,
	"reject": model.WalkRejected,
	"start":  model.WalkStarted,
	"finish": model.WalkFinished,
}

// Handle Walk Action
// @Summary Review Walk Request
// @Description Accept, reject, start or finish a walk
// @Tags staff
// @Produce json
// @Param walkId path int true "Walk ID"
// @Param action path string true "One of accept, reject, start, finish"
// @Success 200 {object} map[string]string
// @Failure 400 {object} any "The walk's status does not allow this action"
// @Failure 404 {object} any "Walk or action not found"
// @Router /staff/walk-requests/{walkId}/{action} [post]
func (app *application) handleWalkAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	to, ok := walkActions[chi.URLParam(r, "action")]
	if !ok {
		app.notFound(w, r)
		return
	}

	walkID, err := walkIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	dao := database.NewWalkDAO(logger, app.db)

	walk, err := dao.Get(ctx, walkID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.notFound(w, r)
			return
		}

		app.serverError(w, r, err)
		return
	}

	if err := app.sched.Transition(ctx, walk, to); err != nil {
		if errors.Is(err, model.ErrInvalidTransition) {
			app.errorMessage(w, r, http.StatusBadRequest, "The walk's status does not allow this action", nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, response.JSONObject{"message": "Walk " + string(to)}); err != nil {
		app.serverError(w, r, err)
	}
}
