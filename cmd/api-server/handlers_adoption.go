package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/shelterops/shelter-api/internal/auth"
	"github.com/shelterops/shelter-api/internal/ctxstore"
	"github.com/shelterops/shelter-api/internal/database"
	"github.com/shelterops/shelter-api/internal/model"
	"github.com/shelterops/shelter-api/internal/request"
	"github.com/shelterops/shelter-api/internal/response"
	"github.com/shelterops/shelter-api/internal/validator"
)

// Handle Submit Adoption
// @Summary Request Adoption
// @Description Ask to adopt an animal. One pending request per animal and user.
// @Tags user
// @Accept json
// @Produce json
// @Param animalId path int true "Animal ID"
// @Param input body main.requestMessage true "Message to the shelter"
// @Success 201 {object} map[string]model.AdoptionRequest
// @Failure 403 {object} any "Animal is not available for adoption"
// @Failure 404 {object} any "Animal not found"
// @Failure 409 {object} any "A pending request already exists"
// @Router /user/animals/{animalId}/adoption [post]
func (app *application) handleSubmitAdoption(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	user, err := auth.RequireAuthenticated(identityFromRequest(r))
	if err != nil {
		app.redirectToSignin(w, r, "You need to login")
		return
	}

	animalDAO := database.NewAnimalDAO(logger, app.db)

	animal, ok := app.animalFromRequest(w, r, animalDAO)
	if !ok {
		return
	}

	if !animal.Bookable() {
		app.errorMessage(w, r, http.StatusForbidden, "The animal is not available for adoption", nil)
		return
	}

	var input requestMessage
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	validateMessage(&v, input.Message)

	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	dao := database.NewAdoptionDAO(logger, app.db)

	pending := model.RequestPending
	existing, err := dao.Find(ctx, database.FindAdoptionFilter{
		User:   &user.ID,
		Animal: &animal.ID,
		Status: &pending,
	})
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	if len(existing) != 0 {
		app.errorMessage(w, r, http.StatusConflict, "You already have a pending request for this animal", nil)
		return
	}

	requestID, err := dao.Insert(ctx, database.InsertAdoptionDTO{
		User:    user.ID,
		Animal:  animal.ID,
		Date:    time.Now(),
		Message: input.Message,
	})
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	adoption, err := dao.Get(ctx, requestID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusCreated, response.JSONObject{"adoptionRequest": adoption}); err != nil {
		app.serverError(w, r, err)
	}
}

type requestMessage struct {
	Message string `json:"message"`
}

// Handle List Adoptions
// @Summary List Adoption Requests
// @Description Adoption requests, optionally filtered by status or animal
// @Tags staff
// @Produce json
// @Param status query string false "Filter by status"
// @Param animalId query int false "Filter by animal"
// @Success 200 {object} map[string][]model.AdoptionRequest
// @Router /staff/adoption-requests [get]
func (app *application) handleListAdoptions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	filter := database.FindAdoptionFilter{}
	if raw := optionalStringQueryParams(r, "status"); raw != nil {
		status := model.RequestStatus(*raw)
		if !status.Valid() {
			app.errorMessage(w, r, http.StatusBadRequest, "Unknown status", nil)
			return
		}
		filter.Status = &status
	}
	if r.URL.Query().Has("animalId") {
		animal := model.ID(defaultIntQueryParams(r, "animalId", 0))
		filter.Animal = &animal
	}

	dao := database.NewAdoptionDAO(logger, app.db)

	requests, err := dao.Find(ctx, filter)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, response.JSONObject{"adoptionRequests": requests}); err != nil {
		app.serverError(w, r, err)
	}
}

// adoptionFromRequest loads the pending adoption request addressed by the
// URL. Requests already reviewed cannot be reviewed again.
func (app *application) adoptionFromRequest(w http.ResponseWriter, r *http.Request, dao *database.AdoptionDAO) (model.AdoptionRequest, bool) {
	requestID, err := requestIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return model.AdoptionRequest{}, false
	}

	adoption, err := dao.Get(r.Context(), requestID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.notFound(w, r)
			return model.AdoptionRequest{}, false
		}

		app.serverError(w, r, err)
		return model.AdoptionRequest{}, false
	}

	if adoption.Status != model.RequestPending {
		app.errorMessage(w, r, http.StatusBadRequest, "The request has already been reviewed", nil)
		return model.AdoptionRequest{}, false
	}

	return adoption, true
}

// Handle Accept Adoption
// @Summary Accept Adoption Request
// @Description Accept a pending adoption. The animal becomes adopted and hidden, and competing pending requests are rejected.
// @Tags staff
// @Produce json
// @Param requestId path int true "Request ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} any "Request already reviewed"
// @Failure 404 {object} any "Request not found"
// @Router /staff/adoption-requests/{requestId}/accept [post]
func (app *application) handleAcceptAdoption(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	dao := database.NewAdoptionDAO(logger, app.db)

	adoption, ok := app.adoptionFromRequest(w, r, dao)
	if !ok {
		return
	}

	if err := dao.UpdateStatus(ctx, adoption.ID, model.RequestAccepted); err != nil {
		app.serverError(w, r, err)
		return
	}

	adopted := model.AnimalAdopted
	hidden := true
	animalDAO := database.NewAnimalDAO(logger, app.db)
	err := animalDAO.Update(ctx, adoption.Animal, database.UpdateAnimalDTO{
		Status: &adopted,
		Hidden: &hidden,
	})
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := dao.RejectPendingSiblings(ctx, adoption.Animal, adoption.ID); err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, response.JSONObject{"message": "Adoption accepted"}); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Reject Adoption
// @Summary Reject Adoption Request
// @Description Reject a pending adoption request
// @Tags staff
// @Produce json
// @Param requestId path int true "Request ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} any "Request already reviewed"
// @Failure 404 {object} any "Request not found"
// @Router /staff/adoption-requests/{requestId}/reject [post]
func (app *application) handleRejectAdoption(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	dao := database.NewAdoptionDAO(logger, app.db)

	adoption, ok := app.adoptionFromRequest(w, r, dao)
	if !ok {
		return
	}

	if err := dao.UpdateStatus(ctx, adoption.ID, model.RequestRejected); err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, response.JSONObject{"message": "Adoption rejected"}); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Submit Application
// @Summary Apply To Volunteer
// @Description Submit a volunteer application. Only one pending application per user.
// @Tags user
// @Accept json
// @Produce json
// @Param input body main.requestMessage true "Motivation message"
// @Success 201 {object} map[string]model.VolunteerApplication
// @Failure 409 {object} any "A pending application already exists"
// @Failure 422 {object} validator.Validator "Invalid input data"
// @Router /user/volunteer-application [post]
func (app *application) handleSubmitApplication(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	user, err := auth.RequireAuthenticated(identityFromRequest(r))
	if err != nil {
		app.redirectToSignin(w, r, "You need to login")
		return
	}

	var input requestMessage
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	validateMessage(&v, input.Message)

	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	dao := database.NewApplicationDAO(logger, app.db)

	applicationID, err := dao.Insert(ctx, database.InsertApplicationDTO{
		User:    user.ID,
		Date:    time.Now(),
		Message: input.Message,
	})
	if err != nil {
		if errors.Is(err, model.ErrExists) {
			app.errorMessage(w, r, http.StatusConflict, "You already have a pending application", nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	application, err := dao.Get(ctx, applicationID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusCreated, response.JSONObject{"volunteerApplication": application}); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle List Applications
// @Summary List Volunteer Applications
// @Description Volunteer applications, optionally filtered by status
// @Tags staff
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {object} map[string][]model.VolunteerApplication
// @Router /staff/volunteer-applications [get]
func (app *application) handleListApplications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	filter := database.FindApplicationFilter{}
	if raw := optionalStringQueryParams(r, "status"); raw != nil {
		status := model.RequestStatus(*raw)
		if !status.Valid() {
			app.errorMessage(w, r, http.StatusBadRequest, "Unknown status", nil)
			return
		}
		filter.Status = &status
	}

	dao := database.NewApplicationDAO(logger, app.db)

	applications, err := dao.Find(ctx, filter)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, response.JSONObject{"volunteerApplications": applications}); err != nil {
		app.serverError(w, r, err)
	}
}

// applicationFromRequest loads the pending volunteer application addressed
// by the URL.
func (app *application) applicationFromRequest(w http.ResponseWriter, r *http.Request, dao *database.ApplicationDAO) (model.VolunteerApplication, bool) {
	requestID, err := requestIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return model.VolunteerApplication{}, false
	}

	application, err := dao.Get(r.Context(), requestID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.notFound(w, r)
			return model.VolunteerApplication{}, false
		}

		app.serverError(w, r, err)
		return model.VolunteerApplication{}, false
	}

	if application.Status != model.RequestPending {
		app.errorMessage(w, r, http.StatusBadRequest, "The application has already been reviewed", nil)
		return model.VolunteerApplication{}, false
	}

	return application, true
}

// Handle Accept Application
// @Summary Accept Volunteer Application
// @Description Accept a pending application and promote the user to volunteer
// @Tags staff
// @Produce json
// @Param requestId path int true "Application ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} any "Application already reviewed"
// @Failure 404 {object} any "Application not found"
// @Router /staff/volunteer-applications/{requestId}/accept [post]
func (app *application) handleAcceptApplication(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	dao := database.NewApplicationDAO(logger, app.db)

	application, ok := app.applicationFromRequest(w, r, dao)
	if !ok {
		return
	}

	if err := dao.UpdateStatus(ctx, application.ID, model.RequestAccepted); err != nil {
		app.serverError(w, r, err)
		return
	}

	// Promotion only upgrades plain accounts. Staff, vets and admins keep
	// their role even if an old application of theirs gets accepted.
	userDAO := database.NewUserDAO(logger, app.db)

	applicant, err := userDAO.Get(ctx, application.User)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if applicant.Role == model.RoleRegistered {
		volunteer := model.RoleVolunteer
		if err := userDAO.Update(ctx, applicant.ID, database.UpdateUserDTO{Role: &volunteer}); err != nil {
			app.serverError(w, r, err)
			return
		}
	}

	if err := response.JSON(w, http.StatusOK, response.JSONObject{"message": "Application accepted"}); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Reject Application
// @Summary Reject Volunteer Application
// @Description Reject a pending volunteer application
// @Tags staff
// @Produce json
// @Param requestId path int true "Application ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} any "Application already reviewed"
// @Failure 404 {object} any "Application not found"
// @Router /staff/volunteer-applications/{requestId}/reject [post]
func (app *application) handleRejectApplication(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	dao := database.NewApplicationDAO(logger, app.db)

	application, ok := app.applicationFromRequest(w, r, dao)
	if !ok {
		return
	}

	if err := dao.UpdateStatus(ctx, application.ID, model.RequestRejected); err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, response.JSONObject{"message": "Application rejected"}); err != nil {
		app.serverError(w, r, err)
	}
}
