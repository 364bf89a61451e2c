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

// Handle Submit Vet Request
// @Summary Request Veterinary Care
// @Description Ask the vets to look at an animal
// @Tags staff
// @Accept json
// @Produce json
// @Param animalId path int true "Animal ID"
// @Param input body main.requestDescription true "What needs attention"
// @Success 201 {object} map[string]model.VetRequest
// @Failure 404 {object} any "Animal not found"
// @Failure 422 {object} validator.Validator "Invalid input data"
// @Router /staff/animals/{animalId}/vet-request [post]
func (app *application) handleSubmitVetRequest(w http.ResponseWriter, r *http.Request) {
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

	var input requestDescription
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	validateDescription(&v, input.Description)

	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	dao := database.NewVetRequestDAO(logger, app.db)

	requestID, err := dao.Insert(ctx, database.InsertVetRequestDTO{
		Animal:      animal.ID,
		User:        user.ID,
		Date:        time.Now(),
		Description: input.Description,
	})
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	vetRequest, err := dao.Get(ctx, requestID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusCreated, response.JSONObject{"vetRequest": vetRequest}); err != nil {
		app.serverError(w, r, err)
	}
}

type requestDescription struct {
	Description string `json:"description"`
}

// Handle List Vet Requests
// @Summary List Vet Requests
// @Description Veterinary care requests, optionally filtered by status or animal
// @Tags vet
// @Produce json
// @Param status query string false "Filter by status"
// @Param animalId query int false "Filter by animal"
// @Success 200 {object} map[string][]model.VetRequest
// @Router /vet/requests [get]
func (app *application) handleListVetRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	filter := database.FindVetRequestFilter{}
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

	dao := database.NewVetRequestDAO(logger, app.db)

	requests, err := dao.Find(ctx, filter)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, response.JSONObject{"vetRequests": requests}); err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) vetRequestFromRequest(w http.ResponseWriter, r *http.Request, dao *database.VetRequestDAO) (model.VetRequest, bool) {
	requestID, err := requestIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return model.VetRequest{}, false
	}

	vetRequest, err := dao.Get(r.Context(), requestID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.notFound(w, r)
			return model.VetRequest{}, false
		}

		app.serverError(w, r, err)
		return model.VetRequest{}, false
	}

	return vetRequest, true
}

// Handle Accept Vet Request
// @Summary Accept Vet Request
// @Description Take a pending care request into work
// @Tags vet
// @Produce json
// @Param requestId path int true "Request ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} any "Request is not pending"
// @Failure 404 {object} any "Request not found"
// @Router /vet/requests/{requestId}/accept [post]
func (app *application) handleAcceptVetRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	dao := database.NewVetRequestDAO(logger, app.db)

	vetRequest, ok := app.vetRequestFromRequest(w, r, dao)
	if !ok {
		return
	}

	if vetRequest.Status != model.RequestPending {
		app.errorMessage(w, r, http.StatusBadRequest, "The request is not in a pending state", nil)
		return
	}

	if err := dao.UpdateStatus(ctx, vetRequest.ID, model.RequestAccepted); err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, response.JSONObject{"message": "Request accepted"}); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Complete Vet Request
// @Summary Complete Vet Request
// @Description Close a care request once the animal has been seen. Closing reuses the rejected terminal status.
// @Tags vet
// @Produce json
// @Param requestId path int true "Request ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} any "Request already closed"
// @Failure 404 {object} any "Request not found"
// @Router /vet/requests/{requestId}/complete [post]
func (app *application) handleCompleteVetRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	dao := database.NewVetRequestDAO(logger, app.db)

	vetRequest, ok := app.vetRequestFromRequest(w, r, dao)
	if !ok {
		return
	}

	if vetRequest.Status != model.RequestPending && vetRequest.Status != model.RequestAccepted {
		app.errorMessage(w, r, http.StatusBadRequest, "The request has already been closed", nil)
		return
	}

	// A closed care request is terminal either way; the rejected status
	// doubles as "done" so the request drops out of the work queues.
	if err := dao.UpdateStatus(ctx, vetRequest.ID, model.RequestRejected); err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, response.JSONObject{"message": "Request completed"}); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Get Medical History
// @Summary Medical History
// @Description The animal's medical history with its treatments and vaccinations
// @Tags vet
// @Produce json
// @Param animalId path int true "Animal ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} any "Animal or history not found"
// @Router /vet/animals/{animalId}/medical-history [get]
func (app *application) handleGetMedicalHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	animalDAO := database.NewAnimalDAO(logger, app.db)

	animal, ok := app.animalFromRequest(w, r, animalDAO)
	if !ok {
		return
	}

	dao := database.NewMedicalDAO(logger, app.db)

	history, err := dao.HistoryByAnimal(ctx, animal.ID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, "The animal has no medical history yet", nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	treatments, err := dao.TreatmentsByHistory(ctx, history.ID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	vaccinations, err := dao.VaccinationsByHistory(ctx, history.ID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	payload := response.JSONObject{
		"medicalHistory": history,
		"treatments":     treatments,
		"vaccinations":   vaccinations,
	}

	if err := response.JSON(w, http.StatusOK, payload); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Create Medical History
// @Summary Open Medical History
// @Description Open the animal's medical history. Each animal has at most one.
// @Tags vet
// @Accept json
// @Produce json
// @Param animalId path int true "Animal ID"
// @Param input body main.requestDescription true "Initial notes"
// @Success 201 {object} map[string]model.MedicalHistory
// @Failure 404 {object} any "Animal not found"
// @Failure 409 {object} any "History already exists"
// @Router /vet/animals/{animalId}/medical-history [post]
func (app *application) handleCreateMedicalHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	animalDAO := database.NewAnimalDAO(logger, app.db)

	animal, ok := app.animalFromRequest(w, r, animalDAO)
	if !ok {
		return
	}

	var input requestDescription
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	validateDescription(&v, input.Description)

	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	dao := database.NewMedicalDAO(logger, app.db)

	_, err := dao.InsertHistory(ctx, database.InsertHistoryDTO{
		Animal:      animal.ID,
		StartDate:   time.Now(),
		Description: input.Description,
	})
	if err != nil {
		if errors.Is(err, model.ErrExists) {
			app.errorMessage(w, r, http.StatusConflict, "The animal already has a medical history", nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	history, err := dao.HistoryByAnimal(ctx, animal.ID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusCreated, response.JSONObject{"medicalHistory": history}); err != nil {
		app.serverError(w, r, err)
	}
}

type requestMedicalRecord struct {
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

// medicalRecordFromRequest decodes and validates a treatment or
// vaccination entry and resolves the animal's history it belongs to.
func (app *application) medicalRecordFromRequest(w http.ResponseWriter, r *http.Request, dao *database.MedicalDAO) (database.InsertRecordDTO, bool) {
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](r.Context(), _traceIDKey),
	)

	animalDAO := database.NewAnimalDAO(logger, app.db)

	animal, ok := app.animalFromRequest(w, r, animalDAO)
	if !ok {
		return database.InsertRecordDTO{}, false
	}

	var input requestMedicalRecord
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return database.InsertRecordDTO{}, false
	}

	var v validator.Validator
	validateDescription(&v, input.Description)
	v.Check(!input.Date.IsZero(), "date is required")

	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return database.InsertRecordDTO{}, false
	}

	history, err := dao.HistoryByAnimal(r.Context(), animal.ID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, "Open the animal's medical history first", nil)
			return database.InsertRecordDTO{}, false
		}

		app.serverError(w, r, err)
		return database.InsertRecordDTO{}, false
	}

	return database.InsertRecordDTO{
		MedicalHistory: history.ID,
		Date:           input.Date,
		Description:    input.Description,
	}, true
}

// Handle Add Treatment
// @Summary Record Treatment
// @Description Append a treatment to the animal's medical history
// @Tags vet
// @Accept json
// @Produce json
// @Param animalId path int true "Animal ID"
// @Param input body main.requestMedicalRecord true "Treatment entry"
// @Success 201 {object} map[string]string
// @Failure 404 {object} any "Animal or history not found"
// @Router /vet/animals/{animalId}/treatments [post]
func (app *application) handleAddTreatment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	dao := database.NewMedicalDAO(logger, app.db)

	dto, ok := app.medicalRecordFromRequest(w, r, dao)
	if !ok {
		return
	}

	if _, err := dao.InsertTreatment(ctx, dto); err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusCreated, response.JSONObject{"message": "Treatment recorded"}); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Add Vaccination
// @Summary Record Vaccination
// @Description Append a vaccination to the animal's medical history
// @Tags vet
// @Accept json
// @Produce json
// @Param animalId path int true "Animal ID"
// @Param input body main.requestMedicalRecord true "Vaccination entry"
// @Success 201 {object} map[string]string
// @Failure 404 {object} any "Animal or history not found"
// @Router /vet/animals/{animalId}/vaccinations [post]
func (app *application) handleAddVaccination(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	dao := database.NewMedicalDAO(logger, app.db)

	dto, ok := app.medicalRecordFromRequest(w, r, dao)
	if !ok {
		return
	}

	if _, err := dao.InsertVaccination(ctx, dto); err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusCreated, response.JSONObject{"message": "Vaccination recorded"}); err != nil {
		app.serverError(w, r, err)
	}
}
