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

// requesterIsStaff reports whether the current requester may see hidden
// animals. Anonymous visitors and regular accounts only get the public
// catalog.
func requesterIsStaff(r *http.Request) bool {
	user, ok := identityFromRequest(r).User()
	if !ok {
		return false
	}
	return auth.CapabilitiesFor(user.Role).Staff
}

// Handle List Animals
// @Summary List Animals
// @Description List shelter animals. Staff see hidden animals as well.
// @Tags animals
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {object} map[string][]model.Animal
// @Router /animals [get]
func (app *application) handleListAnimals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	filter := database.FindAnimalFilter{}
	if !requesterIsStaff(r) {
		hidden := false
		filter.Hidden = &hidden
	}
	if raw := optionalStringQueryParams(r, "status"); raw != nil {
		status := model.AnimalStatus(*raw)
		if !status.Valid() {
			app.errorMessage(w, r, http.StatusBadRequest, "Unknown status", nil)
			return
		}
		filter.Status = &status
	}

	dao := database.NewAnimalDAO(logger, app.db)

	animals, err := dao.Find(ctx, filter)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, response.JSONObject{"animals": animals}); err != nil {
		app.serverError(w, r, err)
	}
}

// animalFromRequest loads the animal addressed by the URL, mapping a
// missing row to 404. Hidden animals stay invisible to non-staff.
func (app *application) animalFromRequest(w http.ResponseWriter, r *http.Request, dao *database.AnimalDAO) (model.Animal, bool) {
	animalID, err := animalIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return model.Animal{}, false
	}

	animal, err := dao.Get(r.Context(), animalID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.notFound(w, r)
			return model.Animal{}, false
		}

		app.serverError(w, r, err)
		return model.Animal{}, false
	}

	if animal.Hidden && !requesterIsStaff(r) {
		app.notFound(w, r)
		return model.Animal{}, false
	}

	return animal, true
}

// Handle Get Animal
// @Summary Get Animal
// @Description A single animal's card
// @Tags animals
// @Produce json
// @Param animalId path int true "Animal ID"
// @Success 200 {object} map[string]model.Animal
// @Failure 404 {object} any "Animal not found"
// @Router /animals/{animalId} [get]
func (app *application) handleGetAnimal(w http.ResponseWriter, r *http.Request) {
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](r.Context(), _traceIDKey),
	)

	dao := database.NewAnimalDAO(logger, app.db)

	animal, ok := app.animalFromRequest(w, r, dao)
	if !ok {
		return
	}

	if err := response.JSON(w, http.StatusOK, response.JSONObject{"animal": animal}); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Animal Photo
// @Summary Animal Photo
// @Description The animal's photo as a raw image
// @Tags animals
// @Produce jpeg
// @Param animalId path int true "Animal ID"
// @Success 200 {file} binary
// @Failure 404 {object} any "Animal or photo not found"
// @Router /animals/{animalId}/photo [get]
func (app *application) handleAnimalPhoto(w http.ResponseWriter, r *http.Request) {
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](r.Context(), _traceIDKey),
	)

	dao := database.NewAnimalDAO(logger, app.db)

	animal, ok := app.animalFromRequest(w, r, dao)
	if !ok {
		return
	}

	if len(animal.Photo) == 0 {
		app.errorMessage(w, r, http.StatusNotFound, "The animal has no photo", nil)
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(animal.Photo))
	w.WriteHeader(http.StatusOK)
	w.Write(animal.Photo)
}

// Handle Add Animal
// @Summary Add Animal
// @Description Register a new animal in the shelter
// @Tags staff
// @Accept json
// @Produce json
// @Param input body main.requestAddAnimal true "Animal card"
// @Success 201 {object} map[string]model.Animal
// @Failure 422 {object} validator.Validator "Invalid input data"
// @Router /staff/animals [post]
func (app *application) handleAddAnimal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	var input requestAddAnimal
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	validateAddAnimal(&v, input)

	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	dao := database.NewAnimalDAO(logger, app.db)

	animalID, err := dao.Insert(ctx, database.InsertAnimalDTO{
		Name:        input.Name,
		Species:     input.Species,
		Age:         input.Age,
		Description: input.Description,
	})
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	animal, err := dao.Get(ctx, animalID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusCreated, response.JSONObject{"animal": animal}); err != nil {
		app.serverError(w, r, err)
	}
}

type requestAddAnimal struct {
	Name        string `json:"name"`
	Species     string `json:"species"`
	Age         int    `json:"age"`
	Description string `json:"description"`
}

// Handle Update Animal
// @Summary Update Animal
// @Description Partially update an animal's card, status or visibility
// @Tags staff
// @Accept json
// @Produce json
// @Param animalId path int true "Animal ID"
// @Param input body main.requestUpdateAnimal true "Fields to change"
// @Success 200 {object} map[string]model.Animal
// @Failure 404 {object} any "Animal not found"
// @Router /staff/animals/{animalId} [patch]
func (app *application) handleUpdateAnimal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	dao := database.NewAnimalDAO(logger, app.db)

	animal, ok := app.animalFromRequest(w, r, dao)
	if !ok {
		return
	}

	var input requestUpdateAnimal
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	if input.Status != nil && !input.Status.Valid() {
		app.errorMessage(w, r, http.StatusBadRequest, "Unknown status", nil)
		return
	}
	if input.Age != nil && *input.Age < 0 {
		app.errorMessage(w, r, http.StatusBadRequest, "Age must not be a negative number", nil)
		return
	}

	err := dao.Update(ctx, animal.ID, database.UpdateAnimalDTO{
		Name:        input.Name,
		Species:     input.Species,
		Age:         input.Age,
		Description: input.Description,
		Status:      input.Status,
		Hidden:      input.Hidden,
	})
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	animal, err = dao.Get(ctx, animal.ID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, response.JSONObject{"animal": animal}); err != nil {
		app.serverError(w, r, err)
	}
}

type requestUpdateAnimal struct {
	Name        *string             `json:"name"`
	Species     *string             `json:"species"`
	Age         *int                `json:"age"`
	Description *string             `json:"description"`
	Status      *model.AnimalStatus `json:"status"`
	Hidden      *bool               `json:"hidden"`
}

// Handle Delete Animal
// @Summary Delete Animal
// @Description Remove an animal and everything recorded about it
// @Tags staff
// @Produce json
// @Param animalId path int true "Animal ID"
// @Success 204
// @Failure 404 {object} any "Animal not found"
// @Router /staff/animals/{animalId} [delete]
func (app *application) handleDeleteAnimal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	dao := database.NewAnimalDAO(logger, app.db)

	animal, ok := app.animalFromRequest(w, r, dao)
	if !ok {
		return
	}

	if err := dao.Delete(ctx, animal.ID); err != nil {
		app.serverError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
