package main

import (
	"time"

	"github.com/shelterops/shelter-api/internal/validator"
)

// Validation rules

func validateSignup(v *validator.Validator, request requestSignup) {
	v.CheckField(validator.NotBlank(request.Name), "name", "cannot be blank")
	validateUsername(v, request.Username)
	validatePassword(v, request.Password)
	v.CheckField(request.Password == request.ConfirmPassword, "confirmPassword", "passwords do not match")
}

func validateUsername(v *validator.Validator, username string) {
	v.CheckField(validator.NotBlank(username), "username", "cannot be blank")
	v.CheckField(validator.MaxRunes(username, 64), "username", "must be at most 64 characters")
	v.CheckField(validator.Matches(username, validator.RgxUsername), "username", "contains invalid characters")
}

func validatePassword(v *validator.Validator, password string) {
	v.CheckField(validator.NotBlank(password), "password", "cannot be blank")
	v.CheckField(validator.MinRunes(password, 8), "password", "must be at least 8 characters")
	v.CheckField(validator.MaxRunes(password, 72), "password", "must be at most 72 characters")
}

func validateAddAnimal(v *validator.Validator, request requestAddAnimal) {
	v.CheckField(validator.NotBlank(request.Name), "name", "cannot be blank")
	v.CheckField(validator.NotBlank(request.Species), "species", "cannot be blank")
	v.CheckField(request.Age >= 0, "age", "must not be a negative number")
}

func validateReserveWalks(v *validator.Validator, request requestReserveWalks) {
	v.CheckField(len(request.Slots) != 0, "slots", "no slots selected")
	v.CheckField(validator.NoDuplicates(request.Slots), "slots", "contains duplicate slots")
	v.CheckField(validator.NotBlank(request.Location), "location", "cannot be blank")
}

func validateDateRange(v *validator.Validator, start, end time.Time) {
	v.Check(!start.IsZero(), "start date is required")
	v.Check(!end.IsZero(), "end date is required")
	if !start.IsZero() && !end.IsZero() {
		v.Check(start.Before(end), "start date must be before end date")
	}
}

func validateMessage(v *validator.Validator, message string) {
	v.CheckField(validator.NotBlank(message), "message", "cannot be blank")
	v.CheckField(validator.MaxRunes(message, 2048), "message", "must be at most 2048 characters")
}

func validateDescription(v *validator.Validator, description string) {
	v.CheckField(validator.NotBlank(description), "description", "cannot be blank")
	v.CheckField(validator.MaxRunes(description, 2048), "description", "must be at most 2048 characters")
}
