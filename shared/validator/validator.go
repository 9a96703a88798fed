package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"holipass/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("passtype", func(fl val.FieldLevel) bool {
		switch fl.Field().String() {
		case "", "entry", "entry_starter", "entry_starter_lunch":
			return true
		}

		return false
	})
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

func message(err error) string {
	errs, ok := err.(val.ValidationErrors)
	if !ok {
		return err.Error()
	}

	parts := make([]string, 0, len(errs))
	for _, fieldErr := range errs {
		switch fieldErr.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", strings.ToLower(fieldErr.Field())))
		case "email":
			parts = append(parts, fmt.Sprintf("%s must be a valid email address", strings.ToLower(fieldErr.Field())))
		case "min":
			parts = append(parts, fmt.Sprintf("%s must be at least %s", strings.ToLower(fieldErr.Field()), fieldErr.Param()))
		case "max":
			parts = append(parts, fmt.Sprintf("%s must be at most %s", strings.ToLower(fieldErr.Field()), fieldErr.Param()))
		case "passtype":
			parts = append(parts, fmt.Sprintf("%s must be one of entry, entry_starter, entry_starter_lunch", strings.ToLower(fieldErr.Field())))
		default:
			parts = append(parts, fmt.Sprintf("%s failed on %s", strings.ToLower(fieldErr.Field()), fieldErr.Tag()))
		}
	}

	return strings.Join(parts, "; ")
}
