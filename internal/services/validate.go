package services

import (
	"errors"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/provafacil/provafacil/internal/api"
)

// validate is the shared validator instance. Struct tags mirror the server's
// rules so obviously bad payloads fail before any network call.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("password", passwordPolicy)
	return v
}

// passwordPolicy requires at least one uppercase letter, one lowercase
// letter, and one digit. Length limits are covered by min/max tags.
func passwordPolicy(fl validator.FieldLevel) bool {
	var upper, lower, digit bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}

// checkStruct runs tag validation and converts the first failure into a
// user-displayable ValidationError.
func checkStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &api.ValidationError{Message: err.Error()}
	}
	return &api.ValidationError{Message: fieldMessage(verrs[0])}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "ConfirmPassword":
		return "passwords do not match"
	case "Password":
		switch fe.Tag() {
		case "min", "max":
			return "password must be between 8 and 100 characters"
		case "password":
			return "password must contain an uppercase letter, a lowercase letter, and a digit"
		}
		return "invalid password"
	case "Email":
		return "invalid email address"
	case "Username":
		return "username must be between 3 and 50 characters"
	case "Topic":
		return "topic is required"
	case "QuestionCount":
		return "question count must be between 1 and 50"
	}
	return "invalid " + fe.Field()
}
