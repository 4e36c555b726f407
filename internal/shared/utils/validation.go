package utils

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/compiler-aditya/PropTech/internal/shared/errors"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator. Field names in messages come from the
// `label` tag, falling back to the json tag name.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if label := fld.Tag.Get("label"); label != "" {
				return label
			}
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// RegisterEnum registers a string validation tag backed by isValid. Empty values pass
// so that `omitempty` and `required` keep their usual meaning.
func RegisterEnum(tag string, isValid func(string) bool) error {
	return Validator().RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || isValid(s)
	})
}

// ValidateStruct validates s and returns a validation error carrying the first failure
// as its message and every failure in its details.
//
// A field's `errmsg` tag replaces the generated message for any failure on that field.
func ValidateStruct(s interface{}) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return errors.NewValidationError("Invalid input")
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, fieldErrorMessage(s, fe))
	}

	return errors.NewValidationError(messages[0], strings.Join(messages, "; "))
}

func fieldErrorMessage(s interface{}, fe validator.FieldError) string {
	if msg := errmsgTag(s, fe.StructField()); msg != "" {
		return msg
	}

	field := fe.Field()
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func errmsgTag(s interface{}, structField string) string {
	t := reflect.TypeOf(s)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return ""
	}
	f, ok := t.FieldByName(structField)
	if !ok {
		return ""
	}
	return f.Tag.Get("errmsg")
}
