package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"media-quiz/internal/domain"

	"github.com/go-playground/validator/v10"
)

// Validator validates request DTOs and reports failures as domain.ValidationErrors
// keyed by form field name.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	// "integer" accepts anything strconv.Atoi accepts, including a sign.
	_ = v.RegisterValidation("integer", func(fl validator.FieldLevel) bool {
		_, err := strconv.Atoi(fl.Field().String())
		return err == nil
	})
	return &Validator{validate: v}
}

// Struct validates s. It returns nil when s is valid.
func (v *Validator) Struct(s interface{}) domain.ValidationErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.ValidationErrors{{Field: "request", Code: domain.CodeInvalidValue, Message: err.Error()}}
	}

	out := make(domain.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, toValidationError(fe))
	}
	return out
}

func toValidationError(fe validator.FieldError) domain.ValidationError {
	value := fmt.Sprint(fe.Value())
	switch fe.Tag() {
	case "required":
		return domain.NewMissingFieldError(fe.Field())
	case "url", "integer":
		return domain.NewInvalidFormatError(fe.Field(), value)
	case "oneof":
		return domain.NewInvalidValueError(fe.Field(), value, fe.Param())
	default:
		return domain.ValidationError{
			Field:   fe.Field(),
			Code:    domain.CodeInvalidValue,
			Message: fmt.Sprintf("%s failed the %q rule", fe.Field(), fe.Tag()),
		}
	}
}
