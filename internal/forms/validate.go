package forms

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/EvgeniyBudaev/gravity/client-service/internal/i18n"
)

// FieldError is one failed rule, keyed by the wire name of the field.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FieldErrors is empty when a form is valid.
type FieldErrors []FieldError

func (fe FieldErrors) Has(field string) bool {
	for _, e := range fe {
		if e.Field == field {
			return true
		}
	}
	return false
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	v.RegisterStructValidation(reviewRatingRule, AddReviewForm{})
	return v
}

// Validate runs the declared rules of a normalized form. Messages are
// rendered in lng.
func Validate(f any, lng string) FieldErrors {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return FieldErrors{{Code: "invalid", Message: i18n.T(lng, i18n.KeyInvalidField)}}
	}
	out := make(FieldErrors, 0, len(ves))
	for _, fe := range ves {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Code:    fe.Tag(),
			Message: i18n.T(lng, messageKey(fe.Tag())),
		})
	}
	return out
}

func messageKey(tag string) string {
	switch tag {
	case "required", "notblank", "nonzero":
		return i18n.KeyEmptyField
	case "email":
		return i18n.KeyInvalidEmail
	case "eqfield":
		return i18n.KeyPasswordMismatch
	case "numeric":
		return i18n.KeyNotNumber
	case "oneof":
		return i18n.KeyInvalidChoice
	default:
		return i18n.KeyInvalidField
	}
}
