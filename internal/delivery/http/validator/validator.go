// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their json names
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validate: v}
}

// Validate returns a ValidationError for the first failing field
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.WithStack(err)
	}

	first := fieldErrs[0]

	return domainerrors.NewValidationError(first.Field(), "VALIDATION_FAILED", message(first))
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " مطلوب"
	case "oneof":
		return fe.Field() + " يجب أن يكون أحد: " + fe.Param()
	case "min":
		return fe.Field() + " قصير جداً (الحد الأدنى " + fe.Param() + ")"
	case "gte", "lte":
		return fe.Field() + " خارج النطاق المسموح"
	default:
		return fe.Field() + " غير صالح"
	}
}
