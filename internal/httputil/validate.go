package httputil

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is safe for concurrent use and caches struct metadata, so one
// instance serves every request.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateStruct checks the validate tags on s. The first failing field is
// returned as a 422 with the field in the error context.
func ValidateStruct(s any) error {
	return validationError(validate.Struct(s), "")
}

// ValidateVar checks a single value against tag, reporting it as field.
func ValidateVar(field string, value any, tag string) error {
	return validationError(validate.Var(value, tag), field)
}

func validationError(err error, field string) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	if field == "" {
		field = fe.Field()
	}

	switch {
	case fe.Tag() == "required", fe.Tag() == "min" && fe.Value() == "":
		return Validation(field+" is required").WithContext(field, nil)
	case fe.Tag() == "email":
		return Validation("invalid email format").WithContext(field, fe.Value())
	case fe.Tag() == "max":
		return Validation(field+" must be at most "+fe.Param()+" characters").WithContext(field, fe.Value())
	default:
		return Validation(field+" failed "+fe.Tag()+" validation").WithContext(field, fe.Value())
	}
}
