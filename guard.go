package reactive

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const reasonEmpty = "value must not be null or empty"

var structValidator = newStructValidator()

// newStructValidator reports fields by their json name when one is set, so
// errors match the names used in configuration files.
func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// RequireNotEmpty returns an ArgumentError naming param when value is empty.
func RequireNotEmpty(param, value string) error {
	if value == "" {
		return newArgumentError(param, reasonEmpty)
	}
	return nil
}

// RequireNotNil returns an ArgumentError naming param when value is nil.
func RequireNotNil[T any](param string, value *T) error {
	if value == nil {
		return newArgumentError(param, "value must not be nil")
	}
	return nil
}

// RequireNonNilValue returns an ArgumentError naming param when value is
// nil, including a typed nil pointer, map, slice, func or channel held in
// an interface.
func RequireNonNilValue(param string, value any) error {
	if value == nil {
		return newArgumentError(param, "value must not be nil")
	}
	switch rv := reflect.ValueOf(value); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		if rv.IsNil() {
			return newArgumentError(param, "value must not be nil")
		}
	}
	return nil
}

// ValidateStruct checks v against its `validate` struct tags. The first
// violation is returned as an ArgumentError naming the field.
func ValidateStruct(v any) error {
	err := structValidator.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return newArgumentError(fe.Field(), reasonEmpty)
	default:
		return newArgumentError(fe.Field(), "failed "+fe.Tag()+" rule")
	}
}
