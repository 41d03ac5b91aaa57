package validation

import (
	"reflect"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"

	domainErrors "github.com/snstore/backend/internal/domain/errors"
)

// New returns a configured validator reporting json tag names, so the
// offending fields in error payloads match the wire format.
func New() *validatorv10.Validate {
	v := validatorv10.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// Check runs struct validation and translates failures into a domain
// ValidationError carrying the offending field names.
func Check(v *validatorv10.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var fields []string
	if ve, ok := err.(validatorv10.ValidationErrors); ok {
		for _, fe := range ve {
			fields = append(fields, fe.Field())
		}
		return domainErrors.NewValidation(fields...)
	}
	return err
}
