// Package validation runs the explicit presence checks the JSON endpoints
// apply before touching the database.
package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report field names the way the client sent them
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// MissingFields returns the json names of every required field absent from
// input, in declaration order. An empty result means input is complete.
func MissingFields(input interface{}) []string {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"body"}
	}

	var missing []string
	for _, fieldErr := range verrs {
		missing = append(missing, fieldErr.Field())
	}
	return missing
}
