package router

import (
	"reflect"
	"strings"

	"gopkg.in/go-playground/validator.v9"
)

// NewValidator func
func NewValidator() *Validator {
	v := validator.New()
	// report form field names so errors line up with model.FieldSpecs
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return &Validator{
		validator: v,
	}
}

// Validator struct
type Validator struct {
	validator *validator.Validate
}

// Validate func
func (v *Validator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}
