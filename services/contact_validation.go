package services

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"rehber.link/models"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Hata mesajlarında Go alan adı yerine json adını göster.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldErrors alan adı -> kullanıcıya gösterilecek mesaj.
type FieldErrors map[string]string

// ValidationError girdi doğrulamasında takılan alanları taşır.
// errors.Is(err, ErrContactInvalidInput) true döner.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, field := range slices.Sorted(maps.Keys(e.Fields)) {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrContactInvalidInput, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrContactInvalidInput }

// ValidateContactInput girdiyi alan kurallarına göre doğrular.
func ValidateContactInput(input models.ContactInput) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrContactInvalidInput, err)
	}
	fields := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return &ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "zorunlu alan"
	case "max":
		return fmt.Sprintf("en fazla %s karakter olabilir", fe.Param())
	case "min":
		return fmt.Sprintf("en az %s olmalı", fe.Param())
	case "email":
		return "geçerli bir e-posta adresi değil"
	case "url":
		return "geçerli bir URL değil"
	case "iso3166_1_alpha2":
		return "iki harfli ISO ülke kodu olmalı"
	}
	return fmt.Sprintf("'%s' kuralına uymuyor", fe.Tag())
}
