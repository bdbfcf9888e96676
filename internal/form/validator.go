// Package form validates the shape of incoming API requests before they
// reach the handlers.
package form

import (
	"sort"
	"strings"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/jekabolt/grbpwr-tickets/internal/entity"
)

// ValidateStruct is validation.ValidateStruct that reports the first
// violated field as an *entity.ValidationError.
func ValidateStruct(structPtr interface{}, rules ...*validation.FieldRules) error {
	for _, rule := range rules {
		err := validation.ValidateStruct(structPtr, rule)
		if err == nil {
			continue
		}
		ve, ok := err.(validation.Errors)
		if !ok {
			return err
		}
		return firstViolation(ve)
	}
	return nil
}

func firstViolation(ve validation.Errors) error {
	keys := make([]string, 0, len(ve))
	for k := range ve {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if ve[k] == nil {
			continue
		}
		return &entity.ValidationError{
			Field:   k,
			Message: formatErrMsg(k + " " + ve[k].Error()),
		}
	}
	return nil
}

func formatErrMsg(s string) string {
	return ucfirst(strings.Trim(s, " .")) + "."
}

func ucfirst(str string) string {
	for i, v := range str {
		return string(unicode.ToUpper(v)) + str[i+1:]
	}
	return ""
}

func oneOf[T any](values []T) []interface{} {
	in := make([]interface{}, 0, len(values))
	for _, v := range values {
		in = append(in, v)
	}
	return in
}
