package services

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator. Field errors report the `label`
// tag so messages read as form labels.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if label := fld.Tag.Get("label"); label != "" {
				return label
			}
			return fld.Name
		})
	})
	return validate
}

// validateFields validates s and keeps only the errors of the named struct
// fields. A nil keep checks every field.
func validateFields(s interface{}, keep map[string]bool) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var labels []string
	for _, fe := range fieldErrs {
		if keep != nil && !keep[fe.StructField()] {
			continue
		}
		labels = append(labels, fe.Field())
	}
	if len(labels) == 0 {
		return nil
	}
	return &ValidationError{Fields: labels}
}

// fieldsByStep groups the struct fields of t by their `step` tag.
func fieldsByStep(t reflect.Type) map[int]map[string]bool {
	out := make(map[int]map[string]bool)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		raw := strings.TrimSpace(f.Tag.Get("step"))
		if raw == "" {
			continue
		}
		step, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		if out[step] == nil {
			out[step] = make(map[string]bool)
		}
		out[step][f.Name] = true
	}
	return out
}
