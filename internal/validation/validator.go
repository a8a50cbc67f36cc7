// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

package validation

import (
	"math"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// singleton validator instance
var (
	validate     *validator.Validate
	validateOnce sync.Once
)

var (
	userIDPattern     = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	resolutionPattern = regexp.MustCompile(`^\d+x\d+$`)
)

// GetValidator returns the singleton validator instance with the custom
// rules registered. It is safe for concurrent use.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// Namespaces use JSON names so errors point at the client's field path.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		mustRegister(v, "nonempty", func(fl validator.FieldLevel) bool {
			return fl.Field().Kind() != reflect.String || fl.Field().Len() > 0
		})
		mustRegister(v, "userid", func(fl validator.FieldLevel) bool {
			return userIDPattern.MatchString(fl.Field().String())
		})
		mustRegister(v, "resolution", func(fl validator.FieldLevel) bool {
			return resolutionPattern.MatchString(fl.Field().String())
		})
		mustRegister(v, "isodate", func(fl validator.FieldLevel) bool {
			_, err := ParseISODate(fl.Field().String())
			return err == nil
		})
		mustRegister(v, "integer", func(fl validator.FieldLevel) bool {
			f := fl.Field().Float()
			return f == math.Trunc(f)
		})

		v.RegisterStructValidation(submissionStructLevel, Submission{})
		v.RegisterStructValidation(dataStructLevel, Data{})

		validate = v
	})

	return validate
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic("validation: register " + tag + ": " + err.Error())
	}
}

// submissionStructLevel requires at least one metric group under data.
func submissionStructLevel(sl validator.StructLevel) {
	s, ok := sl.Current().Interface().(Submission)
	if !ok || s.Data == nil {
		return
	}
	d := s.Data
	if d.Attentiveness == nil && d.ScientificAttitude == nil && d.Creativity == nil && d.General == nil {
		sl.ReportError(s.Data, "data", "Data", "metricgroup", "")
	}
}

// dataStructLevel requires every present metric group to carry at least one field.
func dataStructLevel(sl validator.StructLevel) {
	d, ok := sl.Current().Interface().(Data)
	if !ok {
		return
	}
	groups := []struct {
		name, field string
		value       any
		present     bool
	}{
		{TypeAttentiveness, "Attentiveness", d.Attentiveness, d.Attentiveness != nil},
		{TypeScientificAttitude, "ScientificAttitude", d.ScientificAttitude, d.ScientificAttitude != nil},
		{TypeCreativity, "Creativity", d.Creativity, d.Creativity != nil},
		{TypeGeneral, "General", d.General, d.General != nil},
	}
	for _, g := range groups {
		if g.present && !anyFieldSet(g.value) {
			sl.ReportError(g.value, g.name, g.field, "minkeys", "1")
		}
	}
}

// anyFieldSet reports whether a metric group struct has a non-nil field.
func anyFieldSet(group any) bool {
	rv := reflect.Indirect(reflect.ValueOf(group))
	for i := 0; i < rv.NumField(); i++ {
		if !rv.Field(i).IsNil() {
			return true
		}
	}
	return false
}
