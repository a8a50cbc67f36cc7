// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one violated rule.
type FieldError struct {
	// Field is the dotted JSON path, e.g. "data.creativity.original_ideas".
	Field string `json:"field"`

	Message string `json:"message"`

	// Value is the offending input as the client sent it. Omitted when the
	// field was missing.
	Value any `json:"value,omitempty"`

	// Tag is the rule that failed.
	Tag string `json:"-"`
}

// Error implements the error interface.
func (e FieldError) Error() string {
	return e.Message
}

// Errors is the complete list of violations of one submission.
type Errors []FieldError

// Error joins all messages.
func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Message
	}
	return strings.Join(msgs, "; ")
}

// Fields returns the failing field paths in report order.
func (e Errors) Fields() []string {
	out := make([]string, len(e))
	for i, fe := range e {
		out[i] = fe.Field
	}
	return out
}

// ValidateSubmission checks a decoded request body against the submission
// schema. Every violation is collected; on success the returned Submission
// holds only known fields, with numeric strings converted and the data
// timestamp normalized to UTC.
//
// A nil body is treated as an empty object.
func ValidateSubmission(raw map[string]any) (*Submission, Errors) {
	if raw == nil {
		raw = map[string]any{}
	}

	c := newCoercer()
	sub := &Submission{}
	c.object("", raw, reflect.ValueOf(sub))

	errs := Errors(c.errs)
	errs = append(errs, ruleErrors(sub, raw, c.bad)...)
	if len(errs) > 0 {
		return nil, errs
	}

	if t, err := ParseISODate(*sub.Data.Timestamp); err == nil {
		normalized := FormatTimestamp(t)
		sub.Data.Timestamp = &normalized
	}
	return sub, nil
}

func ruleErrors(sub *Submission, raw map[string]any, skip map[string]bool) Errors {
	err := GetValidator().Struct(sub)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return Errors{{Field: "", Message: err.Error(), Tag: "unknown"}}
	}

	out := make(Errors, 0, len(validationErrs))
	for _, fe := range validationErrs {
		path := fieldPath(fe.Namespace())
		if skip[path] || (fe.Tag() == "metricgroup" && badGroup(skip)) || (fe.Tag() == "minkeys" && badUnder(skip, path)) {
			continue
		}
		value, _ := lookup(raw, path)
		out = append(out, FieldError{
			Field:   path,
			Message: translateError(fe, path),
			Value:   value,
			Tag:     fe.Tag(),
		})
	}
	return out
}

// badGroup reports whether a metric group was sent with the wrong type, in
// which case that type error already explains the missing group.
func badGroup(skip map[string]bool) bool {
	for _, g := range SubmissionTypes {
		if skip["data."+g] {
			return true
		}
	}
	return false
}

// badUnder reports whether a field inside path had a type error. The group
// then has a key, it just is not usable.
func badUnder(skip map[string]bool, path string) bool {
	prefix := path + "."
	for p := range skip {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

// fieldPath strips the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// lookup returns the raw value at a dotted path.
func lookup(raw map[string]any, path string) (any, bool) {
	var cur any = raw
	for _, part := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = m[part]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// customMessages override the generated message for a field and rule.
var customMessages = map[string]map[string]string{
	"userId": {
		"userid": "User ID must contain only letters, numbers, hyphens, and underscores",
		"min":    "User ID must be at least 3 characters long",
		"max":    "User ID must not exceed 50 characters",
	},
	"type": {
		"oneof": "Type must be one of: " + strings.Join(SubmissionTypes, ", "),
	},
}

// errorMessageTemplates maps rules to message templates. %[1]s is the quoted
// field label, %[2]s the rule parameter.
var errorMessageTemplates = map[string]string{
	"required":    "%[1]s is required",
	"nonempty":    "%[1]s is not allowed to be empty",
	"isodate":     "%[1]s must be in ISO 8601 date format",
	"integer":     "%[1]s must be an integer",
	"metricgroup": "%[1]s must contain at least one of [" + strings.Join(SubmissionTypes, ", ") + "]",
	"minkeys":     "%[1]s must have at least %[2]s key",
	"oneof":       "%[1]s must be one of [%[2]s]",
	"resolution":  "%[1]s fails to match the required pattern: /^\\d+x\\d+$/",
	"userid":      "%[1]s fails to match the required pattern: /^[a-zA-Z0-9_-]+$/",
}

// translateError converts a validator.FieldError to a human-readable message.
func translateError(fe validator.FieldError, path string) string {
	tag := fe.Tag()

	if byTag, ok := customMessages[path]; ok {
		if msg, ok := byTag[tag]; ok {
			return msg
		}
	}

	if template, ok := errorMessageTemplates[tag]; ok {
		param := fe.Param()
		if tag == "oneof" {
			param = strings.ReplaceAll(param, " ", ", ")
		}
		return fmt.Sprintf(template, label(path), param)
	}

	return translateMinMax(fe, path, tag, fe.Param())
}

// translateMinMax handles min/max with type-specific messages.
func translateMinMax(fe validator.FieldError, path, tag, param string) string {
	isString := fe.Kind() == reflect.String

	switch tag {
	case "min":
		if isString {
			return fmt.Sprintf("%s length must be at least %s characters long", label(path), param)
		}
		return fmt.Sprintf("%s must be greater than or equal to %s", label(path), param)
	case "max":
		if isString {
			return fmt.Sprintf("%s length must be less than or equal to %s characters long", label(path), param)
		}
		return fmt.Sprintf("%s must be less than or equal to %s", label(path), param)
	default:
		return fmt.Sprintf("%s failed %s validation", label(path), tag)
	}
}

// isoLayouts are the accepted ISO 8601 forms, most specific first.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseISODate parses an ISO 8601 date or date-time. Values without a zone
// are taken as UTC.
func ParseISODate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("not an ISO 8601 date: %q", s)
}

// TimestampLayout is the millisecond-precision UTC form used in responses.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
