// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

package validation

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// coercer copies a decoded JSON object into a schema struct. Keys without a
// matching json tag are dropped. Values of the wrong JSON type are recorded
// as field errors and left unset, so the rule pass does not report them a
// second time.
type coercer struct {
	errs []FieldError
	bad  map[string]bool
}

func newCoercer() *coercer {
	return &coercer{bad: make(map[string]bool)}
}

// object fills dst (a pointer to struct) from raw.
func (c *coercer) object(prefix string, raw map[string]any, dst reflect.Value) {
	elem := dst.Elem()
	typ := elem.Type()

	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		name := strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}
		value, ok := raw[name]
		if !ok {
			continue
		}
		c.field(join(prefix, name), value, elem.Field(i), sf.Tag.Get("validate"))
	}
}

// field assigns one value. Schema fields are all pointers.
func (c *coercer) field(path string, value any, dst reflect.Value, rules string) {
	target := dst.Type().Elem()

	switch target.Kind() {
	case reflect.String:
		s, ok := value.(string)
		if !ok {
			// date fields report the format rule, whatever the input type
			if hasRule(rules, "isodate") {
				c.failRule(path, value, "isodate")
				return
			}
			c.fail(path, value, "must be a string")
			return
		}
		dst.Set(reflect.ValueOf(&s))

	case reflect.Float64:
		f, ok := toNumber(value)
		if !ok {
			c.fail(path, value, "must be a number")
			return
		}
		dst.Set(reflect.ValueOf(&f))

	case reflect.Struct:
		m, ok := value.(map[string]any)
		if !ok {
			c.fail(path, value, "must be of type object")
			return
		}
		ptr := reflect.New(target)
		c.object(path, m, ptr)
		dst.Set(ptr)

	default:
		panic(fmt.Sprintf("validation: unsupported schema field kind %s at %s", target.Kind(), path))
	}
}

func (c *coercer) fail(path string, value any, msg string) {
	c.bad[path] = true
	c.errs = append(c.errs, FieldError{
		Field:   path,
		Message: label(path) + " " + msg,
		Value:   value,
		Tag:     "type",
	})
}

func (c *coercer) failRule(path string, value any, rule string) {
	c.bad[path] = true
	c.errs = append(c.errs, FieldError{
		Field:   path,
		Message: fmt.Sprintf(errorMessageTemplates[rule], label(path)),
		Value:   value,
		Tag:     rule,
	})
}

func hasRule(rules, rule string) bool {
	for _, r := range strings.Split(rules, ",") {
		if r == rule {
			return true
		}
	}
	return false
}

// toNumber accepts JSON numbers and numeric strings.
func toNumber(value any) (float64, bool) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

func join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

// label renders a field path the way messages quote it.
func label(path string) string {
	return `"` + path + `"`
}
