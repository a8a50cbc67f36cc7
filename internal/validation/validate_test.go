// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

// body decodes a JSON literal the way the request decoder does.
func body(t *testing.T, s string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		t.Fatalf("bad test body %s: %v", s, err)
	}
	return m
}

func findField(errs Errors, field string) (FieldError, bool) {
	for _, fe := range errs {
		if fe.Field == field {
			return fe, true
		}
	}
	return FieldError{}, false
}

const validBody = `{
	"userId": "abc123",
	"type": "creativity",
	"data": {"timestamp": "2024-01-01T00:00:00Z", "creativity": {"original_ideas": 5}}
}`

func TestValidateSubmission_Valid(t *testing.T) {
	t.Parallel()

	sub, errs := ValidateSubmission(body(t, validBody))
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if sub.UserIDValue() != "abc123" {
		t.Errorf("userId = %q", sub.UserIDValue())
	}
	if sub.TypeValue() != TypeCreativity {
		t.Errorf("type = %q", sub.TypeValue())
	}
	if sub.DataPoints() != 2 {
		t.Errorf("dataPoints = %d, want 2", sub.DataPoints())
	}
	if got := *sub.Data.Creativity.OriginalIdeas; got != 5 {
		t.Errorf("original_ideas = %v", got)
	}
	if got := sub.TimestampValue(); got != "2024-01-01T00:00:00.000Z" {
		t.Errorf("timestamp = %q", got)
	}
}

func TestValidateSubmission_UserID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		userID  string
		message string
	}{
		{"missing", ``, `"userId" is required`},
		{"empty", `"userId": "",`, `"userId" is not allowed to be empty`},
		{"too short", `"userId": "ab",`, "User ID must be at least 3 characters long"},
		{"too long", `"userId": "` + strings.Repeat("a", 51) + `",`, "User ID must not exceed 50 characters"},
		{"bad charset", `"userId": "abc def!",`, "User ID must contain only letters, numbers, hyphens, and underscores"},
		{"unicode", `"userId": "usér_1",`, "User ID must contain only letters, numbers, hyphens, and underscores"},
		{"number", `"userId": 12345,`, `"userId" must be a string`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			raw := body(t, `{`+tt.userID+`"type": "general", "data": {"timestamp": "2024-01-01", "general": {"page_views": 3}}}`)

			sub, errs := ValidateSubmission(raw)
			if sub != nil {
				t.Fatal("invalid userId must never pass")
			}
			fe, ok := findField(errs, "userId")
			if !ok {
				t.Fatalf("no userId error in %v", errs)
			}
			if fe.Message != tt.message {
				t.Errorf("message = %q, want %q", fe.Message, tt.message)
			}
		})
	}
}

func TestValidateSubmission_UserIDBoundaries(t *testing.T) {
	t.Parallel()

	for _, id := range []string{"abc", strings.Repeat("z", 50), "A-b_9"} {
		raw := body(t, `{"userId": "`+id+`", "type": "general", "data": {"timestamp": "2024-01-01", "general": {"page_views": 3}}}`)
		if _, errs := ValidateSubmission(raw); errs != nil {
			t.Errorf("userId %q rejected: %v", id, errs)
		}
	}
}

func TestValidateSubmission_InvalidType(t *testing.T) {
	t.Parallel()

	raw := body(t, strings.Replace(validBody, `"creativity",`, `"invalid_type",`, 1))
	_, errs := ValidateSubmission(raw)

	fe, ok := findField(errs, "type")
	if !ok {
		t.Fatalf("no type error in %v", errs)
	}
	for _, allowed := range SubmissionTypes {
		if !strings.Contains(fe.Message, allowed) {
			t.Errorf("message %q does not name %q", fe.Message, allowed)
		}
	}
	if fe.Value != "invalid_type" {
		t.Errorf("value = %v", fe.Value)
	}
}

func TestValidateSubmission_NoMetricGroup(t *testing.T) {
	t.Parallel()

	raw := body(t, `{"userId": "abc123", "type": "general", "data": {"timestamp": "2024-01-01T00:00:00Z"}}`)
	_, errs := ValidateSubmission(raw)

	fe, ok := findField(errs, "data")
	if !ok {
		t.Fatalf("no data error in %v", errs)
	}
	if fe.Tag != "metricgroup" {
		t.Errorf("tag = %q", fe.Tag)
	}
}

func TestValidateSubmission_EmptyGroup(t *testing.T) {
	t.Parallel()

	raw := body(t, `{"userId": "abc123", "type": "creativity", "data": {"timestamp": "2024-01-01", "creativity": {"unknown": 1}}}`)
	_, errs := ValidateSubmission(raw)

	fe, ok := findField(errs, "data.creativity")
	if !ok {
		t.Fatalf("no data.creativity error in %v", errs)
	}
	if fe.Message != `"data.creativity" must have at least 1 key` {
		t.Errorf("message = %q", fe.Message)
	}
	if _, ok := findField(errs, "data"); ok {
		t.Error("a present group satisfies the metric group rule")
	}
}

func TestValidateSubmission_StripsUnknownFields(t *testing.T) {
	t.Parallel()

	raw := body(t, `{
		"userId": "abc123",
		"type": "attentiveness",
		"sessionToken": "secret",
		"data": {
			"timestamp": "2024-03-05T10:20:30.5+02:00",
			"attentiveness": {"tab_switches": 4, "mouse_jiggle": 99},
			"debug": true
		},
		"metadata": {"browser": "Firefox", "plugins": ["x"]}
	}`)

	sub, errs := ValidateSubmission(raw)
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}

	out, err := json.Marshal(sub)
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"sessionToken", "mouse_jiggle", "debug", "plugins"} {
		if strings.Contains(string(out), key) {
			t.Errorf("normalized output still contains %q: %s", key, out)
		}
	}
	if sub.TimestampValue() != "2024-03-05T08:20:30.500Z" {
		t.Errorf("timestamp = %q", sub.TimestampValue())
	}

	// Stripping is idempotent.
	again, errs := ValidateSubmission(body(t, string(out)))
	if errs != nil {
		t.Fatalf("normalized output rejected: %v", errs)
	}
	out2, _ := json.Marshal(again)
	if string(out) != string(out2) {
		t.Errorf("second pass changed output:\n%s\n%s", out, out2)
	}
}

func TestValidateSubmission_NumericStrings(t *testing.T) {
	t.Parallel()

	raw := body(t, `{"userId": "abc123", "type": "general", "data": {"timestamp": "2024-01-01", "general": {"page_views": "12", "completion_rate": " 0.5 "}}}`)
	sub, errs := ValidateSubmission(raw)
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if *sub.Data.General.PageViews != 12 || *sub.Data.General.CompletionRate != 0.5 {
		t.Errorf("numeric strings not converted: %+v", sub.Data.General)
	}
}

func TestValidateSubmission_FieldRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		field   string
		message string
	}{
		{"max", `"creativity": {"original_ideas": 101}`, "data.creativity.original_ideas", `"data.creativity.original_ideas" must be less than or equal to 100`},
		{"min", `"attentiveness": {"task_completion_rate": -0.1}`, "data.attentiveness.task_completion_rate", `"data.attentiveness.task_completion_rate" must be greater than or equal to 0`},
		{"integer", `"scientific_attitude": {"hypothesis_count": 2.5}`, "data.scientific_attitude.hypothesis_count", `"data.scientific_attitude.hypothesis_count" must be an integer`},
		{"rate above one", `"general": {"engagement_score": 1.01}`, "data.general.engagement_score", `"data.general.engagement_score" must be less than or equal to 1`},
		{"session cap", `"general": {"session_duration": 86400001}`, "data.general.session_duration", `"data.general.session_duration" must be less than or equal to 86400000`},
		{"not a number", `"general": {"interactions": "lots"}`, "data.general.interactions", `"data.general.interactions" must be a number`},
		{"boolean", `"general": {"interactions": true}`, "data.general.interactions", `"data.general.interactions" must be a number`},
		{"null", `"general": {"interactions": null}`, "data.general.interactions", `"data.general.interactions" must be a number`},
		{"group not object", `"general": [1, 2]`, "data.general", `"data.general" must be of type object`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			raw := body(t, `{"userId": "abc123", "type": "general", "data": {"timestamp": "2024-01-01", `+tt.data+`}}`)

			_, errs := ValidateSubmission(raw)
			fe, ok := findField(errs, tt.field)
			if !ok {
				t.Fatalf("no %s error in %v", tt.field, errs)
			}
			if fe.Message != tt.message {
				t.Errorf("message = %q, want %q", fe.Message, tt.message)
			}
			if len(errs) != 1 {
				t.Errorf("expected exactly one error, got %v", errs.Fields())
			}
		})
	}
}

func TestValidateSubmission_ZeroIsAValue(t *testing.T) {
	t.Parallel()

	raw := body(t, `{"userId": "abc123", "type": "general", "data": {"timestamp": "2024-01-01", "general": {"page_views": 0}}}`)
	sub, errs := ValidateSubmission(raw)
	if errs != nil {
		t.Fatalf("zero rejected: %v", errs)
	}
	if sub.Data.General.PageViews == nil || *sub.Data.General.PageViews != 0 {
		t.Error("zero should be kept")
	}
}

func TestValidateSubmission_Timestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ts    string
		field string
		msg   string
	}{
		{"missing", ``, "data.timestamp", `"data.timestamp" is required`},
		{"garbage", `"timestamp": "yesterday",`, "data.timestamp", `"data.timestamp" must be in ISO 8601 date format`},
		{"bad month", `"timestamp": "2024-13-01",`, "data.timestamp", `"data.timestamp" must be in ISO 8601 date format`},
		{"number", `"timestamp": 1704067200000,`, "data.timestamp", `"data.timestamp" must be in ISO 8601 date format`},
		{"zero", `"timestamp": 0,`, "data.timestamp", `"data.timestamp" must be in ISO 8601 date format`},
		{"object", `"timestamp": {},`, "data.timestamp", `"data.timestamp" must be in ISO 8601 date format`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			raw := body(t, `{"userId": "abc123", "type": "general", "data": {`+tt.ts+`"general": {"page_views": 1}}}`)
			_, errs := ValidateSubmission(raw)
			fe, ok := findField(errs, tt.field)
			if !ok {
				t.Fatalf("no %s error in %v", tt.field, errs)
			}
			if fe.Message != tt.msg {
				t.Errorf("message = %q, want %q", fe.Message, tt.msg)
			}
		})
	}
}

func TestValidateSubmission_Metadata(t *testing.T) {
	t.Parallel()

	raw := body(t, `{
		"userId": "abc123", "type": "general",
		"data": {"timestamp": "2024-01-01", "general": {"page_views": 1}},
		"metadata": {"browser": 5, "screen_resolution": "big", "language": "en-US-x-very-long", "timezone": ""}
	}`)

	_, errs := ValidateSubmission(raw)
	want := map[string]string{
		"metadata.browser":           `"metadata.browser" must be a string`,
		"metadata.screen_resolution": `"metadata.screen_resolution" fails to match the required pattern: /^\d+x\d+$/`,
		"metadata.language":          `"metadata.language" length must be less than or equal to 10 characters long`,
		"metadata.timezone":          `"metadata.timezone" is not allowed to be empty`,
	}
	for field, msg := range want {
		fe, ok := findField(errs, field)
		if !ok {
			t.Errorf("no %s error in %v", field, errs.Fields())
			continue
		}
		if fe.Message != msg {
			t.Errorf("%s: message = %q, want %q", field, fe.Message, msg)
		}
	}

	ok := body(t, `{"userId": "abc123", "type": "general", "data": {"timestamp": "2024-01-01", "general": {"page_views": 1}}, "metadata": {"screen_resolution": "1920x1080"}}`)
	if _, errs := ValidateSubmission(ok); errs != nil {
		t.Errorf("valid metadata rejected: %v", errs)
	}
}

func TestValidateSubmission_CollectsAllErrors(t *testing.T) {
	t.Parallel()

	_, errs := ValidateSubmission(nil)
	got := strings.Join(errs.Fields(), ",")
	if got != "userId,type,data" {
		t.Errorf("fields = %s, want userId,type,data", got)
	}
	for _, fe := range errs {
		if fe.Value != nil {
			t.Errorf("%s: missing field should have no value, got %v", fe.Field, fe.Value)
		}
	}

	raw := body(t, `{"userId": "x", "type": "nope", "data": {"timestamp": "soon", "creativity": {"original_ideas": -1, "creative_persistence": 2}}}`)
	_, errs = ValidateSubmission(raw)
	if len(errs) != 5 {
		t.Errorf("expected 5 errors, got %d: %v", len(errs), errs.Fields())
	}
}

func TestValidateSubmission_DataNotObject(t *testing.T) {
	t.Parallel()

	raw := body(t, `{"userId": "abc123", "type": "general", "data": "nope"}`)
	_, errs := ValidateSubmission(raw)
	if len(errs) != 1 || errs[0].Field != "data" || errs[0].Message != `"data" must be of type object` {
		t.Errorf("errors = %v", errs)
	}
}

func TestParseISODate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"2024-01-01", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"2024-01-01T00:00:00Z", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"2024-01-01T12:30:00.123Z", time.Date(2024, 1, 1, 12, 30, 0, 123e6, time.UTC), true},
		{"2024-01-01T12:30:00+01:00", time.Date(2024, 1, 1, 11, 30, 0, 0, time.UTC), true},
		{"2024-01-01T12:30:00", time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC), true},
		{"2024-01-01T12:30", time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC), true},
		{"01/02/2024", time.Time{}, false},
		{"", time.Time{}, false},
	}

	for _, tt := range tests {
		got, err := ParseISODate(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseISODate(%q) err = %v, want ok=%v", tt.in, err, tt.ok)
			continue
		}
		if tt.ok && !got.Equal(tt.want) {
			t.Errorf("ParseISODate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()
	if GetValidator() != GetValidator() {
		t.Error("GetValidator should return the same instance")
	}
}
