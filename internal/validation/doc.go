// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

/*
Package validation checks behavioral data submissions.

ValidateSubmission takes the decoded request body (map[string]any) and runs
two passes:

 1. Coercion copies known keys into the Submission struct. Unknown keys at any
    level are dropped. Numeric strings are accepted for numeric fields
    ("5" becomes 5); any other type mismatch is recorded as a field error.
 2. Rules run through a singleton go-playground/validator instance: ranges,
    integer checks, the user id pattern, the submission type set, ISO 8601
    timestamps, and the struct-level "at least one metric group" and
    "present group is not empty" rules.

All violations are returned together, each with a dotted JSON path, a
message and the offending value:

	sub, errs := validation.ValidateSubmission(body)
	if errs != nil {
	    // 400 with errs as details
	}
	logging.Info().Str("userId", sub.UserIDValue()).Int("dataPoints", sub.DataPoints()).Msg("Behavioral data received")

Validation is pure; the package keeps no state beyond the validator's type
cache.

# Custom Rules

	nonempty    string must not be ""
	userid      ^[a-zA-Z0-9_-]+$
	resolution  ^\d+x\d+$ (e.g. 1920x1080)
	isodate     ISO 8601 date or date-time
	integer     number without a fractional part
*/
package validation
