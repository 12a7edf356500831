// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package validator

import (
	"fmt"

	apperrors "github.com/englab/englab-calcs/pkg/errors"
)

// Rule declares how one numeric field is validated.
type Rule struct {
	// Field is the request field name.
	Field string

	// Default, when set, is used for a missing or null field.
	Default *float64

	// Bounds are checked in order; every violated bound is reported.
	Bounds []Bound
}

// Field returns a required rule for name with the given bounds.
func Field(name string, bounds ...Bound) Rule {
	return Rule{Field: name, Bounds: bounds}
}

// Positive returns a required rule demanding a value strictly greater than zero.
func Positive(name string) Rule {
	return Field(name, GreaterThan(0))
}

// WithDefault returns a copy of the rule that substitutes v for a missing field.
func (r Rule) WithDefault(v float64) Rule {
	r.Default = &v
	return r
}

// Values holds validated field values keyed by field name.
type Values map[string]float64

// Get returns the validated value of field, or zero if the field had no rule.
func (v Values) Get(field string) float64 {
	return v[field]
}

// Validate checks input against every rule and collects every violation.
// On success it returns the extracted values; on failure it returns a
// *apperrors.StructuredError with code VALIDATION_FAILED whose cause is a
// *ValidationError and whose context carries the field errors under "errors".
// Fields without a rule are ignored.
func Validate(input map[string]any, rules ...Rule) (Values, error) {
	verr := &ValidationError{}
	values := make(Values, len(rules))

	for _, rule := range rules {
		raw, present := input[rule.Field]
		num, kind := extractNumber(raw)

		switch {
		case kind == kindMissing && rule.Default != nil:
			values[rule.Field] = *rule.Default
			continue
		case kind == kindMissing:
			msg := fmt.Sprintf("%s is required", rule.Field)
			if present {
				msg = fmt.Sprintf("%s must not be null", rule.Field)
			}
			verr.add(FieldError{
				Field:      rule.Field,
				Constraint: ConstraintRequired,
				Message:    msg,
			})
			continue
		case kind == kindNotNumber:
			verr.add(FieldError{
				Field:      rule.Field,
				Constraint: ConstraintType,
				Message:    fmt.Sprintf("%s must be a number, got %s", rule.Field, typeName(raw)),
				Received:   raw,
			})
			continue
		}

		if !isFinite(num) {
			verr.add(FieldError{
				Field:      rule.Field,
				Constraint: ConstraintFinite,
				Message:    fmt.Sprintf("%s must be a finite number, got %s", rule.Field, formatNumber(num)),
				Received:   formatNumber(num),
			})
			continue
		}

		valid := true
		for _, b := range rule.Bounds {
			if b.Satisfied(num) {
				continue
			}
			valid = false
			verr.add(FieldError{
				Field:      rule.Field,
				Constraint: b.Constraint(),
				Message:    fmt.Sprintf("%s must be %s, got %s", rule.Field, b, formatNumber(num)),
				Received:   num,
			})
		}
		if valid {
			values[rule.Field] = num
		}
	}

	if len(verr.Errors) > 0 {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeValidation,
			"request validation failed", verr, map[string]any{
				"errors": verr.Errors,
			})
	}

	return values, nil
}

// ValidateValues is Validate for callers that already hold typed values,
// such as the CLI or programmatic constructors.
func ValidateValues(input map[string]float64, rules ...Rule) (Values, error) {
	m := make(map[string]any, len(input))
	for k, v := range input {
		m[k] = v
	}
	return Validate(m, rules...)
}
