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
	"strings"
)

// FieldError describes one violated constraint on one request field.
type FieldError struct {
	// Field is the request field name (e.g., "power_kw").
	Field string `json:"field" yaml:"field"`

	// Constraint is the machine-readable constraint name (e.g., "gt", "required").
	Constraint string `json:"constraint" yaml:"constraint"`

	// Message is the human-readable description, e.g. "power_kw must be > 0, got -3".
	Message string `json:"message" yaml:"message"`

	// Received is the submitted value, if any.
	Received any `json:"received,omitempty" yaml:"received,omitempty"`
}

// Error implements the error interface.
func (e FieldError) Error() string {
	return e.Message
}

// ValidationError lists every field constraint a request violated.
type ValidationError struct {
	Errors []FieldError `json:"errors" yaml:"errors"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Message)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}

// Fields returns the names of the offending fields in report order.
// A field violating several constraints appears once.
func (e *ValidationError) Fields() []string {
	seen := make(map[string]bool, len(e.Errors))
	fields := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		if seen[fe.Field] {
			continue
		}
		seen[fe.Field] = true
		fields = append(fields, fe.Field)
	}
	return fields
}

func (e *ValidationError) add(fe FieldError) {
	e.Errors = append(e.Errors, fe)
}
