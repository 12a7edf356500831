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
	"strconv"
)

// Operator represents a comparison operator in a bound.
type Operator string

const (
	// OperatorGT represents ">" (strictly greater than).
	OperatorGT Operator = ">"

	// OperatorGTE represents ">=" (greater than or equal).
	OperatorGTE Operator = ">="

	// OperatorLT represents "<" (strictly less than).
	OperatorLT Operator = "<"

	// OperatorLTE represents "<=" (less than or equal).
	OperatorLTE Operator = "<="
)

// Constraint names reported in FieldError.Constraint.
const (
	ConstraintRequired = "required"
	ConstraintType     = "type"
	ConstraintFinite   = "finite"
	ConstraintGT       = "gt"
	ConstraintGTE      = "gte"
	ConstraintLT       = "lt"
	ConstraintLTE      = "lte"
)

// Bound is a single numeric comparison a value must satisfy.
type Bound struct {
	Operator Operator
	Value    float64
}

// GreaterThan returns a bound requiring values strictly greater than v.
func GreaterThan(v float64) Bound { return Bound{Operator: OperatorGT, Value: v} }

// AtLeast returns a bound requiring values greater than or equal to v.
func AtLeast(v float64) Bound { return Bound{Operator: OperatorGTE, Value: v} }

// LessThan returns a bound requiring values strictly less than v.
func LessThan(v float64) Bound { return Bound{Operator: OperatorLT, Value: v} }

// AtMost returns a bound requiring values less than or equal to v.
func AtMost(v float64) Bound { return Bound{Operator: OperatorLTE, Value: v} }

// Satisfied reports whether actual satisfies the bound.
// NaN never satisfies any bound.
func (b Bound) Satisfied(actual float64) bool {
	switch b.Operator {
	case OperatorGT:
		return actual > b.Value
	case OperatorGTE:
		return actual >= b.Value
	case OperatorLT:
		return actual < b.Value
	case OperatorLTE:
		return actual <= b.Value
	default:
		return false
	}
}

// Constraint returns the machine-readable constraint name of the bound.
func (b Bound) Constraint() string {
	switch b.Operator {
	case OperatorGT:
		return ConstraintGT
	case OperatorGTE:
		return ConstraintGTE
	case OperatorLT:
		return ConstraintLT
	case OperatorLTE:
		return ConstraintLTE
	default:
		return string(b.Operator)
	}
}

// String renders the bound as it appears in messages, e.g. "> 0".
func (b Bound) String() string {
	return fmt.Sprintf("%s %s", b.Operator, formatNumber(b.Value))
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
