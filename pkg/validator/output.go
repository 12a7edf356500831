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

// CheckResult reports a computed value that overflowed or underflowed to a
// non-finite number. The returned *apperrors.StructuredError has code
// RESULT_OUT_OF_RANGE and carries field and inputs in its context.
func CheckResult(field string, value float64, inputs map[string]float64) error {
	if isFinite(value) {
		return nil
	}

	return apperrors.NewWithContext(apperrors.ErrCodeOutOfRange,
		fmt.Sprintf("%s is not a finite number for these inputs, got %s", field, formatNumber(value)),
		map[string]any{
			"field":  field,
			"inputs": inputs,
		})
}
