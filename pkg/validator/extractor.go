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
	"encoding/json"
	"math"
)

// numberKind classifies a decoded value for validation.
type numberKind int

const (
	kindMissing numberKind = iota
	kindNotNumber
	kindNumber
)

// extractNumber reads a decoded JSON or YAML value as float64.
// JSON decoding yields float64 (or json.Number); YAML decoding yields int for
// integral literals, so integer kinds are accepted too. Booleans and strings
// are not numbers.
func extractNumber(v any) (float64, numberKind) {
	switch n := v.(type) {
	case nil:
		return 0, kindMissing
	case float64:
		return n, kindNumber
	case float32:
		return float64(n), kindNumber
	case int:
		return float64(n), kindNumber
	case int32:
		return float64(n), kindNumber
	case int64:
		return float64(n), kindNumber
	case uint:
		return float64(n), kindNumber
	case uint32:
		return float64(n), kindNumber
	case uint64:
		return float64(n), kindNumber
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, kindNotNumber
		}
		return f, kindNumber
	default:
		return 0, kindNotNumber
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// typeName returns the JSON type name of a decoded value.
func typeName(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "unknown"
	}
}
