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

package serializer

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
)

type testResult struct {
	VelocityMS float64 `json:"velocity_m_s"`
	FlowM3H    float64 `json:"flow_m3_h"`
	DiameterMM float64 `json:"diameter_mm"`
}

func TestRespondJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := testResult{VelocityMS: 1.2732395447351628, FlowM3H: 36, DiameterMM: 100}

	RespondJSON(w, http.StatusOK, data)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", ct)
	}

	var result testResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	// float64 survives the round trip bit for bit
	if result != data {
		t.Errorf("expected %+v, got %+v", data, result)
	}
}

func TestRespondJSON_DifferentStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{"OK", http.StatusOK},
		{"BadRequest", http.StatusBadRequest},
		{"UnprocessableEntity", http.StatusUnprocessableEntity},
		{"TooManyRequests", http.StatusTooManyRequests},
		{"InternalServerError", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			RespondJSON(w, tt.statusCode, map[string]string{"status": tt.name})

			if w.Code != tt.statusCode {
				t.Errorf("expected status %d, got %d", tt.statusCode, w.Code)
			}
		})
	}
}

func TestRespondJSON_EmptyData(t *testing.T) {
	w := httptest.NewRecorder()

	RespondJSON(w, http.StatusOK, nil)

	if body := w.Body.String(); body != "null\n" {
		t.Errorf("expected 'null\\n', got %q", body)
	}
}

func TestRespondJSON_BuffersBeforeWritingHeaders(t *testing.T) {
	w := httptest.NewRecorder()

	// Channels cannot be marshaled to JSON
	RespondJSON(w, http.StatusOK, make(chan int))

	// If buffering works correctly, we should get a 500 error
	// instead of a 200 with a broken body.
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
	if w.Body.Len() == 0 {
		t.Error("expected error message in body")
	}
}

func TestRespondJSON_UnencodableData(t *testing.T) {
	tests := []struct {
		name string
		data any
	}{
		{"positive infinity", testResult{VelocityMS: math.Inf(1), FlowM3H: 1e300, DiameterMM: 1e-10}},
		{"nan", map[string]float64{"velocity_m_s": math.NaN()}},
		{"channel", map[string]any{"ch": make(chan int)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			RespondJSON(w, http.StatusOK, tt.data)

			if w.Code != http.StatusInternalServerError {
				t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected Content-Type application/json, got %s", ct)
			}

			var resp map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("expected JSON error body, got %q: %v", w.Body.String(), err)
			}
			if resp["code"] != "INTERNAL_ERROR" {
				t.Errorf("expected code INTERNAL_ERROR, got %v", resp["code"])
			}
			if resp["message"] != "Failed to encode response" {
				t.Errorf("unexpected message %v", resp["message"])
			}
			if _, ok := resp["timestamp"]; !ok {
				t.Error("expected timestamp")
			}
			if resp["retryable"] != false {
				t.Errorf("expected retryable false, got %v", resp["retryable"])
			}
		})
	}
}
