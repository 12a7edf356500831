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

package electrical

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleThreePhaseCurrent(t *testing.T) {
	c := NewCalculator()

	tests := []struct {
		name        string
		method      string
		body        string
		contentType string
		wantStatus  int
		wantCode    string
		wantFields  []string
		wantCurrent float64
		wantPF      float64
	}{
		{
			name:        "valid request",
			method:      http.MethodPost,
			body:        `{"power_kw": 10, "voltage_v": 380, "power_factor": 0.8}`,
			wantStatus:  http.StatusOK,
			wantCurrent: 18.9917,
			wantPF:      0.8,
		},
		{
			name:        "default power factor",
			method:      http.MethodPost,
			body:        `{"power_kw": 10, "voltage_v": 380}`,
			wantStatus:  http.StatusOK,
			wantCurrent: 18.9917,
			wantPF:      0.8,
		},
		{
			name:        "yaml body",
			method:      http.MethodPost,
			body:        "power_kw: 10\nvoltage_v: 380\npower_factor: 1\n",
			contentType: "application/yaml",
			wantStatus:  http.StatusOK,
			wantCurrent: 15.1934,
			wantPF:      1,
		},
		{
			name:       "negative power",
			method:     http.MethodPost,
			body:       `{"power_kw": -1, "voltage_v": 380}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "VALIDATION_FAILED",
			wantFields: []string{"power_kw"},
		},
		{
			name:       "every field invalid",
			method:     http.MethodPost,
			body:       `{"power_kw": 0, "voltage_v": "380", "power_factor": 0}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "VALIDATION_FAILED",
			wantFields: []string{"power_kw", "voltage_v", "power_factor"},
		},
		{
			name:        "yaml infinity",
			method:      http.MethodPost,
			body:        "power_kw: .inf\nvoltage_v: 380\n",
			contentType: "application/x-yaml",
			wantStatus:  http.StatusUnprocessableEntity,
			wantCode:    "VALIDATION_FAILED",
			wantFields:  []string{"power_kw"},
		},
		{
			name:       "malformed body",
			method:     http.MethodPost,
			body:       `{"power_kw": `,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_REQUEST",
		},
		{
			name:       "empty body",
			method:     http.MethodPost,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_REQUEST",
		},
		{
			name:       "wrong method",
			method:     http.MethodGet,
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "METHOD_NOT_ALLOWED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/electrical/three_phase_current", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			w := httptest.NewRecorder()

			c.HandleThreePhaseCurrent(w, req)

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

			if tt.wantStatus == http.StatusOK {
				assert.InDelta(t, tt.wantCurrent, resp["current_a"], 1e-4)
				assert.Equal(t, 10.0, resp["power_kw"])
				assert.Equal(t, 380.0, resp["voltage_v"])
				assert.Equal(t, tt.wantPF, resp["power_factor"])
				return
			}

			assert.NotContains(t, resp, "current_a")
			assert.Equal(t, tt.wantCode, resp["code"])

			if tt.wantFields == nil {
				return
			}

			details, ok := resp["details"].(map[string]any)
			require.True(t, ok, "expected details object")
			errs, ok := details["errors"].([]any)
			require.True(t, ok, "expected details.errors list")

			var fields []string
			for _, e := range errs {
				fields = append(fields, e.(map[string]any)["field"].(string))
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}

func TestHandleThreePhaseCurrent_NonFiniteResult(t *testing.T) {
	bodies := []string{
		`{"power_kw": 1e300, "voltage_v": 1e-10}`,
		`{"power_kw": 1e306, "voltage_v": 1.5e308, "power_factor": 1}`,
	}

	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/electrical/three_phase_current", strings.NewReader(body))
			w := httptest.NewRecorder()

			NewCalculator().HandleThreePhaseCurrent(w, req)

			require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "RESULT_OUT_OF_RANGE", resp["code"])
			assert.Equal(t, false, resp["retryable"])
			assert.NotContains(t, resp, "current_a")

			details, ok := resp["details"].(map[string]any)
			require.True(t, ok, "expected details object")
			assert.Equal(t, FieldCurrentA, details["field"])
			assert.Contains(t, details, "inputs")
		})
	}
}

func TestHandleThreePhaseCurrent_EchoesExactInputs(t *testing.T) {
	body := `{"power_kw": 7.123456789012345, "voltage_v": 415.00000000000006, "power_factor": 0.8500000000000001}`
	req := httptest.NewRequest(http.MethodPost, "/electrical/three_phase_current", strings.NewReader(body))
	w := httptest.NewRecorder()

	NewCalculator().HandleThreePhaseCurrent(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var res ThreePhaseCurrentResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 7.123456789012345, res.PowerKW)
	assert.Equal(t, 415.00000000000006, res.VoltageV)
	assert.Equal(t, 0.8500000000000001, res.PowerFactor)
}
