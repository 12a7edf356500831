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

package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireMethod(t *testing.T) {
	t.Run("allowed", func(t *testing.T) {
		w := httptest.NewRecorder()
		ok := RequireMethod(w, httptest.NewRequest(http.MethodPost, "/flow/velocity", nil), http.MethodPost)
		assert.True(t, ok)
		assert.Empty(t, w.Header().Get("Allow"))
	})

	t.Run("rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		ok := RequireMethod(w, httptest.NewRequest(http.MethodGet, "/flow/velocity", nil), http.MethodPost)
		assert.False(t, ok)
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.Equal(t, "POST", w.Header().Get("Allow"))
	})
}

func TestDecodeBody(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		contentType string
		wantOK      bool
		wantMessage string
	}{
		{name: "json object", body: `{"flow_m3_h": 36}`, contentType: "application/json", wantOK: true},
		{name: "yaml object", body: "flow_m3_h: 36\n", contentType: "application/yaml", wantOK: true},
		{name: "empty", body: "", wantMessage: "Request body cannot be empty"},
		{name: "malformed", body: `{"flow_m3_h":`, wantMessage: "Invalid request body"},
		{name: "array", body: `[36]`, wantMessage: "Invalid request body"},
		{name: "too large", body: `{"pad": "` + strings.Repeat("x", 70<<10) + `"}`, wantMessage: "Invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/flow/velocity", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			w := httptest.NewRecorder()

			body, ok := DecodeBody(w, req)
			require.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				assert.Contains(t, body, "flow_m3_h")
				return
			}

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "INVALID_REQUEST", resp.Code)
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.NotEmpty(t, resp.Details["error"])
		})
	}
}
