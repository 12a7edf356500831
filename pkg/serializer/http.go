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
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	apperrors "github.com/englab/englab-calcs/pkg/errors"
)

// encodeFailure is the error body written when a response cannot be encoded.
// It carries the same code, message, timestamp and retryable fields as the
// server's error responses.
type encodeFailure struct {
	Code      apperrors.ErrorCode `json:"code"`
	Message   string              `json:"message"`
	Timestamp time.Time           `json:"timestamp"`
	Retryable bool                `json:"retryable"`
}

// RespondJSON writes a JSON response with the given status code and data.
// It buffers the JSON encoding before writing headers to prevent partial responses.
// When data cannot be encoded (e.g. it holds NaN or ±Inf) a 500 INTERNAL_ERROR
// JSON body is written instead.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")

	// Serialize first to detect errors before writing headers
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(data); err != nil {
		slog.Error("json encoding failed", "error", err)
		buf.Reset()
		// encodeFailure holds only encodable fields
		_ = json.NewEncoder(buf).Encode(encodeFailure{
			Code:      apperrors.ErrCodeInternal,
			Message:   "Failed to encode response",
			Timestamp: time.Now().UTC(),
			Retryable: false,
		})
		statusCode = http.StatusInternalServerError
	}

	w.WriteHeader(statusCode)
	if _, err := w.Write(buf.Bytes()); err != nil {
		// Connection is broken, log but can't recover
		slog.Warn("response write failed", "error", err)
	}
}
