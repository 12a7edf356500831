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
	"errors"
	"net/http"
	"strings"

	"github.com/englab/englab-calcs/pkg/defaults"
	apperrors "github.com/englab/englab-calcs/pkg/errors"
	"github.com/englab/englab-calcs/pkg/serializer"
)

// RequireMethod reports whether r uses one of the allowed methods.
// Otherwise it sets the Allow header, writes a 405 and returns false.
func RequireMethod(w http.ResponseWriter, r *http.Request, allowed ...string) bool {
	for _, m := range allowed {
		if r.Method == m {
			return true
		}
	}

	w.Header().Set("Allow", strings.Join(allowed, ", "))
	WriteError(w, r, http.StatusMethodNotAllowed, apperrors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{
			"method":  r.Method,
			"allowed": allowed,
		})
	return false
}

// DecodeBody reads the request body as a JSON or YAML object, chosen by
// Content-Type. On failure it writes a 400 INVALID_REQUEST and returns false.
func DecodeBody(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	defer func() {
		if r.Body != nil {
			r.Body.Close()
		}
	}()

	body, err := serializer.DecodeBody(r.Body, r.Header.Get("Content-Type"), defaults.MaxRequestBodyBytes)
	if err != nil {
		msg := "Invalid request body"
		if errors.Is(err, serializer.ErrEmptyBody) {
			msg = "Request body cannot be empty"
		}
		WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
			msg, false, map[string]any{
				"error": err.Error(),
			})
		return nil, false
	}

	return body, true
}
