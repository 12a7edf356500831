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
	"errors"
	"fmt"
	"io"
	"mime"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmptyBody is returned by DecodeBody when the request carries no content.
var ErrEmptyBody = errors.New("request body is empty")

// FormatFromContentType maps a Content-Type header value to a body format.
// YAML media types yield FormatYAML; everything else, including an empty
// header, yields FormatJSON.
func FormatFromContentType(contentType string) Format {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mt = strings.ToLower(strings.TrimSpace(contentType))
	}

	switch mt {
	case "application/x-yaml", "application/yaml", "text/yaml", "text/x-yaml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// DecodeBody reads a request body as a single JSON or YAML object.
// The format is chosen from contentType; at most limit bytes are read
// (limit <= 0 disables the cap). The body must decode to an object.
func DecodeBody(body io.Reader, contentType string, limit int64) (map[string]any, error) {
	if body == nil {
		return nil, ErrEmptyBody
	}

	if limit > 0 {
		body = io.LimitReader(body, limit+1)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}

	if limit > 0 && int64(len(data)) > limit {
		return nil, fmt.Errorf("request body exceeds %d bytes", limit)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyBody
	}

	var raw any
	switch FormatFromContentType(contentType) {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML body: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON body: %w", err)
		}
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("request body must be an object, got %T", raw)
	}

	return obj, nil
}
