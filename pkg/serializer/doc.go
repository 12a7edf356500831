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

// Package serializer provides encoding and decoding of calculation requests
// and results in multiple formats.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable representation
//   - Used for every API response and the default for request bodies
//
// YAML:
//   - Human-readable, accepted for request bodies sent with a YAML Content-Type
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - Flattened FIELD/VALUE rows for terminal output
//   - Write-only (no deserialization support)
//
// # HTTP
//
// Decode a request body (format chosen by Content-Type, size capped):
//
//	body, err := serializer.DecodeBody(r.Body, r.Header.Get("Content-Type"), defaults.MaxRequestBodyBytes)
//
// Write a response:
//
//	serializer.RespondJSON(w, http.StatusOK, result)
//
// RespondJSON buffers the encoding before writing headers so a failed encode
// never produces a partial response.
//
// # CLI Output
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, result); err != nil {
//	    return err
//	}
//
// # File Input
//
//	req, err := serializer.FromFile[map[string]any]("request.yaml")
//
// Format detection by extension: .json → JSON, .yaml/.yml → YAML, other → JSON.
package serializer
