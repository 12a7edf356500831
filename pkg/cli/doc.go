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

// Package cli implements the englab command-line interface.
//
// # Overview
//
// The englab CLI evaluates the same engineering formulas served by the
// englabd API and prints the results locally. It can also run the API
// server itself.
//
// # Commands
//
// electrical three-phase-current - Line current of a three-phase load:
//
//	englab electrical three-phase-current --power-kw 10 --voltage-v 380 [--power-factor 0.8]
//
// flow velocity - Mean velocity of a full circular pipe:
//
//	englab flow velocity --flow-m3-h 10 --diameter-mm 50
//
// flow reynolds - Reynolds number and flow regime:
//
//	englab flow reynolds --velocity-m-s 1.5 --diameter-mm 50 --kinematic-viscosity-m2-s 1e-6 [--lang pt-BR]
//
// serve - Run the HTTP API server:
//
//	englab serve [--port 8080]
//
// # Input Files
//
// Calculation commands accept --input with a JSON or YAML document holding
// the same fields as the HTTP request body. Flags that are set explicitly
// override values from the file.
//
//	englab electrical three-phase-current --input load.yaml --voltage-v 400
//
// # Global Flags
//
//	--output, -o     Output file path (default: stdout)
//	--format, -t     Output format: json, yaml, table (default: json)
//	--log-level      Log level: debug, info, warn, error (default: info)
//	--help, -h       Show command help
//	--version, -v    Show version information
//
// # Errors
//
// Invalid input is reported with one line per violated field and a
// non-zero exit status:
//
//	invalid input:
//	  - power_kw must be > 0, got -1
//	  - voltage_v is required
package cli
