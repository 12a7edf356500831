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

// Package api wires the EngLab calculators into the HTTP server.
//
// Usage:
//
//	if err := api.Serve(context.Background()); err != nil {
//	    log.Fatalf("server error: %v", err)
//	}
//
// # Endpoints
//
// Calculation endpoints (rate limited, JSON or YAML request bodies):
//   - POST /electrical/three_phase_current  power_kw, voltage_v, power_factor (default 0.8)
//   - POST /flow/velocity                   flow_m3_h, diameter_mm
//   - POST /flow/reynolds                   velocity_m_s, diameter_mm, kinematic_viscosity_m2_s
//
// System endpoints (no rate limiting):
//   - GET /        service message and route list
//   - GET /health  liveness probe
//   - GET /ready   readiness probe
//   - GET /metrics Prometheus metrics
//
// Example:
//
//	curl -X POST http://localhost:8080/flow/reynolds \
//	  -H "Content-Type: application/json" \
//	  -H "Accept-Language: pt-BR" \
//	  -d '{"velocity_m_s": 1.273, "diameter_mm": 100, "kinematic_viscosity_m2_s": 1e-6}'
//
// # Configuration
//
// Environment variables: PORT, ADDRESS, LOG_LEVEL, SHUTDOWN_TIMEOUT_SECONDS,
// RATE_LIMIT and RATE_LIMIT_BURST.
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/englab/englab-calcs/pkg/api.version=1.0.0'"
package api
