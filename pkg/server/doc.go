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

// Package server provides the HTTP server that hosts the EngLab calculation API.
//
// The server is stateless. Every application route is wrapped by the same
// middleware chain:
//
//   - Prometheus RED metrics (englab_http_*)
//   - API version negotiation (Accept: application/vnd.englab.calcs.v1+json)
//   - Request ID tracking (X-Request-Id, UUID)
//   - Panic recovery
//   - Token bucket rate limiting (golang.org/x/time/rate)
//   - Debug request logging
//
// # Usage
//
//	s := server.New(
//	    server.WithName("englabd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/flow/velocity": flow.NewCalculator().HandleVelocity,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # System Endpoints
//
// System endpoints bypass rate limiting:
//
//	GET /         service message, name, version and routes
//	GET /health   liveness probe, always 200
//	GET /ready    readiness probe, 503 while starting or shutting down
//	GET /metrics  Prometheus exposition
//
// # Configuration
//
// NewConfig reads PORT, ADDRESS, SHUTDOWN_TIMEOUT_SECONDS, RATE_LIMIT and
// RATE_LIMIT_BURST from the environment. Invalid values keep the defaults
// from pkg/defaults.
//
// # Error Handling
//
// All errors return a consistent JSON structure:
//
//	{
//	  "code": "VALIDATION_FAILED",
//	  "message": "request validation failed",
//	  "details": {"errors": [{"field": "power_kw", "constraint": "gt", ...}]},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2026-01-02T12:00:00Z",
//	  "retryable": false
//	}
//
// WriteErrorFromErr maps pkg/errors codes to HTTP status:
//
//	INVALID_REQUEST      400
//	NOT_FOUND            404
//	METHOD_NOT_ALLOWED   405
//	VALIDATION_FAILED    422
//	RESULT_OUT_OF_RANGE  422
//	RATE_LIMIT_EXCEEDED  429
//	INTERNAL_ERROR       500
//	SERVICE_UNAVAILABLE  503
//	TIMEOUT              504
package server
