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

package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/englab/englab-calcs/pkg/electrical"
	"github.com/englab/englab-calcs/pkg/flow"
	"github.com/englab/englab-calcs/pkg/logging"
	"github.com/englab/englab-calcs/pkg/server"
)

const (
	name           = "englabd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/englab/englab-calcs/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Calculation route paths.
const (
	PathThreePhaseCurrent = "/electrical/three_phase_current"
	PathVelocity          = "/flow/velocity"
	PathReynolds          = "/flow/reynolds"
)

// Routes maps every calculation path to its handler.
func Routes(ec *electrical.Calculator, fc *flow.Calculator) map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		PathThreePhaseCurrent: ec.HandleThreePhaseCurrent,
		PathVelocity:          fc.HandleVelocity,
		PathReynolds:          fc.HandleReynolds,
	}
}

// NewServer returns a server with every calculation route registered.
// opts are applied before the routes, so WithConfig cannot drop them.
func NewServer(opts ...server.Option) *server.Server {
	routes := Routes(electrical.NewCalculator(), flow.NewCalculator())

	all := make([]server.Option, 0, len(opts)+3)
	all = append(all, opts...)
	all = append(all,
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(routes),
	)

	return server.New(all...)
}

// Serve starts the API server and blocks until ctx is canceled or the
// process is signaled. It configures logging from LOG_LEVEL first.
func Serve(ctx context.Context, opts ...server.Option) error {
	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	s := NewServer(opts...)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
