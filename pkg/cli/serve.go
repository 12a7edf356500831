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

package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/englab/englab-calcs/pkg/api"
	"github.com/englab/englab-calcs/pkg/defaults"
	"github.com/englab/englab-calcs/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API server",
		Description: `Serve the calculations over HTTP until interrupted.

Configuration is read from PORT, ADDRESS, SHUTDOWN_TIMEOUT_SECONDS,
RATE_LIMIT and RATE_LIMIT_BURST. --port takes precedence over PORT.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "port",
				Value: defaults.ServerPort,
				Usage: "listen port",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var opts []server.Option
			if cmd.IsSet("port") {
				opts = append(opts, server.WithPort(cmd.Int("port")))
			}
			return api.Serve(ctx, opts...)
		},
	}
}
