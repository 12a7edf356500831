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
	"golang.org/x/text/language"

	"github.com/englab/englab-calcs/pkg/flow"
)

func flowCmd() *cli.Command {
	return &cli.Command{
		Name:  "flow",
		Usage: "Pipe flow calculations",
		Commands: []*cli.Command{
			velocityCmd(),
			reynoldsCmd(),
		},
	}
}

func velocityCmd() *cli.Command {
	return &cli.Command{
		Name:  "velocity",
		Usage: "Mean velocity of a full circular pipe",
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:  "flow-m3-h",
				Usage: "volumetric flow rate in m³/h (> 0)",
			},
			&cli.FloatFlag{
				Name:  "diameter-mm",
				Usage: "internal pipe diameter in mm (> 0)",
			},
			inputFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			body, err := requestBody(cmd, map[string]string{
				"flow-m3-h":   flow.FieldFlowM3H,
				"diameter-mm": flow.FieldDiameterMM,
			})
			if err != nil {
				return err
			}

			req, err := flow.ParseVelocityRequest(body)
			if err != nil {
				return validationFailure(err)
			}

			res := flow.Velocity(req)
			if err := res.Validate(); err != nil {
				return err
			}

			return writeResult(ctx, cmd, res)
		},
	}
}

func reynoldsCmd() *cli.Command {
	return &cli.Command{
		Name:  "reynolds",
		Usage: "Reynolds number and flow regime",
		Description: `Re = v·d/ν with d in meters. Regimes:
  Re < 2300          laminar
  2300 <= Re < 4000  transitional
  Re >= 4000         turbulent`,
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:  "velocity-m-s",
				Usage: "mean flow velocity in m/s (> 0)",
			},
			&cli.FloatFlag{
				Name:  "diameter-mm",
				Usage: "internal pipe diameter in mm (> 0)",
			},
			&cli.FloatFlag{
				Name:  "kinematic-viscosity-m2-s",
				Usage: "kinematic viscosity in m²/s (> 0), water at 20 °C is about 1e-6",
			},
			&cli.StringFlag{
				Name:  "lang",
				Usage:   "regime label language (e.g. en, pt-BR)",
			},
			inputFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			body, err := requestBody(cmd, map[string]string{
				"velocity-m-s":             flow.FieldVelocityMS,
				"diameter-mm":              flow.FieldDiameterMM,
				"kinematic-viscosity-m2-s": flow.FieldKinematicViscosityM2S,
			})
			if err != nil {
				return err
			}

			req, err := flow.ParseReynoldsRequest(body)
			if err != nil {
				return validationFailure(err)
			}

			res := flow.Reynolds(req)
			if err := res.Validate(); err != nil {
				return err
			}

			lang := flow.ParseAcceptLanguage(cmd.String("lang"), language.English)
			return writeResult(ctx, cmd, res.Localize(lang))
		},
	}
}
