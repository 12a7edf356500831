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

	"github.com/englab/englab-calcs/pkg/defaults"
	"github.com/englab/englab-calcs/pkg/electrical"
)

func electricalCmd() *cli.Command {
	return &cli.Command{
		Name:  "electrical",
		Usage: "Electrical calculations",
		Commands: []*cli.Command{
			threePhaseCurrentCmd(),
		},
	}
}

func threePhaseCurrentCmd() *cli.Command {
	return &cli.Command{
		Name:  "three-phase-current",
		Usage: "Line current of a three-phase load: I = P·1000 / (√3·V·pf)",
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:  "power-kw",
				Usage: "active power in kW (> 0)",
			},
			&cli.FloatFlag{
				Name:  "voltage-v",
				Usage: "line-to-line voltage in V (> 0)",
			},
			&cli.FloatFlag{
				Name:  "power-factor",
				Value: defaults.PowerFactor,
				Usage: "power factor (0 < pf <= 1)",
			},
			inputFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			body, err := requestBody(cmd, map[string]string{
				"power-kw":     electrical.FieldPowerKW,
				"voltage-v":    electrical.FieldVoltageV,
				"power-factor": electrical.FieldPowerFactor,
			})
			if err != nil {
				return err
			}

			req, err := electrical.NewCalculator().ParseRequest(body)
			if err != nil {
				return validationFailure(err)
			}

			res, err := electrical.ThreePhaseCurrent(req)
			if err != nil {
				return validationFailure(err)
			}

			return writeResult(ctx, cmd, res)
		},
	}
}
