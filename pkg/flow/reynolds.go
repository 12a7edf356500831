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

package flow

import (
	"golang.org/x/text/language"

	"github.com/englab/englab-calcs/pkg/defaults"
	"github.com/englab/englab-calcs/pkg/validator"
)

// Regime is the flow regime predicted by the Reynolds number.
type Regime string

const (
	RegimeLaminar      Regime = "laminar"
	RegimeTransitional Regime = "transitional"
	RegimeTurbulent    Regime = "turbulent"
)

// Regimes lists every regime in ascending Reynolds order.
var Regimes = []Regime{RegimeLaminar, RegimeTransitional, RegimeTurbulent}

// ClassifyRegime maps a Reynolds number to its regime:
// re < 2300 is laminar, 2300 <= re < 4000 is transitional, re >= 4000 is turbulent.
func ClassifyRegime(re float64) Regime {
	switch {
	case re < defaults.LaminarLimit:
		return RegimeLaminar
	case re < defaults.TurbulentLimit:
		return RegimeTransitional
	default:
		return RegimeTurbulent
	}
}

// ReynoldsRequest is a validated Reynolds number input.
// Construct it with NewReynoldsRequest or ParseReynoldsRequest.
type ReynoldsRequest struct {
	velocityMS            float64
	diameterMM            float64
	kinematicViscosityM2S float64
}

// VelocityMS returns the mean flow velocity in meters per second.
func (r ReynoldsRequest) VelocityMS() float64 { return r.velocityMS }

// DiameterMM returns the internal pipe diameter in millimeters.
func (r ReynoldsRequest) DiameterMM() float64 { return r.diameterMM }

// KinematicViscosityM2S returns the fluid kinematic viscosity in m²/s.
func (r ReynoldsRequest) KinematicViscosityM2S() float64 { return r.kinematicViscosityM2S }

// ReynoldsResult is the Reynolds number and its regime.
type ReynoldsResult struct {
	Reynolds    float64 `json:"reynolds" yaml:"reynolds"`
	Regime      Regime  `json:"regime" yaml:"regime"`
	RegimeLabel string  `json:"regime_label" yaml:"regime_label"`

	inputs map[string]float64
}

var reynoldsRules = []validator.Rule{
	validator.Positive(FieldVelocityMS),
	validator.Positive(FieldDiameterMM),
	validator.Positive(FieldKinematicViscosityM2S),
}

func reynoldsFromValues(v validator.Values) ReynoldsRequest {
	return ReynoldsRequest{
		velocityMS:            v.Get(FieldVelocityMS),
		diameterMM:            v.Get(FieldDiameterMM),
		kinematicViscosityM2S: v.Get(FieldKinematicViscosityM2S),
	}
}

// NewReynoldsRequest validates the inputs and returns an immutable request.
func NewReynoldsRequest(velocityMS, diameterMM, kinematicViscosityM2S float64) (ReynoldsRequest, error) {
	v, err := validator.ValidateValues(map[string]float64{
		FieldVelocityMS:            velocityMS,
		FieldDiameterMM:            diameterMM,
		FieldKinematicViscosityM2S: kinematicViscosityM2S,
	}, reynoldsRules...)
	if err != nil {
		return ReynoldsRequest{}, err
	}
	return reynoldsFromValues(v), nil
}

// ParseReynoldsRequest validates a decoded request body.
func ParseReynoldsRequest(body map[string]any) (ReynoldsRequest, error) {
	v, err := validator.Validate(body, reynoldsRules...)
	if err != nil {
		return ReynoldsRequest{}, err
	}
	return reynoldsFromValues(v), nil
}

// Reynolds computes Re = v·d / ν with d converted to meters and classifies
// the regime. RegimeLabel is in English; use Localize for other languages.
func Reynolds(req ReynoldsRequest) ReynoldsResult {
	diameterM := req.diameterMM / millimetersPerMeter
	re := req.velocityMS * diameterM / req.kinematicViscosityM2S
	regime := ClassifyRegime(re)

	return ReynoldsResult{
		Reynolds:    re,
		Regime:      regime,
		RegimeLabel: regime.Label(language.English),
		inputs: map[string]float64{
			FieldVelocityMS:            req.velocityMS,
			FieldDiameterMM:            req.diameterMM,
			FieldKinematicViscosityM2S: req.kinematicViscosityM2S,
		},
	}
}

// Validate reports RESULT_OUT_OF_RANGE when the Reynolds number overflowed
// to a non-finite number. Regime is meaningless in that case.
func (r ReynoldsResult) Validate() error {
	return validator.CheckResult(FieldReynolds, r.Reynolds, r.inputs)
}

// Localize returns a copy of the result with RegimeLabel in the given language.
func (r ReynoldsResult) Localize(tag language.Tag) ReynoldsResult {
	r.RegimeLabel = r.Regime.Label(tag)
	return r
}
