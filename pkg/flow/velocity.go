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
	"math"

	"github.com/englab/englab-calcs/pkg/validator"
)

// Request and response field names.
const (
	FieldFlowM3H               = "flow_m3_h"
	FieldDiameterMM            = "diameter_mm"
	FieldVelocityMS            = "velocity_m_s"
	FieldKinematicViscosityM2S = "kinematic_viscosity_m2_s"
	FieldReynolds              = "reynolds"
)

const (
	secondsPerHour      = 3600
	millimetersPerMeter = 1000
)

// VelocityRequest is a validated pipe velocity input.
// Construct it with NewVelocityRequest or ParseVelocityRequest.
type VelocityRequest struct {
	flowM3H    float64
	diameterMM float64
}

// FlowM3H returns the volumetric flow rate in cubic meters per hour.
func (r VelocityRequest) FlowM3H() float64 { return r.flowM3H }

// DiameterMM returns the internal pipe diameter in millimeters.
func (r VelocityRequest) DiameterMM() float64 { return r.diameterMM }

// VelocityResult is the mean flow velocity with the inputs echoed back.
type VelocityResult struct {
	VelocityMS float64 `json:"velocity_m_s" yaml:"velocity_m_s"`
	FlowM3H    float64 `json:"flow_m3_h" yaml:"flow_m3_h"`
	DiameterMM float64 `json:"diameter_mm" yaml:"diameter_mm"`
}

var velocityRules = []validator.Rule{
	validator.Positive(FieldFlowM3H),
	validator.Positive(FieldDiameterMM),
}

// NewVelocityRequest validates the inputs and returns an immutable request.
func NewVelocityRequest(flowM3H, diameterMM float64) (VelocityRequest, error) {
	v, err := validator.ValidateValues(map[string]float64{
		FieldFlowM3H:    flowM3H,
		FieldDiameterMM: diameterMM,
	}, velocityRules...)
	if err != nil {
		return VelocityRequest{}, err
	}
	return VelocityRequest{flowM3H: v.Get(FieldFlowM3H), diameterMM: v.Get(FieldDiameterMM)}, nil
}

// ParseVelocityRequest validates a decoded request body.
func ParseVelocityRequest(body map[string]any) (VelocityRequest, error) {
	v, err := validator.Validate(body, velocityRules...)
	if err != nil {
		return VelocityRequest{}, err
	}
	return VelocityRequest{flowM3H: v.Get(FieldFlowM3H), diameterMM: v.Get(FieldDiameterMM)}, nil
}

// Velocity computes the mean velocity of a full circular pipe:
// flow is converted to m³/s, diameter to m, and v = Q / (π·d²/4).
func Velocity(req VelocityRequest) VelocityResult {
	flowM3S := req.flowM3H / secondsPerHour
	diameterM := req.diameterMM / millimetersPerMeter
	area := math.Pi * diameterM * diameterM / 4

	return VelocityResult{
		VelocityMS: flowM3S / area,
		FlowM3H:    req.flowM3H,
		DiameterMM: req.diameterMM,
	}
}

// Validate reports RESULT_OUT_OF_RANGE when the velocity overflowed or
// underflowed to a non-finite number.
func (r VelocityResult) Validate() error {
	return validator.CheckResult(FieldVelocityMS, r.VelocityMS, map[string]float64{
		FieldFlowM3H:    r.FlowM3H,
		FieldDiameterMM: r.DiameterMM,
	})
}
