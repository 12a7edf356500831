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

package electrical

import (
	"log/slog"
	"math"

	"github.com/englab/englab-calcs/pkg/defaults"
	"github.com/englab/englab-calcs/pkg/validator"
)

// Request and response field names.
const (
	FieldPowerKW     = "power_kw"
	FieldVoltageV    = "voltage_v"
	FieldPowerFactor = "power_factor"
	FieldCurrentA    = "current_a"
)

var sqrt3 = math.Sqrt(3)

// Config holds calculator defaults.
type Config struct {
	// DefaultPowerFactor is applied when a request omits power_factor.
	DefaultPowerFactor float64
}

// DefaultConfig returns the documented calculator defaults.
func DefaultConfig() Config {
	return Config{
		DefaultPowerFactor: defaults.PowerFactor,
	}
}

// Option configures a Calculator.
type Option func(*Config)

// WithDefaultPowerFactor overrides the power factor used when a request omits it.
func WithDefaultPowerFactor(pf float64) Option {
	return func(c *Config) {
		c.DefaultPowerFactor = pf
	}
}

// Calculator computes three-phase line current.
type Calculator struct {
	config Config
}

// NewCalculator returns a Calculator with DefaultConfig modified by opts.
// A default power factor outside 0 < pf <= 1 is replaced by defaults.PowerFactor.
func NewCalculator(opts ...Option) *Calculator {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	pf := validator.Field(FieldPowerFactor, validator.GreaterThan(0), validator.AtMost(1))
	if _, err := validator.ValidateValues(map[string]float64{FieldPowerFactor: cfg.DefaultPowerFactor}, pf); err != nil {
		slog.Warn("invalid default power factor, using built-in default",
			"configured", cfg.DefaultPowerFactor,
			"default", defaults.PowerFactor,
			"error", err)
		cfg.DefaultPowerFactor = defaults.PowerFactor
	}

	return &Calculator{config: cfg}
}

// Config returns a copy of the calculator configuration.
func (c *Calculator) Config() Config {
	return c.config
}

// ThreePhaseCurrentRequest is a validated three-phase current input.
// Construct it with NewThreePhaseCurrentRequest or Calculator.ParseRequest.
type ThreePhaseCurrentRequest struct {
	powerKW     float64
	voltageV    float64
	powerFactor float64
}

// PowerKW returns the active power in kilowatts.
func (r ThreePhaseCurrentRequest) PowerKW() float64 { return r.powerKW }

// VoltageV returns the line-to-line voltage in volts.
func (r ThreePhaseCurrentRequest) VoltageV() float64 { return r.voltageV }

// PowerFactor returns the power factor.
func (r ThreePhaseCurrentRequest) PowerFactor() float64 { return r.powerFactor }

// ThreePhaseCurrentResult is the computed line current with the inputs echoed back.
type ThreePhaseCurrentResult struct {
	CurrentA    float64 `json:"current_a" yaml:"current_a"`
	PowerKW     float64 `json:"power_kw" yaml:"power_kw"`
	VoltageV    float64 `json:"voltage_v" yaml:"voltage_v"`
	PowerFactor float64 `json:"power_factor" yaml:"power_factor"`
}

// rules returns the field rules; a nil default makes power_factor required.
func rules(defaultPF *float64) []validator.Rule {
	pf := validator.Field(FieldPowerFactor, validator.GreaterThan(0), validator.AtMost(1))
	if defaultPF != nil {
		pf = pf.WithDefault(*defaultPF)
	}
	return []validator.Rule{
		validator.Positive(FieldPowerKW),
		validator.Positive(FieldVoltageV),
		pf,
	}
}

func fromValues(v validator.Values) ThreePhaseCurrentRequest {
	return ThreePhaseCurrentRequest{
		powerKW:     v.Get(FieldPowerKW),
		voltageV:    v.Get(FieldVoltageV),
		powerFactor: v.Get(FieldPowerFactor),
	}
}

// NewThreePhaseCurrentRequest validates the inputs and returns an immutable request.
// Every violated constraint is reported in the returned error.
func NewThreePhaseCurrentRequest(powerKW, voltageV, powerFactor float64) (ThreePhaseCurrentRequest, error) {
	v, err := validator.ValidateValues(map[string]float64{
		FieldPowerKW:     powerKW,
		FieldVoltageV:    voltageV,
		FieldPowerFactor: powerFactor,
	}, rules(nil)...)
	if err != nil {
		return ThreePhaseCurrentRequest{}, err
	}
	return fromValues(v), nil
}

// ParseRequest validates a decoded request body, applying the configured
// default power factor when the field is absent or null.
func (c *Calculator) ParseRequest(body map[string]any) (ThreePhaseCurrentRequest, error) {
	pf := c.config.DefaultPowerFactor
	v, err := validator.Validate(body, rules(&pf)...)
	if err != nil {
		return ThreePhaseCurrentRequest{}, err
	}
	return fromValues(v), nil
}

// ThreePhaseCurrent computes I = P·1000 / (√3·V·pf).
// The zero request is rejected with VALIDATION_FAILED. Inputs whose current
// overflows or underflows to a non-finite number fail with RESULT_OUT_OF_RANGE.
func ThreePhaseCurrent(req ThreePhaseCurrentRequest) (ThreePhaseCurrentResult, error) {
	if _, err := NewThreePhaseCurrentRequest(req.powerKW, req.voltageV, req.powerFactor); err != nil {
		return ThreePhaseCurrentResult{}, err
	}

	current := req.powerKW * 1000 / (sqrt3 * req.voltageV * req.powerFactor)
	if err := validator.CheckResult(FieldCurrentA, current, map[string]float64{
		FieldPowerKW:     req.powerKW,
		FieldVoltageV:    req.voltageV,
		FieldPowerFactor: req.powerFactor,
	}); err != nil {
		return ThreePhaseCurrentResult{}, err
	}

	return ThreePhaseCurrentResult{
		CurrentA:    current,
		PowerKW:     req.powerKW,
		VoltageV:    req.voltageV,
		PowerFactor: req.powerFactor,
	}, nil
}
