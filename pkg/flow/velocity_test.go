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
	"errors"
	"math"
	"testing"

	apperrors "github.com/englab/englab-calcs/pkg/errors"
	"github.com/englab/englab-calcs/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVelocity(t *testing.T) {
	tests := []struct {
		name     string
		flow     float64
		diameter float64
		want     float64
	}{
		{"36 m3/h in DN100", 36, 100, 1.2732395},
		{"1 m3/h in DN25", 1, 25, 0.5658842},
		{"large main", 3600, 1000, 1.2732395},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewVelocityRequest(tt.flow, tt.diameter)
			require.NoError(t, err)

			res := Velocity(req)
			assert.InDelta(t, tt.want, res.VelocityMS, 1e-6)
			assert.Equal(t, tt.flow, res.FlowM3H)
			assert.Equal(t, tt.diameter, res.DiameterMM)
		})
	}
}

func TestVelocity_UnitNormalization(t *testing.T) {
	req, err := NewVelocityRequest(36, 100)
	require.NoError(t, err)

	want := (36.0 / 3600) / (math.Pi * 0.1 * 0.1 / 4)
	assert.InDelta(t, want, Velocity(req).VelocityMS, 1e-12)
}

func TestNewVelocityRequest_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		flow       float64
		diameter   float64
		wantFields []string
	}{
		{"zero flow", 0, 100, []string{FieldFlowM3H}},
		{"negative diameter", 36, -1, []string{FieldDiameterMM}},
		{"both invalid", -36, 0, []string{FieldFlowM3H, FieldDiameterMM}},
		{"infinite flow", math.Inf(1), 100, []string{FieldFlowM3H}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewVelocityRequest(tt.flow, tt.diameter)
			require.Error(t, err)

			var verr *validator.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantFields, verr.Fields())
		})
	}
}

func TestParseVelocityRequest(t *testing.T) {
	req, err := ParseVelocityRequest(map[string]any{
		FieldFlowM3H:    36.0,
		FieldDiameterMM: 100,
		"comment":       "ignored",
	})
	require.NoError(t, err)
	assert.Equal(t, 36.0, req.FlowM3H())
	assert.Equal(t, 100.0, req.DiameterMM())

	_, err = ParseVelocityRequest(map[string]any{FieldFlowM3H: 36.0})
	require.Error(t, err)

	var verr *validator.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{FieldDiameterMM}, verr.Fields())
}

func TestVelocityResult_Validate(t *testing.T) {
	req, err := NewVelocityRequest(36, 100)
	require.NoError(t, err)
	assert.NoError(t, Velocity(req).Validate())

	tests := []struct {
		name     string
		flow     float64
		diameter float64
		got      string
	}{
		{"underflow to zero over zero", 5e-324, 1e-200, "NaN"},
		{"overflow", 1e300, 1e-10, "+Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewVelocityRequest(tt.flow, tt.diameter)
			require.NoError(t, err)

			err = Velocity(req).Validate()
			require.Error(t, err)
			assert.Equal(t, apperrors.ErrCodeOutOfRange, apperrors.CodeOf(err))
			assert.Contains(t, err.Error(), "velocity_m_s is not a finite number for these inputs, got "+tt.got)
		})
	}
}
