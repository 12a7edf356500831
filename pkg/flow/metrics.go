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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	calculationVelocity = "velocity"
	calculationReynolds = "reynolds"

	outcomeSuccess          = "success"
	outcomeInvalidRequest   = "invalid_request"
	outcomeValidationFailed = "validation_failed"
	outcomeOutOfRange       = "out_of_range"
)

var (
	calculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "englab_flow_calculations_total",
			Help: "Total number of flow calculations by calculation and outcome",
		},
		[]string{"calculation", "outcome"},
	)

	regimeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "englab_flow_regime_total",
			Help: "Total number of Reynolds classifications by regime",
		},
		[]string{"regime"},
	)
)
