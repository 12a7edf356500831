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
	"context"
	"log/slog"
	"net/http"

	"github.com/englab/englab-calcs/pkg/defaults"
	apperrors "github.com/englab/englab-calcs/pkg/errors"
	"github.com/englab/englab-calcs/pkg/serializer"
	"github.com/englab/englab-calcs/pkg/server"
)

// HandleThreePhaseCurrent handles POST /electrical/three_phase_current.
func (c *Calculator) HandleThreePhaseCurrent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.CalcHandlerTimeout)
	defer cancel()

	if !server.RequireMethod(w, r, http.MethodPost) {
		return
	}

	body, ok := server.DecodeBody(w, r)
	if !ok {
		calculationsTotal.WithLabelValues(outcomeInvalidRequest).Inc()
		return
	}

	req, err := c.ParseRequest(body)
	if err != nil {
		calculationsTotal.WithLabelValues(outcomeValidationFailed).Inc()
		server.WriteErrorFromErr(w, r, err, "Invalid three-phase current request", nil)
		return
	}

	result, err := ThreePhaseCurrent(req)
	if err != nil {
		outcome := outcomeValidationFailed
		if apperrors.CodeOf(err) == apperrors.ErrCodeOutOfRange {
			outcome = outcomeOutOfRange
		}
		calculationsTotal.WithLabelValues(outcome).Inc()
		server.WriteErrorFromErr(w, r, err, "Failed to compute three-phase current", nil)
		return
	}

	calculationsTotal.WithLabelValues(outcomeSuccess).Inc()
	slog.DebugContext(ctx, "three-phase current computed",
		"requestID", server.RequestIDFromContext(ctx),
		"power_kw", result.PowerKW,
		"voltage_v", result.VoltageV,
		"power_factor", result.PowerFactor,
		"current_a", result.CurrentA,
	)

	serializer.RespondJSON(w, http.StatusOK, result)
}
