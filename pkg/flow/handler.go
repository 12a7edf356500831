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
	"context"
	"log/slog"
	"net/http"

	"golang.org/x/text/language"

	"github.com/englab/englab-calcs/pkg/defaults"
	"github.com/englab/englab-calcs/pkg/serializer"
	"github.com/englab/englab-calcs/pkg/server"
)

// Calculator serves the flow endpoints.
type Calculator struct {
	defaultLanguage language.Tag
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithDefaultLanguage sets the regime label language used when the client
// sends no usable Accept-Language header.
func WithDefaultLanguage(tag language.Tag) Option {
	return func(c *Calculator) {
		c.defaultLanguage = supported(tag)
	}
}

// NewCalculator returns a Calculator labelling regimes in English by default.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{defaultLanguage: language.English}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DefaultLanguage returns the fallback regime label language.
func (c *Calculator) DefaultLanguage() language.Tag {
	return c.defaultLanguage
}

// HandleVelocity handles POST /flow/velocity.
func (c *Calculator) HandleVelocity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.CalcHandlerTimeout)
	defer cancel()

	if !server.RequireMethod(w, r, http.MethodPost) {
		return
	}

	body, ok := server.DecodeBody(w, r)
	if !ok {
		calculationsTotal.WithLabelValues(calculationVelocity, outcomeInvalidRequest).Inc()
		return
	}

	req, err := ParseVelocityRequest(body)
	if err != nil {
		calculationsTotal.WithLabelValues(calculationVelocity, outcomeValidationFailed).Inc()
		server.WriteErrorFromErr(w, r, err, "Invalid velocity request", nil)
		return
	}

	result := Velocity(req)
	if err := result.Validate(); err != nil {
		calculationsTotal.WithLabelValues(calculationVelocity, outcomeOutOfRange).Inc()
		server.WriteErrorFromErr(w, r, err, "Velocity out of range", nil)
		return
	}

	calculationsTotal.WithLabelValues(calculationVelocity, outcomeSuccess).Inc()
	slog.DebugContext(ctx, "pipe velocity computed",
		"requestID", server.RequestIDFromContext(ctx),
		"flow_m3_h", result.FlowM3H,
		"diameter_mm", result.DiameterMM,
		"velocity_m_s", result.VelocityMS,
	)

	serializer.RespondJSON(w, http.StatusOK, result)
}

// HandleReynolds handles POST /flow/reynolds.
// regime_label follows the Accept-Language header.
func (c *Calculator) HandleReynolds(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.CalcHandlerTimeout)
	defer cancel()

	if !server.RequireMethod(w, r, http.MethodPost) {
		return
	}

	body, ok := server.DecodeBody(w, r)
	if !ok {
		calculationsTotal.WithLabelValues(calculationReynolds, outcomeInvalidRequest).Inc()
		return
	}

	req, err := ParseReynoldsRequest(body)
	if err != nil {
		calculationsTotal.WithLabelValues(calculationReynolds, outcomeValidationFailed).Inc()
		server.WriteErrorFromErr(w, r, err, "Invalid Reynolds request", nil)
		return
	}

	result := Reynolds(req)
	if err := result.Validate(); err != nil {
		calculationsTotal.WithLabelValues(calculationReynolds, outcomeOutOfRange).Inc()
		server.WriteErrorFromErr(w, r, err, "Reynolds number out of range", nil)
		return
	}

	lang := ParseAcceptLanguage(r.Header.Get("Accept-Language"), c.defaultLanguage)
	result = result.Localize(lang)

	calculationsTotal.WithLabelValues(calculationReynolds, outcomeSuccess).Inc()
	regimeTotal.WithLabelValues(string(result.Regime)).Inc()
	slog.DebugContext(ctx, "reynolds number computed",
		"requestID", server.RequestIDFromContext(ctx),
		"reynolds", result.Reynolds,
		"regime", result.Regime,
		"language", lang.String(),
	)

	w.Header().Set("Content-Language", lang.String())
	serializer.RespondJSON(w, http.StatusOK, result)
}
