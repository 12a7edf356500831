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

// Package flow implements pipe flow calculations.
//
// # Velocity
//
// Mean velocity of a full circular pipe from volumetric flow and internal
// diameter. Units are normalized before the formula is applied:
//
//	Q = flow_m3_h / 3600          (m³/s)
//	d = diameter_mm / 1000        (m)
//	v = Q / (π·d²/4)              (m/s)
//
// # Reynolds Number
//
//	Re = velocity_m_s · (diameter_mm / 1000) / kinematic_viscosity_m2_s
//
// ClassifyRegime applies closed, non-overlapping thresholds:
//
//	Re < 2300          laminar
//	2300 <= Re < 4000  transitional
//	Re >= 4000         turbulent
//
// The regime enum is always English. ReynoldsResult.RegimeLabel is a
// display label negotiated from Accept-Language; English and Brazilian
// Portuguese are available.
//
// All inputs must be finite and strictly positive. Requests are immutable
// values produced by the New*Request and Parse*Request constructors.
package flow
