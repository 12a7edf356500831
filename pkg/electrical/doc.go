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

// Package electrical computes three-phase line current from active power,
// line-to-line voltage and power factor:
//
//	I = P·1000 / (√3 · V · pf)
//
// P is in kilowatts, V in volts and I in amperes. power_kw and voltage_v must
// be greater than zero; power_factor must satisfy 0 < pf <= 1 and defaults to
// 0.8 when omitted. A zero power factor is rejected so the result is always
// finite.
//
// Usage:
//
//	req, err := electrical.NewThreePhaseCurrentRequest(10, 380, 0.8)
//	if err != nil {
//	    return err
//	}
//	res, err := electrical.ThreePhaseCurrent(req) // res.CurrentA ≈ 18.99
//
// Calculator carries the default power factor and serves
// POST /electrical/three_phase_current through HandleThreePhaseCurrent.
package electrical
