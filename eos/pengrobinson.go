// Copyright 2025 The Realgas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"

	"github.com/rtbo/realgas/gas"
)

// PengRobinson implements the Peng-Robinson equation of state,
//  p = R·T/(v-b) - a(T)/(v² + 2·b·v - b²)
// The alpha-function slope m switches to the 1978 four-term polynomial for
// acentric factors above 0.491; the discontinuity at the switch belongs to
// the published model.
type PengRobinson struct{}

// add model to factory
func init() {
	register(func() Model { return PengRobinson{} }, "PR", "PengRobinson")
}

// Name returns the descriptive name of the equation of state
func (o PengRobinson) Name() string { return "Peng-Robinson" }

// Params computes the parameters of the equation of state
func (o PengRobinson) Params(cs gas.Pvt, w, t float64) Params {
	var m float64
	if w <= 0.491 {
		m = 0.37464 + 1.56226*w - 0.26992*w*w
	} else {
		m = 0.379642 + 1.487503*w - 0.164423*w*w - 0.016666*w*w*w
	}
	alpha := 1.0 + m*(1.0-math.Sqrt(t/cs.T))
	alpha *= alpha
	return Params{
		A: alpha * 0.4572355289213821 * gas.R * gas.R * cs.T * cs.T / cs.P,
		B: 0.07779607390388844 * gas.R * cs.T / cs.P,
	}
}

// Pressure computes the gas pressure
func (o PengRobinson) Pressure(prm Params, vm, t float64) float64 {
	return gas.R*t/(vm-prm.B) - prm.A/(vm*vm+2.0*prm.B*vm-prm.B*prm.B)
}

// ZPolyn computes the coefficients of the cubic polynomial in Z
func (o PengRobinson) ZPolyn(prm Params, p, t float64) [4]float64 {
	a := prm.A * p / (gas.R * gas.R * t * t)
	b := prm.B * p / (gas.R * t)
	return [4]float64{1, b - 1, -3.0*b*b - 2.0*b + a, b*b*b + b*b - a*b}
}
