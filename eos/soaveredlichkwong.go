// Copyright 2025 The Realgas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"

	"github.com/rtbo/realgas/gas"
)

// SoaveRedlichKwong implements the Soave-Redlich-Kwong equation of state,
//  p = R·T/(v-b) - a(T)/(v·(v+b))
// where the attraction parameter is corrected by Soave's alpha function.
type SoaveRedlichKwong struct{}

// add model to factory
func init() {
	register(func() Model { return SoaveRedlichKwong{} }, "SRK", "SoaveRedlichKwong")
}

// Name returns the descriptive name of the equation of state
func (o SoaveRedlichKwong) Name() string { return "Soave-Redlich-Kwong" }

// Params computes the parameters of the equation of state
func (o SoaveRedlichKwong) Params(cs gas.Pvt, w, t float64) Params {
	m := 0.48 + 1.574*w - 0.176*w*w
	alpha := 1.0 + m*(1.0-math.Sqrt(t/cs.T))
	alpha *= alpha
	return Params{
		A: alpha * 0.42748023 * gas.R * gas.R * cs.T * cs.T / cs.P,
		B: 0.08664035 * gas.R * cs.T / cs.P,
	}
}

// Pressure computes the gas pressure
func (o SoaveRedlichKwong) Pressure(prm Params, vm, t float64) float64 {
	return gas.R*t/(vm-prm.B) - prm.A/(vm*(vm+prm.B))
}

// ZPolyn computes the coefficients of the cubic polynomial in Z
func (o SoaveRedlichKwong) ZPolyn(prm Params, p, t float64) [4]float64 {
	a := prm.A * p / (gas.R * gas.R * t * t)
	b := prm.B * p / (gas.R * t)
	return [4]float64{1, -1, a - b*b - b, -a * b}
}
