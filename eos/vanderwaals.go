// Copyright 2025 The Realgas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import "github.com/rtbo/realgas/gas"

// VanDerWaals implements the Van der Waals equation of state,
//  p = R·T/(v-b) - a/v²
// with no temperature correction of the attraction parameter.
type VanDerWaals struct{}

// add model to factory
func init() {
	register(func() Model { return VanDerWaals{} }, "VdW", "VanDerWaals")
}

// Name returns the descriptive name of the equation of state
func (o VanDerWaals) Name() string { return "Van der Waals" }

// Params computes the parameters of the equation of state
func (o VanDerWaals) Params(cs gas.Pvt, w, t float64) Params {
	return Params{
		A: 27.0 * gas.R * gas.R * cs.T * cs.T / (64.0 * cs.P),
		B: gas.R * cs.T / (8.0 * cs.P),
	}
}

// Pressure computes the gas pressure
func (o VanDerWaals) Pressure(prm Params, vm, t float64) float64 {
	return gas.R*t/(vm-prm.B) - prm.A/(vm*vm)
}

// ZPolyn computes the coefficients of the cubic polynomial in Z
func (o VanDerWaals) ZPolyn(prm Params, p, t float64) [4]float64 {
	a := prm.A * p / (gas.R * gas.R * t * t)
	b := prm.B * p / (gas.R * t)
	return [4]float64{1, -b - 1, a, -a * b}
}
