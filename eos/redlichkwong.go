// Copyright 2025 The Realgas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"

	"github.com/rtbo/realgas/gas"
)

// RedlichKwong implements the Redlich-Kwong equation of state,
//  p = R·T/(v-b) - a/(√T·v·(v+b))
// The attraction parameter carries the √T correction in the pressure
// relation itself rather than through an alpha function.
type RedlichKwong struct{}

// add model to factory
func init() {
	register(func() Model { return RedlichKwong{} }, "RK", "RedlichKwong")
}

// Name returns the descriptive name of the equation of state
func (o RedlichKwong) Name() string { return "Redlich-Kwong" }

// Params computes the parameters of the equation of state
func (o RedlichKwong) Params(cs gas.Pvt, w, t float64) Params {
	return Params{
		A: 0.42748023 * gas.R * gas.R * math.Pow(cs.T, 2.5) / cs.P,
		B: 0.08664035 * gas.R * cs.T / cs.P,
	}
}

// Pressure computes the gas pressure
func (o RedlichKwong) Pressure(prm Params, vm, t float64) float64 {
	return gas.R*t/(vm-prm.B) - prm.A/(math.Sqrt(t)*vm*(vm+prm.B))
}

// ZPolyn computes the coefficients of the cubic polynomial in Z
func (o RedlichKwong) ZPolyn(prm Params, p, t float64) [4]float64 {
	a := prm.A * p / (gas.R * gas.R * math.Pow(t, 2.5))
	b := prm.B * p / (gas.R * t)
	return [4]float64{1, -1, a - b*b - b, -a * b}
}
