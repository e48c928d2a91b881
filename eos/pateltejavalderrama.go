// Copyright 2025 The Realgas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"

	"github.com/rtbo/realgas/gas"
)

// PatelTejaValderrama implements Valderrama's 1990 modification of the
// Patel-Teja equation of state,
//  p = R·T/(v-b) - a(T)/(v·(v+b) + c·(v-b))
// It is the only three-parameter model of the set: the omega coefficients
// and the alpha-function slope depend on the critical compressibility zc.
type PatelTejaValderrama struct{}

// add model to factory
func init() {
	register(func() Model { return PatelTejaValderrama{} }, "PTV", "PatelTejaValderrama")
}

// Name returns the descriptive name of the equation of state
func (o PatelTejaValderrama) Name() string { return "Patel-Teja-Valderrama" }

// Params computes the parameters of the equation of state
func (o PatelTejaValderrama) Params(cs gas.Pvt, w, t float64) Params {
	zc := cs.Z()
	wa := 0.66121 - 0.76105*zc
	wb := 0.02207 + 0.20868*zc
	wc := 0.57765 - 1.87080*zc
	wzc := w * zc
	m := 0.46283 + 3.58230*wzc + 8.19417*wzc*wzc
	alpha := 1.0 + m*(1.0-math.Sqrt(t/cs.T))
	alpha *= alpha
	rtc := gas.R * cs.T
	return Params{
		A: alpha * wa * rtc * rtc / cs.P,
		B: wb * rtc / cs.P,
		C: wc * rtc / cs.P,
	}
}

// Pressure computes the gas pressure
func (o PatelTejaValderrama) Pressure(prm Params, vm, t float64) float64 {
	return gas.R*t/(vm-prm.B) - prm.A/(vm*(vm+prm.B)+prm.C*(vm-prm.B))
}

// ZPolyn computes the coefficients of the cubic polynomial in Z
func (o PatelTejaValderrama) ZPolyn(prm Params, p, t float64) [4]float64 {
	a := prm.A * p / (gas.R * gas.R * t * t)
	b := prm.B * p / (gas.R * t)
	c := prm.C * p / (gas.R * t)
	return [4]float64{
		1,
		c - 1.0,
		a - b*b - 2.0*b*c - b - c,
		b*b*c + b*c - a*b,
	}
}
