// Copyright 2025 The Realgas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import "github.com/rtbo/realgas/gas"

// IdealGas implements the ideal gas law. It has no parameters and its
// compressibility factor is always one.
type IdealGas struct{}

// add model to factory
func init() {
	register(func() Model { return IdealGas{} }, "IG", "IdealGas")
}

// Name returns the descriptive name of the equation of state
func (o IdealGas) Name() string { return "Ideal Gas" }

// Params computes the parameters of the equation of state
func (o IdealGas) Params(cs gas.Pvt, w, t float64) Params {
	return Params{}
}

// Pressure computes the gas pressure
func (o IdealGas) Pressure(prm Params, vm, t float64) float64 {
	return gas.R * t / vm
}

// ZPolyn computes the coefficients of the polynomial in Z: here Z - 1 = 0
func (o IdealGas) ZPolyn(prm Params, p, t float64) [4]float64 {
	return [4]float64{0, 0, 1, -1}
}
