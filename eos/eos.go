// Copyright 2025 The Realgas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package eos implements cubic equations of state to model real gas behaviour
package eos

import (
	"github.com/cpmech/gosl/chk"

	"github.com/rtbo/realgas/gas"
)

// Params holds the parameters of an equation of state, derived from the
// critical properties of a molecule at a given temperature. Params are
// immutable snapshots: the attraction parameter depends on temperature
// through the alpha function, so they must not be reused across
// temperatures. Fields not used by a model are zero.
type Params struct {
	A float64 // molecular attraction parameter
	B float64 // molecular volume parameter
	C float64 // third shape parameter (Patel-Teja-Valderrama only)
}

// Model defines a cubic equation of state
type Model interface {

	// Name returns the descriptive name of the equation of state
	Name() string

	// Params computes the parameters of the equation of state
	//  Input:
	//   cs -- critical state of the molecule
	//   w  -- acentric factor of the molecule
	//   t  -- temperature of the gas [K]
	Params(cs gas.Pvt, w, t float64) Params

	// Pressure computes the gas pressure [Pa] for molar volume vm [m³/mol]
	// and temperature t [K]
	Pressure(prm Params, vm, t float64) float64

	// ZPolyn computes the coefficients [a3, a2, a1, a0] of the cubic
	// polynomial in the compressibility factor Z such that
	//  a3·Z³ + a2·Z² + a1·Z + a0 = 0
	// for pressure p [Pa] and temperature t [K]
	ZPolyn(prm Params, p, t float64) [4]float64
}

// New returns an equation of state model by name.
// Available models (short and long names):
//  "IG"  | "IdealGas"
//  "VdW" | "VanDerWaals"
//  "RK"  | "RedlichKwong"
//  "SRK" | "SoaveRedlichKwong"
//  "PR"  | "PengRobinson"
//  "PTV" | "PatelTejaValderrama"
func New(name string) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("equation of state %q is not available in 'eos' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

func register(allocator func() Model, names ...string) {
	for _, name := range names {
		allocators[name] = allocator
	}
}
