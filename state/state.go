// Copyright 2025 The Realgas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package state resolves the thermodynamic state of real gases: it turns a
// gas description, an equation of state and a (pressure, temperature) pair
// into a compressibility factor and the quantities derived from it. All
// functions are pure and safe for concurrent use.
package state

import (
	"github.com/cpmech/gosl/chk"

	"github.com/rtbo/realgas/eos"
	"github.com/rtbo/realgas/gas"
)

// Params computes the parameters of an equation of state for a gas at
// temperature t [K]. Molecule parameters come straight from the critical
// properties; mixture parameters combine the per-component parameters
// through the mixing rule.
func Params(g gas.Gas, mdl eos.Model, t float64) eos.Params {
	switch g := g.(type) {
	case gas.Molecule:
		return mdl.Params(g.Cs, g.W, t)
	case gas.Mixture:
		comps := make([]eos.WeightedParams, len(g.Comps))
		for i, c := range g.Comps {
			comps[i] = eos.WeightedParams{F: c.F, Prm: mdl.Params(c.M.Cs, c.M.W, t)}
		}
		return eos.Mix(comps)
	}
	chk.Panic("state: unknown gas type %v", g)
	return eos.Params{}
}

// Pressure computes the pressure [Pa] of a gas for molar volume vm [m³/mol]
// and temperature t [K]
func Pressure(g gas.Gas, mdl eos.Model, vm, t float64) float64 {
	return mdl.Pressure(Params(g, mdl, t), vm, t)
}

// Z computes the compressibility factor of a gas such that Z = p·v/(R·T),
// by resolving the cubic equation of state at pressure p [Pa] and
// temperature t [K].
//
// When the cubic has several real roots, the largest one is selected: it
// corresponds to the vapour branch, which is the intended regime of this
// library (liquid/vapour equilibrium is out of scope).
//
// Panics if no positive real root exists, which indicates physically
// nonsensical input; callers must validate inputs beforehand.
func Z(g gas.Gas, mdl eos.Model, p, t float64) float64 {
	prm := Params(g, mdl, t)
	roots, n := cubicRoots(mdl.ZPolyn(prm, p, t))
	if n < 1 {
		chk.Panic("no real root for Z: gas=%v eos=%q p=%v t=%v", g, mdl.Name(), p, t)
	}
	z := roots[0]
	for _, r := range roots[1:n] {
		if r > z {
			z = r
		}
	}
	if z <= 0 {
		chk.Panic("no positive real root for Z: gas=%v eos=%q p=%v t=%v", g, mdl.Name(), p, t)
	}
	return z
}

// MolarVolume computes the molar volume [m³/mol] of a gas at pressure p [Pa]
// and temperature t [K]
func MolarVolume(g gas.Gas, mdl eos.Model, p, t float64) float64 {
	return Z(g, mdl, p, t) * gas.R * t / p
}

// SpecificMass computes the specific mass [kg/m³] of a gas at pressure
// p [Pa] and temperature t [K]
func SpecificMass(g gas.Gas, mdl eos.Model, p, t float64) float64 {
	return g.MolarMass() * p / (Z(g, mdl, p, t) * gas.R * t)
}

// Mols computes the amount of gas [mol] filling volume v [m³] at pressure
// p [Pa] and temperature t [K]
func Mols(g gas.Gas, mdl eos.Model, p, v, t float64) float64 {
	return p * v / (Z(g, mdl, p, t) * gas.R * t)
}

// Volume computes the volume [m³] occupied by n mols of gas at pressure
// p [Pa] and temperature t [K]
func Volume(g gas.Gas, mdl eos.Model, p, n, t float64) float64 {
	return n * Z(g, mdl, p, t) * gas.R * t / p
}

// Mass computes the mass [kg] of gas filling volume v [m³] at pressure
// p [Pa] and temperature t [K]
func Mass(g gas.Gas, mdl eos.Model, p, v, t float64) float64 {
	return g.MolarMass() * Mols(g, mdl, p, v, t)
}
