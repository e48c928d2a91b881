// Copyright 2025 The Realgas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package gas defines gases, either pure molecules or mixtures,
// by the physical constants needed by cubic equations of state
package gas

// R is the universal gas constant [J/(mol·K)]
const R = 8.31446262

// Pvt holds a pressure-volume-temperature state of one mole of gas.
// It also describes the critical point of a molecule, in which case
// all fields are positive.
type Pvt struct {
	P float64 // pressure [Pa]
	V float64 // molar volume [m³/mol]
	T float64 // temperature [K]
}

// Z returns the compressibility factor of this state
func (o Pvt) Z() float64 {
	return o.P * o.V / (R * o.T)
}

// Ptz converts to a pressure-temperature-compressibility state
func (o Pvt) Ptz() Ptz {
	return Ptz{P: o.P, T: o.T, Z: o.Z()}
}

// Ptz holds a pressure-temperature-compressibility state
type Ptz struct {
	P float64 // pressure [Pa]
	T float64 // temperature [K]
	Z float64 // compressibility factor
}

// Vm returns the molar volume of this state [m³/mol]
func (o Ptz) Vm() float64 {
	return o.Z * R * o.T / o.P
}

// Pvt converts to a pressure-volume-temperature state
func (o Ptz) Pvt() Pvt {
	return Pvt{P: o.P, V: o.Vm(), T: o.T}
}

// Molecule represents a pure gas compound by its physical properties.
// Molecules are immutable values; two molecules are the same compound
// if and only if all their fields are equal.
type Molecule struct {
	M  float64 // molar mass [kg/mol]
	Cs Pvt     // critical state
	W  float64 // acentric factor
}

// MolarMass returns the molar mass [kg/mol]
func (o Molecule) MolarMass() float64 {
	return o.M
}

// Zc returns the critical compressibility factor
func (o Molecule) Zc() float64 {
	return o.Cs.Z()
}

// compare orders molecules deterministically: by molar mass, then
// critical pressure, volume and temperature, then acentric factor
func (o Molecule) compare(b Molecule) int {
	pairs := [5][2]float64{
		{o.M, b.M},
		{o.Cs.P, b.Cs.P},
		{o.Cs.V, b.Cs.V},
		{o.Cs.T, b.Cs.T},
		{o.W, b.W},
	}
	for _, p := range pairs {
		if p[0] < p[1] {
			return -1
		}
		if p[0] > p[1] {
			return 1
		}
	}
	return 0
}

// Gas is either a pure Molecule or a Mixture
type Gas interface {
	// MolarMass returns the molar mass [kg/mol]
	MolarMass() float64
}
