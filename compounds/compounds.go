// Copyright 2025 The Realgas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package compounds holds the physical constants of common gas molecules.
// Critical constants and acentric factors follow the Iacovino compilation
// (kaylaiacovino.com/Petrology_Tools).
package compounds

import (
	"github.com/cpmech/gosl/chk"

	"github.com/rtbo/realgas/gas"
)

// Lookup finds a gas by its symbolic name, e.g. "N2" or "dry_air"
func Lookup(name string) (gas.Gas, bool) {
	g, ok := table[name]
	return g, ok
}

// DryAir returns the dry air mixture (N2, O2, Ar and CO2)
func DryAir() gas.Mixture {
	return dryAir
}

var dryAir gas.Mixture

var table map[string]gas.Gas

func init() {
	var err error
	dryAir, err = gas.NewMixture([]gas.Comp{
		gas.Fraction(0.7808, N2),
		gas.Fraction(0.2095, O2),
		gas.Fraction(0.0093, Ar),
		gas.Fraction(0.0004, CO2),
	})
	if err != nil {
		chk.Panic("cannot build dry air mixture: %v", err)
	}
	table = map[string]gas.Gas{
		"dry_air": dryAir,
		"Ar":      Ar,
		"Br2":     Br2,
		"Cl2":     Cl2,
		"F2":      F2,
		"He":      He,
		"H2":      H2,
		"I2":      I2,
		"Kr":      Kr,
		"Ne":      Ne,
		"N2":      N2,
		"O2":      O2,
		"Xe":      Xe,
		"C2H2":    C2H2,
		"C6H6":    C6H6,
		"C4H10":   C4H10,
		"C4H8":    C4H8,
		"C6H12":   C6H12,
		"C3H6":    C3H6,
		"C2H6":    C2H6,
		"C2H4":    C2H4,
		"NH3":     NH3,
		"CO2":     CO2,
		"CO":      CO,
		"NO":      NO,
		"SO2":     SO2,
		"SO3":     SO3,
		"H2O":     H2O,
		"CH3COOH": CH3COOH,
		"C3H6O":   C3H6O,
		"C2H5OH":  C2H5OH,
		"CH3OH":   CH3OH,
		"CH3CL":   CH3Cl,
	}
}

// Argon
var Ar = gas.Molecule{
	Cs: gas.Pvt{P: 48.7 * 1e5, V: 74.9 * 1e-6, T: 150.8},
	W:  0.001,
	M:  0.039948,
}

// Bromine
var Br2 = gas.Molecule{
	Cs: gas.Pvt{P: 103.4 * 1e5, V: 127.2 * 1e-6, T: 588.0},
	W:  0.108,
	M:  0.159808,
}

// Chlorine
var Cl2 = gas.Molecule{
	Cs: gas.Pvt{P: 79.8 * 1e5, V: 123.8 * 1e-6, T: 416.9},
	W:  0.09,
	M:  0.070906,
}

// Fluorine
var F2 = gas.Molecule{
	Cs: gas.Pvt{P: 52.2 * 1e5, V: 66.3 * 1e-6, T: 144.3},
	W:  0.054,
	M:  0.0379968,
}

// Helium
var He = gas.Molecule{
	Cs: gas.Pvt{P: 2.27 * 1e5, V: 57.4 * 1e-6, T: 5.19},
	W:  -0.365,
	M:  0.004002602,
}

// Hydrogen
var H2 = gas.Molecule{
	Cs: gas.Pvt{P: 12.9 * 1e5, V: 64.3 * 1e-6, T: 33.0},
	W:  -0.216,
	M:  0.00201588,
}

// Iodine
var I2 = gas.Molecule{
	Cs: gas.Pvt{P: 116.5 * 1e5, V: 155.0 * 1e-6, T: 819.0},
	W:  0.229,
	M:  0.25380894,
}

// Krypton
var Kr = gas.Molecule{
	Cs: gas.Pvt{P: 55.0 * 1e5, V: 91.2 * 1e-6, T: 209.4},
	W:  0.005,
	M:  0.083798,
}

// Neon
var Ne = gas.Molecule{
	Cs: gas.Pvt{P: 27.6 * 1e5, V: 41.6 * 1e-6, T: 44.4},
	W:  -0.029,
	M:  0.0201797,
}

// Nitrogen
var N2 = gas.Molecule{
	Cs: gas.Pvt{P: 33.9 * 1e5, V: 89.8 * 1e-6, T: 126.2},
	W:  0.039,
	M:  0.0280134,
}

// Oxygen
var O2 = gas.Molecule{
	Cs: gas.Pvt{P: 50.4 * 1e5, V: 73.4 * 1e-6, T: 154.6},
	W:  0.025,
	M:  0.0319988,
}

// Xenon
var Xe = gas.Molecule{
	Cs: gas.Pvt{P: 58.4 * 1e5, V: 66.3 * 1e-6, T: 289.7},
	W:  0.008,
	M:  0.131293,
}

// Acetylene
var C2H2 = gas.Molecule{
	Cs: gas.Pvt{P: 61.4 * 1e5, V: 112.7 * 1e-6, T: 308.3},
	W:  0.19,
	M:  0.0260373,
}

// Benzene
var C6H6 = gas.Molecule{
	Cs: gas.Pvt{P: 48.9 * 1e5, V: 259.0 * 1e-6, T: 562.1},
	W:  0.212,
	M:  0.0781118,
}

// Butane
var C4H10 = gas.Molecule{
	Cs: gas.Pvt{P: 38.0 * 1e5, V: 255.0 * 1e-6, T: 425.2},
	W:  0.199,
	M:  0.0581222,
}

// Cyclobutane
var C4H8 = gas.Molecule{
	Cs: gas.Pvt{P: 49.9 * 1e5, V: 210.0 * 1e-6, T: 460.0},
	W:  0.181,
	M:  0.0561063,
}

// Cyclohexane
var C6H12 = gas.Molecule{
	Cs: gas.Pvt{P: 40.7 * 1e5, V: 308.0 * 1e-6, T: 553.8},
	W:  0.212,
	M:  0.0841595,
}

// Cyclopropane
var C3H6 = gas.Molecule{
	Cs: gas.Pvt{P: 54.9 * 1e5, V: 163.0 * 1e-6, T: 397.8},
	W:  0.130,
	M:  0.0420797,
}

// Ethane
var C2H6 = gas.Molecule{
	Cs: gas.Pvt{P: 48.8 * 1e5, V: 148.3 * 1e-6, T: 305.4},
	W:  0.099,
	M:  0.030069,
}

// Ethylene
var C2H4 = gas.Molecule{
	Cs: gas.Pvt{P: 50.4 * 1e5, V: 130.4 * 1e-6, T: 282.4},
	W:  0.089,
	M:  0.0280532,
}

// Ammonia
var NH3 = gas.Molecule{
	Cs: gas.Pvt{P: 113.5 * 1e5, V: 72.5 * 1e-6, T: 405.5},
	W:  0.250,
	M:  0.01703052,
}

// Carbon dioxide
var CO2 = gas.Molecule{
	Cs: gas.Pvt{P: 73.8 * 1e5, V: 93.9 * 1e-6, T: 304.1},
	W:  0.239,
	M:  0.0440095,
}

// Carbon monoxide
var CO = gas.Molecule{
	Cs: gas.Pvt{P: 35.0 * 1e5, V: 93.2 * 1e-6, T: 132.9},
	W:  0.066,
	M:  0.0280101,
}

// Nitric oxide
var NO = gas.Molecule{
	Cs: gas.Pvt{P: 64.8 * 1e5, V: 57.7 * 1e-6, T: 180.0},
	W:  0.588,
	M:  0.0300061,
}

// Sulfur dioxide
var SO2 = gas.Molecule{
	Cs: gas.Pvt{P: 78.8 * 1e5, V: 122.2 * 1e-6, T: 430.8},
	W:  0.256,
	M:  0.064066,
}

// Sulfur trioxide
var SO3 = gas.Molecule{
	Cs: gas.Pvt{P: 82.1 * 1e5, V: 127.3 * 1e-6, T: 491.0},
	W:  0.481,
	M:  0.080066,
}

// Water
var H2O = gas.Molecule{
	Cs: gas.Pvt{P: 221.2 * 1e5, V: 57.1 * 1e-6, T: 647.3},
	W:  0.344,
	M:  0.01801528,
}

// Acetic acid
var CH3COOH = gas.Molecule{
	Cs: gas.Pvt{P: 57.9 * 1e5, V: 66.3 * 1e-6, T: 592.7},
	W:  0.09,
	M:  0.060052,
}

// Acetone
var C3H6O = gas.Molecule{
	Cs: gas.Pvt{P: 47.0 * 1e5, V: 209.0 * 1e-6, T: 508.1},
	W:  0.304,
	M:  0.0580791,
}

// Ethanol
var C2H5OH = gas.Molecule{
	Cs: gas.Pvt{P: 61.4 * 1e5, V: 167.1 * 1e-6, T: 513.9},
	W:  0.644,
	M:  0.04606844,
}

// Methanol
var CH3OH = gas.Molecule{
	Cs: gas.Pvt{P: 80.9 * 1e5, V: 118.0 * 1e-6, T: 512.6},
	W:  0.556,
	M:  0.03204294,
}

// Methyl chloride
var CH3Cl = gas.Molecule{
	Cs: gas.Pvt{P: 67.0 * 1e5, V: 138.9 * 1e-6, T: 416.3},
	W:  0.153,
	M:  0.0504905,
}
