// Copyright 2025 The Realgas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/rtbo/realgas/gas"
)

// critical data of nitrogen, used as a typical molecule
var tstN2 = gas.Molecule{
	M:  0.0280134,
	Cs: gas.Pvt{P: 33.9 * 1e5, V: 89.8 * 1e-6, T: 126.2},
	W:  0.039,
}

func Test_new01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("new01. model factory")

	names := map[string]string{
		"IG":                  "Ideal Gas",
		"IdealGas":            "Ideal Gas",
		"VdW":                 "Van der Waals",
		"VanDerWaals":         "Van der Waals",
		"RK":                  "Redlich-Kwong",
		"RedlichKwong":        "Redlich-Kwong",
		"SRK":                 "Soave-Redlich-Kwong",
		"SoaveRedlichKwong":   "Soave-Redlich-Kwong",
		"PR":                  "Peng-Robinson",
		"PengRobinson":        "Peng-Robinson",
		"PTV":                 "Patel-Teja-Valderrama",
		"PatelTejaValderrama": "Patel-Teja-Valderrama",
	}
	for key, name := range names {
		mdl, err := New(key)
		if err != nil {
			tst.Errorf("cannot allocate %q: %v\n", key, err)
			return
		}
		if mdl.Name() != name {
			tst.Errorf("%q allocated %q instead of %q\n", key, mdl.Name(), name)
		}
	}

	if _, err := New("Berthelot"); err == nil {
		tst.Errorf("unknown model name should fail\n")
	}
}

func Test_ig01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ig01. ideal gas")

	mdl := IdealGas{}
	prm := mdl.Params(tstN2.Cs, tstN2.W, 300.0)
	chk.Float64(tst, "a", 1e-17, prm.A, 0)
	chk.Float64(tst, "b", 1e-17, prm.B, 0)
	chk.Float64(tst, "c", 1e-17, prm.C, 0)

	polyn := mdl.ZPolyn(prm, 1e5, 300.0)
	chk.Float64(tst, "a3", 1e-17, polyn[0], 0)
	chk.Float64(tst, "a2", 1e-17, polyn[1], 0)
	chk.Float64(tst, "a1", 1e-17, polyn[2], 1)
	chk.Float64(tst, "a0", 1e-17, polyn[3], -1)

	vm := 0.0224
	chk.Float64(tst, "p", 1e-10, mdl.Pressure(prm, vm, 300.0), gas.R*300.0/vm)
}

func Test_alpha01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("alpha01. alpha functions at the critical temperature")

	// alpha(Tc) = 1 regardless of the acentric factor, so the attraction
	// parameter reduces to its omega coefficient
	cs, w := tstN2.Cs, tstN2.W
	rtc := gas.R * cs.T

	prm := SoaveRedlichKwong{}.Params(cs, w, cs.T)
	chk.Float64(tst, "srk: a(Tc)", 1e-10, prm.A, 0.42748023*rtc*rtc/cs.P)
	chk.Float64(tst, "srk: b", 1e-12, prm.B, 0.08664035*rtc/cs.P)

	prm = PengRobinson{}.Params(cs, w, cs.T)
	chk.Float64(tst, "pr: a(Tc)", 1e-10, prm.A, 0.4572355289213821*rtc*rtc/cs.P)
	chk.Float64(tst, "pr: b", 1e-12, prm.B, 0.07779607390388844*rtc/cs.P)

	zc := cs.Z()
	prm = PatelTejaValderrama{}.Params(cs, w, cs.T)
	chk.Float64(tst, "ptv: a(Tc)", 1e-10, prm.A, (0.66121-0.76105*zc)*rtc*rtc/cs.P)
	chk.Float64(tst, "ptv: b", 1e-12, prm.B, (0.02207+0.20868*zc)*rtc/cs.P)
	chk.Float64(tst, "ptv: c", 1e-12, prm.C, (0.57765-1.87080*zc)*rtc/cs.P)
}

func Test_pr01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pr01. slope switch for heavy molecules")

	mdl := PengRobinson{}
	cs := tstN2.Cs
	t := 0.8 * cs.T

	for _, w := range []float64{0.491, 0.492} {
		var m float64
		if w <= 0.491 {
			m = 0.37464 + 1.56226*w - 0.26992*w*w
		} else {
			m = 0.379642 + 1.487503*w - 0.164423*w*w - 0.016666*w*w*w
		}
		alpha := 1.0 + m*(1.0-0.8944271909999159) // sqrt(0.8)
		alpha *= alpha
		prm := mdl.Params(cs, w, t)
		chk.Float64(tst, io.Sf("a(w=%g)", w), 1e-8, prm.A, alpha*0.4572355289213821*gas.R*gas.R*cs.T*cs.T/cs.P)
	}
}

func Test_mix01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mix01. one-fluid mixing rule")

	// single component: identity
	prm := Params{A: 4.0, B: 1.0, C: 0.5}
	mix := Mix([]WeightedParams{{F: 1.0, Prm: prm}})
	chk.Float64(tst, "a single", 1e-15, mix.A, prm.A)
	chk.Float64(tst, "b single", 1e-15, mix.B, prm.B)
	chk.Float64(tst, "c single", 1e-15, mix.C, prm.C)

	// equimolar pair: a = (f1·√a1 + f2·√a2)²
	mix = Mix([]WeightedParams{
		{F: 0.5, Prm: Params{A: 4.0, B: 1.0}},
		{F: 0.5, Prm: Params{A: 9.0, B: 3.0, C: 0.2}},
	})
	chk.Float64(tst, "a pair", 1e-14, mix.A, 6.25)
	chk.Float64(tst, "b pair", 1e-15, mix.B, 2.0)
	chk.Float64(tst, "c pair", 1e-15, mix.C, 0.1)

	// zero attraction must not produce NaN
	mix = Mix([]WeightedParams{
		{F: 0.5, Prm: Params{B: 1.0}},
		{F: 0.5, Prm: Params{B: 3.0}},
	})
	chk.Float64(tst, "a zero", 1e-17, mix.A, 0)
	chk.Float64(tst, "b zero", 1e-15, mix.B, 2.0)
}
