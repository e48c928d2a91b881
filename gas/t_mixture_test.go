// Copyright 2025 The Realgas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gas

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// checkFracSum checks the canonical mixture invariant
func checkFracSum(tst *testing.T, msg string, mix Mixture) {
	sum := 0.0
	for _, c := range mix.Comps {
		sum += c.F
	}
	chk.Float64(tst, msg+": fraction sum", sumTol, sum, 1.0)
}

// checkMixture checks that two mixtures are structurally equal
func checkMixture(tst *testing.T, msg string, tol float64, a, b Mixture) {
	if len(a.Comps) != len(b.Comps) {
		tst.Errorf("%s: mixtures have different component counts: %d != %d\n", msg, len(a.Comps), len(b.Comps))
		return
	}
	for i := range a.Comps {
		chk.Float64(tst, io.Sf("%s: comp%d fraction", msg, i), tol, a.Comps[i].F, b.Comps[i].F)
		if a.Comps[i].M != b.Comps[i].M {
			tst.Errorf("%s: comp%d references different molecules\n", msg, i)
		}
	}
}

func Test_mix01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mix01. construction errors")

	// nothing to mix
	_, err := NewMixture(nil)
	if !errors.Is(err, ErrMixtureNotWhole) {
		tst.Errorf("empty mixture should report MixtureNotWhole (got %v)\n", err)
	}

	// fractions short of 100% with no remainder
	_, err = NewMixture([]Comp{
		Fraction(0.5, tstN2),
		Fraction(0.3, tstO2),
		Fraction(0.1, tstAr),
	})
	if !errors.Is(err, ErrMixtureNotWhole) {
		tst.Errorf("90%% mixture should report MixtureNotWhole (got %v)\n", err)
	}

	// fractions over 100%
	_, err = NewMixture([]Comp{
		Fraction(0.5, tstN2),
		Fraction(0.5, tstO2),
		Fraction(0.1, tstAr),
	})
	if !errors.Is(err, ErrMixtureNotWhole) {
		tst.Errorf("110%% mixture should report MixtureNotWhole (got %v)\n", err)
	}

	// fraction out of (0,1)
	var invalid InvalidFractionError
	_, err = NewMixture([]Comp{
		Fraction(1.2, tstN2),
		Remainder(tstO2),
	})
	if !errors.As(err, &invalid) {
		tst.Errorf("fraction 1.2 should report InvalidFraction (got %v)\n", err)
	} else {
		chk.Float64(tst, "invalid fraction value", 1e-17, invalid.F, 1.2)
	}

	_, err = NewMixture([]Comp{
		Fraction(-0.1, tstN2),
		Remainder(tstO2),
	})
	if !errors.As(err, &invalid) {
		tst.Errorf("negative fraction should report InvalidFraction (got %v)\n", err)
	}
}

func Test_mix02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mix02. canonical order and merging")

	airN2, airO2, airAr, airCO2 := 0.7808, 0.2095, 0.0093, 0.0004

	// same composition built four different ways
	air, err := NewMixture([]Comp{
		Fraction(airO2, tstO2),
		Fraction(airN2, tstN2),
		Fraction(airAr, tstAr),
		Fraction(airCO2, tstCO2),
	})
	if err != nil {
		tst.Errorf("cannot build air: %v\n", err)
		return
	}
	mix1, err := NewMixture([]Comp{
		Fraction(0.1, tstO2),
		Remainder(air),
	})
	if err != nil {
		tst.Errorf("cannot build mix1: %v\n", err)
		return
	}
	mix2, err := NewMixture([]Comp{
		Fraction(0.9, air),
		Remainder(tstO2),
	})
	if err != nil {
		tst.Errorf("cannot build mix2: %v\n", err)
		return
	}
	mix3, err := NewMixture([]Comp{
		Fraction(airN2*0.9, tstN2),
		Fraction(airO2*0.9+0.1, tstO2),
		Fraction(airAr*0.9, tstAr),
		Fraction(airCO2*0.9, tstCO2),
	})
	if err != nil {
		tst.Errorf("cannot build mix3: %v\n", err)
		return
	}
	mix4, err := NewMixture([]Comp{
		Fraction(airN2*0.9, tstN2),
		Fraction(airO2*0.9, tstO2),
		Fraction(airAr*0.9, tstAr),
		Fraction(airCO2*0.9, tstCO2),
		Fraction(0.1, tstO2),
	})
	if err != nil {
		tst.Errorf("cannot build mix4: %v\n", err)
		return
	}

	// canonical order: decreasing fraction
	if len(mix1.Comps) != 4 {
		tst.Errorf("mix1 should have 4 components (got %d)\n", len(mix1.Comps))
		return
	}
	if mix1.Comps[0].M != tstN2 || mix1.Comps[1].M != tstO2 || mix1.Comps[2].M != tstAr || mix1.Comps[3].M != tstCO2 {
		tst.Errorf("mix1 components are not in canonical order\n")
	}

	checkMixture(tst, "mix1 vs mix2", 1e-9, mix1, mix2)
	checkMixture(tst, "mix2 vs mix3", 1e-9, mix2, mix3)
	checkMixture(tst, "mix3 vs mix4", 1e-9, mix3, mix4)

	checkFracSum(tst, "air", air)
	checkFracSum(tst, "mix1", mix1)
	checkFracSum(tst, "mix2", mix2)
	checkFracSum(tst, "mix3", mix3)
	checkFracSum(tst, "mix4", mix4)
}

func Test_mix03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mix03. remainder slots")

	// a remainder wrapping a sub-mixture scales the sub-components
	// by the inferred void value
	sub, err := NewMixture([]Comp{
		Fraction(0.5, tstN2),
		Remainder(tstO2),
	})
	if err != nil {
		tst.Errorf("cannot build sub: %v\n", err)
		return
	}
	mix, err := NewMixture([]Comp{
		Fraction(0.6, tstAr),
		Remainder(sub),
	})
	if err != nil {
		tst.Errorf("cannot build mix: %v\n", err)
		return
	}
	if len(mix.Comps) != 3 {
		tst.Errorf("mix should have 3 components (got %d)\n", len(mix.Comps))
		return
	}
	chk.Float64(tst, "f(Ar)", 1e-15, mix.Comps[0].F, 0.6)
	chk.Float64(tst, "f(O2)", 1e-15, mix.Comps[1].F, 0.2)
	chk.Float64(tst, "f(N2)", 1e-15, mix.Comps[2].F, 0.2)
	if mix.Comps[0].M != tstAr || mix.Comps[1].M != tstO2 || mix.Comps[2].M != tstN2 {
		tst.Errorf("mix components are not in canonical order\n")
	}
	checkFracSum(tst, "mix", mix)

	// several remainder slots share the gap equally; merging only occurs
	// between adjacent identical molecules of the canonical order
	mix2, err := NewMixture([]Comp{
		Fraction(0.5, tstN2),
		Remainder(tstO2),
		Remainder(sub),
	})
	if err != nil {
		tst.Errorf("cannot build mix2: %v\n", err)
		return
	}
	if len(mix2.Comps) != 3 {
		tst.Errorf("mix2 should have 3 components (got %d)\n", len(mix2.Comps))
		return
	}
	chk.Float64(tst, "mix2 f0(N2)", 1e-15, mix2.Comps[0].F, 0.5)
	chk.Float64(tst, "mix2 f1(O2)", 1e-15, mix2.Comps[1].F, 0.375)
	chk.Float64(tst, "mix2 f2(N2)", 1e-15, mix2.Comps[2].F, 0.125)
	if mix2.Comps[0].M != tstN2 || mix2.Comps[1].M != tstO2 || mix2.Comps[2].M != tstN2 {
		tst.Errorf("mix2 components are not in canonical order\n")
	}
	checkFracSum(tst, "mix2", mix2)
}

func Test_mix04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mix04. molar mass")

	air, err := NewMixture([]Comp{
		Fraction(0.7808, tstN2),
		Fraction(0.2095, tstO2),
		Fraction(0.0093, tstAr),
		Remainder(tstCO2),
	})
	if err != nil {
		tst.Errorf("cannot build air: %v\n", err)
		return
	}
	chk.Float64(tst, "M(air)", 1e-6, air.MolarMass(), 0.0289657)
}
