// Copyright 2025 The Realgas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gas

import (
	"errors"
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// sumTol is the tolerance on the sum of molar fractions of a mixture
const sumTol = 1e-7

// ErrMixtureNotWhole indicates that the molar fractions of a mixture do not
// sum up to 100% and that no remainder component can absorb the gap
var ErrMixtureNotWhole = errors.New("the sum of molar fractions does not equal 100%")

// InvalidFractionError indicates a molar fraction outside of (0, 1)
type InvalidFractionError struct {
	F float64
}

func (e InvalidFractionError) Error() string {
	return io.Sf("%.1f%% is not a valid molar fraction", e.F*100.0)
}

// Component is one molecule of a mixture with its molar fraction
type Component struct {
	F float64  // molar fraction
	M Molecule // pure compound
}

// Mixture is a gas made of several molecules. Mixtures built with NewMixture
// are canonical: components are sorted by decreasing fraction (molecule
// identity breaking ties), identical molecules are merged, and fractions sum
// to 1 within tolerance. Two mixtures of the same physical composition are
// therefore structurally equal.
type Mixture struct {
	Comps []Component
}

// MolarMass returns the molar mass of the mixture [kg/mol]
func (o Mixture) MolarMass() float64 {
	res := 0.0
	for _, c := range o.Comps {
		res += c.F * c.M.M
	}
	return res
}

// Comp is one input component for NewMixture: a gas with an explicit molar
// fraction, or a remainder whose fraction is inferred from the other
// components. Remainders carry a NaN fraction.
type Comp struct {
	F float64
	G Gas
}

// Fraction makes a mixture component with an explicit molar fraction
func Fraction(f float64, g Gas) Comp {
	return Comp{F: f, G: g}
}

// Remainder makes a mixture component absorbing the fraction
// left over by the other components
func Remainder(g Gas) Comp {
	return Comp{F: math.NaN(), G: g}
}

// NewMixture builds a canonical mixture from components.
//
// Each component either has an explicit fraction in (0, 1) exclusive, or is a
// remainder. Nested mixtures are flattened: a sub-mixture with fraction f
// contributes its own components scaled by f; a sub-mixture under a remainder
// slot contributes components whose fractions are later scaled by the
// inferred remainder value. When n remainder slots are present, each one
// receives (1 - sum of explicit fractions) / n.
//
// Returns ErrMixtureNotWhole if the explicit fractions exceed 100%, or do not
// reach 100% with no remainder to fill the gap, and InvalidFractionError for
// an explicit fraction outside of (0, 1).
func NewMixture(comps []Comp) (Mixture, error) {
	type entry struct {
		void bool // belongs to a remainder slot
		f    float64
		m    Molecule
	}
	var tmp []entry
	fill := 0.0
	numVoids := 0

	for _, c := range comps {
		f := c.F
		if math.IsNaN(f) {
			numVoids++
		} else {
			if f <= 0.0 || f >= 1.0 {
				return Mixture{}, InvalidFractionError{F: f}
			}
			fill += f
		}
		switch g := c.G.(type) {
		case Molecule:
			tmp = append(tmp, entry{void: math.IsNaN(f), f: f, m: g})
		case Mixture:
			for _, sub := range g.Comps {
				if math.IsNaN(f) {
					tmp = append(tmp, entry{void: true, f: sub.F, m: sub.M})
				} else {
					tmp = append(tmp, entry{f: f * sub.F, m: sub.M})
				}
			}
		default:
			chk.Panic("mixture: unknown gas type %v", g)
		}
	}

	if fill > 1.0 {
		return Mixture{}, ErrMixtureNotWhole
	}
	if fill != 1.0 && numVoids == 0 {
		return Mixture{}, ErrMixtureNotWhole
	}

	if numVoids > 0 {
		voidAttrib := (1.0 - fill) / float64(numVoids)
		for i := range tmp {
			if tmp[i].void {
				if math.IsNaN(tmp[i].f) {
					tmp[i].f = voidAttrib
				} else {
					tmp[i].f *= voidAttrib
				}
			}
		}
	}

	res := make([]Component, len(tmp))
	for i, e := range tmp {
		res[i] = Component{F: e.f, M: e.m}
	}

	// sort with decreasing fraction, then decreasing molecule identity, and
	// merge identical molecules, so that mixing e.g. air with O2 yields a
	// single O2 component and the same composition always compares equal
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].F != res[j].F {
			return res[i].F > res[j].F
		}
		return res[i].M.compare(res[j].M) > 0
	})
	for i := 0; i+1 < len(res); {
		if res[i].M == res[i+1].M {
			res[i].F += res[i+1].F
			res = append(res[:i+1], res[i+2:]...)
		} else {
			i++
		}
	}

	sum := 0.0
	for _, c := range res {
		sum += c.F
	}
	if sum < 1.0-sumTol || sum > 1.0+sumTol {
		chk.Panic("mixture: fractions sum up to %v instead of 1", sum)
	}

	return Mixture{Comps: res}, nil
}
