// Copyright 2025 The Realgas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compounds

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/rtbo/realgas/gas"
)

// UnknownCompoundError indicates a symbolic name absent from the registry
type UnknownCompoundError struct {
	Name string
}

func (e UnknownCompoundError) Error() string {
	return io.Sf("cannot lookup %q as a known compound", e.Name)
}

// Parse parses a gas composition specification. A single symbolic name
// yields the registered gas, e.g.
//  "N2"   "CO2"   "dry_air"
// Several components separated by '+' yield a mixture; each component is a
// molar percentage followed by '%' and a symbolic name, or a bare name
// taking the remainder of the composition:
//  "78.08%N2+20.95%O2+0.93%Ar+CO2"
// Returns UnknownCompoundError for unregistered names, and mixture building
// errors for inconsistent fractions.
func Parse(s string) (gas.Gas, error) {
	scomps := strings.Split(s, "+")
	if len(scomps) == 1 {
		g, ok := Lookup(scomps[0])
		if !ok {
			return nil, UnknownCompoundError{Name: scomps[0]}
		}
		return g, nil
	}
	comps := make([]gas.Comp, 0, len(scomps))
	for _, sc := range scomps {
		sfrac := strings.Split(sc, "%")
		if len(sfrac) > 2 {
			return nil, chk.Err("cannot parse %q as a compound fraction", sc)
		}
		symbol := sfrac[len(sfrac)-1]
		g, ok := Lookup(symbol)
		if !ok {
			return nil, UnknownCompoundError{Name: symbol}
		}
		if len(sfrac) == 1 {
			comps = append(comps, gas.Remainder(g))
		} else {
			frac, err := strconv.ParseFloat(sfrac[0], 64)
			if err != nil {
				return nil, err
			}
			comps = append(comps, gas.Fraction(frac/100.0, g))
		}
	}
	mix, err := gas.NewMixture(comps)
	if err != nil {
		return nil, err
	}
	return mix, nil
}
