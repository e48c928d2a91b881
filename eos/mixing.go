// Copyright 2025 The Realgas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import "math"

// WeightedParams pairs the parameters of one mixture component
// with its molar fraction
type WeightedParams struct {
	F   float64 // molar fraction
	Prm Params
}

// Mix combines per-component parameters into effective mixture parameters
// with the Van der Waals one-fluid mixing rule (zero binary interaction
// parameters): the attraction parameter mixes quadratically over all
// component pairs,
//  a = Σi Σj fi·fj·√(ai·aj)
// while the volume and shape parameters mix linearly,
//  b = Σi fi·bi   c = Σi fi·ci
// The rule holds for every model: unused parameters stay zero.
func Mix(comps []WeightedParams) (mix Params) {
	for _, ci := range comps {
		mix.B += ci.F * ci.Prm.B
		mix.C += ci.F * ci.Prm.C
		for _, cj := range comps {
			mix.A += ci.F * cj.F * math.Sqrt(ci.Prm.A*cj.Prm.A)
		}
	}
	return
}
