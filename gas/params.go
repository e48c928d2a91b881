// Copyright 2025 The Realgas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gas

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// MoleculeFromPrms builds a custom molecule from a named parameter set.
//   "m"  -- molar mass [kg/mol]
//   "pc" -- critical pressure [Pa]
//   "tc" -- critical temperature [K]
//   "vc" -- critical molar volume [m³/mol]
//   "w"  -- acentric factor
func MoleculeFromPrms(prms dbf.Params) (m Molecule, err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "m":
			m.M = p.V
		case "pc":
			m.Cs.P = p.V
		case "tc":
			m.Cs.T = p.V
		case "vc":
			m.Cs.V = p.V
		case "w":
			m.W = p.V
		default:
			return Molecule{}, chk.Err("molecule: parameter named %q is incorrect", p.N)
		}
	}
	if m.M <= 0 || m.Cs.P <= 0 || m.Cs.T <= 0 || m.Cs.V <= 0 {
		return Molecule{}, chk.Err("molecule: m, pc, tc and vc parameters must be positive")
	}
	return
}
