// Copyright 2025 The Realgas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Realgas computes real gas physical quantities through cubic equations of
// state. It prints the compressibility factor for a gas composition at given
// pressure and temperature, or a CSV table of factors over pressure and/or
// temperature ranges.
package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/rtbo/realgas/compounds"
	"github.com/rtbo/realgas/eos"
	"github.com/rtbo/realgas/state"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
			os.Exit(1)
		}
	}()

	// read input parameters
	gasSpec := io.ArgToString(0, "dry_air")
	eosName := io.ArgToString(1, "PR")
	pSpec := io.ArgToString(2, "1.01325")
	tSpec := io.ArgToString(3, "15")
	verbose := io.ArgToBool(4, false)

	// message
	if verbose {
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"gas composition", "gas", gasSpec,
			"equation of state", "eos", eosName,
			"abs. pressure or range [bar]", "pressure", pSpec,
			"temperature or range [°C]", "temperature", tSpec,
			"show messages", "verbose", verbose,
		))
	}

	// parse inputs
	g, err := compounds.Parse(gasSpec)
	if err != nil {
		chk.Panic("cannot parse gas composition: %v", err)
	}
	mdl, err := eos.New(eosName)
	if err != nil {
		chk.Panic("%v", err)
	}
	pvar, err := parseVar(pSpec)
	if err != nil {
		chk.Panic("cannot parse pressure: %v", err)
	}
	tvar, err := parseVar(tSpec)
	if err != nil {
		chk.Panic("cannot parse temperature: %v", err)
	}

	// single state
	if !pvar.isRange && !tvar.isRange {
		p := pvar.start * 1e5
		t := tvar.start + 273.15
		if t <= 0 {
			chk.Panic("temperature below zero K")
		}
		io.Pf("%v\n", state.Z(g, mdl, p, t))
		return
	}

	// CSV table over ranges: pressures as columns, temperatures as rows
	pvals := pvar.vals()
	tvals := tvar.vals()
	if tvals[0] <= -273.15 {
		chk.Panic("temperature below zero K")
	}
	io.Pf("Temp")
	for _, p := range pvals {
		io.Pf(",%v", p)
	}
	io.Pf("\n")
	for _, tc := range tvals {
		io.Pf("%v", tc)
		t := tc + 273.15
		for _, pbar := range pvals {
			io.Pf(",%v", state.Z(g, mdl, pbar*1e5, t))
		}
		io.Pf("\n")
	}
}

// machine epsilon of float64
const macheps = 2.220446049250313e-16

// rangeVar is a scalar or a "start:end[:step]" range (end inclusive)
type rangeVar struct {
	start   float64
	end     float64
	step    float64
	isRange bool
}

// vals expands the variable into its values
func (o rangeVar) vals() []float64 {
	if !o.isRange {
		return []float64{o.start}
	}
	var res []float64
	for v := o.start; v <= o.end+2.0*macheps; v += o.step {
		res = append(res, v)
	}
	return res
}

// parseVar parses a scalar or a "start:end[:step]" range (step defaults to 1)
func parseVar(s string) (v rangeVar, err error) {
	if s == "" {
		return v, chk.Err("cannot parse variable from an empty string")
	}
	fields := strings.Split(s, ":")
	nums := make([]float64, len(fields))
	for i, f := range fields {
		nums[i], err = strconv.ParseFloat(f, 64)
		if err != nil {
			return
		}
	}
	switch len(nums) {
	case 1:
		v.start = nums[0]
	case 2, 3:
		v.start, v.end, v.step = nums[0], nums[1], 1.0
		if len(nums) == 3 {
			v.step = nums[2]
		}
		if v.end <= v.start {
			return v, chk.Err("range end must be higher than start")
		}
		if v.step <= 0 {
			return v, chk.Err("range step must be positive")
		}
		v.isRange = true
	default:
		err = chk.Err("cannot parse %q as a range", s)
	}
	return
}
