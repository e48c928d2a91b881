// Copyright 2025 The Realgas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// ZPlot plots compressibility factor curves of a gas versus pressure, at a
// fixed temperature, for all the cubic equations of state. An experimental
// Z table in the CSV format printed by the realgas command can be overlaid
// for comparison.
package main

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/rtbo/realgas/compounds"
	"github.com/rtbo/realgas/eos"
	"github.com/rtbo/realgas/state"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	gasSpec := io.ArgToString(0, "dry_air")
	tC := io.ArgToFloat(1, 20.0)      // [°C]
	pMin := io.ArgToFloat(2, 1.0)     // [bar]
	pMax := io.ArgToFloat(3, 1000.0)  // [bar]
	np := io.ArgToInt(4, 101)
	expFn := io.ArgToString(5, "")    // experimental Z table (optional)
	dirout := io.ArgToString(6, "/tmp/realgas")

	io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"gas composition", "gas", gasSpec,
		"temperature [°C]", "temperature", tC,
		"min pressure [bar]", "pmin", pMin,
		"max pressure [bar]", "pmax", pMax,
		"number of points", "np", np,
		"experimental Z table", "expFn", expFn,
		"output directory", "dirout", dirout,
	))

	g, err := compounds.Parse(gasSpec)
	if err != nil {
		chk.Panic("cannot parse gas composition: %v", err)
	}
	t := tC + 273.15
	if t <= 0 {
		chk.Panic("temperature below zero K")
	}
	P := utl.LinSpace(pMin, pMax, np)

	plt.Reset(true, &plt.A{Prop: 0.75})
	for _, name := range []string{"VdW", "RK", "SRK", "PR", "PTV"} {
		mdl, err := eos.New(name)
		if err != nil {
			chk.Panic("%v", err)
		}
		Zv := make([]float64, len(P))
		for i, pbar := range P {
			Zv[i] = state.Z(g, mdl, pbar*1e5, t)
		}
		plt.Plot(P, Zv, &plt.A{L: mdl.Name(), NoClip: true})
	}
	if expFn != "" {
		pexp, zexp := readZTable(expFn, tC)
		plt.Plot(pexp, zexp, &plt.A{C: "k", Ls: "--", L: "experimental"})
	}
	plt.Gll("$p$ [bar]", "$Z$", nil)
	fnkey := io.Sf("z_%s_%gK", strings.ReplaceAll(gasSpec, "%", ""), t)
	plt.Save(dirout, fnkey)
}

// readZTable reads a Z table in the CSV format printed by the realgas
// command (pressures in bar as columns, temperatures in °C as rows) and
// extracts the row for temperature tC. Empty fields become NaN.
func readZTable(fn string, tC float64) (p, z []float64) {
	io.ReadLines(fn, func(idx int, line string) (stop bool) {
		fields := strings.Split(strings.TrimSpace(line), ",")
		if idx == 0 {
			for _, f := range fields[1:] {
				p = append(p, io.Atof(f))
			}
			return
		}
		if len(fields) < 2 || math.Abs(io.Atof(fields[0])-tC) > 1e-8 {
			return
		}
		for _, f := range fields[1:] {
			if f == "" {
				z = append(z, math.NaN())
			} else {
				z = append(z, io.Atof(f))
			}
		}
		return true
	})
	if len(z) == 0 {
		chk.Panic("no experimental data for temperature %v in %q", tC, fn)
	}
	return
}
