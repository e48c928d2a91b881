// Copyright 2025 The Realgas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import "math"

// cubicRoots finds the real roots of
//  a[0]·x³ + a[1]·x² + a[2]·x + a[3] = 0
// with the closed-form resolution of the depressed cubic: Cardano's formula
// when one real root exists, the trigonometric method when three do.
// Degenerate leading coefficients reduce to the quadratic and linear cases.
// The roots are returned in x[:n], unordered, with multiple roots collapsed.
func cubicRoots(a [4]float64) (x [3]float64, n int) {
	if a[0] == 0 {
		return quadRoots(a[1], a[2], a[3])
	}

	// depressed cubic y³ + p·y + q = 0 with x = y - b/3
	b := a[1] / a[0]
	c := a[2] / a[0]
	d := a[3] / a[0]
	p := c - b*b/3.0
	q := 2.0*b*b*b/27.0 - b*c/3.0 + d
	ofs := b / 3.0

	disc := q*q/4.0 + p*p*p/27.0
	switch {
	case disc > 0: // one real root
		s := math.Sqrt(disc)
		x[0] = math.Cbrt(-q/2.0+s) + math.Cbrt(-q/2.0-s) - ofs
		n = 1
	case disc < 0: // three distinct real roots
		m := 2.0 * math.Sqrt(-p/3.0)
		arg := 3.0 * q / (p * m)
		// guard rounding at the discriminant boundary
		arg = math.Max(-1.0, math.Min(1.0, arg))
		theta := math.Acos(arg) / 3.0
		for k := 0; k < 3; k++ {
			x[k] = m*math.Cos(theta-2.0*math.Pi*float64(k)/3.0) - ofs
		}
		n = 3
	default: // multiple roots
		if q == 0 {
			x[0] = -ofs
			n = 1
		} else {
			x[0] = 3.0*q/p - ofs
			x[1] = -3.0*q/(2.0*p) - ofs
			n = 2
		}
	}
	return
}

// quadRoots finds the real roots of a·x² + b·x + c = 0,
// reducing to the linear case when a is zero
func quadRoots(a, b, c float64) (x [3]float64, n int) {
	if a == 0 {
		if b == 0 {
			return
		}
		x[0] = -c / b
		n = 1
		return
	}
	disc := b*b - 4.0*a*c
	if disc < 0 {
		return
	}
	s := math.Sqrt(disc)
	x[0] = (-b + s) / (2.0 * a)
	n = 1
	if disc > 0 {
		x[1] = (-b - s) / (2.0 * a)
		n = 2
	}
	return
}
