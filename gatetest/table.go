// Copyright 2026 The gatesim Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

// Package gatetest provides utility functions for testing circuits.
package gatetest

import (
	"math/rand"
	"testing"
	"time"

	"github.com/dlogic/gatesim"
)

// TruthTable drives g through every combination of its input values
// and checks each output pin against want. want holds one row per
// output pin; row values are indexed by the input combination read as
// a binary number with input pin 0 as the most significant bit, the
// same layout tables are usually written in:
//
//	gatetest.TruthTable(t, gatesim.And(), [][]bool{
//		{false, false, false, true}, // 00, 01, 10, 11
//	})
func TruthTable(t *testing.T, g *gatesim.Gate, want [][]bool) {
	t.Helper()
	if len(want) != g.NumOutputs() {
		t.Fatalf("%s: table has %d output rows, gate has %d outputs", g.Name(), len(want), g.NumOutputs())
	}
	n := g.NumInputs()
	rows := 1 << uint(n)
	for o, row := range want {
		if len(row) != rows {
			t.Fatalf("%s: output %d row has %d entries, want %d", g.Name(), o, len(row), rows)
		}
	}
	// rows are driven in descending order: a fresh gate has never
	// evaluated its rule, so the all-ones transition up front forces a
	// recomputation of the whole network before the all-zeros row is
	// read
	for i := rows - 1; i >= 0; i-- {
		driveRow(t, g, i)
		for o := range want {
			got, err := g.OutputValue(o)
			if err != nil {
				t.Fatal(err)
			}
			if got != want[o][i] {
				t.Errorf("%s: output %d = %v, want %v", g, o, got, want[o][i])
			}
		}
	}
}

// Compare drives two gates with identical inputs and fails on the
// first output divergence. Both gates must have the same input and
// output arity. Input coverage is exhaustive up to 12 input pins;
// beyond that the all-zeros, all-ones and a set of random combinations
// are used.
func Compare(t *testing.T, a, b *gatesim.Gate) {
	t.Helper()
	if a.NumInputs() != b.NumInputs() {
		t.Fatalf("%s has %d inputs, %s has %d", a.Name(), a.NumInputs(), b.Name(), b.NumInputs())
	}
	if a.NumOutputs() != b.NumOutputs() {
		t.Fatalf("%s has %d outputs, %s has %d", a.Name(), a.NumOutputs(), b.Name(), b.NumOutputs())
	}

	n := a.NumInputs()
	if n <= 12 {
		// descending, so both gates recompute their whole network on
		// the first row (see TruthTable)
		for i := 1<<uint(n) - 1; i >= 0; i-- {
			driveRow(t, a, i)
			driveRow(t, b, i)
			compareOutputs(t, a, b)
		}
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	in := make([]bool, n)
	drive := func() {
		for i, v := range in {
			if err := a.SetInput(i, v); err != nil {
				t.Fatal(err)
			}
			if err := b.SetInput(i, v); err != nil {
				t.Fatal(err)
			}
		}
		compareOutputs(t, a, b)
	}
	for i := range in {
		in[i] = true
	}
	drive()
	for i := range in {
		in[i] = false
	}
	drive()
	for round := 0; round < 1<<12; round++ {
		for i := range in {
			in[i] = rng.Int63()&(1<<62) != 0
		}
		drive()
	}
}

// driveRow sets g's inputs to row interpreted as a binary number with
// input pin 0 as the most significant bit.
func driveRow(t *testing.T, g *gatesim.Gate, row int) {
	t.Helper()
	n := g.NumInputs()
	for bit := 0; bit < n; bit++ {
		v := row&(1<<uint(bit)) != 0
		if err := g.SetInput(n-bit-1, v); err != nil {
			t.Fatal(err)
		}
	}
}

func compareOutputs(t *testing.T, a, b *gatesim.Gate) {
	t.Helper()
	for o := 0; o < a.NumOutputs(); o++ {
		va, err := a.OutputValue(o)
		if err != nil {
			t.Fatal(err)
		}
		vb, err := b.OutputValue(o)
		if err != nil {
			t.Fatal(err)
		}
		if va != vb {
			t.Fatalf("\n%s\n%s\noutput %d: %v != %v", a, b, o, va, vb)
		}
	}
}
