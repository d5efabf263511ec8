// Copyright 2026 The gatesim Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package gatelib_test

import (
	"fmt"
	"testing"

	"github.com/dlogic/gatesim"
	"github.com/dlogic/gatesim/gatelib"
	"github.com/dlogic/gatesim/gatetest"
	"github.com/stretchr/testify/require"
)

func Test_half_adder(t *testing.T) {
	gatetest.TruthTable(t, gatelib.HalfAdder(), [][]bool{
		{false, true, true, false},  // sum
		{false, false, false, true}, // carry
	})
}

func Test_full_adder(t *testing.T) {
	gatetest.TruthTable(t, gatelib.FullAdder(), [][]bool{
		{false, true, true, false, true, false, false, true}, // sum
		{false, false, false, true, false, true, true, true}, // cout
	})
}

// A one bit ripple adder is just a full adder with bus pin order.
func Test_ripple_adder_1bit(t *testing.T) {
	gatetest.Compare(t, gatelib.RippleAdder(1), gatelib.FullAdder())
}

// add drives the n-bit adder g with a, b and cin and returns the
// settled sum and carry-out.
func add(t *testing.T, g *gatesim.Gate, bits int, a, b uint, cin bool) (sum uint, cout bool) {
	t.Helper()
	for i := 0; i < bits; i++ {
		require.NoError(t, g.SetInput(i, a&(1<<uint(i)) != 0))
		require.NoError(t, g.SetInput(bits+i, b&(1<<uint(i)) != 0))
	}
	require.NoError(t, g.SetInput(2*bits, cin))
	for i := 0; i < bits; i++ {
		v, err := g.OutputValue(i)
		require.NoError(t, err)
		if v {
			sum |= 1 << uint(i)
		}
	}
	cout, err := g.OutputValue(bits)
	require.NoError(t, err)
	return sum, cout
}

func Test_ripple_adder_carry(t *testing.T) {
	g := gatelib.RippleAdder(4)
	require.Equal(t, 9, g.NumInputs())
	require.Equal(t, 5, g.NumOutputs())

	// carry rippling across all four stages
	sum, cout := add(t, g, 4, 7, 1, false)
	require.EqualValues(t, 8, sum, "7+1")
	require.False(t, cout, "7+1 carry")

	// overflow wraps and raises carry-out
	sum, cout = add(t, g, 4, 15, 1, false)
	require.EqualValues(t, 0, sum, "15+1")
	require.True(t, cout, "15+1 carry")
}

func Test_ripple_adder_exhaustive(t *testing.T) {
	g := gatelib.RippleAdder(4)
	for a := uint(0); a < 16; a++ {
		for b := uint(0); b < 16; b++ {
			for _, cin := range []bool{true, false} {
				want := a + b
				if cin {
					want++
				}
				sum, cout := add(t, g, 4, a, b, cin)
				name := fmt.Sprintf("%d+%d cin=%v", a, b, cin)
				require.EqualValues(t, want&0xf, sum, name)
				require.Equal(t, want > 15, cout, name)
			}
		}
	}
}
