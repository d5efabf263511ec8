// Copyright 2026 The gatesim Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package gatelib

import (
	"strconv"

	"github.com/dlogic/gatesim"
)

// HalfAdder returns a half adder: the sum and carry of two binary
// digits, built from a Xor and an And fed through fan-outs.
//
//	Inputs: 0 (a), 1 (b)
//	Outputs: 0 (sum), 1 (carry)
//	Function: sum = a != b
//	          carry = a && b
func HalfAdder() *gatesim.Gate {
	fanA, fanB := gatesim.Fan(2), gatesim.Fan(2)
	xor, and := gatesim.Xor(), gatesim.And()
	g := gatesim.NewComposite("HalfAdder", 2, 2, fanA, fanB, xor, and)
	bindIn(g, 0, inPin(fanA, 0))
	bindIn(g, 1, inPin(fanB, 0))
	wire(outPin(fanA, 0), inPin(xor, 0))
	wire(outPin(fanA, 1), inPin(and, 0))
	wire(outPin(fanB, 0), inPin(xor, 1))
	wire(outPin(fanB, 1), inPin(and, 1))
	bindOut(g, 0, outPin(xor, 0))
	bindOut(g, 1, outPin(and, 0))
	return g
}

// FullAdder returns a one bit full adder: two digits plus a carry-in,
// built from a HalfAdder, a Xor, an And and an Or.
//
//	Inputs: 0 (a), 1 (b), 2 (cin)
//	Outputs: 0 (sum), 1 (cout)
//	Function: sum = lsb(a + b + cin)
//	          cout = msb(a + b + cin)
func FullAdder() *gatesim.Gate {
	fanA, fanB := gatesim.Fan(2), gatesim.Fan(2)
	xor, and, or := gatesim.Xor(), gatesim.And(), gatesim.Or()
	half := HalfAdder()
	g := gatesim.NewComposite("FullAdder", 3, 2, fanA, fanB, xor, half, and, or)
	bindIn(g, 0, inPin(fanA, 0))
	bindIn(g, 1, inPin(fanB, 0))
	bindIn(g, 2, inPin(half, 0))
	wire(outPin(fanA, 0), inPin(xor, 0))
	wire(outPin(fanA, 1), inPin(and, 0))
	wire(outPin(fanB, 0), inPin(xor, 1))
	wire(outPin(fanB, 1), inPin(and, 1))
	// half adds cin to a^b; its carry and a&&b make up cout
	wire(outPin(xor, 0), inPin(half, 1))
	wire(outPin(half, 1), inPin(or, 0))
	wire(outPin(and, 0), inPin(or, 1))
	bindOut(g, 0, outPin(half, 0))
	bindOut(g, 1, outPin(or, 0))
	return g
}

// RippleAdder returns an n-bit ripple-carry adder: a chain of
// FullAdders with each carry-out wired into the next stage's carry-in.
//
//	Inputs: 0 .. n-1 (a, least significant bit first),
//	        n .. 2n-1 (b, least significant bit first),
//	        2n (cin)
//	Outputs: 0 .. n-1 (sum, least significant bit first), n (cout)
//	Function: sum, cout = a + b + cin
//
// RippleAdder panics if bits < 1.
func RippleAdder(bits int) *gatesim.Gate {
	if bits < 1 {
		panic("gatelib: RippleAdder needs at least one bit")
	}
	stages := make([]*gatesim.Gate, bits)
	for i := range stages {
		stages[i] = FullAdder()
	}
	g := gatesim.NewComposite("RippleAdder"+strconv.Itoa(bits), 2*bits+1, bits+1, stages...)
	for i, fa := range stages {
		bindIn(g, i, inPin(fa, 0))
		bindIn(g, bits+i, inPin(fa, 1))
		bindOut(g, i, outPin(fa, 0))
	}
	bindIn(g, 2*bits, inPin(stages[0], 2))
	for i := 0; i < bits-1; i++ {
		wire(outPin(stages[i], 1), inPin(stages[i+1], 2))
	}
	bindOut(g, bits, outPin(stages[bits-1], 1))
	return g
}
