// Copyright 2026 The gatesim Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package gatelib

import "github.com/dlogic/gatesim"

// Decoder2 returns a 2-to-4 line decoder: the two bit input selects
// which one of the four outputs is high.
//
//	Inputs: 0 (a1), 1 (a0)
//	Outputs: 0 .. 3, one-hot
//	Function: out[a1*2 + a0] = 1, all others 0
func Decoder2() *gatesim.Gate {
	fan1, fan2 := gatesim.Fan(2), gatesim.Fan(2)
	not1, not2 := gatesim.Not(), gatesim.Not()
	ands := []*gatesim.Gate{gatesim.And(), gatesim.And(), gatesim.And(), gatesim.And()}
	g := gatesim.NewComposite("Decoder2", 2, 4,
		fan1, fan2, not1, not2, ands[0], ands[1], ands[2], ands[3])

	bindIn(g, 0, inPin(fan1, 0))
	bindIn(g, 1, inPin(fan2, 0))
	wire(outPin(fan1, 1), inPin(not1, 0))
	wire(outPin(fan2, 1), inPin(not2, 0))

	// out i = (a1 literal) && (a0 literal) for the bits of i
	wire(outPin(not1, 0), inPin(ands[0], 0))
	wire(outPin(not2, 0), inPin(ands[0], 1))
	wire(outPin(not1, 0), inPin(ands[1], 0))
	wire(outPin(fan2, 0), inPin(ands[1], 1))
	wire(outPin(fan1, 0), inPin(ands[2], 0))
	wire(outPin(not2, 0), inPin(ands[2], 1))
	wire(outPin(fan1, 0), inPin(ands[3], 0))
	wire(outPin(fan2, 0), inPin(ands[3], 1))

	for i, and := range ands {
		bindOut(g, i, outPin(and, 0))
	}
	return g
}

// Encoder4 returns a 4-to-2 line encoder, the inverse of Decoder2: it
// turns a one-hot input into the binary index of the high line.
//
//	Inputs: 0 .. 3, one-hot
//	Outputs: 0 (a1), 1 (a0)
//	Function: a1a0 = index of the high input line
//
// The input is assumed one-hot. If several lines are high the outputs
// are the bitwise OR of their indexes; input 0 never contributes (an
// all-zero input also encodes as 00).
func Encoder4() *gatesim.Gate {
	sink := gatesim.Fan(1) // input 0 terminates here, its value is implied
	fan3 := gatesim.Fan(2)
	orHi, orLo := gatesim.Or(), gatesim.Or()
	g := gatesim.NewComposite("Encoder4", 4, 2, sink, fan3, orHi, orLo)

	bindIn(g, 0, inPin(sink, 0))
	bindIn(g, 1, inPin(orLo, 0))
	bindIn(g, 2, inPin(orHi, 0))
	bindIn(g, 3, inPin(fan3, 0))
	wire(outPin(fan3, 0), inPin(orHi, 1))
	wire(outPin(fan3, 1), inPin(orLo, 1))

	bindOut(g, 0, outPin(orHi, 0))
	bindOut(g, 1, outPin(orLo, 0))
	return g
}
