// Copyright 2026 The gatesim Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package gatelib

import "github.com/dlogic/gatesim"

// Mux2 returns a two-to-one multiplexer.
//
//	Inputs: 0 (a), 1 (b), 2 (sel)
//	Outputs: 0
//	Function: if sel == 0 { out = a } else { out = b }
func Mux2() *gatesim.Gate {
	fanSel := gatesim.Fan(2)
	not := gatesim.Not()
	andA, andB := gatesim.And(), gatesim.And()
	or := gatesim.Or()
	g := gatesim.NewComposite("Mux2", 3, 1, fanSel, not, andA, andB, or)
	bindIn(g, 0, inPin(andA, 0))
	bindIn(g, 1, inPin(andB, 0))
	bindIn(g, 2, inPin(fanSel, 0))
	wire(outPin(fanSel, 0), inPin(not, 0))
	wire(outPin(fanSel, 1), inPin(andB, 1))
	wire(outPin(not, 0), inPin(andA, 1))
	wire(outPin(andA, 0), inPin(or, 0))
	wire(outPin(andB, 0), inPin(or, 1))
	bindOut(g, 0, outPin(or, 0))
	return g
}

// Mux4 returns a four-to-one multiplexer selecting one of four data
// inputs with a two bit selector.
//
//	Inputs: 0 (sel1), 1 (sel0), 2 (d0), 3 (d1), 4 (d2), 5 (d3)
//	Outputs: 0
//	Function: out = d[sel1*2 + sel0]
func Mux4() *gatesim.Gate {
	fan1, fan2 := gatesim.Fan(2), gatesim.Fan(2)
	not1, not2 := gatesim.Not(), gatesim.Not()
	and1, and2 := ThreeWayAnd(), ThreeWayAnd()
	and3, and4 := ThreeWayAnd(), ThreeWayAnd()
	or := FourWayOr()
	g := gatesim.NewComposite("Mux4", 6, 1, fan1, fan2, not1, not2, and1, and2, and3, and4, or)

	bindIn(g, 0, inPin(fan1, 0))
	bindIn(g, 1, inPin(fan2, 0))
	bindIn(g, 2, inPin(and1, 0))
	bindIn(g, 3, inPin(and2, 0))
	bindIn(g, 4, inPin(and3, 0))
	bindIn(g, 5, inPin(and4, 0))

	// sel1 gates d2 and d3, its complement gates d0 and d1
	wire(outPin(fan1, 0), inPin(and3, 1))
	wire(outPin(fan1, 0), inPin(and4, 1))
	wire(outPin(fan1, 1), inPin(not1, 0))
	wire(outPin(not1, 0), inPin(and1, 1))
	wire(outPin(not1, 0), inPin(and2, 1))

	// sel0 gates d1 and d3, its complement gates d0 and d2
	wire(outPin(fan2, 0), inPin(and2, 2))
	wire(outPin(fan2, 0), inPin(and4, 2))
	wire(outPin(fan2, 1), inPin(not2, 0))
	wire(outPin(not2, 0), inPin(and1, 2))
	wire(outPin(not2, 0), inPin(and3, 2))

	wire(outPin(and1, 0), inPin(or, 0))
	wire(outPin(and2, 0), inPin(or, 1))
	wire(outPin(and3, 0), inPin(or, 2))
	wire(outPin(and4, 0), inPin(or, 3))
	bindOut(g, 0, outPin(or, 0))
	return g
}
