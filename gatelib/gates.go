// Copyright 2026 The gatesim Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

// Package gatelib provides a library of reusable composite gates for
// gatesim.
//
// Every part in this package is pure client code of the core wiring
// API: it instantiates primitives (or other catalog parts), connects
// their pins, and exposes a boundary. None of them carry logic of
// their own.
package gatelib

import "github.com/dlogic/gatesim"

// wiring helpers. Catalog topologies are fixed at compile time, so a
// failed connection or alias is a bug in the catalog itself, not a
// condition the caller could handle.

func inPin(g *gatesim.Gate, i int) *gatesim.Pin {
	p, err := g.Input(i)
	if err != nil {
		panic(err)
	}
	return p
}

func outPin(g *gatesim.Gate, j int) *gatesim.Pin {
	p, err := g.Output(j)
	if err != nil {
		panic(err)
	}
	return p
}

func wire(src, dst *gatesim.Pin) {
	if err := src.Connect(dst); err != nil {
		panic(err)
	}
}

func bindIn(g *gatesim.Gate, i int, p *gatesim.Pin) {
	if err := g.AliasInput(i, p); err != nil {
		panic(err)
	}
}

func bindOut(g *gatesim.Gate, j int, p *gatesim.Pin) {
	if err := g.AliasOutput(j, p); err != nil {
		panic(err)
	}
}

func chain(name string, a, b *gatesim.Gate) *gatesim.Gate {
	g, err := gatesim.Chain(name, a, b)
	if err != nil {
		panic(err)
	}
	return g
}

// Nand returns a NAND gate, an And chained into a Not.
//
//	Inputs: 0, 1
//	Outputs: 0
//	Function: out = !(in0 && in1)
func Nand() *gatesim.Gate {
	return chain("Nand", gatesim.And(), gatesim.Not())
}

// Nor returns a NOR gate, an Or chained into a Not.
//
//	Inputs: 0, 1
//	Outputs: 0
//	Function: out = !(in0 || in1)
func Nor() *gatesim.Gate {
	return chain("Nor", gatesim.Or(), gatesim.Not())
}

// Xnor returns a XNOR gate, a Xor chained into a Not.
//
//	Inputs: 0, 1
//	Outputs: 0
//	Function: out = in0 == in1
func Xnor() *gatesim.Gate {
	return chain("Xnor", gatesim.Xor(), gatesim.Not())
}

// ThreeWayAnd returns a 3-input AND built from two And gates.
//
//	Inputs: 0, 1, 2
//	Outputs: 0
//	Function: out = in0 && in1 && in2
func ThreeWayAnd() *gatesim.Gate {
	and1, and2 := gatesim.And(), gatesim.And()
	g := gatesim.NewComposite("ThreeWayAnd", 3, 1, and1, and2)
	bindIn(g, 0, inPin(and1, 0))
	bindIn(g, 1, inPin(and2, 0))
	bindIn(g, 2, inPin(and2, 1))
	wire(outPin(and2, 0), inPin(and1, 1))
	bindOut(g, 0, outPin(and1, 0))
	return g
}

// FourWayAnd returns a 4-input AND built from a tree of And gates.
//
//	Inputs: 0, 1, 2, 3
//	Outputs: 0
//	Function: out = in0 && in1 && in2 && in3
func FourWayAnd() *gatesim.Gate {
	and1, and2, and3 := gatesim.And(), gatesim.And(), gatesim.And()
	g := gatesim.NewComposite("FourWayAnd", 4, 1, and1, and2, and3)
	bindIn(g, 0, inPin(and1, 0))
	bindIn(g, 1, inPin(and1, 1))
	bindIn(g, 2, inPin(and2, 0))
	bindIn(g, 3, inPin(and2, 1))
	wire(outPin(and1, 0), inPin(and3, 0))
	wire(outPin(and2, 0), inPin(and3, 1))
	bindOut(g, 0, outPin(and3, 0))
	return g
}

// FourWayOr returns a 4-input OR built from a tree of Or gates.
//
//	Inputs: 0, 1, 2, 3
//	Outputs: 0
//	Function: out = in0 || in1 || in2 || in3
func FourWayOr() *gatesim.Gate {
	or1, or2, or3 := gatesim.Or(), gatesim.Or(), gatesim.Or()
	g := gatesim.NewComposite("FourWayOr", 4, 1, or1, or2, or3)
	bindIn(g, 0, inPin(or1, 0))
	bindIn(g, 1, inPin(or1, 1))
	bindIn(g, 2, inPin(or2, 0))
	bindIn(g, 3, inPin(or2, 1))
	wire(outPin(or1, 0), inPin(or3, 0))
	wire(outPin(or2, 0), inPin(or3, 1))
	bindOut(g, 0, outPin(or3, 0))
	return g
}
