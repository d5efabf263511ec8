// Copyright 2026 The gatesim Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package gatesim simulates digital logic circuits as networks of
boolean-valued gates connected by wires.

A circuit is built out of gates. Every gate owns a fixed set of input
and output pins, addressable by index, and a recomputation rule that
maps input values to output values. Wiring an output pin to another
gate's input pin with Connect is the only topology mutation; driving a
boundary input with Set is the only way to make values move:

	xor := gatesim.Xor()
	and := gatesim.And()
	out, _ := xor.Output(0)
	in, _ := and.Input(0)
	if err := out.Connect(in); err != nil {
		// invalid wiring
	}
	xor.SetInput(0, true)

Propagation is synchronous and depth-first: a Set call that changes a
pin's value recomputes the owning gate, pushes every changed output to
its connected inputs, and so on recursively until the network reaches
a fixed point. Setting a pin to its current value is a no-op, which is
what makes the cascade terminate on feed-forward circuits. The call
returns only once everything downstream has settled.

Feedback topologies are not supported by the generic propagation
mechanism. Rather than recursing until the stack is exhausted, the
engine counts nested propagation steps and aborts a cascade with
ErrFeedback once MaxDepth is exceeded. Stateful behavior belongs in
dedicated primitives: SRLatch keeps one bit of memory with explicit
state transition logic instead of a wired feedback loop.

Composite gates are built by wiring sub-gates together and exposing a
selection of their pins as the composite's own boundary: the boundary
pins are aliases, not separate storage. See NewComposite and the
gatelib package for a catalog of ready-made composites (adders,
multiplexers, decoders).
*/
package gatesim
