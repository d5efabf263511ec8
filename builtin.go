// Copyright 2026 The gatesim Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

// And returns an AND gate.
//
//	Inputs: 0, 1
//	Outputs: 0
//	Function: out = in0 && in1
func And() *Gate {
	return New("And", 2, 1, func(in, out []bool) {
		out[0] = in[0] && in[1]
	})
}

// Or returns an OR gate.
//
//	Inputs: 0, 1
//	Outputs: 0
//	Function: out = in0 || in1
func Or() *Gate {
	return New("Or", 2, 1, func(in, out []bool) {
		out[0] = in[0] || in[1]
	})
}

// Xor returns a XOR gate.
//
//	Inputs: 0, 1
//	Outputs: 0
//	Function: out = in0 != in1
func Xor() *Gate {
	return New("Xor", 2, 1, func(in, out []bool) {
		out[0] = in[0] != in[1]
	})
}

// Not returns a NOT gate.
//
//	Inputs: 0
//	Outputs: 0
//	Function: out = !in
func Not() *Gate {
	return New("Not", 1, 1, func(in, out []bool) {
		out[0] = !in[0]
	})
}

// Fan returns a fan-out gate copying its single input to n outputs.
//
//	Inputs: 0
//	Outputs: 0 .. n-1
//	Function: for j := range out { out[j] = in }
//
// Fan panics if n < 1.
func Fan(n int) *Gate {
	if n < 1 {
		panic("gatesim: Fan needs at least one output")
	}
	return New("Fan", 1, n, func(in, out []bool) {
		for j := range out {
			out[j] = in[0]
		}
	})
}

// SRLatch returns a set/reset latch, the one stateful primitive. It
// holds a single bit across recomputations:
//
//	Inputs: 0 (set), 1 (reset)
//	Outputs: 0 (q), 1 (notQ)
//	Function: set && !reset  -> q = 1
//	          reset         -> q = 0
//	          !set && !reset -> q unchanged
//
// Driving set and reset high together is undefined for a physical SR
// latch; this implementation resolves it deterministically in favor of
// reset. The stored bit starts at 0, and like every gate the outputs
// hold their construction value (q=0, notQ=0) until the first input
// change triggers a recomputation.
func SRLatch() *Gate {
	q := false
	return New("SRLatch", 2, 2, func(in, out []bool) {
		set, reset := in[0], in[1]
		switch {
		case reset:
			q = false
		case set:
			q = true
		}
		out[0], out[1] = q, !q
	})
}
