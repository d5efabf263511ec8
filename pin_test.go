// Copyright 2026 The gatesim Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim_test

import (
	"testing"

	"github.com/dlogic/gatesim"
	"github.com/pkg/errors"
)

// probe returns a 1-to-1 gate that copies its input and counts how
// many times its rule was evaluated.
func probe() (*gatesim.Gate, *int) {
	n := new(int)
	g := gatesim.New("Probe", 1, 1, func(in, out []bool) {
		*n++
		out[0] = in[0]
	})
	return g, n
}

func Test_set_idempotent(t *testing.T) {
	g, n := probe()
	if err := g.SetInput(0, true); err != nil {
		t.Fatal(err)
	}
	if *n != 1 {
		t.Fatalf("recomputed %d times, want 1", *n)
	}
	// same value again: no recompute
	if err := g.SetInput(0, true); err != nil {
		t.Fatal(err)
	}
	if *n != 1 {
		t.Fatalf("recomputed %d times after no-op set, want 1", *n)
	}
	if err := g.SetInput(0, false); err != nil {
		t.Fatal(err)
	}
	if *n != 2 {
		t.Fatalf("recomputed %d times, want 2", *n)
	}
	// setting false on a fresh pin is a no-op as well
	fresh, m := probe()
	if err := fresh.SetInput(0, false); err != nil {
		t.Fatal(err)
	}
	if *m != 0 {
		t.Fatalf("recomputed %d times on default value, want 0", *m)
	}
}

func Test_fanout(t *testing.T) {
	const targets = 5
	src := gatesim.Not()
	out, err := src.Output(0)
	if err != nil {
		t.Fatal(err)
	}
	var sinks []*gatesim.Gate
	for i := 0; i < targets; i++ {
		and := gatesim.And()
		if err := and.SetInput(1, true); err != nil {
			t.Fatal(err)
		}
		in, err := and.Input(0)
		if err != nil {
			t.Fatal(err)
		}
		if err := out.Connect(in); err != nil {
			t.Fatal(err)
		}
		sinks = append(sinks, and)
	}
	// in=false drives the Not output high, which must reach and
	// recompute every sink before Set returns
	if err := src.SetInput(0, true); err != nil {
		t.Fatal(err)
	}
	if err := src.SetInput(0, false); err != nil {
		t.Fatal(err)
	}
	for i, and := range sinks {
		in, _ := and.Input(0)
		if !in.Value() {
			t.Errorf("sink %d input = false, want true", i)
		}
		v, err := and.OutputValue(0)
		if err != nil {
			t.Fatal(err)
		}
		if !v {
			t.Errorf("sink %d did not recompute: %s", i, and)
		}
	}
}

func Test_connect_invalid(t *testing.T) {
	a, b := gatesim.And(), gatesim.Or()
	aIn, _ := a.Input(0)
	aOut, _ := a.Output(0)
	bIn, _ := b.Input(0)
	bOut, _ := b.Output(0)

	td := []struct {
		name string
		src  *gatesim.Pin
		dst  *gatesim.Pin
	}{
		{"from input", aIn, bIn},
		{"to output", aOut, bOut},
		{"same gate", aOut, aIn},
		{"nil target", aOut, nil},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			if err := d.src.Connect(d.dst); err == nil {
				t.Error("Connect succeeded, want error")
			}
		})
	}

	// rejected calls must not have mutated topology: driving a still
	// leaves b untouched
	if err := a.SetInput(0, true); err != nil {
		t.Fatal(err)
	}
	if bIn.Value() || bOut.Value() {
		t.Errorf("rejected Connect mutated wiring: %s", b)
	}
}

func Test_connect_duplicate(t *testing.T) {
	src := gatesim.Not()
	dst, n := probe()
	out, _ := src.Output(0)
	in, _ := dst.Input(0)
	if err := out.Connect(in); err != nil {
		t.Fatal(err)
	}
	if err := out.Connect(in); err != nil {
		t.Fatal(err)
	}
	if err := src.SetInput(0, true); err != nil {
		t.Fatal(err)
	}
	if err := src.SetInput(0, false); err != nil {
		t.Fatal(err)
	}
	// the duplicate must not forward the value a second time
	if *n != 1 {
		t.Errorf("target recomputed %d times, want 1", *n)
	}
}

func Test_feedback_detected(t *testing.T) {
	// a ring of three inverters has no stable state: the guard must
	// report the cycle instead of exhausting the stack. Each toggle
	// pushes a change one gate further around the ring, so the
	// instability only shows once a change makes it all the way back
	// to n1's input.
	n1, n2, n3 := gatesim.Not(), gatesim.Not(), gatesim.Not()
	for _, w := range [][2]*gatesim.Gate{{n1, n2}, {n2, n3}, {n3, n1}} {
		out, _ := w[0].Output(0)
		in, _ := w[1].Input(0)
		if err := out.Connect(in); err != nil {
			t.Fatal(err)
		}
	}
	var err error
	for _, v := range []bool{true, false, true, false} {
		if err = n1.SetInput(0, v); err != nil {
			break
		}
	}
	if err == nil {
		t.Fatal("oscillating ring settled, want ErrFeedback")
	}
	if errors.Cause(err) != gatesim.ErrFeedback {
		t.Fatalf("got %v, want ErrFeedback", err)
	}
}

func Test_feedback_even_ring_settles(t *testing.T) {
	// two inverters in a ring reach a fixed point: the second write
	// back into n1's input carries the value it already holds, and the
	// no-op rule stops the cascade. Documented behavior, not an error.
	n1, n2 := gatesim.Not(), gatesim.Not()
	o1, _ := n1.Output(0)
	i2, _ := n2.Input(0)
	o2, _ := n2.Output(0)
	i1, _ := n1.Input(0)
	if err := o1.Connect(i2); err != nil {
		t.Fatal(err)
	}
	if err := o2.Connect(i1); err != nil {
		t.Fatal(err)
	}
	// toggle until the loop carries a value around: the write back into
	// n1's input matches what the external driver set, so the cascade
	// ends on the no-op rule
	for _, v := range []bool{true, false, true} {
		if err := n1.SetInput(0, v); err != nil {
			t.Fatal(err)
		}
	}
	if v, _ := n1.OutputValue(0); v {
		t.Errorf("n1 out = 1, want 0")
	}
	if v, _ := n2.OutputValue(0); !v {
		t.Errorf("n2 out = 0, want 1")
	}
}

func Test_pin_accessors(t *testing.T) {
	g := gatesim.Not()
	in, err := g.Input(0)
	if err != nil {
		t.Fatal(err)
	}
	if in.Dir() != gatesim.Input {
		t.Errorf("in.Dir() = %v, want Input", in.Dir())
	}
	if in.Gate() != g {
		t.Error("in.Gate() is not the owning gate")
	}
	out, err := g.Output(0)
	if err != nil {
		t.Fatal(err)
	}
	if out.Dir() != gatesim.Output {
		t.Errorf("out.Dir() = %v, want Output", out.Dir())
	}
	if in.Value() || out.Value() {
		t.Error("pins not false at construction")
	}
}
