// Copyright 2026 The gatesim Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import (
	"github.com/pkg/errors"
)

// A Dir is the direction of a pin: Input or Output.
type Dir uint8

// Pin directions.
const (
	Input Dir = iota
	Output
)

func (d Dir) String() string {
	switch d {
	case Input:
		return "Input"
	case Output:
		return "Output"
	}
	return "Dir(unknown)"
}

// MaxDepth is the maximum number of nested propagation steps a single
// external Set call may trigger. A cascade that exceeds it is aborted
// with ErrFeedback.
//
// Any feed-forward circuit deep enough to hit this limit would be well
// past the point of being simulatable on a call stack anyway.
const MaxDepth = 4096

// ErrFeedback is returned when a propagation cascade fails to settle
// within MaxDepth nested steps, which on a finite circuit means the
// wiring contains a feedback cycle. The pin values reached when the
// cascade was aborted are unspecified.
var ErrFeedback = errors.New("feedback cycle detected")

// A Pin is a single boolean-valued terminal owned by one gate. Input
// pins feed the owning gate's recomputation; output pins forward their
// value to the input pins they are connected to.
//
// A Pin always holds a concrete value; it is false at construction.
type Pin struct {
	owner *Gate
	dir   Dir
	value bool
	conns []*Pin // Output pins only: forwarding targets, in registration order
}

// Value returns the pin's current value. It has no side effects.
func (p *Pin) Value() bool { return p.value }

// Dir returns the pin's direction.
func (p *Pin) Dir() Dir { return p.dir }

// Gate returns the gate that owns the pin.
func (p *Pin) Gate() *Gate { return p.owner }

// Set assigns v to the pin and propagates the change through the
// circuit. Setting a pin to its current value is a no-op. Otherwise,
// for an input pin the owning gate recomputes its outputs; for an
// output pin the value is forwarded to every connected input, in
// connection order. Either way the cascade runs depth-first and Set
// returns only once all reachable pins have settled.
//
// Set fails with ErrFeedback if the cascade exceeds MaxDepth nested
// steps, in which case downstream pin values are unspecified.
func (p *Pin) Set(v bool) error { return p.set(v, 0) }

func (p *Pin) set(v bool, depth int) error {
	if p.value == v {
		return nil
	}
	if depth >= MaxDepth {
		return errors.Wrapf(ErrFeedback, "propagation from %s did not settle after %d steps", p.owner.name, depth)
	}
	p.value = v
	if p.dir == Input {
		return p.owner.recompute(depth + 1)
	}
	for _, dst := range p.conns {
		if err := dst.set(v, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// Connect registers dst as a forwarding target of p, so that every
// value change on p is pushed to dst. It is only valid from an output
// pin to an input pin of a different gate; anything else is rejected
// before any state is mutated. Connecting the same target twice is
// idempotent.
//
// One output may drive any number of inputs. The reverse is not
// checked: wiring two outputs to the same input is not rejected, and
// leaves the input holding whichever value arrived last.
func (p *Pin) Connect(dst *Pin) error {
	if p.dir != Output {
		return errors.Errorf("cannot connect from an input pin of %s", p.owner.name)
	}
	if dst == nil {
		return errors.New("cannot connect to a nil pin")
	}
	if dst.dir != Input {
		return errors.Errorf("cannot connect to an output pin of %s", dst.owner.name)
	}
	if dst.owner == p.owner {
		return errors.Errorf("cannot connect %s to itself: immediate feedback loop", p.owner.name)
	}
	for _, c := range p.conns {
		if c == dst {
			return nil
		}
	}
	p.conns = append(p.conns, dst)
	return nil
}
