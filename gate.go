// Copyright 2026 The gatesim Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import (
	"strings"

	"github.com/pkg/errors"
)

// A Logic is the recomputation rule of a primitive gate. It is called
// with the gate's current input values in in and its current output
// values in out, and must overwrite out with the new output values.
//
// For combinational gates the rule must be a pure function of in.
// Stateful primitives may close over extra state (see SRLatch), which
// is the only supported way to express memory: expressing it through a
// wired feedback cycle instead trips the propagation guard.
type Logic func(in, out []bool)

// A Gate is a fixed-arity unit with input pins, output pins and a rule
// mapping the former to the latter. Gates come in two kinds: primitive
// gates evaluate a Logic function, composite gates delegate to an
// internal sub-network wired together at construction time. Both kinds
// expose the same pin surface.
//
// Arity is fixed at construction and pin positions are stable, so pins
// are addressed by index for wiring.
type Gate struct {
	name  string
	in    []*Pin
	out   []*Pin
	logic Logic   // nil for composites
	subs  []*Gate // sub-network of a composite
}

// New returns a primitive gate with nIn input pins, nOut output pins
// and the given recomputation rule. All pins start out false; the rule
// is not evaluated until an input changes.
//
// New panics if the arity is negative or logic is nil, since a gate
// kind with a broken blueprint can never be used.
func New(name string, nIn, nOut int, logic Logic) *Gate {
	if nIn < 0 || nOut < 0 {
		panic("gatesim: negative arity for gate " + name)
	}
	if logic == nil {
		panic("gatesim: nil logic for gate " + name)
	}
	g := &Gate{name: name, logic: logic}
	g.in = make([]*Pin, nIn)
	for i := range g.in {
		g.in[i] = &Pin{owner: g, dir: Input}
	}
	g.out = make([]*Pin, nOut)
	for j := range g.out {
		g.out[j] = &Pin{owner: g, dir: Output}
	}
	return g
}

// NewComposite returns a composite gate whose boundary is nIn input
// pins and nOut output pins, delegating all behavior to the given
// sub-gates. The boundary pin slots start out empty: the constructor
// of a composite must wire the sub-network with Connect and then bind
// every slot to a sub-gate pin with AliasInput and AliasOutput before
// the gate is used.
func NewComposite(name string, nIn, nOut int, subs ...*Gate) *Gate {
	if nIn < 0 || nOut < 0 {
		panic("gatesim: negative arity for gate " + name)
	}
	return &Gate{
		name: name,
		in:   make([]*Pin, nIn),
		out:  make([]*Pin, nOut),
		subs: subs,
	}
}

// AliasInput binds boundary input slot i to p, an input pin of one of
// the composite's sub-gates. The slot is an alias, not a copy: setting
// the composite's input i sets p itself, which recomputes p's owner
// and lets the change cascade through the sub-network.
func (g *Gate) AliasInput(i int, p *Pin) error {
	if i < 0 || i >= len(g.in) {
		return errors.Errorf("no input pin %d on %s", i, g.name)
	}
	if g.logic != nil {
		return errors.Errorf("%s is a primitive gate: cannot alias its pins", g.name)
	}
	if p == nil || p.dir != Input {
		return errors.Errorf("input %d of %s must alias an input pin", i, g.name)
	}
	g.in[i] = p
	return nil
}

// AliasOutput binds boundary output slot j to p, an output pin of one
// of the composite's sub-gates. Reading the composite's output j reads
// p itself.
func (g *Gate) AliasOutput(j int, p *Pin) error {
	if j < 0 || j >= len(g.out) {
		return errors.Errorf("no output pin %d on %s", j, g.name)
	}
	if g.logic != nil {
		return errors.Errorf("%s is a primitive gate: cannot alias its pins", g.name)
	}
	if p == nil || p.dir != Output {
		return errors.Errorf("output %d of %s must alias an output pin", j, g.name)
	}
	g.out[j] = p
	return nil
}

// Chain returns a composite gate connecting a's output pins one to one
// into b's input pins. The chain's inputs are a's inputs and its
// outputs are b's outputs. It fails if a's output arity does not match
// b's input arity.
func Chain(name string, a, b *Gate) (*Gate, error) {
	if len(a.out) != len(b.in) {
		return nil, errors.Errorf("cannot chain %d %s outputs into %d %s inputs",
			len(a.out), a.name, len(b.in), b.name)
	}
	g := NewComposite(name, len(a.in), len(b.out), a, b)
	for i, p := range a.in {
		g.in[i] = p
	}
	for j, p := range b.out {
		g.out[j] = p
	}
	for i, src := range a.out {
		if err := src.Connect(b.in[i]); err != nil {
			return nil, errors.Wrapf(err, "chain %s", name)
		}
	}
	return g, nil
}

// Name returns the gate's name.
func (g *Gate) Name() string { return g.name }

// NumInputs returns the gate's input pin count.
func (g *Gate) NumInputs() int { return len(g.in) }

// NumOutputs returns the gate's output pin count.
func (g *Gate) NumOutputs() int { return len(g.out) }

// Input returns input pin i. Indexing outside the gate's arity or
// hitting a composite slot that was never aliased is an error.
func (g *Gate) Input(i int) (*Pin, error) {
	if i < 0 || i >= len(g.in) {
		return nil, errors.Errorf("no input pin %d on %s", i, g.name)
	}
	if g.in[i] == nil {
		return nil, errors.Errorf("input pin %d of %s is not aliased", i, g.name)
	}
	return g.in[i], nil
}

// Output returns output pin j. Indexing outside the gate's arity or
// hitting a composite slot that was never aliased is an error.
func (g *Gate) Output(j int) (*Pin, error) {
	if j < 0 || j >= len(g.out) {
		return nil, errors.Errorf("no output pin %d on %s", j, g.name)
	}
	if g.out[j] == nil {
		return nil, errors.Errorf("output pin %d of %s is not aliased", j, g.name)
	}
	return g.out[j], nil
}

// SetInput drives input pin i with v and lets the change propagate.
// It is shorthand for Input(i) followed by Set.
func (g *Gate) SetInput(i int, v bool) error {
	p, err := g.Input(i)
	if err != nil {
		return err
	}
	return p.Set(v)
}

// OutputValue reads the settled value of output pin j.
func (g *Gate) OutputValue(j int) (bool, error) {
	p, err := g.Output(j)
	if err != nil {
		return false, err
	}
	return p.Value(), nil
}

// Size returns the number of primitive gates in g's network: 1 for a
// primitive, the recursive sum over the sub-network for a composite.
func (g *Gate) Size() int {
	if len(g.subs) == 0 {
		return 1
	}
	n := 0
	for _, s := range g.subs {
		n += s.Size()
	}
	return n
}

// recompute evaluates the gate's rule against its current input values
// and pushes the results to the output pins. Outputs whose value did
// not change do not cascade.
func (g *Gate) recompute(depth int) error {
	if g.logic == nil {
		// composite: boundary pins are sub-gate pins, the sub-network
		// cascades on its own
		return nil
	}
	in := make([]bool, len(g.in))
	for i, p := range g.in {
		in[i] = p.value
	}
	out := make([]bool, len(g.out))
	for j, p := range g.out {
		out[j] = p.value
	}
	g.logic(in, out)
	for j, p := range g.out {
		if err := p.set(out[j], depth); err != nil {
			return err
		}
	}
	return nil
}

// String renders the gate's current pin values in the form
//
//	And<In=[1, 0] Out=[0]>
//
// listing input then output values as 0/1. It is meant for truth table
// dumps and test diagnostics, not as a persisted format.
func (g *Gate) String() string {
	var b strings.Builder
	b.WriteString(g.name)
	b.WriteString("<In=")
	writePinValues(&b, g.in)
	b.WriteString(" Out=")
	writePinValues(&b, g.out)
	b.WriteByte('>')
	return b.String()
}

func writePinValues(b *strings.Builder, pins []*Pin) {
	b.WriteByte('[')
	for i, p := range pins {
		if i > 0 {
			b.WriteString(", ")
		}
		if p != nil && p.value {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	b.WriteByte(']')
}
