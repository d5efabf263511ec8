// Copyright 2026 The gatesim Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package netlist

import (
	"sort"

	"github.com/dlogic/gatesim"
	"github.com/dlogic/gatesim/gatelib"
	"github.com/pkg/errors"
)

// builders maps kind names usable in netlist files to gate
// constructors. n is the ways/bits parameter for the parameterized
// kinds and 0 means "use the kind's default".
var builders = map[string]func(n int) (*gatesim.Gate, error){
	"and":       fixed(gatesim.And),
	"or":        fixed(gatesim.Or),
	"xor":       fixed(gatesim.Xor),
	"not":       fixed(gatesim.Not),
	"srlatch":   fixed(gatesim.SRLatch),
	"nand":      fixed(gatelib.Nand),
	"nor":       fixed(gatelib.Nor),
	"xnor":      fixed(gatelib.Xnor),
	"and3":      fixed(gatelib.ThreeWayAnd),
	"and4":      fixed(gatelib.FourWayAnd),
	"or4":       fixed(gatelib.FourWayOr),
	"halfadder": fixed(gatelib.HalfAdder),
	"fulladder": fixed(gatelib.FullAdder),
	"mux2":      fixed(gatelib.Mux2),
	"mux4":      fixed(gatelib.Mux4),
	"decoder2":  fixed(gatelib.Decoder2),
	"encoder4":  fixed(gatelib.Encoder4),
	"fan": func(n int) (*gatesim.Gate, error) {
		if n == 0 {
			n = 2
		}
		if n < 1 {
			return nil, errors.Errorf("fan needs at least 1 way, got %d", n)
		}
		return gatesim.Fan(n), nil
	},
	"rippleadder": func(n int) (*gatesim.Gate, error) {
		if n == 0 {
			n = 4
		}
		if n < 1 {
			return nil, errors.Errorf("rippleadder needs at least 1 bit, got %d", n)
		}
		return gatelib.RippleAdder(n), nil
	},
}

func fixed(ctor func() *gatesim.Gate) func(n int) (*gatesim.Gate, error) {
	return func(n int) (*gatesim.Gate, error) {
		if n != 0 {
			return nil, errors.New("kind takes no size parameter")
		}
		return ctor(), nil
	}
}

// New returns a gate of the named kind with default parameters.
// Parameterized kinds default to Fan(2) and RippleAdder(4).
func New(kind string) (*gatesim.Gate, error) {
	b, ok := builders[kind]
	if !ok {
		return nil, errors.Errorf("unknown gate kind %q", kind)
	}
	return b(0)
}

// Kinds returns the names of all gate kinds usable in netlist files,
// sorted.
func Kinds() []string {
	ks := make([]string, 0, len(builders))
	for k := range builders {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}
