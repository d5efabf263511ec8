// Copyright 2026 The gatesim Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package netlist_test

import (
	"strings"
	"testing"

	"github.com/dlogic/gatesim/netlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

const halfAdderYAML = `
name: half adder
gates:
  - name: fa
    kind: fan
  - name: fb
    kind: fan
  - name: x1
    kind: xor
  - name: a1
    kind: and
wires:
  - from: fa.out[0]
    to: x1.in[0]
  - from: fa.out[1]
    to: a1.in[0]
  - from: fb.out[0]
    to: x1.in[1]
  - from: fb.out[1]
    to: a1.in[1]
inputs:
  a: fa.in[0]
  b: fb.in[0]
outputs:
  sum: x1.out[0]
  carry: a1.out[0]
`

func TestLoad_halfAdder(t *testing.T) {
	c, err := netlist.Load(strings.NewReader(halfAdderYAML))
	require.NoError(t, err)
	assert.Equal(t, "half adder", c.Name())
	assert.Equal(t, []string{"a", "b"}, c.Inputs())
	assert.Equal(t, []string{"carry", "sum"}, c.Outputs())

	td := []struct {
		a, b       bool
		sum, carry bool
	}{
		{true, true, false, true},
		{true, false, true, false},
		{false, true, true, false},
		{false, false, false, false},
	}
	for _, d := range td {
		require.NoError(t, c.SetInput("a", d.a))
		require.NoError(t, c.SetInput("b", d.b))
		sum, err := c.Output("sum")
		require.NoError(t, err)
		carry, err := c.Output("carry")
		require.NoError(t, err)
		assert.Equal(t, d.sum, sum, "sum of %v %v", d.a, d.b)
		assert.Equal(t, d.carry, carry, "carry of %v %v", d.a, d.b)
	}
}

func TestLoad_parameterizedKinds(t *testing.T) {
	c, err := netlist.Load(strings.NewReader(`
name: bus
gates:
  - name: add
    kind: rippleadder
    size: 2
  - name: f
    kind: fan
    size: 3
inputs:
  cin: add.in[4]
outputs:
  cout: add.out[2]
`))
	require.NoError(t, err)
	add, ok := c.Gate("add")
	require.True(t, ok)
	assert.Equal(t, 5, add.NumInputs())
	f, ok := c.Gate("f")
	require.True(t, ok)
	assert.Equal(t, 3, f.NumOutputs())
}

func TestLoad_invalid(t *testing.T) {
	// every defect of the document must surface in one error
	_, err := netlist.Load(strings.NewReader(`
name: broken
gates:
  - name: g1
    kind: frobnicator
  - name: g2
    kind: and
  - name: g2
    kind: or
  - name: g3
    kind: and
    size: 3
wires:
  - from: g2.out[5]
    to: g2.in[0]
  - from: nope.out[0]
    to: g2.in[1]
  - from: g2.in[0]
    to: g2.out[0]
inputs:
  a: g2.in[7]
`))
	require.Error(t, err)
	msgs := err.Error()
	assert.Contains(t, msgs, `unknown kind "frobnicator"`)
	assert.Contains(t, msgs, `duplicate gate name "g2"`)
	assert.Contains(t, msgs, "no size parameter")
	assert.Contains(t, msgs, "no output pin 5")
	assert.Contains(t, msgs, `unknown gate "nope"`)
	assert.Contains(t, msgs, "no input pin 7")
	assert.GreaterOrEqual(t, len(multierr.Errors(err)), 6)
}

func TestLoad_unknownField(t *testing.T) {
	_, err := netlist.Load(strings.NewReader(`
name: typo
gatez:
  - name: g1
    kind: and
`))
	require.Error(t, err)
}

func TestNew(t *testing.T) {
	for _, kind := range netlist.Kinds() {
		g, err := netlist.New(kind)
		require.NoError(t, err, kind)
		require.NotNil(t, g, kind)
	}
	_, err := netlist.New("warpcore")
	require.Error(t, err)
}
