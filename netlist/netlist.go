// Copyright 2026 The gatesim Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package netlist loads circuit descriptions from YAML documents and
builds the live gate network.

A netlist names a set of gates, the wires between their pins, and the
boundary pins exposed to the outside:

	name: demo
	gates:
	  - name: x1
	    kind: xor
	  - name: n1
	    kind: not
	wires:
	  - from: x1.out[0]
	    to: n1.in[0]
	inputs:
	  a: x1.in[0]
	  b: x1.in[1]
	outputs:
	  q: n1.out[0]

Pin references have the form gate.in[i] or gate.out[i]. Wires run from
an output pin to an input pin; boundary inputs name input pins and
boundary outputs name output pins. Validation reports every defect of
a document in one aggregated error, and a circuit with any defect is
not built at all.
*/
package netlist

import (
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/dlogic/gatesim"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

type document struct {
	Name    string            `yaml:"name"`
	Gates   []gateDecl        `yaml:"gates"`
	Wires   []wireDecl        `yaml:"wires"`
	Inputs  map[string]string `yaml:"inputs"`
	Outputs map[string]string `yaml:"outputs"`
}

type gateDecl struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
	// Size parameterizes the fan (ways) and rippleadder (bits) kinds.
	Size int `yaml:"size,omitempty"`
}

type wireDecl struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// A Circuit is a gate network built from a netlist description, driven
// and observed through its named boundary pins.
type Circuit struct {
	name    string
	gates   map[string]*gatesim.Gate
	inputs  map[string]*gatesim.Pin
	outputs map[string]*gatesim.Pin
}

// LoadFile builds the circuit described by the YAML netlist at path.
func LoadFile(path string) (*Circuit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open netlist")
	}
	defer f.Close()
	c, err := Load(f)
	return c, errors.Wrapf(err, "netlist %s", path)
}

// Load builds the circuit described by the YAML netlist read from r.
// All validation defects of the document are reported in a single
// aggregated error; no circuit is returned unless the whole document
// is sound.
func Load(r io.Reader) (*Circuit, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decode netlist")
	}

	c := &Circuit{
		name:    doc.Name,
		gates:   make(map[string]*gatesim.Gate, len(doc.Gates)),
		inputs:  make(map[string]*gatesim.Pin, len(doc.Inputs)),
		outputs: make(map[string]*gatesim.Pin, len(doc.Outputs)),
	}

	var errs error
	for _, d := range doc.Gates {
		if d.Name == "" {
			errs = multierr.Append(errs, errors.New("gate with empty name"))
			continue
		}
		if _, dup := c.gates[d.Name]; dup {
			errs = multierr.Append(errs, errors.Errorf("duplicate gate name %q", d.Name))
			continue
		}
		b, ok := builders[d.Kind]
		if !ok {
			errs = multierr.Append(errs, errors.Errorf("gate %q: unknown kind %q", d.Name, d.Kind))
			continue
		}
		g, err := b(d.Size)
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "gate %q", d.Name))
			continue
		}
		c.gates[d.Name] = g
	}

	// resolve every endpoint before connecting anything, so a bad
	// document does not leave a half-wired graph behind
	type wire struct{ from, to *gatesim.Pin }
	wires := make([]wire, 0, len(doc.Wires))
	for _, w := range doc.Wires {
		from, err := c.resolve(w.From, gatesim.Output)
		if err != nil {
			errs = multierr.Append(errs, errors.Wrap(err, "wire from"))
		}
		to, err := c.resolve(w.To, gatesim.Input)
		if err != nil {
			errs = multierr.Append(errs, errors.Wrap(err, "wire to"))
		}
		if from != nil && to != nil {
			wires = append(wires, wire{from, to})
		}
	}
	for name, ref := range doc.Inputs {
		p, err := c.resolve(ref, gatesim.Input)
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "input %q", name))
			continue
		}
		c.inputs[name] = p
	}
	for name, ref := range doc.Outputs {
		p, err := c.resolve(ref, gatesim.Output)
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "output %q", name))
			continue
		}
		c.outputs[name] = p
	}
	if errs != nil {
		return nil, errs
	}

	for _, w := range wires {
		if err := w.from.Connect(w.to); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	if errs != nil {
		return nil, errs
	}
	return c, nil
}

// resolve parses a pin reference of the form gate.in[i] or gate.out[i]
// and checks that the pin has the wanted direction.
func (c *Circuit) resolve(ref string, want gatesim.Dir) (*gatesim.Pin, error) {
	dot := strings.IndexByte(ref, '.')
	if dot <= 0 {
		return nil, errors.Errorf("pin reference %q: want gate.in[i] or gate.out[i]", ref)
	}
	g, ok := c.gates[ref[:dot]]
	if !ok {
		return nil, errors.Errorf("pin reference %q: unknown gate %q", ref, ref[:dot])
	}
	rest := ref[dot+1:]
	lb := strings.IndexByte(rest, '[')
	if lb < 0 || !strings.HasSuffix(rest, "]") {
		return nil, errors.Errorf("pin reference %q: want gate.in[i] or gate.out[i]", ref)
	}
	idx, err := strconv.Atoi(rest[lb+1 : len(rest)-1])
	if err != nil {
		return nil, errors.Errorf("pin reference %q: bad pin index", ref)
	}
	var p *gatesim.Pin
	switch rest[:lb] {
	case "in":
		p, err = g.Input(idx)
	case "out":
		p, err = g.Output(idx)
	default:
		return nil, errors.Errorf("pin reference %q: want gate.in[i] or gate.out[i]", ref)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "pin reference %q", ref)
	}
	if p.Dir() != want {
		return nil, errors.Errorf("pin reference %q: not an %s pin", ref, strings.ToLower(want.String()))
	}
	return p, nil
}

// Name returns the circuit's name from the netlist document.
func (c *Circuit) Name() string { return c.name }

// Gate returns the named gate.
func (c *Circuit) Gate(name string) (*gatesim.Gate, bool) {
	g, ok := c.gates[name]
	return g, ok
}

// SetInput drives the named boundary input and lets the change
// propagate through the circuit.
func (c *Circuit) SetInput(name string, v bool) error {
	p, ok := c.inputs[name]
	if !ok {
		return errors.Errorf("no input %q in circuit %s", name, c.name)
	}
	return errors.Wrapf(p.Set(v), "input %q", name)
}

// Output reads the settled value of the named boundary output.
func (c *Circuit) Output(name string) (bool, error) {
	p, ok := c.outputs[name]
	if !ok {
		return false, errors.Errorf("no output %q in circuit %s", name, c.name)
	}
	return p.Value(), nil
}

// Inputs returns the boundary input names, sorted.
func (c *Circuit) Inputs() []string { return sortedKeys(c.inputs) }

// Outputs returns the boundary output names, sorted.
func (c *Circuit) Outputs() []string { return sortedKeys(c.outputs) }

func sortedKeys(m map[string]*gatesim.Pin) []string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}
