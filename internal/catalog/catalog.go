// Package catalog is the declarative description of every indicator
// function: its inputs, optional parameters and outputs.
package catalog

import (
	_ "embed"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/newthinker/tacall/internal/core"
	"github.com/newthinker/tacall/internal/native"
	"gopkg.in/yaml.v3"
)

//go:embed functions.yaml
var functionsYAML []byte

// OptionType is the value domain of an optional parameter.
type OptionType string

const (
	OptionInteger OptionType = "integer"
	OptionReal    OptionType = "real"
	OptionMAType  OptionType = "matype"
)

// OutputKind is the element type the native routine writes.
type OutputKind string

const (
	OutputReal    OutputKind = "real"
	OutputInteger OutputKind = "integer"
)

// maTypeMax is the highest moving-average selector (T3).
const maTypeMax = 8

// InputSpec describes one input sequence.
type InputSpec struct {
	Name string          `yaml:"name" json:"name"`
	Kind core.SeriesKind `yaml:"kind" json:"kind"`
}

// UnmarshalYAML accepts either a bare kind or a {name, kind} map.
func (in *InputSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		in.Name = node.Value
		in.Kind = core.SeriesKind(node.Value)
		return nil
	}
	type plain InputSpec
	return node.Decode((*plain)(in))
}

// OptionSpec describes one optional scalar parameter.
type OptionSpec struct {
	Name    string     `yaml:"name" json:"name"`
	Type    OptionType `yaml:"type" json:"type"`
	Default float64    `yaml:"default" json:"default"`
	Min     *float64   `yaml:"min,omitempty" json:"min,omitempty"`
	Max     *float64   `yaml:"max,omitempty" json:"max,omitempty"`
}

// Integer reports whether the native side expects an integer.
func (o OptionSpec) Integer() bool {
	return o.Type == OptionInteger || o.Type == OptionMAType
}

// Check validates v against the declared range.
func (o OptionSpec) Check(v float64) error {
	if math.IsNaN(v) {
		return fmt.Errorf("%s is NaN", o.Name)
	}
	if o.Min != nil && v < *o.Min {
		return fmt.Errorf("%s=%g below minimum %g", o.Name, v, *o.Min)
	}
	if o.Max != nil && v > *o.Max {
		return fmt.Errorf("%s=%g above maximum %g", o.Name, v, *o.Max)
	}
	if o.Type == OptionMAType && (v < 0 || v > maTypeMax) {
		return fmt.Errorf("%s=%g is not a moving average type", o.Name, v)
	}
	return nil
}

// OutputSpec describes one output sequence.
type OutputSpec struct {
	Name string     `yaml:"name" json:"name"`
	Kind OutputKind `yaml:"kind" json:"kind"`
}

// UnmarshalYAML accepts either a bare name (real output) or a map.
func (out *OutputSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		out.Name = node.Value
		out.Kind = OutputReal
		return nil
	}
	type plain OutputSpec
	if err := node.Decode((*plain)(out)); err != nil {
		return err
	}
	if out.Kind == "" {
		out.Kind = OutputReal
	}
	return nil
}

// Function is one catalog entry.
type Function struct {
	Name    string       `yaml:"name" json:"name"`
	Group   string       `yaml:"group" json:"group"`
	Hint    string       `yaml:"hint" json:"hint"`
	Inputs  []InputSpec  `yaml:"inputs" json:"inputs"`
	Options []OptionSpec `yaml:"options" json:"options"`
	Outputs []OutputSpec `yaml:"outputs" json:"outputs"`
}

// ResolveOptions maps positional values onto the declared options.
// Missing trailing values take their defaults.
func (f *Function) ResolveOptions(values []float64) ([]native.Option, error) {
	if len(values) > len(f.Options) {
		return nil, core.Errorf(core.ErrInvalidInput,
			"%s takes %d parameters, got %d", f.Name, len(f.Options), len(values))
	}
	opts := make([]native.Option, len(f.Options))
	for i, spec := range f.Options {
		v := spec.Default
		if i < len(values) {
			v = values[i]
		}
		if spec.Integer() && v != math.Trunc(v) {
			return nil, core.Errorf(core.ErrInvalidInput,
				"%s: %s must be an integer, got %g", f.Name, spec.Name, v)
		}
		opts[i] = native.Option{Name: spec.Name, Value: v, Integer: spec.Integer()}
	}
	return opts, nil
}

// ResolveNamed maps named values onto the declared options, in order.
func (f *Function) ResolveNamed(values map[string]float64) ([]native.Option, error) {
	positional := make([]float64, len(f.Options))
	seen := 0
	for i, spec := range f.Options {
		positional[i] = spec.Default
		if v, ok := values[spec.Name]; ok {
			positional[i] = v
			seen++
		}
	}
	if seen != len(values) {
		for name := range values {
			if f.Option(name) == nil {
				return nil, core.Errorf(core.ErrInvalidInput, "%s has no parameter %q", f.Name, name)
			}
		}
	}
	return f.ResolveOptions(positional)
}

// CheckOptions validates resolved options against the declared ranges.
func (f *Function) CheckOptions(opts []native.Option) error {
	if len(opts) != len(f.Options) {
		return fmt.Errorf("%s takes %d parameters, got %d", f.Name, len(f.Options), len(opts))
	}
	for i, spec := range f.Options {
		if err := spec.Check(opts[i].Value); err != nil {
			return fmt.Errorf("%s: %w", f.Name, err)
		}
	}
	return nil
}

// Option returns the spec of a named option.
func (f *Function) Option(name string) *OptionSpec {
	for i := range f.Options {
		if f.Options[i].Name == name {
			return &f.Options[i]
		}
	}
	return nil
}

// OutputNames lists the output names in order.
func (f *Function) OutputNames() []string {
	names := make([]string, len(f.Outputs))
	for i, out := range f.Outputs {
		names[i] = out.Name
	}
	return names
}

// Catalog indexes functions by name.
type Catalog struct {
	funcs  []*Function
	byName map[string]*Function
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the embedded catalog. It panics if the embedded file is
// malformed, which the package tests rule out.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(functionsYAML)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded functions.yaml: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Load reads a catalog from r.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var funcs []*Function
	if err := yaml.Unmarshal(data, &funcs); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	c := &Catalog{byName: make(map[string]*Function, len(funcs))}
	for _, f := range funcs {
		f.Name = strings.ToUpper(f.Name)
		if err := validate(f); err != nil {
			return nil, err
		}
		if _, dup := c.byName[f.Name]; dup {
			return nil, fmt.Errorf("duplicate function %s", f.Name)
		}
		c.byName[f.Name] = f
		c.funcs = append(c.funcs, f)
	}
	sort.Slice(c.funcs, func(i, j int) bool { return c.funcs[i].Name < c.funcs[j].Name })
	return c, nil
}

func validate(f *Function) error {
	if f.Name == "" {
		return fmt.Errorf("function without name")
	}
	if len(f.Inputs) == 0 {
		return fmt.Errorf("%s declares no inputs", f.Name)
	}
	if len(f.Outputs) == 0 {
		return fmt.Errorf("%s declares no outputs", f.Name)
	}
	for _, in := range f.Inputs {
		switch in.Kind {
		case core.SeriesReal, core.SeriesPeriods, core.SeriesOpen, core.SeriesHigh,
			core.SeriesLow, core.SeriesClose, core.SeriesVolume:
		default:
			return fmt.Errorf("%s: input %q has unknown kind %q", f.Name, in.Name, in.Kind)
		}
	}
	for _, opt := range f.Options {
		switch opt.Type {
		case OptionInteger, OptionReal, OptionMAType:
		default:
			return fmt.Errorf("%s: option %q has unknown type %q", f.Name, opt.Name, opt.Type)
		}
		if err := opt.Check(opt.Default); err != nil {
			return fmt.Errorf("%s: default out of range: %w", f.Name, err)
		}
	}
	return nil
}

// Lookup finds a function by case-insensitive name.
func (c *Catalog) Lookup(name string) (*Function, error) {
	f, ok := c.byName[strings.ToUpper(name)]
	if !ok {
		return nil, core.Errorf(core.ErrUnknownFunction, "%q", name)
	}
	return f, nil
}

// All returns every function sorted by name.
func (c *Catalog) All() []*Function {
	out := make([]*Function, len(c.funcs))
	copy(out, c.funcs)
	return out
}

// Groups returns the distinct group names, sorted.
func (c *Catalog) Groups() []string {
	seen := make(map[string]bool)
	var groups []string
	for _, f := range c.funcs {
		if !seen[f.Group] {
			seen[f.Group] = true
			groups = append(groups, f.Group)
		}
	}
	sort.Strings(groups)
	return groups
}

// ByGroup returns the functions of one group, matched case-insensitively.
func (c *Catalog) ByGroup(group string) []*Function {
	var out []*Function
	for _, f := range c.funcs {
		if strings.EqualFold(f.Group, group) {
			out = append(out, f)
		}
	}
	return out
}

// Len returns the number of functions.
func (c *Catalog) Len() int { return len(c.funcs) }
