// Package system turns style props into style declarations.
//
// A Parser is built once from a Config, a table mapping prop names to either
// a Descriptor or a prebuilt StyleFunc, and then applied to any number of
// Props. For every prop it recognizes, the parser picks the scale from the
// props theme, resolves the value against it and merges resulting
// declarations into one Style. Sequence values expand into media query blocks,
// one per theme breakpoint.
//
// Parsers never fail: unknown props are ignored, values missing from a scale
// pass through unchanged and a missing theme means built in defaults. All
// produced functions are immutable and can be used concurrently.
package system

import (
	"maps"
	"slices"
	"sort"

	"github.com/maruel/natural"

	"ssys/theme"
)

// Entry configures one style prop. It is either a Descriptor or a prebuilt
// *StyleFunc used as is.
type Entry interface {
	entry()
}

// Descriptor declares style function for a prop.
type Descriptor struct {
	// Property and Properties name output declarations. Empty and duplicate
	// names are dropped.
	Property   string
	Properties []string
	// Scale is theme path of the scale to resolve values against.
	Scale string
	// DefaultScale is used when theme has no Scale.
	DefaultScale any
	// Transform replaces default scale resolution.
	Transform Transform
}

func (Descriptor) entry() {}

func (d Descriptor) build() *StyleFunc {
	names := make([]string, 0, len(d.Properties)+1)
	for _, name := range append([]string{d.Property}, d.Properties...) {
		if name == "" || slices.Contains(names, name) {
			continue
		}
		names = append(names, name)
	}
	return NewStyleFunc(names, d.Scale, d.Transform, theme.Generic(d.DefaultScale))
}

// Config maps prop names to their entries.
type Config map[string]Entry

// Parser is a parse function built by System. Its configuration is kept so
// parsers can be composed.
type Parser struct {
	config Config
	keys   []string
	funcs  map[string]*StyleFunc
}

// System builds parser for config. Entries are resolved to style functions
// here, once; nil entries are ignored.
func System(config Config) *Parser {
	p := &Parser{
		config: make(Config, len(config)),
		funcs:  make(map[string]*StyleFunc, len(config)),
	}
	for key, e := range config {
		var fn *StyleFunc
		switch c := e.(type) {
		case *StyleFunc:
			fn = c
		case Descriptor:
			fn = c.build()
		case *Descriptor:
			if c != nil {
				fn = c.build()
			}
		}
		if fn == nil {
			continue
		}
		p.config[key] = e
		p.funcs[key] = fn
		p.keys = append(p.keys, key)
	}
	sort.Sort(natural.StringSlice(p.keys))
	return p
}

// Config returns a copy of configuration parser was built from.
func (p *Parser) Config() Config {
	return maps.Clone(p.config)
}

// Keys returns recognized prop names in natural order.
func (p *Parser) Keys() []string {
	return slices.Clone(p.keys)
}

// Func returns style function handling prop key.
func (p *Parser) Func(key string) (*StyleFunc, bool) {
	fn, ok := p.funcs[key]
	return fn, ok
}

// Parse converts props to declarations. Props are visited in declared order
// and a later prop overrides declarations of an earlier one. Props parser does
// not know and props with nil values produce nothing.
func (p *Parser) Parse(props *Props) *Style {
	out := NewStyle()
	if props == nil {
		return out
	}

	var queries []string
	for key, raw := range props.All() {
		fn, ok := p.funcs[key]
		if !ok || raw == nil {
			continue
		}
		scale := scaleFor(props.Theme, fn)
		if values, ok := theme.Sequence(raw); ok {
			if queries == nil {
				queries = MediaQueries(props.Theme.Breakpoints())
			}
			expandInto(out, queries, fn, scale, values)
			continue
		}
		fn.applyTo(out, scale, raw)
	}
	return out
}

func scaleFor(t theme.Theme, fn *StyleFunc) any {
	if fn.Scale != "" {
		if v, ok := t.Scale(fn.Scale); ok {
			return v
		}
	}
	return fn.DefaultScale
}
