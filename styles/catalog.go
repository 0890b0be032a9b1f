// Package styles is the catalog of ready made style functions: spacing,
// color, typography, layout, flexbox, grid, borders, backgrounds, position
// and theme variants.
package styles

import (
	"sort"

	"github.com/maruel/natural"

	"ssys/system"
	"ssys/theme"
)

// All handles every prop of the catalog.
var All = system.Compose(
	Space, Color, Typography, Layout, Flexbox, Grid, Borders,
	BoxShadow, Opacity, Backgrounds, Positions,
)

var catalog = map[string]*system.Parser{
	"all":         All,
	"space":       Space,
	"color":       Color,
	"typography":  Typography,
	"layout":      Layout,
	"flexbox":     Flexbox,
	"grid":        Grid,
	"borders":     Borders,
	"boxShadow":   BoxShadow,
	"opacity":     Opacity,
	"backgrounds": Backgrounds,
	"position":    Positions,
}

var variants = map[string]system.VariantFunc{
	"buttonStyle": ButtonStyle,
	"textStyle":   TextStyle,
	"colorStyle":  ColorStyle,
}

// Lookup returns catalog parser by group name ("space", "color", ...).
func Lookup(name string) (*system.Parser, bool) {
	p, ok := catalog[name]
	return p, ok
}

// Names returns catalog group names in natural order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Sort(natural.StringSlice(names))
	return names
}

// Variants returns catalog variant functions in natural order of their names.
func Variants() []Named {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Sort(natural.StringSlice(names))

	out := make([]Named, 0, len(names))
	for _, name := range names {
		out = append(out, Named{Name: name, Func: variants[name]})
	}
	return out
}

// Named pairs a variant function with its catalog name.
type Named struct {
	Name string
	Func system.VariantFunc
}

// Apply parses props with p and merges every catalog variant on top, in
// the order returned by Variants. Variant styles come first so explicit
// props override them.
func Apply(p *system.Parser, props *system.Props) *system.Style {
	out := system.NewStyle()
	for _, v := range Variants() {
		if s := v.Func(props); s != nil {
			out.Merge(s)
		}
	}
	out.Merge(p.Parse(props))
	return out
}

// BenchProps returns props of the benchmark workload bound to theme t.
func BenchProps(t theme.Theme) *system.Props {
	return system.NewProps(t).
		Set("m", 0).
		Set("mb", 4).
		Set("px", []any{2, 3}).
		Set("py", []any{4, 5})
}
