package system

import (
	"fmt"

	"ssys/theme"
)

// DefaultVariantProp is the prop naming a variant when VariantSpec has none.
const DefaultVariantProp = "variant"

// VariantSpec selects theme mapping holding named styles and the prop that
// names one of them.
type VariantSpec struct {
	Key  string
	Prop string
}

// VariantFunc returns a complete named style or nil.
type VariantFunc func(*Props) *Style

// Variant builds function returning theme[Key][props[Prop]] as a style. The
// looked up mapping is used whole, it is not resolved property by property.
// Nil is returned when the prop is absent or theme has no such mapping.
func Variant(spec VariantSpec) VariantFunc {
	prop := spec.Prop
	if prop == "" {
		prop = DefaultVariantProp
	}
	return func(p *Props) *Style {
		if p == nil {
			return nil
		}
		name, ok := p.Get(prop)
		if !ok || name == nil {
			return nil
		}
		v, ok := p.Theme.Scale(spec.Key + "." + fmt.Sprint(name))
		if !ok {
			return nil
		}
		switch tv := v.(type) {
		case *Style:
			return tv
		case map[string]any:
			return StyleFromMap(tv)
		default:
			if m, ok := theme.Generic(v).(map[string]any); ok {
				return StyleFromMap(m)
			}
		}
		return nil
	}
}

// ThemeGet returns accessor reading path from props theme, fallback when
// there is nothing there.
func ThemeGet(path string, fallback any) func(*Props) any {
	return func(p *Props) any {
		if p == nil {
			return fallback
		}
		return p.Theme.Get(path, fallback)
	}
}
