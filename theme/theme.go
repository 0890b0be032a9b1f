// Package theme holds design scales consumed by style functions.
//
// A Theme maps a scale name (e.g. "space", "colors") to a Scale. A Scale is
// either an ordered sequence indexed by integer or a mapping from string key to
// value. Themes are read only: nothing in this module modifies a Theme after it
// was built.
package theme

import (
	"fmt"
	"reflect"
)

// Well known scale names.
const (
	KeyBreakpoints    = "breakpoints"
	KeySpace          = "space"
	KeyFontSizes      = "fontSizes"
	KeyColors         = "colors"
	KeyFonts          = "fonts"
	KeyFontWeights    = "fontWeights"
	KeyLineHeights    = "lineHeights"
	KeyLetterSpacings = "letterSpacings"
	KeySizes          = "sizes"
	KeyWidths         = "widths"
	KeyBorders        = "borders"
	KeyBorderWidths   = "borderWidths"
	KeyBorderStyles   = "borderStyles"
	KeyRadii          = "radii"
	KeyShadows        = "shadows"
	KeyZIndices       = "zIndices"
)

// Theme maps scale names to scales.
type Theme map[string]any

// New builds a theme from arbitrary Go values, converting typed slices and
// maps into generic sequences and mappings.
func New(scales map[string]any) Theme {
	t := make(Theme, len(scales))
	for k, v := range scales {
		t[k] = Generic(v)
	}
	return t
}

// DefaultBreakpoints returns breakpoints used when a theme has none.
func DefaultBreakpoints() []any {
	return []any{"40em", "52em", "64em"}
}

// DefaultSpace returns the built in spacing scale.
func DefaultSpace() []any {
	return []any{0, 4, 8, 16, 32, 64, 128, 256, 512}
}

// DefaultFontSizes returns the built in typography scale.
func DefaultFontSizes() []any {
	return []any{12, 14, 16, 20, 24, 32, 48, 64, 72}
}

// Default returns theme holding the built in scales.
func Default() Theme {
	return Theme{
		KeyBreakpoints: DefaultBreakpoints(),
		KeySpace:       DefaultSpace(),
		KeyFontSizes:   DefaultFontSizes(),
	}
}

// Scale returns value stored under (possibly dotted) path.
func (t Theme) Scale(path string) (any, bool) {
	if len(t) == 0 || path == "" {
		return nil, false
	}
	return Lookup(map[string]any(t), path)
}

// Get returns value stored under path or fallback when there is none.
func (t Theme) Get(path string, fallback any) any {
	if v, ok := t.Scale(path); ok {
		return v
	}
	return fallback
}

// Breakpoints returns theme breakpoints when they are a sequence, defaults
// otherwise.
func (t Theme) Breakpoints() []any {
	if v, ok := t.Scale(KeyBreakpoints); ok {
		if seq, ok := Sequence(v); ok {
			return seq
		}
	}
	return DefaultBreakpoints()
}

// Sequence reports whether v is a sequence and returns its elements. Byte
// slices and strings are scalars.
func Sequence(v any) ([]any, bool) {
	switch s := v.(type) {
	case nil:
		return nil, false
	case []any:
		return s, true
	case []string:
		return toAny(s), true
	case []int:
		return toAny(s), true
	case []int64:
		return toAny(s), true
	case []float64:
		return toAny(s), true
	case []byte:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func toAny[T any](in []T) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}

// Generic converts typed slices and maps (recursively) into []any and
// map[string]any so path lookups see a uniform shape. Scalars are returned
// as is.
func Generic(v any) any {
	switch tv := v.(type) {
	case nil, string, bool, int, int64, float64:
		return v
	case map[string]any:
		if isGeneric(tv) {
			return tv
		}
		out := make(map[string]any, len(tv))
		for k, e := range tv {
			out[k] = Generic(e)
		}
		return out
	case []any:
		if isGeneric(tv) {
			return tv
		}
		out := make([]any, len(tv))
		for i, e := range tv {
			out[i] = Generic(e)
		}
		return out
	case []byte:
		return v
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = Generic(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = Generic(iter.Value().Interface())
		}
		return out
	default:
		return v
	}
}

// isGeneric reports whether every nested container already has generic shape.
func isGeneric(v any) bool {
	switch tv := v.(type) {
	case map[string]any:
		for _, e := range tv {
			if !isGeneric(e) {
				return false
			}
		}
		return true
	case []any:
		for _, e := range tv {
			if !isGeneric(e) {
				return false
			}
		}
		return true
	case nil, string, bool, int, int64, float64, []byte:
		return true
	}
	k := reflect.ValueOf(v).Kind()
	return k != reflect.Slice && k != reflect.Array && k != reflect.Map
}
