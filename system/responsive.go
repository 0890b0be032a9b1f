package system

import (
	"fmt"

	"ssys/theme"
)

// MediaQuery formats breakpoint as min-width media condition. Breakpoint
// values are interpolated verbatim, numbers get no unit.
func MediaQuery(breakpoint any) string {
	return fmt.Sprintf("@media screen and (min-width: %v)", breakpoint)
}

// MediaQueries returns one slot per responsive index: an empty string for
// the unconditional base slot followed by ascending breakpoint queries.
func MediaQueries(breakpoints []any) []string {
	queries := make([]string, 0, len(breakpoints)+1)
	queries = append(queries, "")
	for _, bp := range breakpoints {
		queries = append(queries, MediaQuery(bp))
	}
	return queries
}

// Expand produces responsive declarations for values: the first value goes to
// the base block, following values go to media blocks in breakpoint order.
// Breakpoints come from the props theme (or defaults). Nil values are skipped
// and values past the last breakpoint are dropped.
func Expand(props *Props, fn *StyleFunc, scale any, values []any) *Style {
	var t theme.Theme
	if props != nil {
		t = props.Theme
	}
	out := NewStyle()
	expandInto(out, MediaQueries(t.Breakpoints()), fn, scale, values)
	return out
}

func expandInto(out *Style, queries []string, fn *StyleFunc, scale any, values []any) {
	if len(values) > len(queries) {
		values = values[:len(queries)]
	}
	for i, v := range values {
		if v == nil {
			continue
		}
		if queries[i] == "" {
			fn.applyTo(out, scale, v)
			continue
		}
		out.MergeBlock(queries[i], fn.Apply(scale, v))
	}
}
