package styles

import (
	"fmt"

	"ssys/system"
	"ssys/theme"
)

// getMargin resolves value against the space scale. Negative numbers are
// resolved by their absolute value and negated afterwards, so -2 on the
// default scale gives -8. Non numeric scale values get a "-" prefix.
func getMargin(value, scale any) any {
	n, ok := system.Float(value)
	if !ok || n >= 0 {
		return system.Resolve(scale, value, value)
	}
	abs := negate(value)
	v := system.Resolve(scale, abs, abs)
	if system.IsNumber(v) {
		return negate(v)
	}
	return "-" + fmt.Sprint(v)
}

// negate flips sign of a number keeping its Go type.
func negate(v any) any {
	switch n := v.(type) {
	case int:
		return -n
	case int8:
		return -n
	case int16:
		return -n
	case int32:
		return -n
	case int64:
		return -n
	case float32:
		return -n
	case float64:
		return -n
	}
	f, _ := system.Float(v)
	return -f
}

func spacing(prop, alias string, properties []string, transform func(value, scale any) any) *system.Parser {
	return system.Define(system.StyleSpec{
		Prop:           prop,
		Alias:          alias,
		Properties:     properties,
		Key:            theme.KeySpace,
		Scale:          theme.DefaultSpace(),
		TransformValue: transform,
	})
}

var (
	Margin       = spacing("margin", "m", nil, getMargin)
	MarginTop    = spacing("marginTop", "mt", nil, getMargin)
	MarginBottom = spacing("marginBottom", "mb", nil, getMargin)
	MarginLeft   = spacing("marginLeft", "ml", nil, getMargin)
	MarginRight  = spacing("marginRight", "mr", nil, getMargin)
	MarginX      = spacing("marginX", "mx", []string{"marginLeft", "marginRight"}, getMargin)
	MarginY      = spacing("marginY", "my", []string{"marginTop", "marginBottom"}, getMargin)

	Padding       = spacing("padding", "p", nil, nil)
	PaddingTop    = spacing("paddingTop", "pt", nil, nil)
	PaddingBottom = spacing("paddingBottom", "pb", nil, nil)
	PaddingLeft   = spacing("paddingLeft", "pl", nil, nil)
	PaddingRight  = spacing("paddingRight", "pr", nil, nil)
	PaddingX      = spacing("paddingX", "px", []string{"paddingLeft", "paddingRight"}, nil)
	PaddingY      = spacing("paddingY", "py", []string{"paddingTop", "paddingBottom"}, nil)

	// Space handles every margin and padding prop.
	Space = system.Compose(
		Margin, MarginTop, MarginBottom, MarginLeft, MarginRight, MarginX, MarginY,
		Padding, PaddingTop, PaddingBottom, PaddingLeft, PaddingRight, PaddingX, PaddingY,
	)
)
