package styles

import (
	"strconv"

	"ssys/system"
	"ssys/theme"
)

// getWidth turns numbers up to one into percentages: 0.5 becomes "50%".
// Larger numbers and non numbers are resolved against the scale.
func getWidth(value, scale any) any {
	n, ok := system.Float(value)
	if !ok || n > 1 {
		return system.Resolve(scale, value, value)
	}
	return strconv.FormatFloat(n*100, 'f', -1, 64) + "%"
}

var (
	Width     = system.Define(system.StyleSpec{Prop: "width", Key: theme.KeyWidths, TransformValue: getWidth})
	Display   = system.Define(system.StyleSpec{Prop: "display"})
	MaxWidth  = system.Define(system.StyleSpec{Prop: "maxWidth", Key: theme.KeySizes})
	MinWidth  = system.Define(system.StyleSpec{Prop: "minWidth", Key: theme.KeySizes})
	Height    = system.Define(system.StyleSpec{Prop: "height", Key: theme.KeySizes})
	MaxHeight = system.Define(system.StyleSpec{Prop: "maxHeight", Key: theme.KeySizes})
	MinHeight = system.Define(system.StyleSpec{Prop: "minHeight", Key: theme.KeySizes})
	Size      = system.Define(system.StyleSpec{Prop: "size", Properties: []string{"width", "height"}, Key: theme.KeySizes})

	Overflow      = system.Define(system.StyleSpec{Prop: "overflow"})
	VerticalAlign = system.Define(system.StyleSpec{Prop: "verticalAlign"})

	Layout = system.Compose(Width, Height, MinWidth, MinHeight, MaxWidth, MaxHeight, Size, Overflow, Display, VerticalAlign)
)
