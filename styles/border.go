package styles

import (
	"ssys/system"
	"ssys/theme"
)

var (
	Border       = system.Define(system.StyleSpec{Prop: "border", Key: theme.KeyBorders})
	BorderWidth  = system.Define(system.StyleSpec{Prop: "borderWidth", Key: theme.KeyBorderWidths})
	BorderStyle  = system.Define(system.StyleSpec{Prop: "borderStyle", Key: theme.KeyBorderStyles})
	BorderColor  = system.Define(system.StyleSpec{Prop: "borderColor", Key: theme.KeyColors})
	BorderTop    = system.Define(system.StyleSpec{Prop: "borderTop", Key: theme.KeyBorders})
	BorderRight  = system.Define(system.StyleSpec{Prop: "borderRight", Key: theme.KeyBorders})
	BorderBottom = system.Define(system.StyleSpec{Prop: "borderBottom", Key: theme.KeyBorders})
	BorderLeft   = system.Define(system.StyleSpec{Prop: "borderLeft", Key: theme.KeyBorders})
	BorderRadius = system.Define(system.StyleSpec{Prop: "borderRadius", Key: theme.KeyRadii})

	Borders = system.Compose(
		Border, BorderTop, BorderRight, BorderBottom, BorderLeft,
		BorderWidth, BorderStyle, BorderColor, BorderRadius,
	)

	BoxShadow = system.Define(system.StyleSpec{Prop: "boxShadow", Key: theme.KeyShadows})
	Opacity   = system.Define(system.StyleSpec{Prop: "opacity"})
)
