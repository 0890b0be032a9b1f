package styles

import (
	"ssys/system"
	"ssys/theme"
)

var (
	FontSize      = system.Define(system.StyleSpec{Prop: "fontSize", Key: theme.KeyFontSizes, Scale: theme.DefaultFontSizes()})
	FontFamily    = system.Define(system.StyleSpec{Prop: "fontFamily", Key: theme.KeyFonts})
	FontWeight    = system.Define(system.StyleSpec{Prop: "fontWeight", Key: theme.KeyFontWeights})
	LineHeight    = system.Define(system.StyleSpec{Prop: "lineHeight", Key: theme.KeyLineHeights})
	TextAlign     = system.Define(system.StyleSpec{Prop: "textAlign"})
	FontStyle     = system.Define(system.StyleSpec{Prop: "fontStyle"})
	LetterSpacing = system.Define(system.StyleSpec{Prop: "letterSpacing", Key: theme.KeyLetterSpacings})

	Typography = system.Compose(FontSize, FontFamily, FontWeight, LineHeight, TextAlign, FontStyle, LetterSpacing)
)
