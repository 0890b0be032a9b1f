package styles

import (
	"ssys/system"
	"ssys/theme"
)

var (
	TextColor       = system.Define(system.StyleSpec{Prop: "color", Key: theme.KeyColors})
	BackgroundColor = system.Define(system.StyleSpec{Prop: "backgroundColor", Alias: "bg", Key: theme.KeyColors})

	Color = system.Compose(TextColor, BackgroundColor)
)
