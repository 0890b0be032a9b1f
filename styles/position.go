package styles

import (
	"ssys/system"
	"ssys/theme"
)

var (
	Position = system.Define(system.StyleSpec{Prop: "position"})
	ZIndex   = system.Define(system.StyleSpec{Prop: "zIndex", Key: theme.KeyZIndices})
	Top      = system.Define(system.StyleSpec{Prop: "top"})
	Right    = system.Define(system.StyleSpec{Prop: "right"})
	Bottom   = system.Define(system.StyleSpec{Prop: "bottom"})
	Left     = system.Define(system.StyleSpec{Prop: "left"})

	Positions = system.Compose(Position, ZIndex, Top, Right, Bottom, Left)
)
