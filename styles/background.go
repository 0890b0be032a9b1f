package styles

import (
	"ssys/system"
)

var (
	Background         = system.Define(system.StyleSpec{Prop: "background"})
	BackgroundImage    = system.Define(system.StyleSpec{Prop: "backgroundImage"})
	BackgroundSize     = system.Define(system.StyleSpec{Prop: "backgroundSize"})
	BackgroundPosition = system.Define(system.StyleSpec{Prop: "backgroundPosition"})
	BackgroundRepeat   = system.Define(system.StyleSpec{Prop: "backgroundRepeat"})

	Backgrounds = system.Compose(Background, BackgroundImage, BackgroundSize, BackgroundPosition, BackgroundRepeat)
)
