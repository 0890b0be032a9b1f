package styles

import (
	"ssys/system"
)

var (
	ButtonStyle = system.Variant(system.VariantSpec{Key: "buttons"})
	TextStyle   = system.Variant(system.VariantSpec{Key: "textStyles", Prop: "textStyle"})
	ColorStyle  = system.Variant(system.VariantSpec{Key: "colorStyles", Prop: "colors"})
)
