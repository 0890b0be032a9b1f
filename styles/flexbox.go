package styles

import (
	"ssys/system"
)

var (
	AlignItems     = system.Define(system.StyleSpec{Prop: "alignItems"})
	AlignContent   = system.Define(system.StyleSpec{Prop: "alignContent"})
	JustifyItems   = system.Define(system.StyleSpec{Prop: "justifyItems"})
	JustifyContent = system.Define(system.StyleSpec{Prop: "justifyContent"})
	FlexWrap       = system.Define(system.StyleSpec{Prop: "flexWrap"})
	FlexBasis      = system.Define(system.StyleSpec{Prop: "flexBasis", TransformValue: getWidth})
	FlexDirection  = system.Define(system.StyleSpec{Prop: "flexDirection"})
	Flex           = system.Define(system.StyleSpec{Prop: "flex"})
	JustifySelf    = system.Define(system.StyleSpec{Prop: "justifySelf"})
	AlignSelf      = system.Define(system.StyleSpec{Prop: "alignSelf"})
	Order          = system.Define(system.StyleSpec{Prop: "order"})

	Flexbox = system.Compose(
		AlignItems, AlignContent, JustifyItems, JustifyContent, FlexWrap,
		FlexBasis, FlexDirection, Flex, JustifySelf, AlignSelf, Order,
	)
)
