package styles

import (
	"ssys/system"
	"ssys/theme"
)

func gridSpace(prop string) *system.Parser {
	return system.Define(system.StyleSpec{Prop: prop, Key: theme.KeySpace, Scale: theme.DefaultSpace()})
}

var (
	GridGap             = gridSpace("gridGap")
	GridColumnGap       = gridSpace("gridColumnGap")
	GridRowGap          = gridSpace("gridRowGap")
	GridColumn          = system.Define(system.StyleSpec{Prop: "gridColumn"})
	GridRow             = system.Define(system.StyleSpec{Prop: "gridRow"})
	GridAutoFlow        = system.Define(system.StyleSpec{Prop: "gridAutoFlow"})
	GridAutoColumns     = system.Define(system.StyleSpec{Prop: "gridAutoColumns"})
	GridAutoRows        = system.Define(system.StyleSpec{Prop: "gridAutoRows"})
	GridTemplateColumns = system.Define(system.StyleSpec{Prop: "gridTemplateColumns"})
	GridTemplateRows    = system.Define(system.StyleSpec{Prop: "gridTemplateRows"})
	GridTemplateAreas   = system.Define(system.StyleSpec{Prop: "gridTemplateAreas"})
	GridArea            = system.Define(system.StyleSpec{Prop: "gridArea"})

	Grid = system.Compose(
		GridGap, GridColumnGap, GridRowGap, GridColumn, GridRow, GridAutoFlow, GridAutoColumns,
		GridAutoRows, GridTemplateColumns, GridTemplateRows, GridTemplateAreas, GridArea,
	)
)
