package system

import (
	"reflect"
	"testing"

	"ssys/theme"
)

func TestCompose(t *testing.T) {
	p := Compose(widthParser, colorParser, nil)

	if got, want := p.Keys(), []string{"backgroundColor", "bg", "color", "width"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}

	props := NewProps(theme.Theme{"colors": map[string]any{"primary": "tomato"}}).
		Set("width", []any{1, 0.5}).
		Set("color", "primary")
	want := map[string]any{
		"width":                               1,
		"color":                               "tomato",
		"@media screen and (min-width: 40em)": map[string]any{"width": 0.5},
	}
	if got := p.Parse(props).Map(); !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %v, want %v", got, want)
	}
}

func TestCompose_LaterWins(t *testing.T) {
	first := System(Config{"size": Descriptor{Property: "width"}})
	second := System(Config{"size": Descriptor{Properties: []string{"width", "height"}, Scale: "sizes"}})

	props := NewProps(theme.Theme{"sizes": []any{16, 32}}).Set("size", 1)

	got := Compose(first, second).Parse(props).Map()
	if want := map[string]any{"width": 32, "height": 32}; !reflect.DeepEqual(got, want) {
		t.Errorf("Compose(first, second) = %v, want %v", got, want)
	}
	got = Compose(second, first).Parse(props).Map()
	if want := map[string]any{"width": 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("Compose(second, first) = %v, want %v", got, want)
	}
}

func TestCompose_Empty(t *testing.T) {
	p := Compose()
	if len(p.Keys()) != 0 || p.Parse(NewProps(nil).Set("width", 1)).Len() != 0 {
		t.Error("empty composition must produce nothing")
	}
}
