package theme

import (
	"reflect"
	"testing"
)

var testTheme = Theme{
	"colors": map[string]any{
		"blue":  "#07c",
		"black": "#111",
		"gray":  []any{"#fff", "#eee", "#ccc"},
		"2":     "two",
	},
	"space":       []any{0, 4, 8, 16},
	"breakpoints": []any{"32em", "48em"},
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		want   any
		wantOK bool
	}{
		{name: "mapping key", path: "colors.blue", want: "#07c", wantOK: true},
		{name: "sequence index", path: "space.2", want: 8, wantOK: true},
		{name: "nested sequence", path: "colors.gray.1", want: "#eee", wantOK: true},
		{name: "numeric mapping key", path: "colors.2", want: "two", wantOK: true},
		{name: "index past end", path: "space.10", wantOK: false},
		{name: "missing key", path: "colors.lightblue", wantOK: false},
		{name: "through scalar", path: "colors.blue.5", wantOK: false},
		{name: "leading zero is not an index", path: "space.02", wantOK: false},
		{name: "empty segment", path: "colors.", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Lookup(map[string]any(testTheme), tt.path)
			if ok != tt.wantOK {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.path, ok, tt.wantOK)
			}
			if ok && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Lookup(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestLookupKey(t *testing.T) {
	space := []any{0, 4, 8, 16}
	colors := map[string]any{"blue": "#07c", "1.5": "odd"}

	tests := []struct {
		name   string
		scale  any
		key    any
		want   any
		wantOK bool
	}{
		{name: "int index", scale: space, key: 2, want: 8, wantOK: true},
		{name: "int64 index", scale: space, key: int64(3), want: 16, wantOK: true},
		{name: "integral float index", scale: space, key: 1.0, want: 4, wantOK: true},
		{name: "zero index", scale: space, key: 0, want: 0, wantOK: true},
		{name: "negative int", scale: space, key: -1, wantOK: false},
		{name: "fractional float key", scale: colors, key: 1.5, want: "odd", wantOK: true},
		{name: "string key", scale: colors, key: "blue", want: "#07c", wantOK: true},
		{name: "raw length", scale: space, key: "12px", wantOK: false},
		{name: "bool never matches", scale: space, key: true, wantOK: false},
		{name: "nil scale", scale: nil, key: 1, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LookupKey(tt.scale, tt.key)
			if ok != tt.wantOK {
				t.Fatalf("LookupKey(%v) ok = %v, want %v", tt.key, ok, tt.wantOK)
			}
			if ok && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("LookupKey(%v) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestTheme_Get(t *testing.T) {
	if got := testTheme.Get("colors.blue", nil); got != "#07c" {
		t.Errorf("Get(colors.blue) = %v, want #07c", got)
	}
	if got := testTheme.Get("colors.lightblue", "#0cf"); got != "#0cf" {
		t.Errorf("Get(colors.lightblue) = %v, want fallback #0cf", got)
	}
	var empty Theme
	if got := empty.Get("colors.blue", "x"); got != "x" {
		t.Errorf("nil theme Get() = %v, want fallback", got)
	}
}

func TestTheme_Breakpoints(t *testing.T) {
	if got := testTheme.Breakpoints(); !reflect.DeepEqual(got, []any{"32em", "48em"}) {
		t.Errorf("Breakpoints() = %v, want theme breakpoints", got)
	}
	if got := (Theme{}).Breakpoints(); !reflect.DeepEqual(got, DefaultBreakpoints()) {
		t.Errorf("Breakpoints() = %v, want defaults", got)
	}
	bad := Theme{"breakpoints": map[string]any{"sm": "40em"}}
	if got := bad.Breakpoints(); !reflect.DeepEqual(got, DefaultBreakpoints()) {
		t.Errorf("Breakpoints() with mapping = %v, want defaults", got)
	}
}

func TestDefaultsAreCopies(t *testing.T) {
	s := DefaultSpace()
	s[1] = 1000
	if DefaultSpace()[1] != 4 {
		t.Error("DefaultSpace() returned shared storage")
	}
	if len(DefaultFontSizes()) != 9 || DefaultFontSizes()[0] != 12 {
		t.Errorf("DefaultFontSizes() = %v", DefaultFontSizes())
	}
}

func TestSequence(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   []any
		wantOK bool
	}{
		{name: "generic", in: []any{1, nil, "a"}, want: []any{1, nil, "a"}, wantOK: true},
		{name: "strings", in: []string{"a", "b"}, want: []any{"a", "b"}, wantOK: true},
		{name: "ints", in: []int{1, 2}, want: []any{1, 2}, wantOK: true},
		{name: "array", in: [2]float32{1, 2}, want: []any{float32(1), float32(2)}, wantOK: true},
		{name: "string is scalar", in: "abc", wantOK: false},
		{name: "bytes are scalar", in: []byte("abc"), wantOK: false},
		{name: "nil", in: nil, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Sequence(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("Sequence() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Sequence() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNew_Generic(t *testing.T) {
	th := New(map[string]any{
		"space":  []int{0, 2, 4},
		"colors": map[string]string{"red": "#f00"},
		"nested": map[string][]string{"a": {"x", "y"}},
	})
	if got, ok := th.Scale("space.2"); !ok || got != 4 {
		t.Errorf("Scale(space.2) = %v, %v; want 4", got, ok)
	}
	if got, ok := th.Scale("colors.red"); !ok || got != "#f00" {
		t.Errorf("Scale(colors.red) = %v, %v; want #f00", got, ok)
	}
	if got, ok := th.Scale("nested.a.1"); !ok || got != "y" {
		t.Errorf("Scale(nested.a.1) = %v, %v; want y", got, ok)
	}
}

func TestDefault(t *testing.T) {
	d := Default()
	if len(d) != 3 {
		t.Fatalf("Default() has %d scales, want 3", len(d))
	}
	if got, want := d.Breakpoints(), DefaultBreakpoints(); !reflect.DeepEqual(got, want) {
		t.Errorf("breakpoints = %v, want %v", got, want)
	}
	d[KeySpace] = []any{1}
	if got := Default()[KeySpace]; !reflect.DeepEqual(got, DefaultSpace()) {
		t.Errorf("Default() shares storage: space = %v", got)
	}
}
