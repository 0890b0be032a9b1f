package css_test

import (
	"strings"
	"testing"

	"ssys/css"
	"ssys/system"
)

func TestClassName(t *testing.T) {
	a := sampleStyle()
	b := sampleStyle()
	name := css.ClassName(a)
	if !strings.HasPrefix(name, "css-") || len(name) != len("css-")+8 {
		t.Errorf("ClassName() = %q", name)
	}
	if css.ClassName(b) != name {
		t.Error("ClassName() is not stable")
	}
	b.Set("color", "red")
	if css.ClassName(b) == name {
		t.Error("ClassName() did not change with content")
	}
}

func TestExpandSelector(t *testing.T) {
	style := sampleStyle()
	class := css.ClassName(style)

	tests := []struct {
		tmpl, src, want string
		wantErr         bool
	}{
		{".{{ .Name }}", "testdata/Primary Button.yaml", ".primary-button", false},
		{"#{{ .SourceFile | lower }}", "Card.json", "#card", false},
		{".{{ .Name | default .Class }}", "-", "." + class, false},
		{"{{ .Class }}", "x.yaml", class, false},
		{"{{ if false }}x{{ end }}", "x.yaml", "", true},
		{"{{ .Nope }}", "x.yaml", "", true},
		{"{{ .Name", "x.yaml", "", true},
	}
	for _, tt := range tests {
		got, err := css.ExpandSelector(tt.tmpl, tt.src, style)
		if (err != nil) != tt.wantErr {
			t.Errorf("ExpandSelector(%q) error = %v, wantErr %v", tt.tmpl, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ExpandSelector(%q) = %q, want %q", tt.tmpl, got, tt.want)
		}
	}
}

func TestClassName_Empty(t *testing.T) {
	if css.ClassName(system.NewStyle()) != css.ClassName(nil) {
		t.Error("empty and nil styles must share class name")
	}
}
