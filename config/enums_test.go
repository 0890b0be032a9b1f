package config

import (
	"errors"
	"reflect"
	"testing"
)

func TestOutputFormat_String(t *testing.T) {
	tests := []struct {
		f    OutputFormat
		want string
	}{
		{OutputFormatCss, "css"},
		{OutputFormatJson, "json"},
		{OutputFormat(42), "OutputFormat(42)"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseOutputFormat(t *testing.T) {
	if f, err := ParseOutputFormat("json"); err != nil || f != OutputFormatJson {
		t.Errorf("ParseOutputFormat(json) = %v, %v", f, err)
	}
	if _, err := ParseOutputFormat("html"); !errors.Is(err, ErrInvalidOutputFormat) {
		t.Errorf("ParseOutputFormat(html) error = %v, want ErrInvalidOutputFormat", err)
	}
}

func TestMustParseOutputFormat(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParseOutputFormat should have panicked")
		}
	}()
	MustParseOutputFormat("invalid")
}

func TestOutputFormat_UnmarshalText(t *testing.T) {
	var f OutputFormat
	if err := f.UnmarshalText([]byte("json")); err != nil || f != OutputFormatJson {
		t.Errorf("UnmarshalText(json) = %v, %v", f, err)
	}
	if err := f.UnmarshalText([]byte("xml")); err == nil {
		t.Error("UnmarshalText(xml) should fail")
	}
}

func TestOutputFormat_Ext(t *testing.T) {
	if OutputFormatCss.Ext() != ".css" || OutputFormatJson.Ext() != ".json" {
		t.Error("unexpected extensions")
	}
}

func TestOutputFormatNames(t *testing.T) {
	if got := OutputFormatNames(); !reflect.DeepEqual(got, []string{"css", "json"}) {
		t.Errorf("OutputFormatNames() = %v", got)
	}
}
