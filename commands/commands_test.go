package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"ssys/config"
	"ssys/state"
	"ssys/theme"
)

// setupTestEnv creates a test environment with proper context and logger
func setupTestEnv(t *testing.T) (context.Context, *state.LocalEnv) {
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Log = logger
	env.Cfg = cfg
	return ctx, env
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	fname := filepath.Join(dir, name)
	if err := os.WriteFile(fname, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return fname
}

func readFile(t *testing.T, fname string) string {
	t.Helper()
	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatalf("read %s: %v", fname, err)
	}
	return string(data)
}

func TestDecodeProps(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		wantKeys  []string
		wantTheme bool
	}{
		{"yaml", "py: 2\nm: 1\ncolor: blue\n", []string{"py", "m", "color"}, false},
		{"json", `{"py": 2, "m": 1, "color": "blue"}`, []string{"py", "m", "color"}, false},
		{"yaml with theme", "theme:\n  space: [0, 2]\nm: 1\n", []string{"m"}, true},
		{"json with theme", `  {"m": 1, "theme": {"space": [0, 2]}}`, []string{"m"}, true},
		{"empty", "  \n", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props, err := DecodeProps([]byte(tt.data))
			if err != nil {
				t.Fatalf("DecodeProps() error = %v", err)
			}
			var keys []string
			for k := range props.All() {
				keys = append(keys, k)
			}
			if !slices.Equal(keys, tt.wantKeys) {
				t.Errorf("keys = %v, want %v", keys, tt.wantKeys)
			}
			if got := props.Theme != nil; got != tt.wantTheme {
				t.Errorf("theme present = %v, want %v", got, tt.wantTheme)
			}
		})
	}
}

func TestDecodeProps_Errors(t *testing.T) {
	for _, data := range []string{"- a\n- b\n", `{"m": `, "theme: 5\n"} {
		if _, err := DecodeProps([]byte(data)); err == nil {
			t.Errorf("DecodeProps(%q) expected error", data)
		}
	}
}

func TestRender_CSS(t *testing.T) {
	ctx, env := setupTestEnv(t)
	dir := t.TempDir()
	src := writeFile(t, dir, "box.yaml", "m: 2\ncolor: tomato\n")
	dst := filepath.Join(dir, "out.css")

	opts := renderOptions{system: "all", format: config.OutputFormatCss, selector: ".box"}
	if err := render(ctx, env, src, dst, opts, env.Log); err != nil {
		t.Fatalf("render() error = %v", err)
	}

	want := ".box {\n  margin: 8px;\n  color: tomato;\n}\n"
	if got := readFile(t, dst); got != want {
		t.Errorf("render() output =\n%s\nwant\n%s", got, want)
	}
}

func TestRender_SelectorTemplate(t *testing.T) {
	ctx, env := setupTestEnv(t)
	dir := t.TempDir()
	src := writeFile(t, dir, "Card.yaml", "p: 1\n")

	opts := renderOptions{system: "space", format: config.OutputFormatCss}
	if err := render(ctx, env, src, dir, opts, env.Log); err != nil {
		t.Fatalf("render() error = %v", err)
	}

	got := readFile(t, filepath.Join(dir, "Card.css"))
	if !strings.HasPrefix(got, ".card {\n") {
		t.Errorf("render() output = %q, want .card selector", got)
	}
}

func TestRender_JSON(t *testing.T) {
	ctx, env := setupTestEnv(t)
	dir := t.TempDir()
	src := writeFile(t, dir, "props.json", `{"mb": [1, 2], "color": "red"}`)
	dst := filepath.Join(dir, "out.json")

	opts := renderOptions{system: "all", format: config.OutputFormatJson}
	if err := render(ctx, env, src, dst, opts, env.Log); err != nil {
		t.Fatalf("render() error = %v", err)
	}

	out := readFile(t, dst)
	var got map[string]any
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	want := map[string]any{
		"marginBottom": float64(4),
		"@media screen and (min-width: 40em)": map[string]any{
			"marginBottom": float64(8),
		},
		"color": "red",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("render() = %v, want %v", got, want)
	}
	if i, j := strings.Index(out, "marginBottom"), strings.Index(out, `"color"`); i > j {
		t.Errorf("declarations out of order:\n%s", out)
	}
}

func TestRender_ThemeFromEnv(t *testing.T) {
	ctx, env := setupTestEnv(t)
	env.Theme = theme.New(map[string]any{"colors": map[string]any{"primary": "#07c"}})
	dir := t.TempDir()
	src := writeFile(t, dir, "props.yaml", "bg: primary\n")
	dst := filepath.Join(dir, "out.css")

	opts := renderOptions{system: "color", format: config.OutputFormatCss, selector: "a"}
	if err := render(ctx, env, src, dst, opts, env.Log); err != nil {
		t.Fatalf("render() error = %v", err)
	}
	if got, want := readFile(t, dst), "a {\n  background-color: #07c;\n}\n"; got != want {
		t.Errorf("render() output = %q, want %q", got, want)
	}
}

func TestRender_Errors(t *testing.T) {
	ctx, env := setupTestEnv(t)
	dir := t.TempDir()
	src := writeFile(t, dir, "props.yaml", "m: 1\n")
	existing := writeFile(t, dir, "existing.css", "")

	cancelled, cancel := context.WithCancel(ctx)
	cancel()

	tests := []struct {
		name string
		ctx  context.Context
		src  string
		dst  string
		sys  string
		want string
	}{
		{"unknown system", ctx, src, "", "nope", "unknown style system"},
		{"missing source", ctx, filepath.Join(dir, "missing.yaml"), "", "all", "unable to read props"},
		{"existing destination", ctx, src, existing, "all", "already exists"},
		{"cancelled", cancelled, src, "", "all", context.Canceled.Error()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := renderOptions{system: tt.sys, format: config.OutputFormatCss, selector: ".x"}
			err := render(tt.ctx, env, tt.src, tt.dst, opts, env.Log)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("render() error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	dir := t.TempDir()
	existing := writeFile(t, dir, "taken.json", "{}")

	tests := []struct {
		name      string
		src, dst  string
		overwrite bool
		want      string
		wantErr   bool
	}{
		{"stdout", "a.yaml", "", false, "", false},
		{"stdout dash", "a.yaml", "-", false, "", false},
		{"directory", "in/a.yaml", dir, false, filepath.Join(dir, "a.json"), false},
		{"directory from stdin", "-", dir, false, filepath.Join(dir, "style.json"), false},
		{"file", "a.yaml", filepath.Join(dir, "b.txt"), false, filepath.Join(dir, "b.txt"), false},
		{"existing", "a.yaml", existing, false, "", true},
		{"existing overwrite", "a.yaml", existing, true, existing, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := outputPath(tt.src, tt.dst, config.OutputFormatJson, tt.overwrite)
			if (err != nil) != tt.wantErr {
				t.Fatalf("outputPath() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("outputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGet(t *testing.T) {
	_, env := setupTestEnv(t)
	env.Theme = theme.New(map[string]any{
		"colors": map[string]any{"blue": []string{"#eef", "#07c"}},
	})

	tests := []struct {
		name     string
		path     string
		fallback any
		want     string
		wantErr  bool
	}{
		{"nested", "colors.blue.1", nil, "#07c\n", false},
		{"default scale", "space.2", nil, "8\n", false},
		{"container", "colors.blue", nil, "- '#eef'\n- '#07c'\n", false},
		{"fallback", "colors.red", "tomato", "tomato\n", false},
		{"missing", "colors.red", nil, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := get(env, tt.path, tt.fallback, &buf)
			if (err != nil) != tt.wantErr {
				t.Fatalf("get() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("get() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScales(t *testing.T) {
	th := theme.New(map[string]any{
		"space":       []int{0, 4},
		"breakpoints": []string{"30em"},
		"colors": map[string]any{
			"gray": []string{"#eee", "#ccc"},
			"blue": "#07c",
		},
	})

	var buf bytes.Buffer
	if err := scales(th, &buf); err != nil {
		t.Fatalf("scales() error = %v", err)
	}

	want := `breakpoints:
  0: 30em
colors:
  blue: #07c
  gray:
    0: #eee
    1: #ccc
fontSizes (default):
  0: 12
  1: 14
  2: 16
  3: 20
  4: 24
  5: 32
  6: 48
  7: 64
  8: 72
space:
  0: 0
  1: 4
`
	if got := buf.String(); got != want {
		t.Errorf("scales() =\n%s\nwant\n%s", got, want)
	}
}

func TestEffectiveTheme(t *testing.T) {
	got := effectiveTheme(nil)
	if !reflect.DeepEqual(got, theme.Default()) {
		t.Errorf("effectiveTheme(nil) = %v, want defaults", got)
	}

	own := theme.Theme{"space": []any{1}}
	got = effectiveTheme(own)
	if !reflect.DeepEqual(got["space"], []any{1}) {
		t.Errorf("space = %v, want theme value", got["space"])
	}
	if !reflect.DeepEqual(got["fontSizes"], theme.DefaultFontSizes()) {
		t.Errorf("fontSizes = %v, want defaults", got["fontSizes"])
	}
}

func TestWorkload(t *testing.T) {
	_, env := setupTestEnv(t)

	for _, name := range []string{"space", "all", applyWorkload} {
		fn, err := workload(name, env)
		if err != nil {
			t.Fatalf("workload(%q) error = %v", name, err)
		}
		fn()
	}
	if _, err := workload("nope", env); err == nil {
		t.Error("workload(nope) expected error")
	}
}

func TestBench(t *testing.T) {
	if testing.Short() {
		t.Skip("benchmark run in short mode")
	}
	ctx, env := setupTestEnv(t)

	results, err := bench(ctx, env, []string{"opacity", "nope"}, env.Log)
	if err == nil || !strings.Contains(err.Error(), "nope") {
		t.Errorf("bench() error = %v, want unknown workload reported", err)
	}
	if len(results) != 1 || results[0].name != "opacity" || results[0].result.N == 0 {
		t.Fatalf("bench() results = %+v", results)
	}

	var buf bytes.Buffer
	if err := writeBench(&buf, results); err != nil {
		t.Fatalf("writeBench() error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "opacity ") || !strings.Contains(buf.String(), "allocs/op") {
		t.Errorf("writeBench() = %q", buf.String())
	}
}
