package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"

	"ssys/state"
	"ssys/theme"
	"ssys/utils/debug"
)

// Scales lists theme scales and their keys.
func Scales(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	if err := env.LoadTheme(cmd.String("theme")); err != nil {
		return err
	}
	return scales(env.Theme, os.Stdout)
}

func scales(t theme.Theme, w io.Writer) error {
	full := effectiveTheme(t)

	names := make([]string, 0, len(full))
	for name := range full {
		names = append(names, name)
	}
	sort.Sort(natural.StringSlice(names))

	tw := debug.NewTreeWriter()
	for _, name := range names {
		if _, own := t[name]; own {
			tw.Line(0, "%s:", name)
		} else {
			tw.Line(0, "%s (default):", name)
		}
		writeScale(tw, 1, full[name])
	}
	_, err := io.WriteString(w, tw.String())
	return err
}

func writeScale(tw *debug.TreeWriter, depth int, v any) {
	if seq, ok := theme.Sequence(v); ok {
		for i, item := range seq {
			writeEntry(tw, depth, strconv.Itoa(i), item)
		}
		return
	}
	m, ok := v.(map[string]any)
	if !ok {
		tw.Value(depth, "value", fmt.Sprint(v))
		return
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Sort(natural.StringSlice(keys))
	for _, k := range keys {
		writeEntry(tw, depth, k, m[k])
	}
}

func writeEntry(tw *debug.TreeWriter, depth int, label string, v any) {
	switch v.(type) {
	case []any, map[string]any:
		tw.Line(depth, "%s:", label)
		writeScale(tw, depth+1, v)
	default:
		tw.Value(depth, label, fmt.Sprint(v))
	}
}
