package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"ssys/state"
	"ssys/system"
	"ssys/theme"
)

// Get prints theme value found at dotted path.
func Get(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("get")

	path := cmd.Args().Get(0)
	if len(path) == 0 {
		return errors.New("no theme path has been specified")
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many paths", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	if err := env.LoadTheme(cmd.String("theme")); err != nil {
		return err
	}

	var fallback any
	if cmd.IsSet("fallback") {
		fallback = cmd.String("fallback")
	}
	return get(env, path, fallback, os.Stdout)
}

func get(env *state.LocalEnv, path string, fallback any, w io.Writer) error {
	props := system.NewProps(effectiveTheme(env.Theme))

	v := system.ThemeGet(path, fallback)(props)
	if v == nil {
		return fmt.Errorf("nothing found at theme path '%s'", path)
	}
	if env.Log != nil {
		env.Log.Debug("Theme value", zap.String("path", path), zap.Any("value", v))
	}
	return writeValue(w, v)
}

func writeValue(w io.Writer, v any) error {
	switch v.(type) {
	case []any, map[string]any:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("unable to encode theme value: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		_, err := fmt.Fprintln(w, v)
		return err
	}
}

// effectiveTheme returns theme style functions see: t on top of the built
// in scales.
func effectiveTheme(t theme.Theme) theme.Theme {
	out := theme.Default()
	for k, v := range t {
		out[k] = v
	}
	return out
}
