// Package commands has actions behind program subcommands.
package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"ssys/config"
	"ssys/css"
	"ssys/state"
	"ssys/styles"
	"ssys/system"
)

// stdio is the source or destination name selecting standard streams.
const stdio = "-"

type renderOptions struct {
	system   string
	format   config.OutputFormat
	selector string
}

// Render reads props document, applies requested catalog system to it and
// writes resulting style as CSS or JSON.
func Render(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("render")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no props source has been specified")
	}
	dst := cmd.Args().Get(1)
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	if err := env.LoadTheme(cmd.String("theme")); err != nil {
		return err
	}

	opts := renderOptions{
		system:   env.Cfg.Render.System,
		format:   env.Cfg.Render.Format,
		selector: cmd.String("selector"),
	}
	if name := cmd.String("system"); len(name) > 0 {
		opts.system = name
	}
	if to := cmd.String("to"); len(to) > 0 {
		if opts.format, err = config.ParseOutputFormat(to); err != nil {
			return fmt.Errorf("unknown output format requested: %w", err)
		}
	}
	env.Overwrite = cmd.Bool("overwrite")

	log.Info("Rendering starting", zap.String("source", src), zap.String("destination", dst),
		zap.String("system", opts.system), zap.Stringer("format", opts.format))
	defer func(start time.Time) {
		log.Info("Rendering completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return render(ctx, env, src, dst, opts, log)
}

// render does the work of Render independently of command line.
func render(ctx context.Context, env *state.LocalEnv, src, dst string, opts renderOptions, log *zap.Logger) error {
	parser, ok := styles.Lookup(opts.system)
	if !ok {
		return fmt.Errorf("unknown style system '%s' (available: %s)", opts.system, strings.Join(styles.Names(), ", "))
	}

	data, err := readSource(src)
	if err != nil {
		return err
	}
	props, err := DecodeProps(data)
	if err != nil {
		return fmt.Errorf("unable to decode props from '%s': %w", src, err)
	}
	if props.Theme == nil {
		props.Theme = env.Theme
	} else {
		log.Debug("Using theme from props document", zap.Int("scales", len(props.Theme)))
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	style := styles.Apply(parser, props)
	log.Debug("Style computed", zap.Int("props", props.Len()), zap.Int("declarations", style.Len()))

	var out []byte
	switch opts.format {
	case config.OutputFormatCss:
		selector := opts.selector
		if len(selector) == 0 {
			if selector, err = css.ExpandSelector(env.Cfg.Render.SelectorTemplate, src, style); err != nil {
				return err
			}
		}
		sheet := css.NewRenderer(log, env.Cfg.Render.PxUnits).Render(selector, style)
		if len(sheet.Warnings) > 0 {
			log.Warn("Some declarations were dropped", zap.Int("count", len(sheet.Warnings)))
		}
		out = []byte(sheet.String())
	case config.OutputFormatJson:
		if out, err = json.MarshalIndent(style, "", "  "); err != nil {
			return fmt.Errorf("unable to encode style: %w", err)
		}
		out = append(out, '\n')
	default:
		// this should never happen
		panic("unsupported format requested")
	}

	fname, err := outputPath(src, dst, opts.format, env.Overwrite)
	if err != nil {
		return err
	}
	return writeResult(fname, out)
}

// DecodeProps decodes ordered props document. JSON is recognized by its
// leading '{', everything else is treated as YAML.
func DecodeProps(data []byte) (*system.Props, error) {
	props := system.NewProps(nil)

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return props, nil
	}
	if trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, props); err != nil {
			return nil, err
		}
		return props, nil
	}
	if err := yaml.Unmarshal(trimmed, props); err != nil {
		return nil, err
	}
	return props, nil
}

func readSource(src string) ([]byte, error) {
	if src == stdio {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("unable to read props from STDIN: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("unable to read props: %w", err)
	}
	return data, nil
}

// outputPath returns file name to write results to, empty for STDOUT. When
// dst is an existing directory file name is derived from src.
func outputPath(src, dst string, format config.OutputFormat, overwrite bool) (string, error) {
	if len(dst) == 0 || dst == stdio {
		return "", nil
	}

	if fi, err := os.Stat(dst); err == nil && fi.IsDir() {
		base := "style"
		if src != stdio {
			base = strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
		}
		dst = filepath.Join(dst, config.CleanFileName(base)+format.Ext())
	} else {
		dir, file := filepath.Split(dst)
		dst = filepath.Join(dir, config.CleanFileName(file))
	}

	if _, err := os.Stat(dst); err == nil && !overwrite {
		return "", fmt.Errorf("output file already exists: %s", dst)
	}
	return dst, nil
}

func writeResult(fname string, data []byte) error {
	if len(fname) == 0 {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("unable to write result: %w", err)
		}
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(fname), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	if err := os.WriteFile(fname, data, 0644); err != nil {
		return fmt.Errorf("unable to write result: %w", err)
	}
	return nil
}
