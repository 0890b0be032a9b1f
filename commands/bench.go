package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"testing"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"ssys/state"
	"ssys/styles"
)

// applyWorkload names workload running catalog variants together with all
// style functions.
const applyWorkload = "apply"

type benchResult struct {
	name   string
	result testing.BenchmarkResult
}

// Bench times catalog style functions over benchmark props.
func Bench(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("bench")

	if err := env.LoadTheme(cmd.String("theme")); err != nil {
		return err
	}

	names := styles.Names()
	if name := cmd.String("system"); len(name) > 0 {
		names = []string{name}
	}
	names = append(names, applyWorkload)

	results, err := bench(ctx, env, names, log)
	if werr := writeBench(os.Stdout, results); werr != nil {
		err = multierr.Append(err, werr)
	}
	return err
}

func bench(ctx context.Context, env *state.LocalEnv, names []string, log *zap.Logger) (results []benchResult, err error) {
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		fn, er := workload(name, env)
		if er != nil {
			err = multierr.Append(err, er)
			continue
		}
		r := testing.Benchmark(func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				fn()
			}
		})
		if r.N == 0 {
			err = multierr.Append(err, fmt.Errorf("benchmark '%s' did not run", name))
			continue
		}
		log.Info("Benchmark completed", zap.String("workload", name), zap.Int("iterations", r.N),
			zap.Int64("ns/op", r.NsPerOp()), zap.Int64("allocs/op", r.AllocsPerOp()), zap.Int64("bytes/op", r.AllocedBytesPerOp()))
		results = append(results, benchResult{name: name, result: r})
	}
	return results, err
}

func workload(name string, env *state.LocalEnv) (func(), error) {
	props := styles.BenchProps(env.Theme)
	if name == applyWorkload {
		props.Set("variant", "primary")
		return func() { _ = styles.Apply(styles.All, props) }, nil
	}
	parser, ok := styles.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown style system '%s'", name)
	}
	return func() { _ = parser.Parse(props) }, nil
}

func writeBench(w io.Writer, results []benchResult) error {
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%-12s %s %s\n", r.name, r.result.String(), r.result.MemString()); err != nil {
			return err
		}
	}
	return nil
}
