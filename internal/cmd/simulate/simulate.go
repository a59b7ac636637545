// Package simulate parses simulation command flags, runs the requested
// number of trials, and renders the per-strategy summary.
package simulate

import (
	"context"
	"flag"
	"fmt"
	"io"

	entrypoint "github.com/anaitab/montyhall/internal/platform/cmd"
	"github.com/anaitab/montyhall/internal/platform/random"

	"github.com/anaitab/montyhall/internal/monty/sim"
)

// Config holds simulate command configuration.
type Config struct {
	Trials int   `env:"MONTYHALL_TRIALS" envDefault:"10000"`
	Seed   int64 `env:"MONTYHALL_SEED"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Trials, "trials", cfg.Trials, "number of trials to simulate")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for reproducibility (0 = random)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the simulation and writes the summary to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSimulate, func(context.Context) error {
		seed := cfg.Seed
		if seed == 0 {
			generated, err := random.NewSeed()
			if err != nil {
				return fmt.Errorf("generate seed: %w", err)
			}
			seed = generated
		}

		result, err := sim.Run(sim.Request{Trials: cfg.Trials, Seed: seed})
		if err != nil {
			return err
		}
		return render(out, seed, result.Summary)
	})
}
