package simulate

import (
	"context"
	"errors"
	"flag"
	"strings"
	"testing"

	"github.com/anaitab/montyhall/internal/monty/sim"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Trials != 10000 {
		t.Fatalf("expected default trials 10000, got %d", cfg.Trials)
	}
	if cfg.Seed != 0 {
		t.Fatalf("expected default seed 0, got %d", cfg.Seed)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("MONTYHALL_TRIALS", "500")

	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-seed", "42"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Trials != 500 {
		t.Fatalf("expected env trials 500, got %d", cfg.Trials)
	}
	if cfg.Seed != 42 {
		t.Fatalf("expected flag seed 42, got %d", cfg.Seed)
	}
}

// TestRunWritesSummary ensures a seeded run renders both strategy rows.
func TestRunWritesSummary(t *testing.T) {
	var out strings.Builder

	if err := Run(context.Background(), Config{Trials: 100, Seed: 1}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "seed 1") {
		t.Fatalf("expected seed line, got %q", got)
	}
	if !strings.Contains(got, "stay") || !strings.Contains(got, "switch") {
		t.Fatalf("expected both strategy rows, got %q", got)
	}
	if strings.Contains(got, "n/a") {
		t.Fatalf("expected rates for a non-empty run, got %q", got)
	}
}

// TestRunZeroTrialsRendersNoData ensures the degenerate run reports n/a
// rates instead of fabricated proportions.
func TestRunZeroTrialsRendersNoData(t *testing.T) {
	var out strings.Builder

	if err := Run(context.Background(), Config{Trials: 0, Seed: 1}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "n/a") {
		t.Fatalf("expected n/a markers, got %q", out.String())
	}
}

// TestRunRejectsNegativeTrials ensures validation surfaces before output.
func TestRunRejectsNegativeTrials(t *testing.T) {
	var out strings.Builder

	err := Run(context.Background(), Config{Trials: -5, Seed: 1}, &out)
	if !errors.Is(err, sim.ErrNegativeTrials) {
		t.Fatalf("run error = %v, want %v", err, sim.ErrNegativeTrials)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output on error, got %q", out.String())
	}
}

// TestRunDeterministicOutput ensures the same seed renders identical text.
func TestRunDeterministicOutput(t *testing.T) {
	var first, second strings.Builder

	if err := Run(context.Background(), Config{Trials: 200, Seed: 9}, &first); err != nil {
		t.Fatalf("run: %v", err)
	}
	if err := Run(context.Background(), Config{Trials: 200, Seed: 9}, &second); err != nil {
		t.Fatalf("run: %v", err)
	}
	if first.String() != second.String() {
		t.Fatalf("outputs differ:\n%s\n---\n%s", first.String(), second.String())
	}
}
