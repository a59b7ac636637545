// Package sim runs repeated Monty Hall trials and aggregates their
// outcomes into per-strategy win proportions.
package sim

import (
	"errors"
	"math"
	"math/rand"

	"github.com/anaitab/montyhall/internal/monty"
)

// ErrNegativeTrials indicates a simulation was requested with a negative
// trial count.
var ErrNegativeTrials = errors.New("trial count must be non-negative")

// Request describes a simulation run.
type Request struct {
	Trials int
	Seed   int64
}

// StrategySummary is the derived reporting view for one strategy. Rates
// are row-normalized proportions rounded to two decimal places; they are
// zero when Trials is zero, which marks a run with no data.
type StrategySummary struct {
	Trials   int
	Wins     int
	Losses   int
	WinRate  float64
	LossRate float64
}

// Summary holds the per-strategy reporting views.
type Summary struct {
	Stay   StrategySummary
	Switch StrategySummary
}

// Result captures a full simulation run: the outcome table in production
// order (Stay then Switch for each trial) and the derived summary.
type Result struct {
	Table   []monty.Record
	Summary Summary
}

// Run executes the requested number of trials and aggregates their
// records.
//
// # Determinism
//
// Run is deterministic with respect to the Seed field on Request: all
// trials draw from a single source seeded once, so the same request
// always produces the same Result.
//
// # Validation
//
// A negative trial count returns ErrNegativeTrials before any trial
// executes. A zero trial count is a valid degenerate run: the table is
// empty and both summaries report zero trials.
func Run(request Request) (Result, error) {
	if request.Trials < 0 {
		return Result{}, ErrNegativeTrials
	}

	rng := rand.New(rand.NewSource(request.Seed))
	table := make([]monty.Record, 0, 2*request.Trials)
	stayWins := 0
	switchWins := 0

	for i := 0; i < request.Trials; i++ {
		trial, err := monty.PlayTrial(rng)
		if err != nil {
			return Result{}, err
		}
		for _, record := range trial.Records {
			table = append(table, record)
			if record.Outcome != monty.OutcomeWin {
				continue
			}
			switch record.Strategy {
			case monty.StrategyStay:
				stayWins++
			case monty.StrategySwitch:
				switchWins++
			}
		}
	}

	return Result{
		Table: table,
		Summary: Summary{
			Stay:   summarize(request.Trials, stayWins),
			Switch: summarize(request.Trials, switchWins),
		},
	}, nil
}

func summarize(trials, wins int) StrategySummary {
	summary := StrategySummary{
		Trials: trials,
		Wins:   wins,
		Losses: trials - wins,
	}
	if trials == 0 {
		return summary
	}
	summary.WinRate = round2(float64(wins) / float64(trials))
	summary.LossRate = round2(float64(trials-wins) / float64(trials))
	return summary
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
