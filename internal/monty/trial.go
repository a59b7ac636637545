package monty

import "math/rand"

// Record pairs a strategy with the outcome it produced in one trial. It
// is the unit of aggregation.
type Record struct {
	Strategy Strategy
	Outcome  Outcome
}

// TrialRequest describes a request to run one trial.
type TrialRequest struct {
	Seed int64
}

// TrialResult captures everything one trial produced. Both records share
// the same arrangement, initial pick and revealed door; only the final
// pick differs between them, so the two strategies are compared under
// identical randomness.
type TrialResult struct {
	Arrangement Arrangement
	InitialPick Door
	Revealed    Door
	Records     [2]Record
}

// RunTrial runs a single complete trial.
//
// RunTrial is deterministic with respect to the Seed field on
// TrialRequest: the same seed always produces the same TrialResult.
func RunTrial(request TrialRequest) (TrialResult, error) {
	return PlayTrial(rand.New(rand.NewSource(request.Seed)))
}

// PlayTrial runs one trial drawing randomness from the provided source.
// Callers running many trials should reuse one source across calls so
// each trial sees fresh draws.
//
// A trial sets up one arrangement and one initial pick, computes the
// host's reveal, then evaluates Stay and Switch against that same state,
// producing exactly one record per strategy, Stay first.
func PlayTrial(src Source) (TrialResult, error) {
	arrangement := NewArrangement(src)
	pick := PickDoor(src)

	revealed, err := Reveal(arrangement, pick, src)
	if err != nil {
		return TrialResult{}, err
	}

	result := TrialResult{
		Arrangement: arrangement,
		InitialPick: pick,
		Revealed:    revealed,
	}

	for i, strategy := range []Strategy{StrategyStay, StrategySwitch} {
		final, err := FinalPick(strategy, revealed, pick)
		if err != nil {
			return TrialResult{}, err
		}
		outcome, err := Judge(final, arrangement)
		if err != nil {
			return TrialResult{}, err
		}
		result.Records[i] = Record{Strategy: strategy, Outcome: outcome}
	}

	return result, nil
}
