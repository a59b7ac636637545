package monty

// Outcome classifies a final pick as a win or a loss.
type Outcome int

const (
	OutcomeUnspecified Outcome = iota
	OutcomeWin
	OutcomeLose
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUnspecified:
		return "unspecified"
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Judge resolves the final pick against the arrangement: a win when the
// picked door hides the car, a loss otherwise.
func Judge(pick Door, a Arrangement) (Outcome, error) {
	if err := a.Validate(); err != nil {
		return OutcomeUnspecified, err
	}
	if !pick.Valid() {
		return OutcomeUnspecified, ErrInvalidDoor
	}
	if a.Prize(pick) == PrizeCar {
		return OutcomeWin, nil
	}
	return OutcomeLose, nil
}
