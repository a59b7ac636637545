package monty

import "errors"

// Strategy is the contestant's policy after the host's reveal.
type Strategy int

const (
	StrategyUnspecified Strategy = iota
	StrategyStay
	StrategySwitch
)

func (s Strategy) String() string {
	switch s {
	case StrategyUnspecified:
		return "unspecified"
	case StrategyStay:
		return "stay"
	case StrategySwitch:
		return "switch"
	default:
		return "unknown"
	}
}

// ErrInvalidStrategy indicates a strategy is neither stay nor switch.
var ErrInvalidStrategy = errors.New("strategy must be stay or switch")

// ErrSameDoor indicates the revealed door matches the initial pick.
var ErrSameDoor = errors.New("revealed door must differ from the initial pick")

// The three door numbers sum to 6, so the remaining door is the difference.
const doorSum = 6

// FinalPick computes the contestant's final door. Staying keeps the
// initial pick; switching takes the unique door that is neither the
// revealed door nor the initial pick.
func FinalPick(strategy Strategy, revealed, initial Door) (Door, error) {
	if !revealed.Valid() || !initial.Valid() {
		return 0, ErrInvalidDoor
	}
	if revealed == initial {
		return 0, ErrSameDoor
	}

	switch strategy {
	case StrategyStay:
		return initial, nil
	case StrategySwitch:
		return doorSum - revealed - initial, nil
	default:
		return 0, ErrInvalidStrategy
	}
}
