// Package monty implements the rules of the Monty Hall game: prize
// placement, the contestant's pick, the host's reveal, the stay-or-switch
// decision, and outcome judgement.
package monty

import "errors"

// DoorCount is the number of doors in the game.
const DoorCount = 3

// Door identifies one of the three doors, numbered 1 through 3.
type Door int

// Valid reports whether the door is in the 1..3 range.
func (d Door) Valid() bool {
	return d >= 1 && d <= DoorCount
}

// Prize is the label hidden behind a door.
type Prize int

const (
	PrizeGoat Prize = iota
	PrizeCar
)

func (p Prize) String() string {
	switch p {
	case PrizeGoat:
		return "goat"
	case PrizeCar:
		return "car"
	default:
		return "unknown"
	}
}

// ErrInvalidArrangement indicates an arrangement does not hold exactly one
// car and two goats.
var ErrInvalidArrangement = errors.New("arrangement must hold exactly one car and two goats")

// ErrInvalidDoor indicates a door is outside the 1..3 range.
var ErrInvalidDoor = errors.New("door must be between 1 and 3")

// Arrangement is the hidden assignment of prizes to doors for one trial,
// indexed by door number minus one. It is fixed once created.
type Arrangement [DoorCount]Prize

// Prize returns the prize behind the given door. The door must be valid.
func (a Arrangement) Prize(d Door) Prize {
	return a[d-1]
}

// Validate checks the exactly-one-car invariant.
func (a Arrangement) Validate() error {
	cars := 0
	for _, p := range a {
		switch p {
		case PrizeCar:
			cars++
		case PrizeGoat:
		default:
			return ErrInvalidArrangement
		}
	}
	if cars != 1 {
		return ErrInvalidArrangement
	}
	return nil
}

// Source produces uniform random integers in [0, n). *math/rand.Rand
// satisfies it; tests may supply fixed sequences.
type Source interface {
	Intn(n int) int
}

// NewArrangement places the car behind a uniformly random door and goats
// behind the other two.
func NewArrangement(src Source) Arrangement {
	var a Arrangement
	a[src.Intn(DoorCount)] = PrizeCar
	return a
}

// PickDoor draws the contestant's initial pick uniformly from the three
// doors, independent of the arrangement.
func PickDoor(src Source) Door {
	return Door(src.Intn(DoorCount) + 1)
}
