package monty

// Reveal applies the host's door-opening rule: the host opens a door that
// is neither the contestant's pick nor the car's door.
//
// When the pick hides the car, both remaining doors hide goats and the
// host chooses between them uniformly at random. When the pick hides a
// goat, only one other goat door exists and the host opens it; no
// randomness is consumed on that branch.
func Reveal(a Arrangement, pick Door, src Source) (Door, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if !pick.Valid() {
		return 0, ErrInvalidDoor
	}

	if a.Prize(pick) == PrizeCar {
		others := make([]Door, 0, DoorCount-1)
		for d := Door(1); d <= DoorCount; d++ {
			if d != pick {
				others = append(others, d)
			}
		}
		return others[src.Intn(len(others))], nil
	}

	for d := Door(1); d <= DoorCount; d++ {
		if d != pick && a.Prize(d) != PrizeCar {
			return d, nil
		}
	}
	// Unreachable for a validated arrangement.
	return 0, ErrInvalidArrangement
}
