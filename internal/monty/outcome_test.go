package monty

import (
	"errors"
	"testing"
)

// TestJudgeAgreesWithArrangementLookup checks Judge against a direct
// prize lookup for every arrangement and pick.
func TestJudgeAgreesWithArrangementLookup(t *testing.T) {
	for car := Door(1); car <= DoorCount; car++ {
		a := arrangementWithCar(car)
		for pick := Door(1); pick <= DoorCount; pick++ {
			outcome, err := Judge(pick, a)
			if err != nil {
				t.Fatalf("Judge(%d, car=%d) returned error: %v", pick, car, err)
			}
			want := OutcomeLose
			if a.Prize(pick) == PrizeCar {
				want = OutcomeWin
			}
			if outcome != want {
				t.Fatalf("Judge(%d, car=%d) = %v, want %v", pick, car, outcome, want)
			}
		}
	}
}

// TestJudgeRejectsInvalidInput ensures malformed inputs fail fast.
func TestJudgeRejectsInvalidInput(t *testing.T) {
	tcs := []struct {
		name        string
		pick        Door
		arrangement Arrangement
		wantErr     error
	}{
		{name: "no car", pick: 1, arrangement: Arrangement{}, wantErr: ErrInvalidArrangement},
		{name: "pick too low", pick: 0, arrangement: arrangementWithCar(2), wantErr: ErrInvalidDoor},
		{name: "pick too high", pick: 4, arrangement: arrangementWithCar(2), wantErr: ErrInvalidDoor},
	}

	for _, tc := range tcs {
		_, err := Judge(tc.pick, tc.arrangement)
		if !errors.Is(err, tc.wantErr) {
			t.Fatalf("%s: Judge error = %v, want %v", tc.name, err, tc.wantErr)
		}
	}
}
