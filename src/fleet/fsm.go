// Contains the two transitions of the car state machine: Idle -> Moving and Moving -> Idle.
package fleet

import (
	"time"

	"liftbank/src/types"
)

func startMoving(elevator *types.Elevator, targetFloor int) {
	target := targetFloor
	elevator.TargetFloor = &target
	elevator.Direction = directionTo(elevator.CurrentFloor, targetFloor)
	elevator.IsMoving = true
}

func arrive(elevator *types.Elevator) {
	elevator.CurrentFloor = *elevator.TargetFloor
	elevator.TargetFloor = nil
	elevator.Direction = types.Idle
	elevator.IsMoving = false
}

func directionTo(from, to int) types.Direction {
	if to > from {
		return types.Up
	}
	return types.Down
}

// TravelTime is the simulated time to travel between two floors.
func TravelTime(from, to int, perFloor time.Duration) time.Duration {
	return time.Duration(abs(to-from)) * perFloor
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
