package fleet

import "time"

// Scheduler runs the travel delay of a move. It is satisfied by *timer.TravelTimer.
type Scheduler interface {
	Start(elevatorID int, duration time.Duration, onExpire func())
	StopAll()
}

// ArrivalFunc is called from the scheduler when a travel delay expires.
// It must hand the arrival back to whoever serializes access to the Fleet.
type ArrivalFunc func(elevatorID int, epoch uint64)

type MoveResult int

const (
	MoveAccepted MoveResult = iota
	MoveUnknownElevator
	MoveAlreadyMoving
	MoveAlreadyAtFloor
	MoveFloorOutOfRange
)

func (r MoveResult) Accepted() bool {
	return r == MoveAccepted
}

func (r MoveResult) String() string {
	switch r {
	case MoveAccepted:
		return "accepted"
	case MoveUnknownElevator:
		return "unknown_elevator"
	case MoveAlreadyMoving:
		return "already_moving"
	case MoveAlreadyAtFloor:
		return "already_at_floor"
	case MoveFloorOutOfRange:
		return "floor_out_of_range"
	}
	return "unknown"
}
