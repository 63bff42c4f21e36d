package fleet

import (
	"log/slog"
	"slices"
	"time"

	"github.com/tiendc/go-deepcopy"

	"liftbank/src/config"
	"liftbank/src/types"
)

// Fleet owns every car of the building. It is not safe for concurrent use;
// the session serializes all calls, including arrivals coming back from the Scheduler.
type Fleet struct {
	floors         int
	elevators      map[int]*types.Elevator
	epoch          uint64
	travelPerFloor time.Duration
	timer          Scheduler
	onArrival      ArrivalFunc
}

func New(timer Scheduler, travelPerFloor time.Duration, onArrival ArrivalFunc) *Fleet {
	if travelPerFloor <= 0 {
		travelPerFloor = config.TravelPerFloor
	}
	return &Fleet{
		elevators:      make(map[int]*types.Elevator),
		travelPerFloor: travelPerFloor,
		timer:          timer,
		onArrival:      onArrival,
	}
}

// Configure clamps the counts and replaces the whole fleet with idle cars at the ground floor.
// Pending travel timers are stopped and the epoch is advanced, so late arrivals of the old fleet are ignored.
func (f *Fleet) Configure(numFloors, numElevators int) (floors, elevators int) {
	floors = config.ClampFloors(numFloors)
	elevators = config.ClampElevators(numElevators)

	f.timer.StopAll()
	f.epoch++
	f.floors = floors
	f.elevators = make(map[int]*types.Elevator, elevators)
	for id := 0; id < elevators; id++ {
		f.elevators[id] = newElevator(id)
	}
	slog.Info("Fleet configured", "floors", floors, "elevators", elevators, "epoch", f.epoch)
	return floors, elevators
}

func newElevator(id int) *types.Elevator {
	return &types.Elevator{
		ID:           id,
		CurrentFloor: config.GroundFloor,
		Direction:    types.Idle,
	}
}

// Move starts a car towards targetFloor and schedules its arrival.
func (f *Fleet) Move(elevatorID, targetFloor int) MoveResult {
	elevator, ok := f.elevators[elevatorID]
	switch {
	case !ok:
		slog.Debug("Move ignored", "elevator", elevatorID, "reason", MoveUnknownElevator)
		return MoveUnknownElevator
	case elevator.IsMoving:
		slog.Debug("Move ignored", "elevator", elevatorID, "reason", MoveAlreadyMoving)
		return MoveAlreadyMoving
	case targetFloor == elevator.CurrentFloor:
		slog.Debug("Move ignored", "elevator", elevatorID, "reason", MoveAlreadyAtFloor)
		return MoveAlreadyAtFloor
	case targetFloor < config.GroundFloor || targetFloor > f.floors:
		slog.Debug("Move ignored", "elevator", elevatorID, "floor", targetFloor, "reason", MoveFloorOutOfRange)
		return MoveFloorOutOfRange
	}

	departFloor := elevator.CurrentFloor
	startMoving(elevator, targetFloor)
	duration := TravelTime(departFloor, targetFloor, f.travelPerFloor)
	epoch := f.epoch
	f.timer.Start(elevatorID, duration, func() {
		f.onArrival(elevatorID, epoch)
	})
	slog.Debug("Elevator departing",
		"elevator", elevatorID,
		"from", departFloor,
		"to", targetFloor,
		"direction", elevator.Direction,
		"travel", duration)
	return MoveAccepted
}

// Complete settles a car at its target. Arrivals from an older epoch, or for a car
// that is not moving, are discarded and reported as false.
func (f *Fleet) Complete(elevatorID int, epoch uint64) bool {
	if epoch != f.epoch {
		slog.Debug("Stale arrival discarded", "elevator", elevatorID, "epoch", epoch, "current", f.epoch)
		return false
	}
	elevator, ok := f.elevators[elevatorID]
	if !ok || !elevator.IsMoving {
		slog.Debug("Arrival for idle or unknown elevator discarded", "elevator", elevatorID)
		return false
	}
	arrive(elevator)
	slog.Info("Elevator arrived", "elevator", elevatorID, "floor", elevator.CurrentFloor)
	return true
}

// Elevators returns a deep copy of all cars ordered by id.
func (f *Fleet) Elevators() []types.Elevator {
	list := make([]types.Elevator, 0, len(f.elevators))
	for _, elevator := range f.elevators {
		list = append(list, *elevator)
	}
	slices.SortFunc(list, func(a, b types.Elevator) int { return a.ID - b.ID })

	var out []types.Elevator
	if err := deepcopy.Copy(&out, list); err != nil {
		panic(err)
	}
	return out
}

// Elevator returns a deep copy of one car.
func (f *Fleet) Elevator(elevatorID int) (types.Elevator, bool) {
	elevator, ok := f.elevators[elevatorID]
	if !ok {
		return types.Elevator{}, false
	}
	var out types.Elevator
	if err := deepcopy.Copy(&out, elevator); err != nil {
		panic(err)
	}
	return out, true
}

func (f *Fleet) Floors() int { return f.floors }

func (f *Fleet) Size() int { return len(f.elevators) }

func (f *Fleet) Epoch() uint64 { return f.epoch }

// Moving returns the number of cars currently travelling.
func (f *Fleet) Moving() int {
	n := 0
	for _, elevator := range f.elevators {
		if elevator.IsMoving {
			n++
		}
	}
	return n
}
