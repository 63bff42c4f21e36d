package session

import (
	"log/slog"

	"liftbank/src/config"
	"liftbank/src/metrics"
	"liftbank/src/types"
)

// Configure rebuilds the fleet and clears every pending call. It returns the clamped counts.
func (s *Session) Configure(numFloors, numElevators int) (floors, elevators int) {
	s.exec(func() {
		floors, elevators = s.configure(numFloors, numElevators)
	})
	return floors, elevators
}

func (s *Session) configure(numFloors, numElevators int) (floors, elevators int) {
	floors, elevators = s.fleet.Configure(numFloors, numElevators)
	s.calls.Clear()
	metrics.RecordConfiguration(floors, elevators)
	s.publish()
	return floors, elevators
}

// ConfigureInput is Configure for text typed by the operator: unparsable values
// fall back to the lower bound. Input that resolves to the current building
// leaves cars and pending calls untouched.
func (s *Session) ConfigureInput(numFloors, numElevators string) (floors, elevators int) {
	floors = config.ParseCount(numFloors, config.MinFloors, config.MaxFloors)
	elevators = config.ParseCount(numElevators, config.MinElevators, config.MaxElevators)
	s.exec(func() {
		if floors == s.fleet.Floors() && elevators == s.fleet.Size() {
			slog.Debug("Configuration unchanged", "floors", floors, "elevators", elevators)
			return
		}
		s.configure(floors, elevators)
	})
	return floors, elevators
}

// CallElevator registers a hall call. It returns false for a duplicate of a pending call
// (together with that call) and for calls that no hall button could produce.
func (s *Session) CallElevator(floor int, direction types.Direction) (call types.Call, registered bool) {
	s.exec(func() {
		if !s.validCall(floor, direction) {
			slog.Debug("Invalid call ignored", "floor", floor, "direction", direction)
			return
		}
		call, registered = s.calls.Register(floor, direction)
		metrics.RecordCall(registered)
		if registered {
			s.publish()
		}
	})
	return call, registered
}

// There is no up button on the top floor and no down button on the ground floor.
func (s *Session) validCall(floor int, direction types.Direction) bool {
	top := s.fleet.Floors()
	switch {
	case floor < config.GroundFloor || floor > top:
		return false
	case direction == types.Up:
		return floor < top
	case direction == types.Down:
		return floor > config.GroundFloor
	}
	return false
}

// MoveElevator sends a car to a floor. It reports whether the car started moving.
func (s *Session) MoveElevator(elevatorID, targetFloor int) (moved bool) {
	s.exec(func() {
		moved = s.move(elevatorID, targetFloor)
		if moved {
			s.publish()
		}
	})
	return moved
}

func (s *Session) move(elevatorID, targetFloor int) bool {
	from := 0
	if elevator, ok := s.fleet.Elevator(elevatorID); ok {
		from = elevator.CurrentFloor
	}
	result := s.fleet.Move(elevatorID, targetFloor)
	metrics.RecordMove(result.String(), result.Accepted(), abs(targetFloor-from))
	return result.Accepted()
}

// AssignCall sends an elevator to the floor of a pending call and removes the call.
// The call is consumed even when the elevator rejects the move, e.g. because it is
// already travelling. found is false when no such call is pending.
func (s *Session) AssignCall(callID types.CallID, elevatorID int) (moved, found bool) {
	s.exec(func() {
		var call types.Call
		call, found = s.calls.Get(callID)
		if !found {
			slog.Debug("Assignment of unknown call ignored", "call", callID)
			return
		}
		moved = s.move(elevatorID, call.Floor)
		s.calls.Take(callID)
		metrics.RecordAssignment(moved)
		slog.Info("Call assigned",
			"call", callID,
			"floor", call.Floor,
			"direction", call.Direction,
			"elevator", elevatorID,
			"moved", moved)
		s.publish()
	})
	return moved, found
}

// Elevators returns a copy of all cars ordered by id.
func (s *Session) Elevators() (elevators []types.Elevator) {
	s.exec(func() { elevators = s.fleet.Elevators() })
	return elevators
}

// Calls returns a copy of the pending calls in the order they were made.
func (s *Session) Calls() (pending []types.Call) {
	s.exec(func() { pending = s.calls.List() })
	return pending
}

// Config returns the current floor and elevator counts.
func (s *Session) Config() (floors, elevators int) {
	s.exec(func() { floors, elevators = s.fleet.Floors(), s.fleet.Size() })
	return floors, elevators
}

func (s *Session) Snapshot() (snap types.Snapshot) {
	s.exec(func() { snap = s.snapshot() })
	return snap
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
