package types

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Direction int

const (
	Idle Direction = iota
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Idle:
		return "idle"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection accepts "up"/"u" and "down"/"d" in any case. Idle is not a valid call direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	}
	return Idle, fmt.Errorf("unknown direction %q", s)
}

// Elevator is one car. IsMoving, a non-idle Direction and a non-nil TargetFloor always go together.
type Elevator struct {
	ID           int
	CurrentFloor int
	TargetFloor  *int
	Direction    Direction
	IsMoving     bool
}

type CallID = uuid.UUID

// Call is a pending request for service at a floor.
type Call struct {
	ID        CallID
	Floor     int
	Direction Direction
}

// Snapshot is what the presentation reads after every change.
// Epoch changes whenever the fleet is rebuilt.
type Snapshot struct {
	Epoch     uint64
	Floors    int
	Elevators []Elevator
	Calls     []Call
}
