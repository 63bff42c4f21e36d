package console

import (
	"fmt"
	"strings"

	"liftbank/src/types"
)

// Render draws the building top floor first. Each shaft shows the car where it
// stands: [ ] idle, [^] or [v] departing, and * marks the floor it is heading to.
func Render(snap types.Snapshot) string {
	var b strings.Builder

	b.WriteString("Floor |")
	for _, e := range snap.Elevators {
		fmt.Fprintf(&b, " %-3s", elevatorLabel(e.ID))
	}
	b.WriteString(" | Calls\n")

	for floor := snap.Floors; floor >= 1; floor-- {
		fmt.Fprintf(&b, "%5d |", floor)
		for _, e := range snap.Elevators {
			fmt.Fprintf(&b, " %s", shaftCell(e, floor))
		}
		fmt.Fprintf(&b, " | %s\n", callCell(snap.Calls, floor))
	}

	for _, e := range snap.Elevators {
		fmt.Fprintf(&b, "  %s\n", FormatElevator(e))
	}
	if len(snap.Calls) == 0 {
		b.WriteString("  no pending calls\n")
	}
	for i, c := range snap.Calls {
		fmt.Fprintf(&b, "  #%d %s\n", i+1, FormatCall(c))
	}
	return b.String()
}

func shaftCell(e types.Elevator, floor int) string {
	switch {
	case e.CurrentFloor == floor && e.Direction == types.Up:
		return "[^]"
	case e.CurrentFloor == floor && e.Direction == types.Down:
		return "[v]"
	case e.CurrentFloor == floor:
		return "[ ]"
	case e.TargetFloor != nil && *e.TargetFloor == floor:
		return " * "
	}
	return " . "
}

func callCell(calls []types.Call, floor int) string {
	var marks []string
	for _, c := range calls {
		if c.Floor != floor {
			continue
		}
		if c.Direction == types.Up {
			marks = append(marks, "^")
		} else {
			marks = append(marks, "v")
		}
	}
	return strings.Join(marks, " ")
}

func FormatElevator(e types.Elevator) string {
	if e.IsMoving && e.TargetFloor != nil {
		return fmt.Sprintf("%s: floor %d -> %d (%s)", elevatorLabel(e.ID), e.CurrentFloor, *e.TargetFloor, e.Direction)
	}
	return fmt.Sprintf("%s: floor %d (idle)", elevatorLabel(e.ID), e.CurrentFloor)
}

// elevatorLabel names a car the way operators count them, from E1.
func elevatorLabel(id int) string {
	return fmt.Sprintf("E%d", id+1)
}

func FormatCall(c types.Call) string {
	return fmt.Sprintf("floor %d %s [%s]", c.Floor, c.Direction, c.ID)
}
