package console

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"liftbank/src/types"
)

func TestRender(t *testing.T) {
	target := 3
	snap := types.Snapshot{
		Floors: 3,
		Elevators: []types.Elevator{
			{ID: 0, CurrentFloor: 1, TargetFloor: &target, Direction: types.Up, IsMoving: true},
			{ID: 1, CurrentFloor: 2},
		},
		Calls: []types.Call{
			{ID: uuid.UUID{15: 1}, Floor: 2, Direction: types.Up},
			{ID: uuid.UUID{15: 2}, Floor: 2, Direction: types.Down},
		},
	}

	want := "" +
		"Floor | E1  E2  | Calls\n" +
		"    3 |  *   .  | \n" +
		"    2 |  .  [ ] | ^ v\n" +
		"    1 | [^]  .  | \n" +
		"  E1: floor 1 -> 3 (up)\n" +
		"  E2: floor 2 (idle)\n" +
		"  #1 floor 2 up [00000000-0000-0000-0000-000000000001]\n" +
		"  #2 floor 2 down [00000000-0000-0000-0000-000000000002]\n"
	assert.Equal(t, want, Render(snap))
}

func TestRenderNoCalls(t *testing.T) {
	snap := types.Snapshot{
		Floors:    2,
		Elevators: []types.Elevator{{ID: 0, CurrentFloor: 2}, {ID: 1, CurrentFloor: 1}},
	}
	assert.Contains(t, Render(snap), "  no pending calls\n")
}
