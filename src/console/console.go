package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"liftbank/src/session"
	"liftbank/src/types"
)

const usage = `Commands:
  config <floors> <elevators>   rebuild the building (clears all calls)
  call <floor> <up|down>        press a hall button
  move <elevator> <floor>       send an elevator to a floor
  assign <call> <elevator>      send an elevator to a pending call (#position or id)
Elevators are numbered from 1 (E1, E2, ...), floors from 1 at the ground.
  show                          draw the building
  help                          show this text
  quit                          leave
`

var errQuit = errors.New("quit")

// Console is the operator's view of a session, reading one command per line.
type Console struct {
	session *session.Session
	in      io.Reader
	out     io.Writer
	last    types.Snapshot

	// closed once the reader goroutine of the latest Run has exited
	readDone <-chan struct{}
}

func New(s *session.Session, in io.Reader, out io.Writer) *Console {
	return &Console{session: s, in: in, out: out}
}

// Run executes commands until quit, end of input or ctx is done. Arrivals are
// reported as they happen, between commands.
func (c *Console) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readDone := make(chan struct{})
	readErr := make(chan error, 1)
	go func() {
		defer close(readDone)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()
	c.readDone = readDone

	c.last = c.session.Snapshot()
	fmt.Fprint(c.out, Render(c.last))
	c.prompt()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-readErr:
			return err
		case line := <-lines:
			if err := c.Execute(line); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				fmt.Fprintf(c.out, "error: %v\n", err)
			}
			c.prompt()
		case snap, ok := <-c.session.Updates():
			if !ok {
				return nil
			}
			c.reportArrivals(snap)
		}
	}
}

func (c *Console) prompt() {
	fmt.Fprint(c.out, "> ")
}

// reportArrivals prints every car that was moving in the previous snapshot and is idle now.
func (c *Console) reportArrivals(snap types.Snapshot) {
	if snap.Epoch != c.last.Epoch {
		c.last = snap
		return
	}
	for _, e := range snap.Elevators {
		if e.ID < len(c.last.Elevators) && c.last.Elevators[e.ID].IsMoving && !e.IsMoving {
			fmt.Fprintf(c.out, "\n%s arrived at floor %d\n", elevatorLabel(e.ID), e.CurrentFloor)
		}
	}
	c.last = snap
}

// Execute runs a single command line.
func (c *Console) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	slog.Debug("Console command", "cmd", cmd, "args", args)

	switch cmd {
	case "config", "configure":
		if len(args) != 2 {
			return errors.New("usage: config <floors> <elevators>")
		}
		floors, elevators := c.session.ConfigureInput(args[0], args[1])
		fmt.Fprintf(c.out, "building has %d floors and %d elevators\n", floors, elevators)
		c.show()
	case "call":
		return c.call(args)
	case "move":
		return c.move(args)
	case "assign":
		return c.assign(args)
	case "show", "ls":
		c.show()
	case "help", "?":
		fmt.Fprint(c.out, usage)
	case "quit", "exit", "q":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q, type help", cmd)
	}
	return nil
}

func (c *Console) call(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: call <floor> <up|down>")
	}
	floor, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("floor: %w", err)
	}
	direction, err := types.ParseDirection(args[1])
	if err != nil {
		return err
	}
	call, registered := c.session.CallElevator(floor, direction)
	switch {
	case registered:
		fmt.Fprintf(c.out, "call registered: %s\n", FormatCall(call))
	case call.Floor != 0:
		fmt.Fprintf(c.out, "already pending: %s\n", FormatCall(call))
	default:
		fmt.Fprintf(c.out, "no %s button on floor %d\n", direction, floor)
	}
	return nil
}

func (c *Console) move(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: move <elevator> <floor>")
	}
	elevatorID, err := parseElevator(args[0])
	if err != nil {
		return err
	}
	floor, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("floor: %w", err)
	}
	if c.session.MoveElevator(elevatorID, floor) {
		fmt.Fprintf(c.out, "%s moving to floor %d\n", elevatorLabel(elevatorID), floor)
	} else {
		fmt.Fprintf(c.out, "%s did not move\n", elevatorLabel(elevatorID))
	}
	return nil
}

func (c *Console) assign(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: assign <call> <elevator>")
	}
	callID, err := c.resolveCall(args[0])
	if err != nil {
		return err
	}
	elevatorID, err := parseElevator(args[1])
	if err != nil {
		return err
	}
	moved, found := c.session.AssignCall(callID, elevatorID)
	switch {
	case !found:
		fmt.Fprintf(c.out, "no pending call %s\n", args[0])
	case moved:
		fmt.Fprintf(c.out, "call assigned, %s moving\n", elevatorLabel(elevatorID))
	default:
		fmt.Fprintf(c.out, "call cleared, %s did not move\n", elevatorLabel(elevatorID))
	}
	return nil
}

// parseElevator turns the operator's 1-based car number into a fleet id.
func parseElevator(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(strings.ToUpper(arg), "E"))
	if err != nil {
		return 0, fmt.Errorf("elevator: %w", err)
	}
	if n < 1 {
		return 0, fmt.Errorf("elevator %d: cars are numbered from 1", n)
	}
	return n - 1, nil
}

// resolveCall accepts a 1-based position in the pending list, with or without '#', or a call id.
func (c *Console) resolveCall(ref string) (types.CallID, error) {
	if position, err := strconv.Atoi(strings.TrimPrefix(ref, "#")); err == nil {
		pending := c.session.Calls()
		if position < 1 || position > len(pending) {
			return types.CallID{}, fmt.Errorf("no pending call at position %d", position)
		}
		return pending[position-1].ID, nil
	}
	id, err := uuid.Parse(ref)
	if err != nil {
		return types.CallID{}, fmt.Errorf("call %q is neither a position nor an id: %w", ref, err)
	}
	return id, nil
}

func (c *Console) show() {
	fmt.Fprint(c.out, Render(c.session.Snapshot()))
}
