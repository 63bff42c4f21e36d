package session

import (
	"context"
	"log/slog"
	"time"

	"k8s.io/utils/clock"

	"liftbank/src/calls"
	"liftbank/src/config"
	"liftbank/src/fleet"
	"liftbank/src/metrics"
	"liftbank/src/timer"
	"liftbank/src/types"
)

// stateCmd is executed by the state manager goroutine, which is the only
// goroutine that touches the fleet and the call registry.
type stateCmd struct {
	Exec func()
}

// Session is one simulated building: a fleet, its pending calls and the
// goroutine that serializes every operation on them.
type Session struct {
	cmds    chan stateCmd
	stopped chan struct{}
	updates chan types.Snapshot

	fleet *fleet.Fleet
	calls *calls.Registry
	timer *timer.TravelTimer
}

type settings struct {
	clock          clock.WithDelayedExecution
	travelPerFloor time.Duration
	floors         int
	elevators      int
	callOpts       []calls.Option
}

type Option func(*settings)

// WithClock sets the clock driving travel delays.
func WithClock(c clock.WithDelayedExecution) Option {
	return func(s *settings) { s.clock = c }
}

func WithTravelPerFloor(d time.Duration) Option {
	return func(s *settings) { s.travelPerFloor = d }
}

// WithConfiguration sets the initial floor and elevator counts.
func WithConfiguration(floors, elevators int) Option {
	return func(s *settings) {
		s.floors = floors
		s.elevators = elevators
	}
}

func WithCallIDs(gen func() types.CallID) Option {
	return func(s *settings) { s.callOpts = append(s.callOpts, calls.WithIDGenerator(gen)) }
}

// New builds a configured session. Start must be called before any operation.
func New(opts ...Option) *Session {
	set := settings{
		clock:          clock.RealClock{},
		travelPerFloor: config.TravelPerFloor,
		floors:         config.DefaultFloors,
		elevators:      config.DefaultElevators,
	}
	for _, opt := range opts {
		opt(&set)
	}

	s := &Session{
		cmds:    make(chan stateCmd),
		stopped: make(chan struct{}),
		updates: make(chan types.Snapshot, config.UpdateBufferSize),
		calls:   calls.NewRegistry(set.callOpts...),
		timer:   timer.New(set.clock),
	}
	s.fleet = fleet.New(s.timer, set.travelPerFloor, s.enqueueArrival)
	floors, elevators := s.fleet.Configure(set.floors, set.elevators)
	metrics.RecordConfiguration(floors, elevators)
	return s
}

// Start runs the state manager until ctx is done. Pending travel timers are
// stopped and the updates channel is closed on exit.
func (s *Session) Start(ctx context.Context) {
	go func() {
		defer close(s.stopped)
		defer close(s.updates)
		for {
			select {
			case cmd := <-s.cmds:
				cmd.Exec()
			case <-ctx.Done():
				s.timer.StopAll()
				slog.Debug("Session stopped")
				return
			}
		}
	}()
}

// Done is closed once the state manager has exited.
func (s *Session) Done() <-chan struct{} {
	return s.stopped
}

// Updates delivers a snapshot after every change, including arrivals.
// Old snapshots are dropped when the reader falls behind.
func (s *Session) Updates() <-chan types.Snapshot {
	return s.updates
}

// exec runs fn on the state manager and waits for it. It reports false if the session is stopped.
func (s *Session) exec(fn func()) bool {
	done := make(chan struct{})
	select {
	case s.cmds <- stateCmd{Exec: func() {
		fn()
		close(done)
	}}:
	case <-s.stopped:
		return false
	}
	<-done
	return true
}

// enqueueArrival is called from the travel timer.
func (s *Session) enqueueArrival(elevatorID int, epoch uint64) {
	select {
	case s.cmds <- stateCmd{Exec: func() { s.arrive(elevatorID, epoch) }}:
	case <-s.stopped:
	}
}

func (s *Session) arrive(elevatorID int, epoch uint64) {
	applied := s.fleet.Complete(elevatorID, epoch)
	metrics.RecordArrival(applied)
	if applied {
		s.publish()
	}
}

func (s *Session) snapshot() types.Snapshot {
	return types.Snapshot{
		Epoch:     s.fleet.Epoch(),
		Floors:    s.fleet.Floors(),
		Elevators: s.fleet.Elevators(),
		Calls:     s.calls.List(),
	}
}

// publish never blocks: when the buffer is full the oldest snapshot is discarded.
func (s *Session) publish() {
	metrics.SetPendingCalls(s.calls.Len())
	metrics.SetMovingElevators(s.fleet.Moving())

	snap := s.snapshot()
	for {
		select {
		case s.updates <- snap:
			return
		default:
		}
		select {
		case <-s.updates:
		default:
		}
	}
}
