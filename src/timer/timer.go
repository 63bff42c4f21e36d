package timer

import (
	"log/slog"
	"sync"
	"time"

	"k8s.io/utils/clock"
)

// TravelTimer runs one fire-once travel timer per elevator.
// StopAll is called when the fleet is rebuilt so that no timer of the old fleet fires.
type TravelTimer struct {
	clock   clock.WithDelayedExecution
	mu      sync.Mutex
	pending map[int]clock.Timer
}

func New(c clock.WithDelayedExecution) *TravelTimer {
	if c == nil {
		c = clock.RealClock{}
	}
	return &TravelTimer{
		clock:   c,
		pending: make(map[int]clock.Timer),
	}
}

// Start schedules onExpire after duration. A running timer for the same elevator is replaced.
func (t *TravelTimer) Start(elevatorID int, duration time.Duration, onExpire func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if old, ok := t.pending[elevatorID]; ok {
		old.Stop()
	}
	var tm clock.Timer
	tm = t.clock.AfterFunc(duration, func() {
		t.mu.Lock()
		if t.pending[elevatorID] == tm {
			delete(t.pending, elevatorID)
		}
		t.mu.Unlock()
		slog.Debug("Travel timer expired", "elevator", elevatorID)
		onExpire()
	})
	t.pending[elevatorID] = tm
}

// StopAll stops every pending timer. Callbacks that already fired are not recalled.
func (t *TravelTimer) StopAll() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for id, tm := range t.pending {
		tm.Stop()
		delete(t.pending, id)
	}
}

// Pending returns the number of timers that have not fired yet.
func (t *TravelTimer) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending)
}
