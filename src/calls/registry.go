package calls

import (
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/tiendc/go-deepcopy"

	"liftbank/src/types"
)

type hallKey struct {
	floor     int
	direction types.Direction
}

// Registry holds pending calls in insertion order, at most one per floor and direction.
// Like the Fleet it leaves synchronization to the session.
type Registry struct {
	pending []types.Call
	byKey   map[hallKey]types.CallID
	newID   func() types.CallID
}

type Option func(*Registry)

// WithIDGenerator replaces the default UUIDv7 generator.
func WithIDGenerator(gen func() types.CallID) Option {
	return func(r *Registry) { r.newID = gen }
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		byKey: make(map[hallKey]types.CallID),
		newID: func() types.CallID { return uuid.Must(uuid.NewV7()) },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a call unless one for the same floor and direction is pending,
// in which case the pending call is returned together with false.
func (r *Registry) Register(floor int, direction types.Direction) (types.Call, bool) {
	key := hallKey{floor, direction}
	if id, ok := r.byKey[key]; ok {
		existing, _ := r.Get(id)
		slog.Debug("Duplicate call ignored", "floor", floor, "direction", direction)
		return existing, false
	}
	call := types.Call{ID: r.newID(), Floor: floor, Direction: direction}
	r.pending = append(r.pending, call)
	r.byKey[key] = call.ID
	slog.Debug("Call registered", "id", call.ID, "floor", floor, "direction", direction)
	return call, true
}

func (r *Registry) Get(id types.CallID) (types.Call, bool) {
	i := r.index(id)
	if i < 0 {
		return types.Call{}, false
	}
	return r.pending[i], true
}

// Take removes a call and returns it.
func (r *Registry) Take(id types.CallID) (types.Call, bool) {
	i := r.index(id)
	if i < 0 {
		return types.Call{}, false
	}
	call := r.pending[i]
	r.pending = slices.Delete(r.pending, i, i+1)
	delete(r.byKey, hallKey{call.Floor, call.Direction})
	return call, true
}

// At returns the call at a 1-based position of List.
func (r *Registry) At(position int) (types.Call, bool) {
	if position < 1 || position > len(r.pending) {
		return types.Call{}, false
	}
	return r.pending[position-1], true
}

func (r *Registry) Clear() {
	r.pending = nil
	clear(r.byKey)
}

func (r *Registry) Len() int {
	return len(r.pending)
}

// List returns a copy of the pending calls in insertion order.
func (r *Registry) List() []types.Call {
	out := []types.Call{}
	if err := deepcopy.Copy(&out, r.pending); err != nil {
		panic(err)
	}
	return out
}

func (r *Registry) index(id types.CallID) int {
	return slices.IndexFunc(r.pending, func(c types.Call) bool { return c.ID == id })
}
