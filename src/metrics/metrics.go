package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const subsystem = "liftbank"

var (
	callsRegistered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Subsystem: subsystem,
			Name:      "calls_registered_total",
			Help:      "Count of hall calls added to the pending list.",
		},
	)
	callsDuplicate = prometheus.NewCounter(
		prometheus.CounterOpts{
			Subsystem: subsystem,
			Name:      "calls_duplicate_total",
			Help:      "Count of hall calls ignored because the same floor and direction was already pending.",
		},
	)
	callsAssigned = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Subsystem: subsystem,
			Name:      "calls_assigned_total",
			Help:      "Count of calls removed by assignment, by whether the elevator accepted the move.",
		},
		[]string{"accepted"},
	)
	moves = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Subsystem: subsystem,
			Name:      "moves_total",
			Help:      "Count of move commands by result.",
		},
		[]string{"result"},
	)
	arrivals = prometheus.NewCounter(
		prometheus.CounterOpts{
			Subsystem: subsystem,
			Name:      "arrivals_total",
			Help:      "Count of elevators that reached their target floor.",
		},
	)
	staleArrivals = prometheus.NewCounter(
		prometheus.CounterOpts{
			Subsystem: subsystem,
			Name:      "stale_arrivals_total",
			Help:      "Count of arrivals discarded because the fleet was rebuilt while the elevator travelled.",
		},
	)
	reconfigurations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Subsystem: subsystem,
			Name:      "reconfigurations_total",
			Help:      "Count of fleet rebuilds.",
		},
	)
	floorsTravelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Subsystem: subsystem,
			Name:      "floors_travelled_total",
			Help:      "Sum of floors travelled by accepted moves.",
		},
	)
	pendingCalls = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Subsystem: subsystem,
			Name:      "pending_calls",
			Help:      "Number of calls waiting for assignment.",
		},
	)
	movingElevators = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Subsystem: subsystem,
			Name:      "moving_elevators",
			Help:      "Number of elevators currently travelling.",
		},
	)
	buildingConfig = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Subsystem: subsystem,
			Name:      "configuration",
			Help:      "Current building configuration.",
		},
		[]string{"dimension"},
	)
)

var registerMetrics sync.Once

// Register all metrics on the given registerer.
func Register(reg prometheus.Registerer) {
	registerMetrics.Do(func() {
		reg.MustRegister(callsRegistered)
		reg.MustRegister(callsDuplicate)
		reg.MustRegister(callsAssigned)
		reg.MustRegister(moves)
		reg.MustRegister(arrivals)
		reg.MustRegister(staleArrivals)
		reg.MustRegister(reconfigurations)
		reg.MustRegister(floorsTravelled)
		reg.MustRegister(pendingCalls)
		reg.MustRegister(movingElevators)
		reg.MustRegister(buildingConfig)
	})
}

func RecordCall(registered bool) {
	if registered {
		callsRegistered.Inc()
	} else {
		callsDuplicate.Inc()
	}
}

func RecordAssignment(accepted bool) {
	if accepted {
		callsAssigned.WithLabelValues("true").Inc()
	} else {
		callsAssigned.WithLabelValues("false").Inc()
	}
}

// RecordMove counts a move command. floors is only added for accepted moves.
func RecordMove(result string, accepted bool, floors int) {
	moves.WithLabelValues(result).Inc()
	if accepted {
		floorsTravelled.Add(float64(floors))
	}
}

func RecordArrival(applied bool) {
	if applied {
		arrivals.Inc()
	} else {
		staleArrivals.Inc()
	}
}

func RecordConfiguration(floors, elevators int) {
	reconfigurations.Inc()
	buildingConfig.WithLabelValues("floors").Set(float64(floors))
	buildingConfig.WithLabelValues("elevators").Set(float64(elevators))
}

func SetPendingCalls(n int) {
	pendingCalls.Set(float64(n))
}

func SetMovingElevators(n int) {
	movingElevators.Set(float64(n))
}
