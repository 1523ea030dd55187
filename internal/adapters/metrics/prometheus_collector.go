package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// Namespace for all metrics
	namespace = "galaxysim"
	// Subsystem for simulation metrics
	subsystem = "simulation"
)

var (
	// Registry is the global Prometheus registry for all metrics
	Registry *prometheus.Registry

	// globalSimulationCollector is the singleton simulation metrics collector
	// Set by SetGlobalSimulationCollector() when metrics are enabled
	globalSimulationCollector SimulationMetricsRecorder
)

// SimulationMetricsRecorder defines the interface for recording simulation metrics
// This interface is used by application code to record metrics
type SimulationMetricsRecorder interface {
	RecordStep(alive int, population int64, averageTech float64)
	RecordEvent(kind string, cosmic bool)
	RecordRunCompletion(status string, durationSeconds float64, steps int)
}

// InitRegistry initializes the Prometheus registry
// Should be called once at application startup if metrics are enabled
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// GetRegistry returns the global Prometheus registry
// Returns nil if metrics are not initialized
func GetRegistry() *prometheus.Registry {
	return Registry
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// SetGlobalSimulationCollector sets the global simulation metrics collector
func SetGlobalSimulationCollector(collector SimulationMetricsRecorder) {
	globalSimulationCollector = collector
}

// RecordStep records the statistics of a completed step globally
func RecordStep(alive int, population int64, averageTech float64) {
	if globalSimulationCollector != nil {
		globalSimulationCollector.RecordStep(alive, population, averageTech)
	}
}

// RecordEvent records a fired event globally
func RecordEvent(kind string, cosmic bool) {
	if globalSimulationCollector != nil {
		globalSimulationCollector.RecordEvent(kind, cosmic)
	}
}

// RecordRunCompletion records the end of a run globally
func RecordRunCompletion(status string, durationSeconds float64, steps int) {
	if globalSimulationCollector != nil {
		globalSimulationCollector.RecordRunCompletion(status, durationSeconds, steps)
	}
}
