package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// SimulationMetricsCollector handles step, event and run metrics
type SimulationMetricsCollector struct {
	// Step metrics
	stepsTotal         prometheus.Counter
	aliveCivilizations prometheus.Gauge
	totalPopulation    prometheus.Gauge
	averageTechLevel   prometheus.Gauge

	// Event metrics
	eventsTotal *prometheus.CounterVec

	// Run metrics
	runsTotal   *prometheus.CounterVec
	runDuration *prometheus.HistogramVec
	runSteps    prometheus.Histogram
}

// NewSimulationMetricsCollector creates a new simulation metrics collector
func NewSimulationMetricsCollector() *SimulationMetricsCollector {
	return &SimulationMetricsCollector{
		stepsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "steps_total",
				Help:      "Total number of simulation steps completed",
			},
		),

		aliveCivilizations: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "alive_civilizations",
				Help:      "Alive civilizations after the last completed step",
			},
		),

		totalPopulation: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "total_population",
				Help:      "Population summed over alive civilizations after the last completed step",
			},
		),

		averageTechLevel: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "average_tech_level",
				Help:      "Mean tech level over alive civilizations after the last completed step",
			},
		),

		eventsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "events_total",
				Help:      "Total number of fired events by kind and scope",
			},
			[]string{"kind", "scope"},
		),

		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "runs_total",
				Help:      "Total number of runs by final status",
			},
			[]string{"status"},
		),

		runDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "run_duration_seconds",
				Help:      "Run wall-clock duration distribution",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60, 300},
			},
			[]string{"status"},
		),

		runSteps: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "run_steps",
				Help:      "Completed steps per run",
				Buckets:   []float64{10, 50, 100, 250, 500, 1000, 5000},
			},
		),
	}
}

// Register registers all simulation metrics with the Prometheus registry
func (c *SimulationMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	metrics := []prometheus.Collector{
		c.stepsTotal,
		c.aliveCivilizations,
		c.totalPopulation,
		c.averageTechLevel,
		c.eventsTotal,
		c.runsTotal,
		c.runDuration,
		c.runSteps,
	}

	for _, metric := range metrics {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}

	return nil
}

// RecordStep updates the step counter and the population gauges
func (c *SimulationMetricsCollector) RecordStep(alive int, population int64, averageTech float64) {
	c.stepsTotal.Inc()
	c.aliveCivilizations.Set(float64(alive))
	c.totalPopulation.Set(float64(population))
	c.averageTechLevel.Set(averageTech)
}

// RecordEvent increments the event counter
func (c *SimulationMetricsCollector) RecordEvent(kind string, cosmic bool) {
	scope := "civilization"
	if cosmic {
		scope = "cosmic"
	}
	c.eventsTotal.WithLabelValues(kind, scope).Inc()
}

// RecordRunCompletion records run outcome, duration and length
func (c *SimulationMetricsCollector) RecordRunCompletion(status string, durationSeconds float64, steps int) {
	c.runsTotal.WithLabelValues(status).Inc()
	c.runDuration.WithLabelValues(status).Observe(durationSeconds)
	c.runSteps.Observe(float64(steps))
}
