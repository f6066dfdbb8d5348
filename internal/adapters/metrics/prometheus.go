// Package metrics exports run metrics in the Prometheus text format.
package metrics

import (
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/aospbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

const namespace = "aospbuild"

// Recorder implements ports.Metrics on a private Prometheus registry. The
// collected values are written to a textfile for the node exporter's collector.
type Recorder struct {
	registry *prometheus.Registry

	phaseDuration *prometheus.GaugeVec
	phaseTotal    *prometheus.CounterVec
	syncAttempts  *prometheus.CounterVec
	syncJobs      prometheus.Gauge
	runResult     *prometheus.GaugeVec
	lastRun       prometheus.Gauge
}

// NewRecorder creates a Recorder with its collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		phaseDuration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "phase_duration_seconds",
			Help:      "Wall time of the last execution of each phase.",
		}, []string{"phase", "status"}),
		phaseTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "phase_total",
			Help:      "Phases executed, by outcome.",
		}, []string{"phase", "status"}),
		syncAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_attempts_total",
			Help:      "repo sync attempts, by outcome.",
		}, []string{"result"}),
		syncJobs: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sync_jobs",
			Help:      "Parallelism of the last repo sync attempt.",
		}),
		runResult: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "run_result",
			Help:      "Set to 1 for the outcome of the run.",
		}, []string{"status"}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time at which the last run finished.",
		}),
	}
	r.registry.MustRegister(r.phaseDuration, r.phaseTotal, r.syncAttempts, r.syncJobs, r.runResult, r.lastRun)
	return r
}

// ObservePhase records the outcome and duration of a phase.
func (r *Recorder) ObservePhase(phase domain.Phase, status domain.PhaseStatus, d time.Duration) {
	r.phaseDuration.WithLabelValues(string(phase), string(status)).Set(d.Seconds())
	r.phaseTotal.WithLabelValues(string(phase), string(status)).Inc()
}

// ObserveSyncAttempt records one sync attempt with its parallelism.
func (r *Recorder) ObserveSyncAttempt(jobs int, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	r.syncAttempts.WithLabelValues(result).Inc()
	r.syncJobs.Set(float64(jobs))
}

// ObserveResult records the outcome of the whole run.
func (r *Recorder) ObserveResult(status domain.PhaseStatus) {
	r.runResult.Reset()
	r.runResult.WithLabelValues(string(status)).Set(1)
	r.lastRun.SetToCurrentTime()
}

// Flush writes the collected metrics to path atomically.
func (r *Recorder) Flush(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create metrics directory"), "path", path)
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write metrics"), "path", path)
	}
	return nil
}
