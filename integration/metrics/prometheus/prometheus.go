// Package prometheus records session store activity as Prometheus metrics.
//
//	reg := prometheus.NewRegistry()
//	store, err := sessionstore.NewCookieStore(cfg,
//		sessionstore.WithMetrics(sessionmetrics.NewRecorder(reg)),
//	)
package prometheus

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/sealedsession/core/sessionstore"
)

const namespace = "sealedsession"

// Recorder implements sessionstore.MetricsRecorder with Prometheus counters.
type Recorder struct {
	readsTotal     *prometheus.CounterVec
	savesTotal     *prometheus.CounterVec
	rolloversTotal *prometheus.CounterVec
}

// NewRecorder creates a Recorder and registers its collectors with reg.
// It panics if the collectors are already registered, like MustRegister.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	readsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reads_total",
		Help:      "Total session reads by outcome",
	}, []string{"strategy", "result"})

	savesTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "saves_total",
		Help:      "Total sessions saved",
	}, []string{"strategy"})

	rolloversTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rollovers_total",
		Help:      "Total session rollovers; renewed is false when there was no session to extend",
	}, []string{"strategy", "renewed"})

	reg.MustRegister(readsTotal, savesTotal, rolloversTotal)

	return &Recorder{
		readsTotal:     readsTotal,
		savesTotal:     savesTotal,
		rolloversTotal: rolloversTotal,
	}
}

// RecordRead records a session read outcome.
func (r *Recorder) RecordRead(strategy, result string) {
	r.readsTotal.WithLabelValues(strategy, result).Inc()
}

// RecordSave records a session save.
func (r *Recorder) RecordSave(strategy string) {
	r.savesTotal.WithLabelValues(strategy).Inc()
}

// RecordRollover records a session rollover.
func (r *Recorder) RecordRollover(strategy string, renewed bool) {
	r.rolloversTotal.WithLabelValues(strategy, strconv.FormatBool(renewed)).Inc()
}

var _ sessionstore.MetricsRecorder = (*Recorder)(nil)
