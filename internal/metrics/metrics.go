// Package metrics exports quiz outcomes to Prometheus.
package metrics

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "minatbakat"

// Metrics holds the registered collectors. A nil *Metrics is a no-op.
type Metrics struct {
	results       *prometheus.CounterVec
	loadFailures  *prometheus.CounterVec
	notifications *prometheus.CounterVec
}

// New registers the collectors on reg, reusing any already registered.
func New(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		results: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "results_total",
			Help:      "Completed quizzes by MBTI type, RIASEC code and whether a profile matched.",
		}, []string{"mbti", "riasec", "matched"}),
		loadFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "content_load_failures_total",
			Help:      "Failed question or profile loads.",
		}, []string{"what"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Result notifications by delivery status.",
		}, []string{"status"}),
	}

	for _, c := range []**prometheus.CounterVec{&m.results, &m.loadFailures, &m.notifications} {
		if err := reg.Register(*c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
					*c = existing
					continue
				}
			}
			return nil, fmt.Errorf("register metric: %w", err)
		}
	}
	return m, nil
}

// RecordResult counts one finished quiz.
func (m *Metrics) RecordResult(mbtiType, riasecCode string, matched bool) {
	if m == nil {
		return
	}
	m.results.WithLabelValues(mbtiType, riasecCode, strconv.FormatBool(matched)).Inc()
}

// RecordLoadFailure counts a failed content load.
func (m *Metrics) RecordLoadFailure(what string) {
	if m == nil {
		return
	}
	m.loadFailures.WithLabelValues(what).Inc()
}

// RecordNotification counts a notification outcome. Its signature matches
// notify.Notifier.Observe.
func (m *Metrics) RecordNotification(status string) {
	if m == nil {
		return
	}
	m.notifications.WithLabelValues(status).Inc()
}
