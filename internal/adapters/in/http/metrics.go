package http

import (
	"errors"

	"ordermgmt/internal/core/domain/model/order"
	"ordermgmt/internal/pkg/errs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Transition outcome labels.
const (
	outcomeExecuted          = "executed"
	outcomeInvalidTransition = "invalid_transition"
	outcomeForbidden         = "forbidden"
	outcomeNotCancellable    = "not_cancellable"
	outcomeStale             = "stale"
	outcomeNotFound          = "not_found"
	outcomeError             = "error"
)

// TransitionMetrics counts status transition requests by target status and
// outcome.
type TransitionMetrics struct {
	transitionsTotal *prometheus.CounterVec
}

// NewTransitionMetrics creates and registers the transition counter with the
// default Prometheus registry.
func NewTransitionMetrics() *TransitionMetrics {
	return &TransitionMetrics{
		transitionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ordermgmt",
				Name:      "status_transitions_total",
				Help:      "Total number of order status transition requests by outcome.",
			},
			[]string{"to_status", "outcome"},
		),
	}
}

// RecordExecuted counts one successful transition into the given status.
func (m *TransitionMetrics) RecordExecuted(to order.Status) {
	m.transitionsTotal.WithLabelValues(to.String(), outcomeExecuted).Inc()
}

// RecordRejected counts one failed transition request, classified by the
// error kind.
func (m *TransitionMetrics) RecordRejected(to order.Status, err error) {
	m.transitionsTotal.WithLabelValues(to.String(), rejectionOutcome(err)).Inc()
}

func rejectionOutcome(err error) string {
	switch {
	case errors.Is(err, order.ErrInvalidTransition):
		return outcomeInvalidTransition
	case errors.Is(err, order.ErrForbidden):
		return outcomeForbidden
	case errors.Is(err, order.ErrNotCancellable):
		return outcomeNotCancellable
	case errors.Is(err, order.ErrStaleTransition):
		return outcomeStale
	case errors.Is(err, errs.ErrObjectNotFound):
		return outcomeNotFound
	default:
		return outcomeError
	}
}
