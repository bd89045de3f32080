package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"droscher.com/BeerStyles/pkg/model"
	"droscher.com/BeerStyles/pkg/repository"
)

type Operation string

const (
	OperationCreate Operation = "create"
	OperationRead   Operation = "read"
	OperationUpdate Operation = "update"
	OperationDelete Operation = "delete"
)

const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

type Metrics struct {
	Operations *prometheus.CounterVec
	Duration   *prometheus.HistogramVec
}

func New(registerer prometheus.Registerer) *Metrics {
	m := &Metrics{
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "beerstyles",
			Name:      "style_operations_total",
			Help:      "Style repository operations by outcome.",
		}, []string{"operation", "outcome"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "beerstyles",
			Name:      "style_operation_duration_seconds",
			Help:      "Duration of style repository operations, connection setup included.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}

	registerer.MustRegister(m.Operations, m.Duration)

	return m
}

func (m *Metrics) Observe(operation Operation, started time.Time, err error) {
	m.Operations.WithLabelValues(string(operation), Outcome(err)).Inc()
	m.Duration.WithLabelValues(string(operation)).Observe(time.Since(started).Seconds())
}

func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, repository.ErrStyleNotFound):
		return OutcomeNotFound
	case errors.Is(err, repository.ErrInvalidStyle):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}

// InstrumentedRepository records an operation count and duration around every call.
type InstrumentedRepository struct {
	next    repository.StyleRepository
	metrics *Metrics
}

func NewInstrumentedRepository(next repository.StyleRepository, metrics *Metrics) *InstrumentedRepository {
	return &InstrumentedRepository{next: next, metrics: metrics}
}

func (r *InstrumentedRepository) CreateStyle(ctx context.Context, style model.Style) (string, error) {
	started := time.Now()
	name, err := r.next.CreateStyle(ctx, style)
	r.metrics.Observe(OperationCreate, started, err)

	return name, err
}

func (r *InstrumentedRepository) ReadStyle(ctx context.Context, name string) (*model.Style, error) {
	started := time.Now()
	style, err := r.next.ReadStyle(ctx, name)
	r.metrics.Observe(OperationRead, started, err)

	return style, err
}

func (r *InstrumentedRepository) UpdateStyle(ctx context.Context, style model.Style) (*model.Style, error) {
	started := time.Now()
	updated, err := r.next.UpdateStyle(ctx, style)
	r.metrics.Observe(OperationUpdate, started, err)

	return updated, err
}

func (r *InstrumentedRepository) DeleteStyle(ctx context.Context, name string) (bool, error) {
	started := time.Now()
	deleted, err := r.next.DeleteStyle(ctx, name)
	r.metrics.Observe(OperationDelete, started, err)

	return deleted, err
}
