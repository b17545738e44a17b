package collision

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "racer/internal/collision"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Metrics counts contacts by collider kind. Uses the global OTel meter, which
// is a no-op unless a provider has been installed.
type Metrics struct {
	ground   metric.Int64Counter
	box      metric.Int64Counter
	wall     metric.Int64Counter
	parallel metric.Int64Counter
}

// NewMetrics registers the collision counters on m. A nil m uses the global meter.
func NewMetrics(m metric.Meter) (*Metrics, error) {
	if m == nil {
		m = meter()
	}

	var (
		out Metrics
		err error
	)

	out.ground, err = m.Int64Counter(
		"racer.collision.ground",
		metric.WithDescription("Height plane contacts"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ground counter: %w", err)
	}

	out.box, err = m.Int64Counter(
		"racer.collision.box",
		metric.WithDescription("Box overlaps resolved"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating box counter: %w", err)
	}

	out.wall, err = m.Int64Counter(
		"racer.collision.wall",
		metric.WithDescription("Wall reflections"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating wall counter: %w", err)
	}

	out.parallel, err = m.Int64Counter(
		"racer.collision.wall_parallel",
		metric.WithDescription("Wall sweeps skipped because motion ran along the wall"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating wall parallel counter: %w", err)
	}

	return &out, nil
}

// Ground counts a height plane contact. Safe on a nil receiver, as are the
// other counting methods.
func (m *Metrics) Ground(entity string) {
	if m != nil {
		add(m.ground, entity)
	}
}

func (m *Metrics) Box(entity string) {
	if m != nil {
		add(m.box, entity)
	}
}

func (m *Metrics) Wall(entity string) {
	if m != nil {
		add(m.wall, entity)
	}
}

func (m *Metrics) Parallel(entity string) {
	if m != nil {
		add(m.parallel, entity)
	}
}

func add(c metric.Int64Counter, entity string) {
	c.Add(context.Background(), 1, metric.WithAttributes(attribute.String("entity", entity)))
}
