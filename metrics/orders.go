package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// OrderMetrics counts swap attempts through the order lifecycle.
type OrderMetrics struct {
	builtCounter     metric.Int64Counter
	signedCounter    metric.Int64Counter
	submittedCounter metric.Int64Counter
	failedCounter    metric.Int64Counter

	opts metric.MeasurementOption
}

// NewOrderMetrics initializes metrics related to order construction and
// submission.
func NewOrderMetrics(meter metric.Meter, opts metric.MeasurementOption) (*OrderMetrics, error) {
	builtCounter, err := meter.Int64Counter(
		"engine.OrdersBuilt",
		metric.WithDescription("Total number of orders built"),
	)
	if err != nil {
		return nil, err
	}
	signedCounter, err := meter.Int64Counter(
		"engine.OrdersSigned",
		metric.WithDescription("Total number of orders signed"),
	)
	if err != nil {
		return nil, err
	}
	submittedCounter, err := meter.Int64Counter(
		"engine.OrdersSubmitted",
		metric.WithDescription("Total number of orders accepted by the relayer"),
	)
	if err != nil {
		return nil, err
	}
	failedCounter, err := meter.Int64Counter(
		"engine.OrdersFailed",
		metric.WithDescription("Total number of failed swap attempts by failure kind"),
	)
	if err != nil {
		return nil, err
	}

	return &OrderMetrics{
		builtCounter:     builtCounter,
		signedCounter:    signedCounter,
		submittedCounter: submittedCounter,
		failedCounter:    failedCounter,
		opts:             opts,
	}, nil
}

func (m *OrderMetrics) OrderBuilt() {
	m.builtCounter.Add(context.Background(), 1, m.opts)
}

func (m *OrderMetrics) OrderSigned() {
	m.signedCounter.Add(context.Background(), 1, m.opts)
}

func (m *OrderMetrics) OrderSubmitted() {
	m.submittedCounter.Add(context.Background(), 1, m.opts)
}

func (m *OrderMetrics) OrderFailed(kind string) {
	m.failedCounter.Add(context.Background(), 1, m.opts, metric.WithAttributes(attribute.String("kind", kind)))
}
