package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	ledgerOperations       *prometheus.CounterVec
	ledgerOperationLatency prometheus.Histogram
	transactionAmount      *prometheus.HistogramVec
	bankTotalBalance       prometheus.Gauge
	bankTotalLoans         prometheus.Gauge
	customersTotal         prometheus.Gauge
	demoCustomersGenerated prometheus.Counter
}

// NewPrometheusMetrics registers the ledger collectors with reg. Pass
// prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		ledgerOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_operations_total",
				Help: "Total number of ledger operations by outcome",
			},
			[]string{"operation", "status"},
		),
		ledgerOperationLatency: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_operation_duration_milliseconds",
				Help:    "Ledger mutation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		transactionAmount: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledger_transaction_amount",
				Help:    "Posted transaction amounts in rupees",
				Buckets: prometheus.ExponentialBuckets(100, 10, 6),
			},
			[]string{"kind"},
		),
		bankTotalBalance: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "bank_total_balance",
				Help: "Current bank total balance",
			},
		),
		bankTotalLoans: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "bank_total_loans",
				Help: "Cumulative loans disbursed by the bank",
			},
		),
		customersTotal: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "bank_customers_total",
				Help: "Current number of customers",
			},
		),
		demoCustomersGenerated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "demo_customers_generated_total",
				Help: "Total number of fake customers opened by the demo generator",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	operation := tags["operation"]
	reason := tags["reason"]

	switch name {
	case "ledger.operation.success":
		m.ledgerOperations.WithLabelValues(operation, "success").Inc()
	case "ledger.operation.rejected":
		m.ledgerOperations.WithLabelValues(operation, "rejected_"+reason).Inc()
	case "ledger.operation.failed":
		m.ledgerOperations.WithLabelValues(operation, "failed").Inc()
	case "demo_customer_generated":
		m.demoCustomersGenerated.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "ledger.operation":
		m.ledgerOperationLatency.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "transaction_amount":
		if kind := tags["kind"]; kind != "" {
			m.transactionAmount.WithLabelValues(kind).Observe(value)
		}
	case "bank_total_balance":
		m.bankTotalBalance.Set(value)
	case "bank_total_loans":
		m.bankTotalLoans.Set(value)
	case "customers_total":
		m.customersTotal.Set(value)
	}
}
