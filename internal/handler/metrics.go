package handler

import (
	"errors"

	"github.com/SergeyBogomolovv/order-model/internal/entities"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	orderTotalsComputed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_model",
			Subsystem: "orders",
			Name:      "totals_computed_total",
			Help:      "Total number of computed order totals",
		},
	)

	orderStatusUpdates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_model",
			Subsystem: "orders",
			Name:      "status_updates_total",
			Help:      "Total number of order status updates by result",
		},
		[]string{"result"},
	)

	stockReductions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_model",
			Subsystem: "products",
			Name:      "stock_reductions_total",
			Help:      "Total number of stock reductions by result",
		},
		[]string{"result"},
	)

	customerSummaries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_model",
			Subsystem: "customers",
			Name:      "summaries_total",
			Help:      "Total number of computed customer summaries",
		},
	)
)

func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(
		orderTotalsComputed,
		orderStatusUpdates,
		stockReductions,
		customerSummaries,
	)
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, entities.ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, entities.ErrInsufficientStock):
		return "insufficient_stock"
	default:
		return "error"
	}
}
