// Package metrics exposes Prometheus instrumentation for the booking service.
package metrics

import (
	"context"
	"errors"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/carwash/internal/models"
)

// Metrics holds the service collectors.
type Metrics struct {
	rpcRequests    *prometheus.CounterVec
	rpcDuration    *prometheus.HistogramVec
	quoteTotals    prometheus.Histogram
	quotedBookings *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		rpcRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "carwash",
			Name:      "rpc_requests_total",
			Help:      "RPC calls by procedure and result code.",
		}, []string{"procedure", "code"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "carwash",
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		quoteTotals: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "carwash",
			Name:      "quote_total_dkk",
			Help:      "Total of submitted quotes in DKK, VAT included.",
			Buckets:   []float64{250, 500, 1000, 2000, 4000, 8000, 16000},
		}),
		quotedBookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "carwash",
			Name:      "quoted_bookings_total",
			Help:      "Bookings in submitted quotes, by product type.",
		}, []string{"product_type"}),
	}
	reg.MustRegister(m.rpcRequests, m.rpcDuration, m.quoteTotals, m.quotedBookings)
	return m
}

// Interceptor returns a Connect interceptor counting and timing every RPC.
func (m *Metrics) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure

			resp, err := next(ctx, req)

			m.rpcDuration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())
			m.rpcRequests.WithLabelValues(procedure, codeOf(err)).Inc()
			return resp, err
		}
	}
}

func codeOf(err error) string {
	if err == nil {
		return "ok"
	}
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr.Code().String()
	}
	return connect.CodeUnknown.String()
}

// ObserveQuote records the total of a submitted quote. A nil Metrics records nothing.
func (m *Metrics) ObserveQuote(quote *models.Quote) {
	if m == nil {
		return
	}
	m.quoteTotals.Observe(float64(quote.Summary.Total))
}

// ObserveBookings counts the bookings of a submitted quote by product type.
// Live repricing is not counted.
func (m *Metrics) ObserveBookings(bookings []*models.ProductBooking) {
	if m == nil {
		return
	}
	for _, b := range bookings {
		key := b.ProductTypeKey()
		if key == "" {
			key = "none"
		}
		m.quotedBookings.WithLabelValues(key).Inc()
	}
}
