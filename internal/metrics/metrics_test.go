package metrics

import (
	"context"
	"errors"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/mmynk/carwash/internal/models"
)

func TestObserveBookings(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveBookings([]*models.ProductBooking{
		{ProductType: &models.ProductType{Key: models.ProductTypeCar}},
		{ProductType: &models.ProductType{Key: models.ProductTypeCar}},
		{},
	})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.quotedBookings.WithLabelValues("car")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.quotedBookings.WithLabelValues("none")))
}

func TestObserveQuote(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveQuote(&models.Quote{Summary: models.PricingSummary{Total: 1898}})

	assert.Equal(t, 1, testutil.CollectAndCount(m.quoteTotals))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveQuote(&models.Quote{})
		m.ObserveBookings([]*models.ProductBooking{{}})
	})
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, "ok", codeOf(nil))
	assert.Equal(t, "invalid_argument", codeOf(connect.NewError(connect.CodeInvalidArgument, errors.New("bad"))))
	assert.Equal(t, "unknown", codeOf(errors.New("plain")))
}

func TestInterceptor(t *testing.T) {
	m := New(prometheus.NewRegistry())

	handler := m.Interceptor()(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, connect.NewError(connect.CodeNotFound, errors.New("missing"))
	})
	req := connect.NewRequest(&struct{}{})

	_, err := handler(context.Background(), req)
	assert.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rpcRequests.WithLabelValues("", "not_found")))
}
