package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mmynk/carwash/internal/auth"
	"github.com/mmynk/carwash/internal/catalog"
	"github.com/mmynk/carwash/internal/metrics"
	"github.com/mmynk/carwash/internal/middleware"
	"github.com/mmynk/carwash/internal/service"
	"github.com/mmynk/carwash/pkg/api"
	"github.com/mmynk/carwash/pkg/api/apiconnect"
)

func TestInterceptors_CountRejectedCalls(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)

	// Auth rejects every call below, so the store is never reached
	svc := service.NewQuoteService(catalog.NewRegistry(catalog.Default()), nil, m)
	path, handler := apiconnect.NewQuoteServiceHandler(svc,
		connect.WithInterceptors(interceptors(m, middleware.RequireAuth(jwtManager))...))

	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)
	defer server.Close()

	client := apiconnect.NewQuoteServiceClient(http.DefaultClient, server.URL)
	_, err := client.ListQuotes(context.Background(), connect.NewRequest(&api.ListQuotesRequest{}))
	if connect.CodeOf(err) != connect.CodeUnauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}

	want := `
# HELP carwash_rpc_requests_total RPC calls by procedure and result code.
# TYPE carwash_rpc_requests_total counter
carwash_rpc_requests_total{code="unauthenticated",procedure="/carwash.v1.QuoteService/ListQuotes"} 1
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(want), "carwash_rpc_requests_total"); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}
}

func TestInterceptors_WithoutMetrics(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)

	chain := interceptors(nil, middleware.OptionalAuth(jwtManager))
	if len(chain) != 2 {
		t.Errorf("expected auth and logging only, got %d interceptors", len(chain))
	}
}
