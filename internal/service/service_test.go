package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/carwash/internal/catalog"
	"github.com/mmynk/carwash/internal/metrics"
	"github.com/mmynk/carwash/internal/middleware"
	"github.com/mmynk/carwash/internal/models"
	"github.com/mmynk/carwash/internal/storage/sqlite"
	"github.com/mmynk/carwash/pkg/api/apiconnect"
)

const (
	testCustomerHeader = "X-Test-Customer"
	testCompanyHeader  = "X-Test-Company"
)

// testAuthInterceptor returns a Connect interceptor that takes the caller's
// identity from test headers instead of a token.
func testAuthInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			ctx = middleware.WithIdentity(ctx,
				req.Header().Get(testCustomerHeader),
				req.Header().Get(testCompanyHeader),
			)
			return next(ctx, req)
		}
	}
}

// as sets the test identity headers on a request.
func as[T any](req *connect.Request[T], customerID, companyID string) *connect.Request[T] {
	req.Header().Set(testCustomerHeader, customerID)
	req.Header().Set(testCompanyHeader, companyID)
	return req
}

// bikeCatalog is the catalog of the "bike-co" test tenant.
func bikeCatalog() catalog.Repository {
	return catalog.NewStatic(catalog.Data{
		ProductTypes: []models.ProductType{{Key: "bike", Name: "Cykel"}},
		MainProducts: []models.MainProduct{{ID: "wash", Name: "Cykelvask", Price: 150, ProductType: "bike"}},
	})
}

// setupTestServer creates a test server with a temp-file SQLite database
func setupTestServer(t *testing.T) (apiconnect.CatalogServiceClient, apiconnect.QuoteServiceClient, func()) {
	t.Helper()

	// Create temp database
	tmpFile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create store: %v", err)
	}

	catalogs := catalog.NewRegistry(catalog.Default())
	catalogs.Register("bike-co", bikeCatalog())
	m := metrics.New(prometheus.NewRegistry())

	interceptors := connect.WithInterceptors(testAuthInterceptor(), m.Interceptor())
	catalogPath, catalogHandler := apiconnect.NewCatalogServiceHandler(NewCatalogService(catalogs), interceptors)
	quotePath, quoteHandler := apiconnect.NewQuoteServiceHandler(NewQuoteService(catalogs, store, m), interceptors)

	mux := http.NewServeMux()
	mux.Handle(catalogPath, catalogHandler)
	mux.Handle(quotePath, quoteHandler)

	server := httptest.NewServer(mux)

	catalogClient := apiconnect.NewCatalogServiceClient(http.DefaultClient, server.URL)
	quoteClient := apiconnect.NewQuoteServiceClient(http.DefaultClient, server.URL)

	cleanup := func() {
		server.Close()
		store.Close()
		os.Remove(tmpFile.Name())
	}

	return catalogClient, quoteClient, cleanup
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Fatalf("expected code %v, got %v (%v)", want, got, err)
	}
}
