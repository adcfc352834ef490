package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/carwash/internal/auth"
	"github.com/mmynk/carwash/internal/catalog"
	"github.com/mmynk/carwash/internal/config"
	"github.com/mmynk/carwash/internal/metrics"
	"github.com/mmynk/carwash/internal/middleware"
	"github.com/mmynk/carwash/internal/service"
	"github.com/mmynk/carwash/internal/storage/sqlite"
	"github.com/mmynk/carwash/pkg/api/apiconnect"
	"github.com/mmynk/carwash/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("info")
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup structured logging
	logging.Setup(cfg.LogLevel)

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	// Load per-company catalogs on top of the built-in one
	catalogs, err := catalog.LoadDir(cfg.CatalogDir, catalog.Default())
	if err != nil {
		slog.Error("Failed to load catalogs", "dir", cfg.CatalogDir, "error", err)
		os.Exit(1)
	}
	slog.Info("Catalogs loaded", "dir", cfg.CatalogDir, "companies", catalogs.Companies())

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenDuration)

	mux := http.NewServeMux()

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m = metrics.New(reg)
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	// Pricing is open to anonymous visitors; quotes need a customer
	catalogInterceptors := interceptors(m, middleware.OptionalAuth(jwtManager))
	quoteInterceptors := interceptors(m, middleware.RequireAuth(jwtManager))

	// Register Connect services
	catalogPath, catalogHandler := apiconnect.NewCatalogServiceHandler(
		service.NewCatalogService(catalogs),
		connect.WithInterceptors(catalogInterceptors...),
	)
	mux.Handle(catalogPath, catalogHandler)

	quotePath, quoteHandler := apiconnect.NewQuoteServiceHandler(
		service.NewQuoteService(catalogs, store, m),
		connect.WithInterceptors(quoteInterceptors...),
	)
	mux.Handle(quotePath, quoteHandler)

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Add logging and CORS middleware
	loggedHandler := loggingMiddleware(corsMiddleware(mux))

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	h2cHandler := h2c.NewHandler(loggedHandler, &http2.Server{})

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h2cHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("Connect server starting", "address", server.Addr, "metrics", cfg.MetricsEnabled)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

// interceptors orders a service's interceptor chain, outermost first: metrics
// (so rejected calls are counted), then authn, then RPC logging (so log lines
// carry the caller's identity). m may be nil.
func interceptors(m *metrics.Metrics, authn connect.Interceptor) []connect.Interceptor {
	var chain []connect.Interceptor
	if m != nil {
		chain = append(chain, m.Interceptor())
	}
	return append(chain, authn, middleware.LoggingInterceptor())
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		if strings.HasPrefix(r.URL.Path, "/metrics") || r.URL.Path == "/healthz" {
			return
		}
		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
