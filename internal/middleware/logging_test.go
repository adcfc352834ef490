package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/carwash/pkg/logging"
)

// captureLogs routes the default logger into a buffer for the test's duration.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(logging.New(&buf, slog.LevelDebug))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLoggingInterceptor(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"ok", nil, "RPC ok"},
		{"connect error", connect.NewError(connect.CodeInvalidArgument, errors.New("bad cart")), "RPC error"},
		{"plain error", errors.New("boom"), "RPC error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)

			next := func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
				if tt.err != nil {
					return nil, tt.err
				}
				return connect.NewResponse(&struct{}{}), nil
			}
			ctx := WithIdentity(context.Background(), "cust-1", "acme")

			_, err := LoggingInterceptor()(next)(ctx, connect.NewRequest(&struct{}{}))
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected error %v to pass through, got %v", tt.err, err)
			}

			out := buf.String()
			for _, want := range []string{tt.wantMsg, "customer_id=cust-1", "company_id=acme"} {
				if !strings.Contains(out, want) {
					t.Errorf("expected log output to contain %q, got %q", want, out)
				}
			}
		})
	}
}

func TestLoggingInterceptor_Anonymous(t *testing.T) {
	buf := captureLogs(t)

	next := func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return connect.NewResponse(&struct{}{}), nil
	}
	if _, err := LoggingInterceptor()(next)(context.Background(), connect.NewRequest(&struct{}{})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out := buf.String(); strings.Contains(out, "company_id=acme") || !strings.Contains(out, "company_id=") {
		t.Errorf("expected empty company_id for anonymous call, got %q", out)
	}
}
