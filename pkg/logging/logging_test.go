package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.name); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn)

	logger.Info("Quote submitted", "quote_id", "q1")
	logger.Warn("Token rejected", "procedure", "/carwash.v1.QuoteService/SubmitQuote")

	out := buf.String()
	if strings.Contains(out, "Quote submitted") {
		t.Error("expected INFO record to be filtered")
	}
	if !strings.Contains(out, "Token rejected") || !strings.Contains(out, "procedure=") {
		t.Errorf("expected WARN record with attributes, got %q", out)
	}
}
