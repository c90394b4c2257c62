package app

import (
	"io"
	"log/slog"
	"os"
)

// NewLogger builds the process logger. JSON output when LOG_FORMAT=json,
// text otherwise; every line carries the service attribute so aggregated
// logs from the API and the worker stay distinguishable.
func NewLogger(cfg *Config, service string) *slog.Logger {
	return newLoggerTo(os.Stdout, cfg, service)
}

func newLoggerTo(w io.Writer, cfg *Config, service string) *slog.Logger {
	opts := &slog.HandlerOptions{AddSource: true}
	var handler slog.Handler
	if cfg != nil && cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With(slog.String("service", service))
}
