package transport

import (
	"net/http"
	"time"

	"orbit-assistant/internal/application/port/output"
)

// LoggingTransport logs every outgoing request. Bodies and headers are not
// logged because they carry API keys.
type LoggingTransport struct {
	Base   http.RoundTripper
	Logger output.LoggerPort
}

func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	if t.Logger == nil {
		return base.RoundTrip(req)
	}

	t.Logger.Debug("HTTP Request",
		"method", req.Method,
		"host", req.URL.Host,
		"path", req.URL.Path,
	)

	start := time.Now()
	resp, err := base.RoundTrip(req)
	elapsed := time.Since(start).Milliseconds()

	if err != nil {
		t.Logger.Warn("HTTP Request failed",
			"host", req.URL.Host,
			"error", err,
			"duration_ms", elapsed,
		)
		return resp, err
	}

	t.Logger.Debug("HTTP Response",
		"host", req.URL.Host,
		"status", resp.Status,
		"statusCode", resp.StatusCode,
		"duration_ms", elapsed,
	)

	return resp, nil
}

// NewClient returns an http.Client that logs through logger. A zero timeout
// means no client-side deadline.
func NewClient(logger output.LoggerPort, timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &LoggingTransport{Base: http.DefaultTransport, Logger: logger},
		Timeout:   timeout,
	}
}
