// Package llm holds pieces shared by the provider adapters.
package llm

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/deepmindru-afk/superuzyr/internal/application/port/output"
)

// LoggingTransport logs every provider round trip. Bodies are logged by size
// only; headers are never logged since they carry API keys.
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

	var bodyLen int
	if req.Body != nil {
		bodyBytes, _ := io.ReadAll(req.Body)
		req.Body.Close()
		req.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		bodyLen = len(bodyBytes)
	}

	t.Logger.Debug("HTTP Request",
		"method", req.Method,
		"url", req.URL.String(),
		"body_bytes", bodyLen,
	)

	start := time.Now()
	resp, err := base.RoundTrip(req)
	if err != nil {
		t.Logger.Warn("HTTP Request failed", "url", req.URL.String(), "error", err)
		return resp, err
	}

	t.Logger.Debug("HTTP Response",
		"status", resp.Status,
		"statusCode", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return resp, nil
}

// NewHTTPClient returns a client whose transport logs through logger.
func NewHTTPClient(logger output.LoggerPort, timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &LoggingTransport{Base: http.DefaultTransport, Logger: logger},
		Timeout:   timeout,
	}
}
