package httpclient

import (
	"net/http"
	"time"

	"frete-service/internal/core/logger"

	"go.uber.org/zap"
)

// UserAgent is sent on every outbound request that does not set its own.
const UserAgent = "frete-service/1.0"

// LoggingRoundTripper logs outbound requests and stamps the User-Agent header.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
	// Component names the caller in log entries, e.g. "catalog".
	Component string
}

// RoundTrip executes the request and logs details.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", UserAgent)
	}

	log := logger.Get().With(
		zap.String("component", lrt.Component),
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	)

	start := time.Now()
	resp, err := lrt.Proxied.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		log.Error("Outbound request failed", zap.Duration("duration", duration), zap.Error(err))
		return nil, err
	}

	log.Debug("Outbound request completed",
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// NewClient returns an http.Client with logging middleware.
func NewClient(component string, timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &LoggingRoundTripper{
			Proxied:   http.DefaultTransport,
			Component: component,
		},
		Timeout: timeout,
	}
}
