package logger

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	maxBodySnippet = 512
	redacted       = "REDACTED"
)

var secretParams = []string{"appid", "key"}

// RoundTripper logs every outbound request with status, latency and the
// head of the response body.
type RoundTripper struct {
	Logger *zap.Logger
	Proxy  http.RoundTripper
}

func NewRoundTripper(logger *zap.Logger) *RoundTripper {
	return &RoundTripper{
		Logger: logger,
		Proxy:  http.DefaultTransport,
	}
}

func (l *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := l.Proxy.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		l.Logger.Error("HTTP request failed",
			zap.String("method", req.Method),
			zap.String("url", redactURL(req.URL)),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		l.Logger.Error("failed to read response body",
			zap.String("method", req.Method),
			zap.String("url", redactURL(req.URL)),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	resp.Body = io.NopCloser(bytes.NewReader(bodyBytes))

	snippet := bodyBytes
	if len(snippet) > maxBodySnippet || !isText(resp.Header.Get("Content-Type")) {
		snippet = nil
	}

	l.Logger.Info("HTTP request completed",
		zap.String("method", req.Method),
		zap.String("url", redactURL(req.URL)),
		zap.ByteString("body_snipped", snippet),
		zap.Int("body_size", len(bodyBytes)),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

func isText(contentType string) bool {
	return contentType == "" ||
		strings.HasPrefix(contentType, "application/json") ||
		strings.HasPrefix(contentType, "text/")
}

// redactURL hides API keys. An unparsable query is dropped entirely.
func redactURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	c := *u
	q, err := url.ParseQuery(c.RawQuery)
	if err != nil {
		c.RawQuery = ""
		return c.String()
	}
	for _, p := range secretParams {
		if q.Has(p) {
			q.Set(p, redacted)
		}
	}
	c.RawQuery = q.Encode()
	return c.String()
}
