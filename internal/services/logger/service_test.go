//go:build unit

package logger

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRoundTripper_LogsAndKeepsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"main":{"temp":21.5}}`))
	}))
	t.Cleanup(srv.Close)

	core, logs := observer.New(zap.InfoLevel)
	client := &http.Client{Transport: NewRoundTripper(zap.New(core))}

	resp, err := client.Get(srv.URL + "?q=Lviv&appid=secret&units=metric")
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"main":{"temp":21.5}}`, string(body))

	entries := logs.FilterMessage("HTTP request completed").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.NotContains(t, fields["url"], "secret")
	assert.Contains(t, fields["url"], "appid=REDACTED")
	assert.EqualValues(t, http.StatusOK, fields["status_code"])
}

func TestRoundTripper_TransportError(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	client := &http.Client{Transport: NewRoundTripper(zap.New(core))}

	_, err := client.Get("http://127.0.0.1:0/?appid=secret")
	require.Error(t, err)

	assert.Equal(t, 1, logs.FilterMessage("HTTP request failed").Len())
}

func TestRedactURL(t *testing.T) {
	u, err := url.Parse("https://api.example.com/weather?q=Kyiv&appid=abc")
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/weather?appid=REDACTED&q=Kyiv", redactURL(u))
	assert.Equal(t, "", redactURL(nil))
}
