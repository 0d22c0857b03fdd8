//go:build unit

package app_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/weather-app/internal/app"
	"github.com/Nazarious-ucu/weather-app/internal/config"
	"github.com/Nazarious-ucu/weather-app/internal/handlers/middleware"
	"github.com/Nazarious-ucu/weather-app/internal/models"
	"github.com/Nazarious-ucu/weather-app/internal/services/metrics"
	"github.com/Nazarious-ucu/weather-app/internal/ui"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n")

func newUpstream(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/data/2.5/weather", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("appid") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.URL.Query().Get("q") {
		case "Lviv":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"name":"Lviv","main":{"temp":21.5},"weather":[{"main":"Clouds","icon":"03d"}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}`))
		}
	})
	mux.HandleFunc("/img/wn/03d@2x.png", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(pngHeader)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newContainer(t *testing.T) app.ServiceContainer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	upstream := newUpstream(t)
	cfg := config.Config{
		OpenWeather: config.OpenWeather{
			APIKey:          "test-key",
			URL:             upstream.URL + "/data/2.5/weather",
			Units:           "metric",
			IconURLTemplate: upstream.URL + "/img/wn/%s@2x.png",
		},
		Server: config.Server{Port: "0", ReadTimeout: 5},
		Breaker: config.Breaker{
			Enabled:      true,
			TimeInterval: 30,
			TimeTimeOut:  10,
			RepeatNumber: 5,
		},
	}

	a := app.New(cfg, zerolog.Nop(), metrics.NewMetrics("test"))
	c, err := a.Init()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, a.Shutdown(c))
	})
	return c
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, target, nil)
	require.NoError(t, err)
	h.ServeHTTP(rec, req)
	return rec
}

func TestAPIWeather_Success(t *testing.T) {
	c := newContainer(t)

	rec := get(t, c.Router, "/api/weather?city=Lviv")

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.Weather
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, models.Weather{City: "Lviv", Temperature: 21.5, Description: "Clouds", Icon: "03d"}, got)
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestAPIWeather_Errors(t *testing.T) {
	c := newContainer(t)

	testCases := []struct {
		name   string
		target string
		status int
		body   string
	}{
		{
			name:   "blank city",
			target: "/api/weather?city=%20%20",
			status: http.StatusBadRequest,
			body:   `{"error":"city query parameter is required"}`,
		},
		{
			name:   "unknown city",
			target: "/api/weather?city=Atlantis",
			status: http.StatusBadGateway,
			body:   `{"error":"fetch failed"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := get(t, c.Router, tc.target)

			assert.Equal(t, tc.status, rec.Code)
			assert.JSONEq(t, tc.body, rec.Body.String())
		})
	}
}

func TestPage_RendersResultAndError(t *testing.T) {
	c := newContainer(t)

	rec := get(t, c.Router, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ui.Title)
	assert.Contains(t, rec.Body.String(), ui.WelcomeHeading)

	rec = get(t, c.Router, "/weather?city=Lviv")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "21.5 °C")
	assert.Contains(t, rec.Body.String(), `src="/icon/03d"`)

	rec = get(t, c.Router, "/weather?city=Atlantis")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), ui.ErrorText)

	rec = get(t, c.Router, "/weather?city=")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), ui.WarningText)
}

func TestIconProxy(t *testing.T) {
	c := newContainer(t)

	rec := get(t, c.Router, "/icon/03d")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, pngHeader, rec.Body.Bytes())

	rec = get(t, c.Router, "/icon/abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(t, c.Router, "/icon/10n")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	c := newContainer(t)

	get(t, c.Router, "/api/weather?city=Lviv")
	rec := get(t, c.Router, "/metrics")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `test_weather_fetches_total{result="success"} 1`)
	assert.Contains(t, rec.Body.String(), `test_http_requests_total{endpoint="/api/weather",method="GET",status_class="2xx"} 1`)
}

func TestSwaggerDocs(t *testing.T) {
	c := newContainer(t)

	rec := get(t, c.Router, "/swagger/doc.json")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/weather")
}

func TestAPIWeather_TyposDoNotBlockOtherLookups(t *testing.T) {
	c := newContainer(t)

	for i := 0; i < 10; i++ {
		rec := get(t, c.Router, "/api/weather?city=Atlantiss")
		require.Equal(t, http.StatusBadGateway, rec.Code)
	}

	rec := get(t, c.Router, "/api/weather?city=Lviv")

	assert.Equal(t, http.StatusOK, rec.Code)
}
