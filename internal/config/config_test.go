//go:build unit

package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/weather-app/internal/config"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "secret")

	cfg, err := config.NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.OpenWeather.APIKey)
	assert.Equal(t, "https://api.openweathermap.org/data/2.5/weather", cfg.OpenWeather.URL)
	assert.Equal(t, "metric", cfg.OpenWeather.Units)
	assert.Equal(t, "https://openweathermap.org/img/wn/%s@2x.png", cfg.OpenWeather.IconURLTemplate)
	assert.Equal(t, time.Duration(0), cfg.FetchTimeout())
	assert.Equal(t, ":8080", cfg.ServerAddress())
	assert.True(t, cfg.Breaker.Enabled)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 10*time.Minute, cfg.CacheLiveTime())
	assert.Equal(t, "localhost:6379", cfg.RedisAddress())
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "secret")
	t.Setenv("OPENWEATHER_UNITS", "imperial")
	t.Setenv("FETCH_TIMEOUT", "7")
	t.Setenv("WEB_SERVER_HOST", "127.0.0.1")
	t.Setenv("WEB_SERVER_PORT", "9090")

	cfg, err := config.NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "imperial", cfg.OpenWeather.Units)
	assert.Equal(t, 7*time.Second, cfg.FetchTimeout())
	assert.Equal(t, "127.0.0.1:9090", cfg.ServerAddress())
}

func TestNewConfig_MissingAPIKey(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "")
	require.NoError(t, os.Unsetenv("OPENWEATHER_API_KEY"))

	_, err := config.NewConfig()
	assert.Error(t, err)
}
