package app

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.uber.org/zap"

	"github.com/Nazarious-ucu/weather-app/internal/config"
	"github.com/Nazarious-ucu/weather-app/internal/models"
	"github.com/Nazarious-ucu/weather-app/internal/services/cache"
	loggerT "github.com/Nazarious-ucu/weather-app/internal/services/logger"
	metricsSvc "github.com/Nazarious-ucu/weather-app/internal/services/metrics"
	serviceWeather "github.com/Nazarious-ucu/weather-app/internal/services/weather"
	"github.com/Nazarious-ucu/weather-app/internal/services/weather/decorators"
)

const (
	Namespace = "weather_app"

	cachePrefix      = "weather:"
	redisPingTimeout = 2 * time.Second
	breakerName      = "OpenWeather"
)

// WeatherGetter is the lookup both front ends call.
type WeatherGetter interface {
	GetByCity(ctx context.Context, city string) (models.Weather, error)
}

type fetcher interface {
	Fetch(ctx context.Context, city string) (models.Weather, error)
}

// NewHTTPClient returns a client whose outbound calls are written to fileLogger.
func NewHTTPClient(fileLogger *zap.Logger) *http.Client {
	return &http.Client{Transport: loggerT.NewRoundTripper(fileLogger)}
}

// NewWeatherService builds the fetch chain: OpenWeatherMap client, circuit
// breaker, service and, when enabled and reachable, the redis cache.
// The returned func releases the cache connection.
func NewWeatherService(
	cfg config.Config,
	l zerolog.Logger,
	httpClient serviceWeather.HTTPClient,
	reg prometheus.Registerer,
) (WeatherGetter, func() error) {
	var cl fetcher = serviceWeather.NewClientOpenWeatherMap(
		cfg.OpenWeather.APIKey,
		cfg.OpenWeather.URL,
		cfg.OpenWeather.Units,
		httpClient,
		l,
	)

	if cfg.Breaker.Enabled {
		cl = serviceWeather.NewBreakerClient(breakerName, serviceWeather.BreakerConfig{
			TimeInterval: time.Duration(cfg.Breaker.TimeInterval) * time.Second,
			TimeTimeOut:  time.Duration(cfg.Breaker.TimeTimeOut) * time.Second,
			RepeatNumber: cfg.Breaker.RepeatNumber,
		}, cl)
	}

	rawService := serviceWeather.NewService(l, cl, cfg.FetchTimeout())
	noop := func() error { return nil }

	if !cfg.Redis.Enabled {
		return rawService, noop
	}

	redisClient := newRedisConnection(cfg.RedisAddress(), cfg.Redis.DbType)

	pingCtx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		l.Error().
			Err(err).
			Str("address", cfg.RedisAddress()).
			Msg("redis unavailable, running without cache")
		_ = redisClient.Close()
		return rawService, noop
	}

	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	cacheMetrics := cache.NewMetricsDecorator[models.Weather](
		cache.NewRedisClient[models.Weather](redisClient, l, cachePrefix, cfg.CacheLiveTime()),
		metricsSvc.NewPromCollector(Namespace, reg),
	)

	l.Info().
		Str("address", cfg.RedisAddress()).
		Dur("live_time", cfg.CacheLiveTime()).
		Msg("weather cache enabled")

	return decorators.NewCachedService(rawService, cacheMetrics, l), redisClient.Close
}

func newRedisConnection(connString string, dbType int) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: connString, DB: dbType})
}
