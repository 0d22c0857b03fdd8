package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerfiles "github.com/swaggo/files"
	swagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/Nazarious-ucu/weather-app/docs"
	"github.com/Nazarious-ucu/weather-app/internal/config"
	apiHandlers "github.com/Nazarious-ucu/weather-app/internal/handlers/http"
	"github.com/Nazarious-ucu/weather-app/internal/handlers/middleware"
	"github.com/Nazarious-ucu/weather-app/internal/handlers/web"
	"github.com/Nazarious-ucu/weather-app/internal/services/icon"
	metricsSvc "github.com/Nazarious-ucu/weather-app/internal/services/metrics"
	fLogger "github.com/Nazarious-ucu/weather-app/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

// ServiceContainer holds initialized dependencies for the web server.
type ServiceContainer struct {
	WeatherService WeatherGetter
	IconClient     *icon.Client

	Router     *gin.Engine
	Srv        *http.Server
	fileLogger *zap.Logger
	closeCache func() error
}

// App ties together config, logger and metrics for startup and shutdown.
type App struct {
	cfg config.Config
	l   zerolog.Logger
	m   *metricsSvc.Metrics
}

func New(cfg config.Config, logger zerolog.Logger, met *metricsSvc.Metrics) *App {
	return &App{
		cfg: cfg,
		l:   logger,
		m:   met,
	}
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (a *App) Start(ctx context.Context) error {
	srvContainer, err := a.Init()
	if err != nil {
		return err
	}

	go func() {
		a.l.Info().
			Str("address", a.cfg.ServerAddress()).
			Msg("starting weather web server")
		if err := srvContainer.Srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.l.Error().
				Err(err).
				Msg("web server error")
		}
	}()

	<-ctx.Done()
	a.l.Info().Msg("shutdown signal received, stopping weather web server")

	return a.Shutdown(srvContainer)
}

// Init builds services and the router without starting the listener.
func (a *App) Init() (ServiceContainer, error) {
	a.l.Info().
		Str("address", a.cfg.ServerAddress()).
		Str("weather_url", a.cfg.OpenWeather.URL).
		Bool("breaker", a.cfg.Breaker.Enabled).
		Bool("cache", a.cfg.Redis.Enabled).
		Msg("initializing weather web app")

	fileLogger, err := fLogger.NewFileLogger(a.cfg.HTTPLogsPath)
	if err != nil {
		a.l.Error().Err(err).Msg("failed to create file logger")
		return ServiceContainer{}, err
	}

	httpLogClient := NewHTTPClient(fileLogger)

	weatherService, closeCache := NewWeatherService(a.cfg, a.l, httpLogClient, a.m.Registerer())
	iconClient := icon.NewClient(a.cfg.OpenWeather.IconURLTemplate, httpLogClient, a.l)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID(a.l))
	router.Use(a.m.HTTPMiddleware())
	router.SetHTMLTemplate(web.Templates())

	pageHandler := web.NewHandler(weatherService, a.cfg.OpenWeather.IconURLTemplate, a.m, a.l)
	apiHandler := apiHandlers.NewHandler(weatherService, iconClient, a.m, a.l)

	router.GET("/", pageHandler.Index)
	router.GET("/weather", pageHandler.GetWeather)
	router.GET("/icon/:code", apiHandler.GetIcon)

	api := router.Group("/api")
	{
		api.GET("/weather", apiHandler.GetWeather)
	}

	router.GET("/metrics", gin.WrapH(a.m.Handler()))
	router.GET("/swagger/*any", swagger.WrapHandler(swaggerfiles.Handler))

	httpServer := &http.Server{
		Addr:        a.cfg.ServerAddress(),
		Handler:     router,
		ReadTimeout: time.Duration(a.cfg.Server.ReadTimeout) * time.Second,
	}

	return ServiceContainer{
		WeatherService: weatherService,
		IconClient:     iconClient,
		Router:         router,
		Srv:            httpServer,
		fileLogger:     fileLogger,
		closeCache:     closeCache,
	}, nil
}

// Shutdown stops the server, closes the cache and syncs the file logger.
func (a *App) Shutdown(srvContainer ServiceContainer) error {
	a.l.Info().Msg("stopping weather web server…")

	defer func(logger *zap.Logger) {
		if err := logger.Sync(); err != nil {
			a.l.Error().Err(err).Msg("failed to sync file logger")
		} else {
			a.l.Info().Msg("file logger synced successfully")
		}
	}(srvContainer.fileLogger)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	if err := srvContainer.Srv.Shutdown(ctx); err != nil {
		a.l.Error().Err(err).Msg("forced shutdown due to error")
		errs = append(errs, err)
	} else {
		a.l.Info().Msg("HTTP server stopped")
	}

	if err := srvContainer.closeCache(); err != nil {
		a.l.Error().Err(err).Msg("failed to close cache connection")
		errs = append(errs, err)
	}

	a.l.Info().Msg("shutdown complete")
	return errors.Join(errs...)
}
