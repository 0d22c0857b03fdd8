package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Nazarious-ucu/weather-app/internal/app"
	"github.com/Nazarious-ucu/weather-app/internal/config"
	"github.com/Nazarious-ucu/weather-app/internal/services/metrics"
	"github.com/Nazarious-ucu/weather-app/pkg/logger"
)

// @title Weather App API
// @version 1.0
// @description Current weather lookup by city
// @host localhost:8080
// @BasePath /
func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Panicf("failed to load configuration: %v", err)
	}

	l := logger.NewLogger(cfg.LogsPath, "weather-web", os.Stdout)
	m := metrics.NewMetrics(app.Namespace)

	application := app.New(*cfg, l, m)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Start(ctx); err != nil {
		log.Panicf("Application failed to run: %v", err)
	}
}
