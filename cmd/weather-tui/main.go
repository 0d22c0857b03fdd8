package main

import (
	"context"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/Nazarious-ucu/weather-app/internal/app"
	"github.com/Nazarious-ucu/weather-app/internal/config"
	"github.com/Nazarious-ucu/weather-app/internal/services/icon"
	"github.com/Nazarious-ucu/weather-app/internal/tui"
	"github.com/Nazarious-ucu/weather-app/pkg/logger"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Panicf("failed to load configuration: %v", err)
	}

	// The terminal belongs to the UI, so logs go to the file only.
	l := logger.NewLogger(cfg.LogsPath, "weather-tui", nil)

	fileLogger, err := logger.NewFileLogger(cfg.HTTPLogsPath)
	if err != nil {
		log.Panicf("failed to create file logger: %v", err)
	}
	defer func() {
		if err := fileLogger.Sync(); err != nil {
			l.Error().Err(err).Msg("failed to sync file logger")
		}
	}()

	httpClient := app.NewHTTPClient(fileLogger)

	svc, closeCache := app.NewWeatherService(*cfg, l, httpClient, nil)
	defer func() {
		if err := closeCache(); err != nil {
			l.Error().Err(err).Msg("failed to close cache connection")
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	icons := icon.NewClient(cfg.OpenWeather.IconURLTemplate, httpClient, l)

	model := tui.New(ctx, svc, icons, cfg.OpenWeather.IconURLTemplate, l)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		l.Error().Err(err).Msg("terminal program failed")
		log.Printf("terminal program failed: %v", err)
	}
}
