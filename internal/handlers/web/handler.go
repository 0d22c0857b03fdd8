package web

import (
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/weather-app/internal/models"
	"github.com/Nazarious-ucu/weather-app/internal/ui"
)

const pageTemplate = "index.html"

//go:embed templates/*.html
var templatesFS embed.FS

// Templates parses the embedded page templates for gin's HTML renderer.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/*.html"))
}

type weatherGetterService interface {
	GetByCity(ctx context.Context, city string) (models.Weather, error)
}

type recorder interface {
	RecordFetch(result string)
}

type Handler struct {
	service      weatherGetterService
	iconTemplate string
	m            recorder
	logger       zerolog.Logger
}

func NewHandler(svc weatherGetterService, iconTemplate string, m recorder, logger zerolog.Logger) *Handler {
	return &Handler{service: svc, iconTemplate: iconTemplate, m: m, logger: logger}
}

type page struct {
	Title        string
	InputLabel   string
	LoadingLabel string
	WarningTitle string
	ErrorTitle   string

	Input  string
	Panel  ui.Panel
	Result bool
	Failed bool
}

func (h *Handler) render(c *gin.Context, status int, input string, ctrl *ui.Controller) {
	p := ctrl.View()
	c.HTML(status, pageTemplate, page{
		Title:        ui.Title,
		InputLabel:   ui.InputLabel,
		LoadingLabel: ui.TriggerLoadingLabel,
		WarningTitle: ui.WarningTitle,
		ErrorTitle:   ui.ErrorTitle,
		Input:        input,
		Panel:        p,
		Result:       p.State == ui.StateResult,
		Failed:       p.State == ui.StateError,
	})
}

// Index renders the empty form with the welcome panel.
func (h *Handler) Index(c *gin.Context) {
	h.render(c, http.StatusOK, "", ui.NewController(h.iconTemplate))
}

// GetWeather runs one lookup for the submitted city and renders the panel.
func (h *Handler) GetWeather(c *gin.Context) {
	input := c.Query("city")
	ctrl := ui.NewController(h.iconTemplate)

	city, ok := ctrl.Submit(input)
	if !ok {
		h.m.RecordFetch("rejected")
		h.render(c, http.StatusBadRequest, input, ctrl)
		return
	}

	data, err := h.service.GetByCity(c.Request.Context(), city)
	ctrl.Complete(data, err)

	if err != nil {
		h.m.RecordFetch("failure")
		h.logger.Error().
			Ctx(c.Request.Context()).
			Str("city", city).
			Err(err).
			Msg("weather lookup failed")
		h.render(c, http.StatusBadGateway, input, ctrl)
		return
	}

	h.m.RecordFetch("success")
	h.render(c, http.StatusOK, input, ctrl)
}
