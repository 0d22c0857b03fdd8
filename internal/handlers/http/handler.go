package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/weather-app/internal/models"
	"github.com/Nazarious-ucu/weather-app/internal/services/icon"
	"github.com/Nazarious-ucu/weather-app/internal/services/weather"
)

const iconCacheControl = "public, max-age=86400"

type weatherGetterService interface {
	GetByCity(ctx context.Context, city string) (models.Weather, error)
}

type iconFetcher interface {
	Fetch(ctx context.Context, code string) (icon.Image, error)
}

type recorder interface {
	RecordFetch(result string)
	RecordIcon(result string)
}

type Handler struct {
	service weatherGetterService
	icons   iconFetcher
	m       recorder
	logger  zerolog.Logger
}

func NewHandler(svc weatherGetterService, icons iconFetcher, m recorder, logger zerolog.Logger) *Handler {
	return &Handler{service: svc, icons: icons, m: m, logger: logger}
}

// GetWeather
// @Summary Get current weather
// @Description Returns the current weather for a given city
// @Tags weather
// @Produce json
// @Param city query string true "City name"
// @Success 200 {object} models.Weather
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/weather [get]
func (h *Handler) GetWeather(c *gin.Context) {
	city := c.Query("city")

	data, err := h.service.GetByCity(c.Request.Context(), city)
	if errors.Is(err, weather.ErrEmptyCity) {
		h.m.RecordFetch("rejected")
		c.JSON(http.StatusBadRequest, gin.H{"error": "city query parameter is required"})
		return
	}
	if err != nil {
		h.m.RecordFetch("failure")
		h.logger.Error().
			Ctx(c.Request.Context()).
			Str("city", city).
			Err(err).
			Msg("weather lookup failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": weather.ErrFetchFailed.Error()})
		return
	}

	h.m.RecordFetch("success")
	c.JSON(http.StatusOK, data)
}

// GetIcon
// @Summary Get weather icon
// @Description Proxies the pictogram for an icon code
// @Tags weather
// @Produce png
// @Param code path string true "Icon code, e.g. 03d"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /icon/{code} [get]
func (h *Handler) GetIcon(c *gin.Context) {
	code := c.Param("code")

	img, err := h.icons.Fetch(c.Request.Context(), code)
	if errors.Is(err, icon.ErrInvalidCode) {
		h.m.RecordIcon("rejected")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		h.m.RecordIcon("failure")
		c.JSON(http.StatusNotFound, gin.H{"error": "icon not available"})
		return
	}

	h.m.RecordIcon("success")
	c.Header("Cache-Control", iconCacheControl)
	c.Data(http.StatusOK, img.ContentType, img.Data)
}
