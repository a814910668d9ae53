package httpapi

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"weather-mcp-agent/internal/config"
	"weather-mcp-agent/internal/weather"
)

var validate = validator.New()

// DefaultLocation is used when a request body omits the location, matching
// the behavior the frontend has always relied on.
const DefaultLocation = "London"

// Handler serves the weather HTTP API.
type Handler struct {
	fetcher weather.Fetcher
	cfg     *config.AppConfig
	log     *logrus.Logger
}

// NewHandler wires the fetcher and config into an API handler.
func NewHandler(fetcher weather.Fetcher, cfg *config.AppConfig, log *logrus.Logger) *Handler {
	return &Handler{fetcher: fetcher, cfg: cfg, log: log}
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, h *Handler) {
	api := app.Group("/api")

	api.Post("/weather/current", h.currentWeather)
	api.Post("/weather/forecast", h.weatherForecast)
	api.Get("/status", h.status)
}

// currentRequest is the body of POST /api/weather/current.
type currentRequest struct {
	Location string `json:"location"`
}

// forecastRequest is the body of POST /api/weather/forecast.
type forecastRequest struct {
	Location string `json:"location"`
	Days     int    `json:"days" validate:"omitempty,min=1,max=16"`
}

func (h *Handler) currentWeather(c *fiber.Ctx) error {
	var req currentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	if req.Location == "" {
		req.Location = DefaultLocation
	}

	reqID := uuid.NewString()
	h.log.WithFields(logrus.Fields{"request_id": reqID, "location": req.Location}).
		Info("fetching current weather")

	rec, err := h.fetcher.FetchCurrent(c.Context(), req.Location)
	if err != nil {
		h.log.WithFields(logrus.Fields{"request_id": reqID, "location": req.Location}).
			Warnf("current weather fetch failed: %v", err)
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    weather.CurrentDisplay(rec),
	})
}

func (h *Handler) weatherForecast(c *fiber.Ctx) error {
	var req forecastRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	if req.Location == "" {
		req.Location = DefaultLocation
	}
	if req.Days == 0 {
		req.Days = weather.DefaultForecastDays
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	reqID := uuid.NewString()
	h.log.WithFields(logrus.Fields{"request_id": reqID, "location": req.Location, "days": req.Days}).
		Info("fetching forecast")

	records, err := h.fetcher.FetchForecast(c.Context(), req.Location, req.Days)
	if err != nil {
		h.log.WithFields(logrus.Fields{"request_id": reqID, "location": req.Location}).
			Warnf("forecast fetch failed: %v", err)
		return errorResponse(c, err)
	}

	// The frontend gets both shapes: raw per-slot rows and the daily
	// grouping, so no consumer has to reimplement the aggregation.
	daily, err := weather.AggregateDaily(records)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"location": req.Location,
			"forecast": weather.SlotDisplays(records),
			"daily":    daily,
		},
	})
}

func (h *Handler) status(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"api_key_configured": h.cfg.APIKeyConfigured(),
		"api_key_length":     len(h.cfg.OpenWeatherAPIKey),
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error":   msg,
	})
}

// errorResponse converts a typed fetch failure into the uniform
// {success:false, error} envelope. No partial data is ever attached.
func errorResponse(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, weather.ErrLookup):
		code = fiber.StatusNotFound
	case errors.Is(err, weather.ErrAuth):
		code = fiber.StatusServiceUnavailable
	case errors.Is(err, weather.ErrTransport), errors.Is(err, weather.ErrFormat):
		code = fiber.StatusBadGateway
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}
