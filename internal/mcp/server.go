package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"weather-mcp-agent/internal/weather"
)

// ToolAdapter exposes the two weather tools to LLM agents. It holds the
// fetcher and produces the protocol's result payloads; transport and message
// framing belong to the MCP server library.
type ToolAdapter struct {
	fetcher weather.Fetcher
	log     *logrus.Logger
}

// NewToolAdapter wires a fetcher into the tool surface.
func NewToolAdapter(fetcher weather.Fetcher, log *logrus.Logger) *ToolAdapter {
	return &ToolAdapter{fetcher: fetcher, log: log}
}

// CurrentWeather implements the get_current_weather tool: a flat mapping of
// every record field formatted as a display string.
func (a *ToolAdapter) CurrentWeather(ctx context.Context, location string) (map[string]string, error) {
	rec, err := a.fetcher.FetchCurrent(ctx, location)
	if err != nil {
		return nil, err
	}
	return weather.CurrentDisplay(rec), nil
}

// ForecastResult is the get_weather_forecast tool payload. It carries raw
// per-slot rows at full granularity; daily aggregation is a display concern
// of the web view, not of the tool surface.
type ForecastResult struct {
	Location string              `json:"location"`
	Forecast []map[string]string `json:"forecast"`
}

// Forecast implements the get_weather_forecast tool.
func (a *ToolAdapter) Forecast(ctx context.Context, location string, days int) (ForecastResult, error) {
	records, err := a.fetcher.FetchForecast(ctx, location, days)
	if err != nil {
		return ForecastResult{}, err
	}
	return ForecastResult{
		Location: location,
		Forecast: weather.SlotDisplays(records),
	}, nil
}

// NewServer builds the MCP stdio server with both weather tools registered.
func NewServer(adapter *ToolAdapter) *server.MCPServer {
	srv := server.NewMCPServer(
		"weather-mcp-agent",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	currentTool := mcp.NewTool("get_current_weather",
		mcp.WithDescription("Get current weather data for a location"),
		mcp.WithString("location",
			mcp.Required(),
			mcp.Description("City name or coordinates"),
		),
	)
	srv.AddTool(currentTool, adapter.handleCurrent)

	forecastTool := mcp.NewTool("get_weather_forecast",
		mcp.WithDescription("Get weather forecast for a location"),
		mcp.WithString("location",
			mcp.Required(),
			mcp.Description("City name or coordinates"),
		),
		mcp.WithNumber("days",
			mcp.Description("Number of days (default: 5)"),
			mcp.DefaultNumber(weather.DefaultForecastDays),
		),
	)
	srv.AddTool(forecastTool, adapter.handleForecast)

	return srv
}

// ServeStdio runs the server over stdin/stdout until EOF or cancellation.
func ServeStdio(srv *server.MCPServer) error {
	return server.ServeStdio(srv)
}

func (a *ToolAdapter) handleCurrent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	location, err := req.RequireString("location")
	if err != nil {
		return mcp.NewToolResultError("Location is required"), nil
	}

	a.log.WithField("location", location).Info("tool call: get_current_weather")

	result, err := a.CurrentWeather(ctx, location)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result)
}

func (a *ToolAdapter) handleForecast(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	location, err := req.RequireString("location")
	if err != nil {
		return mcp.NewToolResultError("Location is required"), nil
	}
	days := req.GetInt("days", weather.DefaultForecastDays)

	a.log.WithFields(logrus.Fields{"location": location, "days": days}).
		Info("tool call: get_weather_forecast")

	result, err := a.Forecast(ctx, location, days)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(b)), nil
}
