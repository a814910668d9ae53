package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"

	httpapi "weather-mcp-agent/internal/api/http"
	"weather-mcp-agent/internal/config"
	"weather-mcp-agent/internal/logger"
	mcpserver "weather-mcp-agent/internal/mcp"
	"weather-mcp-agent/internal/weather"
	"weather-mcp-agent/internal/weather/providers"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "weather-agent",
		Short: "Weather data agent",
		Long:  "Fetches current weather and forecasts from OpenWeatherMap and serves them over HTTP, MCP, or the terminal",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(mcpCmd())
	rootCmd.AddCommand(currentCmd())
	rootCmd.AddCommand(forecastCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newFetcher builds the provider client from loaded configuration. The API
// key is injected once here; nothing else reads the environment.
func newFetcher(cfg *config.AppConfig) weather.Fetcher {
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}
	return providers.NewOpenWeatherClient(httpClient, cfg.OpenWeatherAPIKey, cfg.BaseURL)
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			log := logger.New(cfg.LogLevel, cfg.Env)
			if !cfg.APIKeyConfigured() {
				log.Warn("OPENWEATHER_API_KEY is not set; weather requests will fail until it is configured")
			}

			fetcher := newFetcher(cfg)
			handler := httpapi.NewHandler(fetcher, cfg, log)

			app := fiber.New(fiber.Config{
				AppName:               "weather-mcp-agent",
				DisableStartupMessage: true,
				ReadTimeout:           10 * time.Second,
				WriteTimeout:          10 * time.Second,
			})

			app.Use(fiberlogger.New())
			app.Use(recover.New())

			app.Get("/health", func(c *fiber.Ctx) error {
				return c.JSON(fiber.Map{
					"status":  "ok",
					"service": "weather-mcp-agent",
				})
			})

			httpapi.RegisterRoutes(app, handler)

			go func() {
				log.Infof("listening on :%s", cfg.Port)
				if err := app.Listen(":" + cfg.Port); err != nil {
					log.Errorf("fiber server stopped: %v", err)
				}
			}()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			<-ctx.Done()

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := app.ShutdownWithContext(shutdownCtx); err != nil {
				log.Errorf("error during shutdown: %v", err)
			}
			return nil
		},
	}
}

func mcpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start the MCP server over stdio",
		Long:  "Serve the get_current_weather and get_weather_forecast tools to MCP clients; stdout carries protocol frames, logs go to stderr",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			// Stdout belongs to the protocol.
			log := logger.NewWithWriter(cfg.LogLevel, os.Stderr)

			adapter := mcpserver.NewToolAdapter(newFetcher(cfg), log)
			srv := mcpserver.NewServer(adapter)

			log.Info("MCP server listening on stdio")
			return mcpserver.ServeStdio(srv)
		},
	}
}

func currentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "current <location>",
		Short: "Print current weather for a location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.HTTPTimeout+5*time.Second)
			defer cancel()

			rec, err := newFetcher(cfg).FetchCurrent(ctx, args[0])
			if err != nil {
				return err
			}

			view := weather.CurrentDisplay(rec)
			fmt.Printf("Weather in %s:\n", view["location"])
			fmt.Printf("  Temperature: %s\n", view["temperature"])
			fmt.Printf("  Feels like:  %s\n", view["feels_like"])
			fmt.Printf("  Humidity:    %s\n", view["humidity"])
			fmt.Printf("  Conditions:  %s\n", view["description"])
			fmt.Printf("  Wind:        %s\n", view["wind_speed"])
			fmt.Printf("  Pressure:    %s\n", view["pressure"])
			fmt.Printf("  Visibility:  %s\n", view["visibility"])
			fmt.Printf("  Updated:     %s\n", view["timestamp"])
			return nil
		},
	}
}

func forecastCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "forecast <location>",
		Short: "Print a multi-day forecast for a location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.HTTPTimeout+5*time.Second)
			defer cancel()

			records, err := newFetcher(cfg).FetchForecast(ctx, args[0], days)
			if err != nil {
				return err
			}

			fmt.Printf("%d-day forecast for %s:\n", days, args[0])
			for i, view := range weather.SlotDisplays(records) {
				fmt.Printf("  %2d. %s: %s, %s\n", i+1, view["timestamp"], view["temperature"], view["description"])
			}

			daily, err := weather.AggregateDaily(records)
			if err != nil {
				return err
			}

			fmt.Println("\nDaily summary:")
			for _, d := range daily {
				fmt.Printf("  %s: %d°C, %s\n", d.Date, d.AverageTemperature, d.DominantDescription)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", weather.DefaultForecastDays, "number of days")
	return cmd
}
