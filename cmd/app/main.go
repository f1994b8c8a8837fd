package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"storefront/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Fatalf("Error loading .env file")
	}

	apiTimeout, err := cmd.ParseDuration(os.Getenv("API_TIMEOUT_SECONDS"), time.Second, cmd.DefaultAPITimeout)
	if err != nil {
		log.Fatalf("Invalid API_TIMEOUT_SECONDS: %v", err)
	}

	sessionTTL, err := cmd.ParseDuration(os.Getenv("SESSION_TTL_MINUTES"), time.Minute, cmd.DefaultSessionTTL)
	if err != nil {
		log.Fatalf("Invalid SESSION_TTL_MINUTES: %v", err)
	}

	config := cmd.Config{
		HTTPPort:   os.Getenv("HTTP_PORT"),
		APIBaseURL: os.Getenv("API_BASE_URL"),
		APITimeout: apiTimeout,
		SessionTTL: sessionTTL,
	}
	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return config
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
