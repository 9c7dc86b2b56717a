package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/minakianandclaude/LifeTracker/config"
	_ "github.com/minakianandclaude/LifeTracker/docs" // Swagger docs
	"github.com/minakianandclaude/LifeTracker/internal/httpserver"
	"github.com/minakianandclaude/LifeTracker/internal/middleware"
	"github.com/minakianandclaude/LifeTracker/internal/voice/parser"
	"github.com/minakianandclaude/LifeTracker/pkg/log"
	"github.com/minakianandclaude/LifeTracker/pkg/ollama"
	"github.com/minakianandclaude/LifeTracker/pkg/postgres"
)

// @title                      LifeTracker API
// @description                Personal task tracker with voice capture. Spoken sentences are parsed into tasks by a local language model.
// @version                    1
// @host                       localhost:3000
// @schemes                    http
// @securityDefinitions.apikey ApiKeyAuth
// @in                         header
// @name                       X-API-Key
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting LifeTracker API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	if cfg.Auth.APIKey == config.DefaultAPIKey {
		logger.Warn(ctx, "Using the default API key; set API_KEY before exposing the server")
	}

	// 3. Postgres
	db, err := postgres.Connect(ctx, postgres.Config{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to Postgres: %v", err)
	}
	defer db.Close()

	if cfg.Postgres.AutoMigrate {
		if err := postgres.Migrate(ctx, db); err != nil {
			logger.Fatalf(ctx, "Failed to migrate database: %v", err)
		}
		logger.Info(ctx, "Database schema up to date")
	}

	// 4. Ollama client
	llm, err := ollama.New(ollama.Config{
		BaseURL: cfg.Ollama.URL,
		Model:   cfg.Ollama.Model,
		Timeout: cfg.Ollama.Timeout,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Ollama client: %v", err)
	}
	logger.Infof(ctx, "Ollama: %s (model %s)", cfg.Ollama.URL, llm.Model())

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		PostgresDB:      db,
		Ollama:          llm,
		Parser: parser.Config{
			Model:       cfg.Ollama.Model,
			ModelFamily: cfg.Ollama.ModelFamily,
			Temperature: cfg.Ollama.Temperature,
			NumPredict:  cfg.Ollama.NumPredict,
		},
		Middleware: middleware.Config{
			APIKey:           cfg.Auth.APIKey,
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
			Burst:            cfg.RateLimit.Burst,
			MaxTrackedPeers:  cfg.RateLimit.MaxTrackedPeers,
			AllowedOrigins:   cfg.CORS.AllowedOrigins,
		},
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
