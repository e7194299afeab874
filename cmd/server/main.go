package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pathplan.app/engine/common/id"
	"pathplan.app/engine/common/llm"
	"pathplan.app/engine/common/logger"
	"pathplan.app/engine/common/otel"
	"pathplan.app/engine/core/config"
	"pathplan.app/engine/internal/http/router"
	"pathplan.app/engine/internal/service"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	// A missing credential stops the process here, before anything listens.
	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "roadmap engine starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(1); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	llmClient, err := llm.New(llm.Config{
		Provider: cfg.RoadmapLLM.Provider,
		APIKey:   cfg.RoadmapLLM.APIKey,
		BaseURL:  cfg.RoadmapLLM.BaseURL,
		Model:    cfg.RoadmapLLM.Model,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create llm client", "error", err)
		os.Exit(1)
	}
	slog.InfoContext(ctx, "llm client ready",
		"provider", cfg.RoadmapLLM.Provider,
		"model", llmClient.Model(),
		"max_tokens", cfg.RoadmapLLM.MaxTokens,
		"temperature", cfg.RoadmapLLM.Temperature,
		"timeout", cfg.RoadmapLLM.Timeout.String(),
		"strict_goals", cfg.Roadmap.StrictGoals)

	services := service.NewServices(service.ServicesConfig{
		LLM:     llmClient,
		LLMCfg:  cfg.RoadmapLLM,
		Roadmap: cfg.Roadmap,
	})

	engine := router.New(services, router.RouterConfig{
		ServiceName:  cfg.OTel.ServiceName,
		OTelEnabled:  cfg.OTel.Enabled(),
		IsProduction: cfg.IsProduction(),
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      writeTimeout(cfg.RoadmapLLM.Timeout),
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

// writeTimeout leaves room past the model deadline for writing the response.
// With no model deadline the write side is unbounded as well.
func writeTimeout(llmTimeout time.Duration) time.Duration {
	if llmTimeout <= 0 {
		return 0
	}
	return llmTimeout + 15*time.Second
}

const banner = `
 ____   _  _____ _   _ ____  _        _    _   _
|  _ \ / \|_   _| | | |  _ \| |      / \  | \ | |
| |_) / _ \ | | | |_| | |_) | |     / _ \ |  \| |
|  __/ ___ \| | |  _  |  __/| |___ / ___ \| |\  |
|_| /_/   \_\_| |_| |_|_|   |_____/_/   \_\_| \_|
`
