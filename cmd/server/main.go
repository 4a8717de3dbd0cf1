package main

import (
	"context"
	"io"
	"log"
	"log/slog"

	"github.com/vishalmourya/car-saarthi/internal/advisor"
	"github.com/vishalmourya/car-saarthi/internal/config"
	"github.com/vishalmourya/car-saarthi/internal/llm"
	"github.com/vishalmourya/car-saarthi/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	chainLLM, lookupLLM, err := llm.NewFromConfig(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to create LLM provider: %v", err)
	}
	if c, ok := chainLLM.(io.Closer); ok {
		defer c.Close()
	}

	adv := advisor.New(chainLLM, lookupLLM)

	srv := server.New(*cfg, adv)
	slog.Info("starting car-saarthi", "host", cfg.Server.Host, "port", cfg.Server.Port)
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
