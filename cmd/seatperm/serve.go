package main

import (
	"context"
	"log/slog"

	"github.com/dusk-indust/seatperm/internal/config"
	"github.com/dusk-indust/seatperm/internal/mcptools"
	"github.com/dusk-indust/seatperm/internal/pipeline"
)

func runServeMCP(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	p := pipeline.NewPipeline(pipeline.Config{Workers: max(1, cfg.Workers)}, logger)
	done := logProgress(p, logger)
	defer func() {
		p.Close()
		<-done
	}()

	logger.Info("serving MCP on stdio", "max_seats", cfg.MaxSeats, "workers", cfg.Workers)
	server := mcptools.NewSeatingMCPServer(mcptools.NewSeatingService(p, cfg.MaxSeats))
	return mcptools.RunStdio(ctx, server)
}
