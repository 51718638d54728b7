package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dusk-indust/seatperm/internal/config"
	"github.com/dusk-indust/seatperm/internal/export"
	"github.com/dusk-indust/seatperm/internal/pipeline"
)

// CLI flags parsed from command line.
type cliFlags struct {
	ConfigDir       string
	Seats           int
	StartingMatches int
	Threshold       int
	Policy          string
	Limit           int
	MaxSeats        int
	Workers         int
	Format          string
	Interactive     bool
	Verbose         bool
	ServeMCP        bool
	Version         bool
}

// version is set by goreleaser at build time.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var flags cliFlags

	fs := flag.NewFlagSet("seatperm", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&flags.ConfigDir, "config-dir", ".", "directory holding seatperm.yml")
	fs.IntVar(&flags.Seats, "seats", 0, "number of seats around the table")
	fs.IntVar(&flags.StartingMatches, "starting", 0, "number of people who start in their own seat")
	fs.IntVar(&flags.Threshold, "threshold", 0, "funding threshold checked against every rotation")
	fs.StringVar(&flags.Policy, "policy", "", "threshold policy: strict-below or at-most")
	fs.IntVar(&flags.Limit, "limit", 0, "maximum number of arrangements to display")
	fs.IntVar(&flags.MaxSeats, "max-seats", 0, "refuse seat counts above this bound (0 disables)")
	fs.IntVar(&flags.Workers, "workers", 0, "number of evaluation workers")
	fs.StringVar(&flags.Format, "format", "", "output format: text or json")
	fs.BoolVar(&flags.Interactive, "interactive", false, "prompt for seats, starting matches, threshold and limit")
	fs.BoolVar(&flags.Verbose, "verbose", false, "enable verbose output")
	fs.BoolVar(&flags.ServeMCP, "serve-mcp", false, "run as an MCP server on stdio")
	fs.BoolVar(&flags.Version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if flags.Version {
		fmt.Fprintln(stdout, version)
		return nil
	}

	cfg, err := config.Load(flags.ConfigDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return err
	}
	applyFlags(fs, &flags, cfg)

	logger := newLogger(stderr, cfg.Verbose)

	if flags.ServeMCP {
		return runServeMCP(ctx, cfg, logger)
	}

	if flags.Interactive {
		if err := promptConfig(newPrompter(stdin, stdout), cfg); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	params, err := cfg.Params()
	if err != nil {
		return err
	}

	p := pipeline.NewPipeline(pipeline.Config{Workers: cfg.Workers}, logger)
	done := logProgress(p, logger)
	res, err := p.Run(ctx, params)
	p.Close()
	<-done
	if err != nil {
		return err
	}

	report := export.NewReport(res, cfg.Limit)
	if cfg.Format == config.FormatJSON {
		return export.WriteJSON(stdout, report)
	}
	return export.WriteText(stdout, report)
}

// applyFlags copies explicitly set flags over the file and env settings.
func applyFlags(fs *flag.FlagSet, flags *cliFlags, cfg *config.Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seats":
			cfg.Seats = flags.Seats
		case "starting":
			cfg.StartingMatches = flags.StartingMatches
		case "threshold":
			cfg.Threshold = flags.Threshold
		case "policy":
			cfg.Policy = flags.Policy
		case "limit":
			cfg.Limit = flags.Limit
		case "max-seats":
			cfg.MaxSeats = flags.MaxSeats
		case "workers":
			cfg.Workers = flags.Workers
		case "format":
			cfg.Format = flags.Format
		case "verbose":
			cfg.Verbose = flags.Verbose
		}
	})
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// logProgress forwards pipeline progress events to the debug log until the
// pipeline is closed. The returned channel is closed once draining stops.
func logProgress(p *pipeline.Pipeline, logger *slog.Logger) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for ev := range p.Progress() {
			logger.Debug(pipeline.FormatProgress(ev), "stage", ev.Stage.String())
		}
	}()
	return done
}
