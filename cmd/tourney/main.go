package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"rps_tourney/internal/config"
	"rps_tourney/internal/game"
	"rps_tourney/internal/logger"
	"rps_tourney/internal/metrics"
	"rps_tourney/internal/report"
	"rps_tourney/internal/tourney"

	"github.com/google/uuid"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errUsage = errors.New("usage: tourney [flags] <path>")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// parseFlags applies command line overrides on top of cfg.
func parseFlags(fs *flag.FlagSet, args []string, cfg *config.Config) error {
	fs.StringVar(&cfg.OnInvalid, "on-invalid", cfg.OnInvalid, "invalid record policy: abort or skip")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.MetricsTextfile, "metrics-file", cfg.MetricsTextfile, "write Prometheus metrics to this file")
	fs.BoolVar(&cfg.Tally, "tally", false, "print win/draw/loss counts per strategy")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return errUsage
	}
	cfg.Path = fs.Arg(0)
	return cfg.Validate()
}

func run(args []string, stdout, stderr io.Writer) (code int) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitError
	}

	fs := flag.NewFlagSet("tourney", flag.ContinueOnError)
	fs.SetOutput(stderr)
	if err := parseFlags(fs, args, cfg); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	policy, err := cfg.Policy()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	locale, err := cfg.Locale()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	logger.Init(stderr, cfg.LogLevel, cfg.JSONLogs())
	log := logger.With("run_id", uuid.NewString(), "path", cfg.Path)

	f, err := os.Open(cfg.Path)
	if err != nil {
		log.Error("failed to open transcript", "error", err)
		return exitError
	}
	defer f.Close()

	// Metrics are written even when scoring fails; a write failure fails the run.
	m := metrics.New()
	defer func() {
		if cfg.MetricsTextfile == "" {
			return
		}
		if err := m.WriteTextfile(cfg.MetricsTextfile); err != nil {
			log.Error("failed to write metrics", "file", cfg.MetricsTextfile, "error", err)
			code = exitError
		}
	}()

	scorer, err := tourney.NewScorer(game.NewFactory().Decoders(), policy, m, log)
	if err != nil {
		log.Error("failed to create scorer", "error", err)
		return exitError
	}

	res, err := scorer.Score(f)
	if err != nil {
		log.Error("failed to score transcript", "error", err)
		return exitError
	}

	if err := report.Write(stdout, res, report.Options{Locale: locale, Tally: cfg.Tally}); err != nil {
		log.Error("failed to write report", "error", err)
		return exitError
	}
	return exitOK
}
