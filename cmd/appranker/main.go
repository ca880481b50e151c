package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"AppRanker/internal/app"
	"AppRanker/internal/config"
	"AppRanker/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	fs := flag.NewFlagSet("appranker", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: appranker [flags] <primaryId> <secondaryId>...\n")
		fs.PrintDefaults()
	}
	fs.StringVar(&cfg.Output.Format, "format", cfg.Output.Format, "output format: text or json")
	fs.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.Metrics.Textfile, "metrics-textfile", cfg.Metrics.Textfile, "write Prometheus metrics to this file after the run")
	_ = fs.Parse(os.Args[1:])

	primaryID, secondaryIDs, err := splitArgs(fs.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		os.Exit(2)
	}

	logger := logging.New(cfg.Logging.Level)

	application, err := app.New(cfg, os.Stdout, logger)
	if err != nil {
		logger.Error("application setup failed", "error", err)
		os.Exit(1)
	}

	if err := application.Run(ctx, primaryID, secondaryIDs); err != nil {
		logger.Error("ranking failed", "error", err)
		os.Exit(1)
	}
}

// splitArgs takes the primary id first; secondary ids may also be comma separated.
func splitArgs(args []string) (string, []string, error) {
	if len(args) < 2 {
		return "", nil, fmt.Errorf("expected a primary id and at least one secondary id")
	}

	var secondary []string
	for _, arg := range args[1:] {
		for _, id := range strings.Split(arg, ",") {
			if id = strings.TrimSpace(id); id != "" {
				secondary = append(secondary, id)
			}
		}
	}
	return strings.TrimSpace(args[0]), secondary, nil
}
