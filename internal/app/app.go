package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"AppRanker/internal/config"
	"AppRanker/internal/infrastructure/itunes"
	"AppRanker/internal/infrastructure/metrics"
	"AppRanker/internal/infrastructure/report"
	"AppRanker/internal/logging"
	"AppRanker/internal/ports"
	"AppRanker/internal/ranking"
	"AppRanker/internal/similarity"
	"AppRanker/internal/textmatch"
	"AppRanker/internal/usecase"
)

// Application wires configs to use cases and adapters.
type Application struct {
	cfg       config.Config
	pipeline  *usecase.Pipeline
	presenter ports.Presenter
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// New builds a runnable application writing its report to out.
func New(cfg config.Config, out io.Writer, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	nameMetric, err := textmatch.DefaultRegistry().Resolve(cfg.Scoring.NameMetric)
	if err != nil {
		return nil, fmt.Errorf("scoring: %w", err)
	}

	presenter, err := report.New(cfg.Output.Format, out)
	if err != nil {
		return nil, fmt.Errorf("output: %w", err)
	}

	recorder, err := metrics.New()
	if err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}

	provider := itunes.NewClient(cfg.Provider, nil, recorder, baseLogger.With("component", "provider.itunes"))

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Provider: provider,
		Ranker:   ranking.NewRanker(similarity.NewEngine(nameMetric)),
		Recorder: recorder,
		Logger:   baseLogger.With("component", "pipeline"),
	})

	baseLogger.Debug("application ready",
		"lookup_url", cfg.Provider.LookupURL,
		"concurrency", cfg.Provider.Concurrency,
		"name_metric", nameMetric.Name(),
		"format", cfg.Output.Format)

	return &Application{
		cfg:       cfg,
		pipeline:  pipeline,
		presenter: presenter,
		metrics:   recorder,
		logger:    baseLogger,
	}, nil
}

// Run performs a single ranking and presents it. Metrics are flushed even when the run fails.
func (a *Application) Run(ctx context.Context, primaryID string, secondaryIDs []string) error {
	result, err := a.pipeline.Run(ctx, primaryID, secondaryIDs)

	if mErr := a.metrics.WriteTextfile(a.cfg.Metrics.Textfile); mErr != nil {
		a.logger.Warn("write metrics textfile", "path", a.cfg.Metrics.Textfile, "error", mErr)
	}

	if err != nil {
		return err
	}
	return a.presenter.Present(ctx, result)
}
