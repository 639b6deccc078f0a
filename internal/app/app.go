package app

import (
	"context"
	"fmt"
	"log/slog"

	"AccidentAtlas/internal/config"
	"AccidentAtlas/internal/domain"
	"AccidentAtlas/internal/infrastructure/export"
	"AccidentAtlas/internal/infrastructure/geo"
	"AccidentAtlas/internal/infrastructure/tabular"
	"AccidentAtlas/internal/logging"
	"AccidentAtlas/internal/ports"
	"AccidentAtlas/internal/reconcile"
	"AccidentAtlas/internal/source"
	"AccidentAtlas/internal/usecase"
)

// Application wires configs to use cases.
type Application struct {
	cfg      config.Config
	pipeline *usecase.Pipeline
}

// New builds a runnable application instance from configuration.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level, cfg.Logging.Format)
	}

	mode, err := domain.ParseJoinMode(cfg.Join.Mode)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	registry := source.NewRegistry()
	registry.RegisterBoundary(geo.NewReader(baseLogger.With("component", "source.geojson")))
	registry.RegisterStats(tabular.NewReader(baseLogger.With("component", "source.csv")))

	boundaries := source.NewBoundaryStrategy(registry, cfg.Sources.Boundaries, baseLogger.With("component", "source"))
	stats := source.NewStatStrategy(registry, cfg.Sources.Stats, baseLogger.With("component", "source"))

	var datasetSink ports.DatasetSink
	if cfg.Output.DatasetPath != "" {
		datasetSink = export.NewFeatureWriter(cfg.Output.DatasetPath, baseLogger.With("component", "export"))
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Boundaries:      boundaries,
		Stats:           stats,
		Dataset:         datasetSink,
		Report:          export.NewReportWriter(cfg.Report.Path),
		Logger:          baseLogger.With("component", "pipeline"),
		Mode:            mode,
		Selected:        reconcile.Canonicalize(cfg.Report.Department, reconcile.AliasStats),
		FallbackEnabled: cfg.Fallback.Enabled,
		FallbackStats:   fallbackRows(cfg.Fallback.Stats),
	})

	return &Application{cfg: cfg, pipeline: pipeline}, nil
}

// Run executes one full reconciliation pass.
func (a *Application) Run(ctx context.Context) error {
	_, err := a.pipeline.Run(ctx)
	return err
}

// Validate loads both sources and returns the join-quality findings.
func (a *Application) Validate(ctx context.Context) (reconcile.Findings, error) {
	return a.pipeline.Validate(ctx)
}

func fallbackRows(rows []config.FallbackStatRow) []domain.StatRecord {
	records := make([]domain.StatRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, domain.StatRecord{Name: row.Name, Deaths: row.Deaths})
	}
	return records
}
