package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"AccidentAtlas/internal/domain"
	"AccidentAtlas/internal/ports"
	"AccidentAtlas/internal/reconcile"
	"AccidentAtlas/internal/report"
)

// PipelineDeps wires the driven adapters into the reconciliation pipeline.
type PipelineDeps struct {
	Boundaries ports.BoundarySource
	Stats      ports.StatSource
	Dataset    ports.DatasetSink
	Report     ports.ReportSink
	Logger     *slog.Logger

	Mode     domain.JoinMode
	Selected string

	// FallbackStats substitutes for the stats source when it is
	// unavailable and FallbackEnabled is set. This policy lives here, not
	// in the reconciler.
	FallbackEnabled bool
	FallbackStats   []domain.StatRecord
}

// Pipeline implements the load-reconcile-validate-publish workflow.
type Pipeline struct {
	boundaries ports.BoundarySource
	stats      ports.StatSource
	dataset    ports.DatasetSink
	report     ports.ReportSink
	logger     *slog.Logger

	mode     domain.JoinMode
	selected string

	fallbackEnabled bool
	fallbackStats   []domain.StatRecord
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		boundaries:      deps.Boundaries,
		stats:           deps.Stats,
		dataset:         deps.Dataset,
		report:          deps.Report,
		logger:          deps.Logger,
		mode:            deps.Mode,
		selected:        deps.Selected,
		fallbackEnabled: deps.FallbackEnabled,
		fallbackStats:   deps.FallbackStats,
	}
}

// Run loads both sources, reconciles them, and publishes the joined dataset
// plus the summary report. A missing stats source degrades to the fallback
// table when enabled; a missing boundary source always aborts.
func (p *Pipeline) Run(ctx context.Context) (domain.Summary, error) {
	boundaries, err := p.boundaries.Load(ctx)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("load boundaries: %w", err)
	}

	degraded := false
	stats, err := p.stats.Load(ctx)
	if err != nil {
		if !p.fallbackEnabled || !errors.Is(err, domain.ErrSourceUnavailable) {
			return domain.Summary{}, fmt.Errorf("load stats: %w", err)
		}
		p.warn("stats source unavailable, using fallback dataset", "error", err, "fallback_rows", len(p.fallbackStats))
		stats = p.fallbackStats
		degraded = true
	}

	result := reconcile.Reconcile(boundaries, stats, reconcile.Options{Mode: p.mode})

	if result.DroppedStats > 0 {
		p.warn("dropped stat rows without names", "count", result.DroppedStats)
	}
	p.logFindings(result.Findings)

	summary := report.Build(result.Records, report.Options{
		Selected: p.selected,
		Mode:     p.mode,
		Degraded: degraded,
	})

	if p.dataset != nil {
		if err := p.dataset.PublishDataset(ctx, result.Records); err != nil {
			return domain.Summary{}, fmt.Errorf("publish dataset: %w", err)
		}
	}
	if p.report != nil {
		if err := p.report.PublishReport(ctx, summary); err != nil {
			return domain.Summary{}, fmt.Errorf("publish report: %w", err)
		}
	}

	p.info("reconciliation complete",
		"run_id", summary.RunID,
		"records", len(result.Records),
		"total_deaths", summary.TotalDeaths,
		"degraded", degraded)

	return summary, nil
}

// Validate loads both sources without fallback substitution and reports the
// join-quality findings.
func (p *Pipeline) Validate(ctx context.Context) (reconcile.Findings, error) {
	boundaries, err := p.boundaries.Load(ctx)
	if err != nil {
		return reconcile.Findings{}, fmt.Errorf("load boundaries: %w", err)
	}

	stats, err := p.stats.Load(ctx)
	if err != nil {
		return reconcile.Findings{}, fmt.Errorf("load stats: %w", err)
	}

	aggregated := reconcile.Aggregate(stats, reconcile.AliasStats)
	findings := reconcile.Validate(boundaries, aggregated.Stats)
	p.logFindings(findings)
	return findings, nil
}

func (p *Pipeline) logFindings(findings reconcile.Findings) {
	if findings.Clean() {
		return
	}
	if len(findings.BoundaryOnly) > 0 {
		p.warn("boundaries without stats", "count", len(findings.BoundaryOnly), "keys", findings.BoundaryOnly)
	}
	if len(findings.StatOnly) > 0 {
		p.warn("stats without boundaries", "count", len(findings.StatOnly), "keys", findings.StatOnly)
	}
	if len(findings.DuplicateKeys) > 0 {
		p.warn("duplicate boundary keys", "count", len(findings.DuplicateKeys), "keys", findings.DuplicateKeys)
	}
	if len(findings.SuspectKeys) > 0 {
		p.warn("suspect canonical keys", "count", len(findings.SuspectKeys), "keys", findings.SuspectKeys)
	}
}

func (p *Pipeline) warn(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}

func (p *Pipeline) info(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}
