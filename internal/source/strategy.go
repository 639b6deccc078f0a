package source

import (
	"context"
	"fmt"
	"log/slog"

	"AccidentAtlas/internal/config"
	"AccidentAtlas/internal/domain"
	"AccidentAtlas/internal/ports"
)

// BoundaryStrategy implements ports.BoundarySource by resolving the
// config-selected reader from the registry.
type BoundaryStrategy struct {
	registry *Registry
	cfg      config.SourceConfig
	logger   *slog.Logger
}

var _ ports.BoundarySource = (*BoundaryStrategy)(nil)

// NewBoundaryStrategy wires registry and source configuration.
func NewBoundaryStrategy(reg *Registry, cfg config.SourceConfig, log *slog.Logger) *BoundaryStrategy {
	return &BoundaryStrategy{registry: reg, cfg: cfg, logger: log}
}

// Load resolves the reader and executes it against the configured path.
func (s *BoundaryStrategy) Load(ctx context.Context) ([]domain.BoundaryRecord, error) {
	if s.registry == nil {
		return nil, fmt.Errorf("source registry is not configured")
	}

	reader, err := s.registry.ResolveBoundary(s.cfg.Format)
	if err != nil {
		return nil, fmt.Errorf("boundary source: %w", err)
	}

	records, err := reader.ReadBoundaries(ctx, Request{Path: s.cfg.Path, Options: s.cfg.Options})
	if err != nil {
		return nil, fmt.Errorf("boundary source %s: %w", s.cfg.Path, err)
	}

	s.debug("boundary source loaded", "path", s.cfg.Path, "records", len(records))
	return records, nil
}

func (s *BoundaryStrategy) debug(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

// StatStrategy implements ports.StatSource the same way.
type StatStrategy struct {
	registry *Registry
	cfg      config.SourceConfig
	logger   *slog.Logger
}

var _ ports.StatSource = (*StatStrategy)(nil)

// NewStatStrategy wires registry and source configuration.
func NewStatStrategy(reg *Registry, cfg config.SourceConfig, log *slog.Logger) *StatStrategy {
	return &StatStrategy{registry: reg, cfg: cfg, logger: log}
}

// Load resolves the reader and executes it against the configured path.
func (s *StatStrategy) Load(ctx context.Context) ([]domain.StatRecord, error) {
	if s.registry == nil {
		return nil, fmt.Errorf("source registry is not configured")
	}

	reader, err := s.registry.ResolveStats(s.cfg.Format)
	if err != nil {
		return nil, fmt.Errorf("stat source: %w", err)
	}

	rows, err := reader.ReadStats(ctx, Request{Path: s.cfg.Path, Options: s.cfg.Options})
	if err != nil {
		return nil, fmt.Errorf("stat source %s: %w", s.cfg.Path, err)
	}

	s.debug("stat source loaded", "path", s.cfg.Path, "rows", len(rows))
	return rows, nil
}

func (s *StatStrategy) debug(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
