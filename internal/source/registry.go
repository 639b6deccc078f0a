package source

import (
	"context"
	"fmt"

	"AccidentAtlas/internal/domain"
)

// Request carries everything a reader needs to load one source file.
type Request struct {
	Path    string
	Options map[string]string
}

// BoundaryReader loads boundary features in one concrete file format.
type BoundaryReader interface {
	Format() string
	ReadBoundaries(ctx context.Context, req Request) ([]domain.BoundaryRecord, error)
}

// StatReader loads statistic rows in one concrete file format.
type StatReader interface {
	Format() string
	ReadStats(ctx context.Context, req Request) ([]domain.StatRecord, error)
}

// Registry maps format names to reader implementations for both source
// kinds, so config can pick readers by name.
type Registry struct {
	boundaries map[string]BoundaryReader
	stats      map[string]StatReader
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		boundaries: map[string]BoundaryReader{},
		stats:      map[string]StatReader{},
	}
}

// RegisterBoundary adds or replaces a boundary reader.
func (r *Registry) RegisterBoundary(reader BoundaryReader) {
	if r.boundaries == nil {
		r.boundaries = map[string]BoundaryReader{}
	}
	r.boundaries[reader.Format()] = reader
}

// RegisterStats adds or replaces a stat reader.
func (r *Registry) RegisterStats(reader StatReader) {
	if r.stats == nil {
		r.stats = map[string]StatReader{}
	}
	r.stats[reader.Format()] = reader
}

// ResolveBoundary returns the boundary reader for a format name.
func (r *Registry) ResolveBoundary(format string) (BoundaryReader, error) {
	if reader, ok := r.boundaries[format]; ok {
		return reader, nil
	}
	return nil, fmt.Errorf("boundary format %s is not registered", format)
}

// ResolveStats returns the stat reader for a format name.
func (r *Registry) ResolveStats(format string) (StatReader, error) {
	if reader, ok := r.stats[format]; ok {
		return reader, nil
	}
	return nil, fmt.Errorf("stat format %s is not registered", format)
}
