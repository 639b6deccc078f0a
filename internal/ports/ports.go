package ports

import (
	"context"

	"AccidentAtlas/internal/domain"
)

// BoundarySource loads administrative boundary records from the configured
// geographic source.
type BoundarySource interface {
	Load(ctx context.Context) ([]domain.BoundaryRecord, error)
}

// StatSource loads raw mortality rows from the configured tabular source.
type StatSource interface {
	Load(ctx context.Context) ([]domain.StatRecord, error)
}

// DatasetSink hands the joined dataset to downstream consumers (choropleth
// renderers and the like).
type DatasetSink interface {
	PublishDataset(ctx context.Context, records []domain.JoinedRecord) error
}

// ReportSink delivers the run summary to wherever stat cards read it from.
type ReportSink interface {
	PublishReport(ctx context.Context, summary domain.Summary) error
}
