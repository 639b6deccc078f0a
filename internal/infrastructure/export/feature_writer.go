package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/twpayne/go-geom/encoding/geojson"

	"AccidentAtlas/internal/domain"
	"AccidentAtlas/internal/ports"
)

// FeatureWriter publishes the joined dataset as a GeoJSON feature
// collection keyed by canonical key, the format choropleth consumers take.
// Stat-only rows carry no shape and are skipped; the validation findings
// already make them visible.
type FeatureWriter struct {
	path   string
	logger *slog.Logger
}

var _ ports.DatasetSink = (*FeatureWriter)(nil)

// NewFeatureWriter wires the output path.
func NewFeatureWriter(path string, log *slog.Logger) *FeatureWriter {
	return &FeatureWriter{path: path, logger: log}
}

// PublishDataset writes the feature collection. The canonical key lands in
// both the feature ID and the DPTO_CNMBR property so consumers can join on
// either.
func (w *FeatureWriter) PublishDataset(ctx context.Context, records []domain.JoinedRecord) error {
	if w.path == "" {
		return fmt.Errorf("feature writer misconfigured: empty path")
	}

	collection := geojson.FeatureCollection{}
	skipped := 0
	for _, record := range records {
		if record.Geometry == nil {
			skipped++
			continue
		}
		collection.Features = append(collection.Features, &geojson.Feature{
			ID:       record.Key,
			Geometry: record.Geometry,
			Properties: map[string]interface{}{
				"DPTO_CNMBR":       record.Key,
				"MUERTES_REPOR_AT": record.Deaths,
			},
		})
	}

	data, err := json.MarshalIndent(&collection, "", "  ")
	if err != nil {
		return fmt.Errorf("encode feature collection: %w", err)
	}

	if err := os.WriteFile(w.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", w.path, err)
	}

	if w.logger != nil {
		w.logger.Debug("dataset published", "path", w.path, "features", len(collection.Features), "shapeless", skipped)
	}
	return nil
}
