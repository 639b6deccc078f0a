package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"AccidentAtlas/internal/domain"
	"AccidentAtlas/internal/source"
)

const defaultNameProperty = "DPTO_CNMBR"

// Reader loads department boundaries from a GeoJSON feature collection.
type Reader struct {
	logger *slog.Logger
}

var _ source.BoundaryReader = (*Reader)(nil)

// NewReader builds a GeoJSON boundary reader.
func NewReader(log *slog.Logger) *Reader {
	return &Reader{logger: log}
}

// Format identifies the reader inside the registry.
func (r *Reader) Format() string {
	return "geojson"
}

// ReadBoundaries parses the feature collection and keeps every feature
// carrying a name property and a polygonal geometry. Features missing
// either are dropped and counted, not escalated.
func (r *Reader) ReadBoundaries(ctx context.Context, req source.Request) ([]domain.BoundaryRecord, error) {
	raw, err := os.ReadFile(req.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrSourceUnavailable, req.Path, err)
	}

	var collection geojson.FeatureCollection
	if err := json.Unmarshal(raw, &collection); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", domain.ErrSourceUnavailable, req.Path, err)
	}

	nameProperty := req.Options["nameProperty"]
	if nameProperty == "" {
		nameProperty = defaultNameProperty
	}

	records := make([]domain.BoundaryRecord, 0, len(collection.Features))
	dropped := 0
	for _, feature := range collection.Features {
		name, _ := feature.Properties[nameProperty].(string)
		if strings.TrimSpace(name) == "" || !polygonal(feature.Geometry) {
			dropped++
			continue
		}
		records = append(records, domain.BoundaryRecord{Name: name, Geometry: feature.Geometry})
	}

	if dropped > 0 && r.logger != nil {
		r.logger.Warn("dropped unusable boundary features", "path", req.Path, "count", dropped)
	}

	return records, nil
}

func polygonal(geometry geom.T) bool {
	switch geometry.(type) {
	case *geom.Polygon, *geom.MultiPolygon:
		return true
	}
	return false
}
