package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"

	"AccidentAtlas/internal/domain"
)

// Options configures how the summary is built.
type Options struct {
	Selected string // canonical key to highlight; empty for none
	Mode     domain.JoinMode
	Degraded bool
}

// Build computes the dashboard figures from the joined dataset: the
// national total, per-department shares, the worst-affected department, and
// the marker position for the selected one. The input is read, never
// mutated.
func Build(records []domain.JoinedRecord, opts Options) domain.Summary {
	summary := domain.Summary{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		JoinMode:    opts.Mode,
		Degraded:    opts.Degraded,
	}

	total := 0
	for _, record := range records {
		total += record.Deaths
	}
	summary.TotalDeaths = total

	summary.Departments = make([]domain.DepartmentShare, 0, len(records))
	for _, record := range records {
		share := domain.DepartmentShare{Key: record.Key, Deaths: record.Deaths}
		if total > 0 {
			share.Share = float64(record.Deaths) / float64(total) * 100
		}
		summary.Departments = append(summary.Departments, share)

		if share.Deaths > summary.Max.Deaths {
			summary.Max = share
		}
	}

	if opts.Selected != "" {
		summary.Selected = selectDepartment(records, opts.Selected, total)
	}

	return summary
}

func selectDepartment(records []domain.JoinedRecord, key string, total int) *domain.SelectedDepartment {
	for _, record := range records {
		if record.Key != key {
			continue
		}

		selected := &domain.SelectedDepartment{
			DepartmentShare: domain.DepartmentShare{Key: record.Key, Deaths: record.Deaths},
		}
		if total > 0 {
			selected.Share = float64(record.Deaths) / float64(total) * 100
		}
		if coord, ok := centroid(record.Geometry); ok {
			selected.Centroid = &domain.Centroid{Lon: coord[0], Lat: coord[1]}
		}
		return selected
	}
	return nil
}

// centroid extracts the area centroid of a polygonal geometry. Stat-only
// rows have no shape and therefore no marker.
func centroid(geometry geom.T) (geom.Coord, bool) {
	switch shape := geometry.(type) {
	case *geom.Polygon:
		return xy.PolygonsCentroid(shape), true
	case *geom.MultiPolygon:
		if shape.NumPolygons() == 0 {
			return nil, false
		}
		polygons := make([]*geom.Polygon, 0, shape.NumPolygons())
		for i := 0; i < shape.NumPolygons(); i++ {
			polygons = append(polygons, shape.Polygon(i))
		}
		return xy.PolygonsCentroid(polygons[0], polygons[1:]...), true
	}
	return nil, false
}
