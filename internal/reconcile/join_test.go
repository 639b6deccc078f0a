package reconcile

import (
	"testing"

	"github.com/twpayne/go-geom"

	"AccidentAtlas/internal/domain"
)

func square(t *testing.T) *geom.Polygon {
	t.Helper()

	polygon := geom.NewPolygon(geom.XY)
	_, err := polygon.SetCoords([][]geom.Coord{{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}})
	if err != nil {
		t.Fatalf("build polygon: %v", err)
	}
	return polygon
}

func TestJoinLeft(t *testing.T) {
	t.Parallel()

	boundaries := []domain.BoundaryRecord{
		{Name: "BOGOTA D.C.", Geometry: square(t)},
		{Name: "ANTIOQUIA", Geometry: square(t)},
	}
	stats := []domain.AggregatedStat{
		{Key: "bogota", Deaths: 10},
		{Key: "valle", Deaths: 4},
	}

	records := Join(boundaries, stats, domain.JoinLeft)

	if len(records) != len(boundaries) {
		t.Fatalf("left join row count %d, want %d", len(records), len(boundaries))
	}
	if records[0].Key != "bogota" || records[0].Deaths != 10 || records[0].Geometry == nil {
		t.Fatalf("unexpected matched row: %+v", records[0])
	}
	if records[1].Key != "antioquia" || records[1].Deaths != 0 || records[1].Geometry == nil {
		t.Fatalf("unmatched boundary should zero-fill: %+v", records[1])
	}
}

func TestJoinOuter(t *testing.T) {
	t.Parallel()

	boundaries := []domain.BoundaryRecord{
		{Name: "BOGOTA D.C.", Geometry: square(t)},
		{Name: "ANTIOQUIA", Geometry: square(t)},
	}
	stats := []domain.AggregatedStat{
		{Key: "bogota", Deaths: 10},
		{Key: "valle", Deaths: 4},
	}

	records := Join(boundaries, stats, domain.JoinOuter)

	if len(records) != 3 {
		t.Fatalf("outer join row count %d, want 3", len(records))
	}

	last := records[2]
	if last.Key != "valle" || last.Deaths != 4 {
		t.Fatalf("unexpected stat-only row: %+v", last)
	}
	if last.Geometry != nil {
		t.Fatalf("stat-only row should have nil geometry")
	}
}

func TestJoinDuplicateBoundaryKeys(t *testing.T) {
	t.Parallel()

	boundaries := []domain.BoundaryRecord{
		{Name: "META", Geometry: square(t)},
		{Name: "Meta", Geometry: square(t)},
	}
	stats := []domain.AggregatedStat{{Key: "meta", Deaths: 9}}

	records := Join(boundaries, stats, domain.JoinOuter)

	if len(records) != 2 {
		t.Fatalf("duplicates should join independently, got %d rows", len(records))
	}
	for _, record := range records {
		if record.Key != "meta" || record.Deaths != 9 {
			t.Fatalf("unexpected row: %+v", record)
		}
	}
}

func TestReconcile(t *testing.T) {
	t.Parallel()

	boundaries := []domain.BoundaryRecord{
		{Name: "NARI?O", Geometry: square(t)},
		{Name: "NORTE DE SANTANDER", Geometry: square(t)},
	}
	stats := []domain.StatRecord{
		{Name: "NARIÑO", Deaths: 2},
		{Name: "N. DE SANTANDER", Deaths: 5},
		{Name: "N. DE SANTANDER", Deaths: 1},
		{Name: "", Deaths: 3},
	}

	result := Reconcile(boundaries, stats, Options{Mode: domain.JoinOuter})

	if len(result.Records) != 2 {
		t.Fatalf("expected 2 joined rows, got %+v", result.Records)
	}
	if result.Records[0].Key != "narino" || result.Records[0].Deaths != 2 {
		t.Fatalf("narino row wrong: %+v", result.Records[0])
	}
	if result.Records[1].Key != "norte santander" || result.Records[1].Deaths != 6 {
		t.Fatalf("norte santander row wrong: %+v", result.Records[1])
	}
	if result.DroppedStats != 1 {
		t.Fatalf("expected 1 dropped stat row, got %d", result.DroppedStats)
	}
	if !result.Findings.Clean() {
		t.Fatalf("expected clean findings, got %+v", result.Findings)
	}
}
