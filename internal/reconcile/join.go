package reconcile

import (
	"sort"

	"AccidentAtlas/internal/domain"
)

// Options configures a reconciliation run.
type Options struct {
	Mode domain.JoinMode
}

// Result is the joined dataset together with the observability counters and
// findings the caller is expected to surface.
type Result struct {
	Records      []domain.JoinedRecord
	DroppedStats int
	Findings     Findings
}

// Join pairs boundary records with aggregated stats on canonical-key
// equality. Boundary names are canonicalized with the boundary alias table;
// stats must carry canonical keys already (Aggregate produces them).
//
// LEFT emits one row per boundary record, zero-filled when unmatched.
// OUTER appends stat-only keys with nil geometry after the boundary rows.
// Boundary records sharing a key each join independently to the same stat.
func Join(boundaries []domain.BoundaryRecord, stats []domain.AggregatedStat, mode domain.JoinMode) []domain.JoinedRecord {
	byKey := make(map[string]domain.AggregatedStat, len(stats))
	for _, stat := range stats {
		byKey[stat.Key] = stat
	}

	records := make([]domain.JoinedRecord, 0, len(boundaries))
	matched := make(map[string]bool, len(boundaries))
	for _, boundary := range boundaries {
		key := Canonicalize(boundary.Name, AliasBoundary)
		record := domain.JoinedRecord{Key: key, Geometry: boundary.Geometry}
		if stat, ok := byKey[key]; ok {
			record.Deaths = stat.Deaths
		}
		matched[key] = true
		records = append(records, record)
	}

	if mode != domain.JoinOuter {
		return records
	}

	statOnly := make([]string, 0)
	for key := range byKey {
		if !matched[key] {
			statOnly = append(statOnly, key)
		}
	}
	sort.Strings(statOnly)
	for _, key := range statOnly {
		records = append(records, domain.JoinedRecord{Key: key, Deaths: byKey[key].Deaths})
	}

	return records
}

// Reconcile runs the full aggregate-join-validate sequence over raw source
// rows. It performs no I/O and never substitutes fallback data.
func Reconcile(boundaries []domain.BoundaryRecord, stats []domain.StatRecord, opts Options) Result {
	aggregated := Aggregate(stats, AliasStats)
	return Result{
		Records:      Join(boundaries, aggregated.Stats, opts.Mode),
		DroppedStats: aggregated.Dropped,
		Findings:     Validate(boundaries, aggregated.Stats),
	}
}
