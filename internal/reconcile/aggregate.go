package reconcile

import (
	"sort"

	"AccidentAtlas/internal/domain"
)

// AggregateResult carries the per-key sums plus the number of rows dropped
// for lacking a usable name. Callers are expected to log Dropped.
type AggregateResult struct {
	Stats   []domain.AggregatedStat
	Dropped int
}

// Aggregate canonicalizes each row's name and sums deaths per canonical
// key. Canonicalization happens before grouping, so spelling variants of
// the same department land in a single bucket. Rows without a name are
// dropped, never raised. Output order is sorted by key, but callers must
// not depend on it.
func Aggregate(rows []domain.StatRecord, src AliasSource) AggregateResult {
	sums := make(map[string]int)
	dropped := 0

	for _, row := range rows {
		key := Canonicalize(row.Name, src)
		if key == "" {
			dropped++
			continue
		}
		sums[key] += row.Deaths
	}

	keys := make([]string, 0, len(sums))
	for key := range sums {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	stats := make([]domain.AggregatedStat, 0, len(keys))
	for _, key := range keys {
		stats = append(stats, domain.AggregatedStat{Key: key, Deaths: sums[key]})
	}

	return AggregateResult{Stats: stats, Dropped: dropped}
}
