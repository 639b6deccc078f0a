package reconcile

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"AccidentAtlas/internal/domain"
)

// Findings lists the join-quality issues a run should surface instead of
// silently zero-filling.
type Findings struct {
	BoundaryOnly  []string // keys with a shape but no stats
	StatOnly      []string // keys with stats but no shape
	DuplicateKeys []string // keys shared by several boundary records
	SuspectKeys   []string // keys still carrying accents or corruption marks
}

// Clean reports whether the run produced no findings.
func (f Findings) Clean() bool {
	return len(f.BoundaryOnly) == 0 && len(f.StatOnly) == 0 &&
		len(f.DuplicateKeys) == 0 && len(f.SuspectKeys) == 0
}

var markStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Validate cross-checks canonical keys between the two sources. Unmatched
// keys are normal join outcomes, not errors; they are reported here so the
// caller can log them with counts. Suspect keys are ones the fixed
// substitution table failed to flatten: either an accent outside the table
// or a ?-style encoding corruption that no alias entry covered.
func Validate(boundaries []domain.BoundaryRecord, stats []domain.AggregatedStat) Findings {
	boundaryKeys := make(map[string]int, len(boundaries))
	for _, boundary := range boundaries {
		key := Canonicalize(boundary.Name, AliasBoundary)
		if key == "" {
			continue
		}
		boundaryKeys[key]++
	}

	statKeys := make(map[string]bool, len(stats))
	for _, stat := range stats {
		statKeys[stat.Key] = true
	}

	var findings Findings
	suspects := make(map[string]bool)

	for key, count := range boundaryKeys {
		if count > 1 {
			findings.DuplicateKeys = append(findings.DuplicateKeys, key)
		}
		if !statKeys[key] {
			findings.BoundaryOnly = append(findings.BoundaryOnly, key)
		}
		if suspect(key) {
			suspects[key] = true
		}
	}

	for key := range statKeys {
		if _, ok := boundaryKeys[key]; !ok {
			findings.StatOnly = append(findings.StatOnly, key)
		}
		if suspect(key) {
			suspects[key] = true
		}
	}

	for key := range suspects {
		findings.SuspectKeys = append(findings.SuspectKeys, key)
	}

	sort.Strings(findings.BoundaryOnly)
	sort.Strings(findings.StatOnly)
	sort.Strings(findings.DuplicateKeys)
	sort.Strings(findings.SuspectKeys)

	return findings
}

func suspect(key string) bool {
	if strings.ContainsRune(key, '?') {
		return true
	}
	stripped, _, err := transform.String(markStripper, key)
	return err == nil && stripped != key
}
