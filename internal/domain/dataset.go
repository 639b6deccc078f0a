package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/twpayne/go-geom"
)

// ErrSourceUnavailable marks a required input file as missing or unreadable.
// Callers decide whether to substitute fallback data; nothing below the
// pipeline recovers from it.
var ErrSourceUnavailable = errors.New("source unavailable")

// BoundaryRecord is one administrative division as the boundary source
// exports it: the raw name plus a polygon or multipolygon shape.
type BoundaryRecord struct {
	Name     string
	Geometry geom.T
}

// StatRecord is a single observation row from the statistics source. Many
// rows share the same department name and are summed during aggregation.
type StatRecord struct {
	Name   string
	Deaths int
}

// AggregatedStat holds the summed deaths for one canonical key. Keys are
// unique within an aggregated table.
type AggregatedStat struct {
	Key    string
	Deaths int
}

// JoinedRecord pairs a canonical key with its shape and death count.
// Geometry is nil for stat-only rows produced by an outer join.
type JoinedRecord struct {
	Key      string
	Geometry geom.T
	Deaths   int
}

// JoinMode selects how boundary and stat rows are paired.
type JoinMode string

const (
	// JoinLeft emits one row per boundary record, zero-filling deaths when
	// no stat row matches.
	JoinLeft JoinMode = "left"
	// JoinOuter emits one row per canonical key present in either source.
	JoinOuter JoinMode = "outer"
)

// ParseJoinMode resolves a config/flag string; empty defaults to outer.
func ParseJoinMode(value string) (JoinMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "left":
		return JoinLeft, nil
	case "outer", "":
		return JoinOuter, nil
	}
	return "", fmt.Errorf("unknown join mode %q", value)
}
