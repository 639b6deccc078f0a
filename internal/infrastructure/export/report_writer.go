package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"AccidentAtlas/internal/domain"
	"AccidentAtlas/internal/ports"
)

// ReportWriter publishes the run summary as indented JSON, to a file or to
// stdout when no path is configured.
type ReportWriter struct {
	path string
}

var _ ports.ReportSink = (*ReportWriter)(nil)

// NewReportWriter wires the output path; empty means stdout.
func NewReportWriter(path string) *ReportWriter {
	return &ReportWriter{path: path}
}

// PublishReport encodes the summary for the stat-card consumer.
func (w *ReportWriter) PublishReport(ctx context.Context, summary domain.Summary) error {
	var out io.Writer = os.Stdout
	if w.path != "" {
		file, err := os.Create(w.path)
		if err != nil {
			return fmt.Errorf("create %s: %w", w.path, err)
		}
		defer file.Close()
		out = file
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(buildReportJSON(summary)); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

type shareItem struct {
	Department string  `json:"department"`
	Deaths     int     `json:"deaths"`
	SharePct   float64 `json:"share_pct"`
}

type selectedItem struct {
	shareItem
	CentroidLon *float64 `json:"centroid_lon,omitempty"`
	CentroidLat *float64 `json:"centroid_lat,omitempty"`
}

type reportJSON struct {
	RunID       string        `json:"run_id"`
	GeneratedAt time.Time     `json:"generated_at"`
	JoinMode    string        `json:"join_mode"`
	Degraded    bool          `json:"degraded"`
	TotalDeaths int           `json:"total_deaths"`
	Max         shareItem     `json:"max"`
	Selected    *selectedItem `json:"selected,omitempty"`
	Departments []shareItem   `json:"departments"`
}

func buildReportJSON(summary domain.Summary) reportJSON {
	payload := reportJSON{
		RunID:       summary.RunID,
		GeneratedAt: summary.GeneratedAt,
		JoinMode:    string(summary.JoinMode),
		Degraded:    summary.Degraded,
		TotalDeaths: summary.TotalDeaths,
		Max:         toShareItem(summary.Max),
	}

	for _, share := range summary.Departments {
		payload.Departments = append(payload.Departments, toShareItem(share))
	}

	if summary.Selected != nil {
		item := selectedItem{shareItem: toShareItem(summary.Selected.DepartmentShare)}
		if summary.Selected.Centroid != nil {
			lon, lat := summary.Selected.Centroid.Lon, summary.Selected.Centroid.Lat
			item.CentroidLon = &lon
			item.CentroidLat = &lat
		}
		payload.Selected = &item
	}

	return payload
}

func toShareItem(share domain.DepartmentShare) shareItem {
	return shareItem{
		Department: share.Key,
		Deaths:     share.Deaths,
		SharePct:   share.Share,
	}
}
