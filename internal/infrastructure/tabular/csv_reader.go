package tabular

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"AccidentAtlas/internal/domain"
	"AccidentAtlas/internal/source"
)

const (
	defaultNameColumn  = "DPTO_CNMBR"
	defaultValueColumn = "MUERTES_REPOR_AT"
)

// Reader loads mortality rows from a delimited file. Column positions are
// resolved from the header row, so column order in the export can change.
type Reader struct {
	logger *slog.Logger
}

var _ source.StatReader = (*Reader)(nil)

// NewReader builds a delimited-file stat reader.
func NewReader(log *slog.Logger) *Reader {
	return &Reader{logger: log}
}

// Format identifies the reader inside the registry.
func (r *Reader) Format() string {
	return "csv"
}

// ReadStats streams the file row by row. Rows with an unparsable death
// count are dropped and counted; rows with an empty name are kept as-is so
// the reconciler can drop and count them itself.
func (r *Reader) ReadStats(ctx context.Context, req source.Request) ([]domain.StatRecord, error) {
	file, err := os.Open(req.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", domain.ErrSourceUnavailable, req.Path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	if delim := req.Options["delimiter"]; delim != "" {
		comma, _ := utf8.DecodeRuneInString(delim)
		reader.Comma = comma
	}

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read header of %s: %v", domain.ErrSourceUnavailable, req.Path, err)
	}

	nameIdx, err := columnIndex(header, req.Options["nameColumn"], defaultNameColumn)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrSourceUnavailable, req.Path, err)
	}
	valueIdx, err := columnIndex(header, req.Options["valueColumn"], defaultValueColumn)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrSourceUnavailable, req.Path, err)
	}

	var rows []domain.StatRecord
	malformed := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			malformed++
			continue
		}
		if nameIdx >= len(record) || valueIdx >= len(record) {
			malformed++
			continue
		}

		deaths, err := strconv.Atoi(strings.TrimSpace(record[valueIdx]))
		if err != nil {
			malformed++
			continue
		}

		rows = append(rows, domain.StatRecord{
			Name:   strings.TrimSpace(record[nameIdx]),
			Deaths: deaths,
		})
	}

	if malformed > 0 && r.logger != nil {
		r.logger.Warn("dropped malformed stat rows", "path", req.Path, "count", malformed)
	}

	return rows, nil
}

// columnIndex locates a column by name, tolerating a UTF-8 BOM on the first
// header cell (the upstream export carries one).
func columnIndex(header []string, configured, fallback string) (int, error) {
	want := configured
	if want == "" {
		want = fallback
	}

	for i, cell := range header {
		cell = strings.TrimPrefix(strings.TrimSpace(cell), "\uFEFF")
		if cell == want {
			return i, nil
		}
	}
	return 0, fmt.Errorf("column %s not found in header", want)
}
