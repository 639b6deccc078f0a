package tabular

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"AccidentAtlas/internal/domain"
	"AccidentAtlas/internal/source"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "stats.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestReadStats(t *testing.T) {
	t.Parallel()

	content := "\uFEFFDPTO_CNMBR,SECTOR,MUERTES_REPOR_AT\n" +
		"BOGOTA,CONSTRUCCION,3\n" +
		"BOGOTA,MINERIA,5\n" +
		",TRANSPORTE,2\n" +
		"META,AGRICULTURA,not-a-number\n" +
		"META,AGRICULTURA, 4 \n"

	reader := NewReader(nil)
	rows, err := reader.ReadStats(context.Background(), source.Request{Path: writeFixture(t, content)})
	if err != nil {
		t.Fatalf("ReadStats error: %v", err)
	}

	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d: %+v", len(rows), rows)
	}
	if rows[0].Name != "BOGOTA" || rows[0].Deaths != 3 {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[2].Name != "" || rows[2].Deaths != 2 {
		t.Fatalf("empty-name row should be preserved: %+v", rows[2])
	}
	if rows[3].Deaths != 4 {
		t.Fatalf("padded integer should parse: %+v", rows[3])
	}
}

func TestReadStatsCustomColumnsAndDelimiter(t *testing.T) {
	t.Parallel()

	content := "DEPTO;MUERTES\nCAUCA;7\n"
	reader := NewReader(nil)

	rows, err := reader.ReadStats(context.Background(), source.Request{
		Path: writeFixture(t, content),
		Options: map[string]string{
			"delimiter":   ";",
			"nameColumn":  "DEPTO",
			"valueColumn": "MUERTES",
		},
	})
	if err != nil {
		t.Fatalf("ReadStats error: %v", err)
	}
	if len(rows) != 1 || rows[0].Name != "CAUCA" || rows[0].Deaths != 7 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestReadStatsMultiByteDelimiter(t *testing.T) {
	t.Parallel()

	content := "DPTO_CNMBR§MUERTES_REPOR_AT\nHUILA§6\n"
	reader := NewReader(nil)

	rows, err := reader.ReadStats(context.Background(), source.Request{
		Path:    writeFixture(t, content),
		Options: map[string]string{"delimiter": "§"},
	})
	if err != nil {
		t.Fatalf("ReadStats error: %v", err)
	}
	if len(rows) != 1 || rows[0].Name != "HUILA" || rows[0].Deaths != 6 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestReadStatsMissingFile(t *testing.T) {
	t.Parallel()

	reader := NewReader(nil)
	_, err := reader.ReadStats(context.Background(), source.Request{Path: filepath.Join(t.TempDir(), "absent.csv")})
	if !errors.Is(err, domain.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}

func TestReadStatsMissingColumn(t *testing.T) {
	t.Parallel()

	reader := NewReader(nil)
	_, err := reader.ReadStats(context.Background(), source.Request{Path: writeFixture(t, "A,B\n1,2\n")})
	if !errors.Is(err, domain.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}
