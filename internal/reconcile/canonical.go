package reconcile

import "strings"

// AliasSource selects which source-specific correction table applies. The
// two sources misspell different names, so each table only makes sense
// against its own source; applying the wrong one is a no-op.
type AliasSource int

const (
	// AliasBoundary corrects names as the boundary shapefile export spells them.
	AliasBoundary AliasSource = iota
	// AliasStats corrects names as the statistics export spells them.
	AliasStats
)

// boundaryAliases fixes the known mismatches in the boundary export,
// including the mis-encoded NARI?O variant.
var boundaryAliases = map[string]string{
	"NARI?O":                     "NARIÑO",
	"NORTE DE SANTANDER":         "NORTE SANTANDER",
	"BOGOTA D.C.":                "BOGOTA",
	"ARCHIPIELAGO DE SAN ANDRES": "SAN ANDRES",
	"VALLE DEL CAUCA":            "VALLE",
}

// statAliases fixes the abbreviations the statistics export uses.
var statAliases = map[string]string{
	"N. DE SANTANDER": "NORTE SANTANDER",
	"VALLE DEL CAUCA": "VALLE",
}

// diacritics is a literal substitution table. It runs after the case fold,
// so lowercase entries cover every input.
var diacritics = []struct{ from, to string }{
	{"á", "a"},
	{"é", "e"},
	{"í", "i"},
	{"ó", "o"},
	{"ú", "u"},
	{"ñ", "n"},
	{"ü", "u"},
}

// Canonicalize maps a raw department name to its canonical key: alias
// correction first, then a lowercase fold, then diacritic stripping. Missing
// input passes through unchanged. The result is deterministic and
// idempotent.
func Canonicalize(raw string, src AliasSource) string {
	if raw == "" {
		return raw
	}

	name := strings.TrimSpace(raw)
	if fixed, ok := aliasTable(src)[name]; ok {
		name = fixed
	}

	name = strings.ToLower(name)
	for _, sub := range diacritics {
		name = strings.ReplaceAll(name, sub.from, sub.to)
	}

	return name
}

func aliasTable(src AliasSource) map[string]string {
	if src == AliasStats {
		return statAliases
	}
	return boundaryAliases
}
