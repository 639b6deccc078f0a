package reconcile

import "testing"

func TestCanonicalizeAliasPairs(t *testing.T) {
	t.Parallel()

	cases := []struct {
		boundaryRaw string
		statRaw     string
		want        string
	}{
		{"NORTE DE SANTANDER", "N. DE SANTANDER", "norte santander"},
		{"VALLE DEL CAUCA", "VALLE DEL CAUCA", "valle"},
		{"BOGOTA D.C.", "BOGOTA", "bogota"},
		{"NARI?O", "NARIÑO", "narino"},
		{"ARCHIPIELAGO DE SAN ANDRES", "SAN ANDRES", "san andres"},
	}

	for _, tc := range cases {
		fromBoundary := Canonicalize(tc.boundaryRaw, AliasBoundary)
		fromStats := Canonicalize(tc.statRaw, AliasStats)

		if fromBoundary != tc.want {
			t.Fatalf("boundary %q: got %q, want %q", tc.boundaryRaw, fromBoundary, tc.want)
		}
		if fromStats != tc.want {
			t.Fatalf("stats %q: got %q, want %q", tc.statRaw, fromStats, tc.want)
		}
	}
}

func TestCanonicalizeDiacritics(t *testing.T) {
	t.Parallel()

	if got := Canonicalize("BOGOTÁ", AliasStats); got != "bogota" {
		t.Fatalf("accented uppercase: got %q", got)
	}
	if got := Canonicalize("Bogota", AliasStats); got != "bogota" {
		t.Fatalf("plain mixed case: got %q", got)
	}
	if got := Canonicalize("Chocó", AliasBoundary); got != "choco" {
		t.Fatalf("trailing accent: got %q", got)
	}
}

func TestCanonicalizeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"NARI?O", "BOGOTA D.C.", "N. DE SANTANDER", "Quindío", "meta", ""}
	for _, raw := range inputs {
		for _, src := range []AliasSource{AliasBoundary, AliasStats} {
			once := Canonicalize(raw, src)
			twice := Canonicalize(once, src)
			if once != twice {
				t.Fatalf("canonicalize(%q) not idempotent: %q then %q", raw, once, twice)
			}
		}
	}
}

func TestCanonicalizeMissingInput(t *testing.T) {
	t.Parallel()

	if got := Canonicalize("", AliasBoundary); got != "" {
		t.Fatalf("empty input should pass through, got %q", got)
	}
}

func TestCanonicalizeWrongTableIsNoop(t *testing.T) {
	t.Parallel()

	// The boundary-source corruption fix must not apply to the stats source.
	if got := Canonicalize("NARI?O", AliasStats); got != "nari?o" {
		t.Fatalf("stats table should not fix boundary corruption, got %q", got)
	}
	if got := Canonicalize("N. DE SANTANDER", AliasBoundary); got != "n. de santander" {
		t.Fatalf("boundary table should not fix stats abbreviation, got %q", got)
	}
}
