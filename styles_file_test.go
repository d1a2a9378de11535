package mdspan

import (
	"path/filepath"
	"strings"
	"testing"

	"pkt.systems/mdspan/internal/palette"
)

func TestLoadTheme(t *testing.T) {
	th, err := LoadTheme(filepath.Join("testdata", "styles.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if th.Name() != "paper" {
		t.Fatalf("unexpected name %q", th.Name())
	}
	st := th.Styles()
	if st.Plain.Prefix != palette.FG(236) {
		t.Fatalf("plain prefix %q", st.Plain.Prefix)
	}
	if st.EmphasisSingle.Prefix != palette.Italic+palette.Underline {
		t.Fatalf("single prefix %q", st.EmphasisSingle.Prefix)
	}
	if st.EmphasisDouble.Prefix != palette.Bold+palette.FG(25) {
		t.Fatalf("double prefix %q", st.EmphasisDouble.Prefix)
	}
	if st.EmphasisBoth.Prefix != palette.Bold+palette.Italic {
		t.Fatalf("both should inherit from monochrome, got %q", st.EmphasisBoth.Prefix)
	}
}

func TestParseThemeDefaults(t *testing.T) {
	th, err := ParseTheme([]byte("emphasis_both: [reverse, bg:17]\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if th.Name() != "custom" {
		t.Fatalf("unexpected name %q", th.Name())
	}
	st := th.Styles()
	if st.EmphasisBoth.Prefix != palette.Reverse+palette.BG(17) {
		t.Fatalf("both prefix %q", st.EmphasisBoth.Prefix)
	}
	if st.EmphasisSingle != DefaultTheme().Styles().EmphasisSingle {
		t.Fatalf("single should inherit from the default theme")
	}
}

func TestParseThemeEmptyListClearsStyle(t *testing.T) {
	th, err := ParseTheme([]byte("base: monochrome\nemphasis_double: []\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := th.Styles().EmphasisDouble.Prefix; got != "" {
		t.Fatalf("expected cleared double style, got %q", got)
	}
}

func TestParseThemeErrors(t *testing.T) {
	cases := map[string]string{
		"base: nope\n":               "unknown base theme",
		"plain: [blink]\n":           "unknown attribute",
		"plain: [fg:300]\n":          "invalid color",
		"emphasis_single: [bg:x]\n":  "invalid color",
		"plain: {not: a list}\n":     "styles file",
		"emphasis_double: [fg 12]\n": "unknown attribute",
	}
	for input, want := range cases {
		_, err := ParseTheme([]byte(input))
		if err == nil {
			t.Fatalf("expected error for %q", input)
		}
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error for %q = %v, want it to mention %q", input, err, want)
		}
	}
	if _, err := LoadTheme(" "); err == nil {
		t.Fatalf("expected empty path to fail")
	}
	if _, err := LoadTheme(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected missing file to fail")
	}
}
