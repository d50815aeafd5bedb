package pkg

import (
	"strings"
	"testing"
)

func TestVersion_Embedded(t *testing.T) {
	v := strings.TrimSpace(Version)
	if v == "" {
		t.Fatal("embedded version is empty")
	}

	if strings.ContainsAny(v, " \t\n") {
		t.Errorf("version contains whitespace: %q", v)
	}
}

func TestBanner(t *testing.T) {
	banner := Banner()

	if !strings.HasPrefix(banner, "Novarc ") {
		t.Errorf("banner = %q, want prefix %q", banner, "Novarc ")
	}

	if !strings.HasSuffix(banner, " ready.") {
		t.Errorf("banner = %q, want suffix %q", banner, " ready.")
	}

	if !strings.Contains(banner, strings.TrimSpace(Version)) {
		t.Errorf("banner = %q, missing version %q", banner, Version)
	}
}

func TestTitle(t *testing.T) {
	if got := Title(); got != "Novarc" {
		t.Errorf("Title() = %q, want %q", got, "Novarc")
	}
}
