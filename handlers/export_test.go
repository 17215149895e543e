package handlers

import (
	"strings"
	"testing"
)

func TestCSVBytesEscaping(t *testing.T) {
	b, err := csvBytes(
		[]string{"Name", "Notes"},
		[][]string{
			{`Smith, "Bob"`, "plain"},
			{"line\nbreak", "trailing"},
		},
	)
	if err != nil {
		t.Fatalf("csvBytes returned error: %v", err)
	}

	out := string(b)
	if !strings.Contains(out, `"Smith, ""Bob"""`) {
		t.Errorf("comma+quote field not escaped, output:\n%s", out)
	}
	if !strings.Contains(out, "\"line\nbreak\"") {
		t.Errorf("newline field not quoted, output:\n%s", out)
	}
	if !strings.HasPrefix(out, "Name,Notes\n") {
		t.Errorf("header row missing or malformed, output:\n%s", out)
	}
}

func TestCSVBytesRowOrder(t *testing.T) {
	b, err := csvBytes(
		[]string{"Name"},
		[][]string{{"zeta"}, {"alpha"}, {"mid"}},
	)
	if err != nil {
		t.Fatalf("csvBytes returned error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(b), "\n"), "\n")
	want := []string{"Name", "zeta", "alpha", "mid"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q; want %q (no implicit re-sort)", i, lines[i], want[i])
		}
	}
}
