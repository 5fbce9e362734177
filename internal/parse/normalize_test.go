package parse

import "testing"

func TestNormalizeTextWhitespaceVariants(t *testing.T) {
	in := "Jane\u00a0Doe\nEngineer \t \nline\u200bwith\u200czero\u200dwidth\n\n\n\n\nnext"
	got := NormalizeText(in)
	want := "Jane Doe\nEngineer\nlinewithzerowidth\n\nnext"
	if got != want {
		t.Fatalf("NormalizeText:\n got %q\nwant %q", got, want)
	}
}

func TestNormalizeTextCollapsesTabs(t *testing.T) {
	got := NormalizeText("a\t\tb\vc")
	if got != "a b c" {
		t.Fatalf("expected %q, got %q", "a b c", got)
	}
}

func TestNormalizeTextIdempotent(t *testing.T) {
	in := "Name\u00a0Here\n\n\n\nSection \nbody\ttext"
	once := NormalizeText(in)
	twice := NormalizeText(once)
	if once != twice {
		t.Fatalf("not idempotent:\n once %q\ntwice %q", once, twice)
	}
}

func TestSplitLinesHandlesCRLF(t *testing.T) {
	lines := SplitLines("a\r\n  b  \nc")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != "a" || lines[1] != "b" || lines[2] != "c" {
		t.Fatalf("unexpected lines: %v", lines)
	}
}
