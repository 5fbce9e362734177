package parse

import "testing"

func TestSegmentBlocksBlankSeparated(t *testing.T) {
	lines := []string{
		"ACME Corp Jan 2020 - Dec 2021",
		"Software Engineer",
		"- Built the ingestion service",
		"",
		"Globex Mar 2018 - Dec 2019",
		"Intern",
	}
	blocks := SegmentBlocks(lines)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d: %+v", len(blocks), blocks)
	}
	if len(blocks[0].Lines) != 3 {
		t.Fatalf("block 0: expected 3 lines, got %d", len(blocks[0].Lines))
	}
	if blocks[1].Lines[0] != "Globex Mar 2018 - Dec 2019" {
		t.Fatalf("block 1 header: got %q", blocks[1].Lines[0])
	}
}

func TestSegmentBlocksDateLineStartsNewBlock(t *testing.T) {
	lines := []string{
		"ACME Corp Jan 2020 - Dec 2021",
		"Software Engineer",
		"Globex Mar 2018 - Dec 2019",
		"Intern",
	}
	blocks := SegmentBlocks(lines)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d: %+v", len(blocks), blocks)
	}
	if blocks[0].Lines[1] != "Software Engineer" {
		t.Fatalf("block 0 second line: got %q", blocks[0].Lines[1])
	}
	if blocks[1].Lines[1] != "Intern" {
		t.Fatalf("block 1 second line: got %q", blocks[1].Lines[1])
	}
}

func TestSegmentBlocksDropsEmpty(t *testing.T) {
	blocks := SegmentBlocks([]string{"", "  ", ""})
	if len(blocks) != 0 {
		t.Fatalf("expected no blocks, got %d", len(blocks))
	}
}

func TestSegmentBlocksPreservesOrder(t *testing.T) {
	lines := []string{"first entry", "", "second entry", "", "third entry"}
	blocks := SegmentBlocks(lines)
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}
	for i, want := range []string{"first entry", "second entry", "third entry"} {
		if blocks[i].Lines[0] != want {
			t.Fatalf("block %d: expected %q, got %q", i, want, blocks[i].Lines[0])
		}
	}
}
