package parse

import "strings"

// SegmentBlocks partitions a line sequence (already sliced to one document
// region) into contiguous blocks, each expected to represent one logical
// record. Blank lines always close the open block. A date-looking line
// also closes the open block and starts a new one, since résumé entries
// conventionally open with an employer or institution line carrying the
// date range. Blocks whose joined text is empty after trimming are
// discarded; input order is preserved.
func SegmentBlocks(lines []string) []Block {
	var blocks []Block
	var buf []string

	flush := func() {
		if len(buf) == 0 {
			return
		}
		joined := strings.TrimSpace(strings.Join(buf, "\n"))
		if joined != "" {
			blocks = append(blocks, Block{Lines: buf})
		}
		buf = nil
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}
		if LooksLikeDateLine(trimmed) && len(buf) > 0 {
			flush()
		}
		buf = append(buf, trimmed)
	}
	flush()

	return blocks
}
