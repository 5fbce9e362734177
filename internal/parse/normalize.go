package parse

import (
	"regexp"
	"strings"
)

var (
	zeroWidthRe  = regexp.MustCompile("[\u200B\u200C\u200D\u2060\uFEFF]")
	horizontalWS = regexp.MustCompile("[\t\v\f]+")
	trailingWSRe = regexp.MustCompile(`[ \t]+\n`)
	blankRunsRe  = regexp.MustCompile(`\n{3,}`)
	lineBreakRe  = regexp.MustCompile(`\r?\n`)
)

// NormalizeText rewrites whitespace variants so downstream heuristics see a
// predictable character stream: non-breaking spaces become regular spaces,
// tabs and vertical whitespace collapse to a single space, trailing
// whitespace before a newline is removed, runs of three or more newlines
// collapse to exactly two, and zero-width characters are dropped.
func NormalizeText(raw string) string {
	s := strings.ReplaceAll(raw, "\u00a0", " ")
	s = zeroWidthRe.ReplaceAllString(s, "")
	s = horizontalWS.ReplaceAllString(s, " ")
	s = trailingWSRe.ReplaceAllString(s, "\n")
	s = blankRunsRe.ReplaceAllString(s, "\n\n")
	return s
}

// SplitLines splits normalized text into trimmed lines.
func SplitLines(text string) []string {
	parts := lineBreakRe.Split(text, -1)
	lines := make([]string, len(parts))
	for i, p := range parts {
		lines[i] = strings.TrimSpace(p)
	}
	return lines
}
