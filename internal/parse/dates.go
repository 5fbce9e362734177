package parse

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var (
	monthNameRe = regexp.MustCompile(`(?i)\b(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\b`)
	yearRe      = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	presentRe   = regexp.MustCompile(`(?i)\b(present|current)\b`)

	monthYearRe = regexp.MustCompile(`(?i)^(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?,?\s+((?:19|20)\d{2})$`)
	bareYearRe  = regexp.MustCompile(`^((?:19|20)\d{2})$`)

	toSplitRe     = regexp.MustCompile(`(?i)\s+to\s+`)
	spacedDashRe  = regexp.MustCompile(`\s+-\s*|\s*-\s+`)
	yearRangeRe   = regexp.MustCompile(`^((?:19|20)\d{2})\s*-\s*((?:19|20)\d{2}|present|current)$`)
	dashVariantRe = regexp.MustCompile(`[–—−]`)
)

var monthNumbers = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// ParseDateRange converts a free-text date range ("Jan 2020 – Mar 2022",
// "2019-2021", "2020 - Present") into a normalized DateRange. Unparsable
// segments leave the corresponding field unset; the function never fails.
// Confidence is 0.5 for a resolved start plus 0.5 for a resolved end or a
// present/current marker.
func ParseDateRange(raw string) DateRange {
	var out DateRange

	s := dashVariantRe.ReplaceAllString(strings.TrimSpace(raw), "-")
	segments := splitRange(s)
	if len(segments) == 0 {
		return out
	}

	if start, ok := parseDateSegment(segments[0]); ok {
		out.Start = start.Format("2006-01-02")
		out.Confidence += 0.5
	}

	if len(segments) > 1 {
		second := strings.TrimSpace(segments[1])
		if presentRe.MatchString(second) {
			out.IsCurrent = true
			out.Confidence += 0.5
		} else if end, ok := parseDateSegment(second); ok {
			out.End = end.Format("2006-01-02")
			out.Confidence += 0.5
		}
	}

	if out.Confidence > 1 {
		out.Confidence = 1
	}
	return out
}

// splitRange splits a normalized range string into at most two segments.
// The word "to" takes priority, then a spaced hyphen, then the bare
// YYYY-YYYY form. Splitting on every hyphen would destroy ISO dates.
func splitRange(s string) []string {
	for _, re := range []*regexp.Regexp{toSplitRe, spacedDashRe} {
		if loc := re.FindStringIndex(s); loc != nil {
			return nonEmptySegments(s[:loc[0]], s[loc[1]:])
		}
	}
	if m := yearRangeRe.FindStringSubmatch(s); m != nil {
		return nonEmptySegments(m[1], m[2])
	}
	return nonEmptySegments(s)
}

func nonEmptySegments(parts ...string) []string {
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// parseDateSegment resolves one segment to a day-level date. Month-year
// and bare-year forms dominate résumé ranges and need deterministic
// anchoring (first of month / first of year), so they are tried before the
// general-purpose parser.
func parseDateSegment(segment string) (time.Time, bool) {
	segment = strings.TrimSpace(segment)
	if segment == "" {
		return time.Time{}, false
	}

	if m := monthYearRe.FindStringSubmatch(segment); m != nil {
		month, ok := monthNumbers[strings.ToLower(m[1][:3])]
		if ok {
			year, err := strconv.Atoi(m[2])
			if err == nil {
				return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), true
			}
		}
	}

	if m := bareYearRe.FindStringSubmatch(segment); m != nil {
		year, err := strconv.Atoi(m[1])
		if err == nil {
			return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), true
		}
	}

	t, err := dateparse.ParseAny(segment)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// LooksLikeDateLine reports whether a line plausibly contains a date: a
// month-name token, a 4-digit year, or a present/current marker. This is
// the load-bearing heuristic for block segmentation and for isolating the
// header line of an experience or education block.
func LooksLikeDateLine(line string) bool {
	return monthNameRe.MatchString(line) || yearRe.MatchString(line) || presentRe.MatchString(line)
}

// firstDateTokenIndex returns the byte offset of the earliest date-like
// token in the line, or -1. Used to strip a date range off a header line.
func firstDateTokenIndex(line string) int {
	idx := -1
	for _, re := range []*regexp.Regexp{monthNameRe, yearRe, presentRe} {
		if loc := re.FindStringIndex(line); loc != nil {
			if idx == -1 || loc[0] < idx {
				idx = loc[0]
			}
		}
	}
	return idx
}

// dateTextFrom returns the tail of the line starting at the first
// date-like token, which is the substring handed to ParseDateRange.
func dateTextFrom(line string) (head, dates string) {
	idx := firstDateTokenIndex(line)
	if idx < 0 {
		return line, ""
	}
	head = strings.TrimRight(strings.TrimSpace(line[:idx]), ",|-–—•·~ ")
	return strings.TrimSpace(head), strings.TrimSpace(line[idx:])
}
