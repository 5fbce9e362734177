package parse

import (
	"regexp"
	"strings"
)

var (
	// Degree token, stopping at comma/newline/open-paren so a GPA
	// parenthetical is never swallowed.
	degreeRe = regexp.MustCompile(`(?i)\b(?:b\.?\s?sc?\.?|bachelor(?:'?s)?(?:\s+of)?|m\.?\s?sc?\.?|master(?:'?s)?(?:\s+of)?|ph\.?\s?d\.?|doctorate|mba|b\.?\s?tech\.?|m\.?\s?tech\.?|b\.?\s?a\.?|m\.?\s?a\.?|b\.?\s?e\.?|associate(?:'?s)?(?:\s+of)?|diploma)[^,\n(]*`)

	majorRe = regexp.MustCompile(`(?i)\b(?:majoring\s+in|in)\s+([A-Za-z][A-Za-z &]*)`)
	gpaRe   = regexp.MustCompile(`(?i)gpa\s*:?\s*([0-9]\.[0-9]{1,2}(?:\s*/\s*[0-9]\.?[0-9]{0,2})?)`)
)

// ExtractEducation walks the region's date-line indices; each begins a new
// item ending at the next date line (or region end). Degree, major, and
// GPA are matched independently inside the item's joined text; the
// institution is the date line with the date range removed.
func ExtractEducation(lines []string) []EducationItem {
	var dateIdx []int
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if LooksLikeDateLine(line) {
			dateIdx = append(dateIdx, i)
		}
	}

	var items []EducationItem
	for n, start := range dateIdx {
		end := len(lines)
		if n+1 < len(dateIdx) {
			end = dateIdx[n+1]
		}

		institution, dateText := dateTextFrom(lines[start])
		joined := strings.Join(lines[start:end], "\n")

		item := EducationItem{Dates: ParseDateRange(dateText)}
		if institution != "" {
			item.Institution = scored(institution, 0.9)
		} else {
			item.Institution = missing[string]()
		}

		if m := degreeRe.FindString(joined); strings.TrimSpace(m) != "" {
			item.Degree = scored(strings.TrimSpace(m), 0.85)
		} else {
			item.Degree = missing[string]()
		}

		if m := majorRe.FindStringSubmatch(joined); m != nil {
			item.Major = scored(strings.TrimSpace(m[1]), 0.8)
		} else {
			item.Major = missing[string]()
		}

		if m := gpaRe.FindStringSubmatch(joined); m != nil {
			item.GPA = scored(strings.TrimSpace(m[1]), 0.9)
		} else {
			item.GPA = missing[string]()
		}

		items = append(items, item)
	}
	return items
}
