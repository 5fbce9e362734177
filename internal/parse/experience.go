package parse

import (
	"regexp"
	"strings"
)

var (
	bulletGlyphRe = regexp.MustCompile(`^[-•·*▪◦‣>]+\s*`)

	// Trailing "City, Region" token. The city is capped at two capitalized
	// words so leftmost matching cannot swallow the job title.
	trailingLocationRe = regexp.MustCompile(`((?:[A-Z][A-Za-z.'-]*\s+)?[A-Z][A-Za-z.'-]*,\s*(?:[A-Z]{2}|[A-Z][a-z]+))\s*$`)
)

// ExtractExperience builds one item per block. A block needs at least two
// lines: line one is employer plus date range, line two is title plus an
// optional trailing location. Remaining lines become bullets.
// confidenceScale degrades per-field confidence when the region is a
// whole-document fallback rather than a detected section.
func ExtractExperience(blocks []Block, confidenceScale float64) []ExperienceItem {
	if confidenceScale <= 0 || confidenceScale > 1 {
		confidenceScale = 1
	}

	var items []ExperienceItem
	for _, block := range blocks {
		if len(block.Lines) < 2 {
			continue
		}

		company, dateText := dateTextFrom(block.Lines[0])
		dates := ParseDateRange(dateText)

		title, location := splitTrailingLocation(block.Lines[1])
		bullets := bulletize(block.Lines[2:])

		item := ExperienceItem{Dates: dates}
		if company != "" {
			item.CompanyRaw = scored(company, 0.9*confidenceScale)
		} else {
			item.CompanyRaw = missing[string]()
		}
		if title != "" {
			item.TitleRaw = scored(title, 0.9*confidenceScale)
		} else {
			item.TitleRaw = missing[string]()
		}
		if location != "" {
			item.LocationRaw = scored(location, 0.6*confidenceScale)
		} else {
			item.LocationRaw = missing[string]()
		}
		if len(bullets) > 0 {
			item.Bullets = scored(bullets, 0.85*confidenceScale)
		} else {
			item.Bullets = missing[[]string]()
		}
		items = append(items, item)
	}
	return items
}

// splitTrailingLocation peels a "City, ST" suffix off a title line.
func splitTrailingLocation(line string) (title, location string) {
	if m := trailingLocationRe.FindStringSubmatchIndex(line); m != nil {
		location = strings.TrimSpace(line[m[2]:m[3]])
		title = strings.TrimSpace(strings.TrimRight(line[:m[2]], ",|-–— "))
		return title, location
	}
	return strings.TrimSpace(line), ""
}

// bulletize strips leading bullet glyphs and drops entries that are too
// short to carry meaning.
func bulletize(lines []string) []string {
	var out []string
	for _, line := range lines {
		b := strings.TrimSpace(bulletGlyphRe.ReplaceAllString(strings.TrimSpace(line), ""))
		if len(b) > 2 {
			out = append(out, b)
		}
	}
	return out
}
