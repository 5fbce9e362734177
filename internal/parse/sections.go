package parse

import (
	"regexp"
	"sort"
	"strings"
)

// sectionAliases maps surface heading forms to canonical section names.
// Matching is fuzzy, so close misspellings of any alias still classify.
var sectionAliases = map[string]string{
	"experience":              SectionExperience,
	"work experience":         SectionExperience,
	"professional experience": SectionExperience,
	"employment":              SectionExperience,
	"employment history":      SectionExperience,
	"work history":            SectionExperience,
	"career history":          SectionExperience,
	"relevant experience":     SectionExperience,

	"education":           SectionEducation,
	"academics":           SectionEducation,
	"academic background": SectionEducation,
	"qualifications":      SectionEducation,
	"education & training": SectionEducation,

	"projects":          SectionProjects,
	"personal projects": SectionProjects,
	"selected projects": SectionProjects,
	"academic projects": SectionProjects,
	"side projects":     SectionProjects,
	"portfolio":         SectionProjects,

	"skills":             SectionSkills,
	"technical skills":   SectionSkills,
	"skills & abilities": SectionSkills,
	"core competencies":  SectionSkills,
	"technologies":       SectionSkills,
	"tech stack":         SectionSkills,

	"summary":              SectionSummary,
	"professional summary": SectionSummary,
	"objective":            SectionSummary,
	"career objective":     SectionSummary,
	"profile":              SectionSummary,
	"about":                SectionSummary,
	"about me":             SectionSummary,
}

// sectionMatchThreshold is the minimum normalized score for a heading
// candidate to be accepted as a section heading.
const sectionMatchThreshold = 0.45

var (
	lettersSpaceRe    = regexp.MustCompile(`[^A-Za-z ]+`)
	lettersAmpSpaceRe = regexp.MustCompile(`[^a-z& ]+`)
	multiSpaceRe      = regexp.MustCompile(`\s{2,}`)
	anyLetterRe       = regexp.MustCompile(`[A-Za-z]`)
)

// SectionDetector finds heading-like lines and classifies them against the
// alias dictionary using a pluggable fuzzy scorer.
type SectionDetector struct {
	scorer Scorer
}

// NewSectionDetector builds a detector; a nil scorer gets the Levenshtein
// default.
func NewSectionDetector(scorer Scorer) *SectionDetector {
	if scorer == nil {
		scorer = NewLevenshteinScorer()
	}
	return &SectionDetector{scorer: scorer}
}

// Detect scans all document lines for section headings and returns sorted,
// non-overlapping spans. A document with no recognizable headings yields
// an empty slice; downstream extractors then fall back to scanning the
// whole document.
func (d *SectionDetector) Detect(lines []string) []SectionSpan {
	var spans []SectionSpan
	for i, line := range lines {
		name, score, ok := d.classifyHeading(line)
		if !ok {
			continue
		}
		spans = append(spans, SectionSpan{
			Name:       name,
			StartLine:  i,
			EndLine:    len(lines),
			MatchScore: score,
		})
	}

	sort.SliceStable(spans, func(i, j int) bool { return spans[i].StartLine < spans[j].StartLine })
	for i := 0; i < len(spans)-1; i++ {
		spans[i].EndLine = spans[i+1].StartLine
	}
	return spans
}

// classifyHeading applies the candidate filters, then fuzzy-matches the
// cleaned line against every alias and keeps the best score.
func (d *SectionDetector) classifyHeading(line string) (string, float64, bool) {
	caseVariant := cleanHeadingCase(line)
	if !isHeadingCandidate(line, caseVariant) {
		return "", 0, false
	}

	matchVariant := cleanHeadingMatch(line)
	if matchVariant == "" {
		return "", 0, false
	}

	bestScore := 0.0
	bestName := ""
	for alias, canonical := range sectionAliases {
		if score := d.scorer.Score(matchVariant, alias); score > bestScore {
			bestScore = score
			bestName = canonical
		}
	}
	if bestName == "" || bestScore < sectionMatchThreshold {
		return "", 0, false
	}
	return bestName, bestScore, true
}

// isHeadingCandidate filters out body prose: the cleaned variant must be
// 1–40 characters, contain a letter, and the raw line must be either all
// upper-case or at most three words. Lines like "Software Engineer
// Bangalore, India" must never classify as headings.
func isHeadingCandidate(raw, caseVariant string) bool {
	stripped := strings.ReplaceAll(caseVariant, " ", "")
	if len(stripped) < 1 || len(stripped) > 40 {
		return false
	}
	if !anyLetterRe.MatchString(caseVariant) {
		return false
	}
	if strings.ToUpper(raw) == raw {
		return true
	}
	return len(strings.Fields(raw)) <= 3
}

// cleanHeadingCase keeps letters and spaces, preserving case for the style
// heuristics.
func cleanHeadingCase(line string) string {
	s := lettersSpaceRe.ReplaceAllString(line, " ")
	return strings.TrimSpace(multiSpaceRe.ReplaceAllString(s, " "))
}

// cleanHeadingMatch lower-cases and strips to letters/ampersand for alias
// matching.
func cleanHeadingMatch(line string) string {
	s := lettersAmpSpaceRe.ReplaceAllString(strings.ToLower(line), " ")
	return strings.TrimSpace(multiSpaceRe.ReplaceAllString(s, " "))
}
