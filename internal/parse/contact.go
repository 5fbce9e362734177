package parse

import (
	"regexp"
	"sort"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	schemedURLRe = regexp.MustCompile(`https?://[^\s<>()\[\]{}]+`)
	bareURLRe    = regexp.MustCompile(`\b(?:www\.)?[A-Za-z0-9-]+(?:\.[A-Za-z0-9-]+)*\.(?:com|org)(?:/[^\s<>()\[\]{}]*)?\b`)

	phoneCandidateRe = regexp.MustCompile(`\+?\d[\d\s().-]{7,}\d`)
	loosePhoneRe     = regexp.MustCompile(`(?:\+?\d{1,3}[\s.-]?)?(?:\(?\d{3}\)?[\s.-]?)?\d{3}[\s.-]?\d{4}`)

	locationRe = regexp.MustCompile(`\b((?:[A-Z][A-Za-z.'-]*\s+)?[A-Z][A-Za-z.'-]*),\s*([A-Z]{2}|[A-Z][a-z]+)\b`)

	alphaWordRe   = regexp.MustCompile(`[A-Za-z]{2,}`)
	nameCharRe    = regexp.MustCompile(`[^A-Za-z ,.'-]+`)
	boilerplateRe = regexp.MustCompile(`(?i)\b(curriculum vitae|resume|cv)\b`)
	localPartRe   = regexp.MustCompile(`[._\-+0-9]+`)
)

// defaultPhoneRegion anchors phone canonicalization when the candidate
// carries no country code.
const defaultPhoneRegion = "US"

// ExtractContact runs the five contact sub-extractors over the whole
// document. Contact info is typically header matter, so the input is not
// section-sliced.
func ExtractContact(text string, lines []string) Contact {
	email := extractEmail(text)
	name := extractName(lines, email)
	return Contact{
		Name:     refineName(name),
		Email:    email,
		Phone:    extractPhone(text),
		Links:    extractLinks(text),
		Location: extractLocation(lines),
	}
}

// extractEmail returns the first email-pattern match. Email matching is
// binary: 0.99 on a hit, no partial credit.
func extractEmail(text string) Scored[string] {
	if m := emailRe.FindString(text); m != "" {
		return scored(m, 0.99)
	}
	return missing[string]()
}

// extractLinks collects URL-like tokens, deduplicated and normalized to an
// https:// prefix.
func extractLinks(text string) Scored[[]string] {
	seen := make(map[string]struct{})
	var links []string

	add := func(raw string) {
		link := strings.TrimRight(raw, ".,;")
		if !strings.Contains(link, "://") {
			link = "https://" + link
		}
		if _, ok := seen[link]; ok {
			return
		}
		seen[link] = struct{}{}
		links = append(links, link)
	}

	for _, m := range schemedURLRe.FindAllString(text, -1) {
		add(m)
	}
	// Emails are masked too: a bare-URL match against the domain half of
	// an address is not a link.
	masked := schemedURLRe.ReplaceAllString(text, " ")
	masked = emailRe.ReplaceAllString(masked, " ")
	for _, m := range bareURLRe.FindAllString(masked, -1) {
		add(m)
	}

	if len(links) == 0 {
		return missing[[]string]()
	}
	return scored(links, 0.95)
}

// extractPhone canonicalizes the first parseable phone candidate to E.164
// at 0.95; a looser digit-grouping match falls back to 0.7.
func extractPhone(text string) Scored[string] {
	for _, candidate := range phoneCandidateRe.FindAllString(text, -1) {
		num, err := phonenumbers.Parse(candidate, defaultPhoneRegion)
		if err != nil {
			continue
		}
		if !phonenumbers.IsPossibleNumber(num) {
			continue
		}
		return scored(phonenumbers.Format(num, phonenumbers.E164), 0.95)
	}
	if m := loosePhoneRe.FindString(text); strings.TrimSpace(m) != "" {
		return scored(strings.TrimSpace(m), 0.7)
	}
	return missing[string]()
}

// extractName inspects the first 8 non-empty lines for a plausible name
// line; failing that, it guesses two tokens from the email local-part as a
// weaker candidate.
func extractName(lines []string, email Scored[string]) Scored[string] {
	inspected := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		inspected++
		if inspected > 8 {
			break
		}
		if len(line) > 60 {
			continue
		}
		if emailRe.MatchString(line) {
			continue
		}
		if !alphaWordRe.MatchString(line) {
			continue
		}
		return scored(line, 0.85)
	}

	if email.Confidence > 0 {
		local := strings.SplitN(email.Value, "@", 2)[0]
		tokens := nonEmptySegments(localPartRe.Split(local, -1)...)
		if len(tokens) >= 2 {
			guess := titleCase(tokens[0]) + " " + titleCase(tokens[1])
			return scored(guess, 0.6)
		}
	}
	return missing[string]()
}

// refineName strips résumé boilerplate and stray characters, nudging
// confidence up by 0.05 when the cleanup changed the string materially.
func refineName(name Scored[string]) Scored[string] {
	if name.Confidence == 0 {
		return name
	}
	cleaned := boilerplateRe.ReplaceAllString(name.Value, " ")
	cleaned = nameCharRe.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(multiSpaceRe.ReplaceAllString(cleaned, " "))
	cleaned = strings.Trim(cleaned, ",.'- ")
	if cleaned == "" {
		return name
	}
	if cleaned != name.Value {
		return scored(cleaned, name.Confidence+0.05)
	}
	return name
}

// extractLocation scans the first 25 lines for a "City, ST" or
// "City, Country" pattern; first match wins.
func extractLocation(lines []string) Scored[string] {
	limit := 25
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		if m := locationRe.FindString(line); m != "" {
			return scored(m, 0.75)
		}
	}
	return missing[string]()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// sortedUnique returns a sorted copy with duplicates removed. Shared by
// the skills extractor.
func sortedUnique(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
