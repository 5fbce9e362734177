package parse

import "testing"

func TestDetectCanonicalHeadings(t *testing.T) {
	lines := []string{
		"Jane Doe",
		"jane.doe@example.com",
		"",
		"SUMMARY",
		"Backend engineer with six years of experience building services.",
		"",
		"WORK EXPERIENCE",
		"ACME Corp Jan 2020 - Dec 2021",
		"",
		"EDUCATION",
		"State University 2014 - 2018",
		"",
		"SKILLS",
		"Go, Python, Docker",
	}

	detector := NewSectionDetector(nil)
	spans := detector.Detect(lines)

	wantOrder := []string{SectionSummary, SectionExperience, SectionEducation, SectionSkills}
	if len(spans) != len(wantOrder) {
		t.Fatalf("expected %d spans, got %d: %+v", len(wantOrder), len(spans), spans)
	}
	for i, want := range wantOrder {
		if spans[i].Name != want {
			t.Fatalf("span %d: expected %q, got %q", i, want, spans[i].Name)
		}
	}
}

func TestDetectSpansAreSortedAndNonOverlapping(t *testing.T) {
	lines := []string{
		"EXPERIENCE",
		"ACME Corp Jan 2020 - Dec 2021",
		"Software Engineer Remote, US",
		"EDUCATION",
		"State University 2014 - 2018",
	}
	detector := NewSectionDetector(nil)
	spans := detector.Detect(lines)
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d: %+v", len(spans), spans)
	}
	for i := 0; i < len(spans)-1; i++ {
		if spans[i].StartLine >= spans[i+1].StartLine {
			t.Fatalf("spans not sorted: %+v", spans)
		}
		if spans[i].EndLine != spans[i+1].StartLine {
			t.Fatalf("span %d end %d should clamp to next start %d", i, spans[i].EndLine, spans[i+1].StartLine)
		}
	}
	last := spans[len(spans)-1]
	if last.EndLine != len(lines) {
		t.Fatalf("last span end %d should be document length %d", last.EndLine, len(lines))
	}
}

func TestDetectFuzzyMisspelling(t *testing.T) {
	detector := NewSectionDetector(nil)
	spans := detector.Detect([]string{"EXPEREINCE", "ACME Corp Jan 2020 - Dec 2021"})
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d: %+v", len(spans), spans)
	}
	if spans[0].Name != SectionExperience {
		t.Fatalf("expected experience, got %q", spans[0].Name)
	}
	if spans[0].MatchScore >= 1 {
		t.Fatalf("misspelling should not score a perfect match: %v", spans[0].MatchScore)
	}
}

func TestDetectRejectsBodyProse(t *testing.T) {
	detector := NewSectionDetector(nil)
	lines := []string{
		"Built and operated a fleet of parsers over several product cycles at scale.",
		"- Led a migration to managed infrastructure",
		"Software Engineer Bangalore, India",
	}
	spans := detector.Detect(lines)
	if len(spans) != 0 {
		t.Fatalf("expected no spans, got %+v", spans)
	}
}

func TestDetectEmptyDocument(t *testing.T) {
	detector := NewSectionDetector(nil)
	if spans := detector.Detect(nil); len(spans) != 0 {
		t.Fatalf("expected no spans for nil input, got %+v", spans)
	}
}

func TestLevenshteinScorerBounds(t *testing.T) {
	s := NewLevenshteinScorer()
	if got := s.Score("skills", "skills"); got != 1 {
		t.Fatalf("identical strings: expected 1, got %v", got)
	}
	if got := s.Score("skills", "zzzzzz"); got < 0 || got > 0.2 {
		t.Fatalf("dissimilar strings: expected near 0, got %v", got)
	}
}
