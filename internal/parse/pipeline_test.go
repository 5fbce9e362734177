package parse

import (
	"context"
	"errors"
	"testing"
)

type staticExtractor struct {
	text string
	err  error
}

func (s staticExtractor) Extract(ctx context.Context, data []byte, filenameHint string) (Extraction, error) {
	return Extraction{Text: s.text, FileType: "txt"}, s.err
}

const sampleResume = `Jane Doe
jane.doe@example.com | (555) 123-4567
San Francisco, CA

SUMMARY
Backend engineer with six years of experience.

EXPERIENCE
ACME Corp Jan 2020 - Dec 2021
Software Engineer San Francisco, CA
- Built the ingestion service
- Led the migration to managed queues

EDUCATION
MIT Sep 2016 - May 2020
B.S. in Computer Science, GPA: 3.8

PROJECTS
ChatServer (2021)
- Wrote a concurrent chat server
github.com/janedoe/chatserver

SKILLS
Go, Python, Docker, PostgreSQL`

func TestPipelineRunFullResume(t *testing.T) {
	p := NewPipeline(staticExtractor{text: sampleResume})
	result, err := p.Run(context.Background(), []byte(sampleResume), "resume.txt")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Meta.FileType != "txt" {
		t.Fatalf("file type: got %q", result.Meta.FileType)
	}
	if result.Meta.SHA256 == "" {
		t.Fatal("checksum should be set")
	}

	if result.Contact.Name.Value != "Jane Doe" {
		t.Fatalf("name: got %q", result.Contact.Name.Value)
	}
	if result.Contact.Email.Value != "jane.doe@example.com" {
		t.Fatalf("email: got %q", result.Contact.Email.Value)
	}

	if len(result.Sections) != 5 {
		t.Fatalf("expected 5 sections, got %d: %+v", len(result.Sections), result.Sections)
	}

	if len(result.Experience) != 1 {
		t.Fatalf("experience: got %+v", result.Experience)
	}
	exp := result.Experience[0]
	if exp.CompanyRaw.Value != "ACME Corp" || exp.CompanyRaw.Confidence != 0.9 {
		t.Fatalf("company: got %+v", exp.CompanyRaw)
	}
	if exp.TitleRaw.Value != "Software Engineer" {
		t.Fatalf("title: got %+v", exp.TitleRaw)
	}
	if exp.Dates.Start != "2020-01-01" || exp.Dates.End != "2021-12-01" {
		t.Fatalf("experience dates: got %+v", exp.Dates)
	}

	if len(result.Education) != 1 {
		t.Fatalf("education: got %+v", result.Education)
	}
	if result.Education[0].Institution.Value != "MIT" {
		t.Fatalf("institution: got %+v", result.Education[0].Institution)
	}

	if len(result.Projects) != 1 {
		t.Fatalf("projects: got %+v", result.Projects)
	}
	if result.Projects[0].Title.Value != "ChatServer" {
		t.Fatalf("project title: got %+v", result.Projects[0].Title)
	}

	wantSkills := []string{"Docker", "Go", "PostgreSQL", "Python"}
	if len(result.Skills.Raw.Value) != len(wantSkills) {
		t.Fatalf("skills: expected %v, got %v", wantSkills, result.Skills.Raw.Value)
	}
	for i := range wantSkills {
		if result.Skills.Raw.Value[i] != wantSkills[i] {
			t.Fatalf("skills[%d]: expected %q, got %q", i, wantSkills[i], result.Skills.Raw.Value[i])
		}
	}

	if result.Summary.Value != "Backend engineer with six years of experience." {
		t.Fatalf("summary: got %q", result.Summary.Value)
	}

	if len(result.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", result.Warnings)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", result.Errors)
	}
}

func TestPipelineRunEmptyDocumentIsFatal(t *testing.T) {
	p := NewPipeline(staticExtractor{text: "   \n\n  "})
	result, err := p.Run(context.Background(), []byte("x"), "resume.txt")
	if !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
	if len(result.Errors) == 0 {
		t.Fatal("fatal errors must be recorded on the result")
	}
}

func TestPipelineRunExtractorFailureClassifiedCorrupt(t *testing.T) {
	p := NewPipeline(staticExtractor{err: errors.New("boom")})
	_, err := p.Run(context.Background(), []byte("x"), "resume.pdf")
	if !errors.Is(err, ErrCorruptDocument) {
		t.Fatalf("expected ErrCorruptDocument, got %v", err)
	}
}

func TestPipelineRunWholeDocumentExperienceFallback(t *testing.T) {
	text := `ACME Corp Jan 2020 - Dec 2021
Software Engineer San Francisco, CA
- Built the ingestion service`
	p := NewPipeline(staticExtractor{text: text})
	result, err := p.Run(context.Background(), []byte(text), "resume.txt")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Experience) != 1 {
		t.Fatalf("fallback experience: got %+v", result.Experience)
	}
	if got := result.Experience[0].CompanyRaw.Confidence; got != 0.9*experienceFallbackScale {
		t.Fatalf("fallback confidence: expected %v, got %v", 0.9*experienceFallbackScale, got)
	}
}

func TestPipelineRunWarningsForMissingGroups(t *testing.T) {
	text := "A single line of prose without any signal."
	p := NewPipeline(staticExtractor{text: text})
	result, err := p.Run(context.Background(), []byte(text), "resume.txt")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := map[string]bool{
		"no email address detected":      false,
		"no phone number detected":       false,
		"no experience entries detected": false,
		"no education entries detected":  false,
		"no projects detected":           false,
		"no skills detected":             false,
		"no summary detected":            false,
	}
	for _, w := range result.Warnings {
		if _, ok := want[w]; !ok {
			t.Fatalf("unexpected warning %q", w)
		}
		want[w] = true
	}
	for w, seen := range want {
		if !seen {
			t.Fatalf("missing warning %q in %v", w, result.Warnings)
		}
	}
}

func TestPipelineRunWithScorerOption(t *testing.T) {
	// A scorer that refuses everything disables section detection.
	p := NewPipeline(staticExtractor{text: sampleResume}, WithScorer(zeroScorer{}))
	result, err := p.Run(context.Background(), []byte(sampleResume), "resume.txt")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Sections) != 0 {
		t.Fatalf("zero scorer should find no sections, got %+v", result.Sections)
	}
	// Experience falls back to the whole document.
	if len(result.Experience) == 0 {
		t.Fatal("whole-document fallback should still find experience")
	}
}

type zeroScorer struct{}

func (zeroScorer) Score(a, b string) float64 { return 0 }
