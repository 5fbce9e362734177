package parse

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"resume-parser/internal/shared/util"
)

// Fatal pipeline conditions. Anything else — missing sections, missing
// contact fields, zero skills — is non-fatal and surfaces as a warning.
var (
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrCorruptDocument   = errors.New("corrupt document")
	ErrEmptyDocument     = errors.New("empty document")
)

// Extraction is the output of the format text extractor collaborator.
type Extraction struct {
	Text      string
	PageCount int
	FileType  string
}

// TextExtractor turns a byte buffer plus an optional filename hint into
// raw text. Implementations must not fail on recoverable malformed
// content; best-effort partial text is acceptable.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte, filenameHint string) (Extraction, error)
}

// Pipeline sequences extraction, normalization, section detection, block
// segmentation, and the field extractors into one Result. A Pipeline is
// immutable after construction and safe for concurrent use; each Run is an
// independent sequential computation.
type Pipeline struct {
	extractor TextExtractor
	detector  *SectionDetector
	skills    *SkillsExtractor
}

// Option customizes pipeline construction.
type Option func(*Pipeline)

// WithScorer swaps the fuzzy scorer used by section detection.
func WithScorer(s Scorer) Option {
	return func(p *Pipeline) { p.detector = NewSectionDetector(s) }
}

// WithTaxonomy overrides the embedded skill taxonomy.
func WithTaxonomy(t Taxonomy) Option {
	return func(p *Pipeline) { p.skills = NewSkillsExtractor(t) }
}

// NewPipeline builds a pipeline around the given text extractor.
func NewPipeline(extractor TextExtractor, opts ...Option) *Pipeline {
	p := &Pipeline{
		extractor: extractor,
		detector:  NewSectionDetector(nil),
		skills:    NewSkillsExtractor(nil),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// experienceFallbackScale degrades experience confidences when no
// experience section was detected and the whole document is scanned.
const experienceFallbackScale = 0.75

// Run executes the pipeline on one document. Fatal conditions populate
// Result.Errors and return a non-nil error; every other outcome returns a
// usable Result whose gaps are listed in Warnings.
func (p *Pipeline) Run(ctx context.Context, data []byte, filenameHint string) (Result, error) {
	result := Result{
		Warnings: []string{},
		Errors:   []string{},
		Meta:     Meta{SHA256: util.Checksum(data)},
	}

	extraction, err := p.extractor.Extract(ctx, data, filenameHint)
	result.Meta.FileType = extraction.FileType
	result.Meta.PageCount = extraction.PageCount
	if err != nil {
		return fatal(result, err)
	}

	text := NormalizeText(extraction.Text)
	if strings.TrimSpace(text) == "" {
		return fatal(result, fmt.Errorf("%w: no text after normalization", ErrEmptyDocument))
	}
	lines := SplitLines(text)

	result.Sections = p.detector.Detect(lines)

	expLines, expScale := p.experienceRegion(result.Sections, lines)
	result.Experience = ExtractExperience(SegmentBlocks(expLines), expScale)
	result.Education = ExtractEducation(p.regionOrEmpty(result.Sections, SectionEducation, lines))
	result.Projects = ExtractProjects(SegmentBlocks(p.regionOrEmpty(result.Sections, SectionProjects, lines)))

	skillsText := text
	if span, ok := spanFor(result.Sections, SectionSkills); ok {
		skillsText = strings.Join(sliceRegion(lines, span), "\n")
	}
	result.Skills = p.skills.Extract(skillsText)

	if span, ok := spanFor(result.Sections, SectionSummary); ok {
		summary := strings.TrimSpace(strings.Join(sliceRegion(lines, span), " "))
		if summary != "" {
			result.Summary = scored(summary, 0.8)
		} else {
			result.Summary = missing[string]()
		}
	} else {
		result.Summary = missing[string]()
	}

	result.Contact = ExtractContact(text, lines)

	result.Warnings = deriveWarnings(result)
	return result, nil
}

// experienceRegion returns the experience section's lines, or the whole
// document at degraded confidence when no section was detected. Experience
// is the one region worth a whole-document fallback; mis-scoping education
// or projects is more damaging than omitting them.
func (p *Pipeline) experienceRegion(spans []SectionSpan, lines []string) ([]string, float64) {
	if span, ok := spanFor(spans, SectionExperience); ok {
		return sliceRegion(lines, span), 1
	}
	return lines, experienceFallbackScale
}

func (p *Pipeline) regionOrEmpty(spans []SectionSpan, name string, lines []string) []string {
	if span, ok := spanFor(spans, name); ok {
		return sliceRegion(lines, span)
	}
	return nil
}

// sliceRegion returns the span's lines excluding the heading line itself.
func sliceRegion(lines []string, span SectionSpan) []string {
	start := span.StartLine + 1
	end := span.EndLine
	if start < 0 || start > len(lines) {
		return nil
	}
	if end > len(lines) {
		end = len(lines)
	}
	if start >= end {
		return nil
	}
	return lines[start:end]
}

func spanFor(spans []SectionSpan, name string) (SectionSpan, bool) {
	for _, span := range spans {
		if span.Name == name {
			return span, true
		}
	}
	return SectionSpan{}, false
}

// deriveWarnings emits one warning per major field group whose value or
// collection came back empty.
func deriveWarnings(r Result) []string {
	warnings := []string{}
	if r.Contact.Email.Confidence == 0 {
		warnings = append(warnings, "no email address detected")
	}
	if r.Contact.Phone.Confidence == 0 {
		warnings = append(warnings, "no phone number detected")
	}
	if len(r.Experience) == 0 {
		warnings = append(warnings, "no experience entries detected")
	}
	if len(r.Education) == 0 {
		warnings = append(warnings, "no education entries detected")
	}
	if len(r.Projects) == 0 {
		warnings = append(warnings, "no projects detected")
	}
	if r.Skills.Raw.Confidence == 0 {
		warnings = append(warnings, "no skills detected")
	}
	if r.Summary.Confidence == 0 {
		warnings = append(warnings, "no summary detected")
	}
	return warnings
}

// fatal records the error on the result and classifies it into the fatal
// taxonomy for the caller.
func fatal(result Result, err error) (Result, error) {
	switch {
	case errors.Is(err, ErrUnsupportedFormat), errors.Is(err, ErrCorruptDocument), errors.Is(err, ErrEmptyDocument):
	default:
		err = fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	result.Errors = append(result.Errors, err.Error())
	return result, err
}
