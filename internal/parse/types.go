package parse

// ProvenanceRule tags values produced by the deterministic rule pipeline.
// Reserved for future extraction strategies (e.g. model-derived values).
const ProvenanceRule = "rule"

// Scored pairs an extracted value with a confidence in [0,1] and a
// provenance tag. Confidence is 0 whenever the value is absent. A Scored
// value is never mutated after construction; refinement passes build a new
// one.
type Scored[T any] struct {
	Value      T       `json:"value"`
	Confidence float64 `json:"confidence"`
	Provenance string  `json:"provenance"`
}

// scored builds a present value with the given confidence.
func scored[T any](value T, confidence float64) Scored[T] {
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	return Scored[T]{Value: value, Confidence: confidence, Provenance: ProvenanceRule}
}

// missing builds an absent value at confidence 0.
func missing[T any]() Scored[T] {
	var zero T
	return Scored[T]{Value: zero, Confidence: 0, Provenance: ProvenanceRule}
}

// SectionSpan is a contiguous line range classified as one canonical
// résumé section. StartLine is the heading line itself; EndLine is
// exclusive and clamped to the next span's StartLine (or document length
// for the last span).
type SectionSpan struct {
	Name       string  `json:"name"`
	StartLine  int     `json:"startLine"`
	EndLine    int     `json:"endLine"`
	MatchScore float64 `json:"matchScore"`
}

// Block is a contiguous run of lines presumed to describe one logical
// record (one job, one project, one degree). Its joined text is non-empty
// after trimming and it never spans a blank-line boundary.
type Block struct {
	Lines []string `json:"lines"`
}

// DateRange is a normalized free-text date range. Start and End are
// day-level ISO dates (YYYY-MM-DD) or empty when unresolved.
type DateRange struct {
	Start      string  `json:"start,omitempty"`
	End        string  `json:"end,omitempty"`
	IsCurrent  bool    `json:"isCurrent"`
	Confidence float64 `json:"confidence"`
}

// ExperienceItem is one employment record extracted from a block.
type ExperienceItem struct {
	CompanyRaw  Scored[string]   `json:"companyRaw"`
	TitleRaw    Scored[string]   `json:"titleRaw"`
	LocationRaw Scored[string]   `json:"locationRaw"`
	Bullets     Scored[[]string] `json:"bullets"`
	Dates       DateRange        `json:"dates"`
}

// EducationItem is one degree record.
type EducationItem struct {
	Institution Scored[string] `json:"institution"`
	Degree      Scored[string] `json:"degree"`
	Major       Scored[string] `json:"major"`
	GPA         Scored[string] `json:"gpa"`
	Dates       DateRange      `json:"dates"`
}

// ProjectItem is one project record.
type ProjectItem struct {
	Title   Scored[string]   `json:"title"`
	Bullets Scored[[]string] `json:"bullets"`
	Links   Scored[[]string] `json:"links"`
	Dates   DateRange        `json:"dates"`
}

// Contact holds the header-matter fields extracted from the whole
// document.
type Contact struct {
	Name     Scored[string]   `json:"name"`
	Email    Scored[string]   `json:"email"`
	Phone    Scored[string]   `json:"phone"`
	Links    Scored[[]string] `json:"links"`
	Location Scored[string]   `json:"location"`
}

// Skills holds the flat and categorized skill matches.
type Skills struct {
	Raw         Scored[[]string]            `json:"raw"`
	Categorized Scored[map[string][]string] `json:"categorized"`
}

// Meta describes the source document.
type Meta struct {
	FileType  string `json:"fileType"`
	PageCount int    `json:"pageCount,omitempty"`
	SHA256    string `json:"sha256"`
}

// Result is the aggregate output of one pipeline run. It is created once
// per run and immutable once returned. A non-empty Errors slice means the
// result is unusable; a non-empty Warnings slice means usable but
// incomplete.
type Result struct {
	Meta       Meta             `json:"meta"`
	Contact    Contact          `json:"contact"`
	Sections   []SectionSpan    `json:"sections"`
	Experience []ExperienceItem `json:"experience"`
	Education  []EducationItem  `json:"education"`
	Projects   []ProjectItem    `json:"projects"`
	Skills     Skills           `json:"skills"`
	Summary    Scored[string]   `json:"summary"`
	Warnings   []string         `json:"warnings"`
	Errors     []string         `json:"errors"`
}

// Canonical section names.
const (
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionProjects   = "projects"
	SectionSkills     = "skills"
	SectionSummary    = "summary"
)
