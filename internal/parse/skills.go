package parse

import (
	"regexp"
	"sort"
	"strings"
)

// Taxonomy maps a category to its canonical skill names. The value is
// treated as immutable configuration: extractors never modify it.
type Taxonomy map[string][]string

// DefaultTaxonomy returns the embedded skill taxonomy. Callers that need a
// different vocabulary pass their own to NewSkillsExtractor.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		"languages": {
			"Go", "Python", "Java", "JavaScript", "TypeScript", "C", "C++",
			"C#", "Ruby", "Rust", "Kotlin", "Swift", "PHP", "Scala", "SQL",
		},
		"frameworks": {
			"React", "Angular", "Vue", "Django", "Flask", "Spring", "Rails",
			"Express", "Gin", "FastAPI", "Next.js", "Node.js",
		},
		"databases": {
			"PostgreSQL", "MySQL", "MongoDB", "Redis", "SQLite",
			"Elasticsearch", "DynamoDB", "Cassandra",
		},
		"cloud": {
			"AWS", "GCP", "Azure", "Docker", "Kubernetes", "Terraform",
			"Jenkins", "Linux", "Git", "CI/CD",
		},
		"data": {
			"Pandas", "NumPy", "Spark", "Kafka", "Airflow", "Hadoop",
		},
	}
}

type skillPattern struct {
	name string
	re   *regexp.Regexp
}

// SkillsExtractor matches a fixed taxonomy against document text. Patterns
// are compiled once at construction, not per call.
type SkillsExtractor struct {
	taxonomy Taxonomy
	patterns map[string][]skillPattern
}

// NewSkillsExtractor compiles whole-token matchers for every skill in the
// taxonomy. A nil taxonomy gets the embedded default.
func NewSkillsExtractor(taxonomy Taxonomy) *SkillsExtractor {
	if taxonomy == nil {
		taxonomy = DefaultTaxonomy()
	}
	patterns := make(map[string][]skillPattern, len(taxonomy))
	for category, skills := range taxonomy {
		compiled := make([]skillPattern, 0, len(skills))
		for _, skill := range skills {
			token := regexp.QuoteMeta(strings.ToLower(skill))
			re := regexp.MustCompile(`(?:^|[^a-z0-9])` + token + `(?:$|[^a-z0-9])`)
			compiled = append(compiled, skillPattern{name: skill, re: re})
		}
		patterns[category] = compiled
	}
	return &SkillsExtractor{taxonomy: taxonomy, patterns: patterns}
}

// Extract tests every taxonomy skill against the lower-cased input and
// returns the alphabetical raw list plus the per-category intersections.
// Both carry confidence 0.9 when any skill matched, else 0.
func (e *SkillsExtractor) Extract(text string) Skills {
	lower := strings.ToLower(text)

	matched := make(map[string]struct{})
	categorized := make(map[string][]string)
	for category, compiled := range e.patterns {
		for _, p := range compiled {
			if !p.re.MatchString(lower) {
				continue
			}
			matched[p.name] = struct{}{}
			categorized[category] = append(categorized[category], p.name)
		}
	}

	if len(matched) == 0 {
		return Skills{Raw: missing[[]string](), Categorized: missing[map[string][]string]()}
	}

	raw := make([]string, 0, len(matched))
	for name := range matched {
		raw = append(raw, name)
	}
	sort.Strings(raw)
	for category := range categorized {
		sort.Strings(categorized[category])
	}

	return Skills{
		Raw:         scored(raw, 0.9),
		Categorized: scored(categorized, 0.9),
	}
}
