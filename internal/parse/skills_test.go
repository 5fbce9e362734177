package parse

import "testing"

func TestSkillsExtractorMatchesTokens(t *testing.T) {
	e := NewSkillsExtractor(nil)
	skills := e.Extract("Go, Python, Docker, PostgreSQL")

	want := []string{"Docker", "Go", "PostgreSQL", "Python"}
	if len(skills.Raw.Value) != len(want) {
		t.Fatalf("raw: expected %v, got %v", want, skills.Raw.Value)
	}
	for i := range want {
		if skills.Raw.Value[i] != want[i] {
			t.Fatalf("raw[%d]: expected %q, got %q", i, want[i], skills.Raw.Value[i])
		}
	}
	if skills.Raw.Confidence != 0.9 {
		t.Fatalf("raw confidence: got %v", skills.Raw.Confidence)
	}

	langs := skills.Categorized.Value["languages"]
	if len(langs) != 2 || langs[0] != "Go" || langs[1] != "Python" {
		t.Fatalf("languages: got %v", langs)
	}
	cloud := skills.Categorized.Value["cloud"]
	if len(cloud) != 1 || cloud[0] != "Docker" {
		t.Fatalf("cloud: got %v", cloud)
	}
}

func TestSkillsExtractorNoSubstringMatches(t *testing.T) {
	e := NewSkillsExtractor(nil)

	// "Going" must not match Go; "PostgreSQL" must not match SQL.
	skills := e.Extract("Going to the PostgreSQL conference")
	for _, name := range skills.Raw.Value {
		if name == "Go" || name == "SQL" {
			t.Fatalf("substring leaked into matches: %v", skills.Raw.Value)
		}
	}
	if len(skills.Raw.Value) != 1 || skills.Raw.Value[0] != "PostgreSQL" {
		t.Fatalf("expected only PostgreSQL, got %v", skills.Raw.Value)
	}
}

func TestSkillsExtractorCaseInsensitive(t *testing.T) {
	e := NewSkillsExtractor(nil)
	skills := e.Extract("worked with KUBERNETES and redis")
	if len(skills.Raw.Value) != 2 {
		t.Fatalf("expected 2 matches, got %v", skills.Raw.Value)
	}
	if skills.Raw.Value[0] != "Kubernetes" || skills.Raw.Value[1] != "Redis" {
		t.Fatalf("canonical names expected, got %v", skills.Raw.Value)
	}
}

func TestSkillsExtractorEmpty(t *testing.T) {
	e := NewSkillsExtractor(nil)
	skills := e.Extract("nothing relevant here")
	if skills.Raw.Confidence != 0 || skills.Categorized.Confidence != 0 {
		t.Fatalf("expected missing skills, got %+v", skills)
	}
}

func TestSkillsExtractorCustomTaxonomy(t *testing.T) {
	e := NewSkillsExtractor(Taxonomy{"tools": {"Vim"}})
	skills := e.Extract("I live in vim")
	if len(skills.Raw.Value) != 1 || skills.Raw.Value[0] != "Vim" {
		t.Fatalf("custom taxonomy: got %v", skills.Raw.Value)
	}
	if len(skills.Categorized.Value["tools"]) != 1 {
		t.Fatalf("categorized: got %v", skills.Categorized.Value)
	}
}
