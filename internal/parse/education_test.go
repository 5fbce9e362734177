package parse

import "testing"

func TestExtractEducationSingleDegree(t *testing.T) {
	lines := []string{
		"MIT Sep 2016 - May 2020",
		"B.S. in Computer Science, GPA: 3.8",
	}
	items := ExtractEducation(lines)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	item := items[0]

	if item.Institution.Value != "MIT" {
		t.Fatalf("institution: got %q", item.Institution.Value)
	}
	if item.Institution.Confidence != 0.9 {
		t.Fatalf("institution confidence: got %v", item.Institution.Confidence)
	}
	if item.Degree.Value != "B.S. in Computer Science" {
		t.Fatalf("degree: got %q", item.Degree.Value)
	}
	if item.Major.Value != "Computer Science" {
		t.Fatalf("major: got %q", item.Major.Value)
	}
	if item.GPA.Value != "3.8" {
		t.Fatalf("gpa: got %q", item.GPA.Value)
	}
	if item.Dates.Start != "2016-09-01" || item.Dates.End != "2020-05-01" {
		t.Fatalf("dates: got %q..%q", item.Dates.Start, item.Dates.End)
	}
}

func TestExtractEducationMultipleEntries(t *testing.T) {
	lines := []string{
		"State University 2018 - 2020",
		"Master of Science in Data Engineering",
		"",
		"City College 2014 - 2018",
		"Bachelor of Arts",
	}
	items := ExtractEducation(lines)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Institution.Value != "State University" {
		t.Fatalf("first institution: got %q", items[0].Institution.Value)
	}
	if items[1].Institution.Value != "City College" {
		t.Fatalf("second institution: got %q", items[1].Institution.Value)
	}
	if items[1].Degree.Confidence == 0 {
		t.Fatalf("second degree should be detected: %+v", items[1].Degree)
	}
}

func TestExtractEducationGPAOutOfScale(t *testing.T) {
	lines := []string{
		"Tech Institute 2015 - 2019",
		"B.Tech in Electronics GPA: 8.9/10",
	}
	items := ExtractEducation(lines)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].GPA.Confidence == 0 {
		t.Fatalf("gpa should be detected: %+v", items[0].GPA)
	}
}

func TestExtractEducationNoDateLines(t *testing.T) {
	if items := ExtractEducation([]string{"Bachelor of Science", "some prose"}); len(items) != 0 {
		t.Fatalf("no date lines should yield no items, got %+v", items)
	}
}
