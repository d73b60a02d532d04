package ats

import (
	"reflect"
	"strings"
	"testing"

	"skillfit/internal/knowledge"
)

const sampleResume = `John Doe
Email: john.doe@example.com
Phone: 987-654-3210

Summary
Data professional with strong analytics background.

Experience
Built machine learning pipelines in python with pandas and sql.

Education
B.Tech from a university.

Skills
python, machine learning, sql, tensorflow, pandas
`

func newAnalyzer() *Analyzer {
	return NewAnalyzer(knowledge.Default())
}

func TestAnalyzeFullCoverage(t *testing.T) {
	res := newAnalyzer().Analyze(sampleResume, []string{"python", "sql"}, "Data Scientist")

	if !res.Format.HasEmail {
		t.Error("expected email to be detected")
	}
	if !res.Format.HasPhone {
		t.Error("expected phone to be detected")
	}
	if res.Format.Score != 100 {
		t.Errorf("format score = %d, want 100", res.Format.Score)
	}
	if res.Sections.Score != 100 {
		t.Errorf("section score = %d, want 100", res.Sections.Score)
	}
	if res.Keywords.Score != 100 {
		t.Errorf("keyword score = %d, want 100", res.Keywords.Score)
	}
	if res.OverallScore != 100 {
		t.Errorf("overall = %d, want 100", res.OverallScore)
	}
	if res.Status.Label != "Excellent" {
		t.Errorf("status = %q, want Excellent", res.Status.Label)
	}
	if len(res.Keywords.Missing) != 0 {
		t.Errorf("missing keywords = %v, want none", res.Keywords.Missing)
	}
}

func TestAnalyzeMissingKeywords(t *testing.T) {
	text := "Experience with python and sql. Education. Skills. email: a@b.co phone 9876543210"
	res := newAnalyzer().Analyze(text, nil, "Data Scientist")

	wantFound := []string{"python", "sql"}
	if !reflect.DeepEqual(res.Keywords.Found, wantFound) {
		t.Errorf("found = %v, want %v", res.Keywords.Found, wantFound)
	}
	wantMissing := []string{"machine learning", "tensorflow", "pandas"}
	if !reflect.DeepEqual(res.Keywords.Missing, wantMissing) {
		t.Errorf("missing = %v, want %v", res.Keywords.Missing, wantMissing)
	}
	if res.Keywords.Score != 40 {
		t.Errorf("keyword score = %d, want 40", res.Keywords.Score)
	}
}

func TestAnalyzeUnknownCareer(t *testing.T) {
	res := newAnalyzer().Analyze(sampleResume, nil, "Underwater Basket Weaver")

	if res.Keywords.Score != 100 {
		t.Errorf("keyword score for unknown career = %d, want 100", res.Keywords.Score)
	}
	if len(res.Keywords.Found) != 0 || len(res.Keywords.Missing) != 0 {
		t.Errorf("unknown career should have empty keyword lists, got %+v", res.Keywords)
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	res := newAnalyzer().Analyze("", nil, "")

	if res.OverallScore < 0 || res.OverallScore > 100 {
		t.Fatalf("overall out of bounds: %d", res.OverallScore)
	}
	if res.Sections.Score != 0 {
		t.Errorf("section score = %d, want 0", res.Sections.Score)
	}
	if res.Format.Score != 50 {
		t.Errorf("format score = %d, want 50 base", res.Format.Score)
	}
	if res.Format.HasEmail || res.Format.HasPhone {
		t.Error("empty text should have no contact info")
	}
}

func TestStatusThresholds(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "Excellent"},
		{80, "Excellent"},
		{79, "Good"},
		{60, "Good"},
		{59, "Needs Work"},
		{40, "Needs Work"},
		{39, "Poor"},
		{0, "Poor"},
	}
	for _, tt := range tests {
		if got := statusFor(tt.score); got.Label != tt.want {
			t.Errorf("statusFor(%d) = %q, want %q", tt.score, got.Label, tt.want)
		}
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	a := newAnalyzer()
	first := a.Analyze(sampleResume, []string{"python"}, "Data Scientist")
	second := a.Analyze(sampleResume, []string{"python"}, "Data Scientist")
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated analysis of identical input differs")
	}
}

func TestAnalyzeLongInput(t *testing.T) {
	long := strings.Repeat("experience education skills python sql ", 5000)
	res := newAnalyzer().Analyze(long, nil, "Backend Developer")
	if res.OverallScore < 0 || res.OverallScore > 100 {
		t.Fatalf("overall out of bounds on long input: %d", res.OverallScore)
	}
}
