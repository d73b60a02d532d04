package salary

import (
	"reflect"
	"testing"

	"skillfit/internal/knowledge"
)

func newEstimator() *Estimator {
	return NewEstimator(knowledge.Default())
}

func intPtr(n int) *int { return &n }

func TestEstimateWorkedExample(t *testing.T) {
	// base 850000 x mid multiplier 1.0 x masters 1.12 x skill bonus 1.03
	got := newEstimator().Estimate(Input{
		Skills:          "python,sql",
		Career:          "Software Developer",
		Qualification:   "Masters",
		ExperienceYears: intPtr(4),
	})

	if got.Range.Mid != 980560 {
		t.Errorf("mid = %d, want 980560", got.Range.Mid)
	}
	if got.Range.Min != 833476 {
		t.Errorf("min = %d, want 833476", got.Range.Min)
	}
	if got.Range.Max != 1127644 {
		t.Errorf("max = %d, want 1127644", got.Range.Max)
	}
	if got.Range.ExperienceLevel != "mid" {
		t.Errorf("level = %q, want mid", got.Range.ExperienceLevel)
	}
	if got.Range.Currency != "INR" {
		t.Errorf("currency = %q, want INR", got.Range.Currency)
	}
	if got.Confidence != 92 {
		t.Errorf("confidence = %d, want 92", got.Confidence)
	}
}

func TestEstimateDeterministic(t *testing.T) {
	e := newEstimator()
	in := Input{Skills: "python,sql,go", Career: "Backend Developer", Qualification: "B.Tech", ExperienceYears: intPtr(6)}
	first := e.Estimate(in)
	second := e.Estimate(in)
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different estimates")
	}
}

func TestEstimateUnknownCareerFallsBack(t *testing.T) {
	got := newEstimator().Estimate(Input{Career: "Quantum Gardener", ExperienceYears: intPtr(0)})

	// default base 600000 x fresher 0.7
	if got.Range.Mid != 420000 {
		t.Errorf("mid = %d, want 420000", got.Range.Mid)
	}
	if got.Confidence != 70 {
		t.Errorf("confidence = %d, want base 70", got.Confidence)
	}
}

func TestEstimateEmptyCareerDefaultsToSoftwareDeveloper(t *testing.T) {
	got := newEstimator().Estimate(Input{ExperienceYears: intPtr(4)})
	if got.Range.Mid != 850000 {
		t.Errorf("mid = %d, want 850000 (software developer base, mid multiplier)", got.Range.Mid)
	}
}

func TestExperienceLevelBands(t *testing.T) {
	tests := []struct {
		years int
		level string
	}{
		{0, "fresher"},
		{1, "fresher"},
		{2, "junior"},
		{3, "junior"},
		{4, "mid"},
		{5, "mid"},
		{6, "senior"},
		{8, "senior"},
		{9, "lead"},
		{12, "lead"},
		{13, "executive"},
		{40, "executive"},
	}
	e := newEstimator()
	for _, tt := range tests {
		got := e.Estimate(Input{Career: "Software Engineer", ExperienceYears: intPtr(tt.years)})
		if got.Range.ExperienceLevel != tt.level {
			t.Errorf("years %d: level = %q, want %q", tt.years, got.Range.ExperienceLevel, tt.level)
		}
	}
}

func TestInferLevelFromSkillsText(t *testing.T) {
	tests := []struct {
		skills string
		level  string
	}{
		{"senior golang developer", "senior"},
		{"intern, html, css", "fresher"},
		{"experienced professional", "mid"},
		{"python, sql", "mid"},
	}
	e := newEstimator()
	for _, tt := range tests {
		got := e.Estimate(Input{Skills: tt.skills, Career: "Software Engineer"})
		if got.Range.ExperienceLevel != tt.level {
			t.Errorf("skills %q: level = %q, want %q", tt.skills, got.Range.ExperienceLevel, tt.level)
		}
	}
}

func TestSkillBonusCaps(t *testing.T) {
	if got := skillBonus("a,b,c,d,e,f,g,h,i,j,k,l"); got != knowledge.MaxSkillBonus {
		t.Errorf("bonus = %v, want cap %v", got, knowledge.MaxSkillBonus)
	}
	if got := skillBonus(""); got != 0 {
		t.Errorf("bonus for empty skills = %v, want 0", got)
	}
}

func TestFormatDisplay(t *testing.T) {
	tests := []struct {
		r    Range
		want string
	}{
		{Range{Min: 833476, Max: 1127644, Currency: "INR"}, "₹8.33L - ₹11.28L/year"},
		{Range{Min: 1000000, Max: 1500000, Currency: "INR"}, "₹10.0L - ₹15.0L/year"},
		{Range{Min: 50000, Max: 80000, Currency: "USD"}, "USD 50000 - 80000/year"},
	}
	for _, tt := range tests {
		if got := FormatDisplay(tt.r); got != tt.want {
			t.Errorf("FormatDisplay(%+v) = %q, want %q", tt.r, got, tt.want)
		}
	}
}
