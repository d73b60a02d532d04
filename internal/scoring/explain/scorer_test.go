package explain

import (
	"reflect"
	"strings"
	"testing"

	"skillfit/internal/knowledge"
	"skillfit/internal/scoring"
)

const strongResume = `Jane Roe
Email: jane.roe@example.com
Phone: 987-654-3210
LinkedIn: linkedin.com/in/janeroe

Summary
Data scientist with six years of experience turning raw data into product decisions.

Experience
Senior Data Scientist, Acme Analytics
- Developed machine learning models in python with pandas, numpy and scikit-learn.
- Built deep learning pipelines with tensorflow and pytorch on aws and gcp.
- Led a team of analysts and improved model accuracy by 35%.
- Increased revenue by $40,000 through churn classification and regression models.
- Reduced training time by 60% after moving feature engineering to spark.
- Delivered dashboards in tableau that achieved adoption by 200 users.
- Designed statistics reports and data analysis notebooks in jupyter for clustering studies.
- Managed sql data visualization workflows with measurable impact on outcome quality.

Projects
- Launched a neural networks demo that delivered nlp results to 50 clients.

Education
Master of Science in Statistics, State University

Skills
python, r, sql, machine learning, deep learning, tensorflow, pytorch, pandas, numpy, scikit-learn
`

func newScorer() *Scorer {
	return NewScorer(knowledge.Default())
}

func TestWeightsSumToHundred(t *testing.T) {
	sum := weightKeywords + weightATS + weightContent + weightParseability + weightReadability + weightSections
	if sum != 100 {
		t.Fatalf("category weights sum to %v, want 100", sum)
	}
}

func TestAnalyzeStrongResume(t *testing.T) {
	got := newScorer().Analyze(strongResume, "Data Scientist", nil)

	if got.TargetRole != "data scientist" {
		t.Errorf("target role = %q, want data scientist", got.TargetRole)
	}
	cats := got.Categories
	if cats.KeywordsSkills.Score != 100 {
		t.Errorf("keywords score = %v, want 100", cats.KeywordsSkills.Score)
	}
	if cats.ATSFormatting.Score != 100 {
		t.Errorf("ats formatting score = %v, want 100", cats.ATSFormatting.Score)
	}
	if cats.ContentImpact.Score != 100 {
		t.Errorf("content impact score = %v, want 100", cats.ContentImpact.Score)
	}
	if cats.Parseability.Score != 100 {
		t.Errorf("parseability score = %v, want 100", cats.Parseability.Score)
	}
	if cats.SectionCompleteness.Score != 100 {
		t.Errorf("section completeness score = %v, want 100", cats.SectionCompleteness.Score)
	}
	if cats.Readability.Score <= 0 || cats.Readability.Score > 100 {
		t.Errorf("readability score = %v, want within (0,100]", cats.Readability.Score)
	}
	if got.OverallScore < 95 {
		t.Errorf("overall = %d, want >= 95", got.OverallScore)
	}
	if got.TotalIssues > 2 {
		t.Errorf("total issues = %d, want <= 2", got.TotalIssues)
	}
	if got.TotalPassed < 15 {
		t.Errorf("total passed = %d, want >= 15", got.TotalPassed)
	}
}

func TestAnalyzeEmptyResume(t *testing.T) {
	got := newScorer().Analyze("", "data scientist", nil)

	want := map[string]float64{
		"keywords":     20,
		"ats":          70,
		"content":      15,
		"parseability": 30,
		"readability":  50,
		"sections":     0,
	}
	cats := got.Categories
	checks := map[string]float64{
		"keywords":     cats.KeywordsSkills.Score,
		"ats":          cats.ATSFormatting.Score,
		"content":      cats.ContentImpact.Score,
		"parseability": cats.Parseability.Score,
		"readability":  cats.Readability.Score,
		"sections":     cats.SectionCompleteness.Score,
	}
	for name, wantScore := range want {
		if checks[name] != wantScore {
			t.Errorf("%s score = %v, want %v", name, checks[name], wantScore)
		}
	}
	if got.OverallScore != 32 {
		t.Errorf("overall = %d, want 32", got.OverallScore)
	}
	if got.TotalIssues != 16 {
		t.Errorf("total issues = %d, want 16", got.TotalIssues)
	}
	if got.TotalPassed != 3 {
		t.Errorf("total passed = %d, want 3", got.TotalPassed)
	}
}

func TestPriorityFixRanking(t *testing.T) {
	got := newScorer().Analyze("", "data scientist", nil)
	fixes := got.PriorityFixes

	if len(fixes) != 10 {
		t.Fatalf("fix count = %d, want 10", len(fixes))
	}
	for i, fix := range fixes {
		if fix.Priority != i+1 {
			t.Errorf("fix %d priority = %d, want %d", i, fix.Priority, i+1)
		}
	}
	// No fix may outrank one with a higher potential gain; equal gains
	// break ties on severity.
	for i := 1; i < len(fixes); i++ {
		prev, cur := fixes[i-1], fixes[i]
		if cur.PotentialGain > prev.PotentialGain {
			t.Errorf("fix %d gain %v ranked below fix %d gain %v", i-1, prev.PotentialGain, i, cur.PotentialGain)
		}
		if cur.PotentialGain == prev.PotentialGain && cur.Severity.Weight() > prev.Severity.Weight() {
			t.Errorf("fix %d severity %v ranked below fix %d severity %v at equal gain", i-1, prev.Severity, i, cur.Severity)
		}
	}

	first := fixes[0]
	if first.Category != "Keywords & Skills Match" {
		t.Errorf("top fix category = %q, want Keywords & Skills Match", first.Category)
	}
	if first.Severity != scoring.SeverityCritical {
		t.Errorf("top fix severity = %v, want critical", first.Severity)
	}
	if first.PotentialGain != 6.7 {
		t.Errorf("top fix gain = %v, want 6.7", first.PotentialGain)
	}
	if strings.HasPrefix(first.Issue, "✗") {
		t.Errorf("issue text %q still carries the ✗ marker", first.Issue)
	}
}

func TestIssueSeverityTiers(t *testing.T) {
	tests := []struct {
		weight   float64
		position int
		want     scoring.Severity
	}{
		{25, 0, scoring.SeverityCritical},
		{25, 1, scoring.SeverityHigh},
		{20, 0, scoring.SeverityCritical},
		{15, 0, scoring.SeverityHigh},
		{15, 2, scoring.SeverityMedium},
		{10, 0, scoring.SeverityMedium},
		{10, 3, scoring.SeverityLow},
	}
	for _, tt := range tests {
		if got := issueSeverity(tt.weight, tt.position); got != tt.want {
			t.Errorf("issueSeverity(%v, %d) = %v, want %v", tt.weight, tt.position, got, tt.want)
		}
	}
}

func TestUnknownRoleFallsBackToDefaultProfile(t *testing.T) {
	text := "Strong communication and analysis with problem solving in excel and powerpoint reports covering project management, teamwork and leadership."
	got := newScorer().Analyze(text, "Quantum Gardener", nil)

	if got.TargetRole != "quantum gardener" {
		t.Errorf("target role = %q, want quantum gardener", got.TargetRole)
	}
	found := false
	for _, check := range got.Categories.KeywordsSkills.PassedChecks {
		if strings.Contains(check, "Strong technical skills (3/3") {
			found = true
		}
	}
	if !found {
		t.Errorf("default technical profile not matched, passed checks: %v", got.Categories.KeywordsSkills.PassedChecks)
	}
}

func TestRadarChartData(t *testing.T) {
	got := newScorer().Analyze(strongResume, "data scientist", nil)
	radar := got.RadarChart

	wantLabels := []string{
		"Keywords & Skills Match", "ATS Formatting", "Content & Impact",
		"Parseability", "Readability", "Section Completeness",
	}
	if !reflect.DeepEqual(radar.Labels, wantLabels) {
		t.Errorf("labels = %v, want %v", radar.Labels, wantLabels)
	}
	if len(radar.Scores) != 6 || len(radar.Weights) != 6 {
		t.Fatalf("scores/weights length = %d/%d, want 6/6", len(radar.Scores), len(radar.Weights))
	}
	for i, target := range radar.Target {
		if target != 80 {
			t.Errorf("target[%d] = %v, want 80", i, target)
		}
	}
	if radar.Weights[0] != 25 || radar.Weights[5] != 10 {
		t.Errorf("weights = %v, want 25..10 ordering", radar.Weights)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	s := newScorer()
	first := s.Analyze(strongResume, "data scientist", []string{"python"})
	second := s.Analyze(strongResume, "data scientist", []string{"python"})
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different results")
	}
}
