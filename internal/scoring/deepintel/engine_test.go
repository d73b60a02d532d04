package deepintel

import (
	"reflect"
	"strings"
	"testing"

	"skillfit/internal/knowledge"
	"skillfit/internal/scoring"
)

const frontendResume = `Alex Doe
alex@example.com

Summary
Frontend developer passionate about crisp interfaces.

Projects
- Portfolio website built with react, html and css
- Todo app clone with react

Skills
react, html, css
`

func newEngine() *Engine {
	return NewEngine(knowledge.Default())
}

func TestMismatchScenario(t *testing.T) {
	got := newEngine().AnalyzeResume(Input{
		ResumeText:      frontendResume,
		TargetRole:      "full stack developer",
		PredictedCareer: "Frontend Developer",
		DetectedSkills:  []string{"React", "HTML", "CSS"},
	})

	if !got.IsMismatch {
		t.Fatal("frontend-only resume targeting full stack developer must be a mismatch")
	}

	foundFullstackWeakness := false
	for _, w := range got.Weaknesses {
		if strings.Contains(w.Title, "Full Stack") {
			foundFullstackWeakness = true
		}
	}
	if !foundFullstackWeakness {
		t.Errorf("no weakness referencing full-stack evidence, got titles: %v", weaknessTitles(got.Weaknesses))
	}

	if got.CareerMatch.OverallMatchScore != 37.7 {
		t.Errorf("overall match = %v, want 37.7", got.CareerMatch.OverallMatchScore)
	}
	if !reflect.DeepEqual(got.CareerMatch.MustHave.Missing, []string{"javascript"}) {
		t.Errorf("missing must-haves = %v, want [javascript]", got.CareerMatch.MustHave.Missing)
	}
	wantReasons := []string{
		"Missing required skills: javascript",
		"Weak in required categories: frontend, backend",
		"Missing required project experience",
	}
	if !reflect.DeepEqual(got.CareerMatch.MismatchReasons, wantReasons) {
		t.Errorf("mismatch reasons = %v, want %v", got.CareerMatch.MismatchReasons, wantReasons)
	}
}

func TestMismatchWeaknessesSortedBySeverity(t *testing.T) {
	got := newEngine().AnalyzeResume(Input{
		ResumeText:      frontendResume,
		TargetRole:      "full stack developer",
		PredictedCareer: "frontend developer",
		DetectedSkills:  []string{"react", "html", "css"},
	})

	if len(got.Weaknesses) == 0 {
		t.Fatal("expected weaknesses")
	}
	for i := 1; i < len(got.Weaknesses); i++ {
		if got.Weaknesses[i].Severity.Weight() > got.Weaknesses[i-1].Severity.Weight() {
			t.Errorf("weakness %d (%v) outranks weakness %d (%v)",
				i, got.Weaknesses[i].Severity, i-1, got.Weaknesses[i-1].Severity)
		}
	}
	if got.Weaknesses[0].Title != "Missing Essential Skills for Full Stack Developer" {
		t.Errorf("top weakness = %q", got.Weaknesses[0].Title)
	}

	if len(got.Fixes) != 3 {
		t.Fatalf("fix count = %d, want 3", len(got.Fixes))
	}
	if got.Fixes[0].Priority != scoring.SeverityCritical {
		t.Errorf("top fix priority = %v, want critical", got.Fixes[0].Priority)
	}
	if got.Improvement.CriticalFixes != 2 || got.Improvement.HighFixes != 1 {
		t.Errorf("critical/high fixes = %d/%d, want 2/1", got.Improvement.CriticalFixes, got.Improvement.HighFixes)
	}
	if got.Improvement.ImprovementPossible != 40 {
		t.Errorf("improvement possible = %v, want 40", got.Improvement.ImprovementPossible)
	}
	if got.Improvement.EffortRequired != "high" {
		t.Errorf("effort = %q, want high", got.Improvement.EffortRequired)
	}
}

func TestMismatchExplanation(t *testing.T) {
	got := newEngine().AnalyzeResume(Input{
		ResumeText:      frontendResume,
		TargetRole:      "full stack developer",
		PredictedCareer: "frontend developer",
		DetectedSkills:  []string{"react", "html", "css"},
	})

	if !strings.Contains(got.Explanation, "You're targeting Full Stack Developer") {
		t.Errorf("explanation missing mismatch framing: %q", got.Explanation)
	}
	if !strings.Contains(got.Explanation, "1. Missing required skills: javascript") {
		t.Errorf("explanation missing ranked reasons: %q", got.Explanation)
	}
	if !strings.Contains(got.Explanation, "Most critical issue: Missing Essential Skills") {
		t.Errorf("explanation missing top weakness: %q", got.Explanation)
	}
}

func TestMatchExplanationIsPositive(t *testing.T) {
	got := newEngine().AnalyzeResume(Input{
		ResumeText:      frontendResume,
		TargetRole:      "frontend developer",
		PredictedCareer: "frontend developer",
		DetectedSkills:  []string{"react", "html", "css"},
	})

	if got.IsMismatch {
		t.Error("identical target and predicted role must not be a mismatch")
	}
	if !strings.Contains(got.Explanation, "well-aligned") {
		t.Errorf("match explanation = %q, want positive confirmation", got.Explanation)
	}
}

func TestSkillLadder(t *testing.T) {
	tests := []struct {
		name       string
		skill      string
		text       string
		wantLevel  string
		wantPct    int
		wantYears  bool
		wantExtras []string
	}{
		{
			name: "explicit five years is expert", skill: "python",
			text: "5 years of experience with python", wantLevel: LevelExpert, wantPct: 95, wantYears: true,
		},
		{
			name: "three years is advanced", skill: "python",
			text: "3 years python", wantLevel: LevelAdvanced, wantPct: 80, wantYears: true,
		},
		{
			name: "one year is intermediate", skill: "python",
			text: "1 year of python", wantLevel: LevelIntermediate, wantPct: 60, wantYears: true,
		},
		{
			name: "project usage is basic", skill: "react",
			text: "built a dashboard using react", wantLevel: LevelBasic, wantPct: 40,
			wantExtras: []string{"Used in projects"},
		},
		{
			name: "project usage plus certification is intermediate", skill: "aws",
			text: "built a pipeline using aws and certified in aws", wantLevel: LevelIntermediate, wantPct: 60,
			wantExtras: []string{"Used in projects", "Certified"},
		},
		{
			name: "three bare mentions is basic", skill: "java",
			text: "java java java", wantLevel: LevelBasic, wantPct: 40,
		},
		{
			name: "single mention is mentioned", skill: "kotlin",
			text: "kotlin", wantLevel: LevelMentioned, wantPct: 20,
		},
		{
			name: "five mentions boost percentage but not level", skill: "go",
			text: "go go go go go", wantLevel: LevelBasic, wantPct: 50,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analyzeSingleSkill(tt.skill, tt.text)
			if got.Level != tt.wantLevel {
				t.Errorf("level = %q, want %q", got.Level, tt.wantLevel)
			}
			if got.Percentage != tt.wantPct {
				t.Errorf("percentage = %d, want %d", got.Percentage, tt.wantPct)
			}
			if (got.YearsExperience != nil) != tt.wantYears {
				t.Errorf("years present = %v, want %v", got.YearsExperience != nil, tt.wantYears)
			}
			if tt.wantExtras != nil && !reflect.DeepEqual(got.Evidence, tt.wantExtras) {
				t.Errorf("evidence = %v, want %v", got.Evidence, tt.wantExtras)
			}
		})
	}
}

func TestProjectComplexity(t *testing.T) {
	e := newEngine()

	toy := e.analyzeSingleProject("- Todo list calculator clone from a tutorial")
	if toy.Complexity != "low" {
		t.Errorf("toy project complexity = %q (score %d), want low", toy.Complexity, toy.ComplexityScore)
	}
	if toy.ComplexityScore != 10 {
		t.Errorf("toy project score = %d, want clamped floor 10", toy.ComplexityScore)
	}

	serious := e.analyzeSingleProject("- Order platform with microservices, high availability, authentication, rest api and deployment")
	if serious.Complexity != "high" {
		t.Errorf("serious project complexity = %q (score %d), want high", serious.Complexity, serious.ComplexityScore)
	}
	if serious.ComplexityScore != 100 {
		t.Errorf("serious project score = %d, want capped 100", serious.ComplexityScore)
	}
}

func TestProjectTypeClassification(t *testing.T) {
	e := newEngine()

	full := e.analyzeSingleProject("- Storefront built with react and node.js on postgresql")
	if full.ProjectType != "fullstack" {
		t.Errorf("react+node.js+postgresql type = %q, want fullstack", full.ProjectType)
	}

	mobile := e.analyzeSingleProject("- Fitness tracker with flutter and dart widgets")
	if mobile.ProjectType != "mobile" {
		t.Errorf("flutter project type = %q, want mobile", mobile.ProjectType)
	}
}

func TestExperienceQuality(t *testing.T) {
	e := newEngine()
	report := e.analyzeExperience("senior engineer. built and led team of 5 developers, cut latency with a 20% improvement")

	if report.SeniorityLevel != "senior" {
		t.Errorf("seniority = %q, want senior", report.SeniorityLevel)
	}
	if !reflect.DeepEqual(report.StrongActionVerbs, []string{"built", "led"}) {
		t.Errorf("strong verbs = %v, want [built led]", report.StrongActionVerbs)
	}
	wantImpact := []string{"percentage improvements", "team leadership"}
	if !reflect.DeepEqual(report.ImpactStatements, wantImpact) {
		t.Errorf("impact statements = %v, want %v", report.ImpactStatements, wantImpact)
	}
	// 50 base + 2 strong verbs x5 + 2 impact statements x10
	if report.QualityScore != 80 {
		t.Errorf("quality = %d, want 80", report.QualityScore)
	}
	if !report.HasQuantifiedAchievements {
		t.Error("expected quantified achievements")
	}
	if report.VerbRatio != 1.0 {
		t.Errorf("verb ratio = %v, want 1.0", report.VerbRatio)
	}
}

func TestUnknownRoleGetsEmptyProfile(t *testing.T) {
	got := newEngine().AnalyzeResume(Input{
		ResumeText:      "plain text",
		TargetRole:      "quantum gardener",
		PredictedCareer: "quantum gardener",
	})

	// No requirements: skills/groups/categories contribute nothing, the
	// project gate passes vacuously for its 10%.
	if got.CareerMatch.OverallMatchScore != 10 {
		t.Errorf("overall match = %v, want 10", got.CareerMatch.OverallMatchScore)
	}
	if !got.CareerMatch.HasRequiredProjects {
		t.Error("empty project requirements must pass the gate")
	}
	if got.Scores.Grade != "F" {
		t.Errorf("grade = %q, want F", got.Scores.Grade)
	}
}

func TestAnalyzeResumeIdempotent(t *testing.T) {
	e := newEngine()
	in := Input{
		ResumeText:      frontendResume,
		TargetRole:      "full stack developer",
		PredictedCareer: "frontend developer",
		DetectedSkills:  []string{"react", "html", "css"},
	}
	first := e.AnalyzeResume(in)
	second := e.AnalyzeResume(in)
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different results")
	}
}

func weaknessTitles(ws []Weakness) []string {
	titles := make([]string, len(ws))
	for i, w := range ws {
		titles[i] = w.Title
	}
	return titles
}
