package analyses

import (
	"strings"
	"testing"

	"skillfit/internal/knowledge"
)

const sampleResume = `Jane Roe
jane.roe@example.com | +1 555-123-4567
linkedin.com/in/janeroe | github.com/janeroe

Education
BSc Computer Science, State University
May 2019 - May 2023

Experience
Data Scientist at Acme Corp
Jun 2023 - Present
Built machine learning pipelines with Python, TensorFlow and scikit-learn.
Queried SQL warehouses with pandas and numpy for statistics reporting.

Projects
Churn Prediction
Deep learning model serving 10k users, deployed with Docker.

Skills
Python, SQL, TensorFlow, pandas, numpy, scikit-learn, machine learning, statistics, deep learning, docker
`

func TestDetectSkillsUsesWordBoundaries(t *testing.T) {
	e := NewExtractor(knowledge.Default())

	skills := e.DetectSkills("Experienced with Google Cloud and Django deployments.")
	if hasSkill(skills, "go") {
		t.Fatalf("expected 'go' not to match inside 'google', got %v", skills)
	}
	if !hasSkill(skills, "google cloud") {
		t.Fatalf("expected google cloud in %v", skills)
	}
	if !hasSkill(skills, "django") {
		t.Fatalf("expected django in %v", skills)
	}
}

func TestDetectSkillsIsDeterministic(t *testing.T) {
	e := NewExtractor(knowledge.Default())
	first := e.DetectSkills(sampleResume)
	second := e.DetectSkills(sampleResume)
	if strings.Join(first, ",") != strings.Join(second, ",") {
		t.Fatalf("expected stable order, got %v then %v", first, second)
	}
	for _, want := range []string{"python", "sql", "tensorflow", "pandas", "docker"} {
		if !hasSkill(first, want) {
			t.Fatalf("expected %s in %v", want, first)
		}
	}
}

func TestPredictCareer(t *testing.T) {
	e := NewExtractor(knowledge.Default())

	skills := e.DetectSkills(sampleResume)
	if got := e.PredictCareer(skills); got != "data scientist" {
		t.Fatalf("expected data scientist, got %q", got)
	}
	if got := e.PredictCareer(nil); got != "Software Developer" {
		t.Fatalf("expected fallback prediction, got %q", got)
	}
}

func TestBuildFactsExtractsContactAndSections(t *testing.T) {
	e := NewExtractor(knowledge.Default())
	skills := e.DetectSkills(sampleResume)
	facts := e.BuildFacts(sampleResume, skills)

	if facts.Contact.Email != "jane.roe@example.com" {
		t.Fatalf("unexpected email: %q", facts.Contact.Email)
	}
	if facts.Contact.Phone == "" {
		t.Fatalf("expected phone extracted")
	}
	if facts.Contact.LinkedIn == "" || facts.Contact.GitHub == "" {
		t.Fatalf("expected linkedin and github detected")
	}
	if !strings.Contains(facts.EducationText, "Computer Science") {
		t.Fatalf("unexpected education text: %q", facts.EducationText)
	}
	if strings.Contains(facts.EducationText, "Acme Corp") {
		t.Fatalf("education section should stop at next header: %q", facts.EducationText)
	}
	if len(facts.Projects) != 1 {
		t.Fatalf("expected one project, got %d", len(facts.Projects))
	}
	if facts.Projects[0].Title != "Churn Prediction" {
		t.Fatalf("unexpected project title: %q", facts.Projects[0].Title)
	}
	if len(facts.Projects[0].Technologies) == 0 {
		t.Fatalf("expected technologies detected in project section")
	}
	if len(facts.Experiences) != 1 {
		t.Fatalf("expected one experience, got %d", len(facts.Experiences))
	}
	if facts.Experiences[0].Duration == "" {
		t.Fatalf("expected duration extracted")
	}
}

func TestBuildFactsBucketsSkills(t *testing.T) {
	e := NewExtractor(knowledge.Default())
	facts := e.BuildFacts(sampleResume, []string{"python", "sql", "tensorflow", "docker", "teamwork"})

	if !hasSkill(facts.SkillData.Languages, "python") || !hasSkill(facts.SkillData.Languages, "sql") {
		t.Fatalf("unexpected languages: %v", facts.SkillData.Languages)
	}
	if !hasSkill(facts.SkillData.Frameworks, "tensorflow") {
		t.Fatalf("unexpected frameworks: %v", facts.SkillData.Frameworks)
	}
	if !hasSkill(facts.SkillData.Tools, "docker") {
		t.Fatalf("unexpected tools: %v", facts.SkillData.Tools)
	}
	if !hasSkill(facts.SkillData.SoftSkills, "teamwork") {
		t.Fatalf("unexpected soft skills: %v", facts.SkillData.SoftSkills)
	}
}

func TestBuildFactsHandlesBareText(t *testing.T) {
	e := NewExtractor(knowledge.Default())
	facts := e.BuildFacts("just a paragraph of text with no structure", nil)

	if facts.Contact.Email != "" {
		t.Fatalf("expected no email, got %q", facts.Contact.Email)
	}
	if facts.EducationText != "" {
		t.Fatalf("expected no education section, got %q", facts.EducationText)
	}
	if len(facts.Projects) != 0 || len(facts.Experiences) != 0 {
		t.Fatalf("expected no projects or experiences")
	}
}

func hasSkill(skills []string, want string) bool {
	for _, s := range skills {
		if s == want {
			return true
		}
	}
	return false
}
