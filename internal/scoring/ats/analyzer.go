// Package ats scores how well a resume survives an applicant tracking
// system: keyword coverage for the predicted career, canonical section
// presence, and contact-format checks, blended into one 0-100 score.
package ats

import (
	"strings"

	"skillfit/internal/knowledge"
	"skillfit/internal/scoring"
)

// Section names checked in order.
var sectionChecks = []struct {
	Name     string
	Keywords []string
}{
	{"Contact", []string{"email", "phone", "linkedin"}},
	{"Summary", []string{"summary", "objective", "profile"}},
	{"Experience", []string{"experience", "work"}},
	{"Education", []string{"education", "degree", "university"}},
	{"Skills", []string{"skills"}},
}

// Status is the human-readable verdict for an overall score.
type Status struct {
	Label string `json:"label"`
	Emoji string `json:"emoji"`
}

// KeywordAnalysis reports career-keyword coverage.
type KeywordAnalysis struct {
	Score   int      `json:"score"`
	Found   []string `json:"found"`
	Missing []string `json:"missing"`
}

// SectionCheck records whether one canonical section is present.
type SectionCheck struct {
	Name    string `json:"name"`
	Present bool   `json:"present"`
}

// SectionAnalysis reports canonical section coverage.
type SectionAnalysis struct {
	Score    int            `json:"score"`
	Sections []SectionCheck `json:"sections"`
}

// FormatAnalysis reports contact-format checks.
type FormatAnalysis struct {
	Score    int  `json:"score"`
	HasEmail bool `json:"has_email"`
	HasPhone bool `json:"has_phone"`
}

// Result is the full ATS verdict.
type Result struct {
	OverallScore    int             `json:"overall_score"`
	Status          Status          `json:"status"`
	Keywords        KeywordAnalysis `json:"keyword_analysis"`
	Sections        SectionAnalysis `json:"section_analysis"`
	Format          FormatAnalysis  `json:"format_analysis"`
	PredictedCareer string          `json:"predicted_career"`
}

// Analyzer runs ATS compatibility checks against the shared knowledge base.
type Analyzer struct {
	kb *knowledge.Base
}

func NewAnalyzer(kb *knowledge.Base) *Analyzer {
	return &Analyzer{kb: kb}
}

// Analyze never fails: empty text yields floor scores, an unknown career
// yields full keyword coverage (there is nothing to miss).
func (a *Analyzer) Analyze(resumeText string, detectedSkills []string, predictedCareer string) Result {
	lower := strings.ToLower(resumeText)

	keywords := a.analyzeKeywords(lower, predictedCareer)
	sections := analyzeSections(lower)
	format := analyzeFormat(resumeText)

	overall := scoring.RoundInt(
		float64(keywords.Score)*0.4 +
			float64(sections.Score)*0.3 +
			float64(format.Score)*0.3,
	)

	return Result{
		OverallScore:    overall,
		Status:          statusFor(overall),
		Keywords:        keywords,
		Sections:        sections,
		Format:          format,
		PredictedCareer: predictedCareer,
	}
}

func (a *Analyzer) analyzeKeywords(lower, predictedCareer string) KeywordAnalysis {
	targets := a.kb.ATSCareerKeywords(predictedCareer)
	if len(targets) == 0 {
		return KeywordAnalysis{Score: 100, Found: []string{}, Missing: []string{}}
	}

	found := make([]string, 0, len(targets))
	missing := make([]string, 0, len(targets))
	for _, kw := range targets {
		if strings.Contains(lower, kw) {
			found = append(found, kw)
		} else {
			missing = append(missing, kw)
		}
	}

	score := scoring.Clamp(scoring.Ratio(len(found), len(targets))*100, 0, 100)
	return KeywordAnalysis{
		Score:   scoring.RoundInt(score),
		Found:   found,
		Missing: missing,
	}
}

func analyzeSections(lower string) SectionAnalysis {
	checks := make([]SectionCheck, 0, len(sectionChecks))
	present := 0
	for _, sc := range sectionChecks {
		ok := false
		for _, kw := range sc.Keywords {
			if strings.Contains(lower, kw) {
				ok = true
				break
			}
		}
		if ok {
			present++
		}
		checks = append(checks, SectionCheck{Name: sc.Name, Present: ok})
	}

	score := scoring.Ratio(present, len(sectionChecks)) * 100
	return SectionAnalysis{Score: scoring.RoundInt(score), Sections: checks}
}

func analyzeFormat(text string) FormatAnalysis {
	hasEmail := knowledge.EmailPattern.MatchString(text)
	hasPhone := knowledge.LoosePhonePattern.MatchString(text)

	score := 50
	if hasEmail {
		score += 25
	}
	if hasPhone {
		score += 25
	}
	return FormatAnalysis{Score: score, HasEmail: hasEmail, HasPhone: hasPhone}
}

func statusFor(score int) Status {
	switch {
	case score >= 80:
		return Status{Label: "Excellent", Emoji: "🌟"}
	case score >= 60:
		return Status{Label: "Good", Emoji: "✅"}
	case score >= 40:
		return Status{Label: "Needs Work", Emoji: "⚠️"}
	default:
		return Status{Label: "Poor", Emoji: "❌"}
	}
}
