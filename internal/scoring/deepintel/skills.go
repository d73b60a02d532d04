package deepintel

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Proficiency levels, weakest first.
const (
	LevelMentioned    = "mentioned"
	LevelBasic        = "basic"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
	LevelExpert       = "expert"
)

// SkillAnalysis grades one skill on the evidence ladder.
type SkillAnalysis struct {
	Name            string   `json:"name"`
	Level           string   `json:"level"`
	Percentage      int      `json:"percentage"`
	Evidence        []string `json:"evidence"`
	Mentions        int      `json:"mentions"`
	YearsExperience *float64 `json:"years_experience,omitempty"`
}

// CategoryDepth aggregates the analyzed skills falling in one skill
// category.
type CategoryDepth struct {
	SkillsCount int             `json:"skills_count"`
	DepthScore  int             `json:"depth_score"`
	Skills      []SkillAnalysis `json:"skills"`
}

// CategoryStrength relates a category's actual depth to the weight the
// target role places on it.
type CategoryStrength struct {
	RequiredWeight float64 `json:"required_weight"`
	ActualScore    int     `json:"actual_score"`
	SkillsCount    int     `json:"skills_count"`
	Strength       string  `json:"strength"`
}

// SkillReport is the full skill-depth breakdown.
type SkillReport struct {
	Categories         map[string]CategoryDepth    `json:"categories"`
	CategoryStrengths  map[string]CategoryStrength `json:"category_strengths"`
	SkillsJustListed   []string                    `json:"skills_just_listed"`
	SkillsWithEvidence []string                    `json:"skills_with_evidence"`
	SkillDetails       []SkillAnalysis             `json:"skill_details"`
	TotalSkills        int                         `json:"total_skills"`
	EvidenceRatio      float64                     `json:"evidence_ratio"`
}

func (e *Engine) analyzeSkills(lower string, detectedSkills []string, targetRole string) SkillReport {
	report := SkillReport{
		Categories:        map[string]CategoryDepth{},
		CategoryStrengths: map[string]CategoryStrength{},
		TotalSkills:       len(detectedSkills),
	}

	// Dedupe while keeping first-seen order so the report is stable.
	seen := make(map[string]struct{}, len(detectedSkills))
	for _, raw := range detectedSkills {
		skill := strings.ToLower(raw)
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}

		analysis := analyzeSingleSkill(skill, lower)
		report.SkillDetails = append(report.SkillDetails, analysis)
		if len(analysis.Evidence) > 0 {
			report.SkillsWithEvidence = append(report.SkillsWithEvidence, skill)
		} else {
			report.SkillsJustListed = append(report.SkillsJustListed, skill)
		}
	}

	for _, category := range e.kb.SkillCategories() {
		var found []SkillAnalysis
		totalDepth := 0
		for _, detail := range report.SkillDetails {
			if containsString(category.Skills, detail.Name) {
				found = append(found, detail)
				totalDepth += detail.Percentage
			}
		}
		if len(found) > 0 {
			report.Categories[category.Name] = CategoryDepth{
				SkillsCount: len(found),
				DepthScore:  totalDepth / len(found),
				Skills:      found,
			}
		}
	}

	requirements, _ := e.kb.Requirements(targetRole)
	for _, cw := range requirements.Categories {
		depth := report.Categories[cw.Name]
		strength := "weak"
		switch {
		case depth.DepthScore >= 60:
			strength = "strong"
		case depth.DepthScore >= 30:
			strength = "moderate"
		}
		report.CategoryStrengths[cw.Name] = CategoryStrength{
			RequiredWeight: cw.Weight,
			ActualScore:    depth.DepthScore,
			SkillsCount:    depth.SkillsCount,
			Strength:       strength,
		}
	}

	denom := len(detectedSkills)
	if denom == 0 {
		denom = 1
	}
	report.EvidenceRatio = float64(len(report.SkillsWithEvidence)) / float64(denom)
	return report
}

// analyzeSingleSkill walks the evidence ladder for one skill: explicit
// years of experience beat project usage and certification, which beat
// raw mention counts.
func analyzeSingleSkill(skill, lower string) SkillAnalysis {
	quoted := regexp.QuoteMeta(skill)
	mentions := len(regexp.MustCompile(`\b`+quoted+`\b`).FindAllString(lower, -1))

	var evidence []string
	var years *float64

	yearsPattern := regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?)\s*(?:of\s+)?(?:experience\s+)?(?:with\s+|in\s+)?` + quoted)
	if m := yearsPattern.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		y := float64(n)
		years = &y
		evidence = append(evidence, fmt.Sprintf("%d years experience", n))
	}

	projectPatterns := []string{
		`(?:built|developed|created|implemented|used|utilized)\s+(?:[\w\s]+\s+)?(?:with|using)\s+` + quoted,
		quoted + `\s+(?:for|in)\s+(?:production|enterprise|project)`,
		`(?:project|application|system)[\w\s]*` + quoted,
	}
	for _, p := range projectPatterns {
		if regexp.MustCompile(p).MatchString(lower) {
			evidence = append(evidence, "Used in projects")
			break
		}
	}

	certPatterns := []string{
		`(?:certified|certification)\s+(?:in\s+)?` + quoted,
		quoted + `\s+(?:certified|certification)`,
	}
	for _, p := range certPatterns {
		if regexp.MustCompile(p).MatchString(lower) {
			evidence = append(evidence, "Certified")
			break
		}
	}

	level := LevelMentioned
	percentage := 20
	switch {
	case years != nil && *years >= 5:
		level, percentage = LevelExpert, 95
	case years != nil && *years >= 3:
		level, percentage = LevelAdvanced, 80
	case years != nil && *years >= 1:
		level, percentage = LevelIntermediate, 60
	case len(evidence) >= 2:
		level, percentage = LevelIntermediate, 60
	case len(evidence) == 1:
		level, percentage = LevelBasic, 40
	case mentions >= 3:
		level, percentage = LevelBasic, 40
	}

	// Heavy repetition implies familiarity even without hard evidence.
	if mentions >= 5 && percentage < 80 {
		percentage = min(percentage+10, 80)
	}

	return SkillAnalysis{
		Name:            skill,
		Level:           level,
		Percentage:      percentage,
		Evidence:        evidence,
		Mentions:        mentions,
		YearsExperience: years,
	}
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
