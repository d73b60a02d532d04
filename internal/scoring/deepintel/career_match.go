package deepintel

import (
	"fmt"
	"strings"
)

// MustHaveSkills reports coverage of a role's non-negotiable skills.
type MustHaveSkills struct {
	Required []string `json:"required"`
	Met      []string `json:"met"`
	Missing  []string `json:"missing"`
	Score    float64  `json:"score"`
}

// ShouldHaveGroup is one alternatives list; having any one member
// satisfies the group.
type ShouldHaveGroup struct {
	Options   []string `json:"options"`
	Satisfied bool     `json:"satisfied"`
	Found     []string `json:"found"`
}

// ShouldHaveSkills reports how many alternative groups are covered.
type ShouldHaveSkills struct {
	Groups    []ShouldHaveGroup `json:"groups"`
	Satisfied int               `json:"satisfied"`
	Total     int               `json:"total"`
	Score     float64           `json:"score"`
}

// CareerMatch scores the resume against the target role's requirement
// profile and records why it falls short.
type CareerMatch struct {
	TargetRole          string           `json:"target_role"`
	PredictedCareer     string           `json:"predicted_career"`
	IsMatch             bool             `json:"is_match"`
	OverallMatchScore   float64          `json:"overall_match_score"`
	MustHave            MustHaveSkills   `json:"must_have_skills"`
	ShouldHave          ShouldHaveSkills `json:"should_have_skills"`
	CategoryScore       float64          `json:"category_score"`
	HasRequiredProjects bool             `json:"has_required_projects"`
	MismatchReasons     []string         `json:"mismatch_reasons"`
}

// analyzeCareerMatch blends must-have coverage (30%), should-have group
// satisfaction (30%), weighted category strength (30%) and a project
// gate (10%, half credit when unmet).
func (e *Engine) analyzeCareerMatch(targetRole, predictedCareer string, skills SkillReport, projects ProjectReport) CareerMatch {
	requirements, _ := e.kb.Requirements(targetRole)

	skillNames := make(map[string]struct{}, len(skills.SkillDetails))
	for _, detail := range skills.SkillDetails {
		skillNames[strings.ToLower(detail.Name)] = struct{}{}
	}
	hasSkill := func(s string) bool {
		_, ok := skillNames[s]
		return ok
	}

	mustHave := MustHaveSkills{Required: requirements.MustHave}
	for _, s := range requirements.MustHave {
		if hasSkill(s) {
			mustHave.Met = append(mustHave.Met, s)
		} else {
			mustHave.Missing = append(mustHave.Missing, s)
		}
	}
	mustHaveDenom := max(len(requirements.MustHave), 1)
	mustHaveScore := float64(len(mustHave.Met)) / float64(mustHaveDenom) * 100
	mustHave.Score = round1(mustHaveScore)

	shouldHave := ShouldHaveSkills{Total: len(requirements.ShouldHaveOneOf)}
	for _, group := range requirements.ShouldHaveOneOf {
		detail := ShouldHaveGroup{Options: group}
		for _, s := range group {
			if hasSkill(s) {
				detail.Found = append(detail.Found, s)
			}
		}
		detail.Satisfied = len(detail.Found) > 0
		if detail.Satisfied {
			shouldHave.Satisfied++
		}
		shouldHave.Groups = append(shouldHave.Groups, detail)
	}
	shouldHaveDenom := max(shouldHave.Total, 1)
	shouldHaveScore := float64(shouldHave.Satisfied) / float64(shouldHaveDenom) * 100
	shouldHave.Score = round1(shouldHaveScore)

	categoryScore := 0.0
	for _, cw := range requirements.Categories {
		categoryScore += float64(skills.CategoryStrengths[cw.Name].ActualScore) * cw.Weight
	}

	hasRequiredProjects := true
	if requirements.Projects.MinComplexity == "high" && !projects.HasHighComplexity {
		hasRequiredProjects = false
	}
	if t := requirements.Projects.MinType; t != "" && projects.ProjectTypes[t] < requirements.Projects.MinCount {
		hasRequiredProjects = false
	}

	projectCredit := 50.0
	if hasRequiredProjects {
		projectCredit = 100
	}
	overall := mustHaveScore*0.3 + shouldHaveScore*0.3 + categoryScore*0.3 + projectCredit*0.1

	var reasons []string
	if len(mustHave.Missing) > 0 {
		reasons = append(reasons, fmt.Sprintf("Missing required skills: %s", strings.Join(mustHave.Missing, ", ")))
	}
	var weakCategories []string
	for _, cw := range requirements.Categories {
		strength := skills.CategoryStrengths[cw.Name]
		if strength.Strength == "weak" && cw.Weight > 0.2 {
			weakCategories = append(weakCategories, cw.Name)
		}
	}
	if len(weakCategories) > 0 {
		reasons = append(reasons, fmt.Sprintf("Weak in required categories: %s", strings.Join(weakCategories, ", ")))
	}
	if !hasRequiredProjects {
		reasons = append(reasons, "Missing required project experience")
	}

	return CareerMatch{
		TargetRole:          targetRole,
		PredictedCareer:     predictedCareer,
		IsMatch:             targetRole == predictedCareer,
		OverallMatchScore:   round1(overall),
		MustHave:            mustHave,
		ShouldHave:          shouldHave,
		CategoryScore:       round1(categoryScore),
		HasRequiredProjects: hasRequiredProjects,
		MismatchReasons:     reasons,
	}
}
