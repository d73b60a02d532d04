package deepintel

import "math"

// Scores is the weighted score rollup: career match 30%, skill depth
// 25%, evidence 20%, projects 15%, experience 10%.
type Scores struct {
	OverallMatch    float64 `json:"overall_match"`
	SkillDepth      float64 `json:"skill_depth"`
	EvidenceScore   float64 `json:"evidence_score"`
	ProjectScore    float64 `json:"project_score"`
	ExperienceScore float64 `json:"experience_score"`
	Overall         float64 `json:"overall"`
	Grade           string  `json:"grade"`
}

func calculateScores(skills SkillReport, projects ProjectReport, experience ExperienceReport, match CareerMatch) Scores {
	skillDepth := 0.0
	if len(skills.Categories) > 0 {
		total := 0
		for _, depth := range skills.Categories {
			total += depth.DepthScore
		}
		skillDepth = float64(total) / float64(len(skills.Categories))
	}

	evidenceScore := skills.EvidenceRatio * 100

	projectScore := 0.0
	if projects.TotalProjects > 0 {
		dist := projects.ComplexityDistribution
		projectScore = float64(dist["high"]*100+dist["medium"]*70+dist["low"]*30) / float64(projects.TotalProjects)
	}

	experienceScore := float64(experience.QualityScore)
	overallMatch := match.OverallMatchScore

	overall := overallMatch*0.30 + skillDepth*0.25 + evidenceScore*0.20 + projectScore*0.15 + experienceScore*0.10

	grade := "F"
	switch {
	case overall >= 85:
		grade = "A"
	case overall >= 70:
		grade = "B"
	case overall >= 55:
		grade = "C"
	case overall >= 40:
		grade = "D"
	}

	return Scores{
		OverallMatch:    round1(overallMatch),
		SkillDepth:      round1(skillDepth),
		EvidenceScore:   round1(evidenceScore),
		ProjectScore:    round1(projectScore),
		ExperienceScore: round1(experienceScore),
		Overall:         round1(overall),
		Grade:           grade,
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
