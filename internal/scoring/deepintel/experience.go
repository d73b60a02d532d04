package deepintel

import (
	"strconv"

	"skillfit/internal/knowledge"
	"skillfit/internal/scoring"
)

// ExperienceReport grades the experience narrative: tenure, seniority
// signals, verb strength and quantified impact.
type ExperienceReport struct {
	TotalYears                int      `json:"total_years"`
	SeniorityLevel            string   `json:"seniority_level"`
	StrongActionVerbs         []string `json:"strong_action_verbs"`
	WeakActionVerbs           []string `json:"weak_action_verbs"`
	ImpactStatements          []string `json:"impact_statements"`
	QualityScore              int      `json:"quality_score"`
	HasQuantifiedAchievements bool     `json:"has_quantified_achievements"`
	VerbRatio                 float64  `json:"verb_ratio"`
}

func (e *Engine) analyzeExperience(lower string) ExperienceReport {
	totalYears := 0
	for _, m := range knowledge.YearsOfExperiencePattern.FindAllStringSubmatch(lower, -1) {
		if y, err := strconv.Atoi(m[1]); err == nil && y > totalYears {
			totalYears = y
		}
	}

	seniority := "unknown"
	for _, tier := range knowledge.SeniorityTiers {
		if anyContained(lower, knowledge.SeniorityKeywords[tier]) {
			seniority = tier
			break
		}
	}

	var strongVerbs, weakVerbs []string
	for _, vp := range e.strongVerbs {
		if vp.pattern.MatchString(lower) {
			strongVerbs = append(strongVerbs, vp.verb)
		}
	}
	for _, vp := range e.weakVerbs {
		if vp.pattern.MatchString(lower) {
			weakVerbs = append(weakVerbs, vp.verb)
		}
	}

	var impactStatements []string
	if knowledge.ImpactPercentagePattern.MatchString(lower) {
		impactStatements = append(impactStatements, "percentage improvements")
	}
	if knowledge.ImpactRevenuePattern.MatchString(lower) {
		impactStatements = append(impactStatements, "revenue/cost impact")
	}
	if knowledge.ImpactScalePattern.MatchString(lower) {
		impactStatements = append(impactStatements, "scale metrics")
	}
	if knowledge.ImpactTeamSizePattern.MatchString(lower) {
		impactStatements = append(impactStatements, "team leadership")
	}

	quality := 50
	quality += len(strongVerbs) * 5
	quality -= len(weakVerbs) * 3
	quality += len(impactStatements) * 10
	quality += min(totalYears*3, 30)
	quality = int(scoring.Clamp(float64(quality), 0, 100))

	verbDenom := len(strongVerbs) + len(weakVerbs)
	if verbDenom == 0 {
		verbDenom = 1
	}

	return ExperienceReport{
		TotalYears:                totalYears,
		SeniorityLevel:            seniority,
		StrongActionVerbs:         strongVerbs,
		WeakActionVerbs:           weakVerbs,
		ImpactStatements:          impactStatements,
		QualityScore:              quality,
		HasQuantifiedAchievements: len(impactStatements) > 0,
		VerbRatio:                 float64(len(strongVerbs)) / float64(verbDenom),
	}
}
