package deepintel

import (
	"fmt"
	"sort"
	"strings"

	"skillfit/internal/scoring"
)

// Weakness kinds drive fix templating.
const (
	weaknessSkillsNoEvidence = "skills_no_evidence"
	weaknessMissingMustHave  = "missing_must_have"
	weaknessWeakCategory     = "weak_category"
	weaknessNoFullstack      = "no_fullstack"
	weaknessBasicProjects    = "basic_projects"
	weaknessVagueExperience  = "vague_experience"
	weaknessNoMetrics        = "no_metrics"
)

// Weakness is one concrete problem found in the resume, always reported
// with the text it affects and a suggested rewrite.
type Weakness struct {
	Category     string           `json:"category"`
	Severity     scoring.Severity `json:"severity"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	CurrentText  string           `json:"current_text"`
	SuggestedFix string           `json:"suggested_fix"`
	Impact       string           `json:"impact"`

	kind string
}

// findWeaknesses runs the fixed rule battery and returns the results
// sorted critical first.
func (e *Engine) findWeaknesses(targetRole string, skills SkillReport, projects ProjectReport, experience ExperienceReport, match CareerMatch) []Weakness {
	var weaknesses []Weakness

	if len(skills.SkillsJustListed) >= 3 {
		severity := scoring.SeverityHigh
		if len(skills.SkillsJustListed) > 5 {
			severity = scoring.SeverityCritical
		}
		sample := firstN(skills.SkillsJustListed, 5)
		weaknesses = append(weaknesses, Weakness{
			kind:     weaknessSkillsNoEvidence,
			Category: "skills",
			Severity: severity,
			Title:    "Skills Listed Without Evidence",
			Description: fmt.Sprintf("You list %d skills (%s) without demonstrating usage in projects or experience.",
				len(skills.SkillsJustListed), strings.Join(sample, ", ")),
			CurrentText:  fmt.Sprintf("Skills: %s...", strings.Join(sample, ", ")),
			SuggestedFix: "Add projects or experience entries that demonstrate these skills in action.",
			Impact:       "Recruiters may see this as keyword stuffing and question your actual proficiency.",
		})
	}

	if len(match.MustHave.Missing) > 0 {
		weaknesses = append(weaknesses, Weakness{
			kind:         weaknessMissingMustHave,
			Category:     "skills",
			Severity:     scoring.SeverityCritical,
			Title:        fmt.Sprintf("Missing Essential Skills for %s", titleCase(targetRole)),
			Description:  fmt.Sprintf("You are missing core skills required for this role: %s", strings.Join(match.MustHave.Missing, ", ")),
			SuggestedFix: fmt.Sprintf("Learn and add experience with: %s", strings.Join(match.MustHave.Missing, ", ")),
			Impact:       "Without these skills, your resume won't pass initial screening for this role.",
		})
	}

	requirements, _ := e.kb.Requirements(targetRole)
	for _, cw := range requirements.Categories {
		strength := skills.CategoryStrengths[cw.Name]
		if strength.Strength != "weak" || cw.Weight < 0.2 {
			continue
		}
		weightPct := int(cw.Weight * 100)
		severity := scoring.SeverityMedium
		if weightPct >= 30 {
			severity = scoring.SeverityHigh
		}
		humanized := strings.ReplaceAll(cw.Name, "_", " ")
		weaknesses = append(weaknesses, Weakness{
			kind:     weaknessWeakCategory,
			Category: "skills",
			Severity: severity,
			Title:    fmt.Sprintf("Weak %s Skills", titleCase(humanized)),
			Description: fmt.Sprintf("Your %s skills only score %d%%, but this category represents %d%% of the role requirements.",
				humanized, strength.ActualScore, weightPct),
			CurrentText:  fmt.Sprintf("%s skills: %d found", titleCase(humanized), strength.SkillsCount),
			SuggestedFix: fmt.Sprintf("Add more %s skills and demonstrate them in projects.", humanized),
			Impact:       fmt.Sprintf("This gap directly affects your match score for %s.", titleCase(targetRole)),
		})
	}

	if !projects.HasFullstackProject && strings.Contains(targetRole, "full stack") {
		weaknesses = append(weaknesses, Weakness{
			kind:         weaknessNoFullstack,
			Category:     "projects",
			Severity:     scoring.SeverityCritical,
			Title:        "No Full Stack Project Evidence",
			Description:  "For a Full Stack Developer role, you need projects showing both frontend AND backend work together.",
			CurrentText:  "Your projects appear to be frontend-only or backend-only.",
			SuggestedFix: "Add a project that combines React/Vue + Node.js/Django + Database",
			Impact:       "Without full-stack project evidence, you'll be classified as a specialized developer, not full-stack.",
		})
	}

	if projects.ComplexityDistribution["low"] > projects.ComplexityDistribution["medium"] {
		weaknesses = append(weaknesses, Weakness{
			kind:         weaknessBasicProjects,
			Category:     "projects",
			Severity:     scoring.SeverityMedium,
			Title:        "Projects Are Too Basic",
			Description:  "Most of your projects appear to be beginner-level (todo apps, calculators, clones).",
			CurrentText:  "Detected simple/tutorial projects",
			SuggestedFix: "Add projects with authentication, API integrations, database design, or deployment.",
			Impact:       "Basic projects don't demonstrate your ability to handle real-world complexity.",
		})
	}

	if len(experience.WeakActionVerbs) > 0 {
		weaknesses = append(weaknesses, Weakness{
			kind:         weaknessVagueExperience,
			Category:     "experience",
			Severity:     scoring.SeverityMedium,
			Title:        "Vague Experience Descriptions",
			Description:  fmt.Sprintf("Your experience uses weak phrases like: %s", strings.Join(firstN(experience.WeakActionVerbs, 3), ", ")),
			CurrentText:  `Found: "worked on", "helped with", "assisted"`,
			SuggestedFix: `Replace with strong action verbs: "Built", "Developed", "Led", "Implemented"`,
			Impact:       "Vague descriptions make it hard for recruiters to understand your actual contributions.",
		})
	}

	if !experience.HasQuantifiedAchievements {
		weaknesses = append(weaknesses, Weakness{
			kind:         weaknessNoMetrics,
			Category:     "experience",
			Severity:     scoring.SeverityHigh,
			Title:        "No Quantified Achievements",
			Description:  "Your experience lacks measurable results (percentages, numbers, dollar amounts).",
			CurrentText:  "No metrics found in experience descriptions",
			SuggestedFix: `Add metrics: "Reduced API response time by 40%", "Serving 10K users"`,
			Impact:       "Quantified achievements are 3x more likely to catch recruiter attention.",
		})
	}

	sort.SliceStable(weaknesses, func(i, j int) bool {
		return severityLess(weaknesses[i].Severity, weaknesses[j].Severity)
	})
	return weaknesses
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// titleCase upper-cases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
