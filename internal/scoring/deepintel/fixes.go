package deepintel

import (
	"fmt"
	"sort"
	"strings"

	"skillfit/internal/scoring"
)

// Fix is a templated, actionable recommendation with before/after text
// a candidate can copy from.
type Fix struct {
	Priority      scoring.Severity `json:"priority"`
	Category      string           `json:"category"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	ExampleBefore string           `json:"example_before"`
	ExampleAfter  string           `json:"example_after"`
	Effort        string           `json:"effort"`
}

// ImprovementPotential estimates how far the score could move if the
// suggested fixes were applied.
type ImprovementPotential struct {
	CurrentScore        float64 `json:"current_score"`
	PotentialScore      float64 `json:"potential_score"`
	ImprovementPossible float64 `json:"improvement_possible"`
	EffortRequired      string  `json:"effort_required"`
	FixesCount          int     `json:"fixes_count"`
	CriticalFixes       int     `json:"critical_fixes"`
	HighFixes           int     `json:"high_fixes"`
}

// generateFixes templates a fix for each weakness kind that has one,
// sorts critical first and keeps the top five. Weak-category and
// basic-project weaknesses intentionally have no template; their
// guidance lives in the weakness itself.
func (e *Engine) generateFixes(targetRole string, weaknesses []Weakness, skills SkillReport, match CareerMatch) []Fix {
	var fixes []Fix

	for _, weakness := range weaknesses {
		switch weakness.kind {
		case weaknessSkillsNoEvidence:
			listed := strings.Join(firstN(skills.SkillsJustListed, 3), ", ")
			fixes = append(fixes, Fix{
				Priority:    weakness.Severity,
				Category:    "projects",
				Title:       "Add Projects Demonstrating Listed Skills",
				Description: fmt.Sprintf("Create or document projects that use %s", listed),
				ExampleBefore: fmt.Sprintf(`Skills: %s

Projects:
• Portfolio Website
• Calculator App`, listed),
				ExampleAfter: fmt.Sprintf(`Skills: %s

Projects:
• E-commerce Platform | %s, PostgreSQL
  - Built full-stack e-commerce with user auth, cart, payments
  - Designed REST API with 20+ endpoints
  - Deployed on AWS with CI/CD pipeline`, listed, listed),
				Effort: "high",
			})

		case weaknessMissingMustHave:
			missing := strings.Join(firstN(match.MustHave.Missing, 3), ", ")
			fixes = append(fixes, Fix{
				Priority:      scoring.SeverityCritical,
				Category:      "skills",
				Title:         fmt.Sprintf("Learn and Add: %s", missing),
				Description:   fmt.Sprintf("These skills are required for %s", targetRole),
				ExampleBefore: "Skills: React, JavaScript, HTML",
				ExampleAfter:  fmt.Sprintf("Skills: React, JavaScript, HTML, %s", missing),
				Effort:        "medium",
			})

		case weaknessNoFullstack:
			fixes = append(fixes, Fix{
				Priority:    scoring.SeverityCritical,
				Category:    "projects",
				Title:       "Add a Full-Stack Project",
				Description: "Show frontend + backend + database skills together",
				ExampleBefore: `Projects:
• React Portfolio Website
• Todo App with React`,
				ExampleAfter: `Projects:
• E-commerce Platform | React, Node.js, MongoDB, Stripe
  - Built full-stack e-commerce with user auth, cart, payments
  - Designed REST API with 20+ endpoints using Express.js
  - Implemented MongoDB schema for products, users, orders
  - Deployed on AWS EC2 with Nginx reverse proxy`,
				Effort: "high",
			})

		case weaknessVagueExperience:
			fixes = append(fixes, Fix{
				Priority:    scoring.SeverityMedium,
				Category:    "experience",
				Title:       "Strengthen Experience Descriptions",
				Description: "Replace vague phrases with specific achievements",
				ExampleBefore: `• Worked on backend services
• Helped with database optimization
• Assisted team with deployments`,
				ExampleAfter: `• Built REST API with 15 endpoints using Express.js, handling 10K requests/day
• Optimized PostgreSQL queries, reducing response time by 40%
• Led deployment automation using GitHub Actions, cutting release time by 60%`,
				Effort: "low",
			})

		case weaknessNoMetrics:
			fixes = append(fixes, Fix{
				Priority:    scoring.SeverityHigh,
				Category:    "experience",
				Title:       "Add Metrics to Achievements",
				Description: "Quantify your impact with numbers",
				ExampleBefore: `• Improved application performance
• Built features for the product
• Managed team projects`,
				ExampleAfter: `• Improved API response time by 40%, reducing page load from 3s to 1.8s
• Built 5 core features used by 50K+ monthly active users
• Led team of 4 developers, delivering 3 projects on schedule`,
				Effort: "low",
			})
		}
	}

	sort.SliceStable(fixes, func(i, j int) bool {
		return severityLess(fixes[i].Priority, fixes[j].Priority)
	})
	if len(fixes) > 5 {
		fixes = fixes[:5]
	}
	return fixes
}

// fixPoints maps fix priority to expected score gain.
func fixPoints(priority scoring.Severity) float64 {
	switch priority {
	case scoring.SeverityCritical:
		return 15
	case scoring.SeverityHigh:
		return 10
	case scoring.SeverityMedium:
		return 5
	default:
		return 2
	}
}

func improvementPotential(scores Scores, fixes []Fix) ImprovementPotential {
	current := scores.Overall

	points := 0.0
	critical := 0
	high := 0
	for _, fix := range fixes {
		points += fixPoints(fix.Priority)
		switch fix.Priority {
		case scoring.SeverityCritical:
			critical++
		case scoring.SeverityHigh:
			high++
		}
	}

	potential := min(95, current+points)
	improvement := potential - current

	effort := "low"
	switch {
	case improvement > 30:
		effort = "high"
	case improvement > 15:
		effort = "medium"
	}

	return ImprovementPotential{
		CurrentScore:        round1(current),
		PotentialScore:      round1(potential),
		ImprovementPossible: round1(improvement),
		EffortRequired:      effort,
		FixesCount:          len(fixes),
		CriticalFixes:       critical,
		HighFixes:           high,
	}
}

// buildExplanation produces the human-readable verdict. Matches get a
// positive confirmation; mismatches get the top reasons and the single
// most critical weakness.
func buildExplanation(targetRole, predictedCareer string, match CareerMatch, weaknesses []Weakness) string {
	if targetRole == predictedCareer {
		return fmt.Sprintf("Your resume is well-aligned with your target role of %s. You have a %.0f%% match score.",
			titleCase(targetRole), match.OverallMatchScore)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You're targeting %s, but your resume currently presents as %s.",
		titleCase(targetRole), titleCase(predictedCareer))

	if len(match.MismatchReasons) > 0 {
		b.WriteString("\nKey reasons:")
		for i, reason := range match.MismatchReasons {
			if i >= 3 {
				break
			}
			fmt.Fprintf(&b, "\n%d. %s", i+1, reason)
		}
	}

	if len(weaknesses) > 0 {
		fmt.Fprintf(&b, "\n\nMost critical issue: %s", weaknesses[0].Title)
	}
	return b.String()
}
