// Package salary estimates annual salary ranges in INR from career title,
// experience, education and skill count. Rule-based and deterministic: the
// same inputs always produce the same range.
package salary

import (
	"fmt"
	"math"
	"strings"

	"skillfit/internal/knowledge"
)

// Range is an estimated annual salary band.
type Range struct {
	Min             int    `json:"min"`
	Max             int    `json:"max"`
	Mid             int    `json:"mid"`
	ExperienceLevel string `json:"experience_level"`
	Currency        string `json:"currency"`
}

// Estimate is a salary range with a confidence score.
type Estimate struct {
	Range      Range `json:"salary_range"`
	Confidence int   `json:"confidence"`
}

// Input carries everything the estimator considers. ExperienceYears is
// optional; when nil the level is inferred from the skills text.
type Input struct {
	Skills          string // comma-separated
	Career          string
	Qualification   string
	ExperienceYears *int
}

// Estimator derives salary bands from the knowledge base tables.
type Estimator struct {
	kb *knowledge.Base
}

func NewEstimator(kb *knowledge.Base) *Estimator {
	return &Estimator{kb: kb}
}

var (
	seniorIndicators = []string{"lead", "senior", "architect", "principal", "director", "manager", "head"}
	juniorIndicators = []string{"intern", "trainee", "fresher", "entry", "junior", "graduate"}
	midIndicators    = []string{"mid", "intermediate", "experienced"}
)

// Estimate computes the salary band. It never fails: unknown careers use
// the default base salary and lower the confidence.
func (e *Estimator) Estimate(in Input) Estimate {
	career := in.Career
	if strings.TrimSpace(career) == "" {
		career = "Software Developer"
	}

	base, _ := e.kb.BaseSalary(career)
	level, multiplier := e.detectExperienceLevel(in.ExperienceYears, in.Skills)
	eduBonus, eduKnown := e.kb.EducationBonusFor(in.Qualification)
	skillBonus := skillBonus(in.Skills)

	adjusted := float64(base) * multiplier * (1 + eduBonus) * (1 + skillBonus)

	mid := int(math.Round(adjusted))
	min := int(math.Round(adjusted * 0.85))
	max := int(math.Round(adjusted * 1.15))

	confidence := 70
	if e.kb.KnownCareerSalary(career) {
		confidence += 10
	}
	if eduKnown && eduBonus != 0 {
		confidence += 10
	}
	if n := countSkills(in.Skills); n > 0 {
		if n > 10 {
			n = 10
		}
		confidence += n
	}
	if confidence > 95 {
		confidence = 95
	}

	return Estimate{
		Range: Range{
			Min:             min,
			Max:             max,
			Mid:             mid,
			ExperienceLevel: level,
			Currency:        "INR",
		},
		Confidence: confidence,
	}
}

func (e *Estimator) detectExperienceLevel(years *int, skillsText string) (string, float64) {
	if years != nil {
		for _, band := range knowledge.ExperienceBands {
			if *years >= band.MinYears && *years <= band.MaxYears {
				return band.Level, band.Multiplier
			}
		}
		if *years > 12 {
			return "executive", 1.8
		}
		return "fresher", 0.7
	}

	lower := strings.ToLower(skillsText)
	for _, ind := range seniorIndicators {
		if strings.Contains(lower, ind) {
			return "senior", 1.3
		}
	}
	for _, ind := range juniorIndicators {
		if strings.Contains(lower, ind) {
			return "fresher", 0.7
		}
	}
	for _, ind := range midIndicators {
		if strings.Contains(lower, ind) {
			return "mid", 1.0
		}
	}
	return "mid", 1.0
}

func countSkills(skills string) int {
	n := 0
	for _, s := range strings.Split(skills, ",") {
		if strings.TrimSpace(s) != "" {
			n++
		}
	}
	return n
}

func skillBonus(skills string) float64 {
	bonus := float64(countSkills(skills)) * knowledge.SkillBonusPerSkill
	if bonus > knowledge.MaxSkillBonus {
		bonus = knowledge.MaxSkillBonus
	}
	return bonus
}

// FormatDisplay renders a range in lakhs-per-annum notation for INR, or a
// plain annual figure otherwise.
func FormatDisplay(r Range) string {
	if r.Currency != "INR" {
		return fmt.Sprintf("%s %d - %d/year", r.Currency, r.Min, r.Max)
	}
	minLPA := float64(r.Min) / 100000
	maxLPA := float64(r.Max) / 100000
	if minLPA >= 10 {
		return fmt.Sprintf("₹%.1fL - ₹%.1fL/year", minLPA, maxLPA)
	}
	return fmt.Sprintf("₹%.2fL - ₹%.2fL/year", minLPA, maxLPA)
}
