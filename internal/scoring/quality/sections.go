package quality

import (
	"fmt"
	"strings"

	"skillfit/internal/knowledge"
)

var (
	informalEmailWords  = []string{"cool", "sexy", "hot", "123", "xyz", "abc"}
	proficiencyKeywords = []string{"advanced", "intermediate", "proficient", "expert", "years"}
	genericSkills       = []string{"team player", "hard working", "passionate"}
	leadershipKeywords  = []string{"president", "leader", "head", "captain", "coordinator", "organizer", "founded"}
	volunteerKeywords   = []string{"volunteer", "club", "society", "organization", "community", "ngo"}
	awardKeywords       = []string{"award", "winner", "competition", "hackathon", "contest", "certificate", "achievement"}
	misspellings        = []string{"teh", "recieve", "seperate", "occured", "definately"}

	// Education keywords used when scoring free-text education without
	// structured qualifications.
	fallbackEducationKeywords = []string{"computer", "software", "engineering", "technology", "science", "it", "information"}
)

func (c *Checker) scorePersonalDetails(text string, facts ResumeFacts) (float64, []string) {
	var score float64
	var feedback []string

	lower := strings.ToLower(text)
	contact := facts.Contact

	var contactScore float64
	if contact.Email != "" {
		contactScore += 1.5
		email := strings.ToLower(contact.Email)
		if !anyContained(email, informalEmailWords) {
			if cleanEmailPattern.MatchString(email) {
				score += 3
			} else {
				feedback = append(feedback, "Use a more professional email format")
			}
		} else {
			feedback = append(feedback, "Consider using a more professional email address")
		}
	} else {
		feedback = append(feedback, "Add email address to contact information")
	}

	if contact.Phone != "" {
		contactScore += 1.5
	} else {
		feedback = append(feedback, "Add phone number to contact information")
	}

	hasLinkedIn := contact.LinkedIn != "" || strings.Contains(lower, "linkedin")
	if hasLinkedIn {
		contactScore += 1
	} else {
		feedback = append(feedback, "Add LinkedIn profile URL")
	}

	score += min(4, contactScore)

	var linksScore float64
	if hasLinkedIn {
		linksScore += 1.5
	}
	if contact.GitHub != "" || strings.Contains(lower, "github") {
		linksScore += 1.5
	} else {
		feedback = append(feedback, "Add GitHub profile to showcase your code")
	}
	score += min(3, linksScore)

	return score, feedback
}

func (c *Checker) scoreEducation(facts ResumeFacts, industry string) (float64, []string) {
	var score float64
	var feedback []string

	if len(facts.Qualifications) > 0 {
		// Only the first qualification is scored in full; more entries
		// earn a flat bonus.
		qual := facts.Qualifications[0]
		degree := strings.ToLower(qual.Degree)
		major := strings.ToLower(qual.Major)

		relevant := c.relevantEducation(industry)
		if anyContained(degree+" "+major, relevant) {
			score += 8
		} else {
			score += 4
			feedback = append(feedback, fmt.Sprintf("Consider highlighting how your %s relates to %s roles", degree, industry))
		}

		if qual.Institution != "" && qual.Institution != "Not specified" {
			score += 6
		} else {
			feedback = append(feedback, "Include institution name for better credibility")
		}

		if qual.GPA != "" || qual.Honors {
			score += 3
		}

		if len(facts.Qualifications) > 1 {
			score += 3
		}
	} else {
		education := facts.EducationText
		if education == "" || education == "Not detected" {
			feedback = append(feedback, "Add clear education section with degree details")
			return 0, feedback
		}

		if anyContained(strings.ToLower(education), fallbackEducationKeywords) {
			score += 6
		} else {
			score += 3
			feedback = append(feedback, "Highlight relevant coursework that relates to your target role")
		}
	}

	return min(maxEducation, score), feedback
}

func (c *Checker) scoreSkills(text string, facts ResumeFacts, industry string) (float64, []string) {
	var score float64
	var feedback []string

	if len(facts.Skills) == 0 {
		feedback = append(feedback, "Add a dedicated skills section")
		return 0, feedback
	}

	var hardSkillsScore float64
	technicalCount := len(facts.SkillData.Languages) + len(facts.SkillData.Frameworks) + len(facts.SkillData.Tools)

	minRequired, ok := industryMinSkills[industry]
	if !ok {
		minRequired = 5
	}

	switch {
	case technicalCount >= minRequired+2:
		hardSkillsScore += 8
	case technicalCount >= minRequired:
		hardSkillsScore += 6
	case technicalCount >= 3:
		hardSkillsScore += 4
		feedback = append(feedback, fmt.Sprintf("Add more %s-relevant technical skills", industry))
	default:
		hardSkillsScore += 2
		feedback = append(feedback, fmt.Sprintf("Add more technical skills relevant to %s roles", industry))
	}

	if anyContained(strings.ToLower(text), proficiencyKeywords) {
		hardSkillsScore += 4
	} else {
		feedback = append(feedback, "Specify proficiency levels for your skills (e.g., 'Python - Advanced, 5 years')")
	}

	relevantSkills := c.relevantSkills(industry)
	hasRelevant := false
	for _, skill := range facts.Skills {
		if containsString(relevantSkills, strings.ToLower(skill)) {
			hasRelevant = true
			break
		}
	}
	if hasRelevant {
		hardSkillsScore += 3
	} else {
		feedback = append(feedback, fmt.Sprintf("Consider adding more %s-specific skills", industry))
	}

	score += min(15, hardSkillsScore)

	softSkills := facts.SkillData.SoftSkills
	switch {
	case len(softSkills) >= 3:
		score += 8
	case len(softSkills) > 0:
		score += 5
	default:
		feedback = append(feedback, "Add relevant soft skills with examples")
	}

	joined := strings.ToLower(strings.Join(facts.Skills, " "))
	if anyContained(joined, genericSkills) {
		feedback = append(feedback, "Replace generic skills with specific, measurable abilities")
	} else {
		score += 2
	}

	return min(maxSkills, score), feedback
}

func (c *Checker) scoreProjectsExperience(text string, facts ResumeFacts, industry string) (float64, []string) {
	var score float64
	var feedback []string

	if len(facts.Projects) == 0 && len(facts.Experiences) == 0 {
		feedback = append(feedback, "Add projects section showcasing your practical work")
		return 0, feedback
	}

	if len(facts.Projects) > 0 {
		var projectScore float64
		for _, project := range facts.Projects[:min(3, len(facts.Projects))] {
			if project.Title != "" && project.Title != "Untitled Project" {
				projectScore += 3
			}

			desc := strings.ToLower(project.Description)
			if len(project.Description) > 50 {
				projectScore += 4
				if anyContained(desc, knowledge.AccomplishmentVerbs) {
					projectScore++
				}
				if resultNumPattern.MatchString(project.Description) {
					projectScore++
				}
			} else if project.Description != "" {
				projectScore += 2
			}

			if len(project.Technologies) > 0 {
				projectScore += 3
			} else {
				feedback = append(feedback, "Specify technologies used in your projects")
			}
		}
		score += min(20, projectScore)
	}

	if len(facts.Experiences) > 0 {
		var expScore float64
		for _, exp := range facts.Experiences[:min(2, len(facts.Experiences))] {
			if exp.JobTitle != "" {
				expScore += 3
			}
			if exp.Company != "" {
				expScore += 3
			}
			if exp.Duration != "" && exp.Duration != "Duration not specified" {
				expScore += 4
			} else {
				feedback = append(feedback, "Include duration for work experiences")
			}
		}
		score += min(10, expScore)
	}

	if len(facts.Projects) > 0 && len(facts.Experiences) > 0 {
		score += 5
	}

	if industry != "general" {
		if anyContained(strings.ToLower(text), c.kb.IndustryNamed(industry).Keywords) {
			score += 3
		} else {
			feedback = append(feedback, fmt.Sprintf("Highlight %s-relevant experience and achievements", industry))
		}
	}

	return min(maxProjectsExperience, score), feedback
}

func (c *Checker) scoreExtracurriculars(text string) (float64, []string) {
	var score float64
	var feedback []string

	lower := strings.ToLower(text)

	if anyContained(lower, leadershipKeywords) {
		score += 4
	} else {
		feedback = append(feedback, "Include any leadership roles or initiatives you've taken")
	}

	if anyContained(lower, volunteerKeywords) {
		score += 3
	} else {
		feedback = append(feedback, "Add extracurricular activities or volunteer work")
	}

	if anyContained(lower, awardKeywords) {
		score += 3
	} else {
		feedback = append(feedback, "Include any awards, competitions, or certifications")
	}

	return min(maxExtracurriculars, score), feedback
}

func (c *Checker) scorePresentation(text string) (float64, []string) {
	var score float64
	var feedback []string

	lower := strings.ToLower(text)

	nonEmpty := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			nonEmpty++
		}
	}
	if nonEmpty > 10 {
		score++
	}

	headerCount := 0
	for _, header := range []string{"education", "experience", "skills", "projects", "certifications"} {
		if strings.Contains(lower, header) {
			headerCount++
		}
	}
	if headerCount >= 3 {
		score++
	} else {
		feedback = append(feedback, "Use clear section headers (Education, Skills, Projects, etc.)")
	}

	if !anyContained(lower, misspellings) {
		score += 2
	} else {
		feedback = append(feedback, "Check for spelling and grammar errors")
	}

	wordCount := len(strings.Fields(text))
	switch {
	case wordCount >= 200 && wordCount <= 800:
		score++
	case wordCount < 200:
		feedback = append(feedback, "Resume seems too brief - add more details about your experience")
	default:
		feedback = append(feedback, "Consider making your resume more concise")
	}

	return min(maxPresentation, score), feedback
}

// relevantEducation falls back to the tech keyword list for industries
// without a profile of their own.
func (c *Checker) relevantEducation(industry string) []string {
	if kws := c.kb.IndustryNamed(industry).RelevantEducation; len(kws) > 0 {
		return kws
	}
	return c.kb.IndustryNamed("tech").RelevantEducation
}

func (c *Checker) relevantSkills(industry string) []string {
	if kws := c.kb.IndustryNamed(industry).RelevantSkills; len(kws) > 0 {
		return kws
	}
	return c.kb.IndustryNamed("tech").RelevantSkills
}

func anyContained(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
