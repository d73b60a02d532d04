package analyses

import (
	"regexp"
	"strings"

	"skillfit/internal/knowledge"
	"skillfit/internal/scoring/quality"
)

// Extractor derives structured facts from raw resume text: the skill
// inventory, a predicted career path and the contact/education/project
// details the quality checker scores. Skill matchers are compiled once
// at construction.
type Extractor struct {
	kb       *knowledge.Base
	matchers []skillMatcher
}

type skillMatcher struct {
	skill   string
	pattern *regexp.Regexp // nil means substring match
}

var plainWordPattern = regexp.MustCompile(`^[a-z][a-z ]*$`)

// NewExtractor constructs an Extractor for the given knowledge base.
func NewExtractor(kb *knowledge.Base) *Extractor {
	e := &Extractor{kb: kb}
	seen := make(map[string]bool)
	for _, category := range kb.SkillCategories() {
		for _, skill := range category.Skills {
			if seen[skill] {
				continue
			}
			seen[skill] = true
			m := skillMatcher{skill: skill}
			// Word boundaries keep "r" out of "react" and "go" out of
			// "google". Skills with punctuation (c#, next.js, ci/cd)
			// fall back to substring matching.
			if plainWordPattern.MatchString(skill) {
				m.pattern = knowledge.WordBoundaryPattern(skill)
			}
			e.matchers = append(e.matchers, m)
		}
	}
	return e
}

// DetectSkills scans the resume for known skills. Order follows the
// skill taxonomy so repeated runs produce identical lists.
func (e *Extractor) DetectSkills(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, m := range e.matchers {
		if m.pattern != nil {
			if m.pattern.MatchString(lower) {
				found = append(found, m.skill)
			}
		} else if strings.Contains(lower, m.skill) {
			found = append(found, m.skill)
		}
	}
	return found
}

// PredictCareer votes each career path by how many of its profile
// skills appear in the detected set. Careers are walked in sorted
// order, so ties resolve the same way every run. With no match at all
// the prediction falls back to the generalist path.
func (e *Extractor) PredictCareer(detectedSkills []string) string {
	have := make(map[string]bool, len(detectedSkills))
	for _, s := range detectedSkills {
		have[strings.ToLower(s)] = true
	}

	best := ""
	bestVotes := 0
	for _, career := range e.kb.AllCareers() {
		votes := 0
		for _, skill := range e.kb.CareerSkills(career) {
			if have[strings.ToLower(skill)] {
				votes++
			}
		}
		if votes > bestVotes {
			best = career
			bestVotes = votes
		}
	}
	if best == "" {
		return "Software Developer"
	}
	return best
}

// BuildFacts extracts the structured details the quality checker scores
// alongside the raw text. Everything is best effort; missing sections
// simply leave zero values behind.
func (e *Extractor) BuildFacts(text string, detectedSkills []string) quality.ResumeFacts {
	facts := quality.ResumeFacts{
		Contact:       extractContact(text),
		EducationText: sectionText(text, "education", "academic background", "qualifications"),
		Skills:        detectedSkills,
		SkillData:     e.bucketSkills(detectedSkills),
	}

	if projects := sectionText(text, "projects", "personal projects", "academic projects"); projects != "" {
		facts.Projects = []quality.Project{{
			Title:        firstLine(projects),
			Description:  projects,
			Technologies: e.DetectSkills(projects),
		}}
	}
	if experience := sectionText(text, "experience", "work experience", "employment", "work history"); experience != "" {
		facts.Experiences = []quality.Experience{{
			JobTitle: firstLine(experience),
			Duration: firstDuration(experience),
		}}
	}
	return facts
}

// bucketSkills splits a flat skill list into the kinds the quality
// checker weighs differently.
func (e *Extractor) bucketSkills(detectedSkills []string) quality.SkillData {
	soft := make(map[string]bool)
	if general, ok := e.kb.SkillCategoryNamed("general"); ok {
		for _, s := range general.Skills {
			soft[s] = true
		}
	}
	tools := make(map[string]bool)
	for _, name := range []string{"devops", "cloud", "design"} {
		if category, ok := e.kb.SkillCategoryNamed(name); ok {
			for _, s := range category.Skills {
				tools[s] = true
			}
		}
	}

	var data quality.SkillData
	for _, skill := range detectedSkills {
		key := strings.ToLower(skill)
		switch {
		case soft[key]:
			data.SoftSkills = append(data.SoftSkills, skill)
		case programmingLanguages[key]:
			data.Languages = append(data.Languages, skill)
		case tools[key]:
			data.Tools = append(data.Tools, skill)
		default:
			data.Frameworks = append(data.Frameworks, skill)
		}
	}
	return data
}

var programmingLanguages = map[string]bool{
	"python": true, "java": true, "javascript": true, "typescript": true,
	"go": true, "c#": true, "ruby": true, "php": true, "rust": true,
	"sql": true, "r": true, "swift": true, "kotlin": true, "dart": true,
	"html": true, "css": true, "bash": true, "objective-c": true,
}

var sectionHeaders = []string{
	"education", "academic background", "qualifications",
	"experience", "work experience", "employment", "work history",
	"projects", "personal projects", "academic projects",
	"skills", "technical skills",
	"certifications", "achievements", "activities", "extracurricular",
	"summary", "objective", "contact", "references",
}

func extractContact(text string) quality.Contact {
	lower := strings.ToLower(text)
	contact := quality.Contact{
		Email: knowledge.EmailPattern.FindString(text),
	}
	for _, p := range knowledge.StrictPhonePatterns {
		if m := p.FindString(text); m != "" {
			contact.Phone = m
			break
		}
	}
	if strings.Contains(lower, "linkedin.com") || strings.Contains(lower, "linkedin") {
		contact.LinkedIn = "linkedin"
	}
	if strings.Contains(lower, "github.com") || strings.Contains(lower, "github") {
		contact.GitHub = "github"
	}
	return contact
}

// sectionText carves out the body of the first section whose header
// matches one of names, stopping at the next recognized header.
func sectionText(text string, names ...string) string {
	lines := strings.Split(text, "\n")
	start := -1
	for i, line := range lines {
		if headerMatches(line, names) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return ""
	}
	var body []string
	for _, line := range lines[start:] {
		if headerMatches(line, sectionHeaders) {
			break
		}
		body = append(body, line)
	}
	return strings.TrimSpace(strings.Join(body, "\n"))
}

// headerMatches treats a short line as a section header when it reduces
// to one of the given names. Resume bodies mention "education" in prose
// too; the length cap keeps those lines from splitting sections.
func headerMatches(line string, names []string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(line))
	trimmed = strings.TrimRight(trimmed, ":")
	if trimmed == "" || len(trimmed) > 40 {
		return false
	}
	for _, name := range names {
		if trimmed == name {
			return true
		}
	}
	return false
}

func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// firstDuration pulls the first pair of dates out of a section, joined
// as a range when two are present.
func firstDuration(text string) string {
	var dates []string
	for _, p := range knowledge.DateFormatPatterns {
		dates = append(dates, p.FindAllString(text, -1)...)
		if len(dates) >= 2 {
			break
		}
	}
	switch {
	case len(dates) >= 2:
		return dates[0] + " - " + dates[1]
	case len(dates) == 1:
		return dates[0]
	}
	if strings.Contains(strings.ToLower(text), "present") {
		return "present"
	}
	return ""
}
