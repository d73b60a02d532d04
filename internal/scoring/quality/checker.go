// Package quality grades a resume against a 100-point recruiter
// checklist: personal details (10), education (20), skills (25),
// projects and experience (30), extracurriculars (10) and presentation
// (5). Which education and skill keywords count as relevant depends on
// the industry it auto-detects from the text.
package quality

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"skillfit/internal/knowledge"
)

// Category maxima.
const (
	maxPersonalContact    = 10
	maxEducation          = 20
	maxSkills             = 25
	maxProjectsExperience = 30
	maxExtracurriculars   = 10
	maxPresentation       = 5
)

var (
	emailPattern      = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	cleanEmailPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9._]*@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern      = regexp.MustCompile(`\+?\d{1,3}[-.\s]?\(?\d{2,4}\)?[-.\s]?\d{2,4}[-.\s]?\d{2,4}`)
	bulletPattern     = regexp.MustCompile(`[•\-*]`)
	oddCharPattern    = regexp.MustCompile(`[^a-zA-Z0-9\s\-.,:]`)
	resultNumPattern  = regexp.MustCompile(`\d+[%x]|\$\d+`)
)

// Section headers an ATS expects.
var atsHeaders = []string{"experience", "education", "skills", "certifications", "projects"}

// Minimum technical-skill counts per industry.
var industryMinSkills = map[string]int{
	"tech": 8, "business": 5, "finance": 5,
	"healthcare": 4, "hr": 4, "creative": 5, "general": 5,
}

// Contact carries extracted contact details.
type Contact struct {
	Email    string
	Phone    string
	LinkedIn string
	GitHub   string
}

// Qualification is one extracted education entry.
type Qualification struct {
	Degree      string
	Major       string
	Institution string
	GPA         string
	Honors      bool
}

// SkillData buckets extracted skills by kind.
type SkillData struct {
	Languages  []string
	Frameworks []string
	Tools      []string
	SoftSkills []string
}

// Project is one extracted project entry.
type Project struct {
	Title        string
	Description  string
	Technologies []string
}

// Experience is one extracted work-history entry.
type Experience struct {
	JobTitle string
	Company  string
	Duration string
}

// ResumeFacts is the structured extraction the checker scores alongside
// the raw text. Zero values mean "not extracted"; every scorer degrades
// gracefully.
type ResumeFacts struct {
	Contact        Contact
	Qualifications []Qualification
	EducationText  string
	Skills         []string
	SkillData      SkillData
	Projects       []Project
	Experiences    []Experience
}

// Breakdown is the per-category point allocation.
type Breakdown struct {
	PersonalContact    float64 `json:"personal_contact"`
	Education          float64 `json:"education"`
	Skills             float64 `json:"skills"`
	ProjectsExperience float64 `json:"projects_experience"`
	Extracurriculars   float64 `json:"extracurriculars"`
	Presentation       float64 `json:"presentation"`
}

// Result is the full quality report.
type Result struct {
	Score                float64   `json:"score"`
	Breakdown            Breakdown `json:"breakdown"`
	Feedback             []string  `json:"feedback"`
	Grade                string    `json:"grade"`
	PriorityImprovements []string  `json:"priority_improvements"`
	Industry             string    `json:"industry"`
	ATSScore             int       `json:"ats_score"`
	ActionVerbCount      int       `json:"action_verb_count"`
	AchievementCount     int       `json:"achievement_count"`
	KeywordDensity       float64   `json:"keyword_density"`
}

// Checker scores resumes against the recruiter framework.
type Checker struct {
	kb *knowledge.Base
}

func NewChecker(kb *knowledge.Base) *Checker {
	return &Checker{kb: kb}
}

// Check scores the resume. targetRole, when given, is prepended to the
// industry-detection input so an explicit goal outweighs resume wording.
func (c *Checker) Check(text string, facts ResumeFacts, targetRole string) Result {
	industryInput := text
	if targetRole != "" {
		industryInput = targetRole + " " + text
	}
	industry := c.DetectIndustry(industryInput)

	var feedback []string
	collect := func(score float64, fb []string) float64 {
		feedback = append(feedback, fb...)
		return score
	}

	breakdown := Breakdown{
		PersonalContact:    collect(c.scorePersonalDetails(text, facts)),
		Education:          collect(c.scoreEducation(facts, industry)),
		Skills:             collect(c.scoreSkills(text, facts, industry)),
		ProjectsExperience: collect(c.scoreProjectsExperience(text, facts, industry)),
		Extracurriculars:   collect(c.scoreExtracurriculars(text)),
		Presentation:       collect(c.scorePresentation(text)),
	}

	verbCount, _ := c.DetectActionVerbs(text)
	achievementCount, _ := DetectQuantifiableAchievements(text)
	atsScore, atsIssues := CheckATSCompatibility(text)

	density := 0.0
	if keywords := c.kb.IndustryNamed(industry).Keywords; len(keywords) > 0 {
		density = KeywordDensity(text, keywords)
	}

	total := breakdown.PersonalContact + breakdown.Education + breakdown.Skills +
		breakdown.ProjectsExperience + breakdown.Extracurriculars + breakdown.Presentation

	if industry != "general" {
		feedback = append(feedback, fmt.Sprintf("ℹ️ Resume appears targeted for %s industry", industry))
	}
	if len(atsIssues) > 0 {
		feedback = append(feedback, fmt.Sprintf("⚠️ ATS Compatibility Issues: %s", strings.Join(atsIssues, "; ")))
	}
	if verbCount < 10 {
		feedback = append(feedback, fmt.Sprintf("💡 Only %d action verbs found. Use more to showcase accomplishments (achieved, developed, led, etc.)", verbCount))
	}
	if achievementCount < 5 {
		feedback = append(feedback, fmt.Sprintf("📊 Only %d quantifiable achievements found. Add metrics and numbers to strengthen impact", achievementCount))
	}

	return Result{
		Score:                total,
		Breakdown:            breakdown,
		Feedback:             feedback,
		Grade:                gradeFor(total),
		PriorityImprovements: priorityImprovements(breakdown),
		Industry:             industry,
		ATSScore:             atsScore,
		ActionVerbCount:      verbCount,
		AchievementCount:     achievementCount,
		KeywordDensity:       round2(density),
	}
}

// DetectIndustry counts industry-keyword occurrences and returns the
// first industry with the highest vote; all-zero votes mean "general".
func (c *Checker) DetectIndustry(text string) string {
	lower := strings.ToLower(text)

	best := "general"
	bestScore := 0
	for _, industry := range c.kb.Industries() {
		score := 0
		for _, kw := range industry.Keywords {
			score += strings.Count(lower, kw)
		}
		if score > bestScore {
			best = industry.Name
			bestScore = score
		}
	}
	return best
}

// KeywordDensity reports the percentage of words containing any of the
// keywords as a substring.
func KeywordDensity(text string, keywords []string) float64 {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return 0
	}
	hits := 0
	for _, word := range words {
		for _, kw := range keywords {
			if strings.Contains(word, kw) {
				hits++
				break
			}
		}
	}
	return float64(hits) / float64(len(words)) * 100
}

// DetectActionVerbs counts accomplishment verbs present in the text.
func (c *Checker) DetectActionVerbs(text string) (int, []string) {
	lower := strings.ToLower(text)
	var found []string
	for _, verb := range knowledge.AccomplishmentVerbs {
		if strings.Contains(lower, verb) {
			found = append(found, verb)
		}
	}
	return len(found), found
}

// DetectQuantifiableAchievements counts metric-bearing phrases.
func DetectQuantifiableAchievements(text string) (int, []string) {
	var achievements []string
	for _, p := range knowledge.AchievementPatterns {
		achievements = append(achievements, p.FindAllString(text, -1)...)
	}
	return len(achievements), achievements
}

// CheckATSCompatibility runs a quick 10-point parse-friendliness check.
func CheckATSCompatibility(text string) (int, []string) {
	lower := strings.ToLower(text)
	var issues []string
	score := 10

	headers := 0
	for _, kw := range atsHeaders {
		if strings.Contains(lower, kw) {
			headers++
		}
	}
	if headers < 3 {
		issues = append(issues, "Missing standard section headers (Experience, Education, Skills)")
		score -= 3
	}

	if len(text) > 0 {
		density := float64(len(oddCharPattern.FindAllString(text, -1))) / float64(len(text))
		if density > 0.05 {
			issues = append(issues, "Too many special characters may confuse ATS")
			score -= 2
		}
	}

	if !bulletPattern.MatchString(text) {
		issues = append(issues, "No bullet points found - use them for better ATS parsing")
		score -= 2
	}

	if !emailPattern.MatchString(text) {
		issues = append(issues, "Email address not detected")
		score -= 2
	}
	if !phonePattern.MatchString(text) {
		issues = append(issues, "Phone number not detected")
		score -= 1
	}

	return max(0, score), issues
}

func gradeFor(score float64) string {
	switch {
	case score >= 90:
		return "A+ (Excellent)"
	case score >= 80:
		return "A (Very Good)"
	case score >= 70:
		return "B+ (Good)"
	case score >= 60:
		return "B (Satisfactory)"
	case score >= 50:
		return "C+ (Needs Improvement)"
	default:
		return "C (Major Improvements Needed)"
	}
}

// priorityImprovements flags the three weakest categories that sit
// below 70% of their maximum.
func priorityImprovements(b Breakdown) []string {
	type categoryScore struct {
		name    string
		score   float64
		max     float64
		message string
	}
	categories := []categoryScore{
		{"personal_contact", b.PersonalContact, maxPersonalContact,
			"🔥 Priority: Complete your contact information with professional email and LinkedIn"},
		{"education", b.Education, maxEducation,
			"🔥 Priority: Enhance education section with relevant coursework and achievements"},
		{"skills", b.Skills, maxSkills,
			"🔥 Priority: Expand and organize your skills section with proficiency levels"},
		{"projects_experience", b.ProjectsExperience, maxProjectsExperience,
			"🔥 Priority: Add detailed projects with quantifiable results and impact"},
		{"extracurriculars", b.Extracurriculars, maxExtracurriculars, ""},
		{"presentation", b.Presentation, maxPresentation, ""},
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].score < categories[j].score
	})

	var priorities []string
	for _, cat := range categories[:3] {
		if cat.score < cat.max*0.7 && cat.message != "" {
			priorities = append(priorities, cat.message)
		}
	}
	return priorities
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
