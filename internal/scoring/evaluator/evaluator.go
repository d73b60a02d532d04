// Package evaluator is the rubric scorer: a weighted blend of experience,
// skills, structure, grammar and projects signals, with a red-flag
// detector, an interactive checklist and prioritized suggestions.
package evaluator

import (
	"fmt"
	"regexp"
	"strings"

	"skillfit/internal/knowledge"
	"skillfit/internal/scoring"
)

// Rubric weights. They sum to 1.0.
const (
	weightExperience = 0.40
	weightSkills     = 0.25
	weightStructure  = 0.20
	weightGrammar    = 0.10
	weightProjects   = 0.05
)

// Sections records which mandatory sections the resume has.
type Sections struct {
	Contact    bool `json:"contact"`
	Summary    bool `json:"summary"`
	Experience bool `json:"experience"`
	Education  bool `json:"education"`
	Skills     bool `json:"skills"`
}

// Count returns how many of the five sections are present.
func (s Sections) Count() int {
	n := 0
	for _, ok := range []bool{s.Contact, s.Summary, s.Experience, s.Education, s.Skills} {
		if ok {
			n++
		}
	}
	return n
}

// ActionVerbCheck reports action-verb usage.
type ActionVerbCheck struct {
	Found     []string `json:"found"`
	Count     int      `json:"count"`
	HasEnough bool     `json:"has_enough"`
	Score     int      `json:"score"`
}

// MetricCheck reports quantifiable-achievement usage.
type MetricCheck struct {
	Found      []string `json:"found"`
	Count      int      `json:"count"`
	HasMetrics bool     `json:"has_metrics"`
	Score      int      `json:"score"`
}

// RedFlagCheck groups the red flags found and their score penalty.
type RedFlagCheck struct {
	GenericPhrases []string `json:"generic_phrases"`
	OutdatedSkills []string `json:"outdated_skills"`
	PersonalInfo   []string `json:"personal_info"`
	Other          []string `json:"other"`
	Count          int      `json:"count"`
	HasFlags       bool     `json:"has_flags"`
	Score          int      `json:"score"`
}

// KeywordCheck reports career-keyword coverage.
type KeywordCheck struct {
	Found           []string `json:"found"`
	Missing         []string `json:"missing"`
	MatchPercentage float64  `json:"match_percentage"`
	Score           int      `json:"score"`
}

// ATSCheck reports formatting compatibility with tracking systems.
type ATSCheck struct {
	Score        int      `json:"score"`
	Issues       []string `json:"issues"`
	IsCompatible bool     `json:"is_compatible"`
	HasEmail     bool     `json:"has_email"`
	HasPhone     bool     `json:"has_phone"`
}

// Scores is the weighted rubric breakdown, each value 0-100.
type Scores struct {
	Overall    int `json:"overall"`
	Experience int `json:"experience"`
	Skills     int `json:"skills"`
	Structure  int `json:"structure"`
	Grammar    int `json:"grammar"`
	Projects   int `json:"projects"`
}

// Result is the full evaluation.
type Result struct {
	OverallScore int             `json:"overall_score"`
	Scores       Scores          `json:"scores"`
	Sections     Sections        `json:"sections"`
	ActionVerbs  ActionVerbCheck `json:"action_verbs"`
	Metrics      MetricCheck     `json:"metrics"`
	RedFlags     RedFlagCheck    `json:"red_flags"`
	Keywords     KeywordCheck    `json:"keywords"`
	ATS          ATSCheck        `json:"ats_score"`
	Checklist    Checklist       `json:"checklist"`
	Suggestions  []string        `json:"suggestions"`
	TargetCareer string          `json:"target_career"`
}

// Evaluator runs the rubric. Verb patterns are compiled once at
// construction.
type Evaluator struct {
	kb           *knowledge.Base
	verbPatterns []verbPattern
}

type verbPattern struct {
	verb    string
	pattern *regexp.Regexp
}

func NewEvaluator(kb *knowledge.Base) *Evaluator {
	patterns := make([]verbPattern, 0, len(knowledge.ActionVerbs))
	for _, verb := range knowledge.ActionVerbs {
		patterns = append(patterns, verbPattern{verb, knowledge.WordBoundaryPattern(verb)})
	}
	return &Evaluator{kb: kb, verbPatterns: patterns}
}

// Evaluate scores the resume. Any string input is accepted; missing
// content degrades sub-scores instead of failing.
func (e *Evaluator) Evaluate(resumeText, targetCareer string) Result {
	lower := strings.ToLower(resumeText)

	sections := checkSections(lower)
	verbs := e.checkActionVerbs(lower)
	metrics := checkMetrics(resumeText)
	redFlags := checkRedFlags(lower, resumeText)
	keywords := e.checkKeywords(lower, targetCareer)
	ats := checkATSCompatibility(resumeText, sections)

	scores := calculateScores(sections, verbs, metrics, redFlags, keywords, ats)

	return Result{
		OverallScore: scores.Overall,
		Scores:       scores,
		Sections:     sections,
		ActionVerbs:  verbs,
		Metrics:      metrics,
		RedFlags:     redFlags,
		Keywords:     keywords,
		ATS:          ats,
		Checklist:    buildChecklist(sections, verbs, metrics, redFlags, keywords),
		Suggestions:  buildSuggestions(sections, verbs, metrics, redFlags, keywords, lower),
		TargetCareer: targetCareer,
	}
}

func checkSections(lower string) Sections {
	return Sections{
		Contact:    containsAny(lower, "email", "phone", "@", "linkedin", "github"),
		Summary:    containsAny(lower, "summary", "objective", "profile", "about"),
		Experience: containsAny(lower, "experience", "work history", "employment"),
		Education:  containsAny(lower, "education", "degree", "university", "college", "bachelor", "master"),
		Skills:     containsAny(lower, "skills", "technologies", "competencies", "expertise"),
	}
}

func (e *Evaluator) checkActionVerbs(lower string) ActionVerbCheck {
	found := []string{}
	for _, vp := range e.verbPatterns {
		if vp.pattern.MatchString(lower) {
			found = append(found, vp.verb)
		}
	}
	score := len(found) * 10
	if score > 100 {
		score = 100
	}
	return ActionVerbCheck{
		Found:     found,
		Count:     len(found),
		HasEnough: len(found) >= 5,
		Score:     score,
	}
}

func checkMetrics(text string) MetricCheck {
	found := []string{}
	for _, p := range knowledge.MetricPatterns {
		found = append(found, p.FindAllString(text, -1)...)
	}

	count := len(found)
	display := found
	if len(display) > 10 {
		display = display[:10]
	}
	score := count * 15
	if score > 100 {
		score = 100
	}
	return MetricCheck{
		Found:      display,
		Count:      count,
		HasMetrics: count >= 3,
		Score:      score,
	}
}

func checkRedFlags(lower, text string) RedFlagCheck {
	flags := RedFlagCheck{
		GenericPhrases: []string{},
		OutdatedSkills: []string{},
		PersonalInfo:   []string{},
		Other:          []string{},
	}

	for _, phrase := range knowledge.GenericPhrases {
		if strings.Contains(lower, phrase) {
			flags.GenericPhrases = append(flags.GenericPhrases, phrase)
		}
	}
	for _, skill := range knowledge.OutdatedSkills {
		if strings.Contains(lower, skill) {
			flags.OutdatedSkills = append(flags.OutdatedSkills, skill)
		}
	}
	for _, p := range knowledge.PersonalInfoPatterns {
		if p.MatchString(lower) {
			flags.PersonalInfo = append(flags.PersonalInfo, "Personal information detected")
			break
		}
	}

	longParagraphs := 0
	for _, line := range strings.Split(text, "\n") {
		if len(line) > 200 {
			longParagraphs++
		}
	}
	if longParagraphs > 3 {
		flags.Other = append(flags.Other, "Too many long paragraphs - use bullet points")
	}

	wordCount := len(strings.Fields(text))
	if wordCount < 200 {
		flags.Other = append(flags.Other, "Resume too short - add more detail")
	} else if wordCount > 1500 {
		flags.Other = append(flags.Other, "Resume too long - consider condensing")
	}

	flags.Count = len(flags.GenericPhrases) + len(flags.OutdatedSkills) +
		len(flags.PersonalInfo) + len(flags.Other)
	flags.HasFlags = flags.Count > 0
	flags.Score = 100 - flags.Count*10
	if flags.Score < 0 {
		flags.Score = 0
	}
	return flags
}

func (e *Evaluator) checkKeywords(lower, targetCareer string) KeywordCheck {
	keywords := e.kb.EvaluatorKeywords(targetCareer)

	found := []string{}
	missing := []string{}
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			found = append(found, kw)
		} else {
			missing = append(missing, kw)
		}
	}

	pct := scoring.Ratio(len(found), len(keywords)) * 100
	if len(missing) > 10 {
		missing = missing[:10]
	}
	return KeywordCheck{
		Found:           found,
		Missing:         missing,
		MatchPercentage: roundTo1(pct),
		Score:           scoring.RoundInt(pct),
	}
}

func checkATSCompatibility(text string, sections Sections) ATSCheck {
	issues := []string{}

	if knowledge.SpecialCharPattern.MatchString(text) {
		issues = append(issues, "Contains special characters that may not parse well")
	}
	if knowledge.TableLayoutPattern.MatchString(text) {
		issues = append(issues, "May contain tables that ATS cannot read")
	}
	if knowledge.ImageRefPattern.MatchString(text) {
		issues = append(issues, "Contains image references - ensure important info is in text")
	}
	if present := sections.Count(); present < 4 {
		issues = append(issues, fmt.Sprintf("Only %d/5 key sections detected", present))
	}

	hasEmail := knowledge.EmailPattern.MatchString(text)
	if !hasEmail {
		issues = append(issues, "No email address detected")
	}
	hasPhone := knowledge.HasPhoneRun(text)
	if !hasPhone {
		issues = append(issues, "No phone number detected")
	}

	score := 100 - len(issues)*10
	if score < 0 {
		score = 0
	}
	return ATSCheck{
		Score:        score,
		Issues:       issues,
		IsCompatible: score >= 70,
		HasEmail:     hasEmail,
		HasPhone:     hasPhone,
	}
}

func calculateScores(sections Sections, verbs ActionVerbCheck, metrics MetricCheck, redFlags RedFlagCheck, keywords KeywordCheck, ats ATSCheck) Scores {
	experience := float64(verbs.Score)*0.3 + float64(metrics.Score)*0.2
	if sections.Experience {
		experience += 50
	}

	skills := float64(keywords.Score) * 0.5
	if sections.Skills {
		skills += 50
	}

	sectionsPct := scoring.Ratio(sections.Count(), 5) * 100
	structure := (sectionsPct + float64(ats.Score)) / 2

	grammar := float64(redFlags.Score)

	projects := float64(keywords.Score)
	if sections.Education {
		projects += 20
	}
	if projects > 100 {
		projects = 100
	}

	overall := experience*weightExperience +
		skills*weightSkills +
		structure*weightStructure +
		grammar*weightGrammar +
		projects*weightProjects

	return Scores{
		Overall:    scoring.RoundInt(overall),
		Experience: scoring.RoundInt(experience),
		Skills:     scoring.RoundInt(skills),
		Structure:  scoring.RoundInt(structure),
		Grammar:    scoring.RoundInt(grammar),
		Projects:   scoring.RoundInt(projects),
	}
}

func buildSuggestions(sections Sections, verbs ActionVerbCheck, metrics MetricCheck, redFlags RedFlagCheck, keywords KeywordCheck, lower string) []string {
	suggestions := []string{}

	if !sections.Contact {
		suggestions = append(suggestions, "📧 Add complete contact information (email, phone, LinkedIn)")
	}
	if !sections.Experience {
		suggestions = append(suggestions, "💼 Add a detailed Work Experience section with job titles and dates")
	}
	if !sections.Skills {
		suggestions = append(suggestions, "🛠️ Add a Skills section highlighting your technical and soft skills")
	}
	if !metrics.HasMetrics {
		suggestions = append(suggestions, "📊 Add quantifiable achievements (e.g., 'Increased sales by 25%')")
	}
	if !verbs.HasEnough {
		suggestions = append(suggestions, "⚡ Use more action verbs like 'Led', 'Developed', 'Achieved'")
	}
	if len(redFlags.GenericPhrases) > 0 {
		suggestions = append(suggestions, fmt.Sprintf("🚫 Replace generic phrases like '%s' with specific achievements", redFlags.GenericPhrases[0]))
	}
	if !sections.Summary {
		suggestions = append(suggestions, "📝 Add a professional summary at the top of your resume")
	}
	if len(keywords.Missing) > 0 {
		top := keywords.Missing
		if len(top) > 3 {
			top = top[:3]
		}
		suggestions = append(suggestions, fmt.Sprintf("🎯 Consider adding keywords: %s", strings.Join(top, ", ")))
	}
	if !strings.Contains(lower, "linkedin") {
		suggestions = append(suggestions, "🔗 Add your LinkedIn profile URL")
	}
	if !strings.Contains(lower, "github") && containsAny(lower, "developer", "engineer", "programmer") {
		suggestions = append(suggestions, "🐙 Add your GitHub profile to showcase your code")
	}

	// The list is priority-ordered; only the top three surface.
	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	return suggestions
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func roundTo1(v float64) float64 {
	return float64(scoring.RoundInt(v*10)) / 10
}
