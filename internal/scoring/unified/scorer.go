// Package unified scores resumes on a 100-point checklist tuned to the
// candidate's experience level and target role: length and structure (20),
// sections (10), content quality (30), ATS optimization (30) and
// presentation (10). The ATS sub-check reuses the ats package so both
// report from the same keyword tables, but its point allocation here is
// its own; the two scorers intentionally remain separate opinions.
package unified

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"skillfit/internal/knowledge"
	"skillfit/internal/scoring"
	"skillfit/internal/scoring/ats"
)

// Category maxima.
const (
	maxLengthStructure = 20
	maxSections        = 10
	maxContentQuality  = 30
	maxATSOptimization = 30
	maxPresentation    = 10
)

// WordsPerPage approximates page count from word count.
const WordsPerPage = 400

// plainBulletPattern is the narrower bullet test used for punctuation
// consistency; decorative arrows are handled by the ATS format check.
var plainBulletPattern = regexp.MustCompile(`^\s*[•\-*]`)

// CategoryScores is the raw per-category point allocation.
type CategoryScores struct {
	LengthStructure float64 `json:"length_structure"`
	Sections        float64 `json:"sections"`
	ContentQuality  float64 `json:"content_quality"`
	ATSOptimization float64 `json:"ats_optimization"`
	Presentation    float64 `json:"presentation"`
}

// LengthStructureResult details the length and focus-area check.
type LengthStructureResult struct {
	Score          float64  `json:"score"`
	MaxScore       int      `json:"max_score"`
	Feedback       []string `json:"feedback"`
	WordCount      int      `json:"word_count"`
	EstimatedPages float64  `json:"estimated_pages"`
	FocusScore     float64  `json:"focus_score"`
}

// SectionFlags records which required sections were found.
type SectionFlags struct {
	Contact    bool `json:"contact"`
	Summary    bool `json:"summary"`
	Education  bool `json:"education"`
	Experience bool `json:"experience"`
	Skills     bool `json:"skills"`
}

// missingNames lists absent sections in display order.
func (f SectionFlags) missingNames() []string {
	var missing []string
	for _, s := range []struct {
		name string
		ok   bool
	}{
		{"contact", f.Contact},
		{"summary", f.Summary},
		{"education", f.Education},
		{"experience", f.Experience},
		{"skills", f.Skills},
	} {
		if !s.ok {
			missing = append(missing, s.name)
		}
	}
	return missing
}

// SectionsResult details the required-sections check.
type SectionsResult struct {
	Score         float64      `json:"score"`
	MaxScore      int          `json:"max_score"`
	Feedback      []string     `json:"feedback"`
	SectionsFound SectionFlags `json:"sections_found"`
}

// ContentQualityResult details verbs, bullets, metrics and role tailoring.
type ContentQualityResult struct {
	Score            float64  `json:"score"`
	MaxScore         int      `json:"max_score"`
	Feedback         []string `json:"feedback"`
	ActionVerbsFound []string `json:"action_verbs_found"`
	ActionVerbCount  int      `json:"action_verbs_count"`
	BulletCount      int      `json:"bullet_count"`
	MetricsCount     int      `json:"metrics_count"`
	KeywordMatchRate float64  `json:"keyword_match_rate"`
}

// ATSOptimizationResult details keyword coverage and clean formatting.
type ATSOptimizationResult struct {
	Score           float64     `json:"score"`
	MaxScore        int         `json:"max_score"`
	Feedback        []string    `json:"feedback"`
	MissingKeywords []string    `json:"missing_keywords"`
	KeywordsFound   []string    `json:"keywords_found"`
	KeywordCount    int         `json:"keywords_count"`
	TotalKeywords   int         `json:"total_keywords"`
	FormatScore     int         `json:"format_score"`
	FormatIssues    []string    `json:"format_issues"`
	ATSAnalysis     *ats.Result `json:"ats_analyzer_result,omitempty"`
}

// PresentationResult details consistency and error checks.
type PresentationResult struct {
	Score             float64  `json:"score"`
	MaxScore          int      `json:"max_score"`
	Feedback          []string `json:"feedback"`
	ConsistencyScore  int      `json:"consistency_score"`
	ErrorScore        int      `json:"error_score"`
	ConsistencyIssues []string `json:"consistency_issues"`
	ErrorsFound       []string `json:"errors_found"`
}

// Result is the full unified score.
type Result struct {
	OverallScore         int                   `json:"overall_score"`
	CategoryScores       CategoryScores        `json:"category_scores"`
	LengthStructure      LengthStructureResult `json:"length_structure"`
	Sections             SectionsResult        `json:"sections"`
	ContentQuality       ContentQualityResult  `json:"content_quality"`
	ATSOptimization      ATSOptimizationResult `json:"ats_optimization"`
	Presentation         PresentationResult    `json:"presentation"`
	Feedback             []string              `json:"feedback"`
	MissingKeywords      []string              `json:"missing_keywords"`
	PriorityImprovements []string              `json:"priority_improvements"`
	ExperienceLevel      string                `json:"experience_level"`
	TargetRole           string                `json:"target_role"`
}

// Scorer runs the unified checklist.
type Scorer struct {
	kb           *knowledge.Base
	ats          *ats.Analyzer
	verbPatterns []verbPattern
}

type verbPattern struct {
	verb    string
	pattern *regexp.Regexp
}

func NewScorer(kb *knowledge.Base) *Scorer {
	patterns := make([]verbPattern, 0, len(knowledge.ActionVerbs))
	for _, verb := range knowledge.ActionVerbs {
		patterns = append(patterns, verbPattern{verb, knowledge.WordBoundaryPattern(verb)})
	}
	return &Scorer{kb: kb, ats: ats.NewAnalyzer(kb), verbPatterns: patterns}
}

// Score evaluates the resume. Unknown experience levels fall back to
// beginner, unknown target roles to the generic "other" profile.
func (s *Scorer) Score(resumeText, experienceLevel, targetRole string, detectedSkills []string) Result {
	experienceLevel = strings.ToLower(strings.TrimSpace(experienceLevel))
	targetRole = strings.ToLower(strings.TrimSpace(targetRole))
	lower := strings.ToLower(resumeText)

	if !s.kb.KnownLevel(experienceLevel) {
		experienceLevel = knowledge.LevelBeginner
	}
	if !s.kb.KnownTargetRole(targetRole) {
		targetRole = "other"
	}

	length := s.scoreLengthStructure(resumeText, lower, experienceLevel)
	sections := scoreSections(lower, experienceLevel)
	content := s.scoreContentQuality(resumeText, lower, targetRole)
	atsOpt := s.scoreATSOptimization(resumeText, lower, targetRole, detectedSkills)
	presentation := scorePresentation(resumeText, lower)

	overall := length.Score + sections.Score + content.Score + atsOpt.Score + presentation.Score

	var feedback []string
	feedback = append(feedback, length.Feedback...)
	feedback = append(feedback, sections.Feedback...)
	feedback = append(feedback, content.Feedback...)
	feedback = append(feedback, atsOpt.Feedback...)
	feedback = append(feedback, presentation.Feedback...)

	return Result{
		OverallScore: scoring.RoundInt(overall),
		CategoryScores: CategoryScores{
			LengthStructure: length.Score,
			Sections:        sections.Score,
			ContentQuality:  content.Score,
			ATSOptimization: atsOpt.Score,
			Presentation:    presentation.Score,
		},
		LengthStructure:      length,
		Sections:             sections,
		ContentQuality:       content,
		ATSOptimization:      atsOpt,
		Presentation:         presentation,
		Feedback:             feedback,
		MissingKeywords:      atsOpt.MissingKeywords,
		PriorityImprovements: buildPriorities(experienceLevel, length, sections, content, atsOpt, presentation),
		ExperienceLevel:      experienceLevel,
		TargetRole:           targetRole,
	}
}

func (s *Scorer) scoreLengthStructure(text, lower, level string) LengthStructureResult {
	var score float64
	var feedback []string

	wordCount := len(strings.Fields(text))
	pages := float64(wordCount) / WordsPerPage

	switch level {
	case knowledge.LevelBeginner:
		switch {
		case pages <= 1:
			score += 10
		case pages <= 1.5:
			score += 7
			feedback = append(feedback, "📄 Consider reducing resume to 1 page for entry-level positions")
		default:
			score += 4
			feedback = append(feedback, "📄 Resume is too long for entry-level. Aim for 1 page maximum")
		}
	case knowledge.LevelMid:
		switch {
		case pages >= 1 && pages <= 2:
			score += 10
		case pages < 1:
			score += 6
			feedback = append(feedback, "📄 Resume may be too brief. Add more detail about achievements")
		default:
			score += 5
			feedback = append(feedback, "📄 Consider condensing to 2 pages maximum")
		}
	default: // senior-level
		switch {
		case pages >= 1.5 && pages <= 2:
			score += 10
		case pages < 1.5:
			score += 7
			feedback = append(feedback, "📄 Add more detail about leadership achievements and strategic impact")
		default:
			score += 6
			feedback = append(feedback, "📄 Even for senior roles, aim for 2 pages maximum")
		}
	}

	var focus float64
	switch level {
	case knowledge.LevelBeginner:
		if containsAny(lower, "skills", "technical skills", "competencies") {
			focus += 3
		}
		if containsAny(lower, "education", "degree", "university", "college") {
			focus += 4
		}
		if containsAny(lower, "project", "projects", "portfolio") {
			focus += 3
		}
		if focus < 7 {
			feedback = append(feedback, "🎯 Emphasize your skills, education, and projects for entry-level roles")
		}
	case knowledge.LevelMid:
		star := starScore(lower)
		focus = float64(min(10, star*2))
		if star < 3 {
			feedback = append(feedback, "🎯 Use the STAR method (Situation, Task, Action, Result) in bullet points")
		}
	default:
		leadership := countContained(lower, knowledge.LeadershipKeywords)
		strategic := countContained(lower, knowledge.StrategicKeywords)
		impact := countContained(lower, knowledge.BusinessImpactKeywords)
		focus = float64(min(10, leadership+strategic+impact))
		if leadership < 3 {
			feedback = append(feedback, "🎯 Add more leadership language (led, managed, directed, mentored)")
		}
		if strategic < 2 {
			feedback = append(feedback, "🎯 Include strategic keywords (strategy, vision, transformation)")
		}
		if impact < 2 {
			feedback = append(feedback, "🎯 Highlight business impact metrics (revenue, cost savings, team size)")
		}
	}

	score += focus
	if score > maxLengthStructure {
		score = maxLengthStructure
	}
	return LengthStructureResult{
		Score:          score,
		MaxScore:       maxLengthStructure,
		Feedback:       feedback,
		WordCount:      wordCount,
		EstimatedPages: roundTo1(pages),
		FocusScore:     focus,
	}
}

func scoreSections(lower, level string) SectionsResult {
	var score float64
	var feedback []string
	var found SectionFlags

	var contact float64
	if knowledge.EmailPattern.MatchString(lower) {
		contact += 0.7
	} else {
		feedback = append(feedback, "📧 Add your email address")
	}
	if knowledge.PhonePattern.MatchString(lower) {
		contact += 0.7
	} else {
		feedback = append(feedback, "📱 Add your phone number")
	}
	if strings.Contains(lower, "linkedin") {
		contact += 0.6
	} else {
		feedback = append(feedback, "🔗 Add your LinkedIn profile URL")
	}
	found.Contact = contact >= 1.4
	if contact > 2 {
		contact = 2
	}
	score += contact

	found.Summary = containsAny(lower, "summary", "objective", "profile", "about me")
	if found.Summary {
		score += 2
	} else {
		feedback = append(feedback, "📝 Add a professional summary or objective section")
	}

	found.Education = containsAny(lower,
		"education", "degree", "university", "college", "bachelor",
		"master", "phd", "diploma", "b.tech", "m.tech", "mba")
	if found.Education {
		score += 2
	} else {
		feedback = append(feedback, "🎓 Add an education section with your degrees")
	}

	found.Experience = containsAny(lower,
		"experience", "work history", "employment", "career",
		"professional experience", "work experience")
	if found.Experience {
		score += 2
	} else if level == knowledge.LevelBeginner {
		if containsAny(lower, "intern", "project", "volunteer") {
			score += 1.5
			found.Experience = true
		}
	} else {
		feedback = append(feedback, "💼 Add a work experience section")
	}

	found.Skills = containsAny(lower,
		"skills", "technical skills", "competencies",
		"technologies", "expertise", "proficiencies")
	if found.Skills {
		score += 2
	} else {
		feedback = append(feedback, "🛠️ Add a skills section highlighting your abilities")
	}

	if level == knowledge.LevelSenior {
		hasBonus := containsAny(lower, "board", "advisory", "director") ||
			containsAny(lower, "publication", "published", "paper", "article") ||
			containsAny(lower, "certification", "certified", "credential") ||
			containsAny(lower, "speaking", "conference", "keynote", "presentation")
		if !hasBonus {
			feedback = append(feedback, "💡 Consider adding sections for board roles, publications, or certifications")
		}
	}

	if score > maxSections {
		score = maxSections
	}
	return SectionsResult{
		Score:         roundTo1(score),
		MaxScore:      maxSections,
		Feedback:      feedback,
		SectionsFound: found,
	}
}

func (s *Scorer) scoreContentQuality(text, lower, targetRole string) ContentQualityResult {
	var score float64
	var feedback []string

	var foundVerbs []string
	for _, vp := range s.verbPatterns {
		if vp.pattern.MatchString(lower) {
			foundVerbs = append(foundVerbs, vp.verb)
		}
	}
	verbCount := len(foundVerbs)
	switch {
	case verbCount >= 10:
		score += 8
	case verbCount >= 7:
		score += 6
	case verbCount >= 4:
		score += 4
	case verbCount >= 2:
		score += 2
	default:
		feedback = append(feedback, "⚡ Start bullet points with strong action verbs (Led, Developed, Achieved)")
	}
	if verbCount < 7 {
		feedback = append(feedback, fmt.Sprintf("⚡ Currently using %d action verbs. Aim for 7+ for better impact", verbCount))
	}

	lines := strings.Split(text, "\n")
	bulletCount := 0
	for _, line := range lines {
		if knowledge.BulletLinePattern.MatchString(line) || knowledge.NumberedLinePattern.MatchString(line) {
			bulletCount++
		}
	}
	implicit := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(strings.ToLower(line))
		for _, verb := range knowledge.ActionVerbs[:20] {
			if strings.HasPrefix(trimmed, verb) {
				implicit++
				break
			}
		}
	}
	totalBullets := bulletCount + implicit
	switch {
	case totalBullets >= 10:
		score += 7
	case totalBullets >= 6:
		score += 5
	case totalBullets >= 3:
		score += 3
	default:
		score += 1
		feedback = append(feedback, "📋 Use bullet points to describe experiences, not paragraphs")
	}

	metricCount := knowledge.CountMetrics(text)
	switch {
	case metricCount >= 5:
		score += 8
	case metricCount >= 3:
		score += 6
	case metricCount >= 1:
		score += 3
	default:
		feedback = append(feedback, "📊 Add quantifiable achievements (e.g., 'Increased sales by 25%', 'Led team of 5')")
	}
	if metricCount < 3 {
		feedback = append(feedback, "📊 Add more metrics and numbers to demonstrate impact")
	}

	roleKeywords := s.kb.TargetRoleKeywords(targetRole)
	foundKeywords := 0
	for _, kw := range roleKeywords {
		if strings.Contains(lower, kw) {
			foundKeywords++
		}
	}
	matchRate := scoring.Ratio(foundKeywords, len(roleKeywords))
	switch {
	case matchRate >= 0.4:
		score += 7
	case matchRate >= 0.25:
		score += 5
	case matchRate >= 0.15:
		score += 3
	default:
		score += 1
		feedback = append(feedback, fmt.Sprintf("🎯 Add more keywords relevant to %s role", targetRole))
	}

	if score > maxContentQuality {
		score = maxContentQuality
	}
	display := foundVerbs
	if len(display) > 10 {
		display = display[:10]
	}
	return ContentQualityResult{
		Score:            score,
		MaxScore:         maxContentQuality,
		Feedback:         feedback,
		ActionVerbsFound: display,
		ActionVerbCount:  verbCount,
		BulletCount:      totalBullets,
		MetricsCount:     metricCount,
		KeywordMatchRate: roundTo1(matchRate * 100),
	}
}

// atsCareerNames maps target roles to the display careers the standalone
// ATS analyzer was built around.
var atsCareerNames = map[string]string{
	"data scientist":       "Data Scientist",
	"frontend developer":   "Frontend Developer",
	"backend developer":    "Backend Developer",
	"full stack developer": "Full Stack Developer",
	"mobile app developer": "Mobile App Developer",
	"devops engineer":      "DevOps Engineer",
	"project manager":      "Project Manager",
}

func (s *Scorer) scoreATSOptimization(text, lower, targetRole string, detectedSkills []string) ATSOptimizationResult {
	var score float64
	var feedback []string

	career, ok := atsCareerNames[targetRole]
	if !ok {
		career = titleCase(targetRole)
	}
	atsResult := s.ats.Analyze(text, detectedSkills, career)

	roleKeywords := s.kb.TargetRoleKeywords(targetRole)
	var foundKeywords, missingKeywords []string
	for _, kw := range roleKeywords {
		if strings.Contains(lower, kw) {
			foundKeywords = append(foundKeywords, kw)
		} else {
			missingKeywords = append(missingKeywords, kw)
		}
	}
	keywordCount := len(foundKeywords)
	total := len(roleKeywords)

	switch {
	case float64(keywordCount) >= float64(total)*0.5:
		score += 15
	case float64(keywordCount) >= float64(total)*0.35:
		score += 12
	case float64(keywordCount) >= float64(total)*0.2:
		score += 8
	case float64(keywordCount) >= float64(total)*0.1:
		score += 5
	default:
		score += 2
	}
	if float64(keywordCount) < float64(total)*0.35 {
		top := missingKeywords
		if len(top) > 5 {
			top = top[:5]
		}
		feedback = append(feedback, fmt.Sprintf("🔑 Consider adding keywords: %s", strings.Join(top, ", ")))
	}

	formatScore := 15
	var formatIssues []string
	if knowledge.SpecialCharPattern.MatchString(text) {
		formatScore -= 3
		formatIssues = append(formatIssues, "Special characters detected that may confuse ATS")
	}
	if knowledge.TableLayoutPattern.MatchString(text) {
		formatScore -= 3
		formatIssues = append(formatIssues, "Possible table formatting detected")
	}
	if knowledge.ImageRefPattern.MatchString(text) {
		formatScore -= 2
		formatIssues = append(formatIssues, "Image references detected - ensure key info is in text")
	}
	headerCount := 0
	for _, h := range []string{"experience", "education", "skills", "summary", "objective", "projects"} {
		if strings.Contains(lower, h) {
			headerCount++
		}
	}
	if headerCount < 3 {
		formatScore -= 3
		formatIssues = append(formatIssues, "Add clear section headers (Education, Skills, Experience)")
	}
	if !knowledge.EmailPattern.MatchString(lower) {
		formatScore -= 2
		formatIssues = append(formatIssues, "No email address detected for ATS parsing")
	}
	if !knowledge.PhonePattern.MatchString(lower) {
		formatScore -= 2
		formatIssues = append(formatIssues, "No phone number detected for ATS parsing")
	}
	if formatScore < 0 {
		formatScore = 0
	}
	score += float64(formatScore)

	for i, issue := range formatIssues {
		if i == 3 {
			break
		}
		feedback = append(feedback, "⚠️ "+issue)
	}

	if score > maxATSOptimization {
		score = maxATSOptimization
	}
	displayMissing := missingKeywords
	if len(displayMissing) > 10 {
		displayMissing = displayMissing[:10]
	}
	return ATSOptimizationResult{
		Score:           score,
		MaxScore:        maxATSOptimization,
		Feedback:        feedback,
		MissingKeywords: displayMissing,
		KeywordsFound:   foundKeywords,
		KeywordCount:    keywordCount,
		TotalKeywords:   total,
		FormatScore:     formatScore,
		FormatIssues:    formatIssues,
		ATSAnalysis:     &atsResult,
	}
}

func scorePresentation(text, lower string) PresentationResult {
	var feedback []string

	consistency := 5
	var consistencyIssues []string

	dateFormats := 0
	for _, p := range knowledge.DateFormatPatterns {
		if p.MatchString(text) {
			dateFormats++
		}
	}
	if dateFormats > 2 {
		consistency--
		consistencyIssues = append(consistencyIssues, "Multiple date formats detected - use consistent format")
	}

	lines := strings.Split(text, "\n")
	upper, title, lowerCase := 0, 0, 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) <= 2 || len(line) >= 20 {
			continue
		}
		switch {
		case isUpper(line):
			upper++
		case isTitle(line):
			title++
		case isLower(line):
			lowerCase++
		}
	}
	significant := 0
	for _, n := range []int{upper, title, lowerCase} {
		if n >= 2 {
			significant++
		}
	}
	if significant > 1 {
		consistency--
		consistencyIssues = append(consistencyIssues, "Inconsistent header capitalization")
	}

	var bulletLines []string
	for _, line := range lines {
		if plainBulletPattern.MatchString(line) {
			bulletLines = append(bulletLines, line)
		}
	}
	withPeriod := 0
	for _, line := range bulletLines {
		if strings.HasSuffix(strings.TrimSpace(line), ".") {
			withPeriod++
		}
	}
	withoutPeriod := len(bulletLines) - withPeriod
	if len(bulletLines) > 0 && min(withPeriod, withoutPeriod) > 2 {
		consistency--
		consistencyIssues = append(consistencyIssues, "Inconsistent punctuation at end of bullet points")
	}

	if consistency < 0 {
		consistency = 0
	}
	for _, issue := range consistencyIssues {
		feedback = append(feedback, "📍 "+issue)
	}

	errorScore := 5
	var errorsFound []string
	for _, typo := range knowledge.CommonTypos {
		if strings.Contains(lower, typo.Wrong) {
			errorsFound = append(errorsFound, fmt.Sprintf("'%s' should be '%s'", typo.Wrong, typo.Right))
			errorScore--
		}
	}
	if strings.Count(text, "  ") > 5 {
		errorScore--
		errorsFound = append(errorsFound, "Multiple double spaces detected")
	}
	if errorScore < 0 {
		errorScore = 0
	}
	if len(errorsFound) > 0 {
		top := errorsFound
		if len(top) > 3 {
			top = top[:3]
		}
		feedback = append(feedback, "✏️ Fix typos: "+strings.Join(top, ", "))
	}

	score := float64(consistency + errorScore)
	if score > maxPresentation {
		score = maxPresentation
	}
	return PresentationResult{
		Score:             score,
		MaxScore:          maxPresentation,
		Feedback:          feedback,
		ConsistencyScore:  consistency,
		ErrorScore:        errorScore,
		ConsistencyIssues: consistencyIssues,
		ErrorsFound:       errorsFound,
	}
}

func starScore(lower string) int {
	score := 0
	for _, keywords := range knowledge.STARKeywords {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				score++
				break
			}
		}
	}
	return score
}

func buildPriorities(level string, length LengthStructureResult, sections SectionsResult, content ContentQualityResult, atsOpt ATSOptimizationResult, presentation PresentationResult) []string {
	type categoryPct struct {
		name string
		pct  float64
	}
	pcts := []categoryPct{
		{"length_structure", length.Score / maxLengthStructure * 100},
		{"sections", sections.Score / maxSections * 100},
		{"content_quality", content.Score / maxContentQuality * 100},
		{"ats", atsOpt.Score / maxATSOptimization * 100},
		{"presentation", presentation.Score / maxPresentation * 100},
	}
	sort.SliceStable(pcts, func(i, j int) bool { return pcts[i].pct < pcts[j].pct })

	var priorities []string
	for _, cp := range pcts[:3] {
		if cp.pct >= 60 {
			continue
		}
		switch cp.name {
		case "length_structure":
			switch level {
			case knowledge.LevelBeginner:
				priorities = append(priorities, "🔥 Priority: Optimize resume length to 1 page and emphasize skills/education")
			case knowledge.LevelMid:
				priorities = append(priorities, "🔥 Priority: Use STAR method in bullet points and show career progression")
			default:
				priorities = append(priorities, "🔥 Priority: Highlight leadership achievements and strategic impact")
			}
		case "sections":
			if missing := sections.SectionsFound.missingNames(); len(missing) > 0 {
				priorities = append(priorities, "🔥 Priority: Add missing sections: "+strings.Join(missing, ", "))
			}
		case "content_quality":
			if content.ActionVerbCount < 5 {
				priorities = append(priorities, "🔥 Priority: Start bullet points with strong action verbs")
			}
			if content.MetricsCount < 3 {
				priorities = append(priorities, "🔥 Priority: Add quantifiable achievements with numbers and percentages")
			}
		case "ats":
			missing := atsOpt.MissingKeywords
			if len(missing) > 3 {
				missing = missing[:3]
			}
			if len(missing) > 0 {
				priorities = append(priorities, "🔥 Priority: Add job-relevant keywords: "+strings.Join(missing, ", "))
			}
		case "presentation":
			priorities = append(priorities, "🔥 Priority: Fix formatting inconsistencies and typos")
		}
	}

	if len(priorities) == 0 {
		switch level {
		case knowledge.LevelBeginner:
			priorities = append(priorities, "💡 Tip: Include internships, projects, and volunteer work to strengthen your profile")
		case knowledge.LevelMid:
			priorities = append(priorities, "💡 Tip: Show career progression and quantify your achievements")
		default:
			priorities = append(priorities, "💡 Tip: Emphasize leadership scope, strategic impact, and business outcomes")
		}
	}

	if len(priorities) > 5 {
		priorities = priorities[:5]
	}
	return priorities
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func countContained(s string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			n++
		}
	}
	return n
}

func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			cased = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return cased
}

func isLower(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			cased = true
			if !unicode.IsLower(r) {
				return false
			}
		}
	}
	return cased
}

// isTitle mirrors the usual title-case test: every word starts uppercase
// with the rest lowercase.
func isTitle(s string) bool {
	cased := false
	newWord := true
	for _, r := range s {
		if !unicode.IsLetter(r) {
			newWord = true
			continue
		}
		cased = true
		if newWord {
			if !unicode.IsUpper(r) {
				return false
			}
		} else if !unicode.IsLower(r) {
			return false
		}
		newWord = false
	}
	return cased
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func roundTo1(v float64) float64 {
	return float64(scoring.RoundInt(v*10)) / 10
}
