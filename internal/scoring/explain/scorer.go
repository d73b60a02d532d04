// Package explain scores a resume across six weighted categories and
// shows its work: every category reports the checks it passed, the
// issues it found and concrete suggestions, and the issues are folded
// into a globally ranked priority-fix list ordered by potential score
// gain. It is one of three independent ATS-style opinions in this
// module (see also the ats and unified packages); their formulas
// overlap but are deliberately not reconciled.
package explain

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"skillfit/internal/knowledge"
	"skillfit/internal/scoring"
)

// Category weights, must sum to 100.
const (
	weightKeywords     = 25.0
	weightATS          = 20.0
	weightContent      = 20.0
	weightParseability = 15.0
	weightReadability  = 10.0
	weightSections     = 10.0
)

var wordPattern = regexp.MustCompile(`\b[a-z]+\b`)

// Section headers an ATS expects to find.
var standardHeaders = []string{"experience", "education", "skills", "summary", "objective", "projects"}

// Headers plus achievement markers used for the readability structure check.
var clarityIndicators = []string{
	"experience", "education", "skills", "summary",
	"objective", "projects", "achievements",
}

var completenessSections = []struct {
	Name     string
	Keywords []string
}{
	{"Contact", []string{"email", "phone", "@", "linkedin"}},
	{"Summary", []string{"summary", "objective", "profile", "about"}},
	{"Experience", []string{"experience", "work history", "employment", "career"}},
	{"Education", []string{"education", "degree", "university", "college", "bachelor", "master"}},
	{"Skills", []string{"skills", "technologies", "competencies", "expertise"}},
}

// CategoryScore is one category's transparent breakdown.
type CategoryScore struct {
	Name          string   `json:"name"`
	Weight        float64  `json:"weight"`
	Score         float64  `json:"score"`
	WeightedScore float64  `json:"weighted_score"`
	PassedChecks  []string `json:"passed_checks"`
	Issues        []string `json:"issues"`
	Suggestions   []string `json:"suggestions"`
}

// PriorityFix is one ranked recommendation with its expected gain in
// overall-score points.
type PriorityFix struct {
	Priority      int              `json:"priority"`
	Category      string           `json:"category"`
	Severity      scoring.Severity `json:"severity"`
	Issue         string           `json:"issue"`
	Solution      string           `json:"solution"`
	PotentialGain float64          `json:"potential_gain"`
}

// RadarData feeds a radar-chart visualization of the six categories.
type RadarData struct {
	Labels  []string  `json:"labels"`
	Scores  []float64 `json:"scores"`
	Weights []float64 `json:"weights"`
	Target  []float64 `json:"target"`
}

// CategoryScores holds the six category breakdowns.
type CategoryScores struct {
	KeywordsSkills      CategoryScore `json:"keywords_skills"`
	ATSFormatting       CategoryScore `json:"ats_formatting"`
	ContentImpact       CategoryScore `json:"content_impact"`
	Parseability        CategoryScore `json:"parseability"`
	Readability         CategoryScore `json:"readability"`
	SectionCompleteness CategoryScore `json:"section_completeness"`
}

// Result is the full explainable breakdown.
type Result struct {
	OverallScore  int            `json:"overall_score"`
	Categories    CategoryScores `json:"category_scores"`
	PriorityFixes []PriorityFix  `json:"priority_fixes"`
	RadarChart    RadarData      `json:"radar_chart_data"`
	TargetRole    string         `json:"target_role"`
	TotalIssues   int            `json:"total_issues"`
	TotalPassed   int            `json:"total_passed"`
}

// Scorer produces explainable scores from the shared knowledge base.
type Scorer struct {
	kb *knowledge.Base
}

func NewScorer(kb *knowledge.Base) *Scorer {
	return &Scorer{kb: kb}
}

// Analyze scores resumeText against targetRole. Unknown roles fall back
// to the generic keyword profile; detectedSkills is accepted for parity
// with the other scorers but keyword matching runs on the text itself.
func (s *Scorer) Analyze(resumeText, targetRole string, detectedSkills []string) Result {
	_ = detectedSkills
	lower := strings.ToLower(resumeText)
	targetRole = strings.TrimSpace(strings.ToLower(targetRole))

	roleKeywords := s.kb.RoleKeywords(targetRole)

	categories := []CategoryScore{
		s.scoreKeywordsSkills(lower, roleKeywords),
		s.scoreATSFormatting(resumeText, lower),
		s.scoreContentImpact(resumeText, lower),
		s.scoreParseability(resumeText),
		s.scoreReadability(resumeText, lower),
		s.scoreSectionCompleteness(lower),
	}

	overall := 0.0
	totalIssues := 0
	totalPassed := 0
	for _, cat := range categories {
		overall += cat.WeightedScore
		totalIssues += len(cat.Issues)
		totalPassed += len(cat.PassedChecks)
	}

	return Result{
		OverallScore: scoring.RoundInt(overall),
		Categories: CategoryScores{
			KeywordsSkills:      categories[0],
			ATSFormatting:       categories[1],
			ContentImpact:       categories[2],
			Parseability:        categories[3],
			Readability:         categories[4],
			SectionCompleteness: categories[5],
		},
		PriorityFixes: buildPriorityFixes(categories),
		RadarChart:    radarData(categories),
		TargetRole:    targetRole,
		TotalIssues:   totalIssues,
		TotalPassed:   totalPassed,
	}
}

// scoreKeywordsSkills awards up to 40 points for technical keyword
// coverage, 30 for tools and 30 for concepts, all by case-insensitive
// substring match (multi-word keywords rule out whole-word matching).
func (s *Scorer) scoreKeywordsSkills(lower string, set knowledge.RoleKeywordSet) CategoryScore {
	cat := CategoryScore{Name: "Keywords & Skills Match", Weight: weightKeywords}

	all := make([]string, 0, len(set.Technical)+len(set.Tools)+len(set.Concepts))
	all = append(all, set.Technical...)
	all = append(all, set.Tools...)
	all = append(all, set.Concepts...)

	var missing []string
	for _, kw := range all {
		if !strings.Contains(lower, kw) {
			missing = append(missing, kw)
		}
	}

	score := 0.0

	techFound := countContained(lower, set.Technical)
	techRate := scoring.Ratio(techFound, len(set.Technical))
	switch {
	case techRate >= 0.6:
		score += 40
		cat.pass("✓ Strong technical skills (%d/%d keywords)", techFound, len(set.Technical))
	case techRate >= 0.4:
		score += 25
		cat.pass("✓ Good technical coverage (%d/%d)", techFound, len(set.Technical))
		cat.suggest("Add more technical skills: %s", joinFirst(missing, 3))
	case techRate >= 0.2:
		score += 15
		cat.issue("✗ Limited technical keywords (%d/%d)", techFound, len(set.Technical))
		cat.suggest("Missing key skills: %s", joinFirst(missing, 5))
	default:
		score += 5
		cat.issue("✗ Very few technical keywords detected")
		cat.suggest("Add essential skills: %s", joinFirst(missing, 5))
	}

	toolsFound := countContained(lower, set.Tools)
	toolsRate := scoring.Ratio(toolsFound, len(set.Tools))
	switch {
	case toolsRate >= 0.5:
		score += 30
		cat.pass("✓ Good tool proficiency (%d tools)", toolsFound)
	case toolsRate >= 0.3:
		score += 20
		cat.pass("✓ Some tools mentioned (%d)", toolsFound)
	default:
		score += 10
		cat.issue("✗ Few industry tools mentioned")
		var missingTools []string
		for _, t := range set.Tools {
			if !strings.Contains(lower, t) {
				missingTools = append(missingTools, t)
			}
		}
		cat.suggest("Consider adding tools: %s", joinFirst(missingTools, 3))
	}

	conceptsFound := countContained(lower, set.Concepts)
	conceptsRate := scoring.Ratio(conceptsFound, len(set.Concepts))
	switch {
	case conceptsRate >= 0.4:
		score += 30
		cat.pass("✓ Strong conceptual knowledge (%d concepts)", conceptsFound)
	case conceptsRate >= 0.2:
		score += 15
		cat.suggest("Add more methodology/concept keywords")
	default:
		score += 5
		cat.issue("✗ Missing key concepts and methodologies")
	}

	return cat.finalize(score)
}

// scoreATSFormatting checks for formatting that breaks automated
// parsers: decorative characters, table layouts, non-standard section
// headers and image-heavy documents. 25 points each.
func (s *Scorer) scoreATSFormatting(text, lower string) CategoryScore {
	cat := CategoryScore{Name: "ATS Formatting", Weight: weightATS}
	score := 0.0

	specials := len(knowledge.SpecialCharPattern.FindAllString(text, -1))
	switch {
	case specials == 0:
		score += 25
		cat.pass("✓ No ATS-breaking special characters")
	case specials < 5:
		score += 15
		cat.issue("✗ %d special characters may confuse ATS", specials)
		cat.suggest("Replace special bullets with standard dashes or asterisks")
	default:
		score += 5
		cat.issue("✗ Many special characters detected")
		cat.suggest("Use simple formatting: standard bullets (-), no icons")
	}

	if !knowledge.TableLayoutPattern.MatchString(text) {
		score += 25
		cat.pass("✓ No table formatting detected")
	} else {
		score += 10
		cat.issue("✗ Possible table/column formatting detected")
		cat.suggest("Use single-column layout for better ATS parsing")
	}

	headersFound := countContained(lower, standardHeaders)
	switch {
	case headersFound >= 4:
		score += 25
		cat.pass("✓ %d standard section headers found", headersFound)
	case headersFound >= 2:
		score += 15
		cat.suggest("Add more standard headers (Experience, Skills, Education)")
	default:
		score += 5
		cat.issue("✗ Missing standard section headers")
		cat.suggest("Use clear headers: EXPERIENCE, EDUCATION, SKILLS")
	}

	hasImageRefs := knowledge.ImageRefPattern.MatchString(text)
	wordCount := len(strings.Fields(text))
	switch {
	case !hasImageRefs && wordCount > 100:
		score += 25
		cat.pass("✓ Text-based format (ATS-friendly)")
	case hasImageRefs:
		score += 10
		cat.issue("✗ Image references detected")
		cat.suggest("Ensure all content is in text format, not images")
	default:
		score += 15
	}

	return cat.finalize(score)
}

// scoreContentImpact rewards action verbs (30), quantified achievements
// (35), bullet structure (20) and result-oriented language (15).
func (s *Scorer) scoreContentImpact(text, lower string) CategoryScore {
	cat := CategoryScore{Name: "Content & Impact", Weight: weightContent}
	score := 0.0

	verbCount := countContained(lower, knowledge.ImpactVerbs)
	switch {
	case verbCount >= 8:
		score += 30
		cat.pass("✓ Strong action verbs (%d found)", verbCount)
	case verbCount >= 5:
		score += 20
		cat.pass("✓ Good use of action verbs (%d)", verbCount)
		cat.suggest("Add more strong verbs: achieved, optimized, spearheaded")
	case verbCount >= 2:
		score += 10
		cat.issue("✗ Limited action verbs (%d)", verbCount)
		cat.suggest("Start bullet points with action verbs (Led, Developed, Achieved)")
	default:
		cat.issue("✗ No strong action verbs detected")
		cat.suggest("Use action verbs: 'Led', 'Developed', 'Achieved', 'Optimized'")
	}

	metricsFound := 0
	for _, p := range knowledge.CompactMetricPatterns {
		metricsFound += len(p.FindAllString(text, -1))
	}
	switch {
	case metricsFound >= 5:
		score += 35
		cat.pass("✓ Excellent quantification (%d metrics)", metricsFound)
	case metricsFound >= 3:
		score += 25
		cat.pass("✓ Good use of metrics (%d)", metricsFound)
		cat.suggest("Add more numbers: 'Increased sales by 25%%', 'Led team of 5'")
	case metricsFound >= 1:
		score += 15
		cat.issue("✗ Few quantifiable achievements")
		cat.suggest("Quantify your impact: '30%%', '$50K', '100+ users'")
	default:
		score += 5
		cat.issue("✗ No measurable achievements found")
		cat.suggest("Add specific numbers: 'Improved by 30%%', 'Managed $100K budget'")
	}

	totalBullets := 0
	for _, line := range strings.Split(text, "\n") {
		if knowledge.BulletLinePattern.MatchString(line) {
			totalBullets++
			continue
		}
		trimmed := strings.ToLower(strings.TrimSpace(line))
		for _, v := range knowledge.ImpactVerbs[:15] {
			if strings.HasPrefix(trimmed, v) {
				totalBullets++
				break
			}
		}
	}
	switch {
	case totalBullets >= 8:
		score += 20
		cat.pass("✓ Well-structured bullet points (%d)", totalBullets)
	case totalBullets >= 4:
		score += 12
		cat.suggest("Add more bullet points for better readability")
	default:
		score += 5
		cat.issue("✗ Few bullet points detected")
		cat.suggest("Use bullet points instead of paragraphs")
	}

	resultCount := countContained(lower, knowledge.ResultWords)
	switch {
	case resultCount >= 4:
		score += 15
		cat.pass("✓ Result-oriented language used")
	case resultCount >= 2:
		score += 10
	default:
		score += 5
		cat.suggest("Emphasize results: 'which resulted in...', 'leading to...'")
	}

	return cat.finalize(score)
}

// scoreParseability checks that a machine can pull the essentials out:
// email, phone, clean encoding and enough line structure. 25 points each.
func (s *Scorer) scoreParseability(text string) CategoryScore {
	cat := CategoryScore{Name: "Parseability", Weight: weightParseability}
	score := 0.0

	if knowledge.EmailPattern.MatchString(text) {
		score += 25
		cat.pass("✓ Email address detected")
	} else {
		cat.issue("✗ No email address found")
		cat.suggest("Add a professional email address")
	}

	hasPhone := false
	for _, p := range knowledge.StrictPhonePatterns {
		if p.MatchString(text) {
			hasPhone = true
			break
		}
	}
	if hasPhone {
		score += 25
		cat.pass("✓ Phone number detected")
	} else {
		cat.issue("✗ No phone number found")
		cat.suggest("Add your phone number for contact")
	}

	if !knowledge.ControlCharPattern.MatchString(text) {
		score += 25
		cat.pass("✓ Clean text encoding")
	} else {
		score += 10
		cat.issue("✗ Text encoding issues detected")
		cat.suggest("Re-save the document to fix encoding")
	}

	lineCount := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lineCount++
		}
	}
	switch {
	case lineCount >= 15:
		score += 25
		cat.pass("✓ Well-structured document")
	case lineCount >= 8:
		score += 15
		cat.suggest("Add more content sections")
	default:
		score += 5
		cat.issue("✗ Resume appears too short")
		cat.suggest("Expand your resume content")
	}

	return cat.finalize(score)
}

// scoreReadability checks average sentence length (35), vocabulary
// variety (35) and clear section organization (30).
func (s *Scorer) scoreReadability(text, lower string) CategoryScore {
	cat := CategoryScore{Name: "Readability", Weight: weightReadability}
	score := 0.0

	var sentences []string
	for _, sent := range knowledge.SentenceSplitPattern.Split(text, -1) {
		sent = strings.TrimSpace(sent)
		if sent != "" && len(strings.Fields(sent)) > 2 {
			sentences = append(sentences, sent)
		}
	}
	if len(sentences) > 0 {
		totalWords := 0
		for _, sent := range sentences {
			totalWords += len(strings.Fields(sent))
		}
		avgWords := float64(totalWords) / float64(len(sentences))
		switch {
		case avgWords >= 10 && avgWords <= 20:
			score += 35
			cat.pass("✓ Good sentence length")
		case avgWords < 10:
			score += 25
			cat.suggest("Some sentences may be too short - add more detail")
		default:
			score += 15
			cat.issue("✗ Sentences are too long")
			cat.suggest("Break up long sentences for readability")
		}
	} else {
		score += 20
	}

	words := wordPattern.FindAllString(lower, -1)
	if len(words) > 0 {
		unique := make(map[string]struct{}, len(words))
		for _, w := range words {
			unique[w] = struct{}{}
		}
		variety := float64(len(unique)) / float64(len(words))
		switch {
		case variety >= 0.4:
			score += 35
			cat.pass("✓ Good vocabulary variety")
		case variety >= 0.3:
			score += 25
		default:
			score += 15
			cat.issue("✗ Repetitive language detected")
			cat.suggest("Use synonyms to avoid repetition")
		}
	} else {
		score += 20
	}

	clarityCount := countContained(lower, clarityIndicators)
	switch {
	case clarityCount >= 4:
		score += 30
		cat.pass("✓ Clear section organization")
	case clarityCount >= 2:
		score += 20
	default:
		score += 10
		cat.issue("✗ Unclear document structure")
		cat.suggest("Add clear section headers")
	}

	return cat.finalize(score)
}

// scoreSectionCompleteness awards 20 points per canonical section found.
func (s *Scorer) scoreSectionCompleteness(lower string) CategoryScore {
	cat := CategoryScore{Name: "Section Completeness", Weight: weightSections}
	score := 0.0

	for _, section := range completenessSections {
		found := false
		for _, kw := range section.Keywords {
			if strings.Contains(lower, kw) {
				found = true
				break
			}
		}
		if found {
			score += 20
			cat.pass("✓ %s section present", section.Name)
		} else {
			cat.issue("✗ Missing %s section", section.Name)
			cat.suggest("Add a %s section to your resume", section.Name)
		}
	}

	return cat.finalize(score)
}

func (c *CategoryScore) pass(format string, args ...any) {
	c.PassedChecks = append(c.PassedChecks, fmt.Sprintf(format, args...))
}

func (c *CategoryScore) issue(format string, args ...any) {
	c.Issues = append(c.Issues, fmt.Sprintf(format, args...))
}

func (c *CategoryScore) suggest(format string, args ...any) {
	c.Suggestions = append(c.Suggestions, fmt.Sprintf(format, args...))
}

// finalize records the raw score and derives the weighted contribution.
func (c CategoryScore) finalize(score float64) CategoryScore {
	c.Score = round1(score)
	c.WeightedScore = round2(score * c.Weight / 100)
	return c
}

func countContained(text string, needles []string) int {
	n := 0
	for _, needle := range needles {
		if strings.Contains(text, needle) {
			n++
		}
	}
	return n
}

func joinFirst(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
