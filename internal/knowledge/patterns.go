package knowledge

import (
	"regexp"
	"strings"
)

// Named regex predicates shared by the scorers. Compiled once at package
// init; scorers must not compile their own copies of these.
var (
	// EmailPattern matches any plausible email address.
	EmailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)

	// LoosePhonePattern matches any 10+ run of digits, spaces, dashes
	// and parentheses. Deliberately permissive; the ATS check only asks
	// whether something phone-shaped exists.
	LoosePhonePattern = regexp.MustCompile(`[\d\s\-()]{10,}`)

	// PhonePattern matches formatted phone numbers, with or without a
	// country code, or a bare 10-digit run.
	PhonePattern = regexp.MustCompile(`(?:\+\d{1,3}[-.\s]?)?\d{3}[-.\s]?\d{3}[-.\s]?\d{4}|\d{10}`)

	// StrictPhonePatterns are tried in order for parseability checks.
	StrictPhonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\+\d{1,3}[-.\s]?\d{1,4}[-.\s]?\d{1,4}[-.\s]?\d{1,4}`),
		regexp.MustCompile(`\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\d{10}`),
	}

	// BulletLinePattern matches lines that open with a bullet character.
	BulletLinePattern = regexp.MustCompile(`^\s*[•\-*►▸]`)

	// NumberedLinePattern matches numbered list lines.
	NumberedLinePattern = regexp.MustCompile(`^\s*\d+\.`)

	// SpecialCharPattern matches box-drawing and decorative glyphs that
	// confuse applicant tracking systems.
	SpecialCharPattern = regexp.MustCompile(`[│├└┌┐┘┴┬┤►▸▪▫●○★☆✓✗✔✘→←↑↓]`)

	// TableLayoutPattern matches runs of tabs or spaces that suggest
	// tabular layout.
	TableLayoutPattern = regexp.MustCompile(`\t{2,}|\s{10,}`)

	// ImageRefPattern matches embedded image file references.
	ImageRefPattern = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|gif|bmp|svg)`)

	// ControlCharPattern matches non-printable bytes that survive a bad
	// text extraction.
	ControlCharPattern = regexp.MustCompile("[\x00-\x08\x0b\x0c\x0e-\x1f]")

	// YearsOfExperiencePattern captures "N years" style phrases.
	YearsOfExperiencePattern = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)\s*(?:of\s+)?(?:experience)?`)

	// SentenceSplitPattern splits prose into sentences.
	SentenceSplitPattern = regexp.MustCompile(`[.!?]+`)
)

// MetricPatterns detect quantified achievements: percentages, money,
// counts, deltas, multipliers and team sizes.
var MetricPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+%`),
	regexp.MustCompile(`(?i)\$[\d,]+[kmb]?`),
	regexp.MustCompile(`(?i)₹[\d,]+[lkmc]?`),
	regexp.MustCompile(`(?i)\d+\+?\s*(years?|yrs?)`),
	regexp.MustCompile(`(?i)\d+\s*(projects?|clients?|users?|customers?|team)`),
	regexp.MustCompile(`(?i)increased\s+(?:by\s+)?\d+`),
	regexp.MustCompile(`(?i)reduced\s+(?:by\s+)?\d+`),
	regexp.MustCompile(`(?i)saved\s+(?:\$|₹)?\d+`),
	regexp.MustCompile(`(?i)\d+[xX]\s*(?:improvement|faster|increase)`),
	regexp.MustCompile(`(?i)[1-9]\d*\s*(?:team\s+)?members?`),
}

// CompactMetricPatterns is the smaller battery used where only presence
// matters, not a precise count.
var CompactMetricPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+%`),
	regexp.MustCompile(`\$[\d,]+`),
	regexp.MustCompile(`₹[\d,]+`),
	regexp.MustCompile(`(?i)\d+\s*(users?|customers?|clients?|projects?|team)`),
	regexp.MustCompile(`(?i)increased\s+(?:by\s+)?\d+`),
	regexp.MustCompile(`(?i)reduced\s+(?:by\s+)?\d+`),
	regexp.MustCompile(`(?i)\d+[xX]\s*(improvement|faster|increase)`),
}

// AchievementPatterns is the quantified-achievement battery used by the
// quality checker; unlike the metric batteries it also counts tenure
// ("5 years") and quantity ("10+ projects") phrasing.
var AchievementPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+%`),
	regexp.MustCompile(`\$\d+[KkMmBb]?`),
	regexp.MustCompile(`(?i)\d+[KkMmBb]\+?\s*(?:users?|customers?|clients?|people|employees?)`),
	regexp.MustCompile(`(?i)\d+x\s*(?:faster|improvement|increase)`),
	regexp.MustCompile(`(?i)(?:increased|decreased|reduced|improved)\s+(?:by\s+)?\d+%`),
	regexp.MustCompile(`(?i)\d+\s*(?:years?|months?)`),
	regexp.MustCompile(`(?i)\d+\+\s*(?:projects?|teams?|members?)`),
}

// PersonalInfoPatterns flag details that do not belong on a modern resume.
var PersonalInfoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(age|dob|date of birth)\s*:\s*\d+`),
	regexp.MustCompile(`(?i)\b(marital status|married|single|divorced)\b`),
	regexp.MustCompile(`(?i)\b(religion|religious)\s*:`),
	regexp.MustCompile(`(?i)\b(nationality)\s*:`),
	regexp.MustCompile(`(?i)\b(gender|sex)\s*:`),
	regexp.MustCompile(`(?i)\b(social security|ssn)\s*:?\s*\d`),
	regexp.MustCompile(`(?i)\bpassport\s*(number|no\.?)\s*:?\s*[a-z0-9]+`),
}

// DateFormatPatterns cover the date styles resumes mix; more than two in
// one document reads as inconsistent.
var DateFormatPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2,4}`),
	regexp.MustCompile(`\d{4}-\d{2}-\d{2}`),
	regexp.MustCompile(`(?i)(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4}`),
	regexp.MustCompile(`(?i)\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*`),
}

// Impact patterns for experience analysis: measurable outcomes tied to
// scale, money or team leadership.
var (
	ImpactPercentagePattern = regexp.MustCompile(`(?i)(\d+)\s*%\s*(?:improvement|increase|decrease|reduction|faster|slower)`)
	ImpactScalePattern      = regexp.MustCompile(`(?i)(?:serving|processed|handled)\s*(?:\d+[kmb]?\+?)\s*(?:users?|requests?|transactions?)`)
	ImpactRevenuePattern    = regexp.MustCompile(`(?i)\$\s*[\d,]+\s*[kmb]?\s*(?:saved|generated|increased|reduced)`)
	ImpactTeamSizePattern   = regexp.MustCompile(`(?i)(?:led|managed|team of)\s*(\d+)\s*(?:members?|developers?|engineers?|people)?`)
)

// PhoneRunPattern matches 10+ character runs of digits and phone
// punctuation. HasPhoneRun additionally requires a digit in the run, which
// keeps runs of plain whitespace from counting as a phone number.
var PhoneRunPattern = regexp.MustCompile(`[\d\s\-()+]{10,}`)

// HasPhoneRun reports whether text contains a phone-shaped run with at
// least one digit.
func HasPhoneRun(text string) bool {
	for _, m := range PhoneRunPattern.FindAllString(text, -1) {
		if strings.ContainsAny(m, "0123456789") {
			return true
		}
	}
	return false
}

// CountMetrics returns how many quantified-achievement matches the full
// battery finds in text.
func CountMetrics(text string) int {
	n := 0
	for _, p := range MetricPatterns {
		n += len(p.FindAllString(text, -1))
	}
	return n
}

// WordBoundaryPattern builds a \b-delimited matcher for a literal word.
// Used for verb detection so "led" does not match "failed".
func WordBoundaryPattern(word string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(word) + `\b`)
}
