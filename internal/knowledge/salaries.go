package knowledge

import "strings"

// Salary tables are annual INR figures based on Indian market rates.

// DefaultBaseSalary applies when no career matches the table.
const DefaultBaseSalary = 600000

// Skill bonus parameters: additive percentage per relevant skill, capped.
const (
	SkillBonusPerSkill = 0.015
	MaxSkillBonus      = 0.15
)

var careerBaseSalaries = map[string]int{
	"software engineer":          850000,
	"software developer":         850000,
	"data scientist":             1000000,
	"frontend developer":         700000,
	"backend developer":          800000,
	"full stack developer":       850000,
	"mobile app developer":       800000,
	"devops engineer":            900000,
	"machine learning engineer":  1200000,
	"web developer":              600000,
	"data analyst":               650000,
	"hr manager":                 800000,
	"human resources":            500000,
	"recruiter":                  450000,
	"hr specialist":              550000,
	"training manager":           700000,
	"payroll specialist":         400000,
	"talent acquisition":         550000,
	"marketing manager":          900000,
	"digital marketer":           500000,
	"digital marketing specialist": 550000,
	"brand manager":              1000000,
	"content marketing manager":  700000,
	"market research analyst":    600000,
	"seo specialist":             450000,
	"financial analyst":          800000,
	"accountant":                 500000,
	"investment banker":          1500000,
	"risk manager":               1000000,
	"treasury analyst":           700000,
	"auditor":                    600000,
	"sales manager":              800000,
	"account executive":          600000,
	"sales executive":            450000,
	"business development":       700000,
	"project manager":            1000000,
	"product manager":            1200000,
	"scrum master":               1000000,
	"healthcare administrator":   700000,
	"medical billing specialist": 350000,
	"legal advisor":              900000,
	"corporate lawyer":           1500000,
	"operations manager":         800000,
	"supply chain manager":       850000,
}

// BaseSalary resolves the base salary for a career title. Exact matches
// win; otherwise the first table entry (in sorted order, so lookups are
// deterministic) that contains or is contained by the title applies.
func (b *Base) BaseSalary(career string) (salary int, known bool) {
	normalized := normalizeKey(career)
	if sal, ok := b.baseSalaries[normalized]; ok {
		return sal, true
	}
	for _, key := range sortedKeys(b.baseSalaries) {
		if strings.Contains(normalized, key) || strings.Contains(key, normalized) {
			return b.baseSalaries[key], true
		}
	}
	return DefaultBaseSalary, false
}

// KnownCareerSalary reports whether the career has an exact salary entry.
func (b *Base) KnownCareerSalary(career string) bool {
	_, ok := b.baseSalaries[normalizeKey(career)]
	return ok
}

// ExperienceBand maps a span of years to a salary multiplier.
type ExperienceBand struct {
	Level      string
	Multiplier float64
	MinYears   int
	MaxYears   int
}

// ExperienceBands in ascending seniority order. Year spans overlap at the
// boundaries; the first matching band wins.
var ExperienceBands = []ExperienceBand{
	{"fresher", 0.7, 0, 1},
	{"junior", 0.85, 1, 3},
	{"mid", 1.0, 3, 5},
	{"senior", 1.3, 5, 8},
	{"lead", 1.5, 8, 12},
	{"executive", 1.8, 12, 100},
}

// EducationBonus is an additive salary percentage for a qualification.
type EducationBonus struct {
	Qualification string
	Bonus         float64
}

// educationBonuses ordered by specificity; partial matching walks the list
// top to bottom.
var educationBonuses = []EducationBonus{
	{"phd", 0.20},
	{"doctorate", 0.20},
	{"masters", 0.12},
	{"master", 0.12},
	{"m.tech", 0.12},
	{"mtech", 0.12},
	{"m.sc", 0.10},
	{"msc", 0.10},
	{"mba", 0.15},
	{"m.e", 0.12},
	{"mca", 0.10},
	{"bachelors", 0.0},
	{"bachelor", 0.0},
	{"b.tech", 0.0},
	{"btech", 0.0},
	{"b.e", 0.0},
	{"b.sc", 0.0},
	{"bsc", 0.0},
	{"bba", 0.0},
	{"bca", 0.0},
	{"diploma", -0.10},
	{"high school", -0.20},
	{"12th", -0.20},
	{"10th", -0.25},
}

// EducationBonusFor resolves the salary bonus for a qualification string,
// trying exact match, then substring match, then coarse degree patterns.
// The second return is false when nothing matched and no bonus applies.
func (b *Base) EducationBonusFor(qualification string) (float64, bool) {
	qual := normalizeKey(qualification)
	if qual == "" {
		return 0, false
	}
	for _, eb := range b.educationBonuses {
		if eb.Qualification == qual {
			return eb.Bonus, true
		}
	}
	for _, eb := range b.educationBonuses {
		if strings.Contains(qual, eb.Qualification) || strings.Contains(eb.Qualification, qual) {
			return eb.Bonus, true
		}
	}
	if containsAny(qual, "phd", "doctorate", "ph.d") {
		return 0.20, true
	}
	if containsAny(qual, "master", "m.tech", "mba", "m.sc", "m.e", "mca") {
		return 0.12, true
	}
	if containsAny(qual, "bachelor", "b.tech", "b.e", "b.sc", "bba", "bca") {
		return 0.0, true
	}
	return 0, false
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Industry pairs an industry name with the keywords that vote for it and
// the education/skill terms that count as relevant in it.
type Industry struct {
	Name              string
	Keywords          []string
	RelevantEducation []string
	RelevantSkills    []string
}

var industries = []Industry{
	{
		Name:              "tech",
		Keywords:          []string{"software", "developer", "engineer", "programmer", "data", "ml", "ai", "devops", "cloud"},
		RelevantEducation: []string{"computer", "software", "engineering", "technology", "science", "it", "information", "data"},
		RelevantSkills:    []string{"python", "java", "javascript", "react", "node", "sql", "git", "aws", "docker", "kubernetes"},
	},
	{
		Name:              "business",
		Keywords:          []string{"analyst", "manager", "consultant", "strategy", "operations", "sales", "marketing"},
		RelevantEducation: []string{"business", "management", "mba", "commerce", "economics", "administration"},
		RelevantSkills:    []string{"excel", "powerpoint", "data analysis", "sql", "tableau", "project management", "crm"},
	},
	{
		Name:              "finance",
		Keywords:          []string{"financial", "accountant", "banking", "investment", "analyst", "treasury", "audit"},
		RelevantEducation: []string{"finance", "accounting", "economics", "business", "mathematics", "statistics"},
		RelevantSkills:    []string{"excel", "financial modeling", "accounting", "quickbooks", "sap", "financial analysis"},
	},
	{
		Name:              "healthcare",
		Keywords:          []string{"medical", "healthcare", "clinical", "patient", "nursing", "doctor"},
		RelevantEducation: []string{"medical", "healthcare", "nursing", "biology", "medicine", "health"},
		RelevantSkills:    []string{"ehr", "epic", "medical terminology", "hipaa", "patient care"},
	},
	{
		Name:              "hr",
		Keywords:          []string{"hr", "human resources", "recruitment", "talent", "recruiting", "payroll"},
		RelevantEducation: []string{"psychology", "human resources", "business", "management", "sociology"},
		RelevantSkills:    []string{"hris", "recruiting", "ats", "payroll", "workday", "talent management"},
	},
	{
		Name:              "creative",
		Keywords:          []string{"design", "creative", "graphic", "ux", "ui", "artist", "content", "writer"},
		RelevantEducation: []string{"design", "arts", "fine arts", "communication", "media", "graphics"},
		RelevantSkills:    []string{"photoshop", "illustrator", "figma", "sketch", "indesign", "after effects"},
	},
}

// Industries returns the industry profiles in declaration order.
func (b *Base) Industries() []Industry {
	return b.industries
}

// IndustryNamed returns the industry profile for a name; the "general"
// fallback has no keywords and is returned for unknown names.
func (b *Base) IndustryNamed(name string) Industry {
	for _, ind := range b.industries {
		if ind.Name == name {
			return ind
		}
	}
	return Industry{Name: "general"}
}
