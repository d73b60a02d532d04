package knowledge

// ActionVerbs is the main action-verb battery, grouped loosely by what the
// verb conveys (leadership, achievement, creation, improvement, analysis,
// communication, technical). Scorers match them case-insensitively.
var ActionVerbs = []string{
	"led", "managed", "directed", "supervised", "coordinated", "executed",
	"spearheaded", "orchestrated", "oversaw", "delegated", "mentored",
	"achieved", "accomplished", "delivered", "exceeded", "surpassed",
	"attained", "earned", "completed", "succeeded", "won",
	"created", "developed", "designed", "built", "established",
	"implemented", "launched", "initiated", "founded", "introduced",
	"improved", "enhanced", "optimized", "streamlined", "increased",
	"reduced", "accelerated", "upgraded", "transformed", "revamped",
	"analyzed", "evaluated", "assessed", "researched", "investigated",
	"identified", "discovered", "examined", "diagnosed", "audited",
	"presented", "negotiated", "collaborated", "communicated", "advocated",
	"persuaded", "influenced", "facilitated", "mediated", "counseled",
	"programmed", "engineered", "automated", "integrated", "deployed",
	"configured", "debugged", "tested", "maintained", "troubleshot",
}

// ImpactVerbs is the compact alphabetical verb list the transparent scorer
// uses for its content-impact category.
var ImpactVerbs = []string{
	"achieved", "accelerated", "accomplished", "analyzed", "architected",
	"built", "collaborated", "created", "delivered", "designed",
	"developed", "drove", "enhanced", "established", "executed",
	"generated", "grew", "implemented", "improved", "increased",
	"launched", "led", "managed", "mentored", "optimized",
	"orchestrated", "pioneered", "produced", "reduced", "revamped",
	"scaled", "spearheaded", "streamlined", "transformed", "upgraded",
}

// StrongActionVerbs open high-impact experience bullets.
var StrongActionVerbs = []string{
	"built", "developed", "architected", "led", "designed", "implemented",
	"created", "engineered", "spearheaded", "pioneered", "orchestrated",
	"transformed", "optimized", "automated", "delivered", "launched",
}

// WeakActionVerbs are passive phrasings that dilute experience bullets.
var WeakActionVerbs = []string{
	"worked on", "helped with", "assisted", "was responsible",
	"participated", "involved in", "contributed to", "supported",
}

// STARKeywords map each phase of the situation-task-action-result method
// to the words that signal it.
var STARKeywords = map[string][]string{
	"situation": {"when", "while", "during", "faced", "encountered", "situation"},
	"task":      {"responsible", "tasked", "assigned", "goal", "objective", "needed"},
	"action":    {"implemented", "developed", "created", "led", "managed", "designed"},
	"result":    {"resulted", "achieved", "increased", "decreased", "improved", "saved", "generated"},
}

// Senior-level language batteries.
var (
	LeadershipKeywords = []string{
		"led", "managed", "directed", "oversaw", "supervised", "mentored",
		"coached", "guided", "spearheaded", "orchestrated", "championed",
	}
	StrategicKeywords = []string{
		"strategy", "strategic", "vision", "transformation", "growth",
		"innovation", "initiative", "roadmap", "alignment", "optimization",
	}
	BusinessImpactKeywords = []string{
		"revenue", "cost savings", "roi", "profit", "efficiency", "productivity",
		"market share", "customer satisfaction", "team size", "budget",
	}
)

// ResultWords signal outcome-oriented writing.
var ResultWords = []string{
	"result", "achieved", "delivered", "accomplished", "impact",
	"outcome", "success", "improved", "increased", "reduced",
}

// GenericPhrases are filler phrases recruiters flag.
var GenericPhrases = []string{
	"team player", "hard worker", "detail oriented", "self starter",
	"go getter", "think outside the box", "results driven",
	"excellent communication skills", "highly motivated",
	"responsible for", "duties included", "worked on", "helped with",
	"assisted with", "was responsible", "various tasks",
	"fast learner", "passionate", "synergy", "proactive",
}

// OutdatedSkills date a resume when listed as current skills.
var OutdatedSkills = []string{
	"vb6", "visual basic 6", "cobol", "fortran", "delphi",
	"flash", "actionscript", "silverlight", "cold fusion",
	"frontpage", "dreamweaver", "ftp", "cvs", "svn",
	"windows xp", "windows vista", "ie6", "internet explorer 6",
}

// AccomplishmentVerbs is the verb battery the quality checker scans
// experience bullets with.
var AccomplishmentVerbs = []string{
	"achieved", "accomplished", "implemented", "developed", "created", "designed",
	"built", "improved", "increased", "decreased", "reduced", "optimized",
	"managed", "led", "directed", "coordinated", "organized", "established",
	"launched", "delivered", "executed", "streamlined", "automated", "migrated",
	"architected", "engineered", "resolved", "enhanced", "transformed", "scaled",
	"deployed", "integrated", "collaborated", "facilitated", "pioneered", "spearheaded",
}

// Typo is a common misspelling paired with its correction.
type Typo struct {
	Wrong string
	Right string
}

// CommonTypos is checked as plain substrings against lowercased text.
// Ordered so reported errors come out in a stable sequence.
var CommonTypos = []Typo{
	{"teh", "the"},
	{"recieve", "receive"},
	{"seperate", "separate"},
	{"occured", "occurred"},
	{"definately", "definitely"},
	{"experiance", "experience"},
	{"managment", "management"},
	{"developement", "development"},
	{"acheivement", "achievement"},
	{"responsiblity", "responsibility"},
}

// SeniorityKeywords group title fragments by the seniority tier they imply.
var SeniorityKeywords = map[string][]string{
	"senior": {"senior", "sr.", "lead", "principal", "staff", "architect"},
	"mid":    {"mid-level", "experienced", "professional"},
	"junior": {"junior", "jr.", "entry-level", "associate", "intern", "trainee"},
}

// SeniorityTiers orders the tiers most-senior first; detection stops at
// the first tier with a keyword hit.
var SeniorityTiers = []string{"senior", "mid", "junior"}

// ProjectComplexityIndicators map a complexity tier to the phrases that
// suggest it in a project description.
var ProjectComplexityIndicators = map[string][]string{
	"high": {
		"microservices", "enterprise", "production", "scaled", "distributed",
		"high availability", "fault tolerant", "million users", "10k users",
		"real-time", "concurrent", "load balancing", "caching layer",
	},
	"medium": {
		"authentication", "authorization", "payment", "api integration",
		"deployment", "database design", "testing", "ci/cd", "responsive",
		"rest api", "third-party integration", "user management",
	},
	"low": {
		"todo", "calculator", "portfolio", "clone", "tutorial", "basic",
		"simple", "demo", "practice", "learning project", "personal project",
	},
}
