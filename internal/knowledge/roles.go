package knowledge

// Experience level names.
const (
	LevelBeginner = "beginner"
	LevelMid      = "mid-level"
	LevelSenior   = "senior-level"
)

// ExperienceLevel describes how expectations shift with seniority: allowed
// resume length, which areas reviewers focus on, and keywords the level is
// expected to show.
type ExperienceLevel struct {
	Name             string
	Label            string
	Description      string
	MaxPages         int
	FocusAreas       []string
	RequiredKeywords []string
}

// RoleKeywordSet groups a role's keywords by kind for weighted matching.
type RoleKeywordSet struct {
	Technical []string
	Tools     []string
	Concepts  []string
}

var experienceLevels = map[string]ExperienceLevel{
	LevelBeginner: {
		Name:        LevelBeginner,
		Label:       "Beginner (0-2 years)",
		Description: "Students, fresh graduates, entry-level",
		MaxPages:    1,
		FocusAreas:  []string{"skills", "education", "projects"},
	},
	LevelMid: {
		Name:        LevelMid,
		Label:       "Mid-level (3-7 years)",
		Description: "Professionals with some experience",
		MaxPages:    2,
		FocusAreas:  []string{"achievements", "experience", "skills"},
	},
	LevelSenior: {
		Name:             LevelSenior,
		Label:            "Senior-level (8+ years)",
		Description:      "Leadership roles, strategic positions",
		MaxPages:         2,
		FocusAreas:       []string{"leadership", "strategy", "business_impact"},
		RequiredKeywords: []string{"led", "managed", "directed", "oversaw", "strategy", "vision"},
	},
}

var targetRoleKeywords = map[string][]string{
	"data scientist": {
		"python", "machine learning", "deep learning", "tensorflow", "pytorch",
		"pandas", "numpy", "scikit-learn", "sql", "statistics", "data analysis",
		"visualization", "tableau", "power bi", "r", "jupyter", "big data",
		"spark", "hadoop", "neural networks", "nlp", "computer vision", "keras",
		"data mining", "predictive modeling", "feature engineering",
	},
	"frontend developer": {
		"html", "css", "javascript", "react", "vue", "angular", "typescript",
		"responsive design", "sass", "less", "webpack", "vite", "npm", "yarn",
		"git", "ui", "ux", "bootstrap", "tailwind", "redux", "jest", "cypress",
		"figma", "accessibility", "web performance", "cross-browser",
	},
	"backend developer": {
		"python", "java", "node.js", "c#", "go", "rust", "sql", "postgresql",
		"mysql", "mongodb", "redis", "api", "rest", "graphql", "docker",
		"kubernetes", "aws", "azure", "gcp", "microservices", "spring",
		"django", "flask", "express", "fastapi", "database", "orm",
	},
	"full stack developer": {
		"html", "css", "javascript", "react", "angular", "vue", "node.js",
		"python", "java", "sql", "mongodb", "postgresql", "api", "rest",
		"docker", "git", "typescript", "aws", "azure", "redux", "express",
		"authentication", "testing", "ci/cd", "agile",
	},
	"mobile app developer": {
		"ios", "android", "swift", "kotlin", "java", "react native", "flutter",
		"dart", "xcode", "android studio", "mobile ui", "app store", "play store",
		"firebase", "push notifications", "rest api", "sqlite", "realm",
		"objective-c", "swiftui", "jetpack compose",
	},
	"devops engineer": {
		"docker", "kubernetes", "jenkins", "terraform", "ansible", "aws",
		"azure", "gcp", "ci/cd", "linux", "bash", "python", "monitoring",
		"prometheus", "grafana", "elk", "git", "infrastructure as code",
		"helm", "argocd", "security", "networking", "automation",
	},
	"project manager": {
		"agile", "scrum", "kanban", "jira", "confluence", "stakeholder",
		"budget", "timeline", "risk management", "pmp", "waterfall",
		"resource allocation", "sprint", "backlog", "roadmap", "communication",
		"leadership", "team management", "project planning", "milestone",
	},
	"other": {
		"communication", "leadership", "problem solving", "teamwork",
		"project management", "analysis", "strategy", "planning",
		"collaboration", "critical thinking", "time management",
	},
}

var roleKeywordSets = map[string]RoleKeywordSet{
	"data scientist": {
		Technical: []string{
			"python", "r", "sql", "machine learning", "deep learning",
			"tensorflow", "pytorch", "pandas", "numpy", "scikit-learn",
			"statistics", "data analysis", "visualization", "jupyter",
		},
		Tools: []string{"tableau", "power bi", "spark", "hadoop", "aws", "azure", "gcp"},
		Concepts: []string{
			"regression", "classification", "clustering", "nlp",
			"computer vision", "neural networks", "feature engineering",
		},
	},
	"frontend developer": {
		Technical: []string{
			"html", "css", "javascript", "typescript", "react", "vue",
			"angular", "redux", "webpack", "sass", "less",
		},
		Tools: []string{"git", "npm", "yarn", "vite", "figma", "jest", "cypress"},
		Concepts: []string{
			"responsive design", "accessibility", "web performance",
			"ui/ux", "cross-browser", "rest api",
		},
	},
	"backend developer": {
		Technical: []string{
			"python", "java", "node.js", "c#", "go", "rust", "sql",
			"postgresql", "mysql", "mongodb", "redis",
		},
		Tools: []string{"docker", "kubernetes", "aws", "azure", "gcp", "git", "jenkins"},
		Concepts: []string{
			"rest", "graphql", "microservices", "api design", "orm",
			"database optimization", "security",
		},
	},
	"full stack developer": {
		Technical: []string{
			"html", "css", "javascript", "react", "node.js", "python",
			"sql", "mongodb", "typescript",
		},
		Tools:    []string{"docker", "git", "aws", "webpack", "npm"},
		Concepts: []string{"rest api", "authentication", "ci/cd", "testing", "agile"},
	},
	"project manager": {
		Technical: []string{"jira", "confluence", "ms project", "asana", "trello"},
		Tools:     []string{"excel", "powerpoint", "slack", "teams"},
		Concepts: []string{
			"agile", "scrum", "kanban", "waterfall", "pmp", "risk management",
			"stakeholder", "budget", "timeline", "resource allocation",
		},
	},
	"default": {
		Technical: []string{"communication", "analysis", "problem solving"},
		Tools:     []string{"excel", "powerpoint", "word"},
		Concepts:  []string{"project management", "teamwork", "leadership"},
	},
}
