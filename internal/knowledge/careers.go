package knowledge

// CareerRequirements describes what a career path expects from a candidate:
// weighted skill categories, hard skill requirements, alternative skill
// groups, and the project portfolio the role demands.
type CareerRequirements struct {
	// Categories maps skill-category names to their weight in the career
	// fit score. Weights sum to 1.0.
	Categories []CategoryWeight
	// MustHave lists skills the career cannot do without.
	MustHave []string
	// ShouldHaveOneOf lists alternative groups; a strong candidate covers
	// at least one skill from each group.
	ShouldHaveOneOf [][]string
	// Projects captures the expected project portfolio.
	Projects ProjectRequirements
	// RedFlags are phrases that signal a poor fit for the career.
	RedFlags []string
}

// CategoryWeight pairs a skill-category name with its weight in a career
// profile. Stored as an ordered slice so iteration is deterministic.
type CategoryWeight struct {
	Name   string
	Weight float64
}

// ProjectRequirements describes the minimum project portfolio for a career.
type ProjectRequirements struct {
	MinType       string // project type the career expects, e.g. "fullstack"
	MinCount      int
	MinComplexity string // "low", "medium" or "high"
}

var atsCareerKeywords = map[string][]string{
	"data scientist":       {"python", "machine learning", "sql", "tensorflow", "pandas"},
	"frontend developer":   {"html", "css", "javascript", "react", "typescript"},
	"backend developer":    {"python", "java", "node.js", "sql", "api", "docker"},
	"full stack developer": {"html", "javascript", "react", "node.js", "sql"},
}

var careerRequirements = map[string]CareerRequirements{
	"full stack developer": {
		Categories: []CategoryWeight{
			{"frontend", 0.35}, {"backend", 0.35}, {"database", 0.15}, {"devops", 0.15},
		},
		MustHave: []string{"javascript", "html", "css"},
		ShouldHaveOneOf: [][]string{
			{"react", "vue", "angular"},
			{"node.js", "python", "java", "go"},
			{"sql", "mongodb", "postgresql"},
		},
		Projects: ProjectRequirements{MinType: "fullstack", MinCount: 1, MinComplexity: "medium"},
		RedFlags: []string{"frontend only", "no backend", "no database"},
	},
	"frontend developer": {
		Categories: []CategoryWeight{
			{"frontend", 0.60}, {"design", 0.20}, {"general", 0.20},
		},
		MustHave: []string{"html", "css", "javascript"},
		ShouldHaveOneOf: [][]string{
			{"react", "vue", "angular"},
			{"typescript"},
			{"sass", "less", "tailwind"},
		},
		Projects: ProjectRequirements{MinType: "frontend", MinCount: 2, MinComplexity: "low"},
		RedFlags: []string{"backend only", "no ui work"},
	},
	"backend developer": {
		Categories: []CategoryWeight{
			{"backend", 0.50}, {"database", 0.25}, {"devops", 0.15}, {"general", 0.10},
		},
		MustHave: []string{"sql"},
		ShouldHaveOneOf: [][]string{
			{"python", "java", "node.js", "go", "c#"},
			{"postgresql", "mysql", "mongodb"},
			{"rest", "api", "graphql"},
		},
		Projects: ProjectRequirements{MinType: "backend", MinCount: 2, MinComplexity: "medium"},
		RedFlags: []string{"frontend only", "no api work"},
	},
	"data scientist": {
		Categories: []CategoryWeight{
			{"data_science", 0.40}, {"programming", 0.30}, {"statistics", 0.20}, {"general", 0.10},
		},
		MustHave: []string{"python"},
		ShouldHaveOneOf: [][]string{
			{"machine learning", "deep learning", "neural networks"},
			{"pandas", "numpy", "scikit-learn"},
			{"tensorflow", "pytorch", "keras"},
		},
		Projects: ProjectRequirements{MinType: "data", MinCount: 2, MinComplexity: "medium"},
		RedFlags: []string{"no ml projects", "no data analysis"},
	},
	"data analyst": {
		Categories: []CategoryWeight{
			{"data_analysis", 0.40}, {"visualization", 0.25}, {"database", 0.20}, {"general", 0.15},
		},
		MustHave: []string{"sql", "excel"},
		ShouldHaveOneOf: [][]string{
			{"python", "r"},
			{"tableau", "power bi"},
			{"pandas", "numpy"},
		},
		Projects: ProjectRequirements{MinType: "data", MinCount: 1, MinComplexity: "low"},
		RedFlags: []string{"no data work", "no visualization"},
	},
	"devops engineer": {
		Categories: []CategoryWeight{
			{"devops", 0.50}, {"cloud", 0.25}, {"programming", 0.15}, {"general", 0.10},
		},
		MustHave: []string{"linux", "docker"},
		ShouldHaveOneOf: [][]string{
			{"kubernetes", "docker swarm"},
			{"aws", "azure", "gcp"},
			{"jenkins", "gitlab ci", "github actions"},
		},
		Projects: ProjectRequirements{MinType: "devops", MinCount: 1, MinComplexity: "medium"},
		RedFlags: []string{"no ci/cd", "no cloud experience"},
	},
	"machine learning engineer": {
		Categories: []CategoryWeight{
			{"ml", 0.40}, {"programming", 0.30}, {"devops", 0.15}, {"data", 0.15},
		},
		MustHave: []string{"python", "machine learning"},
		ShouldHaveOneOf: [][]string{
			{"tensorflow", "pytorch", "keras"},
			{"mlops", "docker", "kubernetes"},
			{"deep learning", "neural networks"},
		},
		Projects: ProjectRequirements{MinType: "ml", MinCount: 2, MinComplexity: "high"},
		RedFlags: []string{"no ml deployment", "no production ml"},
	},
	"cloud engineer": {
		Categories: []CategoryWeight{
			{"cloud", 0.50}, {"devops", 0.25}, {"networking", 0.15}, {"general", 0.10},
		},
		ShouldHaveOneOf: [][]string{
			{"aws", "azure", "gcp"},
			{"terraform", "cloudformation", "arm templates"},
			{"kubernetes", "docker"},
		},
		Projects: ProjectRequirements{MinType: "cloud", MinCount: 1, MinComplexity: "medium"},
		RedFlags: []string{"no cloud projects", "no infrastructure work"},
	},
	"mobile app developer": {
		Categories: []CategoryWeight{
			{"mobile", 0.50}, {"programming", 0.30}, {"design", 0.10}, {"general", 0.10},
		},
		ShouldHaveOneOf: [][]string{
			{"react native", "flutter", "swift", "kotlin"},
			{"ios", "android"},
			{"mobile ui", "responsive design"},
		},
		Projects: ProjectRequirements{MinType: "mobile", MinCount: 2, MinComplexity: "medium"},
		RedFlags: []string{"no mobile apps", "web only"},
	},
	"ui/ux designer": {
		Categories: []CategoryWeight{
			{"design", 0.50}, {"research", 0.25}, {"tools", 0.15}, {"general", 0.10},
		},
		MustHave: []string{"figma"},
		ShouldHaveOneOf: [][]string{
			{"sketch", "adobe xd", "invision"},
			{"user research", "usability testing"},
			{"wireframing", "prototyping"},
		},
		Projects: ProjectRequirements{MinType: "design", MinCount: 2, MinComplexity: "low"},
		RedFlags: []string{"no portfolio", "no design work"},
	},
	"project manager": {
		Categories: []CategoryWeight{
			{"management", 0.40}, {"methodology", 0.30}, {"communication", 0.20}, {"general", 0.10},
		},
		MustHave: []string{"project management"},
		ShouldHaveOneOf: [][]string{
			{"agile", "scrum", "kanban"},
			{"jira", "asana", "trello"},
			{"pmp", "prince2", "csm"},
		},
		Projects: ProjectRequirements{MinType: "leadership", MinCount: 1, MinComplexity: "medium"},
		RedFlags: []string{"no team management", "no project delivery"},
	},
}
