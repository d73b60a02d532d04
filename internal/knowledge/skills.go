package knowledge

// SkillCategory is one bucket of the skill taxonomy used for category
// strength analysis. Categories keep declaration order so reports are
// stable run to run.
type SkillCategory struct {
	Name   string
	Skills []string
}

var skillCategories = []SkillCategory{
	{"frontend", []string{
		"html", "css", "javascript", "react", "vue", "angular", "typescript",
		"sass", "less", "tailwind", "bootstrap", "jquery", "webpack", "babel",
		"redux", "next.js", "nuxt.js", "svelte", "responsive design", "web components",
	}},
	{"backend", []string{
		"node.js", "python", "java", "c#", "go", "ruby", "php", "rust",
		"express", "django", "flask", "spring", "rails", "laravel", "fastapi",
		"rest", "api", "graphql", "microservices", "grpc",
	}},
	{"database", []string{
		"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch",
		"sqlite", "oracle", "sql server", "dynamodb", "cassandra", "neo4j",
		"database design", "data modeling",
	}},
	{"devops", []string{
		"docker", "kubernetes", "jenkins", "ci/cd", "terraform", "ansible",
		"linux", "bash", "shell", "nginx", "apache", "git", "github actions",
		"gitlab ci", "prometheus", "grafana", "elk", "monitoring",
	}},
	{"cloud", []string{
		"aws", "azure", "gcp", "google cloud", "cloud computing",
		"ec2", "s3", "lambda", "cloudformation", "arm templates",
		"serverless", "cloud functions",
	}},
	{"data_science", []string{
		"machine learning", "deep learning", "neural networks", "nlp",
		"computer vision", "tensorflow", "pytorch", "keras", "scikit-learn",
		"pandas", "numpy", "data analysis", "statistics", "r", "jupyter",
	}},
	{"mobile", []string{
		"react native", "flutter", "swift", "kotlin", "ios", "android",
		"xcode", "android studio", "mobile ui", "dart", "objective-c",
	}},
	{"design", []string{
		"figma", "sketch", "adobe xd", "invision", "photoshop", "illustrator",
		"ui design", "ux design", "wireframing", "prototyping", "user research",
	}},
	{"general", []string{
		"problem solving", "communication", "leadership", "teamwork",
		"agile", "scrum", "project management", "time management",
	}},
}

// careerSkills is the canonical skill profile per career path, spanning
// tech, HR, marketing, finance, sales, healthcare, legal and operations.
var careerSkills = map[string][]string{
	"data scientist": {
		"python", "machine learning", "statistics", "sql", "tensorflow",
		"pandas", "numpy", "scikit-learn", "deep learning", "data visualization",
	},
	"frontend developer": {
		"html", "css", "javascript", "react", "vue", "typescript",
		"angular", "webpack", "sass", "responsive design",
	},
	"backend developer": {
		"python", "java", "nodejs", "sql", "api", "docker",
		"mongodb", "postgresql", "rest", "microservices",
	},
	"mobile app developer": {
		"flutter", "react native", "swift", "kotlin", "android",
		"ios", "dart", "mobile ui", "firebase",
	},
	"devops engineer": {
		"docker", "kubernetes", "aws", "azure", "ci/cd",
		"jenkins", "terraform", "linux", "ansible", "monitoring",
	},
	"full stack developer": {
		"javascript", "react", "nodejs", "python", "sql",
		"html", "css", "git", "docker", "rest api",
	},
	"machine learning engineer": {
		"python", "tensorflow", "pytorch", "machine learning", "deep learning",
		"neural networks", "nlp", "computer vision", "mlops",
	},
	"software developer": {
		"python", "java", "javascript", "sql", "git",
		"algorithms", "data structures", "oop", "testing",
	},
	"software engineer": {
		"python", "java", "javascript", "sql", "git",
		"algorithms", "data structures", "oop", "testing",
	},
	"web developer": {
		"html", "css", "javascript", "php", "mysql",
		"responsive design", "wordpress", "bootstrap",
	},
	"project manager": {
		"agile", "scrum", "jira", "communication", "leadership",
		"risk management", "budgeting", "planning",
	},
	"data analyst": {
		"python", "sql", "excel", "tableau", "data visualization",
		"statistics", "pandas", "power bi",
	},
	"hr manager": {
		"recruitment", "employee relations", "payroll", "hris", "training",
		"labor law", "performance management", "benefits administration",
	},
	"recruiter": {
		"talent acquisition", "interviewing", "ats", "sourcing",
		"onboarding", "screening", "linkedin recruiter",
	},
	"human resources": {
		"recruitment", "payroll", "benefits", "employee relations",
		"hr policies", "onboarding", "training",
	},
	"hr specialist": {
		"hris", "workday", "benefits administration", "compensation",
		"hr policies", "employee support",
	},
	"training manager": {
		"training", "development", "learning management",
		"performance management", "instructional design",
	},
	"payroll specialist": {
		"payroll", "hris", "benefits", "compliance", "taxation", "labor law",
	},
	"marketing manager": {
		"seo", "social media", "google analytics", "content marketing",
		"branding", "campaign management", "market research",
	},
	"digital marketer": {
		"seo", "ppc", "social media", "email marketing",
		"google ads", "facebook ads", "content marketing",
	},
	"digital marketing specialist": {
		"seo", "sem", "ppc", "google ads", "social media marketing",
		"email marketing", "analytics",
	},
	"brand manager": {
		"brand strategy", "market research", "campaign management",
		"advertising", "consumer behavior", "positioning",
	},
	"content marketing manager": {
		"content strategy", "copywriting", "social media",
		"email marketing", "seo", "content creation",
	},
	"market research analyst": {
		"market research", "consumer insights", "data analysis",
		"competitive analysis", "surveys", "reporting",
	},
	"financial analyst": {
		"financial modeling", "excel", "budgeting", "forecasting",
		"analysis", "valuation", "financial reporting",
	},
	"accountant": {
		"accounting", "taxation", "bookkeeping", "auditing",
		"gaap", "financial statements", "quickbooks",
	},
	"investment banker": {
		"financial modeling", "valuation", "due diligence",
		"m&a", "excel", "pitchbook", "deal structuring",
	},
	"risk manager": {
		"risk management", "compliance", "regulatory",
		"internal controls", "risk assessment",
	},
	"treasury analyst": {
		"treasury", "cash flow", "banking", "investments", "liquidity management",
	},
	"sales manager": {
		"sales", "crm", "negotiation", "lead generation",
		"team management", "pipeline management", "forecasting",
	},
	"account executive": {
		"b2b sales", "account management", "salesforce",
		"pipeline management", "client relations", "closing deals",
	},
	"sales executive": {
		"sales", "negotiation", "customer relations",
		"prospecting", "closing deals", "crm",
	},
	"business development": {
		"sales", "lead generation", "partnerships",
		"negotiation", "market expansion", "networking",
	},
	"healthcare administrator": {
		"healthcare administration", "hipaa", "patient care",
		"medical records", "ehr", "healthcare compliance",
	},
	"medical billing specialist": {
		"medical billing", "ehr", "epic", "healthcare compliance",
		"revenue cycle", "medical coding",
	},
	"legal advisor": {
		"legal research", "contract review", "compliance",
		"corporate law", "regulatory",
	},
	"corporate lawyer": {
		"contract drafting", "litigation", "corporate law",
		"m&a", "compliance", "due diligence",
	},
	"operations manager": {
		"supply chain", "logistics", "inventory", "process improvement",
		"operations management", "vendor management",
	},
	"supply chain manager": {
		"procurement", "vendor management", "supply chain analytics",
		"logistics", "sourcing", "inventory management",
	},
}

// evaluatorCareerKeywords backs the rubric scorer's skills-and-keywords
// check. Broader than careerSkills: these lists include tooling and
// ecosystem terms a strong resume for the career tends to mention.
var evaluatorCareerKeywords = map[string][]string{
	"data scientist": {
		"python", "machine learning", "deep learning", "tensorflow", "pytorch",
		"pandas", "numpy", "scikit-learn", "sql", "statistics", "data analysis",
		"visualization", "tableau", "power bi", "r", "jupyter", "big data",
		"spark", "hadoop", "neural networks", "nlp", "computer vision",
	},
	"frontend developer": {
		"html", "css", "javascript", "react", "vue", "angular", "typescript",
		"responsive design", "sass", "webpack", "npm", "git", "ui/ux",
		"bootstrap", "tailwind", "redux", "jest", "cypress", "figma",
	},
	"backend developer": {
		"python", "java", "node.js", "c#", "go", "sql", "postgresql", "mysql",
		"mongodb", "redis", "api", "rest", "graphql", "docker", "kubernetes",
		"aws", "azure", "microservices", "spring", "django", "express",
	},
	"full stack developer": {
		"html", "css", "javascript", "react", "node.js", "sql", "mongodb",
		"api", "rest", "docker", "git", "python", "typescript", "aws",
		"redux", "express", "postgresql", "authentication", "testing",
	},
	"mobile app developer": {
		"ios", "android", "swift", "kotlin", "react native", "flutter",
		"dart", "xcode", "android studio", "mobile ui", "app store",
		"firebase", "push notifications", "rest api", "sqlite",
	},
	"devops engineer": {
		"docker", "kubernetes", "jenkins", "terraform", "ansible", "aws",
		"azure", "gcp", "ci/cd", "linux", "bash", "python", "monitoring",
		"prometheus", "grafana", "elk", "git", "infrastructure as code",
	},
	"project manager": {
		"agile", "scrum", "kanban", "jira", "confluence", "stakeholder",
		"budget", "timeline", "risk management", "pmp", "waterfall",
		"resource allocation", "sprint", "backlog", "roadmap",
	},
	"default": {
		"communication", "leadership", "problem solving", "teamwork",
		"project management", "analysis", "strategy", "planning",
	},
}
