package deepintel

import (
	"regexp"
	"strings"

	"skillfit/internal/knowledge"
)

// ProjectAnalysis classifies one project entry.
type ProjectAnalysis struct {
	Name                 string   `json:"name"`
	Complexity           string   `json:"complexity"`
	ComplexityScore      int      `json:"complexity_score"`
	Technologies         []string `json:"technologies"`
	ProjectType          string   `json:"project_type"`
	ImpactMetrics        []string `json:"impact_metrics"`
	ScaleIndicators      []string `json:"scale_indicators"`
	LeadershipIndicators []string `json:"leadership_indicators"`
}

// TextIndicators are project-maturity signals read off the whole resume
// rather than individual entries.
type TextIndicators struct {
	HasDeployment bool `json:"has_deployment"`
	HasScale      bool `json:"has_scale"`
	HasMetrics    bool `json:"has_metrics"`
	HasLeadership bool `json:"has_leadership"`
	HasTesting    bool `json:"has_testing"`
	HasCICD       bool `json:"has_ci_cd"`
}

// ProjectReport summarizes all analyzed projects.
type ProjectReport struct {
	TotalProjects          int               `json:"total_projects"`
	Projects               []ProjectAnalysis `json:"projects"`
	ComplexityDistribution map[string]int    `json:"complexity_distribution"`
	ProjectTypes           map[string]int    `json:"project_types"`
	HasHighComplexity      bool              `json:"has_high_complexity"`
	HasFullstackProject    bool              `json:"has_fullstack_project"`
	TextIndicators         TextIndicators    `json:"text_indicators"`
}

var projectSectionStart = regexp.MustCompile(`(?:projects?|portfolio)[:\s]*\n`)

var projectEntryStart = regexp.MustCompile(`^(?:[-•●]|\d\.)`)

var projectNamePattern = regexp.MustCompile(`^[•\-\d.]*\s*([^|\n]{5,50})`)

func (e *Engine) analyzeProjects(resumeText string, projects []string) ProjectReport {
	lower := strings.ToLower(resumeText)

	if len(projects) == 0 {
		projects = extractProjectEntries(lower)
	}

	report := ProjectReport{
		ComplexityDistribution: map[string]int{"high": 0, "medium": 0, "low": 0},
		ProjectTypes:           map[string]int{"frontend": 0, "backend": 0, "fullstack": 0, "data": 0, "mobile": 0, "other": 0},
	}

	for _, project := range projects {
		if len(strings.TrimSpace(project)) < 10 {
			continue
		}
		analysis := e.analyzeSingleProject(project)
		report.Projects = append(report.Projects, analysis)
		report.ComplexityDistribution[analysis.Complexity]++
		if _, ok := report.ProjectTypes[analysis.ProjectType]; ok {
			report.ProjectTypes[analysis.ProjectType]++
		} else {
			report.ProjectTypes["other"]++
		}
	}

	report.TotalProjects = len(report.Projects)
	report.HasHighComplexity = report.ComplexityDistribution["high"] > 0
	report.HasFullstackProject = report.ProjectTypes["fullstack"] > 0
	report.TextIndicators = analyzeTextIndicators(lower)
	return report
}

// extractProjectEntries carves a projects/portfolio section out of the
// resume and splits it at bullet or numbered line starts. The section
// ends at the next experience/education/skills header or at EOF.
func extractProjectEntries(lower string) []string {
	loc := projectSectionStart.FindStringIndex(lower)
	if loc == nil {
		return nil
	}
	section := lower[loc[1]:]
	end := len(section)
	for _, header := range []string{"\nexperience", "\neducation", "\nskills"} {
		if i := strings.Index(section, header); i >= 0 && i < end {
			end = i
		}
	}
	section = section[:end]

	var entries []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			entries = append(entries, strings.Join(current, "\n"))
			current = nil
		}
	}
	for i, line := range strings.Split(section, "\n") {
		if i > 0 && projectEntryStart.MatchString(line) {
			flush()
		}
		current = append(current, line)
	}
	flush()
	return entries
}

func (e *Engine) analyzeSingleProject(projectText string) ProjectAnalysis {
	lower := strings.ToLower(projectText)

	name := "Project"
	if m := projectNamePattern.FindStringSubmatch(strings.TrimSpace(projectText)); m != nil {
		name = strings.TrimSpace(m[1])
	}

	var technologies []string
	for _, category := range e.kb.SkillCategories() {
		for _, skill := range category.Skills {
			if strings.Contains(lower, skill) {
				technologies = append(technologies, skill)
			}
		}
	}

	score := 30
	score += countContained(lower, knowledge.ProjectComplexityIndicators["high"]) * 20
	score += countContained(lower, knowledge.ProjectComplexityIndicators["medium"]) * 10
	score -= countContained(lower, knowledge.ProjectComplexityIndicators["low"]) * 15
	score = max(10, min(100, score))

	complexity := "low"
	switch {
	case score >= 70:
		complexity = "high"
	case score >= 40:
		complexity = "medium"
	}

	var impactMetrics, scaleIndicators, leadershipIndicators []string
	if knowledge.ImpactPercentagePattern.MatchString(lower) {
		impactMetrics = append(impactMetrics, "Quantified improvements")
	}
	if knowledge.ImpactRevenuePattern.MatchString(lower) {
		impactMetrics = append(impactMetrics, "Revenue/cost impact")
	}
	if knowledge.ImpactScalePattern.MatchString(lower) {
		scaleIndicators = append(scaleIndicators, "Scale metrics mentioned")
	}
	if knowledge.ImpactTeamSizePattern.MatchString(lower) {
		leadershipIndicators = append(leadershipIndicators, "Team leadership")
	}

	return ProjectAnalysis{
		Name:                 name,
		Complexity:           complexity,
		ComplexityScore:      score,
		Technologies:         technologies,
		ProjectType:          e.classifyProjectType(technologies),
		ImpactMetrics:        impactMetrics,
		ScaleIndicators:      scaleIndicators,
		LeadershipIndicators: leadershipIndicators,
	}
}

// classifyProjectType infers the project flavor from which skill
// categories its technologies span; frontend plus any server-side
// technology reads as full stack.
func (e *Engine) classifyProjectType(technologies []string) string {
	counts := map[string]int{}
	for _, name := range []string{"frontend", "backend", "database", "mobile", "data_science"} {
		category, ok := e.kb.SkillCategoryNamed(name)
		if !ok {
			continue
		}
		for _, tech := range technologies {
			if containsString(category.Skills, tech) {
				counts[name]++
			}
		}
	}

	switch {
	case counts["frontend"] > 0 && (counts["backend"] > 0 || counts["database"] > 0):
		return "fullstack"
	case counts["mobile"] > 0:
		return "mobile"
	case counts["data_science"] > 0:
		return "data"
	case counts["backend"] > 0 || counts["database"] > 0:
		return "backend"
	case counts["frontend"] > 0:
		return "frontend"
	default:
		return "other"
	}
}

func analyzeTextIndicators(lower string) TextIndicators {
	return TextIndicators{
		HasDeployment: anyContained(lower, []string{"deployed", "deployment", "production", "live"}),
		HasScale:      knowledge.ImpactScalePattern.MatchString(lower),
		HasMetrics:    knowledge.ImpactPercentagePattern.MatchString(lower),
		HasLeadership: knowledge.ImpactTeamSizePattern.MatchString(lower),
		HasTesting:    anyContained(lower, []string{"testing", "unit test", "test coverage", "tdd"}),
		HasCICD:       anyContained(lower, []string{"ci/cd", "continuous integration", "github actions", "jenkins"}),
	}
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

func anyContained(text string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}
