// Package deepintel is the deepest of the scorers: it infers how well
// each detected skill is actually evidenced (a graduated ladder from
// "mentioned" to "expert", not a binary check), classifies project
// complexity and type, grades experience quality, and matches the whole
// picture against the target career's requirement profile. From that it
// derives ranked weaknesses, templated before/after fixes, and an
// improvement-potential estimate.
package deepintel

import (
	"regexp"
	"strings"

	"skillfit/internal/knowledge"
	"skillfit/internal/scoring"
)

// Input carries everything the engine needs for one analysis. Projects
// and Experience are optional; when Projects is empty the engine tries
// to carve a projects section out of the resume text itself.
type Input struct {
	ResumeText      string
	TargetRole      string
	PredictedCareer string
	DetectedSkills  []string
	Projects        []string
	Experience      []string
}

// Result is the full deep-analysis report.
type Result struct {
	TargetRole      string               `json:"target_role"`
	PredictedCareer string               `json:"predicted_career"`
	IsMismatch      bool                 `json:"is_mismatch"`
	Scores          Scores               `json:"scores"`
	Skills          SkillReport          `json:"skill_analysis"`
	Projects        ProjectReport        `json:"project_analysis"`
	Experience      ExperienceReport     `json:"experience_analysis"`
	CareerMatch     CareerMatch          `json:"career_match"`
	Weaknesses      []Weakness           `json:"weaknesses"`
	Fixes           []Fix                `json:"fixes"`
	Improvement     ImprovementPotential `json:"improvement_potential"`
	Explanation     string               `json:"explanation"`
}

// Engine runs deep resume analysis against the shared knowledge base.
type Engine struct {
	kb          *knowledge.Base
	strongVerbs []verbPattern
	weakVerbs   []verbPattern
}

type verbPattern struct {
	verb    string
	pattern *regexp.Regexp
}

func NewEngine(kb *knowledge.Base) *Engine {
	e := &Engine{kb: kb}
	for _, v := range knowledge.StrongActionVerbs {
		e.strongVerbs = append(e.strongVerbs, verbPattern{v, knowledge.WordBoundaryPattern(v)})
	}
	for _, v := range knowledge.WeakActionVerbs {
		e.weakVerbs = append(e.weakVerbs, verbPattern{v, knowledge.WordBoundaryPattern(v)})
	}
	return e
}

// AnalyzeResume never fails; unknown roles fall back to an empty
// requirement profile rather than erroring.
func (e *Engine) AnalyzeResume(in Input) Result {
	lower := strings.ToLower(in.ResumeText)
	targetRole := strings.TrimSpace(strings.ToLower(in.TargetRole))
	predictedCareer := strings.TrimSpace(strings.ToLower(in.PredictedCareer))

	skills := e.analyzeSkills(lower, in.DetectedSkills, targetRole)
	projects := e.analyzeProjects(in.ResumeText, in.Projects)
	experience := e.analyzeExperience(lower)
	match := e.analyzeCareerMatch(targetRole, predictedCareer, skills, projects)
	weaknesses := e.findWeaknesses(targetRole, skills, projects, experience, match)
	fixes := e.generateFixes(targetRole, weaknesses, skills, match)
	scores := calculateScores(skills, projects, experience, match)
	improvement := improvementPotential(scores, fixes)
	explanation := buildExplanation(targetRole, predictedCareer, match, weaknesses)

	return Result{
		TargetRole:      in.TargetRole,
		PredictedCareer: in.PredictedCareer,
		IsMismatch:      targetRole != predictedCareer,
		Scores:          scores,
		Skills:          skills,
		Projects:        projects,
		Experience:      experience,
		CareerMatch:     match,
		Weaknesses:      weaknesses,
		Fixes:           fixes,
		Improvement:     improvement,
		Explanation:     explanation,
	}
}

// severityLess orders critical first; used with a stable sort so
// insertion order survives within a tier.
func severityLess(a, b scoring.Severity) bool { return a.Weight() > b.Weight() }
