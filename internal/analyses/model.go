package analyses

import (
	"time"

	"skillfit/internal/scoring/ats"
	"skillfit/internal/scoring/deepintel"
	"skillfit/internal/scoring/evaluator"
	"skillfit/internal/scoring/explain"
	"skillfit/internal/scoring/quality"
	"skillfit/internal/scoring/salary"
	"skillfit/internal/scoring/unified"
)

// Analysis is one stored resume analysis.
type Analysis struct {
	ID              string    `json:"id"`
	ResumeHash      string    `json:"resumeHash"`
	TargetRole      string    `json:"targetRole,omitempty"`
	ExperienceLevel string    `json:"experienceLevel,omitempty"`
	PredictedCareer string    `json:"predictedCareer"`
	OverallScore    float64   `json:"overallScore"`
	Result          *Report   `json:"result,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Report aggregates every scorer's output for one resume. The JSON keys
// are the public response contract; renaming one is a breaking change.
type Report struct {
	PredictedCareer string           `json:"predicted_career"`
	DetectedSkills  []string         `json:"detected_skills"`
	ATS             ats.Result       `json:"ats"`
	Evaluation      evaluator.Result `json:"evaluation"`
	Unified         unified.Result   `json:"unified_score"`
	Explanation     explain.Result   `json:"score_explanation"`
	DeepAnalysis    deepintel.Result `json:"deep_analysis"`
	Salary          salary.Estimate  `json:"salary_estimate"`
	Quality         quality.Result   `json:"quality"`
}
