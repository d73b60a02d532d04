package analyses

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"skillfit/internal/knowledge"
	"skillfit/internal/scoring/ats"
	"skillfit/internal/scoring/deepintel"
	"skillfit/internal/scoring/evaluator"
	"skillfit/internal/scoring/explain"
	"skillfit/internal/scoring/quality"
	"skillfit/internal/scoring/salary"
	"skillfit/internal/scoring/unified"
	"skillfit/internal/shared/metrics"
	"skillfit/internal/shared/telemetry"
	"skillfit/internal/shared/util"
)

// Service orchestrates the scorers over one resume and persists the
// aggregated report.
type Service struct {
	Repo      Repo
	extractor *Extractor
	ats       *ats.Analyzer
	evaluator *evaluator.Evaluator
	unified   *unified.Scorer
	explain   *explain.Scorer
	deep      *deepintel.Engine
	salary    *salary.Estimator
	quality   *quality.Checker
}

// NewService constructs a Service with every scorer wired to the shared
// knowledge base.
func NewService(repo Repo, kb *knowledge.Base) *Service {
	return &Service{
		Repo:      repo,
		extractor: NewExtractor(kb),
		ats:       ats.NewAnalyzer(kb),
		evaluator: evaluator.NewEvaluator(kb),
		unified:   unified.NewScorer(kb),
		explain:   explain.NewScorer(kb),
		deep:      deepintel.NewEngine(kb),
		salary:    salary.NewEstimator(kb),
		quality:   quality.NewChecker(kb),
	}
}

// Analyze runs the full scorer battery over the resume and stores the
// result. Supplied skills win over detection; an unset experience level
// defaults to beginner.
func (s *Service) Analyze(ctx context.Context, req AnalyzeRequest) (Analysis, error) {
	text := strings.TrimSpace(req.ResumeText)
	if text == "" {
		return Analysis{}, ErrEmptyResume
	}

	metrics.IncAnalysisStarted()
	started := time.Now()

	detected := req.DetectedSkills
	if len(detected) == 0 {
		detected = s.extractor.DetectSkills(text)
	}
	predicted := s.extractor.PredictCareer(detected)

	level := req.ExperienceLevel
	if level == "" {
		level = knowledge.LevelBeginner
	}

	report := &Report{
		PredictedCareer: predicted,
		DetectedSkills:  detected,
		ATS:             s.ats.Analyze(text, detected, predicted),
		Evaluation:      s.evaluator.Evaluate(text, predicted),
		Unified:         s.unified.Score(text, level, req.TargetRole, detected),
		Explanation:     s.explain.Analyze(text, req.TargetRole, detected),
		DeepAnalysis: s.deep.AnalyzeResume(deepintel.Input{
			ResumeText:      text,
			TargetRole:      req.TargetRole,
			PredictedCareer: predicted,
			DetectedSkills:  detected,
		}),
		Salary: s.salary.Estimate(salary.Input{
			Skills:          strings.Join(detected, ", "),
			Career:          predicted,
			Qualification:   req.Qualification,
			ExperienceYears: req.ExperienceYears,
		}),
		Quality: s.quality.Check(text, s.extractor.BuildFacts(text, detected), req.TargetRole),
	}

	analysis := Analysis{
		ID:              uuid.NewString(),
		ResumeHash:      util.HashResumeText(text),
		TargetRole:      req.TargetRole,
		ExperienceLevel: level,
		PredictedCareer: predicted,
		OverallScore:    float64(report.Unified.OverallScore),
		Result:          report,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, analysis); err != nil {
		metrics.IncAnalysisFailed()
		telemetry.Error("analysis store failed", map[string]any{
			"analysis_id": analysis.ID,
			"error":       err.Error(),
		})
		return Analysis{}, err
	}

	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(float64(time.Since(started).Milliseconds()))
	return analysis, nil
}

// Get returns a stored analysis by ID.
func (s *Service) Get(ctx context.Context, analysisID string) (Analysis, error) {
	return s.Repo.GetByID(ctx, analysisID)
}

// List returns stored analysis summaries newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Analysis, error) {
	return s.Repo.List(ctx, limit, offset)
}
