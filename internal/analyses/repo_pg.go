package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new analysis with its full report.
func (r *PGRepo) Create(ctx context.Context, analysis Analysis) error {
	const query = `
INSERT INTO analyses (
	id, resume_hash, target_role, experience_level, predicted_career,
	overall_score, result, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	payload, err := marshalReport(analysis.Result)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		analysis.ID,
		analysis.ResumeHash,
		analysis.TargetRole,
		analysis.ExperienceLevel,
		analysis.PredictedCareer,
		analysis.OverallScore,
		payload,
		analysis.CreatedAt,
	)
	return err
}

// GetByID returns an analysis by ID, report included.
func (r *PGRepo) GetByID(ctx context.Context, analysisID string) (Analysis, error) {
	const query = `
SELECT id, resume_hash, target_role, experience_level, predicted_career,
       overall_score, result, created_at
FROM analyses
WHERE id = $1
LIMIT 1`
	var a Analysis
	var payload []byte
	err := r.DB.QueryRowContext(ctx, query, analysisID).Scan(
		&a.ID,
		&a.ResumeHash,
		&a.TargetRole,
		&a.ExperienceLevel,
		&a.PredictedCareer,
		&a.OverallScore,
		&payload,
		&a.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Analysis{}, ErrNotFound
	}
	if err != nil {
		return Analysis{}, err
	}
	if len(payload) > 0 {
		var report Report
		if err := json.Unmarshal(payload, &report); err != nil {
			return Analysis{}, err
		}
		a.Result = &report
	}
	return a, nil
}

// List returns analysis summaries newest first. Reports are excluded;
// fetch by ID for the full payload.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Analysis, error) {
	const query = `
SELECT id, resume_hash, target_role, experience_level, predicted_career,
       overall_score, created_at
FROM analyses
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Analysis
	for rows.Next() {
		var a Analysis
		if err := rows.Scan(
			&a.ID,
			&a.ResumeHash,
			&a.TargetRole,
			&a.ExperienceLevel,
			&a.PredictedCareer,
			&a.OverallScore,
			&a.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func marshalReport(report *Report) (any, error) {
	if report == nil {
		return nil, nil
	}
	payload, err := json.Marshal(report)
	if err != nil {
		return nil, err
	}
	return payload, nil
}
