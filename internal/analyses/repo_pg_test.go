package analyses

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateStoresReportJSON(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	analysis := Analysis{
		ID:              "analysis-1",
		ResumeHash:      "deadbeef",
		TargetRole:      "backend developer",
		ExperienceLevel: "mid-level",
		PredictedCareer: "Software Developer",
		OverallScore:    72,
		Result:          &Report{PredictedCareer: "Software Developer"},
		CreatedAt:       time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO analyses").
		WithArgs(
			analysis.ID,
			analysis.ResumeHash,
			analysis.TargetRole,
			analysis.ExperienceLevel,
			analysis.PredictedCareer,
			analysis.OverallScore,
			sqlmock.AnyArg(), // result JSONB
			sqlmock.AnyArg(), // created_at
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), analysis); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT id, resume_hash").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "resume_hash", "target_role", "experience_level",
			"predicted_career", "overall_score", "result", "created_at",
		}))

	repo := &PGRepo{DB: db}
	if _, err := repo.GetByID(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoGetByIDUnpacksReport(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	created := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "resume_hash", "target_role", "experience_level",
		"predicted_career", "overall_score", "result", "created_at",
	}).AddRow(
		"analysis-1", "deadbeef", "backend developer", "mid-level",
		"Software Developer", 72.0,
		[]byte(`{"predicted_career":"Software Developer","detected_skills":["python","sql"]}`),
		created,
	)
	mock.ExpectQuery("SELECT id, resume_hash").
		WithArgs("analysis-1").
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	got, err := repo.GetByID(context.Background(), "analysis-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Result == nil {
		t.Fatalf("expected unpacked report")
	}
	if got.Result.PredictedCareer != "Software Developer" {
		t.Fatalf("unexpected predicted career: %q", got.Result.PredictedCareer)
	}
	if len(got.Result.DetectedSkills) != 2 {
		t.Fatalf("unexpected detected skills: %v", got.Result.DetectedSkills)
	}
}

func TestPGRepoListExcludesReports(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	rows := sqlmock.NewRows([]string{
		"id", "resume_hash", "target_role", "experience_level",
		"predicted_career", "overall_score", "created_at",
	}).
		AddRow("analysis-2", "cafe", "", "beginner", "Data Analyst", 58.0, time.Now().UTC()).
		AddRow("analysis-1", "beef", "", "beginner", "Software Developer", 72.0, time.Now().UTC())
	mock.ExpectQuery("SELECT id, resume_hash").
		WithArgs(20, 0).
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	got, err := repo.List(context.Background(), 20, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 analyses, got %d", len(got))
	}
	if got[0].ID != "analysis-2" {
		t.Fatalf("expected newest first, got %s", got[0].ID)
	}
	if got[0].Result != nil {
		t.Fatalf("list rows should not carry reports")
	}
}
