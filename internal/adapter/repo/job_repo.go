package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

// JobRepositoryPG implements domain.JobRepository on PostgreSQL.
type JobRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewJobRepository creates a job repository backed by PostgreSQL.
func NewJobRepository(sql infra.SQLExecutor) *JobRepositoryPG {
	return &JobRepositoryPG{sql: sql}
}

// Migrate applies the jobs table schema.
func (r *JobRepositoryPG) Migrate(ctx context.Context) error {
	if _, err := r.sql.Exec(ctx, sqlinline.QCreateJobsTable); err != nil {
		return fmt.Errorf("migrate jobs table: %w", err)
	}
	return nil
}

// CreateJob inserts a new row and returns it with id and createdAt assigned.
func (r *JobRepositoryPG) CreateJob(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertJob,
		job.Status,
		job.Prompt,
		job.Model,
		job.Preset,
		job.DurationSec,
		job.Format,
		job.Seed,
		jsonParam(job.GenerationParams),
		jsonParam(job.QualityParams),
		job.AudioURL,
		job.SelectedCandidate,
		job.Error,
	)
	return scanJob(row)
}

// GetJob fetches a job by id.
func (r *JobRepositoryPG) GetJob(ctx context.Context, id int) (*domain.Job, error) {
	return scanJob(r.sql.QueryRow(ctx, sqlinline.QSelectJob, id))
}

// ListJobs returns all jobs, most recent first.
func (r *JobRepositoryPG) ListJobs(ctx context.Context) ([]domain.Job, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QSelectJobs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

// UpdateJob merges the present fields into the row. Absent fields arrive as
// NULL and fall through the COALESCEs unchanged.
func (r *JobRepositoryPG) UpdateJob(ctx context.Context, id int, updates domain.UpdateJobInput) (*domain.Job, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QUpdateJob,
		id,
		updates.Status,
		updates.Prompt,
		updates.Model,
		updates.Preset,
		updates.DurationSec,
		updates.Format,
		updates.Seed,
		jsonParam(updates.GenerationParams),
		jsonParam(updates.QualityParams),
		updates.AudioURL,
		updates.SelectedCandidate,
		updates.Error,
		updates.StartedAt,
		updates.FinishedAt,
	)
	return scanJob(row)
}

// Ping reports database connectivity.
func (r *JobRepositoryPG) Ping(ctx context.Context) error {
	_, err := r.sql.Exec(ctx, sqlinline.QPing)
	return err
}

func scanJob(row pgx.Row) (*domain.Job, error) {
	var job domain.Job
	var genParams, qualParams []byte
	if err := row.Scan(
		&job.ID,
		&job.Status,
		&job.Prompt,
		&job.Model,
		&job.Preset,
		&job.DurationSec,
		&job.Format,
		&job.Seed,
		&genParams,
		&qualParams,
		&job.AudioURL,
		&job.SelectedCandidate,
		&job.Error,
		&job.CreatedAt,
		&job.StartedAt,
		&job.FinishedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if len(genParams) > 0 {
		if err := json.Unmarshal(genParams, &job.GenerationParams); err != nil {
			return nil, fmt.Errorf("decode generation_params: %w", err)
		}
	}
	if len(qualParams) > 0 {
		if err := json.Unmarshal(qualParams, &job.QualityParams); err != nil {
			return nil, fmt.Errorf("decode quality_params: %w", err)
		}
	}
	return &job, nil
}

// jsonParam renders a params document for a jsonb column, NULL when absent.
func jsonParam(m map[string]any) *string {
	if m == nil {
		return nil
	}
	b, _ := json.Marshal(m)
	s := string(b)
	return &s
}

var _ domain.JobRepository = (*JobRepositoryPG)(nil)
