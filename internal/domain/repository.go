package domain

import "context"

// JobRepository defines persistence for job rows. Implementations are
// injected into the HTTP layer at startup.
type JobRepository interface {
	// CreateJob inserts the row and returns it with id and createdAt assigned.
	CreateJob(ctx context.Context, job *Job) (*Job, error)
	// GetJob returns ErrNotFound when no row matches.
	GetJob(ctx context.Context, id int) (*Job, error)
	// ListJobs returns all rows ordered by createdAt descending.
	ListJobs(ctx context.Context) ([]Job, error)
	// UpdateJob merges the provided fields into the row; absent fields are
	// left unchanged. Returns ErrNotFound when no row matches.
	UpdateJob(ctx context.Context, id int, updates UpdateJobInput) (*Job, error)
	// Ping reports backing-store connectivity.
	Ping(ctx context.Context) error
}
