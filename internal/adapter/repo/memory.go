package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	"server/internal/domain"
)

// MemoryJobRepository implements domain.JobRepository on a mutex-guarded
// map. It backs tests and local development without a database.
type MemoryJobRepository struct {
	mu     sync.Mutex
	jobs   map[int]domain.Job
	nextID int
}

func NewMemoryJobRepository() *MemoryJobRepository {
	return &MemoryJobRepository{jobs: make(map[int]domain.Job), nextID: 1}
}

func (r *MemoryJobRepository) CreateJob(_ context.Context, job *domain.Job) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *job
	stored.ID = r.nextID
	r.nextID++
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	r.jobs[stored.ID] = stored

	out := stored
	return &out, nil
}

func (r *MemoryJobRepository) GetJob(_ context.Context, id int) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := job
	return &out, nil
}

func (r *MemoryJobRepository) ListJobs(_ context.Context) ([]domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	jobs := make([]domain.Job, 0, len(r.jobs))
	for _, job := range r.jobs {
		jobs = append(jobs, job)
	}
	sort.Slice(jobs, func(i, j int) bool {
		if !jobs[i].CreatedAt.Equal(jobs[j].CreatedAt) {
			return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
		}
		return jobs[i].ID > jobs[j].ID
	})
	return jobs, nil
}

func (r *MemoryJobRepository) UpdateJob(_ context.Context, id int, updates domain.UpdateJobInput) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	updates.Apply(&job)
	r.jobs[id] = job

	out := job
	return &out, nil
}

func (r *MemoryJobRepository) Ping(context.Context) error { return nil }

var _ domain.JobRepository = (*MemoryJobRepository)(nil)
