package domain

import "time"

// JobStatus enumerates the canonical job lifecycle states. The update path
// deliberately accepts other strings (see UpdateJobInput); these constants
// cover everything this service produces itself.
type JobStatus = string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// Job is a single music-generation request and its tracked outcome.
// Optional columns are pointers so they serialize as JSON null.
type Job struct {
	ID                int            `json:"id"`
	Status            JobStatus      `json:"status"`
	Prompt            string         `json:"prompt"`
	Model             *string        `json:"model"`
	Preset            *string        `json:"preset"`
	DurationSec       int            `json:"durationSec"`
	Format            string         `json:"format"`
	Seed              *int           `json:"seed"`
	GenerationParams  map[string]any `json:"generationParams"`
	QualityParams     map[string]any `json:"qualityParams"`
	AudioURL          *string        `json:"audioUrl"`
	SelectedCandidate *int           `json:"selectedCandidate"`
	Error             *string        `json:"error"`
	CreatedAt         time.Time      `json:"createdAt"`
	StartedAt         *time.Time     `json:"startedAt"`
	FinishedAt        *time.Time     `json:"finishedAt"`
}

// Generation configuration advertised on /api/models.
var (
	Models  = []string{"musicgen-medium", "musicgen-small", "musicgen-large"}
	Presets = []string{"pop", "rock", "jazz", "lofi"}
)
