package domain

import (
	"time"
	"unicode/utf8"
)

// Contract defaults. These live here and nowhere else so the API and any
// client stay in agreement.
const (
	DefaultModel       = "musicgen-medium"
	DefaultFormat      = "mp3"
	DefaultDurationSec = 30

	MinPromptLen   = 3
	MinDurationSec = 5
	MaxDurationSec = 30
)

// CreateJobInput is the request shape for creating a job. Server-owned
// fields (id, createdAt, status, audioUrl, error, selectedCandidate,
// startedAt, finishedAt) are not members, so clients that send them have
// them silently dropped during decoding.
type CreateJobInput struct {
	Prompt           string         `json:"prompt"`
	Model            *string        `json:"model"`
	Preset           *string        `json:"preset"`
	DurationSec      *int           `json:"durationSec"`
	Format           *string        `json:"format"`
	Seed             *int           `json:"seed"`
	GenerationParams map[string]any `json:"generationParams"`
	QualityParams    map[string]any `json:"qualityParams"`
}

// ApplyDefaults fills the optional generation configuration.
func (in *CreateJobInput) ApplyDefaults() {
	if in.Model == nil {
		m := DefaultModel
		in.Model = &m
	}
	if in.DurationSec == nil {
		d := DefaultDurationSec
		in.DurationSec = &d
	}
	if in.Format == nil {
		f := DefaultFormat
		in.Format = &f
	}
}

// Validate returns the first violation, or nil. Call ApplyDefaults first.
func (in *CreateJobInput) Validate() *ValidationError {
	if utf8.RuneCountInString(in.Prompt) < MinPromptLen {
		return &ValidationError{Message: "prompt must be at least 3 characters", Field: "prompt"}
	}
	if in.DurationSec != nil {
		if err := validateDuration(*in.DurationSec); err != nil {
			return err
		}
	}
	if in.Format != nil {
		if err := validateFormat(*in.Format); err != nil {
			return err
		}
	}
	return nil
}

// Job builds the row to store: pending status, worker-owned fields unset.
func (in *CreateJobInput) Job() *Job {
	return &Job{
		Status:           JobStatusPending,
		Prompt:           in.Prompt,
		Model:            in.Model,
		Preset:           in.Preset,
		DurationSec:      *in.DurationSec,
		Format:           *in.Format,
		Seed:             in.Seed,
		GenerationParams: in.GenerationParams,
		QualityParams:    in.QualityParams,
	}
}

// UpdateJobInput is the partial-update shape used by the worker. Every
// field is optional; nil means "leave unchanged". Status is a free-form
// string rather than a closed enum so the worker can introduce
// intermediate states without a coordinated deploy.
type UpdateJobInput struct {
	Status            *string        `json:"status"`
	Prompt            *string        `json:"prompt"`
	Model             *string        `json:"model"`
	Preset            *string        `json:"preset"`
	DurationSec       *int           `json:"durationSec"`
	Format            *string        `json:"format"`
	Seed              *int           `json:"seed"`
	GenerationParams  map[string]any `json:"generationParams"`
	QualityParams     map[string]any `json:"qualityParams"`
	AudioURL          *string        `json:"audioUrl"`
	SelectedCandidate *int           `json:"selectedCandidate"`
	Error             *string        `json:"error"`
	StartedAt         *time.Time     `json:"startedAt"`
	FinishedAt        *time.Time     `json:"finishedAt"`
}

// Validate checks only the fields that are present.
func (in *UpdateJobInput) Validate() *ValidationError {
	if in.Status != nil && *in.Status == "" {
		return &ValidationError{Message: "status must not be empty", Field: "status"}
	}
	if in.Prompt != nil && utf8.RuneCountInString(*in.Prompt) < MinPromptLen {
		return &ValidationError{Message: "prompt must be at least 3 characters", Field: "prompt"}
	}
	if in.DurationSec != nil {
		if err := validateDuration(*in.DurationSec); err != nil {
			return err
		}
	}
	if in.Format != nil {
		if err := validateFormat(*in.Format); err != nil {
			return err
		}
	}
	return nil
}

// Apply merges the present fields into job.
func (in *UpdateJobInput) Apply(job *Job) {
	if in.Status != nil {
		job.Status = *in.Status
	}
	if in.Prompt != nil {
		job.Prompt = *in.Prompt
	}
	if in.Model != nil {
		job.Model = in.Model
	}
	if in.Preset != nil {
		job.Preset = in.Preset
	}
	if in.DurationSec != nil {
		job.DurationSec = *in.DurationSec
	}
	if in.Format != nil {
		job.Format = *in.Format
	}
	if in.Seed != nil {
		job.Seed = in.Seed
	}
	if in.GenerationParams != nil {
		job.GenerationParams = in.GenerationParams
	}
	if in.QualityParams != nil {
		job.QualityParams = in.QualityParams
	}
	if in.AudioURL != nil {
		job.AudioURL = in.AudioURL
	}
	if in.SelectedCandidate != nil {
		job.SelectedCandidate = in.SelectedCandidate
	}
	if in.Error != nil {
		job.Error = in.Error
	}
	if in.StartedAt != nil {
		job.StartedAt = in.StartedAt
	}
	if in.FinishedAt != nil {
		job.FinishedAt = in.FinishedAt
	}
}

func validateDuration(sec int) *ValidationError {
	if sec < MinDurationSec || sec > MaxDurationSec {
		return &ValidationError{Message: "durationSec must be between 5 and 30", Field: "durationSec"}
	}
	return nil
}

func validateFormat(format string) *ValidationError {
	if format != "mp3" && format != "wav" {
		return &ValidationError{Message: "format must be mp3 or wav", Field: "format"}
	}
	return nil
}
