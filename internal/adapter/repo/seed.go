package repo

import (
	"context"
	"fmt"

	"server/internal/domain"
)

// SeedExampleJobs inserts two demo rows when the store is empty: one
// completed job with a playable sample and one pending job. Purely a demo
// convenience; callers may skip it.
func SeedExampleJobs(ctx context.Context, r domain.JobRepository) error {
	jobs, err := r.ListJobs(ctx)
	if err != nil {
		return fmt.Errorf("check existing jobs: %w", err)
	}
	if len(jobs) > 0 {
		return nil
	}

	audioURL := "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-1.mp3"
	completed := &domain.Job{
		Status:      domain.JobStatusCompleted,
		Prompt:      "Lo-fi hip hop beat with jazzy piano chords",
		DurationSec: 30,
		Format:      "mp3",
		AudioURL:    &audioURL,
	}
	if _, err := r.CreateJob(ctx, completed); err != nil {
		return fmt.Errorf("seed completed job: %w", err)
	}

	pending := &domain.Job{
		Status:      domain.JobStatusPending,
		Prompt:      "Epic orchestral soundtrack for a fantasy movie",
		DurationSec: 15,
		Format:      "mp3",
	}
	if _, err := r.CreateJob(ctx, pending); err != nil {
		return fmt.Errorf("seed pending job: %w", err)
	}
	return nil
}
