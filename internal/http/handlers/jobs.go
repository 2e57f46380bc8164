package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"server/internal/domain"
)

// JobsCreate handles POST /api/jobs.
func (a *App) JobsCreate(w http.ResponseWriter, r *http.Request) {
	var in domain.CreateJobInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		a.error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	in.ApplyDefaults()
	if verr := in.Validate(); verr != nil {
		a.validationError(w, verr)
		return
	}

	job, err := a.Repo.CreateJob(r.Context(), in.Job())
	if err != nil {
		a.Logger.Error().Err(err).Msg("failed to create job")
		a.error(w, http.StatusInternalServerError, "failed to create job")
		return
	}

	// Best-effort hand-off to the worker queue; the request never waits on it.
	a.Notifier.JobCreated(job.ID)

	a.json(w, http.StatusCreated, job)
}

// JobsGet handles GET /api/jobs/{id}.
func (a *App) JobsGet(w http.ResponseWriter, r *http.Request) {
	id, ok := a.jobID(r)
	if !ok {
		a.error(w, http.StatusNotFound, "Job not found")
		return
	}

	job, err := a.Repo.GetJob(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "Job not found")
			return
		}
		a.Logger.Error().Err(err).Int("job_id", id).Msg("failed to load job")
		a.error(w, http.StatusInternalServerError, "failed to load job")
		return
	}
	a.json(w, http.StatusOK, job)
}

// JobsList handles GET /api/jobs.
func (a *App) JobsList(w http.ResponseWriter, r *http.Request) {
	jobs, err := a.Repo.ListJobs(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("failed to list jobs")
		a.error(w, http.StatusInternalServerError, "failed to list jobs")
		return
	}
	a.json(w, http.StatusOK, jobs)
}

// JobsUpdate handles PATCH /api/jobs/{id}, the worker's callback path.
func (a *App) JobsUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := a.jobID(r)
	if !ok {
		a.error(w, http.StatusNotFound, "Job not found")
		return
	}

	var in domain.UpdateJobInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		a.error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if verr := in.Validate(); verr != nil {
		a.validationError(w, verr)
		return
	}

	job, err := a.Repo.UpdateJob(r.Context(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "Job not found")
			return
		}
		a.Logger.Error().Err(err).Int("job_id", id).Msg("failed to update job")
		a.error(w, http.StatusInternalServerError, "failed to update job")
		return
	}
	a.json(w, http.StatusOK, job)
}

// jobID parses the id route param. A non-numeric id addresses no job.
func (a *App) jobID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, false
	}
	return id, true
}
