package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"server/internal/domain"
	"server/internal/notify"
)

// App bundles the collaborators the handlers need. Everything is injected
// at startup so tests can swap in an in-memory repository and a recording
// notifier.
type App struct {
	Repo     domain.JobRepository
	Notifier notify.Notifier
	Logger   zerolog.Logger

	// RedisConfigured feeds the health endpoint; the notifier itself hides
	// whether a broker is behind it.
	RedisConfigured bool
}

func NewApp(repo domain.JobRepository, notifier notify.Notifier, logger zerolog.Logger, redisConfigured bool) *App {
	return &App{Repo: repo, Notifier: notifier, Logger: logger, RedisConfigured: redisConfigured}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, message string) {
	a.json(w, code, map[string]string{"message": message})
}

func (a *App) validationError(w http.ResponseWriter, verr *domain.ValidationError) {
	a.json(w, http.StatusBadRequest, verr)
}
