package handlers

import "net/http"

// Health handles GET /api/health: store connectivity plus whether the
// notification channel is configured.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	database := "connected"
	if err := a.Repo.Ping(r.Context()); err != nil {
		a.Logger.Warn().Err(err).Msg("health check: store unreachable")
		database = "disconnected"
	}

	redis := "not_configured"
	if a.RedisConfigured {
		redis = "connected"
	}

	a.json(w, http.StatusOK, map[string]string{
		"status":   "ok",
		"database": database,
		"redis":    redis,
	})
}
