package handlers

import (
	"net/http"

	"server/internal/domain"
)

// Models handles GET /api/models: the static generation configuration the
// client form offers.
func (a *App) Models(w http.ResponseWriter, _ *http.Request) {
	a.json(w, http.StatusOK, map[string][]string{
		"models":  domain.Models,
		"presets": domain.Presets,
	})
}
