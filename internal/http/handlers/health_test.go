package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/rs/zerolog"

	"server/internal/adapter/repo"
	"server/internal/http/handlers"
	"server/internal/http/httpapi"
)

func TestHealthReportsStoreAndRedisState(t *testing.T) {
	app := handlers.NewApp(repo.NewMemoryJobRepository(), &recordingNotifier{}, zerolog.Nop(), true)
	h := httpapi.NewRouter(app, zerolog.Nop(), nil)

	rr := doJSON(t, h, "GET", "/api/health", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d want 200", rr.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["status"] != "ok" || body["database"] != "connected" || body["redis"] != "connected" {
		t.Fatalf("unexpected health body: %v", body)
	}
}

func TestHealthWithoutRedisAndWithDeadStore(t *testing.T) {
	app := handlers.NewApp(failingRepo{}, &recordingNotifier{}, zerolog.Nop(), false)
	h := httpapi.NewRouter(app, zerolog.Nop(), nil)

	rr := doJSON(t, h, "GET", "/api/health", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d want 200", rr.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["database"] != "disconnected" || body["redis"] != "not_configured" {
		t.Fatalf("unexpected health body: %v", body)
	}
}

func TestModelsEndpoint(t *testing.T) {
	h, _, _ := newTestServer(t)

	rr := doJSON(t, h, "GET", "/api/models", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d want 200", rr.Code)
	}
	var body struct {
		Models  []string `json:"models"`
		Presets []string `json:"presets"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Models) == 0 || body.Models[0] != "musicgen-medium" {
		t.Fatalf("unexpected models: %v", body.Models)
	}
	if len(body.Presets) == 0 {
		t.Fatalf("unexpected presets: %v", body.Presets)
	}
}
