package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"server/internal/adapter/repo"
	"server/internal/domain"
	"server/internal/http/handlers"
	"server/internal/http/httpapi"
)

type recordingNotifier struct {
	mu  sync.Mutex
	ids []int
}

func (n *recordingNotifier) JobCreated(id int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.ids = append(n.ids, id)
}

func (n *recordingNotifier) created() []int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]int(nil), n.ids...)
}

func newTestServer(t *testing.T) (http.Handler, *repo.MemoryJobRepository, *recordingNotifier) {
	t.Helper()
	store := repo.NewMemoryJobRepository()
	notifier := &recordingNotifier{}
	app := handlers.NewApp(store, notifier, zerolog.Nop(), false)
	return httpapi.NewRouter(app, zerolog.Nop(), nil), store, notifier
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestCreateJobReturnsPendingRow(t *testing.T) {
	h, _, notifier := newTestServer(t)

	rr := doJSON(t, h, "POST", "/api/jobs", `{"prompt":"lofi beat","durationSec":20,"format":"wav"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("unexpected status: got %d want 201, body %s", rr.Code, rr.Body.String())
	}

	var job map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&job); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if job["id"] != float64(1) || job["status"] != "pending" {
		t.Fatalf("unexpected row: %+v", job)
	}
	if job["prompt"] != "lofi beat" || job["durationSec"] != float64(20) || job["format"] != "wav" {
		t.Fatalf("client fields not preserved: %+v", job)
	}
	if v, ok := job["audioUrl"]; !ok || v != nil {
		t.Fatalf("audioUrl should be null, got %#v", v)
	}
	if job["model"] != "musicgen-medium" {
		t.Fatalf("model default not applied: %#v", job["model"])
	}
	if job["createdAt"] == nil {
		t.Fatal("createdAt not set")
	}

	if ids := notifier.created(); len(ids) != 1 || ids[0] != 1 {
		t.Fatalf("notifier not handed the new id: %v", ids)
	}
}

func TestCreateJobStripsServerOwnedFields(t *testing.T) {
	h, store, _ := newTestServer(t)

	rr := doJSON(t, h, "POST", "/api/jobs",
		`{"prompt":"lofi beat","status":"completed","audioUrl":"http://x/a.mp3","id":99,"error":"boom"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("unexpected status: %d", rr.Code)
	}

	job, err := store.GetJob(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetJob: %v", err)
	}
	if job.Status != domain.JobStatusPending || job.AudioURL != nil || job.Error != nil {
		t.Fatalf("server-owned fields leaked: %+v", job)
	}
}

func TestCreateJobValidation(t *testing.T) {
	h, _, notifier := newTestServer(t)

	cases := []struct {
		name  string
		body  string
		field string
	}{
		{"short prompt", `{"prompt":"hi","durationSec":20,"format":"mp3"}`, "prompt"},
		{"duration out of range", `{"prompt":"lofi beat","durationSec":40,"format":"mp3"}`, "durationSec"},
		{"bad format", `{"prompt":"lofi beat","durationSec":20,"format":"ogg"}`, "format"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := doJSON(t, h, "POST", "/api/jobs", tc.body)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("unexpected status: got %d want 400", rr.Code)
			}
			var body struct {
				Message string `json:"message"`
				Field   string `json:"field"`
			}
			if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if body.Field != tc.field {
				t.Fatalf("field mismatch: got %q want %q", body.Field, tc.field)
			}
			if body.Message == "" {
				t.Fatal("expected message")
			}
		})
	}

	if ids := notifier.created(); len(ids) != 0 {
		t.Fatalf("rejected requests must not notify: %v", ids)
	}
}

func TestGetJobNotFound(t *testing.T) {
	h, _, _ := newTestServer(t)

	for _, path := range []string{"/api/jobs/999", "/api/jobs/abc"} {
		rr := doJSON(t, h, "GET", path, "")
		if rr.Code != http.StatusNotFound {
			t.Fatalf("%s: got %d want 404", path, rr.Code)
		}
		var body map[string]string
		if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["message"] != "Job not found" {
			t.Fatalf("unexpected message: %q", body["message"])
		}
	}
}

func TestListJobsMostRecentFirst(t *testing.T) {
	h, _, _ := newTestServer(t)

	for _, prompt := range []string{"first track", "second track", "third track"} {
		rr := doJSON(t, h, "POST", "/api/jobs", `{"prompt":"`+prompt+`"}`)
		if rr.Code != http.StatusCreated {
			t.Fatalf("create %q: %d", prompt, rr.Code)
		}
	}

	rr := doJSON(t, h, "GET", "/api/jobs", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rr.Code)
	}
	var jobs []domain.Job
	if err := json.NewDecoder(rr.Body).Decode(&jobs); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(jobs) != 3 {
		t.Fatalf("expected 3 jobs, got %d", len(jobs))
	}
	if jobs[0].Prompt != "third track" {
		t.Fatalf("most recent job not first: %+v", jobs[0])
	}
	for i := 1; i < len(jobs); i++ {
		if jobs[i].CreatedAt.After(jobs[i-1].CreatedAt) {
			t.Fatalf("jobs out of order at %d", i)
		}
	}
}

func TestUpdateJobCompletesPendingJob(t *testing.T) {
	h, _, _ := newTestServer(t)

	rr := doJSON(t, h, "POST", "/api/jobs", `{"prompt":"lofi beat","durationSec":20,"format":"wav"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create: %d", rr.Code)
	}

	rr = doJSON(t, h, "PATCH", "/api/jobs/1", `{"status":"completed","audioUrl":"http://x/a.mp3"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("update: got %d want 200, body %s", rr.Code, rr.Body.String())
	}
	var job domain.Job
	if err := json.NewDecoder(rr.Body).Decode(&job); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if job.Status != domain.JobStatusCompleted || job.AudioURL == nil || *job.AudioURL != "http://x/a.mp3" {
		t.Fatalf("update not applied: %+v", job)
	}
	if job.Prompt != "lofi beat" || job.DurationSec != 20 || job.Format != "wav" {
		t.Fatalf("original fields changed: %+v", job)
	}

	// A subsequent read reflects the same state.
	rr = doJSON(t, h, "GET", "/api/jobs/1", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("get after update: %d", rr.Code)
	}
	var again domain.Job
	if err := json.NewDecoder(rr.Body).Decode(&again); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if again.Status != domain.JobStatusCompleted || again.AudioURL == nil || *again.AudioURL != "http://x/a.mp3" {
		t.Fatalf("state not persisted: %+v", again)
	}
}

func TestUpdateJobNotFound(t *testing.T) {
	h, _, _ := newTestServer(t)

	rr := doJSON(t, h, "PATCH", "/api/jobs/999", `{"status":"completed"}`)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("got %d want 404", rr.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["message"] != "Job not found" {
		t.Fatalf("unexpected message: %q", body["message"])
	}
}

func TestUpdateJobValidation(t *testing.T) {
	h, _, _ := newTestServer(t)

	rr := doJSON(t, h, "POST", "/api/jobs", `{"prompt":"lofi beat"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create: %d", rr.Code)
	}

	rr = doJSON(t, h, "PATCH", "/api/jobs/1", `{"durationSec":40}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("got %d want 400", rr.Code)
	}

	// Free-form status strings are accepted on the update path.
	rr = doJSON(t, h, "PATCH", "/api/jobs/1", `{"status":"rendering"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("free-form status rejected: %d", rr.Code)
	}
}

type failingRepo struct{}

var errStore = errors.New("connection refused")

func (failingRepo) CreateJob(context.Context, *domain.Job) (*domain.Job, error) {
	return nil, errStore
}
func (failingRepo) GetJob(context.Context, int) (*domain.Job, error) { return nil, errStore }
func (failingRepo) ListJobs(context.Context) ([]domain.Job, error)   { return nil, errStore }
func (failingRepo) UpdateJob(context.Context, int, domain.UpdateJobInput) (*domain.Job, error) {
	return nil, errStore
}
func (failingRepo) Ping(context.Context) error { return errStore }

func TestStoreFailureSurfacesAsInternalError(t *testing.T) {
	app := handlers.NewApp(failingRepo{}, &recordingNotifier{}, zerolog.Nop(), false)
	h := httpapi.NewRouter(app, zerolog.Nop(), nil)

	rr := doJSON(t, h, "POST", "/api/jobs", `{"prompt":"lofi beat"}`)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("got %d want 500", rr.Code)
	}
	rr = doJSON(t, h, "GET", "/api/jobs", "")
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("list: got %d want 500", rr.Code)
	}
}
