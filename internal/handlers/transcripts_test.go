package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gulla0/ai-tweet-generator/internal/store"
	"github.com/gulla0/ai-tweet-generator/pkg/logging"
	"github.com/gulla0/ai-tweet-generator/pkg/models"
)

type schedulerStub struct {
	enqueued []string
	full     bool
}

func (s *schedulerStub) Enqueue(transcriptID string) bool {
	s.enqueued = append(s.enqueued, transcriptID)
	return !s.full
}

type transcriptHarness struct {
	router    *gin.Engine
	mem       *store.MemoryStore
	scheduler *schedulerStub
}

func setupTranscriptHandler() *transcriptHarness {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	mem := store.NewMemoryStore()
	scheduler := &schedulerStub{}
	handler := NewTranscriptHandler(mem.Transcripts(), mem.Tweets(), scheduler, logging.NewLogger(), nil)
	router.POST("/api/transcripts", handler.Create)
	router.GET("/api/transcripts", handler.List)
	router.GET("/api/transcripts/:id", handler.Get)
	router.GET("/api/transcripts/:id/tweets", handler.ListTweets)
	return &transcriptHarness{router: router, mem: mem, scheduler: scheduler}
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func getPath(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestCreateTranscriptSchedulesGeneration(t *testing.T) {
	harness := setupTranscriptHandler()

	resp := postJSON(t, harness.router, "/api/transcripts", models.CreateTranscriptRequest{
		Title:   "Weekly sync",
		Date:    "2024-01-01",
		Content: "We discussed the treasury vote.",
	})

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var body struct {
		Success    bool              `json:"success"`
		Transcript models.Transcript `json:"transcript"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Success || body.Transcript.ID == "" {
		t.Fatalf("unexpected response %+v", body)
	}
	if body.Transcript.GenerationStatus != models.GenerationPending {
		t.Fatalf("expected pending status, got %s", body.Transcript.GenerationStatus)
	}

	if len(harness.scheduler.enqueued) != 1 || harness.scheduler.enqueued[0] != body.Transcript.ID {
		t.Fatalf("expected generation scheduled for %s, got %v", body.Transcript.ID, harness.scheduler.enqueued)
	}

	stored, _ := harness.mem.Transcripts().GetByID(body.Transcript.ID)
	if stored == nil {
		t.Fatal("transcript not persisted")
	}
}

func TestCreateTranscriptRejectsEmptyFields(t *testing.T) {
	harness := setupTranscriptHandler()

	resp := postJSON(t, harness.router, "/api/transcripts", models.CreateTranscriptRequest{
		Title: "  ", Date: "2024-01-01", Content: "",
	})

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if len(harness.scheduler.enqueued) != 0 {
		t.Fatal("invalid transcript must not schedule generation")
	}

	var body map[string]any
	json.Unmarshal(resp.Body.Bytes(), &body)
	if body["code"] != CodeInvalidContent {
		t.Fatalf("expected code %s, got %v", CodeInvalidContent, body["code"])
	}
}

func TestGetTranscriptNotFound(t *testing.T) {
	harness := setupTranscriptHandler()

	resp := getPath(harness.router, "/api/transcripts/no-such-id")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}

	var body map[string]any
	json.Unmarshal(resp.Body.Bytes(), &body)
	if body["code"] != CodeNotFound {
		t.Fatalf("expected code %s, got %v", CodeNotFound, body["code"])
	}
}

func TestListTweetsForPendingTranscript(t *testing.T) {
	harness := setupTranscriptHandler()
	transcript := models.Transcript{
		ID: "t-1", Title: "T", Date: "2024-01-01", Content: "...",
		GenerationStatus: models.GenerationPending, CreatedAt: time.Now(),
	}
	harness.mem.Transcripts().Append(transcript)

	resp := getPath(harness.router, "/api/transcripts/t-1/tweets")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body struct {
		Success          bool                    `json:"success"`
		GenerationStatus models.GenerationStatus `json:"generation_status"`
		Tweets           []models.Tweet          `json:"tweets"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.GenerationStatus != models.GenerationPending {
		t.Fatalf("expected pending, got %s", body.GenerationStatus)
	}
	if body.Tweets == nil || len(body.Tweets) != 0 {
		t.Fatalf("expected empty tweet list, got %v", body.Tweets)
	}
}

func TestListTweetsUnknownTranscript(t *testing.T) {
	harness := setupTranscriptHandler()

	resp := getPath(harness.router, "/api/transcripts/no-such-id/tweets")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestCreateTranscriptStoreFailure(t *testing.T) {
	harness := setupTranscriptHandler()
	harness.mem.FailNext = true

	resp := postJSON(t, harness.router, "/api/transcripts", models.CreateTranscriptRequest{
		Title: "T", Date: "2024-01-01", Content: "...",
	})

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	var body map[string]any
	json.Unmarshal(resp.Body.Bytes(), &body)
	if body["code"] != CodeStoreUnavailable {
		t.Fatalf("expected code %s, got %v", CodeStoreUnavailable, body["code"])
	}
}
