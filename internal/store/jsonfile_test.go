package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gulla0/ai-tweet-generator/pkg/models"
)

func newTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	return NewJSONStore(t.TempDir())
}

func TestJSONStoreSelfHealsMissingFile(t *testing.T) {
	s := newTestJSONStore(t)

	transcripts, err := s.Transcripts().ListAll()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(transcripts) != 0 {
		t.Fatalf("expected empty collection, got %d", len(transcripts))
	}
}

func TestJSONStoreAppendAndGet(t *testing.T) {
	s := newTestJSONStore(t)
	ts := s.Transcripts()

	transcript := models.Transcript{
		ID:               "t-1",
		Title:            "Sprint review",
		Date:             "2024-01-01",
		Content:          "notes",
		GenerationStatus: models.GenerationPending,
		CreatedAt:        time.Now().UTC(),
	}
	if err := ts.Append(transcript); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := ts.GetByID("t-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Title != "Sprint review" {
		t.Fatalf("unexpected transcript %+v", got)
	}

	absent, err := ts.GetByID("nope")
	if err != nil {
		t.Fatalf("get absent: %v", err)
	}
	if absent != nil {
		t.Fatalf("expected nil for absent id, got %+v", absent)
	}
}

func TestJSONStorePreservesInsertionOrder(t *testing.T) {
	s := newTestJSONStore(t)
	tw := s.Tweets()

	for _, id := range []string{"a", "b", "c"} {
		if err := tw.Append(models.Tweet{ID: id, TranscriptID: "t-1", State: models.TweetStateDraft}); err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	tweets, err := tw.ListByTranscript("t-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tweets) != 3 {
		t.Fatalf("expected 3 tweets, got %d", len(tweets))
	}
	for i, id := range []string{"a", "b", "c"} {
		if tweets[i].ID != id {
			t.Fatalf("expected %s at %d, got %s", id, i, tweets[i].ID)
		}
	}
}

func TestJSONStoreReplace(t *testing.T) {
	s := newTestJSONStore(t)
	tw := s.Tweets()

	if err := tw.Append(models.Tweet{ID: "a", Content: "old", State: models.TweetStateDraft}); err != nil {
		t.Fatalf("append: %v", err)
	}

	ok, err := tw.Replace("a", models.Tweet{ID: "a", Content: "new", State: models.TweetStateEdited})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if !ok {
		t.Fatal("expected replace to find record")
	}

	got, _ := tw.GetByID("a")
	if got.Content != "new" || got.State != models.TweetStateEdited {
		t.Fatalf("unexpected tweet after replace %+v", got)
	}

	ok, err = tw.Replace("missing", models.Tweet{ID: "missing"})
	if err != nil {
		t.Fatalf("replace absent: %v", err)
	}
	if ok {
		t.Fatal("expected replace of absent id to report false")
	}
}

func TestJSONStoreRemove(t *testing.T) {
	s := newTestJSONStore(t)
	tw := s.Tweets()

	if err := tw.Append(models.Tweet{ID: "a", State: models.TweetStateDraft}); err != nil {
		t.Fatalf("append: %v", err)
	}

	ok, err := tw.RemoveByID("a")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if !ok {
		t.Fatal("expected removal")
	}

	got, _ := tw.GetByID("a")
	if got != nil {
		t.Fatalf("expected tweet gone, got %+v", got)
	}

	ok, err = tw.RemoveByID("a")
	if err != nil {
		t.Fatalf("second remove: %v", err)
	}
	if ok {
		t.Fatal("expected second removal to report false")
	}
}

func TestJSONStoreCorruptFileIsUnavailable(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "tweets.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	s := NewJSONStore(dir)
	_, err := s.Tweets().ListAll()
	if err == nil {
		t.Fatal("expected error for corrupt file")
	}
}
