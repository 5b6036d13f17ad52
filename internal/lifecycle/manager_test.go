package lifecycle

import (
	"context"
	"errors"
	"testing"

	"github.com/gulla0/ai-tweet-generator/internal/store"
	"github.com/gulla0/ai-tweet-generator/pkg/logging"
	"github.com/gulla0/ai-tweet-generator/pkg/models"
)

type stubPublisher struct {
	postID string
	err    error
	calls  int
}

func (p *stubPublisher) Publish(ctx context.Context, creds models.XCredentials, text string) (string, error) {
	p.calls++
	if p.err != nil {
		return "", p.err
	}
	return p.postID, nil
}

func newTestManager(t *testing.T) (*Manager, *store.MemoryStore, *stubPublisher) {
	t.Helper()
	mem := store.NewMemoryStore()
	pub := &stubPublisher{postID: "1850000000000000000"}
	logger := logging.NewLogger()
	return NewManager(mem.Tweets(), pub, logger), mem, pub
}

func testCreds() models.XCredentials {
	return models.XCredentials{
		APIKey:       "key",
		APISecret:    "secret",
		AccessToken:  "token",
		AccessSecret: "token-secret",
	}
}

func TestCreateDraft(t *testing.T) {
	mgr, mem, _ := newTestManager(t)

	tweet, err := mgr.CreateDraft("t-1", "Governance", "Voting opens tomorrow.")
	if err != nil {
		t.Fatalf("create draft: %v", err)
	}
	if tweet.ID == "" {
		t.Fatal("expected generated tweet ID")
	}
	if tweet.State != models.TweetStateDraft {
		t.Fatalf("expected draft state, got %s", tweet.State)
	}

	stored, err := mem.Tweets().GetByID(tweet.ID)
	if err != nil || stored == nil {
		t.Fatalf("expected draft persisted, got %+v, %v", stored, err)
	}
}

func TestEditMovesToEditedState(t *testing.T) {
	mgr, _, _ := newTestManager(t)
	draft, _ := mgr.CreateDraft("t-1", "Governance", "original")

	edited, err := mgr.Edit(draft.ID, "revised content")
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if edited.State != models.TweetStateEdited {
		t.Fatalf("expected edited state, got %s", edited.State)
	}
	if edited.Content != "revised content" {
		t.Fatalf("unexpected content %q", edited.Content)
	}
	if edited.UpdatedAt == nil {
		t.Fatal("expected updated_at to be set")
	}
}

func TestEditRejectsWhitespaceContent(t *testing.T) {
	mgr, _, _ := newTestManager(t)
	draft, _ := mgr.CreateDraft("t-1", "Governance", "original")

	if _, err := mgr.Edit(draft.ID, "   \n\t"); !errors.Is(err, ErrInvalidContent) {
		t.Fatalf("expected ErrInvalidContent, got %v", err)
	}
}

func TestEditUnknownTweet(t *testing.T) {
	mgr, _, _ := newTestManager(t)

	if _, err := mgr.Edit("no-such-id", "content"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSendIsTerminal(t *testing.T) {
	mgr, _, _ := newTestManager(t)
	draft, _ := mgr.CreateDraft("t-1", "Governance", "content")

	sent, err := mgr.Send(draft.ID)
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if sent.State != models.TweetStateSent {
		t.Fatalf("expected sent state, got %s", sent.State)
	}
	if sent.XPostID != "" {
		t.Fatalf("simulated send must not record a post ID, got %q", sent.XPostID)
	}

	if _, err := mgr.Send(draft.ID); !errors.Is(err, ErrAlreadySent) {
		t.Fatalf("expected ErrAlreadySent on second send, got %v", err)
	}
	if _, err := mgr.Edit(draft.ID, "too late"); !errors.Is(err, ErrAlreadySent) {
		t.Fatalf("expected ErrAlreadySent on edit after send, got %v", err)
	}
	if err := mgr.Delete(draft.ID); !errors.Is(err, ErrAlreadySent) {
		t.Fatalf("expected ErrAlreadySent on delete after send, got %v", err)
	}
}

func TestPublishRecordsPostID(t *testing.T) {
	mgr, _, pub := newTestManager(t)
	draft, _ := mgr.CreateDraft("t-1", "Governance", "content")

	sent, err := mgr.Publish(context.Background(), draft.ID, testCreds())
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if sent.State != models.TweetStateSent {
		t.Fatalf("expected sent state, got %s", sent.State)
	}
	if sent.XPostID != pub.postID {
		t.Fatalf("expected post ID %q, got %q", pub.postID, sent.XPostID)
	}
}

func TestPublishFailureLeavesTweetUntouched(t *testing.T) {
	mgr, mem, pub := newTestManager(t)
	pub.err = errors.New("upstream 503")
	draft, _ := mgr.CreateDraft("t-1", "Governance", "content")

	if _, err := mgr.Publish(context.Background(), draft.ID, testCreds()); !errors.Is(err, ErrPublishFailed) {
		t.Fatalf("expected ErrPublishFailed, got %v", err)
	}

	stored, _ := mem.Tweets().GetByID(draft.ID)
	if stored.State != models.TweetStateDraft {
		t.Fatalf("failed publish must not change state, got %s", stored.State)
	}
	if stored.XPostID != "" {
		t.Fatalf("failed publish must not record a post ID, got %q", stored.XPostID)
	}
}

func TestPublishAlreadySentSkipsGateway(t *testing.T) {
	mgr, _, pub := newTestManager(t)
	draft, _ := mgr.CreateDraft("t-1", "Governance", "content")
	if _, err := mgr.Send(draft.ID); err != nil {
		t.Fatalf("send: %v", err)
	}

	if _, err := mgr.Publish(context.Background(), draft.ID, testCreds()); !errors.Is(err, ErrAlreadySent) {
		t.Fatalf("expected ErrAlreadySent, got %v", err)
	}
	if pub.calls != 0 {
		t.Fatalf("gateway must not be called for sent tweets, got %d calls", pub.calls)
	}
}

func TestDelete(t *testing.T) {
	mgr, mem, _ := newTestManager(t)
	draft, _ := mgr.CreateDraft("t-1", "Governance", "content")

	if err := mgr.Delete(draft.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	stored, _ := mem.Tweets().GetByID(draft.ID)
	if stored != nil {
		t.Fatalf("expected tweet removed, got %+v", stored)
	}

	if err := mgr.Delete(draft.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestStoreFailureSurfacesUnavailable(t *testing.T) {
	mgr, mem, _ := newTestManager(t)
	draft, _ := mgr.CreateDraft("t-1", "Governance", "content")

	mem.FailNext = true
	if _, err := mgr.Edit(draft.ID, "new content"); !errors.Is(err, store.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
