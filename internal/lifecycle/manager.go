// Package lifecycle implements the tweet state machine. Tweets move from
// draft to edited to sent; sent is terminal and blocks further edits,
// sends and deletes.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gulla0/ai-tweet-generator/internal/store"
	"github.com/gulla0/ai-tweet-generator/pkg/logging"
	"github.com/gulla0/ai-tweet-generator/pkg/models"
)

var (
	// ErrNotFound indicates the referenced tweet does not exist.
	ErrNotFound = errors.New("tweet not found")
	// ErrInvalidContent indicates an edit with empty or whitespace-only content.
	ErrInvalidContent = errors.New("tweet content cannot be empty")
	// ErrAlreadySent indicates a mutation against a tweet in the sent state.
	ErrAlreadySent = errors.New("tweet has already been sent")
	// ErrPublishFailed wraps publish gateway errors. The tweet is left
	// unchanged when this is returned.
	ErrPublishFailed = errors.New("failed to publish tweet")
)

// Publisher posts tweet content to X on behalf of the caller-supplied
// credentials and returns the platform post ID.
type Publisher interface {
	Publish(ctx context.Context, creds models.XCredentials, text string) (string, error)
}

// Manager owns all tweet mutations.
type Manager struct {
	tweets    store.TweetStore
	publisher Publisher
	logger    logging.Logger
}

func NewManager(tweets store.TweetStore, publisher Publisher, logger logging.Logger) *Manager {
	return &Manager{
		tweets:    tweets,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateDraft persists a new tweet in the draft state. Used by the
// generation worker when a transcript's generation completes.
func (m *Manager) CreateDraft(transcriptID, category, content string) (models.Tweet, error) {
	tweet := models.Tweet{
		ID:           uuid.New().String(),
		TranscriptID: transcriptID,
		Category:     category,
		Content:      content,
		State:        models.TweetStateDraft,
		CreatedAt:    time.Now().UTC(),
	}
	if err := m.tweets.Append(tweet); err != nil {
		return models.Tweet{}, err
	}
	return tweet, nil
}

// Edit replaces a tweet's content and moves it to the edited state.
func (m *Manager) Edit(id, content string) (*models.Tweet, error) {
	tweet, err := m.tweets.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tweet == nil {
		return nil, ErrNotFound
	}
	if tweet.State == models.TweetStateSent {
		return nil, ErrAlreadySent
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrInvalidContent
	}

	now := time.Now().UTC()
	tweet.Content = content
	tweet.State = models.TweetStateEdited
	tweet.UpdatedAt = &now

	found, err := m.tweets.Replace(id, *tweet)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return tweet, nil
}

// Send marks a tweet as sent without contacting X. Used when operating
// without platform credentials; no post ID is recorded.
func (m *Manager) Send(id string) (*models.Tweet, error) {
	tweet, err := m.sendable(id)
	if err != nil {
		return nil, err
	}
	return m.markSent(tweet, "")
}

// Publish posts a tweet to X with the caller's credentials and, on
// success, marks it sent with the returned post ID. A gateway failure
// leaves the tweet untouched.
func (m *Manager) Publish(ctx context.Context, id string, creds models.XCredentials) (*models.Tweet, error) {
	tweet, err := m.sendable(id)
	if err != nil {
		return nil, err
	}

	postID, err := m.publisher.Publish(ctx, creds, tweet.Content)
	if err != nil {
		m.logger.WithFields(logging.Fields{
			"tweet_id": id,
			"error":    err.Error(),
		}).Error("Publish to X failed")
		return nil, fmt.Errorf("%w: %w", ErrPublishFailed, err)
	}

	return m.markSent(tweet, postID)
}

// Delete removes a tweet. Sent tweets are part of the published record
// and cannot be deleted.
func (m *Manager) Delete(id string) error {
	tweet, err := m.tweets.GetByID(id)
	if err != nil {
		return err
	}
	if tweet == nil {
		return ErrNotFound
	}
	if tweet.State == models.TweetStateSent {
		return ErrAlreadySent
	}

	found, err := m.tweets.RemoveByID(id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

func (m *Manager) sendable(id string) (*models.Tweet, error) {
	tweet, err := m.tweets.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tweet == nil {
		return nil, ErrNotFound
	}
	if tweet.State == models.TweetStateSent {
		return nil, ErrAlreadySent
	}
	return tweet, nil
}

func (m *Manager) markSent(tweet *models.Tweet, postID string) (*models.Tweet, error) {
	now := time.Now().UTC()
	tweet.State = models.TweetStateSent
	tweet.UpdatedAt = &now
	tweet.XPostID = postID

	found, err := m.tweets.Replace(tweet.ID, *tweet)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return tweet, nil
}
