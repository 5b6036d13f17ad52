package handlers

import (
	"context"

	"github.com/gulla0/ai-tweet-generator/pkg/models"
)

// TweetLifecycle is the slice of the lifecycle manager the tweet
// handlers need.
type TweetLifecycle interface {
	Edit(id, content string) (*models.Tweet, error)
	Send(id string) (*models.Tweet, error)
	Publish(ctx context.Context, id string, creds models.XCredentials) (*models.Tweet, error)
	Delete(id string) error
}

// GenerationScheduler enqueues background tweet generation for a
// freshly created transcript.
type GenerationScheduler interface {
	Enqueue(transcriptID string) bool
}

// CredentialValidator checks caller-supplied X credentials against the
// platform.
type CredentialValidator interface {
	ValidateCredentials(ctx context.Context, creds models.XCredentials) (bool, error)
}
