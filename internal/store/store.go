// Package store provides the persistence layer for transcripts and tweets.
// Backends implement full-collection read-modify-write semantics behind
// narrow interfaces so handlers and the generation worker never touch the
// storage medium directly.
package store

import (
	"errors"

	"github.com/gulla0/ai-tweet-generator/pkg/models"
)

// ErrUnavailable indicates the underlying storage medium failed. Lookups
// that simply find nothing return (nil, nil) or (false, nil) instead.
var ErrUnavailable = errors.New("store unavailable")

// TranscriptStore persists transcripts. Transcripts are never removed;
// Replace exists only so the generation worker can record its outcome.
type TranscriptStore interface {
	ListAll() ([]models.Transcript, error)
	GetByID(id string) (*models.Transcript, error)
	Append(t models.Transcript) error
	Replace(id string, t models.Transcript) (bool, error)
}

// TweetStore persists tweets.
type TweetStore interface {
	ListAll() ([]models.Tweet, error)
	ListByTranscript(transcriptID string) ([]models.Tweet, error)
	GetByID(id string) (*models.Tweet, error)
	Append(t models.Tweet) error
	Replace(id string, t models.Tweet) (bool, error)
	RemoveByID(id string) (bool, error)
}
