package store

import (
	"sync"

	"github.com/gulla0/ai-tweet-generator/pkg/models"
)

// MemoryStore is an in-memory implementation of both store interfaces,
// used as the test double throughout the repo.
type MemoryStore struct {
	mu          sync.Mutex
	transcripts []models.Transcript
	tweets      []models.Tweet

	// FailNext forces the next operation to return ErrUnavailable
	FailNext bool
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) fail() bool {
	if s.FailNext {
		s.FailNext = false
		return true
	}
	return false
}

// Transcripts returns the transcript collection view of the store
func (s *MemoryStore) Transcripts() TranscriptStore { return (*memTranscripts)(s) }

// Tweets returns the tweet collection view of the store
func (s *MemoryStore) Tweets() TweetStore { return (*memTweets)(s) }

type memTranscripts MemoryStore

func (m *memTranscripts) ListAll() ([]models.Transcript, error) {
	s := (*MemoryStore)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail() {
		return nil, ErrUnavailable
	}
	out := make([]models.Transcript, len(s.transcripts))
	copy(out, s.transcripts)
	return out, nil
}

func (m *memTranscripts) GetByID(id string) (*models.Transcript, error) {
	s := (*MemoryStore)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail() {
		return nil, ErrUnavailable
	}
	for i := range s.transcripts {
		if s.transcripts[i].ID == id {
			t := s.transcripts[i]
			return &t, nil
		}
	}
	return nil, nil
}

func (m *memTranscripts) Append(t models.Transcript) error {
	s := (*MemoryStore)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail() {
		return ErrUnavailable
	}
	s.transcripts = append(s.transcripts, t)
	return nil
}

func (m *memTranscripts) Replace(id string, t models.Transcript) (bool, error) {
	s := (*MemoryStore)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail() {
		return false, ErrUnavailable
	}
	for i := range s.transcripts {
		if s.transcripts[i].ID == id {
			s.transcripts[i] = t
			return true, nil
		}
	}
	return false, nil
}

type memTweets MemoryStore

func (m *memTweets) ListAll() ([]models.Tweet, error) {
	s := (*MemoryStore)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail() {
		return nil, ErrUnavailable
	}
	out := make([]models.Tweet, len(s.tweets))
	copy(out, s.tweets)
	return out, nil
}

func (m *memTweets) ListByTranscript(transcriptID string) ([]models.Tweet, error) {
	s := (*MemoryStore)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail() {
		return nil, ErrUnavailable
	}
	tweets := make([]models.Tweet, 0)
	for _, t := range s.tweets {
		if t.TranscriptID == transcriptID {
			tweets = append(tweets, t)
		}
	}
	return tweets, nil
}

func (m *memTweets) GetByID(id string) (*models.Tweet, error) {
	s := (*MemoryStore)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail() {
		return nil, ErrUnavailable
	}
	for i := range s.tweets {
		if s.tweets[i].ID == id {
			t := s.tweets[i]
			return &t, nil
		}
	}
	return nil, nil
}

func (m *memTweets) Append(t models.Tweet) error {
	s := (*MemoryStore)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail() {
		return ErrUnavailable
	}
	s.tweets = append(s.tweets, t)
	return nil
}

func (m *memTweets) Replace(id string, t models.Tweet) (bool, error) {
	s := (*MemoryStore)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail() {
		return false, ErrUnavailable
	}
	for i := range s.tweets {
		if s.tweets[i].ID == id {
			s.tweets[i] = t
			return true, nil
		}
	}
	return false, nil
}

func (m *memTweets) RemoveByID(id string) (bool, error) {
	s := (*MemoryStore)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail() {
		return false, ErrUnavailable
	}
	for i := range s.tweets {
		if s.tweets[i].ID == id {
			s.tweets = append(s.tweets[:i], s.tweets[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
