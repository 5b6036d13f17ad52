package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gulla0/ai-tweet-generator/pkg/models"
)

// JSONStore keeps each collection in a pretty-printed JSON array file under
// a data directory, loading the whole file per operation and rewriting it
// on every mutation. A missing file or directory is initialized to an empty
// collection on first access rather than treated as a fault.
//
// Writes are serialized with a mutex within the process; concurrent
// processes sharing the same files remain last-write-wins.
type JSONStore struct {
	dataDir string
	mu      sync.Mutex
}

// NewJSONStore creates a JSON file store rooted at dataDir
func NewJSONStore(dataDir string) *JSONStore {
	return &JSONStore{dataDir: dataDir}
}

// Transcripts returns the transcript collection view of the store
func (s *JSONStore) Transcripts() TranscriptStore {
	return &jsonCollection[models.Transcript]{
		store: s,
		file:  "transcripts.json",
		id:    func(t models.Transcript) string { return t.ID },
	}
}

// Tweets returns the tweet collection view of the store
func (s *JSONStore) Tweets() TweetStore {
	return &jsonTweets{jsonCollection[models.Tweet]{
		store: s,
		file:  "tweets.json",
		id:    func(t models.Tweet) string { return t.ID },
	}}
}

type jsonCollection[T any] struct {
	store *JSONStore
	file  string
	id    func(T) string
}

func (c *jsonCollection[T]) path() string {
	return filepath.Join(c.store.dataDir, c.file)
}

// load reads the full collection, creating an empty file if absent
func (c *jsonCollection[T]) load() ([]T, error) {
	if err := os.MkdirAll(c.store.dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create data dir: %v", ErrUnavailable, err)
	}

	data, err := os.ReadFile(c.path())
	if os.IsNotExist(err) {
		if err := os.WriteFile(c.path(), []byte("[]"), 0o644); err != nil {
			return nil, fmt.Errorf("%w: init %s: %v", ErrUnavailable, c.file, err)
		}
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrUnavailable, c.file, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrUnavailable, c.file, err)
	}
	return items, nil
}

// flush rewrites the full collection
func (c *jsonCollection[T]) flush(items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrUnavailable, c.file, err)
	}
	if err := os.WriteFile(c.path(), data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrUnavailable, c.file, err)
	}
	return nil
}

func (c *jsonCollection[T]) ListAll() ([]T, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	return c.load()
}

func (c *jsonCollection[T]) GetByID(id string) (*T, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	items, err := c.load()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if c.id(items[i]) == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

func (c *jsonCollection[T]) Append(item T) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	items, err := c.load()
	if err != nil {
		return err
	}
	return c.flush(append(items, item))
}

func (c *jsonCollection[T]) Replace(id string, updated T) (bool, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	items, err := c.load()
	if err != nil {
		return false, err
	}
	for i := range items {
		if c.id(items[i]) == id {
			items[i] = updated
			return true, c.flush(items)
		}
	}
	return false, nil
}

func (c *jsonCollection[T]) RemoveByID(id string) (bool, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	items, err := c.load()
	if err != nil {
		return false, err
	}
	for i := range items {
		if c.id(items[i]) == id {
			items = append(items[:i], items[i+1:]...)
			return true, c.flush(items)
		}
	}
	return false, nil
}

type jsonTweets struct {
	jsonCollection[models.Tweet]
}

func (c *jsonTweets) ListByTranscript(transcriptID string) ([]models.Tweet, error) {
	all, err := c.ListAll()
	if err != nil {
		return nil, err
	}
	tweets := make([]models.Tweet, 0)
	for _, t := range all {
		if t.TranscriptID == transcriptID {
			tweets = append(tweets, t)
		}
	}
	return tweets, nil
}
