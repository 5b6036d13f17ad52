// Package generator turns persisted transcripts into draft tweets. A
// single background worker calls the language model, parses its output
// and records the outcome on the transcript. Failed attempts are never
// retried; the transcript's generation_status is the only trace.
package generator

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gulla0/ai-tweet-generator/internal/lifecycle"
	"github.com/gulla0/ai-tweet-generator/internal/store"
	"github.com/gulla0/ai-tweet-generator/pkg/llm"
	"github.com/gulla0/ai-tweet-generator/pkg/logging"
	"github.com/gulla0/ai-tweet-generator/pkg/models"
)

// ErrGenerationFailed wraps model call failures, including empty completions.
var ErrGenerationFailed = errors.New("tweet generation failed")

const defaultQueueSize = 64

// Worker processes transcript generation jobs off a buffered queue, one
// at a time.
type Worker struct {
	transcripts store.TranscriptStore
	manager     *lifecycle.Manager
	provider    llm.Provider
	logger      logging.Logger
	metrics     *Metrics

	queue chan string
	wg    sync.WaitGroup
	once  sync.Once
}

func NewWorker(transcripts store.TranscriptStore, manager *lifecycle.Manager, provider llm.Provider, logger logging.Logger, metrics *Metrics) *Worker {
	return &Worker{
		transcripts: transcripts,
		manager:     manager,
		provider:    provider,
		logger:      logger,
		metrics:     metrics,
		queue:       make(chan string, defaultQueueSize),
	}
}

// Start launches the processing goroutine. The context bounds in-flight
// model calls; cancelling it fails the remaining queued jobs.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for transcriptID := range w.queue {
			w.process(ctx, transcriptID)
		}
	}()
}

// Stop closes the queue and waits for the in-flight job to finish.
func (w *Worker) Stop() {
	w.once.Do(func() { close(w.queue) })
	w.wg.Wait()
}

// Enqueue schedules generation for a transcript without blocking. When
// the queue is full the transcript is marked failed immediately, since
// callers have already returned and would never observe a silent drop.
func (w *Worker) Enqueue(transcriptID string) bool {
	select {
	case w.queue <- transcriptID:
		return true
	default:
		w.logger.WithFields(logging.Fields{
			"transcript_id": transcriptID,
		}).Error("Generation queue full, marking transcript failed")
		w.recordOutcome(transcriptID, models.GenerationFailed)
		w.metrics.IncGeneration("queue_full")
		return false
	}
}

func (w *Worker) process(ctx context.Context, transcriptID string) {
	transcript, err := w.transcripts.GetByID(transcriptID)
	if err != nil {
		w.logger.WithFields(logging.Fields{
			"transcript_id": transcriptID,
			"error":         err.Error(),
		}).Error("Failed to load transcript for generation")
		w.metrics.IncGeneration("store_error")
		return
	}
	if transcript == nil {
		w.logger.WithFields(logging.Fields{
			"transcript_id": transcriptID,
		}).Warn("Transcript vanished before generation ran")
		return
	}

	tweets, err := w.generate(ctx, transcript.Content)
	if err != nil {
		w.logger.WithFields(logging.Fields{
			"transcript_id": transcriptID,
			"error":         err.Error(),
		}).Error("Tweet generation failed")
		w.recordOutcome(transcriptID, models.GenerationFailed)
		if errors.Is(err, ErrUnparseable) {
			w.metrics.IncGeneration("unparseable")
		} else {
			w.metrics.IncGeneration("failed")
		}
		return
	}

	created := 0
	for _, tweet := range tweets {
		if _, err := w.manager.CreateDraft(transcriptID, tweet.Category, tweet.Content); err != nil {
			w.logger.WithFields(logging.Fields{
				"transcript_id": transcriptID,
				"error":         err.Error(),
			}).Error("Failed to persist generated tweet")
			continue
		}
		created++
	}

	// A completion that produced entries but persisted none is a failed
	// attempt, not a success with an empty result.
	if created == 0 && len(tweets) > 0 {
		w.recordOutcome(transcriptID, models.GenerationFailed)
		w.metrics.IncGeneration("store_error")
		w.logger.WithFields(logging.Fields{
			"transcript_id": transcriptID,
			"tweet_count":   len(tweets),
		}).Error("No generated tweets could be persisted")
		return
	}

	w.recordOutcome(transcriptID, models.GenerationSucceeded)
	w.metrics.IncGeneration("succeeded")
	w.metrics.AddTweets(created)
	w.logger.WithFields(logging.Fields{
		"transcript_id": transcriptID,
		"tweet_count":   created,
	}).Info("Tweet generation completed")
}

func (w *Worker) generate(ctx context.Context, transcriptText string) ([]GeneratedTweet, error) {
	raw, err := w.provider.Complete(ctx, systemPrompt, userPrompt(transcriptText))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	return ParseResponse(raw)
}

func (w *Worker) recordOutcome(transcriptID string, status models.GenerationStatus) {
	transcript, err := w.transcripts.GetByID(transcriptID)
	if err != nil || transcript == nil {
		return
	}
	transcript.GenerationStatus = status
	if _, err := w.transcripts.Replace(transcriptID, *transcript); err != nil {
		w.logger.WithFields(logging.Fields{
			"transcript_id": transcriptID,
			"error":         err.Error(),
		}).Error("Failed to record generation outcome")
	}
}
