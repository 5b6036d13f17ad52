package models

import "time"

// GenerationStatus tracks the outcome of the background tweet generation
// kicked off when a transcript is created.
type GenerationStatus string

const (
	GenerationPending   GenerationStatus = "pending"
	GenerationSucceeded GenerationStatus = "succeeded"
	GenerationFailed    GenerationStatus = "failed"
)

// Transcript represents a persisted meeting transcript. Transcripts are
// append-only: nothing mutates them after creation except the generation
// status recorded by the worker.
type Transcript struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Date             string           `json:"date"`
	Content          string           `json:"content"`
	GenerationStatus GenerationStatus `json:"generation_status"`
	CreatedAt        time.Time        `json:"created_at"`
}

// CreateTranscriptRequest is the payload for transcript submission
type CreateTranscriptRequest struct {
	Title   string `json:"title"`
	Date    string `json:"date"`
	Content string `json:"content"`
}
