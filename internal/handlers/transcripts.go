package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gulla0/ai-tweet-generator/internal/store"
	"github.com/gulla0/ai-tweet-generator/internal/validation"
	"github.com/gulla0/ai-tweet-generator/pkg/logging"
	"github.com/gulla0/ai-tweet-generator/pkg/models"
)

// TranscriptHandler serves transcript submission and retrieval. Creation
// persists synchronously and schedules generation; the response never
// waits for the model.
type TranscriptHandler struct {
	transcripts store.TranscriptStore
	tweets      store.TweetStore
	scheduler   GenerationScheduler
	logger      logging.Logger
	metrics     *APIMetrics
}

func NewTranscriptHandler(
	transcripts store.TranscriptStore,
	tweets store.TweetStore,
	scheduler GenerationScheduler,
	logger logging.Logger,
	metrics *APIMetrics,
) *TranscriptHandler {
	return &TranscriptHandler{
		transcripts: transcripts,
		tweets:      tweets,
		scheduler:   scheduler,
		logger:      logger,
		metrics:     metrics,
	}
}

func (h *TranscriptHandler) Create(c *gin.Context) {
	var req models.CreateTranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.metrics.IncTranscriptCreate("bad_request")
		respondError(c, http.StatusBadRequest, CodeInvalidContent, "Invalid request format")
		return
	}

	if validationErrors := validation.ValidateTranscript(&req); len(validationErrors) > 0 {
		h.metrics.IncTranscriptCreate("validation_failed")
		respondError(c, http.StatusBadRequest, CodeInvalidContent, strings.Join(validationErrors, "; "))
		return
	}

	transcript := models.Transcript{
		ID:               uuid.New().String(),
		Title:            req.Title,
		Date:             req.Date,
		Content:          req.Content,
		GenerationStatus: models.GenerationPending,
		CreatedAt:        time.Now().UTC(),
	}

	if err := h.transcripts.Append(transcript); err != nil {
		h.metrics.IncTranscriptCreate("store_error")
		h.logger.WithFields(logging.Fields{
			"error": err.Error(),
		}).Error("Failed to persist transcript")
		respondError(c, http.StatusInternalServerError, CodeStoreUnavailable, "Storage is unavailable")
		return
	}

	h.scheduler.Enqueue(transcript.ID)
	h.metrics.IncTranscriptCreate("created")
	h.logger.WithFields(logging.Fields{
		"transcript_id": transcript.ID,
		"title":         transcript.Title,
	}).Info("Transcript created, generation scheduled")

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"transcript": transcript,
	})
}

func (h *TranscriptHandler) List(c *gin.Context) {
	transcripts, err := h.transcripts.ListAll()
	if err != nil {
		h.logger.WithFields(logging.Fields{
			"error": err.Error(),
		}).Error("Failed to list transcripts")
		respondError(c, http.StatusInternalServerError, CodeStoreUnavailable, "Storage is unavailable")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"transcripts": transcripts,
	})
}

func (h *TranscriptHandler) Get(c *gin.Context) {
	transcript, err := h.transcripts.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, CodeStoreUnavailable, "Storage is unavailable")
		return
	}
	if transcript == nil {
		respondError(c, http.StatusNotFound, CodeNotFound, "Transcript not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"transcript": transcript,
	})
}

// ListTweets returns the tweets generated for a transcript, in insertion
// order. The list is empty while generation is still pending.
func (h *TranscriptHandler) ListTweets(c *gin.Context) {
	id := c.Param("id")

	transcript, err := h.transcripts.GetByID(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, CodeStoreUnavailable, "Storage is unavailable")
		return
	}
	if transcript == nil {
		respondError(c, http.StatusNotFound, CodeNotFound, "Transcript not found")
		return
	}

	tweets, err := h.tweets.ListByTranscript(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, CodeStoreUnavailable, "Storage is unavailable")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"generation_status": transcript.GenerationStatus,
		"tweets":            tweets,
	})
}
