package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gulla0/ai-tweet-generator/internal/validation"
	"github.com/gulla0/ai-tweet-generator/pkg/logging"
	"github.com/gulla0/ai-tweet-generator/pkg/models"
)

// TweetHandler serves the curation operations: edit, simulated send,
// real publish, delete.
type TweetHandler struct {
	lifecycle TweetLifecycle
	logger    logging.Logger
	metrics   *APIMetrics
}

func NewTweetHandler(lifecycle TweetLifecycle, logger logging.Logger, metrics *APIMetrics) *TweetHandler {
	return &TweetHandler{
		lifecycle: lifecycle,
		logger:    logger,
		metrics:   metrics,
	}
}

func (h *TweetHandler) Edit(c *gin.Context) {
	var req models.EditTweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.metrics.IncTweetAction("edit", "bad_request")
		respondError(c, http.StatusBadRequest, CodeInvalidContent, "Invalid request format")
		return
	}

	tweet, err := h.lifecycle.Edit(c.Param("id"), req.Content)
	if err != nil {
		h.metrics.IncTweetAction("edit", "failed")
		respondLifecycleError(c, err)
		return
	}

	if warnings := validation.TweetContentWarnings(tweet.Content); len(warnings) > 0 {
		h.logger.WithFields(logging.Fields{
			"tweet_id": tweet.ID,
			"warnings": warnings,
		}).Warn("Tweet edited with advisory issues")
	}

	h.metrics.IncTweetAction("edit", "ok")
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"tweet":   tweet,
	})
}

// Send marks a tweet sent without contacting X.
func (h *TweetHandler) Send(c *gin.Context) {
	tweet, err := h.lifecycle.Send(c.Param("id"))
	if err != nil {
		h.metrics.IncTweetAction("send", "failed")
		respondLifecycleError(c, err)
		return
	}

	h.metrics.IncTweetAction("send", "ok")
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"tweet":   tweet,
	})
}

// Publish posts the tweet to X with the credentials in the request body.
// The credentials live only for this request.
func (h *TweetHandler) Publish(c *gin.Context) {
	var creds models.XCredentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		h.metrics.IncTweetAction("publish", "bad_request")
		respondError(c, http.StatusBadRequest, CodeInvalidContent, "Invalid request format")
		return
	}

	if validationErrors := validation.ValidateCredentials(creds); len(validationErrors) > 0 {
		h.metrics.IncTweetAction("publish", "bad_request")
		respondError(c, http.StatusBadRequest, CodeInvalidContent, strings.Join(validationErrors, "; "))
		return
	}

	tweet, err := h.lifecycle.Publish(c.Request.Context(), c.Param("id"), creds)
	if err != nil {
		h.metrics.IncTweetAction("publish", "failed")
		respondLifecycleError(c, err)
		return
	}

	h.metrics.IncTweetAction("publish", "ok")
	h.logger.WithFields(logging.Fields{
		"tweet_id":  tweet.ID,
		"x_post_id": tweet.XPostID,
	}).Info("Tweet published to X")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"tweet":   tweet,
	})
}

func (h *TweetHandler) Delete(c *gin.Context) {
	if err := h.lifecycle.Delete(c.Param("id")); err != nil {
		h.metrics.IncTweetAction("delete", "failed")
		respondLifecycleError(c, err)
		return
	}

	h.metrics.IncTweetAction("delete", "ok")
	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}
