package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gulla0/ai-tweet-generator/internal/lifecycle"
	"github.com/gulla0/ai-tweet-generator/internal/publisher"
	"github.com/gulla0/ai-tweet-generator/internal/store"
)

// Stable reason codes carried on every error response.
const (
	CodeNotFound           = "NOT_FOUND"
	CodeInvalidContent     = "INVALID_CONTENT"
	CodeAlreadySent        = "ALREADY_SENT"
	CodePublishFailed      = "PUBLISH_FAILED"
	CodeStoreUnavailable   = "STORE_UNAVAILABLE"
	CodeGatewayUnavailable = "GATEWAY_UNAVAILABLE"
)

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
		"code":    code,
	})
}

// respondLifecycleError translates lifecycle and store errors into the
// HTTP contract. Unrecognized errors are reported as store faults since
// the lifecycle layer only ever surfaces its own sentinels or storage
// failures.
func respondLifecycleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, lifecycle.ErrNotFound):
		respondError(c, http.StatusNotFound, CodeNotFound, "Tweet not found")
	case errors.Is(err, lifecycle.ErrInvalidContent):
		respondError(c, http.StatusBadRequest, CodeInvalidContent, "Tweet content cannot be empty")
	case errors.Is(err, lifecycle.ErrAlreadySent):
		respondError(c, http.StatusConflict, CodeAlreadySent, "Tweet has already been sent")
	case errors.Is(err, publisher.ErrGatewayUnavailable):
		respondError(c, http.StatusBadGateway, CodeGatewayUnavailable, "Could not reach X")
	case errors.Is(err, lifecycle.ErrPublishFailed):
		respondError(c, http.StatusBadGateway, CodePublishFailed, "Failed to publish tweet")
	case errors.Is(err, store.ErrUnavailable):
		respondError(c, http.StatusInternalServerError, CodeStoreUnavailable, "Storage is unavailable")
	default:
		respondError(c, http.StatusInternalServerError, CodeStoreUnavailable, "Storage is unavailable")
	}
}
