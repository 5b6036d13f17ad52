package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gulla0/ai-tweet-generator/internal/publisher"
	"github.com/gulla0/ai-tweet-generator/internal/validation"
	"github.com/gulla0/ai-tweet-generator/pkg/logging"
	"github.com/gulla0/ai-tweet-generator/pkg/models"
)

// CredentialHandler validates operator-supplied X credentials against
// the platform without storing them.
type CredentialHandler struct {
	validator CredentialValidator
	logger    logging.Logger
	metrics   *APIMetrics
}

func NewCredentialHandler(validator CredentialValidator, logger logging.Logger, metrics *APIMetrics) *CredentialHandler {
	return &CredentialHandler{
		validator: validator,
		logger:    logger,
		metrics:   metrics,
	}
}

func (h *CredentialHandler) Validate(c *gin.Context) {
	var creds models.XCredentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		h.metrics.IncCredentialCheck("bad_request")
		respondError(c, http.StatusBadRequest, CodeInvalidContent, "Invalid request format")
		return
	}

	if validationErrors := validation.ValidateCredentials(creds); len(validationErrors) > 0 {
		h.metrics.IncCredentialCheck("bad_request")
		respondError(c, http.StatusBadRequest, CodeInvalidContent, strings.Join(validationErrors, "; "))
		return
	}

	valid, err := h.validator.ValidateCredentials(c.Request.Context(), creds)
	if err != nil {
		h.metrics.IncCredentialCheck("gateway_error")
		h.logger.WithFields(logging.Fields{
			"error": err.Error(),
		}).Error("Credential validation failed")
		if errors.Is(err, publisher.ErrGatewayUnavailable) {
			respondError(c, http.StatusBadGateway, CodeGatewayUnavailable, "Could not reach X")
			return
		}
		respondError(c, http.StatusBadGateway, CodeGatewayUnavailable, "Credential check failed")
		return
	}

	if valid {
		h.metrics.IncCredentialCheck("valid")
	} else {
		h.metrics.IncCredentialCheck("invalid")
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"valid":   valid,
	})
}
