package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gulla0/ai-tweet-generator/pkg/auth"
	"github.com/gulla0/ai-tweet-generator/pkg/logging"
	"github.com/gulla0/ai-tweet-generator/pkg/models"
)

// AuthHandler issues operator tokens. There is one operator account,
// configured through the environment.
type AuthHandler struct {
	operatorEmail    string
	operatorPassHash string
	jwtSecret        []byte
	logger           logging.Logger
}

func NewAuthHandler(operatorEmail, operatorPassHash string, jwtSecret []byte, logger logging.Logger) *AuthHandler {
	return &AuthHandler{
		operatorEmail:    operatorEmail,
		operatorPassHash: operatorPassHash,
		jwtSecret:        jwtSecret,
		logger:           logger,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeInvalidContent, "Invalid request format")
		return
	}

	if req.Email != h.operatorEmail || !auth.CheckPassword(req.Password, h.operatorPassHash) {
		h.logger.WithFields(logging.Fields{
			"email": req.Email,
		}).Warn("Failed login attempt")
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Invalid email or password",
		})
		return
	}

	token, err := auth.GenerateJWT(req.Email, h.jwtSecret)
	if err != nil {
		h.logger.WithFields(logging.Fields{
			"error": err.Error(),
		}).Error("Failed to sign token")
		respondError(c, http.StatusInternalServerError, CodeStoreUnavailable, "Could not issue token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
	})
}
