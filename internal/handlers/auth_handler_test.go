package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/gulla0/ai-tweet-generator/pkg/auth"
	"github.com/gulla0/ai-tweet-generator/pkg/logging"
	"github.com/gulla0/ai-tweet-generator/pkg/models"
)

var testJWTSecret = []byte("test-secret")

func setupAuthHandler(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	hash, err := auth.HashPassword("operator-password", 4)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	router := gin.New()
	handler := NewAuthHandler("operator@example.com", hash, testJWTSecret, logging.NewLogger())
	router.POST("/api/auth/login", handler.Login)
	return router
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	router := setupAuthHandler(t)

	resp := postJSON(t, router, "/api/auth/login", models.LoginRequest{
		Email:    "operator@example.com",
		Password: "operator-password",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var body struct {
		Token string `json:"token"`
	}
	json.Unmarshal(resp.Body.Bytes(), &body)
	if body.Token == "" {
		t.Fatal("expected a token")
	}

	claims, err := auth.ValidateJWT(body.Token, testJWTSecret)
	if err != nil {
		t.Fatalf("issued token failed validation: %v", err)
	}
	if claims.Email != "operator@example.com" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestLoginRejectsBadPassword(t *testing.T) {
	router := setupAuthHandler(t)

	resp := postJSON(t, router, "/api/auth/login", models.LoginRequest{
		Email:    "operator@example.com",
		Password: "wrong",
	})
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	router := setupAuthHandler(t)

	resp := postJSON(t, router, "/api/auth/login", models.LoginRequest{
		Email:    "someone-else@example.com",
		Password: "operator-password",
	})
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}
