// Package publisher posts tweets to X over its v2 API. Credentials are
// supplied per call by the operator and are only ever held in memory for
// the duration of the request.
package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dghubble/oauth1"

	"github.com/gulla0/ai-tweet-generator/pkg/logging"
	"github.com/gulla0/ai-tweet-generator/pkg/models"
)

// ErrGatewayUnavailable indicates the platform could not be reached at
// the transport level, as opposed to rejecting the request.
var ErrGatewayUnavailable = errors.New("publish gateway unavailable")

const (
	defaultBaseURL = "https://api.x.com/2"
	requestTimeout = 30 * time.Second
)

type postRequest struct {
	Text string `json:"text"`
}

type postResponse struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// XClient talks to the X v2 API with OAuth1 user-context signing.
type XClient struct {
	baseURL string
	logger  logging.Logger
}

func NewXClient(logger logging.Logger) *XClient {
	return &XClient{
		baseURL: defaultBaseURL,
		logger:  logger,
	}
}

// NewXClientWithBaseURL exists for tests pointing at a local server.
func NewXClientWithBaseURL(baseURL string, logger logging.Logger) *XClient {
	return &XClient{
		baseURL: baseURL,
		logger:  logger,
	}
}

func (c *XClient) httpClient(ctx context.Context, creds models.XCredentials) *http.Client {
	config := oauth1.NewConfig(creds.APIKey, creds.APISecret)
	token := oauth1.NewToken(creds.AccessToken, creds.AccessSecret)
	client := config.Client(ctx, token)
	client.Timeout = requestTimeout
	return client
}

// Publish posts text as a new tweet and returns the platform's post ID.
func (c *XClient) Publish(ctx context.Context, creds models.XCredentials, text string) (string, error) {
	body, err := json.Marshal(postRequest{Text: text})
	if err != nil {
		return "", fmt.Errorf("failed to encode tweet: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/tweets", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient(ctx, creds).Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.WithFields(logging.Fields{
			"status": resp.StatusCode,
		}).Error("X rejected tweet")
		return "", fmt.Errorf("x api returned status %d: %s", resp.StatusCode, string(detail))
	}

	var parsed postResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode x api response: %w", err)
	}
	if parsed.Data.ID == "" {
		return "", errors.New("x api response missing post id")
	}
	return parsed.Data.ID, nil
}

// ValidateCredentials checks whether the supplied credential set can
// authenticate by fetching the owning user. A clean rejection returns
// (false, nil); only transport faults produce an error.
func (c *XClient) ValidateCredentials(ctx context.Context, creds models.XCredentials) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users/me", nil)
	if err != nil {
		return false, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient(ctx, creds).Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		return true, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return false, nil
	default:
		return false, fmt.Errorf("x api returned status %d", resp.StatusCode)
	}
}
