package validation

import (
	"fmt"
	"strings"

	"github.com/gulla0/ai-tweet-generator/pkg/models"
)

// maxTranscriptBytes bounds transcript uploads; beyond this the model
// prompt would blow past any sensible context window anyway.
const maxTranscriptBytes = 5 << 20

// ValidateTranscript checks a transcript submission and returns a list
// of human-readable problems, empty when the request is acceptable.
func ValidateTranscript(req *models.CreateTranscriptRequest) []string {
	var errors []string

	if strings.TrimSpace(req.Title) == "" {
		errors = append(errors, "Title is required")
	}

	if strings.TrimSpace(req.Date) == "" {
		errors = append(errors, "Date is required")
	}

	if strings.TrimSpace(req.Content) == "" {
		errors = append(errors, "Transcript content is required")
	} else if len(req.Content) > maxTranscriptBytes {
		errors = append(errors, fmt.Sprintf("Transcript content exceeds the %dMB limit", maxTranscriptBytes>>20))
	}

	return errors
}

// tweetWarnLength mirrors the platform's per-post limit. Overlong content
// is flagged, not rejected; the platform is the final arbiter.
const tweetWarnLength = 280

// TweetContentWarnings reports advisory problems with tweet content that
// do not block the edit.
func TweetContentWarnings(content string) []string {
	var warnings []string

	if n := len([]rune(content)); n > tweetWarnLength {
		warnings = append(warnings, fmt.Sprintf("Content is %d characters, over the %d-character post limit", n, tweetWarnLength))
	}

	return warnings
}

// ValidateCredentials checks that all four OAuth1 credential fields are
// present. Whether they actually authenticate is the platform's call.
func ValidateCredentials(creds models.XCredentials) []string {
	var errors []string

	if strings.TrimSpace(creds.APIKey) == "" {
		errors = append(errors, "API key is required")
	}
	if strings.TrimSpace(creds.APISecret) == "" {
		errors = append(errors, "API secret is required")
	}
	if strings.TrimSpace(creds.AccessToken) == "" {
		errors = append(errors, "Access token is required")
	}
	if strings.TrimSpace(creds.AccessSecret) == "" {
		errors = append(errors, "Access token secret is required")
	}

	return errors
}
