package models

import "time"

// TweetState represents the lifecycle state of a generated tweet
type TweetState string

const (
	TweetStateDraft TweetState = "draft"
	// TweetStateApproved is reserved for a future approval workflow; no
	// operation currently produces or transitions to it.
	TweetStateApproved TweetState = "approved"
	TweetStateEdited   TweetState = "edited"
	TweetStateSent     TweetState = "sent"
)

// Tweet represents a short-form post derived from a transcript
type Tweet struct {
	ID           string     `json:"id"`
	TranscriptID string     `json:"transcript_id"`
	Category     string     `json:"category"`
	Content      string     `json:"content"`
	State        TweetState `json:"state"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
	XPostID      string     `json:"x_post_id,omitempty"`
}

// EditTweetRequest is the payload for editing a tweet's content
type EditTweetRequest struct {
	Content string `json:"content"`
}

// XCredentials carries per-call X API OAuth1 credentials. They are never
// persisted server-side; each publish or validation call supplies its own.
type XCredentials struct {
	APIKey       string `json:"api_key"`
	APISecret    string `json:"api_secret"`
	AccessToken  string `json:"access_token"`
	AccessSecret string `json:"access_secret"`
}

// Complete reports whether all four credential fields are present
func (c XCredentials) Complete() bool {
	return c.APIKey != "" && c.APISecret != "" && c.AccessToken != "" && c.AccessSecret != ""
}

// LoginRequest is the payload for operator login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
