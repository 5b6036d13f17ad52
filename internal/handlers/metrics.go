package handlers

import "github.com/prometheus/client_golang/prometheus"

// APIMetrics counts boundary operations by outcome. A nil receiver or
// nil field disables collection.
type APIMetrics struct {
	TranscriptCreates *prometheus.CounterVec
	TweetActions      *prometheus.CounterVec
	CredentialChecks  *prometheus.CounterVec
}

func (m *APIMetrics) IncTranscriptCreate(status string) {
	if m == nil || m.TranscriptCreates == nil {
		return
	}

	m.TranscriptCreates.WithLabelValues(status).Inc()
}

func (m *APIMetrics) IncTweetAction(action, status string) {
	if m == nil || m.TweetActions == nil {
		return
	}

	m.TweetActions.WithLabelValues(action, status).Inc()
}

func (m *APIMetrics) IncCredentialCheck(status string) {
	if m == nil || m.CredentialChecks == nil {
		return
	}

	m.CredentialChecks.WithLabelValues(status).Inc()
}
