package generator

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts generation attempts by outcome. A nil receiver disables
// collection, which keeps tests free of registry setup.
type Metrics struct {
	Generations   *prometheus.CounterVec
	TweetsCreated prometheus.Counter
}

func (m *Metrics) IncGeneration(outcome string) {
	if m == nil || m.Generations == nil {
		return
	}

	m.Generations.WithLabelValues(outcome).Inc()
}

func (m *Metrics) AddTweets(n int) {
	if m == nil || m.TweetsCreated == nil {
		return
	}

	m.TweetsCreated.Add(float64(n))
}
