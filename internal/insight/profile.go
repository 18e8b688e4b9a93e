// Package insight derives normalized profile metrics for a customer.
// Rendering (charts, dashboards) is a caller concern; this package only
// computes the values.
package insight

import (
	"fmt"
	"time"

	"github.com/priya-raman/shopsense/internal/customer"
	"github.com/priya-raman/shopsense/internal/recommend"
)

// metricScale is the shared upper bound all metrics are normalized to, so
// they plot on one axis.
const metricScale = 2.0

// Metric is one normalized profile dimension in [0, 2]
type Metric struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Detail string  `json:"detail"`
}

// Profile is the full metric set for one customer
type Profile struct {
	Customer    string    `json:"customer"`
	Metrics     []Metric  `json:"metrics"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Build computes the profile metrics for a customer record
func Build(r *customer.Record) *Profile {
	sentiment := r.SentimentScore + 1
	if sentiment < 0 {
		sentiment = 0
	}
	engagement := r.EngagementScore / 100 * metricScale
	social := socialValue(r.SocialActivity)
	risk := recommend.AssessRisk(r) * metricScale

	return &Profile{
		Customer: r.Name,
		Metrics: []Metric{
			{Name: "Sentiment", Value: sentiment, Detail: fmt.Sprintf("score %.2f", r.SentimentScore)},
			{Name: "Engagement", Value: engagement, Detail: fmt.Sprintf("score %.0f/100", r.EngagementScore)},
			{Name: "Social Activity", Value: social, Detail: fmt.Sprintf("level %s", r.SocialActivity)},
			{Name: "Risk", Value: risk, Detail: fmt.Sprintf("score %.2f", recommend.AssessRisk(r))},
		},
		GeneratedAt: time.Now(),
	}
}

func socialValue(level customer.SocialActivity) float64 {
	switch level {
	case customer.SocialMedium:
		return 1
	case customer.SocialHigh:
		return 2
	default:
		return 0
	}
}
