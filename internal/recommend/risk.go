package recommend

import "github.com/priya-raman/shopsense/internal/customer"

// Risk rule thresholds and penalties. The penalties are additive and can in
// principle sum above 1.0 as rules are added, so the result is always
// clamped.
const (
	negativeSentimentCutoff = -0.5
	lowEngagementCutoff     = 30.0

	sentimentRiskPenalty  = 0.3
	engagementRiskPenalty = 0.2
)

// AssessRisk derives a disengagement risk score in [0, 1] from a customer's
// sentiment and engagement. Inputs are taken as-is; range validation belongs
// to the ingestion layer.
func AssessRisk(r *customer.Record) float64 {
	risk := 0.0
	if r.SentimentScore < negativeSentimentCutoff {
		risk += sentimentRiskPenalty
	}
	if r.EngagementScore < lowEngagementCutoff {
		risk += engagementRiskPenalty
	}
	return clamp01(risk)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
