package recommend

import (
	"testing"

	"github.com/priya-raman/shopsense/internal/customer"
)

func TestAssessRisk(t *testing.T) {
	tests := []struct {
		name       string
		sentiment  float64
		engagement float64
		want       float64
	}{
		{
			name:       "no risk signals",
			sentiment:  0.5,
			engagement: 70,
			want:       0,
		},
		{
			name:       "negative sentiment only",
			sentiment:  -0.8,
			engagement: 50,
			want:       0.3,
		},
		{
			name:       "low engagement only",
			sentiment:  0.2,
			engagement: 10,
			want:       0.2,
		},
		{
			name:       "both signals",
			sentiment:  -0.9,
			engagement: 20,
			want:       0.5,
		},
		{
			name:       "cutoffs are strict",
			sentiment:  -0.5,
			engagement: 30,
			want:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &customer.Record{
				SentimentScore:  tt.sentiment,
				EngagementScore: tt.engagement,
			}
			got := AssessRisk(r)
			if got != tt.want {
				t.Errorf("AssessRisk() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAssessRisk_Bounds(t *testing.T) {
	sentiments := []float64{-1, -0.6, -0.5, 0, 0.5, 1}
	engagements := []float64{0, 29, 30, 50, 100}

	for _, s := range sentiments {
		for _, e := range engagements {
			r := &customer.Record{SentimentScore: s, EngagementScore: e}
			got := AssessRisk(r)
			if got < 0 || got > 1 {
				t.Errorf("AssessRisk(sentiment=%v, engagement=%v) = %v, out of [0, 1]", s, e, got)
			}
		}
	}
}
