package recommend

import (
	"math"
	"testing"

	"github.com/priya-raman/shopsense/internal/catalog"
	"github.com/priya-raman/shopsense/internal/customer"
)

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Strategy
		wantErr bool
	}{
		{name: "collaborative", input: "collaborative", want: StrategyCollaborative},
		{name: "contextual", input: "contextual", want: StrategyContextual},
		{name: "hybrid", input: "hybrid", want: StrategyHybrid},
		{name: "empty defaults to hybrid", input: "", want: StrategyHybrid},
		{name: "unknown", input: "magic", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStrategy(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStrategy(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseStrategy(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestScorer_Score(t *testing.T) {
	scorer := NewScorer(catalog.Default())

	tests := []struct {
		name     string
		product  string
		record   customer.Record
		risk     float64
		strategy Strategy
		want     float64
	}{
		{
			name:    "interest match with contextual bonus clamps at 1",
			product: "Gaming Mouse",
			record: customer.Record{
				Interests:       []string{"Gaming"},
				PurchaseHistory: []string{"Laptop"},
				SentimentScore:  0.6,
				EngagementScore: 85,
			},
			strategy: StrategyContextual,
			// 0.5 + 0.3 + 0.2 + 0.1 + 0.03 exceeds 1
			want: 1.0,
		},
		{
			name:    "category match with collaborative bonus",
			product: "Gaming Mouse",
			record: customer.Record{
				Interests:       []string{},
				PurchaseHistory: []string{"Mechanical Keyboard"},
				EngagementScore: 50,
			},
			strategy: StrategyCollaborative,
			// 0.5 - 0.2 + 0.15 + 0.2
			want: 0.65,
		},
		{
			name:    "insurance bonus for high risk customer",
			product: "Travel Insurance",
			record: customer.Record{
				Interests:       []string{"Luxury"},
				PurchaseHistory: []string{},
				EngagementScore: 50,
			},
			risk:     0.6,
			strategy: StrategyHybrid,
			// 0.5 - 0.2 + 0.2
			want: 0.5,
		},
		{
			name:    "no insurance bonus at risk exactly 0.5",
			product: "Travel Insurance",
			record: customer.Record{
				Interests:       []string{"Luxury"},
				PurchaseHistory: []string{},
				EngagementScore: 50,
			},
			risk:     0.5,
			strategy: StrategyHybrid,
			want:     0.3,
		},
		{
			name:    "interest miss penalty",
			product: "Silk Scarf",
			record: customer.Record{
				Interests:       []string{"Tech"},
				PurchaseHistory: []string{},
				SentimentScore:  -0.9,
				EngagementScore: 10,
			},
			strategy: StrategyHybrid,
			want:     0.3,
		},
		{
			name:    "positive sentiment scales its bonus",
			product: "Gaming Mouse",
			record: customer.Record{
				Interests:       []string{"Gaming"},
				PurchaseHistory: []string{},
				SentimentScore:  0.4,
				EngagementScore: 50,
			},
			strategy: StrategyHybrid,
			// 0.5 + 0.3 + 0.05*0.4
			want: 0.82,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.Score(tt.product, &tt.record, tt.risk, tt.strategy)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScorer_Score_Deterministic(t *testing.T) {
	scorer := NewScorer(catalog.Default())
	r := customer.Record{
		Interests:       []string{"Gaming", "Tech"},
		PurchaseHistory: []string{"Laptop", "Gaming Mouse"},
		SentimentScore:  0.3,
		EngagementScore: 90,
	}

	first := scorer.Score("Mechanical Keyboard", &r, 0.2, StrategyHybrid)
	for i := 0; i < 10; i++ {
		if got := scorer.Score("Mechanical Keyboard", &r, 0.2, StrategyHybrid); got != first {
			t.Fatalf("Score() = %v on repeat call, want %v", got, first)
		}
	}
}

func TestScorer_Score_Bounds(t *testing.T) {
	scorer := NewScorer(catalog.Default())

	records := []customer.Record{
		{Interests: []string{}, PurchaseHistory: []string{}, SentimentScore: -1, EngagementScore: 0},
		{Interests: []string{"Travel"}, PurchaseHistory: []string{"Laptop"}, SentimentScore: 1, EngagementScore: 100},
		{Interests: []string{"Gaming"}, PurchaseHistory: []string{"Gaming Mouse"}, SentimentScore: 0.9, EngagementScore: 95},
	}
	products := []string{"Gaming Mouse", "Travel Insurance", "Silk Scarf", "Unknown Widget"}
	risks := []float64{0, 0.5, 1}

	for _, r := range records {
		for _, p := range products {
			for _, risk := range risks {
				for _, strategy := range []Strategy{StrategyCollaborative, StrategyContextual, StrategyHybrid} {
					got := scorer.Score(p, &r, risk, strategy)
					if got < 0 || got > 1 {
						t.Errorf("Score(%q, risk=%v, %v) = %v, out of [0, 1]", p, risk, strategy, got)
					}
				}
			}
		}
	}
}
