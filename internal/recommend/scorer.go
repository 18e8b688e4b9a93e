package recommend

import (
	"fmt"
	"strings"

	"github.com/priya-raman/shopsense/internal/catalog"
	"github.com/priya-raman/shopsense/internal/customer"
)

// Strategy selects how candidate products are pooled and weighted
type Strategy string

const (
	StrategyCollaborative Strategy = "collaborative"
	StrategyContextual    Strategy = "contextual"
	StrategyHybrid        Strategy = "hybrid"
)

// ParseStrategy validates a strategy name; the empty string means hybrid
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyCollaborative, StrategyContextual, StrategyHybrid:
		return Strategy(s), nil
	case "":
		return StrategyHybrid, nil
	default:
		return "", fmt.Errorf("unknown strategy %q (use collaborative, contextual, or hybrid)", s)
	}
}

// Scoring adjustments. All adjustments are additive so each rule stays
// individually auditable; clamping happens only once at the end.
const (
	baseScore = 0.5

	interestMatchBonus   = 0.3
	contextualBonus      = 0.2
	interestMissPenalty  = 0.2
	categoryMatchBonus   = 0.15
	collaborativeBonus   = 0.2
	insuranceRiskBonus   = 0.2
	highEngagementBonus  = 0.1
	sentimentBonusFactor = 0.05

	highRiskCutoff       = 0.5
	highEngagementCutoff = 80.0
)

// insuranceMarker identifies insurance products by name
const insuranceMarker = "Insurance"

// Scorer ranks a candidate product for a customer. It is stateless apart
// from the read-only catalog, so one scorer serves concurrent requests.
type Scorer struct {
	catalog *catalog.Catalog
}

// NewScorer creates a scorer backed by the given catalog
func NewScorer(cat *catalog.Catalog) *Scorer {
	return &Scorer{catalog: cat}
}

// Score computes a relevance score in [0, 1] for recommending product to
// the customer. Identical inputs always produce an identical score.
func (s *Scorer) Score(product string, r *customer.Record, risk float64, strategy Strategy) float64 {
	score := baseScore

	if containsAnyToken(product, r.Interests) {
		score += interestMatchBonus
		if strategy == StrategyContextual {
			score += contextualBonus
		}
	} else {
		score -= interestMissPenalty
	}

	categories := s.catalog.PurchaseCategories(r.PurchaseHistory)
	if containsAnyToken(product, categories) {
		score += categoryMatchBonus
		if strategy == StrategyCollaborative {
			score += collaborativeBonus
		}
	}

	if risk > highRiskCutoff && strings.Contains(product, insuranceMarker) {
		score += insuranceRiskBonus
	}

	if r.EngagementScore > highEngagementCutoff {
		score += highEngagementBonus
	}

	if r.SentimentScore > 0 {
		score += sentimentBonusFactor * r.SentimentScore
	}

	return clamp01(score)
}

// containsAnyToken reports whether the product name contains any of the
// tokens, case-insensitively.
func containsAnyToken(product string, tokens []string) bool {
	lower := strings.ToLower(product)
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(tok)) {
			return true
		}
	}
	return false
}
