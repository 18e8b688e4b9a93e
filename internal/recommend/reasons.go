package recommend

import (
	"fmt"
	"strings"

	"github.com/priya-raman/shopsense/internal/catalog"
	"github.com/priya-raman/shopsense/internal/customer"
)

// Reason generation thresholds. The sentiment cutoffs are tighter than the
// risk cutoff on purpose: a mildly negative customer gets no sentiment
// phrase at all.
const (
	positiveSentimentCutoff = 0.5
	reasonSentimentCutoff   = -0.5
	youngAgeCutoff          = 30
	seniorAgeCutoff         = 50
	maxReasonPhrases        = 2
)

// ReasonGenerator produces short human-readable justifications for a
// recommendation. Phrase choice is random among equally valid phrasings;
// everything that decides which pools apply is deterministic.
type ReasonGenerator struct {
	catalog *catalog.Catalog
	picker  Picker
}

// NewReasonGenerator creates a generator; a nil picker gets the default
// process-random one.
func NewReasonGenerator(cat *catalog.Catalog, picker Picker) *ReasonGenerator {
	if picker == nil {
		picker = NewPicker()
	}
	return &ReasonGenerator{catalog: cat, picker: picker}
}

// Explain returns a non-empty reason for recommending product to the
// customer: one phrase per applicable signal, then a random sample of at
// most two of those joined by a space.
func (g *ReasonGenerator) Explain(product string, r *customer.Record) string {
	var candidates []string

	if matching := matchingInterests(product, r.Interests); len(matching) > 0 {
		phrase := g.picker.Pick(interestPhrases)
		candidates = append(candidates, fmt.Sprintf(phrase, strings.Join(matching, ", ")))
	}

	categories := g.catalog.PurchaseCategories(r.PurchaseHistory)
	if containsAnyToken(product, categories) {
		phrase := g.picker.Pick(purchasePhrases)
		candidates = append(candidates, fmt.Sprintf(phrase, strings.Join(r.PurchaseHistory, ", ")))
	}

	if pool, ok := productPhrases[product]; ok {
		candidates = append(candidates, g.picker.Pick(pool))
	}

	if r.SentimentScore > positiveSentimentCutoff {
		candidates = append(candidates, g.picker.Pick(positiveSentimentPhrases))
	} else if r.SentimentScore < reasonSentimentCutoff {
		candidates = append(candidates, g.picker.Pick(negativeSentimentPhrases))
	}

	if r.EngagementScore > highEngagementCutoff {
		candidates = append(candidates, g.picker.Pick(engagementPhrases))
	}

	if AssessRisk(r) > highRiskCutoff && strings.Contains(product, insuranceMarker) {
		candidates = append(candidates, g.picker.Pick(riskPhrases))
	}

	if r.Age < youngAgeCutoff {
		candidates = append(candidates, g.picker.Pick(youngAgePhrases))
	} else if r.Age > seniorAgeCutoff {
		candidates = append(candidates, g.picker.Pick(seniorAgePhrases))
	}

	if r.SocialActivity == customer.SocialHigh {
		candidates = append(candidates, g.picker.Pick(socialPhrases))
	}

	if len(candidates) == 0 {
		candidates = append(candidates, g.picker.Pick(fallbackPhrases))
	}

	return strings.Join(g.picker.Sample(candidates, maxReasonPhrases), " ")
}

// matchingInterests returns the interests whose token appears in the
// product name, preserving the customer's declared order.
func matchingInterests(product string, interests []string) []string {
	lower := strings.ToLower(product)
	var matching []string
	for _, in := range interests {
		if in != "" && strings.Contains(lower, strings.ToLower(in)) {
			matching = append(matching, in)
		}
	}
	return matching
}
