// Package recommend implements the recommendation scoring engine: candidate
// pooling (collaborative, contextual, or hybrid), additive relevance
// scoring, risk assessment, and reason generation. All operations are
// synchronous and stateless apart from the read-only catalog, so one engine
// serves concurrent requests without locking.
package recommend

import (
	"sort"

	"github.com/priya-raman/shopsense/internal/catalog"
	"github.com/priya-raman/shopsense/internal/customer"
	"github.com/priya-raman/shopsense/internal/similarity"
)

const (
	// topN caps every recommendation list
	topN = 5
	// neighborCount is how many similar customers feed the collaborative pool
	neighborCount = 3
)

// Recommendation is one ranked, explained product suggestion. Built fresh
// per request and never persisted.
type Recommendation struct {
	Product string  `json:"product"`
	Score   float64 `json:"score"`
	Reason  string  `json:"reason"`
	Risk    float64 `json:"risk"`
}

// Engine orchestrates scoring, risk assessment, and reason generation
type Engine struct {
	catalog *catalog.Catalog
	scorer  *Scorer
	reasons *ReasonGenerator
	picker  Picker
}

// Option configures an Engine
type Option func(*Engine)

// WithPicker sets the phrase picker, letting tests make reasons
// deterministic.
func WithPicker(p Picker) Option {
	return func(e *Engine) {
		e.picker = p
	}
}

// NewEngine creates an engine backed by the given catalog
func NewEngine(cat *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{catalog: cat}
	for _, opt := range opts {
		opt(e)
	}
	e.scorer = NewScorer(cat)
	e.reasons = NewReasonGenerator(cat, e.picker)
	return e
}

// Recommend produces the ranked top-5 recommendations for a customer
// present in the population. The similarity matrix must be row-aligned with
// the population. Returns *customer.NotFoundError when the customer is not
// in the population; an empty candidate set yields an empty list, not an
// error.
func (e *Engine) Recommend(r *customer.Record, pop *customer.Population, sim similarity.Matrix, strategy Strategy) ([]Recommendation, error) {
	idx, err := pop.IndexOf(r.Name)
	if err != nil {
		return nil, err
	}

	collab := e.collaborativePool(r, pop, sim, idx)
	contextual := e.contextualPool(r)

	var candidates []string
	switch strategy {
	case StrategyCollaborative:
		candidates = collab
	case StrategyContextual:
		candidates = contextual
	default: // hybrid
		candidates = union(collab, contextual)
	}

	return e.rank(candidates, r, strategy), nil
}

// RecommendNew produces recommendations for a customer not present in the
// population. With no similarity row to read, the pool is contextual-only
// regardless of the requested strategy; the strategy still shapes scoring
// and defaults to contextual.
func (e *Engine) RecommendNew(r *customer.Record, strategy Strategy) []Recommendation {
	if strategy == "" {
		strategy = StrategyContextual
	}
	return e.rank(e.contextualPool(r), r, strategy)
}

// collaborativePool gathers what the customer's nearest neighbors bought
// that the customer has not, preferring items matching the customer's
// interests but falling back to the unfiltered union rather than returning
// nothing.
func (e *Engine) collaborativePool(r *customer.Record, pop *customer.Population, sim similarity.Matrix, idx int) []string {
	neighbors := topNeighbors(sim, idx, neighborCount)

	owned := make(map[string]bool, len(r.PurchaseHistory))
	for _, p := range r.PurchaseHistory {
		owned[p] = true
	}

	var pool []string
	seen := make(map[string]bool)
	for _, n := range neighbors {
		for _, p := range pop.At(n).PurchaseHistory {
			if owned[p] || seen[p] {
				continue
			}
			seen[p] = true
			pool = append(pool, p)
		}
	}

	var filtered []string
	for _, p := range pool {
		if containsAnyToken(p, r.Interests) {
			filtered = append(filtered, p)
		}
	}
	// Relevance over precision: only an empty filter result falls back
	if len(filtered) == 0 {
		return pool
	}
	return filtered
}

// contextualPool maps each declared interest to its catalog products,
// preserving interest order and dropping duplicates.
func (e *Engine) contextualPool(r *customer.Record) []string {
	var pool []string
	seen := make(map[string]bool)
	for _, interest := range r.Interests {
		for _, p := range e.catalog.ProductsFor(interest) {
			if seen[p] {
				continue
			}
			seen[p] = true
			pool = append(pool, p)
		}
	}
	return pool
}

// rank scores every candidate, attaches reason and risk, and returns the
// top 5 sorted descending by score. The sort is stable so ties keep
// candidate insertion order.
func (e *Engine) rank(candidates []string, r *customer.Record, strategy Strategy) []Recommendation {
	risk := AssessRisk(r)

	recs := make([]Recommendation, 0, len(candidates))
	for _, product := range candidates {
		recs = append(recs, Recommendation{
			Product: product,
			Score:   e.scorer.Score(product, r, risk, strategy),
			Reason:  e.reasons.Explain(product, r),
			Risk:    risk,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
	if len(recs) > topN {
		recs = recs[:topN]
	}
	return recs
}

// topNeighbors returns the indices of the n most similar other customers,
// highest similarity first. Ties break toward the lower row index so the
// pool is deterministic.
func topNeighbors(sim similarity.Matrix, idx, n int) []int {
	row := sim.Row(idx)
	others := make([]int, 0, len(row)-1)
	for i := range row {
		if i != idx {
			others = append(others, i)
		}
	}
	sort.SliceStable(others, func(a, b int) bool {
		return row[others[a]] > row[others[b]]
	})
	if len(others) > n {
		others = others[:n]
	}
	return others
}

// union concatenates two candidate pools, dropping duplicates and keeping
// first-seen order.
func union(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	seen := make(map[string]bool, len(a)+len(b))
	for _, p := range a {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, p := range b {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}
