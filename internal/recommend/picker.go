package recommend

import "math/rand"

// Picker selects phrases from candidate pools. The abstraction exists so
// tests can swap in a seeded implementation without touching scoring logic;
// all numeric scoring is deterministic either way.
type Picker interface {
	// Pick returns one element of a non-empty pool
	Pick(pool []string) string
	// Sample returns up to n distinct elements of the pool in random order
	Sample(pool []string, n int) []string
}

// NewPicker returns the default picker backed by the process-wide random
// source, which is safe for concurrent use.
func NewPicker() Picker {
	return randomPicker{}
}

// NewSeededPicker returns a deterministic picker for tests. It is not safe
// for concurrent use.
func NewSeededPicker(seed int64) Picker {
	return &seededPicker{r: rand.New(rand.NewSource(seed))}
}

type randomPicker struct{}

func (randomPicker) Pick(pool []string) string {
	return pool[rand.Intn(len(pool))]
}

func (randomPicker) Sample(pool []string, n int) []string {
	return sampleWith(rand.Perm, pool, n)
}

type seededPicker struct {
	r *rand.Rand
}

func (p *seededPicker) Pick(pool []string) string {
	return pool[p.r.Intn(len(pool))]
}

func (p *seededPicker) Sample(pool []string, n int) []string {
	return sampleWith(p.r.Perm, pool, n)
}

func sampleWith(perm func(int) []int, pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	out := make([]string, 0, n)
	for _, i := range perm(len(pool))[:n] {
		out = append(out, pool[i])
	}
	return out
}
