package similarity

import (
	"hash/fnv"
	"math"
	"strings"

	"github.com/priya-raman/shopsense/internal/customer"
)

// embeddingDim is the size of the hashed bag-of-features block. The three
// numeric features (sentiment, engagement, age) occupy dedicated trailing
// dimensions so they are never crowded out by token collisions.
const embeddingDim = 128

// Encode turns a customer record into a fixed-size feature vector: hashed
// lowercase tokens from purchases, interests, and categorical fields, plus
// scaled numeric scores.
func Encode(r *customer.Record) []float64 {
	vec := make([]float64, embeddingDim+3)

	for _, tok := range featureTokens(r) {
		h := fnv.New32a()
		h.Write([]byte(tok))
		vec[int(h.Sum32())%embeddingDim]++
	}

	vec[embeddingDim] = r.SentimentScore
	vec[embeddingDim+1] = r.EngagementScore / 100
	vec[embeddingDim+2] = float64(r.Age) / 100

	// L2-normalize the token block so heavy purchasers don't dominate
	var norm float64
	for i := 0; i < embeddingDim; i++ {
		norm += vec[i] * vec[i]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := 0; i < embeddingDim; i++ {
			vec[i] /= norm
		}
	}
	return vec
}

// EncodeAll encodes every record of a population in row order
func EncodeAll(pop *customer.Population) [][]float64 {
	vectors := make([][]float64, pop.Len())
	for i := 0; i < pop.Len(); i++ {
		vectors[i] = Encode(pop.At(i))
	}
	return vectors
}

// ForPopulation builds the normalized similarity matrix for a snapshot
func ForPopulation(pop *customer.Population) Matrix {
	return FromEmbeddings(EncodeAll(pop))
}

func featureTokens(r *customer.Record) []string {
	var toks []string
	add := func(prefix, value string) {
		for _, f := range strings.Fields(strings.ToLower(value)) {
			toks = append(toks, prefix+":"+f)
		}
	}

	for _, p := range r.PurchaseHistory {
		add("purchase", p)
	}
	for _, in := range r.Interests {
		add("interest", in)
	}
	add("gender", string(r.Gender))
	add("social", string(r.SocialActivity))
	return toks
}
