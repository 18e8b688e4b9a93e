package customer

// Gender is a customer's recorded gender
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// SocialActivity is a customer's social media activity level
type SocialActivity string

const (
	SocialLow    SocialActivity = "Low"
	SocialMedium SocialActivity = "Medium"
	SocialHigh   SocialActivity = "High"
)

// Record holds a single customer's profile as produced by the ingestion layer.
// Categorical fields are expected to already be normalized to the canonical
// token sets; Validate enforces that before a record enters a population.
type Record struct {
	Name            string         `json:"name"`
	Age             int            `json:"age"`
	Gender          Gender         `json:"gender"`
	Interests       []string       `json:"interests"`
	PurchaseHistory []string       `json:"purchase_history"`
	SentimentScore  float64        `json:"sentiment_score"`
	EngagementScore float64        `json:"engagement_score"`
	SocialActivity  SocialActivity `json:"social_media_activity"`
}

// Validate checks required fields and categorical domains. Sentiment and
// engagement scores are accepted as-is; out-of-range values are the
// ingestion pipeline's problem, not a malformed record.
func (r *Record) Validate() error {
	if r.Name == "" {
		return &MalformedRecordError{Name: r.Name, Field: "name", Reason: "must not be empty"}
	}
	if r.Age < 0 {
		return &MalformedRecordError{Name: r.Name, Field: "age", Reason: "must not be negative"}
	}
	switch r.Gender {
	case GenderMale, GenderFemale:
	default:
		return &MalformedRecordError{Name: r.Name, Field: "gender", Reason: "must be Male or Female"}
	}
	// A nil slice means the field was absent from the source record; an empty
	// slice is a valid customer with no interests or purchases.
	if r.Interests == nil {
		return &MalformedRecordError{Name: r.Name, Field: "interests", Reason: "missing"}
	}
	if r.PurchaseHistory == nil {
		return &MalformedRecordError{Name: r.Name, Field: "purchase_history", Reason: "missing"}
	}
	switch r.SocialActivity {
	case SocialLow, SocialMedium, SocialHigh:
	default:
		return &MalformedRecordError{Name: r.Name, Field: "social_media_activity", Reason: "must be Low, Medium, or High"}
	}
	return nil
}

// HasPurchased reports whether the customer's history contains the product
func (r *Record) HasPurchased(product string) bool {
	for _, p := range r.PurchaseHistory {
		if p == product {
			return true
		}
	}
	return false
}
