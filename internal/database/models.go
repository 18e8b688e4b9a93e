package database

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/priya-raman/shopsense/internal/customer"
)

// Customer is a stored customer profile row. Interests and purchase history
// are kept as JSON arrays in the row; ToRecord/FromRecord convert between
// the row shape and the engine's record shape.
type Customer struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Age             int       `json:"age"`
	Gender          string    `json:"gender"`
	Interests       string    `json:"-"`
	PurchaseHistory string    `json:"-"`
	SentimentScore  float64   `json:"sentiment_score"`
	EngagementScore float64   `json:"engagement_score"`
	SocialActivity  string    `json:"social_media_activity"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ToRecord converts a stored row into an engine record
func (c *Customer) ToRecord() (*customer.Record, error) {
	var interests, purchases []string
	if err := json.Unmarshal([]byte(c.Interests), &interests); err != nil {
		return nil, fmt.Errorf("customer %s has corrupt interests: %w", c.Name, err)
	}
	if err := json.Unmarshal([]byte(c.PurchaseHistory), &purchases); err != nil {
		return nil, fmt.Errorf("customer %s has corrupt purchase history: %w", c.Name, err)
	}
	if interests == nil {
		interests = []string{}
	}
	if purchases == nil {
		purchases = []string{}
	}

	return &customer.Record{
		Name:            c.Name,
		Age:             c.Age,
		Gender:          customer.Gender(c.Gender),
		Interests:       interests,
		PurchaseHistory: purchases,
		SentimentScore:  c.SentimentScore,
		EngagementScore: c.EngagementScore,
		SocialActivity:  customer.SocialActivity(c.SocialActivity),
	}, nil
}

// FromRecord converts an engine record into a row ready to store
func FromRecord(r *customer.Record) (*Customer, error) {
	interests, err := json.Marshal(r.Interests)
	if err != nil {
		return nil, err
	}
	purchases, err := json.Marshal(r.PurchaseHistory)
	if err != nil {
		return nil, err
	}

	return &Customer{
		Name:            r.Name,
		Age:             r.Age,
		Gender:          string(r.Gender),
		Interests:       string(interests),
		PurchaseHistory: string(purchases),
		SentimentScore:  r.SentimentScore,
		EngagementScore: r.EngagementScore,
		SocialActivity:  string(r.SocialActivity),
	}, nil
}

// Stats holds aggregate numbers over the stored population
type Stats struct {
	TotalCustomers int     `json:"total_customers"`
	AvgSentiment   float64 `json:"avg_sentiment"`
	AvgEngagement  float64 `json:"avg_engagement"`
	HighSocial     int     `json:"high_social"`
	AtRisk         int     `json:"at_risk"`
}

// ListOptions contains options for listing customers
type ListOptions struct {
	NameContains string
	Limit        int
	Offset       int
}
