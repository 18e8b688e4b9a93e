package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/priya-raman/shopsense/internal/customer"
	"github.com/priya-raman/shopsense/internal/database"
	"github.com/priya-raman/shopsense/internal/insight"
	"github.com/priya-raman/shopsense/internal/recommend"
	"github.com/priya-raman/shopsense/internal/similarity"
)

func (s *Server) registerHandlers() {
	s.handlers["recommend_products"] = s.handleRecommendProducts
	s.handlers["recommend_new_customer"] = s.handleRecommendNewCustomer
	s.handlers["list_customers"] = s.handleListCustomers
	s.handlers["customer_insights"] = s.handleCustomerInsights
	s.handlers["get_stats"] = s.handleGetStats
}

type recommendProductsParams struct {
	Name     string `json:"name"`
	Strategy string `json:"strategy"`
}

type recommendationsResult struct {
	Customer        string                     `json:"customer"`
	Strategy        string                     `json:"strategy"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
}

func (s *Server) handleRecommendProducts(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p recommendProductsParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	if p.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	if p.Strategy == "" {
		p.Strategy = s.config.Engine.DefaultStrategy
	}
	strategy, err := recommend.ParseStrategy(p.Strategy)
	if err != nil {
		return nil, err
	}

	pop, err := s.db.LoadPopulation(ctx)
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	sim := similarity.ForPopulation(pop)

	idx, err := pop.IndexOf(p.Name)
	if err != nil {
		return nil, err
	}
	record := pop.At(idx)

	recs, err := s.engine.Recommend(record, pop, sim, strategy)
	if err != nil {
		return nil, err
	}

	return recommendationsResult{
		Customer:        record.Name,
		Strategy:        string(strategy),
		Recommendations: recs,
	}, nil
}

type recommendNewCustomerParams struct {
	customer.Record
	Strategy string `json:"strategy"`
}

func (s *Server) handleRecommendNewCustomer(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p recommendNewCustomerParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	if p.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	// Inline profiles fill in what the caller omitted rather than failing
	// validation on missing fields.
	if p.Interests == nil {
		p.Interests = []string{}
	}
	if p.PurchaseHistory == nil {
		p.PurchaseHistory = []string{}
	}
	if p.Gender == "" {
		p.Gender = customer.GenderFemale
	}
	if p.SocialActivity == "" {
		p.SocialActivity = customer.SocialMedium
	}
	if err := p.Record.Validate(); err != nil {
		return nil, err
	}

	if p.Strategy == "" {
		p.Strategy = string(recommend.StrategyContextual)
	}
	strategy, err := recommend.ParseStrategy(p.Strategy)
	if err != nil {
		return nil, err
	}

	recs := s.engine.RecommendNew(&p.Record, strategy)

	return recommendationsResult{
		Customer:        p.Name,
		Strategy:        string(strategy),
		Recommendations: recs,
	}, nil
}

type listCustomersParams struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

func (s *Server) handleListCustomers(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p listCustomersParams
	if params != nil {
		if err := json.Unmarshal(params, &p); err != nil {
			return nil, fmt.Errorf("invalid parameters: %w", err)
		}
	}

	opts := database.ListOptions{NameContains: p.Query}
	if p.Limit > 0 {
		opts.Limit = p.Limit
	} else {
		opts.Limit = 20
	}

	customers, err := s.db.ListCustomers(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	return customers, nil
}

type customerInsightsParams struct {
	Name string `json:"name"`
}

func (s *Server) handleCustomerInsights(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p customerInsightsParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	if p.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	row, err := s.db.GetCustomerByName(ctx, p.Name)
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if row == nil {
		return nil, &customer.NotFoundError{Name: p.Name}
	}

	rec, err := row.ToRecord()
	if err != nil {
		return nil, err
	}

	return insight.Build(rec), nil
}

func (s *Server) handleGetStats(ctx context.Context, params json.RawMessage) (interface{}, error) {
	stats, err := s.db.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	return stats, nil
}

// Resource handlers

func (s *Server) handleReadResource(ctx context.Context, uri string) (string, error) {
	switch uri {
	case "shopsense://catalog":
		return s.getResourceCatalog()
	case "shopsense://summary":
		return s.getResourceSummary(ctx)
	case "shopsense://customers":
		return s.getResourceCustomers(ctx)
	default:
		return "", fmt.Errorf("unknown resource: %s", uri)
	}
}

func (s *Server) getResourceCatalog() (string, error) {
	var b strings.Builder
	b.WriteString("Product Catalog\n===============\n\n")

	for _, interest := range s.catalog.Interests() {
		products := s.catalog.ProductsFor(interest)
		b.WriteString(fmt.Sprintf("%s (%d):\n", interest, len(products)))
		for _, product := range products {
			b.WriteString(fmt.Sprintf("  - %s\n", product))
		}
		b.WriteString("\n")
	}

	return b.String(), nil
}

func (s *Server) getResourceSummary(ctx context.Context) (string, error) {
	stats, err := s.db.GetStats(ctx)
	if err != nil {
		return "", err
	}

	summary := fmt.Sprintf(`Population Summary
==================
Total Customers:    %d
Average Sentiment:  %.2f
Average Engagement: %.1f
Highly Social:      %d
At Risk:            %d
`, stats.TotalCustomers, stats.AvgSentiment, stats.AvgEngagement, stats.HighSocial, stats.AtRisk)

	return summary, nil
}

func (s *Server) getResourceCustomers(ctx context.Context) (string, error) {
	customers, err := s.db.ListCustomers(ctx, database.ListOptions{Limit: 100})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Customers\n=========\n\n")

	if len(customers) == 0 {
		b.WriteString("No customers yet. Run 'shopsense ingest' to load a dataset.\n")
		return b.String(), nil
	}

	for _, c := range customers {
		b.WriteString(fmt.Sprintf("- %s | age %d | sentiment %.2f | engagement %.0f | %s social\n",
			c.Name, c.Age, c.SentimentScore, c.EngagementScore, c.SocialActivity))
	}

	return b.String(), nil
}
