package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/priya-raman/shopsense/internal/customer"
	"github.com/priya-raman/shopsense/internal/database"
	"github.com/priya-raman/shopsense/internal/insight"
	"github.com/priya-raman/shopsense/internal/recommend"
)

// recommendRequest asks for recommendations for a stored customer
type recommendRequest struct {
	Name     string `json:"name" binding:"required"`
	Strategy string `json:"strategy"`
}

// previewRequest asks for recommendations for a customer not yet stored
type previewRequest struct {
	Customer customer.Record `json:"customer"`
	Strategy string          `json:"strategy"`
}

// recommendResponse is the common response envelope
type recommendResponse struct {
	Customer        string                     `json:"customer"`
	Strategy        string                     `json:"strategy"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
	Enriched        bool                       `json:"enriched,omitempty"`
}

func (s *Server) handleHealth(c *gin.Context) {
	if err := s.db.Health(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleListCustomers(c *gin.Context) {
	customers, err := s.db.ListCustomers(c.Request.Context(), database.ListOptions{
		NameContains: c.Query("q"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers, "count": len(customers)})
}

func (s *Server) handleGetCustomer(c *gin.Context) {
	row, err := s.db.GetCustomerByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if row == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("customer %q not found", c.Param("name"))})
		return
	}

	rec, err := row.ToRecord()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) handleCustomerInsights(c *gin.Context) {
	row, err := s.db.GetCustomerByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if row == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("customer %q not found", c.Param("name"))})
		return
	}

	rec, err := row.ToRecord()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, insight.Build(rec))
}

func (s *Server) handleStats(c *gin.Context) {
	stats, err := s.db.GetStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// handleRecommend recommends for a customer already in the population
func (s *Server) handleRecommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	strategy, err := recommend.ParseStrategy(s.strategyOrDefault(req.Strategy))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	pop, sim, err := s.snapshot(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	idx, err := pop.IndexOf(req.Name)
	if err != nil {
		var nf *customer.NotFoundError
		if errors.As(err, &nf) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	record := pop.At(idx)

	// Remote enrichment first when configured; any failure falls back to
	// the local engine.
	if s.enrich.Enabled() {
		if recs, err := s.enrich.Recommend(ctx, record, strategy, sim.Row(idx)); err == nil {
			c.JSON(http.StatusOK, recommendResponse{
				Customer:        record.Name,
				Strategy:        string(strategy),
				Recommendations: emptyIfNil(recs),
				Enriched:        true,
			})
			return
		}
	}

	recs, err := s.engine.Recommend(record, pop, sim, strategy)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, recommendResponse{
		Customer:        record.Name,
		Strategy:        string(strategy),
		Recommendations: emptyIfNil(recs),
	})
}

// handleRecommendPreview recommends for a customer record supplied inline,
// without touching the stored population.
func (s *Server) handleRecommendPreview(c *gin.Context) {
	var req previewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := req.Customer.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// New customers default to contextual: there is no similarity row to
	// do collaborative filtering against.
	if req.Strategy == "" {
		req.Strategy = string(recommend.StrategyContextual)
	}
	strategy, err := recommend.ParseStrategy(req.Strategy)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if s.enrich.Enabled() {
		if recs, err := s.enrich.RecommendNew(c.Request.Context(), &req.Customer); err == nil {
			c.JSON(http.StatusOK, recommendResponse{
				Customer:        req.Customer.Name,
				Strategy:        string(strategy),
				Recommendations: emptyIfNil(recs),
				Enriched:        true,
			})
			return
		}
	}

	recs := s.engine.RecommendNew(&req.Customer, strategy)
	c.JSON(http.StatusOK, recommendResponse{
		Customer:        req.Customer.Name,
		Strategy:        string(strategy),
		Recommendations: emptyIfNil(recs),
	})
}

func (s *Server) strategyOrDefault(strategy string) string {
	if strategy == "" {
		return s.cfg.Engine.DefaultStrategy
	}
	return strategy
}

// emptyIfNil keeps "no recommendations" as [] in JSON rather than null
func emptyIfNil(recs []recommend.Recommendation) []recommend.Recommendation {
	if recs == nil {
		return []recommend.Recommendation{}
	}
	return recs
}
