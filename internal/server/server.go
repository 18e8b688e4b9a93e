// Package server exposes the recommendation engine over HTTP. It is a thin
// JSON surface: presentation beyond that is someone else's job.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/priya-raman/shopsense/internal/catalog"
	"github.com/priya-raman/shopsense/internal/config"
	"github.com/priya-raman/shopsense/internal/customer"
	"github.com/priya-raman/shopsense/internal/database"
	"github.com/priya-raman/shopsense/internal/enrich"
	"github.com/priya-raman/shopsense/internal/recommend"
	"github.com/priya-raman/shopsense/internal/similarity"
)

// Server wires the engine, store, and optional enrichment client behind a
// gin router.
type Server struct {
	cfg     *config.Config
	db      *database.DB
	engine  *recommend.Engine
	enrich  *enrich.Client
	catalog *catalog.Catalog
}

// New creates a server. The enrichment client may be nil when the service
// is not configured.
func New(cfg *config.Config, db *database.DB, cat *catalog.Catalog, enrichClient *enrich.Client) *Server {
	return &Server{
		cfg:     cfg,
		db:      db,
		engine:  recommend.NewEngine(cat),
		enrich:  enrichClient,
		catalog: cat,
	}
}

// Router builds the gin router with all routes registered
func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/health", s.handleHealth)

	v1 := r.Group("/api/v1")
	v1.Use(apiKeyMiddleware(s.cfg.Server.APIKey))
	{
		v1.GET("/customers", s.handleListCustomers)
		v1.GET("/customers/:name", s.handleGetCustomer)
		v1.GET("/customers/:name/insights", s.handleCustomerInsights)
		v1.GET("/stats", s.handleStats)
		v1.POST("/recommendations", s.handleRecommend)
		v1.POST("/recommendations/preview", s.handleRecommendPreview)
	}

	return r
}

// Run starts the HTTP server on the configured port
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	return s.Router().Run(addr)
}

// apiKeyMiddleware rejects requests without the configured key. An empty
// key disables authentication, matching local development use.
func apiKeyMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.Next()
			return
		}
		if c.GetHeader("X-API-Key") != apiKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

// snapshot loads the stored population and builds its similarity matrix.
// Both are immutable for the duration of a request.
func (s *Server) snapshot(ctx context.Context) (*customer.Population, similarity.Matrix, error) {
	pop, err := s.db.LoadPopulation(ctx)
	if err != nil {
		return nil, nil, err
	}
	return pop, similarity.ForPopulation(pop), nil
}
