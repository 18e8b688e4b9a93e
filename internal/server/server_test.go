package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priya-raman/shopsense/internal/catalog"
	"github.com/priya-raman/shopsense/internal/config"
	"github.com/priya-raman/shopsense/internal/customer"
	"github.com/priya-raman/shopsense/internal/database"
	"github.com/priya-raman/shopsense/internal/recommend"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testServer(t *testing.T) (*Server, *gin.Engine) {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	seed := []customer.Record{
		{
			Name: "Ali", Age: 28, Gender: customer.GenderMale,
			Interests:       []string{"Gaming"},
			PurchaseHistory: []string{"Laptop"},
			SentimentScore:  0.8, EngagementScore: 85,
			SocialActivity: customer.SocialHigh,
		},
		{
			Name: "Bina", Age: 34, Gender: customer.GenderFemale,
			Interests:       []string{"Gaming", "Tech"},
			PurchaseHistory: []string{"Laptop", "Gaming Mouse"},
			SentimentScore:  0.2, EngagementScore: 60,
			SocialActivity: customer.SocialMedium,
		},
	}
	for i := range seed {
		row, err := database.FromRecord(&seed[i])
		require.NoError(t, err)
		require.NoError(t, db.UpsertCustomer(context.Background(), row))
	}

	cfg := config.Default()
	cfg.Database.Path = "unused"

	srv := New(cfg, db, catalog.Default(), nil)
	return srv, srv.Router()
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	_, router := testServer(t)

	w := doJSON(router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestListCustomers(t *testing.T) {
	_, router := testServer(t)

	w := doJSON(router, http.MethodGet, "/api/v1/customers", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Customers []database.Customer `json:"customers"`
		Count     int                 `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Len(t, resp.Customers, 2)
}

func TestGetCustomer(t *testing.T) {
	_, router := testServer(t)

	w := doJSON(router, http.MethodGet, "/api/v1/customers/Ali", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var rec customer.Record
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, "Ali", rec.Name)
	assert.Equal(t, []string{"Gaming"}, rec.Interests)
}

func TestGetCustomer_NotFound(t *testing.T) {
	_, router := testServer(t)

	w := doJSON(router, http.MethodGet, "/api/v1/customers/Ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCustomerInsights(t *testing.T) {
	_, router := testServer(t)

	w := doJSON(router, http.MethodGet, "/api/v1/customers/Ali/insights", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var profile struct {
		Customer string `json:"customer"`
		Metrics  []struct {
			Name  string  `json:"name"`
			Value float64 `json:"value"`
		} `json:"metrics"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "Ali", profile.Customer)
	assert.Len(t, profile.Metrics, 4)
}

func TestStats(t *testing.T) {
	_, router := testServer(t)

	w := doJSON(router, http.MethodGet, "/api/v1/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats database.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.TotalCustomers)
	assert.Equal(t, 1, stats.HighSocial)
}

func TestRecommend(t *testing.T) {
	_, router := testServer(t)

	w := doJSON(router, http.MethodPost, "/api/v1/recommendations", map[string]string{
		"name": "Ali",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Customer        string                     `json:"customer"`
		Strategy        string                     `json:"strategy"`
		Recommendations []recommend.Recommendation `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Ali", resp.Customer)
	assert.Equal(t, "hybrid", resp.Strategy)
	assert.NotEmpty(t, resp.Recommendations)
	assert.LessOrEqual(t, len(resp.Recommendations), 5)

	for i := 1; i < len(resp.Recommendations); i++ {
		assert.GreaterOrEqual(t, resp.Recommendations[i-1].Score, resp.Recommendations[i].Score)
	}
	for _, rec := range resp.Recommendations {
		assert.NotEmpty(t, rec.Reason)
	}
}

func TestRecommend_UnknownCustomer(t *testing.T) {
	_, router := testServer(t)

	w := doJSON(router, http.MethodPost, "/api/v1/recommendations", map[string]string{
		"name": "Ghost",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecommend_BadStrategy(t *testing.T) {
	_, router := testServer(t)

	w := doJSON(router, http.MethodPost, "/api/v1/recommendations", map[string]string{
		"name":     "Ali",
		"strategy": "psychic",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecommend_MissingName(t *testing.T) {
	_, router := testServer(t)

	w := doJSON(router, http.MethodPost, "/api/v1/recommendations", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecommendPreview(t *testing.T) {
	_, router := testServer(t)

	w := doJSON(router, http.MethodPost, "/api/v1/recommendations/preview", map[string]interface{}{
		"customer": customer.Record{
			Name: "Fresh", Age: 26, Gender: customer.GenderFemale,
			Interests:       []string{"Travel"},
			PurchaseHistory: []string{},
			SentimentScore:  0.4, EngagementScore: 70,
			SocialActivity: customer.SocialMedium,
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Customer        string                     `json:"customer"`
		Strategy        string                     `json:"strategy"`
		Recommendations []recommend.Recommendation `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Fresh", resp.Customer)
	assert.Equal(t, "contextual", resp.Strategy)
	assert.Len(t, resp.Recommendations, 2)
}

func TestRecommendPreview_InvalidRecord(t *testing.T) {
	_, router := testServer(t)

	// interests missing entirely
	w := doJSON(router, http.MethodPost, "/api/v1/recommendations/preview", map[string]interface{}{
		"customer": map[string]interface{}{
			"name": "Broken", "age": 20, "gender": "Male",
			"purchase_history":      []string{},
			"social_media_activity": "Low",
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAPIKeyMiddleware(t *testing.T) {
	srv, _ := testServer(t)
	srv.cfg.Server.APIKey = "sesame"
	router := srv.Router()

	w := doJSON(router, http.MethodGet, "/api/v1/stats", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	req.Header.Set("X-API-Key", "sesame")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Health stays open
	w = doJSON(router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
