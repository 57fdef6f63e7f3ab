package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vyron-fashion/storefront/pkg/models"
)

const maxRecommendationCount = 50

// RecommenderService is the engine surface the HTTP layer consumes.
type RecommenderService interface {
	Recommend(itemID string, n int, minSimilarity float64) []models.RecommendationResult
	RecommendByText(text string, n int, excludeIDs []string) []models.RecommendationResult
	Rebuild(ctx context.Context) bool
	Stats() models.RecommenderStats
}

type RecommendationHandler struct {
	engine RecommenderService
	logger *logrus.Logger
}

func NewRecommendationHandler(engine RecommenderService, logger *logrus.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		engine: engine,
		logger: logger,
	}
}

// GetSimilar serves the "similar products" strip on a product page. An empty
// list is a normal response, not an error; the frontend hides the section.
func (h *RecommendationHandler) GetSimilar(c *gin.Context) {
	productID := c.Param("productId")
	if productID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    "INVALID_PRODUCT_ID",
				"message": "Product ID is required",
			},
		})
		return
	}

	limit := 0 // engine default
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= maxRecommendationCount {
			limit = parsed
		}
	}

	minScore := -1.0 // engine default
	if scoreStr := c.Query("min_score"); scoreStr != "" {
		if parsed, err := strconv.ParseFloat(scoreStr, 64); err == nil && parsed >= 0 && parsed <= 1 {
			minScore = parsed
		}
	}

	results := h.engine.Recommend(productID, limit, minScore)
	if results == nil {
		results = []models.RecommendationResult{}
	}

	if len(results) == 0 && !h.engine.Stats().IsFitted {
		h.logger.WithField("product_id", productID).
			Debug("Serving empty recommendations from unfitted index")
	}

	c.JSON(http.StatusOK, models.RecommendationResponse{
		ProductID:       productID,
		Recommendations: results,
		GeneratedAt:     time.Now(),
	})
}

// SearchSimilar scores free text (search box, "more like this" on filters)
// against the fitted catalog.
func (h *RecommendationHandler) SearchSimilar(c *gin.Context) {
	var req models.TextSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    "INVALID_REQUEST_BODY",
				"message": "Invalid request body format",
			},
		})
		return
	}

	results := h.engine.RecommendByText(req.Query, req.Limit, req.ExcludeIDs)
	if results == nil {
		results = []models.RecommendationResult{}
	}

	c.JSON(http.StatusOK, models.TextSearchResponse{
		Query:           req.Query,
		Recommendations: results,
		GeneratedAt:     time.Now(),
	})
}

// Rebuild triggers an immediate refit from the current catalog. Failure here
// also covers the reject path when another rebuild is already running.
func (h *RecommendationHandler) Rebuild(c *gin.Context) {
	if h.engine.Rebuild(c.Request.Context()) {
		c.JSON(http.StatusAccepted, models.RebuildResponse{Success: true})
		return
	}

	c.JSON(http.StatusServiceUnavailable, models.RebuildResponse{
		Success: false,
		Message: "Rebuild failed or already in progress; previous index remains active",
	})
}

func (h *RecommendationHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.Stats())
}
