package models

import "time"

// RecommendationResult is one similar-product entry: the cached item summary
// plus the similarity score, rounded to 4 decimal places.
type RecommendationResult struct {
	ItemSummary
	SimilarityScore float64 `json:"similarity_score"`
}

type RecommendationResponse struct {
	ProductID       string                 `json:"product_id"`
	Recommendations []RecommendationResult `json:"recommendations"`
	GeneratedAt     time.Time              `json:"generated_at"`
}

type TextSearchRequest struct {
	Query      string   `json:"query" binding:"required,min=1"`
	Limit      int      `json:"limit" binding:"omitempty,min=1,max=50"`
	ExcludeIDs []string `json:"exclude_ids,omitempty"`
}

type TextSearchResponse struct {
	Query           string                 `json:"query"`
	Recommendations []RecommendationResult `json:"recommendations"`
	GeneratedAt     time.Time              `json:"generated_at"`
}

type RebuildResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// RecommenderStats mirrors the admin dashboard payload.
type RecommenderStats struct {
	IsFitted      bool       `json:"is_fitted"`
	TotalProducts int        `json:"total_products"`
	TotalFeatures int        `json:"total_features"`
	LastUpdated   *time.Time `json:"last_updated,omitempty"`
}
