package handlers

import (
	"github.com/sirupsen/logrus"

	"github.com/vyron-fashion/storefront/internal/database"
)

type Handlers struct {
	Recommendation *RecommendationHandler
	Health         *HealthHandler
}

func New(logger *logrus.Logger, engine RecommenderService, db *database.Database) *Handlers {
	return &Handlers{
		Recommendation: NewRecommendationHandler(engine, logger),
		Health:         NewHealthHandler(logger, db),
	}
}
