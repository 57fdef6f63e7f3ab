package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vyron-fashion/storefront/internal/database"
)

type HealthHandler struct {
	logger *logrus.Logger
	db     *database.Database
}

func NewHealthHandler(logger *logrus.Logger, db *database.Database) *HealthHandler {
	return &HealthHandler{
		logger: logger,
		db:     db,
	}
}

// Check reports dependency health. A down database degrades but does not
// fail the service: recommendations keep serving from the in-memory index.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := "healthy"
	checks := gin.H{}

	if err := h.db.PG.Ping(ctx); err != nil {
		h.logger.WithError(err).Warn("PostgreSQL health check failed")
		checks["postgres"] = "down"
		status = "degraded"
	} else {
		checks["postgres"] = "up"
	}

	if err := h.db.Redis.Ping(ctx).Err(); err != nil {
		h.logger.WithError(err).Warn("Redis health check failed")
		checks["redis"] = "down"
		status = "degraded"
	} else {
		checks["redis"] = "up"
	}

	c.JSON(http.StatusOK, gin.H{
		"status": status,
		"checks": checks,
	})
}
