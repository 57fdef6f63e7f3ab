package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/vyron-fashion/storefront/internal/config"
)

// RateLimit applies a fixed-window per-client limit backed by Redis. The
// storefront API is unauthenticated, so the window is keyed by client IP.
// Redis being down never blocks requests.
func RateLimit(rdb *redis.Client, cfg *config.RateLimitConfig, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := fmt.Sprintf("ratelimit:%s", c.ClientIP())

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			logger.WithError(err).Error("Failed to check rate limit")
			c.Next()
			return
		}
		if count == 1 {
			if err := rdb.Expire(ctx, key, cfg.Window).Err(); err != nil {
				logger.WithError(err).Warn("Failed to set rate limit window expiry")
			}
		}

		remaining := int64(cfg.Requests) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Requests))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(cfg.Requests) {
			logger.WithFields(logrus.Fields{
				"client_ip": c.ClientIP(),
				"limit":     cfg.Requests,
			}).Warn("Rate limit exceeded")

			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": gin.H{
					"code":    "RATE_LIMIT_EXCEEDED",
					"message": "Rate limit exceeded. Please try again later.",
				},
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
