package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"github.com/vyron-fashion/storefront/internal/config"
)

const consumerGroup = "recommender-invalidation"

// CatalogEvent is the admin service's product change notification. Any event
// for an active product invalidates the recommendation index.
type CatalogEvent struct {
	EventType string    `json:"event_type"` // created, updated, deleted
	ProductID string    `json:"product_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Invalidator is the staleness signal consumed from catalog events. The
// recommender engine implements it; the consumer never triggers rebuilds
// itself, that is the scheduler's job.
type Invalidator interface {
	MarkDirty()
}

type CatalogEventConsumer struct {
	reader *kafka.Reader
	engine Invalidator
	logger *logrus.Logger
}

func NewCatalogEventConsumer(cfg *config.Config, engine Invalidator, logger *logrus.Logger) *CatalogEventConsumer {
	return &CatalogEventConsumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:        cfg.Kafka.Brokers,
			Topic:          cfg.Kafka.Topics.CatalogEvents,
			GroupID:        consumerGroup,
			MinBytes:       1,
			MaxBytes:       1e6,
			CommitInterval: time.Second,
			StartOffset:    kafka.LastOffset,
		}),
		engine: engine,
		logger: logger,
	}
}

// Run consumes catalog events until the context is cancelled. Malformed
// events are logged and skipped; they still advance the offset.
func (c *CatalogEventConsumer) Run(ctx context.Context) {
	c.logger.WithField("topic", c.reader.Config().Topic).Info("Catalog event consumer started")

	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return
			}
			c.logger.WithError(err).Error("Failed to read catalog event")
			continue
		}

		var event CatalogEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			c.logger.WithError(err).Warn("Skipping malformed catalog event")
			continue
		}

		c.logger.WithFields(logrus.Fields{
			"event_type": event.EventType,
			"product_id": event.ProductID,
		}).Debug("Catalog changed, invalidating recommendation index")

		c.engine.MarkDirty()
	}
}

func (c *CatalogEventConsumer) Close() error {
	return c.reader.Close()
}
