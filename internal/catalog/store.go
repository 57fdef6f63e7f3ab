package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"github.com/vyron-fashion/storefront/pkg/models"
)

// Querier is the slice of pgxpool.Pool the store needs; pgxmock satisfies it
// in tests.
type Querier interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
}

// Store reads product snapshots for the recommender. It is deliberately a
// read-only view: catalog writes belong to the admin service.
type Store struct {
	db     Querier
	logger *logrus.Logger
}

func NewStore(db Querier, logger *logrus.Logger) *Store {
	return &Store{
		db:     db,
		logger: logger,
	}
}

const listActiveItemsQuery = `
	SELECT
		id,
		name,
		COALESCE(short_description, '') AS short_description,
		COALESCE(slug, '') AS slug,
		COALESCE(image_url, '') AS image_url,
		COALESCE(category_name, '') AS category_name,
		COALESCE(category_slug, '') AS category_slug,
		COALESCE(brand_name, '') AS brand_name,
		COALESCE(colors, '{}') AS colors,
		COALESCE(price, 0) AS price,
		COALESCE(sale_price, 0) AS sale_price,
		COALESCE(currency, '') AS currency,
		COALESCE(rating_average, 0) AS rating_average,
		COALESCE(rating_count, 0) AS rating_count
	FROM products
	WHERE status = 'active'
	ORDER BY created_at, id`

// ListActiveItems returns the full active catalog in one snapshot read. The
// recommender calls this once per rebuild; no pagination is offered.
func (s *Store) ListActiveItems(ctx context.Context) ([]models.CatalogItem, error) {
	rows, err := s.db.Query(ctx, listActiveItemsQuery)
	if err != nil {
		return nil, fmt.Errorf("catalog snapshot query failed: %w", err)
	}
	defer rows.Close()

	var items []models.CatalogItem
	for rows.Next() {
		var item models.CatalogItem
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.ShortDescription,
			&item.Slug,
			&item.Image,
			&item.Category.Name,
			&item.Category.Slug,
			&item.Brand.Name,
			&item.Colors,
			&item.Pricing.Price,
			&item.Pricing.SalePrice,
			&item.Pricing.Currency,
			&item.Rating.Average,
			&item.Rating.Count,
		); err != nil {
			s.logger.WithError(err).Error("Failed to scan catalog item")
			continue
		}
		item.Status = "active"
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog snapshot read failed: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"items": len(items),
	}).Debug("Catalog snapshot loaded")

	return items, nil
}
