package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return logger
}

func TestStore_ListActiveItems(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows([]string{
		"id", "name", "short_description", "slug", "image_url",
		"category_name", "category_slug", "brand_name", "colors",
		"price", "sale_price", "currency", "rating_average", "rating_count",
	}).
		AddRow("p1", "Red Cotton Shirt", "Soft everyday shirt", "red-cotton-shirt",
			"https://cdn.example.com/p1.jpg", "Shirts", "shirts", "Vyron",
			[]string{"Red", "White"}, 29.9, 24.9, "USD", 4.5, 12).
		AddRow("p2", "Leather Wallet", "", "leather-wallet", "",
			"Accessories", "accessories", "", []string{}, 59.0, 0.0, "USD", 0.0, 0)

	mock.ExpectQuery("SELECT(.|\n)+FROM products").WillReturnRows(rows)

	store := NewStore(mock, testLogger())
	items, err := store.ListActiveItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "p1", items[0].ID)
	assert.Equal(t, "Red Cotton Shirt", items[0].Name)
	assert.Equal(t, "Shirts", items[0].Category.Name)
	assert.Equal(t, "Vyron", items[0].Brand.Name)
	assert.Equal(t, []string{"Red", "White"}, items[0].Colors)
	assert.Equal(t, 24.9, items[0].Pricing.SalePrice)
	assert.Equal(t, "active", items[0].Status)

	assert.Equal(t, "p2", items[1].ID)
	assert.Empty(t, items[1].Brand.Name)
	assert.Empty(t, items[1].Colors)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ListActiveItems_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT(.|\n)+FROM products").
		WillReturnError(errors.New("connection refused"))

	store := NewStore(mock, testLogger())
	items, err := store.ListActiveItems(context.Background())
	assert.Error(t, err)
	assert.Nil(t, items)
}
