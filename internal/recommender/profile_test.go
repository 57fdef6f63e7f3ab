package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vyron-fashion/storefront/pkg/models"
)

func TestBuildProfile(t *testing.T) {
	tests := []struct {
		name     string
		item     models.CatalogItem
		expected string
		ok       bool
	}{
		{
			name: "full item repeats name and category",
			item: models.CatalogItem{
				ID:               "p1",
				Name:             "Cotton Shirt",
				ShortDescription: "Soft and light",
				Category:         models.CategoryRef{Name: "Shirts"},
				Brand:            models.BrandRef{Name: "Vyron"},
				Colors:           []string{"Red", "Blue"},
			},
			expected: "Cotton Shirt Cotton Shirt Cotton Shirt Soft and light Shirts Shirts Vyron Red Blue",
			ok:       true,
		},
		{
			name:     "name only",
			item:     models.CatalogItem{ID: "p2", Name: "Wallet"},
			expected: "Wallet Wallet Wallet",
			ok:       true,
		},
		{
			name:     "colors only",
			item:     models.CatalogItem{ID: "p3", Colors: []string{"Đỏ"}},
			expected: "Đỏ",
			ok:       true,
		},
		{
			name: "entirely empty item is excluded",
			item: models.CatalogItem{ID: "p4", Colors: []string{""}},
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, ok := BuildProfile(tt.item)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.item.ID, profile.ItemID)
				assert.Equal(t, tt.expected, profile.Text)
			}
		})
	}
}
