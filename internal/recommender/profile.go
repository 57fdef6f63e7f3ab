// Package recommender implements the content-based similar-products engine:
// a weighted text profile per product, a unigram+bigram TF-IDF model over the
// catalog, a precomputed cosine similarity matrix, and a swappable fitted
// index served to the HTTP layer.
package recommender

import (
	"strings"

	"github.com/vyron-fashion/storefront/pkg/models"
)

// ContentProfile is the weighted text blob derived from one catalog item.
// It only lives long enough to be fed into the term model.
type ContentProfile struct {
	ItemID string
	Text   string
}

// Field weights are expressed through repetition so they flow through term
// frequency naturally instead of scaling the final vector.
const (
	nameRepeat     = 3
	categoryRepeat = 2
)

// BuildProfile combines name, description, category, brand and color names
// into a single space-joined blob. Missing fields contribute nothing; an item
// with no text at all yields ok=false and is excluded from the corpus.
func BuildProfile(item models.CatalogItem) (ContentProfile, bool) {
	var parts []string

	if item.Name != "" {
		for i := 0; i < nameRepeat; i++ {
			parts = append(parts, item.Name)
		}
	}

	if item.ShortDescription != "" {
		parts = append(parts, item.ShortDescription)
	}

	if item.Category.Name != "" {
		for i := 0; i < categoryRepeat; i++ {
			parts = append(parts, item.Category.Name)
		}
	}

	if item.Brand.Name != "" {
		parts = append(parts, item.Brand.Name)
	}

	for _, color := range item.Colors {
		if color != "" {
			parts = append(parts, color)
		}
	}

	text := strings.TrimSpace(strings.Join(parts, " "))
	if text == "" {
		return ContentProfile{}, false
	}

	return ContentProfile{ItemID: item.ID, Text: text}, true
}
