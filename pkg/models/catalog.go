package models

// CatalogItem is the catalog store's view of a product. The recommender only
// reads these; ownership stays with the catalog service.
type CatalogItem struct {
	ID               string      `json:"id" db:"id"`
	Name             string      `json:"name" db:"name"`
	ShortDescription string      `json:"short_description,omitempty" db:"short_description"`
	Slug             string      `json:"slug" db:"slug"`
	Image            string      `json:"image,omitempty" db:"image_url"`
	Category         CategoryRef `json:"category"`
	Brand            BrandRef    `json:"brand"`
	Colors           []string    `json:"colors,omitempty"`
	Pricing          Pricing     `json:"pricing"`
	Rating           Rating      `json:"rating"`
	Status           string      `json:"status" db:"status"` // active, inactive
}

type CategoryRef struct {
	Name string `json:"name,omitempty"`
	Slug string `json:"slug,omitempty"`
}

type BrandRef struct {
	Name string `json:"name,omitempty"`
}

type Pricing struct {
	Price     float64 `json:"price"`
	SalePrice float64 `json:"sale_price,omitempty"`
	Currency  string  `json:"currency,omitempty"`
}

type Rating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// ItemSummary is the metadata snapshot captured at fit time so recommendation
// responses can be assembled without a second catalog read.
type ItemSummary struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Slug     string      `json:"slug"`
	Image    string      `json:"image,omitempty"`
	Pricing  Pricing     `json:"pricing"`
	Category CategoryRef `json:"category"`
	Rating   Rating      `json:"rating"`
}

// Summary snapshots the fields served back with recommendations.
func (item CatalogItem) Summary() ItemSummary {
	return ItemSummary{
		ID:       item.ID,
		Name:     item.Name,
		Slug:     item.Slug,
		Image:    item.Image,
		Pricing:  item.Pricing,
		Category: item.Category,
		Rating:   item.Rating,
	}
}
