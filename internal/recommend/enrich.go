package recommend

import (
	"strings"

	"grocery-shop-backend/internal/product"
)

// Recommendation is the public DTO for one recommended product.
type Recommendation struct {
	Name     string  `json:"productName"`
	Price    float64 `json:"price"`
	Discount int     `json:"discount"`
	ImageURL string  `json:"imageUrl"`
}

var imageNameCleaner = strings.NewReplacer(",", "", "/", "")

// ImageURL derives the static asset path for a product image from its name.
// Pure function of the name: commas and slashes are stripped, the frontend's
// png extension appended.
func ImageURL(name string) string {
	return "/" + imageNameCleaner.Replace(name) + ".png"
}

// Enrich maps final product selections to output records. Names missing from
// the catalog are skipped.
func Enrich(names []string, byName map[string]product.Product) []Recommendation {
	out := make([]Recommendation, 0, len(names))
	for _, name := range names {
		item, ok := byName[name]
		if !ok {
			continue
		}
		out = append(out, Recommendation{
			Name:     item.Name,
			Price:    item.Price,
			Discount: item.Discount,
			ImageURL: ImageURL(item.Name),
		})
	}
	return out
}
