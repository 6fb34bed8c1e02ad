package recipe

import (
	"context"

	"grocery-shop-backend/internal/product"
	"grocery-shop-backend/internal/recommend"
)

// recipeTopN is how many recommendations feed the recipe prompt — wider than
// the display list so the generator has enough ingredients to pick from.
const recipeTopN = 24

// Service assembles the generator inputs: a wide recommendation list for the
// person plus every catalog product name.
type Service struct {
	recommender *recommend.Service
	products    product.Repository
	generator   Generator
}

func NewService(recommender *recommend.Service, products product.Repository, generator Generator) *Service {
	return &Service{recommender: recommender, products: products, generator: generator}
}

// ForPerson generates recipe text from the person's recommendations.
func (s *Service) ForPerson(ctx context.Context, personID int) (string, error) {
	result := s.recommender.Recommendations(personID, recipeTopN)

	recommended := make([]string, 0, len(result.Items))
	for _, item := range result.Items {
		recommended = append(recommended, item.Name)
	}

	catalogRows := s.products.List()
	catalog := make([]string, 0, len(catalogRows))
	for _, p := range catalogRows {
		catalog = append(catalog, p.Name)
	}

	return s.generator.Generate(ctx, recommended, catalog)
}
