package category

import "grocery-shop-backend/internal/product"

// Service provides business logic for categories.
type Service struct {
	products product.Repository
}

func NewService(products product.Repository) *Service {
	return &Service{products: products}
}

// List returns the catalog categories with product counts, most represented
// first.
func (s *Service) List() []Item {
	set := Resolve(s.products.List())
	out := make([]Item, 0, len(set.names))
	for _, name := range set.Names() {
		out = append(out, Item{CategoryName: name, ProductCount: set.Count(name)})
	}
	return out
}
