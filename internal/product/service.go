package product

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Product {
	return s.repo.List()
}

// ListByCategory returns catalog rows belonging to the given category.
func (s *Service) ListByCategory(category string) []Product {
	out := make([]Product, 0)
	for _, p := range s.repo.List() {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func (s *Service) GetByName(name string) (Product, error) {
	return s.repo.GetByName(name)
}

// ResetProducts replaces all products with the given list (used for dev / seeding).
func (s *Service) ResetProducts(products []Product) error {
	return s.repo.Reset(products)
}
