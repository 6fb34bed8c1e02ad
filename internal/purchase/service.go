package purchase

import "sort"

// Service provides business logic over purchase history.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Record {
	return s.repo.List()
}

// HistoryFor returns a person's spend aggregated per product, highest spend
// first (ties broken by product name for stable output).
func (s *Service) HistoryFor(personID int) []Summary {
	totals := make(map[string]float64)
	for _, rec := range s.repo.ListByPerson(personID) {
		totals[rec.ProductName] += rec.Amount
	}

	out := make([]Summary, 0, len(totals))
	for name, amount := range totals {
		out = append(out, Summary{ProductName: name, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].ProductName < out[j].ProductName
	})
	return out
}

// ResetPurchases replaces all purchase rows with the given list (used for dev / seeding).
func (s *Service) ResetPurchases(records []Record) error {
	return s.repo.Reset(records)
}
