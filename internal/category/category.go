package category

import (
	"sort"

	"grocery-shop-backend/internal/product"
)

// Item is the public DTO returned by the category API.
type Item struct {
	CategoryName string `json:"categoryName"`
	ProductCount int    `json:"productCount"`
}

// Set is the closed set of catalog categories, resolved once per snapshot so
// the engine never falls back to ad hoc string matching over raw rows.
type Set struct {
	counts map[string]int
	// names sorted by product count descending, name ascending on ties
	names []string
}

// Resolve builds the category set from a catalog snapshot.
func Resolve(products []product.Product) *Set {
	counts := make(map[string]int)
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		counts[p.Category]++
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	return &Set{counts: counts, names: names}
}

// Contains reports whether name is a known catalog category.
func (s *Set) Contains(name string) bool {
	_, ok := s.counts[name]
	return ok
}

// Names returns all categories, most represented first.
func (s *Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// LeastFrequent returns the n categories with the fewest catalog products,
// rarest last (the tail of the frequency ranking, as a set).
func (s *Set) LeastFrequent(n int) []string {
	if n > len(s.names) {
		n = len(s.names)
	}
	out := make([]string, n)
	copy(out, s.names[len(s.names)-n:])
	return out
}

// Count returns the number of catalog products in the category.
func (s *Set) Count(name string) int {
	return s.counts[name]
}
