package recommend

import (
	"math"
	"sort"
)

// cosine computes cosine similarity between two sparse vectors. A zero vector
// has similarity 0 to everything, itself included.
func cosine(a, b map[int]float64) float64 {
	if len(a) > len(b) {
		a, b = b, a
	}
	var dot float64
	for k, av := range a {
		if bv, ok := b[k]; ok {
			dot += av * bv
		}
	}
	if dot == 0 {
		return 0
	}
	return dot / (norm(a) * norm(b))
}

func norm(v map[int]float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// ItemSimilarity holds pairwise product-product cosine similarity computed
// from the interaction matrix columns. Self-pairs are never stored.
type ItemSimilarity struct {
	products []string
	sim      map[string]map[string]float64
	rowSums  map[string]float64
}

// NewItemSimilarity computes product-product cosine similarity over the
// per-product spend columns of the matrix.
func NewItemSimilarity(m *Matrix) *ItemSimilarity {
	products := m.Products()
	columns := make(map[string]map[int]float64, len(products))
	for _, name := range products {
		columns[name] = m.column(name)
	}

	sim := make(map[string]map[string]float64, len(products))
	rowSums := make(map[string]float64, len(products))
	for i, a := range products {
		for _, b := range products[i+1:] {
			s := cosine(columns[a], columns[b])
			if s == 0 {
				continue
			}
			if sim[a] == nil {
				sim[a] = make(map[string]float64)
			}
			if sim[b] == nil {
				sim[b] = make(map[string]float64)
			}
			sim[a][b] = s
			sim[b][a] = s
			rowSums[a] += s
			rowSums[b] += s
		}
	}

	return &ItemSimilarity{products: products, sim: sim, rowSums: rowSums}
}

// Products returns the product names covered by the similarity matrix.
func (s *ItemSimilarity) Products() []string { return s.products }

// Score returns the similarity between two products, zero when unknown or for
// a self-pair.
func (s *ItemSimilarity) Score(a, b string) float64 {
	if a == b {
		return 0
	}
	return s.sim[a][b]
}

// RowSum returns the sum of the product's similarity to every other product.
// It serves as a crude global-popularity signal for cold-start fallbacks.
func (s *ItemSimilarity) RowSum(productName string) float64 {
	return s.rowSums[productName]
}

// UserSimilarity holds pairwise person-person cosine similarity computed from
// the interaction matrix rows.
type UserSimilarity struct {
	persons []int
	sim     map[int]map[int]float64
}

// NewUserSimilarity computes person-person cosine similarity over the
// per-person spend rows of the matrix.
func NewUserSimilarity(m *Matrix) *UserSimilarity {
	persons := m.Persons()
	rows := make(map[int]map[string]float64, len(persons))
	for _, id := range persons {
		rows[id] = m.amounts[id]
	}

	// rows are string-keyed; fold them into the shared int-keyed cosine by
	// indexing products once
	index := make(map[string]int, len(m.products))
	for i, name := range m.products {
		index[name] = i
	}
	vectors := make(map[int]map[int]float64, len(persons))
	for _, id := range persons {
		vec := make(map[int]float64, len(rows[id]))
		for name, v := range rows[id] {
			if v != 0 {
				vec[index[name]] = v
			}
		}
		vectors[id] = vec
	}

	sim := make(map[int]map[int]float64, len(persons))
	for i, a := range persons {
		for _, b := range persons[i+1:] {
			s := cosine(vectors[a], vectors[b])
			if s == 0 {
				continue
			}
			if sim[a] == nil {
				sim[a] = make(map[int]float64)
			}
			if sim[b] == nil {
				sim[b] = make(map[int]float64)
			}
			sim[a][b] = s
			sim[b][a] = s
		}
	}

	return &UserSimilarity{persons: persons, sim: sim}
}

// Score returns the similarity between two persons, zero when unknown or for
// a self-pair.
func (s *UserSimilarity) Score(a, b int) float64 {
	if a == b {
		return 0
	}
	return s.sim[a][b]
}

// RankedNeighbors returns every other person ordered by similarity to
// personID, most similar first. Ties keep ascending person order.
func (s *UserSimilarity) RankedNeighbors(personID int) []int {
	out := make([]int, 0, len(s.persons))
	for _, id := range s.persons {
		if id != personID {
			out = append(out, id)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return s.Score(personID, out[i]) > s.Score(personID, out[j])
	})
	return out
}
