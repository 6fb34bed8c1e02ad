package recommend

import (
	"sort"

	"grocery-shop-backend/internal/purchase"
)

// Matrix is the person × product interaction matrix: aggregated spend per
// (person, product) pair, implicitly zero for unlisted pairs. Person and
// product keys are kept in sorted slices so every consumer iterates in a
// deterministic order.
type Matrix struct {
	amounts  map[int]map[string]float64
	persons  []int
	products []string
}

// BuildMatrix aggregates purchase rows by (person, product), summing spend.
// An empty input yields an empty matrix.
func BuildMatrix(records []purchase.Record) *Matrix {
	amounts := make(map[int]map[string]float64)
	productSet := make(map[string]struct{})

	for _, rec := range records {
		if rec.ProductName == "" {
			continue
		}
		row := amounts[rec.PersonID]
		if row == nil {
			row = make(map[string]float64)
			amounts[rec.PersonID] = row
		}
		row[rec.ProductName] += rec.Amount
		productSet[rec.ProductName] = struct{}{}
	}

	persons := make([]int, 0, len(amounts))
	for id := range amounts {
		persons = append(persons, id)
	}
	sort.Ints(persons)

	products := make([]string, 0, len(productSet))
	for name := range productSet {
		products = append(products, name)
	}
	sort.Strings(products)

	return &Matrix{amounts: amounts, persons: persons, products: products}
}

// Persons returns the person ids present in the matrix, ascending.
func (m *Matrix) Persons() []int { return m.persons }

// Products returns the product names present in the matrix, ascending.
func (m *Matrix) Products() []string { return m.products }

// HasPerson reports whether the person has any row in the matrix.
func (m *Matrix) HasPerson(personID int) bool {
	_, ok := m.amounts[personID]
	return ok
}

// Amount returns the aggregated spend for the pair, zero when absent.
func (m *Matrix) Amount(personID int, productName string) float64 {
	return m.amounts[personID][productName]
}

// PurchasedBy returns the products the person spent a positive amount on, in
// product order.
func (m *Matrix) PurchasedBy(personID int) []string {
	row := m.amounts[personID]
	if len(row) == 0 {
		return nil
	}
	out := make([]string, 0, len(row))
	for _, name := range m.products {
		if row[name] > 0 {
			out = append(out, name)
		}
	}
	return out
}

// column returns the product's amount vector over persons.
func (m *Matrix) column(productName string) map[int]float64 {
	col := make(map[int]float64)
	for id, row := range m.amounts {
		if v := row[productName]; v != 0 {
			col[id] = v
		}
	}
	return col
}
