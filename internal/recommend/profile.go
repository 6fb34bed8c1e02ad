package recommend

import (
	"sort"

	"grocery-shop-backend/internal/product"
	"grocery-shop-backend/internal/purchase"
)

// UserType classifies a shopper by their average healthy index.
type UserType string

const (
	UserTypeHealthy   UserType = "healthy"
	UserTypeUnhealthy UserType = "unhealthy"
)

// UserProfile captures what a person's purchase history says about them:
// health orientation and category affinities.
type UserProfile struct {
	PersonID        int
	AvgHealthyIndex float64
	// TopCategories are the (up to) 2 categories with the highest spend.
	TopCategories []string
	// PurchasedCategories are all categories the person bought from,
	// spend-descending.
	PurchasedCategories []string
	Type                UserType
}

// InTopCategories reports whether the category is one of the person's top
// spend categories.
func (p *UserProfile) InTopCategories(category string) bool {
	for _, c := range p.TopCategories {
		if c == category {
			return true
		}
	}
	return false
}

// InPurchasedCategories reports whether the person has ever bought from the
// category.
func (p *UserProfile) InPurchasedCategories(category string) bool {
	for _, c := range p.PurchasedCategories {
		if c == category {
			return true
		}
	}
	return false
}

// AnalyzeProfile joins a person's purchase rows with catalog attributes and
// derives their profile. Returns nil when the person has no joinable history
// (no rows, or rows only for products missing from the catalog) — the signal
// that there is no recommendation basis.
func AnalyzeProfile(personID int, records []purchase.Record, catalog map[string]product.Product, healthyThreshold float64) *UserProfile {
	var (
		rowCount      int
		totalAmount   float64
		healthySum    float64
		weightedSum   float64
		categorySpend = make(map[string]float64)
	)

	for _, rec := range records {
		if rec.PersonID != personID {
			continue
		}
		p, ok := catalog[rec.ProductName]
		if !ok {
			// purchases of unknown products are dropped from the join
			continue
		}
		rowCount++
		totalAmount += rec.Amount
		healthySum += p.HealthyIndex
		weightedSum += p.HealthyIndex * rec.Amount
		categorySpend[p.Category] += rec.Amount
	}

	if rowCount == 0 {
		return nil
	}

	avg := healthySum / float64(rowCount)
	if totalAmount > 0 {
		avg = weightedSum / totalAmount
	}

	categories := make([]string, 0, len(categorySpend))
	for c := range categorySpend {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		if categorySpend[categories[i]] != categorySpend[categories[j]] {
			return categorySpend[categories[i]] > categorySpend[categories[j]]
		}
		return categories[i] < categories[j]
	})

	top := categories
	if len(top) > 2 {
		top = categories[:2]
	}

	userType := UserTypeUnhealthy
	if avg >= healthyThreshold {
		userType = UserTypeHealthy
	}

	return &UserProfile{
		PersonID:            personID,
		AvgHealthyIndex:     avg,
		TopCategories:       append([]string(nil), top...),
		PurchasedCategories: categories,
		Type:                userType,
	}
}
