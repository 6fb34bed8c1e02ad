package recommend

// Weights collects every tunable constant of the scoring pipeline in one
// place so the heuristics can be tuned and tested without touching stage
// code.
type Weights struct {
	// CandidatePool is how many CF candidates feed the refinement pipeline.
	CandidatePool int

	// CategoryBoost rewards a full category match (primary refinement:
	// previously purchased categories; final scoring: top categories).
	// ComplementaryBoost rewards the weaker match, Novelty everything else.
	CategoryBoost      float64
	ComplementaryBoost float64
	Novelty            float64

	// Discount scales the primary-refinement discount term:
	// Discount * (discount% / 100).
	Discount float64

	// HealthyThreshold splits users (and catalog buckets) into healthy vs
	// unhealthy at this average healthy index.
	HealthyThreshold float64

	// UnhealthyShare / HealthyShare are the health-balance bucket ratios;
	// each bucket contributes floor(topN * share) items.
	UnhealthyShare float64
	HealthyShare   float64

	// DiversityBoost is added to similar-user candidates whose category is
	// among the RareCategoryCount least represented catalog categories.
	DiversityBoost    float64
	RareCategoryCount int

	// SimilarPicks / BasicNeedsPicks are how many items the diversification
	// and basic-needs steps contribute.
	SimilarPicks    int
	BasicNeedsPicks int

	// BasicNeedsTopBoost / BasicNeedsPurchasedBoost score staple candidates
	// by category affinity.
	BasicNeedsTopBoost       float64
	BasicNeedsPurchasedBoost float64

	// SensitiveProducts are only ever recommended to people who bought them
	// before (hard allow/deny, independent of scoring).
	SensitiveProducts []string

	// SubcategoryCaps limits how many recommendations may share a
	// subcategory. Deliberately not a general rule: the business override
	// applies to a single dairy subcategory by default.
	SubcategoryCaps map[string]int
}

// DefaultWeights returns the production tuning.
func DefaultWeights() Weights {
	return Weights{
		CandidatePool:            20,
		CategoryBoost:            5,
		ComplementaryBoost:       3,
		Novelty:                  1,
		Discount:                 2,
		HealthyThreshold:         5.0,
		UnhealthyShare:           0.6,
		HealthyShare:             0.4,
		DiversityBoost:           2,
		RareCategoryCount:        5,
		SimilarPicks:             5,
		BasicNeedsPicks:          2,
		BasicNeedsTopBoost:       5,
		BasicNeedsPurchasedBoost: 2,
		SensitiveProducts:        []string{"Scutece Pampers", "Absorbante Always"},
		SubcategoryCaps:          map[string]int{"Lactate": 1},
	}
}

// DefaultTopN is the recommendation list length when the caller does not ask
// for a specific one.
const DefaultTopN = 10
