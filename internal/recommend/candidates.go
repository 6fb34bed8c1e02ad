package recommend

import "sort"

// Candidates runs item-based collaborative filtering for the person and
// returns up to limit product names, best first.
//
// A person absent from the matrix yields an empty list. A person present with
// zero recorded spend falls back to global popularity. Otherwise every
// purchased product contributes its similarity row scaled by the spend on it;
// already-purchased products are excluded from the result. Ties keep product
// order, so the ranking is deterministic.
func Candidates(personID int, m *Matrix, sim *ItemSimilarity, limit int) []string {
	if limit <= 0 || !m.HasPerson(personID) {
		return nil
	}

	purchased := m.PurchasedBy(personID)
	if len(purchased) == 0 {
		return PopularityRank(sim, limit)
	}

	purchasedSet := make(map[string]struct{}, len(purchased))
	for _, name := range purchased {
		purchasedSet[name] = struct{}{}
	}

	scores := make(map[string]float64, len(m.Products()))
	for _, p := range purchased {
		amount := m.Amount(personID, p)
		for _, q := range m.Products() {
			if q == p {
				continue
			}
			scores[q] += sim.Score(p, q) * amount
		}
	}

	ranked := make([]string, 0, len(scores))
	for _, name := range m.Products() {
		if _, ok := purchasedSet[name]; ok {
			continue
		}
		ranked = append(ranked, name)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// PopularityRank ranks products by the sum of their similarity to every other
// product, descending — the cold-start fallback when a person has no spend
// signal to personalize on.
func PopularityRank(sim *ItemSimilarity, limit int) []string {
	ranked := append([]string(nil), sim.Products()...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return sim.RowSum(ranked[i]) > sim.RowSum(ranked[j])
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
