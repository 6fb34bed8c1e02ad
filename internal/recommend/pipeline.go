package recommend

import (
	"math"
	"sort"

	"grocery-shop-backend/internal/category"
	"grocery-shop-backend/internal/product"
)

// Pipeline is the heuristic re-ranking stack applied on top of the CF
// candidates: category/health/discount scoring, health-balance bucketing,
// similar-user diversification, basic-needs augmentation, subcategory capping
// and a final relevance pass. It is built once per catalog snapshot and is
// read-only while running.
type Pipeline struct {
	weights Weights
	catalog []product.Product
	byName  map[string]product.Product
	cats    *category.Set
}

func NewPipeline(catalog []product.Product, weights Weights) *Pipeline {
	byName := make(map[string]product.Product, len(catalog))
	for _, p := range catalog {
		byName[p.Name] = p
	}
	return &Pipeline{
		weights: weights,
		catalog: catalog,
		byName:  byName,
		cats:    category.Resolve(catalog),
	}
}

// picks is the running recommended set: insertion-ordered and duplicate-free.
// The pipeline owns it; stages only read it and propose additions.
type picks struct {
	order []string
	seen  map[string]struct{}
}

func newPicks() *picks {
	return &picks{seen: make(map[string]struct{})}
}

func (k *picks) add(name string) {
	if _, ok := k.seen[name]; ok {
		return
	}
	k.seen[name] = struct{}{}
	k.order = append(k.order, name)
}

func (k *picks) has(name string) bool {
	_, ok := k.seen[name]
	return ok
}

// Run executes the full refinement stack and returns up to topN product
// names. purchased is the set of products the person has bought (drives the
// sensitive-item allow/deny). prof must be non-nil; callers handle the
// no-history case before reaching the pipeline.
func (p *Pipeline) Run(prof *UserProfile, candidates []string, purchased map[string]struct{}, m *Matrix, users *UserSimilarity, topN int) []string {
	if topN <= 0 {
		topN = DefaultTopN
	}

	denied := p.deniedFor(purchased)

	// the allow/deny filter also applies to the CF pool: a sensitive item
	// must never surface for a person who has not bought it, whichever stage
	// proposed it
	candidates = filterNames(candidates, func(name string) bool {
		_, d := denied[name]
		return !d
	})

	acc := newPicks()

	primary := p.primaryRefine(prof, candidates, topN)
	for _, name := range primary {
		acc.add(name)
	}

	unhealthyBucket, healthyBucket := p.healthBuckets(acc, denied, topN)
	for _, name := range unhealthyBucket {
		acc.add(name)
	}
	for _, name := range healthyBucket {
		acc.add(name)
	}

	for _, name := range p.diversify(prof, m, users, acc, denied) {
		acc.add(name)
	}
	for _, name := range p.basicNeeds(prof, acc, denied) {
		acc.add(name)
	}

	pool := p.capSubcategories(acc.order, topN)
	return p.finalRelevance(prof, pool, topN)
}

// deniedFor returns the sensitive products the person may not receive.
func (p *Pipeline) deniedFor(purchased map[string]struct{}) map[string]struct{} {
	denied := make(map[string]struct{})
	for _, name := range p.weights.SensitiveProducts {
		if _, ok := purchased[name]; !ok {
			denied[name] = struct{}{}
		}
	}
	return denied
}

// primaryRefine scores the CF candidates by category affinity, health
// orientation and discount, and keeps the topN best.
func (p *Pipeline) primaryRefine(prof *UserProfile, candidates []string, topN int) []string {
	type scored struct {
		name    string
		score   float64
		healthy float64
	}

	rows := make([]scored, 0, len(candidates))
	for _, name := range candidates {
		item, ok := p.byName[name]
		if !ok {
			continue
		}

		score := p.weights.Novelty
		switch {
		case prof.InPurchasedCategories(item.Category):
			score = p.weights.CategoryBoost
		case prof.InTopCategories(item.Category):
			score = p.weights.ComplementaryBoost
		}

		if prof.Type == UserTypeHealthy {
			score += item.HealthyIndex
		} else {
			score += 10 - item.HealthyIndex
		}
		score += p.weights.Discount * (float64(item.Discount) / 100)

		rows = append(rows, scored{name: name, score: score, healthy: item.HealthyIndex})
	}

	// among equal scores, unhealthy users see lower-health items first,
	// healthy users higher-health items first
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].score != rows[j].score {
			return rows[i].score > rows[j].score
		}
		if prof.Type == UserTypeUnhealthy {
			return rows[i].healthy < rows[j].healthy
		}
		return rows[i].healthy > rows[j].healthy
	})

	if len(rows) > topN {
		rows = rows[:topN]
	}
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.name
	}
	return out
}

// healthBuckets walks the remaining catalog in order and fills an unhealthy
// bucket (healthyIndex <= threshold) and a healthy bucket (> threshold) with
// floor(topN*share) items each.
func (p *Pipeline) healthBuckets(acc *picks, denied map[string]struct{}, topN int) (unhealthy, healthy []string) {
	wantUnhealthy := int(math.Floor(float64(topN) * p.weights.UnhealthyShare))
	wantHealthy := int(math.Floor(float64(topN) * p.weights.HealthyShare))

	for _, item := range p.catalog {
		if len(unhealthy) >= wantUnhealthy && len(healthy) >= wantHealthy {
			break
		}
		if acc.has(item.Name) {
			continue
		}
		if _, d := denied[item.Name]; d {
			continue
		}
		if item.HealthyIndex <= p.weights.HealthyThreshold {
			if len(unhealthy) < wantUnhealthy {
				unhealthy = append(unhealthy, item.Name)
			}
		} else if len(healthy) < wantHealthy {
			healthy = append(healthy, item.Name)
		}
	}
	return unhealthy, healthy
}

// diversify scores catalog products by what similar shoppers bought, boosts
// the rarest catalog categories, and proposes the best SimilarPicks.
func (p *Pipeline) diversify(prof *UserProfile, m *Matrix, users *UserSimilarity, acc *picks, denied map[string]struct{}) []string {
	rare := make(map[string]struct{})
	for _, c := range p.cats.LeastFrequent(p.weights.RareCategoryCount) {
		rare[c] = struct{}{}
	}

	scores := make(map[string]float64)
	for _, other := range users.RankedNeighbors(prof.PersonID) {
		sim := users.Score(prof.PersonID, other)
		if sim == 0 {
			continue
		}
		for _, name := range m.PurchasedBy(other) {
			if acc.has(name) {
				continue
			}
			if _, d := denied[name]; d {
				continue
			}
			if _, ok := p.byName[name]; !ok {
				continue
			}
			scores[name] += m.Amount(other, name) * sim
		}
	}

	names := make([]string, 0, len(scores))
	for name := range scores {
		if _, ok := rare[p.byName[name].Category]; ok {
			scores[name] += p.weights.DiversityBoost
		}
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if scores[names[i]] != scores[names[j]] {
			return scores[names[i]] > scores[names[j]]
		}
		return names[i] < names[j]
	})

	if len(names) > p.weights.SimilarPicks {
		names = names[:p.weights.SimilarPicks]
	}
	return names
}

// basicNeeds proposes staple products the person has not been offered yet,
// preferring their own categories and cheaper items.
func (p *Pipeline) basicNeeds(prof *UserProfile, acc *picks, denied map[string]struct{}) []string {
	eligible := func(item product.Product) bool {
		if !item.IsBasicNeed() || acc.has(item.Name) {
			return false
		}
		_, d := denied[item.Name]
		return !d
	}

	rows := make([]product.Product, 0)
	for _, item := range p.catalog {
		if eligible(item) && (prof.InTopCategories(item.Category) || prof.InPurchasedCategories(item.Category)) {
			rows = append(rows, item)
		}
	}
	if len(rows) < p.weights.BasicNeedsPicks {
		// too few staples in familiar categories: widen to any staple
		inRows := make(map[string]struct{}, len(rows))
		for _, item := range rows {
			inRows[item.Name] = struct{}{}
		}
		for _, item := range p.catalog {
			if _, ok := inRows[item.Name]; ok {
				continue
			}
			if eligible(item) {
				rows = append(rows, item)
			}
		}
	}

	score := func(item product.Product) float64 {
		switch {
		case prof.InTopCategories(item.Category):
			return p.weights.BasicNeedsTopBoost
		case prof.InPurchasedCategories(item.Category):
			return p.weights.BasicNeedsPurchasedBoost
		}
		return 0
	}
	sort.SliceStable(rows, func(i, j int) bool {
		si, sj := score(rows[i]), score(rows[j])
		if si != sj {
			return si > sj
		}
		return rows[i].Price < rows[j].Price
	})

	if len(rows) > p.weights.BasicNeedsPicks {
		rows = rows[:p.weights.BasicNeedsPicks]
	}
	out := make([]string, len(rows))
	for i, item := range rows {
		out[i] = item.Name
	}
	return out
}

// capSubcategories enforces the per-subcategory caps on the combined pool and
// backfills dropped slots from the excess, in original order, up to topN.
func (p *Pipeline) capSubcategories(pool []string, topN int) []string {
	if len(p.weights.SubcategoryCaps) == 0 {
		return pool
	}

	counts := make(map[string]int)
	kept := make([]string, 0, len(pool))
	excess := make([]string, 0)
	for _, name := range pool {
		item, ok := p.byName[name]
		if !ok {
			continue
		}
		if item.Subcategory != nil {
			if limit, capped := p.weights.SubcategoryCaps[*item.Subcategory]; capped {
				if counts[*item.Subcategory] >= limit {
					excess = append(excess, name)
					continue
				}
				counts[*item.Subcategory]++
			}
		}
		kept = append(kept, name)
	}

	for _, name := range excess {
		if len(kept) >= topN {
			break
		}
		kept = append(kept, name)
	}
	return kept
}

// finalRelevance scores the capped pool one last time and keeps the topN
// best. Ties keep pool order.
func (p *Pipeline) finalRelevance(prof *UserProfile, pool []string, topN int) []string {
	scores := make(map[string]float64, len(pool))
	for _, name := range pool {
		item, ok := p.byName[name]
		if !ok {
			continue
		}

		score := p.weights.Novelty
		switch {
		case prof.InTopCategories(item.Category):
			score = p.weights.CategoryBoost
		case prof.InPurchasedCategories(item.Category):
			score = p.weights.ComplementaryBoost
		}

		if prof.Type == UserTypeHealthy {
			score += item.HealthyIndex
		} else if item.HealthyIndex < p.weights.HealthyThreshold {
			score += 10 - item.HealthyIndex
		} else {
			score += item.HealthyIndex * 0.5
		}
		score += float64(item.Discount) / 10

		scores[name] = score
	}

	ranked := filterNames(pool, func(name string) bool {
		_, ok := scores[name]
		return ok
	})
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

func filterNames(names []string, keep func(string) bool) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if keep(name) {
			out = append(out, name)
		}
	}
	return out
}
