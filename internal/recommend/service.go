package recommend

import (
	"sync"

	"grocery-shop-backend/internal/product"
	"grocery-shop-backend/internal/purchase"
)

// Result is the outcome of one recommendation request. ColdStart is set when
// the person has no usable purchase history and the items are the documented
// global-popularity fallback instead of the personalized pipeline output.
type Result struct {
	PersonID  int              `json:"personId"`
	ColdStart bool             `json:"coldStart"`
	Items     []Recommendation `json:"items"`
}

// Service turns a person id and the catalog/purchase snapshots into a ranked,
// bounded list of recommendations. Each request works on a fresh view of the
// data; the only shared state is a similarity cache keyed by snapshot
// versions, and the cold path reproduces identical results without it.
type Service struct {
	products  product.Repository
	purchases purchase.Repository
	weights   Weights

	mu    sync.Mutex
	cache *model
}

// model holds everything derived from one (products, purchases) snapshot
// pair.
type model struct {
	productsVersion  string
	purchasesVersion string

	catalog  []product.Product
	byName   map[string]product.Product
	records  []purchase.Record
	matrix   *Matrix
	itemSim  *ItemSimilarity
	userSim  *UserSimilarity
	pipeline *Pipeline
}

func NewService(products product.Repository, purchases purchase.Repository, weights Weights) *Service {
	return &Service{products: products, purchases: purchases, weights: weights}
}

// Recommendations returns up to topN recommended products for the person.
// topN values <= 0 fall back to DefaultTopN. A person with no joinable
// purchase history gets the deterministic popularity fallback with ColdStart
// set; this never fails, it only degrades to shorter lists.
func (s *Service) Recommendations(personID, topN int) Result {
	if topN <= 0 {
		topN = DefaultTopN
	}

	mdl := s.snapshot()

	prof := AnalyzeProfile(personID, mdl.records, mdl.byName, s.weights.HealthyThreshold)
	if prof == nil {
		names := PopularityRank(mdl.itemSim, topN)
		return Result{PersonID: personID, ColdStart: true, Items: Enrich(names, mdl.byName)}
	}

	candidates := Candidates(personID, mdl.matrix, mdl.itemSim, s.weights.CandidatePool)

	purchased := make(map[string]struct{})
	for _, name := range mdl.matrix.PurchasedBy(personID) {
		purchased[name] = struct{}{}
	}

	names := mdl.pipeline.Run(prof, candidates, purchased, mdl.matrix, mdl.userSim, topN)
	return Result{PersonID: personID, Items: Enrich(names, mdl.byName)}
}

// snapshot returns the derived model for the current dataset snapshot,
// reusing the cached one when both repository versions still match. Untracked
// snapshots (empty version) are never cached.
func (s *Service) snapshot() *model {
	pv := s.products.Version()
	uv := s.purchases.Version()

	s.mu.Lock()
	if s.cache != nil && pv != "" && uv != "" &&
		s.cache.productsVersion == pv && s.cache.purchasesVersion == uv {
		mdl := s.cache
		s.mu.Unlock()
		return mdl
	}
	s.mu.Unlock()

	catalog := s.products.List()
	byName := make(map[string]product.Product, len(catalog))
	for _, p := range catalog {
		byName[p.Name] = p
	}
	records := s.purchases.List()
	matrix := BuildMatrix(records)

	mdl := &model{
		productsVersion:  pv,
		purchasesVersion: uv,
		catalog:          catalog,
		byName:           byName,
		records:          records,
		matrix:           matrix,
		itemSim:          NewItemSimilarity(matrix),
		userSim:          NewUserSimilarity(matrix),
		pipeline:         NewPipeline(catalog, s.weights),
	}

	if pv != "" && uv != "" {
		s.mu.Lock()
		s.cache = mdl
		s.mu.Unlock()
	}
	return mdl
}
