package recommend

import (
	"reflect"
	"testing"

	"grocery-shop-backend/internal/product"
	"grocery-shop-backend/internal/purchase"
)

func newTestService() *Service {
	products := product.NewInMemoryRepository(pipelineCatalog())
	purchases := purchase.NewInMemoryRepository(pipelineRecords())
	return NewService(products, purchases, DefaultWeights())
}

func TestRecommendationsBoundedAndUnique(t *testing.T) {
	s := newTestService()

	for _, topN := range []int{1, 5, 10} {
		result := s.Recommendations(1, topN)
		if result.ColdStart {
			t.Fatalf("person with history flagged as cold start")
		}
		if len(result.Items) > topN {
			t.Fatalf("topN=%d: got %d items", topN, len(result.Items))
		}
		seen := map[string]bool{}
		for _, item := range result.Items {
			if seen[item.Name] {
				t.Fatalf("duplicate %q in result", item.Name)
			}
			seen[item.Name] = true
			if item.ImageURL == "" {
				t.Fatalf("item %q missing image url", item.Name)
			}
		}
	}
}

func TestRecommendationsIdempotent(t *testing.T) {
	s := newTestService()

	first := s.Recommendations(2, 5)
	for i := 0; i < 5; i++ {
		if got := s.Recommendations(2, 5); !reflect.DeepEqual(got, first) {
			t.Fatalf("identical calls diverged: %+v vs %+v", first, got)
		}
	}
}

func TestRecommendationsColdStartFallback(t *testing.T) {
	s := newTestService()

	result := s.Recommendations(999, 5)
	if !result.ColdStart {
		t.Fatal("expected cold-start result for unknown person")
	}
	if len(result.Items) == 0 || len(result.Items) > 5 {
		t.Fatalf("unexpected fallback size %d", len(result.Items))
	}

	// the fallback is the documented popularity ranking, not random
	again := s.Recommendations(999, 5)
	if !reflect.DeepEqual(result, again) {
		t.Fatalf("cold-start fallback not deterministic: %+v vs %+v", result, again)
	}
}

func TestRecommendationsDefaultTopN(t *testing.T) {
	s := newTestService()

	result := s.Recommendations(1, 0)
	if len(result.Items) > DefaultTopN {
		t.Fatalf("expected at most %d items for default topN, got %d", DefaultTopN, len(result.Items))
	}
}

func TestRecommendationsCacheMatchesColdPath(t *testing.T) {
	// warm service: second call reuses the cached similarity model
	warm := newTestService()
	_ = warm.Recommendations(1, 5)
	cached := warm.Recommendations(1, 5)

	// fresh service: everything recomputed from scratch
	cold := newTestService().Recommendations(1, 5)

	if !reflect.DeepEqual(cached, cold) {
		t.Fatalf("cached path diverged from cold path: %+v vs %+v", cached, cold)
	}
}

func TestRecommendationsSeeNewSnapshotAfterReset(t *testing.T) {
	products := product.NewInMemoryRepository(pipelineCatalog())
	purchases := purchase.NewInMemoryRepository(pipelineRecords())
	s := NewService(products, purchases, DefaultWeights())

	before := s.Recommendations(1, 5)
	if len(before.Items) == 0 {
		t.Fatal("expected recommendations before reset")
	}

	// wipe the purchase history: person 1 becomes a cold-start shopper
	if err := purchases.Reset(nil); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	after := s.Recommendations(1, 5)
	if !after.ColdStart {
		t.Fatal("expected cold start after purchases were wiped")
	}
}
