package recommend

import (
	"reflect"
	"testing"

	"grocery-shop-backend/internal/purchase"
)

// cfFixture builds a small matrix where Banane and Iaurt co-occur with
// Mar Golden, so a Mar Golden buyer should get both as candidates.
func cfFixture() *Matrix {
	return BuildMatrix([]purchase.Record{
		{PersonID: 1, ProductName: "Mar Golden", Amount: 3},
		{PersonID: 2, ProductName: "Mar Golden", Amount: 2},
		{PersonID: 2, ProductName: "Banane", Amount: 2},
		{PersonID: 3, ProductName: "Mar Golden", Amount: 1},
		{PersonID: 3, ProductName: "Iaurt Grecesc", Amount: 1},
		{PersonID: 4, ProductName: "Vin Jidvei", Amount: 5},
	})
}

func TestCandidatesAbsentPerson(t *testing.T) {
	m := cfFixture()
	sim := NewItemSimilarity(m)
	if got := Candidates(42, m, sim, 10); got != nil {
		t.Fatalf("expected empty candidates for absent person, got %v", got)
	}
}

func TestCandidatesExcludePurchased(t *testing.T) {
	m := cfFixture()
	sim := NewItemSimilarity(m)

	got := Candidates(1, m, sim, 10)
	for _, name := range got {
		if name == "Mar Golden" {
			t.Fatalf("already-purchased product leaked into candidates: %v", got)
		}
	}
	// Banane (2 co-buyers' spend) and Iaurt Grecesc must both be proposed
	if len(got) == 0 {
		t.Fatal("expected candidates from co-purchase signal")
	}
	found := map[string]bool{}
	for _, name := range got {
		found[name] = true
	}
	if !found["Banane"] || !found["Iaurt Grecesc"] {
		t.Fatalf("expected co-purchased products in candidates, got %v", got)
	}
}

func TestCandidatesLimit(t *testing.T) {
	m := cfFixture()
	sim := NewItemSimilarity(m)

	got := Candidates(1, m, sim, 1)
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 candidate, got %v", got)
	}
}

func TestCandidatesZeroSpendFallsBackToPopularity(t *testing.T) {
	m := BuildMatrix([]purchase.Record{
		{PersonID: 1, ProductName: "Mar Golden", Amount: 0},
		{PersonID: 2, ProductName: "Mar Golden", Amount: 2},
		{PersonID: 2, ProductName: "Banane", Amount: 2},
	})
	sim := NewItemSimilarity(m)

	got := Candidates(1, m, sim, 10)
	want := PopularityRank(sim, 10)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected popularity fallback %v, got %v", want, got)
	}
}

func TestCandidatesDeterministic(t *testing.T) {
	m := cfFixture()
	sim := NewItemSimilarity(m)

	first := Candidates(2, m, sim, 10)
	for i := 0; i < 10; i++ {
		if got := Candidates(2, m, sim, 10); !reflect.DeepEqual(got, first) {
			t.Fatalf("candidate order changed between runs: %v vs %v", first, got)
		}
	}
}
