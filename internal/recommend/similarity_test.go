package recommend

import (
	"math"
	"reflect"
	"testing"

	"grocery-shop-backend/internal/purchase"
)

func TestItemSimilarityCosine(t *testing.T) {
	// A and B are bought identically, C by nobody who buys A or B
	m := BuildMatrix([]purchase.Record{
		{PersonID: 1, ProductName: "A", Amount: 2},
		{PersonID: 1, ProductName: "B", Amount: 4},
		{PersonID: 2, ProductName: "A", Amount: 1},
		{PersonID: 2, ProductName: "B", Amount: 2},
		{PersonID: 3, ProductName: "C", Amount: 5},
	})
	sim := NewItemSimilarity(m)

	if got := sim.Score("A", "B"); math.Abs(got-1) > 1e-9 {
		t.Fatalf("expected parallel columns to score 1, got %v", got)
	}
	if got := sim.Score("A", "C"); got != 0 {
		t.Fatalf("expected disjoint columns to score 0, got %v", got)
	}
	// self-pairs are excluded from use
	if got := sim.Score("A", "A"); got != 0 {
		t.Fatalf("expected self-pair to score 0, got %v", got)
	}

	// row sums exclude the self-pair: A relates only to B
	if got := sim.RowSum("A"); math.Abs(got-1) > 1e-9 {
		t.Fatalf("expected row sum 1 for A, got %v", got)
	}
	if got := sim.RowSum("C"); got != 0 {
		t.Fatalf("expected row sum 0 for C, got %v", got)
	}
}

func TestItemSimilaritySymmetry(t *testing.T) {
	m := BuildMatrix([]purchase.Record{
		{PersonID: 1, ProductName: "A", Amount: 3},
		{PersonID: 1, ProductName: "B", Amount: 1},
		{PersonID: 2, ProductName: "B", Amount: 2},
		{PersonID: 2, ProductName: "C", Amount: 2},
	})
	sim := NewItemSimilarity(m)

	for _, a := range m.Products() {
		for _, b := range m.Products() {
			if sim.Score(a, b) != sim.Score(b, a) {
				t.Fatalf("similarity not symmetric for (%s, %s)", a, b)
			}
		}
	}
}

func TestUserSimilarityRankedNeighbors(t *testing.T) {
	// person 2 buys like person 1, person 3 buys something else entirely
	m := BuildMatrix([]purchase.Record{
		{PersonID: 1, ProductName: "A", Amount: 2},
		{PersonID: 1, ProductName: "B", Amount: 1},
		{PersonID: 2, ProductName: "A", Amount: 4},
		{PersonID: 2, ProductName: "B", Amount: 2},
		{PersonID: 3, ProductName: "C", Amount: 9},
	})
	users := NewUserSimilarity(m)

	if got := users.Score(1, 2); math.Abs(got-1) > 1e-9 {
		t.Fatalf("expected identical baskets to score 1, got %v", got)
	}
	if got := users.Score(1, 3); got != 0 {
		t.Fatalf("expected disjoint baskets to score 0, got %v", got)
	}
	if got := users.Score(1, 1); got != 0 {
		t.Fatalf("expected self-pair to score 0, got %v", got)
	}

	got := users.RankedNeighbors(1)
	want := []int{2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected neighbors %v, got %v", want, got)
	}
}
