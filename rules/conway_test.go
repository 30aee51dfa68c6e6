package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	for n := 0; n <= MaxNeighbors; n++ {
		wantAlive := n == 2 || n == 3
		if got := ApplyConwayRules(n, true); got != wantAlive {
			t.Errorf("alive with %d neighbors: got %v, want %v", n, got, wantAlive)
		}
		wantBorn := n == 3
		if got := ApplyConwayRules(n, false); got != wantBorn {
			t.Errorf("dead with %d neighbors: got %v, want %v", n, got, wantBorn)
		}
	}
}

func TestNextRejectsImpossibleCounts(t *testing.T) {
	for _, n := range []int{-1, 9, 42} {
		if Conway.Next(true, n) || Conway.Next(false, n) {
			t.Errorf("count %d should never produce a live cell", n)
		}
	}
}

func TestNewRuleIgnoresOutOfRange(t *testing.T) {
	r := NewRule([]int{3, 6, 12}, []int{-2, 2, 3})
	if !r.Next(false, 6) {
		t.Error("HighLife-style birth on 6 should be honoured")
	}
	if r.Next(false, 2) {
		t.Error("dead cell with 2 neighbors should stay dead")
	}
}
