package utils

import (
	"math"
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(0, 100, 100*time.Millisecond)
	if s.AveragePopulation != 100 {
		t.Errorf("first average = %v, want 100", s.AveragePopulation)
	}
	if math.Abs(s.GenerationsPerSecond-10) > 1e-9 {
		t.Errorf("GenerationsPerSecond = %v, want 10", s.GenerationsPerSecond)
	}

	s.Update(1, 0, 0)
	if math.Abs(s.AveragePopulation-90) > 1e-9 {
		t.Errorf("moving average = %v, want 90", s.AveragePopulation)
	}
	if s.TotalGenerations != 1 {
		t.Errorf("TotalGenerations = %d, want 1", s.TotalGenerations)
	}
	if math.Abs(s.GenerationsPerSecond-10) > 1e-9 {
		t.Error("zero duration should keep the previous rate")
	}
}
