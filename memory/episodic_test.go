package memory

import (
	"math"
	"testing"
)

func TestStoreAndCount(t *testing.T) {
	e := NewEpisodic(8, 5.0, 0.999)

	e.MaybeStore(50, 25, 0.9, 100)

	if e.Count() != 1 {
		t.Fatalf("expected 1 landmark, got %d", e.Count())
	}
	lm := e.Landmarks()[0]
	if lm.X != 50 || lm.Y != 25 {
		t.Errorf("landmark at (%.1f, %.1f), want (50, 25)", lm.X, lm.Y)
	}
	if lm.PeakNutrient != 0.9 || lm.Reliability != 1.0 || lm.VisitCount != 1 {
		t.Errorf("unexpected landmark state: %+v", lm)
	}
}

func TestRevisitRefreshesInsteadOfDuplicating(t *testing.T) {
	e := NewEpisodic(8, 5.0, 0.999)

	e.MaybeStore(50, 25, 0.6, 100)
	e.MaybeStore(52, 26, 0.8, 200) // within visit radius

	if e.Count() != 1 {
		t.Fatalf("expected refresh, got %d landmarks", e.Count())
	}
	lm := e.Landmarks()[0]
	if lm.PeakNutrient != 0.8 {
		t.Errorf("peak not raised on revisit: %f", lm.PeakNutrient)
	}
	if lm.VisitCount != 2 || lm.LastVisitTick != 200 {
		t.Errorf("visit bookkeeping wrong: %+v", lm)
	}
}

func TestEvictionKeepsMostValuable(t *testing.T) {
	e := NewEpisodic(2, 1.0, 0.999)

	e.MaybeStore(10, 10, 0.5, 1)
	e.MaybeStore(30, 30, 0.9, 2)

	// Weaker than both: must not evict anything.
	e.MaybeStore(60, 60, 0.3, 3)
	if e.Count() != 2 {
		t.Fatalf("expected store to stay at capacity 2, got %d", e.Count())
	}
	if _, ok := e.BestDistant(60, 60, 5); !ok {
		t.Error("expected surviving landmarks away from rejected point")
	}

	// Stronger than the weakest: evicts the 0.5 entry.
	e.MaybeStore(80, 80, 0.7, 4)
	if e.Count() != 2 {
		t.Fatalf("expected capacity 2 after eviction, got %d", e.Count())
	}
	for _, l := range e.Landmarks() {
		if l.X == 10 {
			t.Error("least valuable landmark should have been evicted")
		}
	}
}

func TestDecayDropsStaleLandmarks(t *testing.T) {
	e := NewEpisodic(8, 5.0, 0.5)

	e.MaybeStore(50, 25, 0.9, 1)
	for i := 0; i < 7; i++ {
		e.DecayAll()
	}

	// 0.5^7 < 0.01: the landmark is forgotten.
	if e.Count() != 0 {
		t.Errorf("expected stale landmark to be dropped, %d remain", e.Count())
	}
}

func TestBestAndBestDistant(t *testing.T) {
	e := NewEpisodic(8, 1.0, 0.999)

	e.MaybeStore(10, 10, 0.4, 1)
	e.MaybeStore(90, 90, 0.9, 2)

	best, ok := e.Best()
	if !ok || best.X != 90 {
		t.Errorf("Best = %+v, ok=%v; want landmark at (90, 90)", best, ok)
	}

	// Exclude the neighborhood of the best landmark.
	distant, ok := e.BestDistant(90, 90, 20)
	if !ok || distant.X != 10 {
		t.Errorf("BestDistant = %+v, ok=%v; want landmark at (10, 10)", distant, ok)
	}

	if _, ok := e.BestDistant(50, 50, 1000); ok {
		t.Error("BestDistant should find nothing beyond 1000 units")
	}
}

func TestMeanReliability(t *testing.T) {
	e := NewEpisodic(8, 1.0, 0.5)
	if e.MeanReliability() != 0 {
		t.Errorf("empty store reliability = %f, want 0", e.MeanReliability())
	}

	e.MaybeStore(10, 10, 0.5, 1)
	e.MaybeStore(30, 30, 0.5, 1)
	e.DecayAll()

	if math.Abs(e.MeanReliability()-0.5) > 1e-12 {
		t.Errorf("mean reliability = %f, want 0.5", e.MeanReliability())
	}
}
