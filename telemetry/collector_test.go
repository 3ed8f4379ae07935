package telemetry

import (
	"math"
	"testing"
)

func TestCollectorWindowing(t *testing.T) {
	c := NewCollector(10, 0.05)

	if c.ShouldFlush(5) {
		t.Error("should not flush mid-window")
	}
	if !c.ShouldFlush(10) {
		t.Error("should flush at window boundary")
	}

	c.Flush(10, 0, 0)
	if c.ShouldFlush(15) {
		t.Error("window start not reset after flush")
	}
	if !c.ShouldFlush(20) {
		t.Error("second window boundary not detected")
	}
}

func TestCollectorFlushStats(t *testing.T) {
	c := NewCollector(10, 0.05)

	c.Sample(0.2, -0.5, 1.0, 0.3, false)
	c.Sample(0.4, -0.3, 0.5, 0.5, false)
	c.Sample(0.6, 0.2, 1.5, 1.0, true)

	stats := c.Flush(3, 2, 0.9)

	if stats.Ticks != 3 {
		t.Errorf("Ticks = %d, want 3", stats.Ticks)
	}
	if math.Abs(stats.EnergyMean-0.4) > 1e-12 {
		t.Errorf("EnergyMean = %f, want 0.4", stats.EnergyMean)
	}
	if math.Abs(stats.EnergyStd-0.2) > 1e-12 {
		t.Errorf("EnergyStd = %f, want 0.2", stats.EnergyStd)
	}
	if math.Abs(stats.ErrorMean-(-0.2)) > 1e-12 {
		t.Errorf("ErrorMean = %f, want -0.2", stats.ErrorMean)
	}
	if math.Abs(stats.AbsErrorMean-(1.0/3.0)) > 1e-12 {
		t.Errorf("AbsErrorMean = %f, want 1/3", stats.AbsErrorMean)
	}
	if stats.SpeedMax != 1.5 {
		t.Errorf("SpeedMax = %f, want 1.5", stats.SpeedMax)
	}
	if stats.ExhaustedTicks != 1 {
		t.Errorf("ExhaustedTicks = %d, want 1", stats.ExhaustedTicks)
	}
	if stats.LandmarkCount != 2 || stats.LandmarkReliability != 0.9 {
		t.Errorf("landmark state not passed through: %+v", stats)
	}
}

func TestCollectorCountsSatedTicks(t *testing.T) {
	c := NewCollector(10, 0.05)

	c.Sample(0.5, 0.01, 0, 0.8, false)   // within epsilon
	c.Sample(0.5, -0.04, 0, 0.76, false) // within epsilon
	c.Sample(0.5, -0.7, 1.0, 0.1, false)

	stats := c.Flush(3, 0, 0)
	if stats.SatedTicks != 2 {
		t.Errorf("SatedTicks = %d, want 2", stats.SatedTicks)
	}
}

func TestCollectorSatedEpsilonConfigurable(t *testing.T) {
	c := NewCollector(10, 0.2)

	c.Sample(0.5, 0.1, 0, 0.9, false) // sated under the wider epsilon
	// |error| 0.15 also falls inside epsilon 0.2.
	c.Sample(0.5, -0.15, 0, 0.65, false)
	c.Sample(0.5, 0.3, 0, 1.0, false)

	stats := c.Flush(3, 0, 0)
	if stats.SatedTicks != 2 {
		t.Errorf("SatedTicks = %d with epsilon 0.2, want 2", stats.SatedTicks)
	}
}

func TestCollectorEventCounters(t *testing.T) {
	c := NewCollector(10, 0.05)

	c.RecordSourceRespawns(2)
	c.RecordSourceRespawns(1)
	c.RecordLandmarkStores(1)

	stats := c.Flush(5, 0, 0)
	if stats.SourceRespawns != 3 {
		t.Errorf("SourceRespawns = %d, want 3", stats.SourceRespawns)
	}
	if stats.LandmarkStores != 1 {
		t.Errorf("LandmarkStores = %d, want 1", stats.LandmarkStores)
	}

	// Counters reset after flush.
	stats = c.Flush(10, 0, 0)
	if stats.SourceRespawns != 0 || stats.LandmarkStores != 0 {
		t.Errorf("counters not reset: %+v", stats)
	}
}

func TestCollectorEmptyWindow(t *testing.T) {
	c := NewCollector(10, 0.05)

	stats := c.Flush(10, 0, 0)
	if stats.Ticks != 0 || stats.EnergyMean != 0 || stats.SpeedMax != 0 {
		t.Errorf("empty window should zero stats: %+v", stats)
	}
}
