package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollectorBasics(t *testing.T) {
	p := NewPerfCollector(10)

	for i := 0; i < 3; i++ {
		p.StartTick()
		p.StartPhase(PhaseField)
		time.Sleep(time.Millisecond)
		p.StartPhase(PhaseStep)
		time.Sleep(time.Millisecond)
		p.EndTick()
	}

	stats := p.Stats()

	if stats.AvgTickDuration <= 0 {
		t.Errorf("expected positive avg tick duration, got %v", stats.AvgTickDuration)
	}
	if stats.MinTickDuration > stats.MaxTickDuration {
		t.Errorf("min %v > max %v", stats.MinTickDuration, stats.MaxTickDuration)
	}
	if stats.PhaseAvg[PhaseField] <= 0 || stats.PhaseAvg[PhaseStep] <= 0 {
		t.Errorf("expected positive phase averages, got %v", stats.PhaseAvg)
	}
	if stats.TicksPerSecond <= 0 {
		t.Errorf("expected positive throughput, got %f", stats.TicksPerSecond)
	}
}

func TestPerfCollectorEmpty(t *testing.T) {
	p := NewPerfCollector(10)
	stats := p.Stats()

	if stats.AvgTickDuration != 0 {
		t.Errorf("empty collector should report zero avg, got %v", stats.AvgTickDuration)
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("phase maps should be non-nil even when empty")
	}
}

func TestPerfCollectorWindowWraps(t *testing.T) {
	p := NewPerfCollector(4)

	for i := 0; i < 10; i++ {
		p.StartTick()
		p.StartPhase(PhaseStep)
		p.EndTick()
	}

	// Only windowSize samples are retained.
	if p.sampleCount != 4 {
		t.Errorf("sampleCount = %d, want 4", p.sampleCount)
	}
}

func TestPerfStatsToCSV(t *testing.T) {
	stats := PerfStats{
		AvgTickDuration: 1500 * time.Microsecond,
		MinTickDuration: 1000 * time.Microsecond,
		MaxTickDuration: 2000 * time.Microsecond,
		TicksPerSecond:  666.0,
		PhaseAvg: map[string]time.Duration{
			PhaseField: 500 * time.Microsecond,
			PhaseStep:  700 * time.Microsecond,
		},
	}

	rec := stats.ToCSV(1200)

	if rec.WindowEnd != 1200 {
		t.Errorf("WindowEnd = %d, want 1200", rec.WindowEnd)
	}
	if rec.AvgTickUs != 1500 || rec.FieldUs != 500 || rec.StepUs != 700 {
		t.Errorf("unexpected CSV record: %+v", rec)
	}
	// Missing phases read as zero.
	if rec.MemoryUs != 0 || rec.TelemetryUs != 0 {
		t.Errorf("missing phases should be zero: %+v", rec)
	}
}
