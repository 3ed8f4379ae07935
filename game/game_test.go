package game

import (
	"math"
	"testing"

	"github.com/pthm-cable/protozoa/config"
	"github.com/pthm-cable/protozoa/telemetry"
)

func newHeadlessGame(t *testing.T, seed int64) *Game {
	t.Helper()
	config.MustInit("")
	return NewGameWithOptions(Options{
		Seed:           seed,
		Headless:       true,
		StepsPerUpdate: 4,
	})
}

func TestHeadlessRunHoldsInvariants(t *testing.T) {
	g := newHeadlessGame(t, 7)
	defer g.Unload()

	cfg := config.Cfg()

	for g.Tick() < 2000 {
		g.UpdateHeadless()

		a := g.Agent()
		if a.Energy < 0 || a.Energy > 1 {
			t.Fatalf("tick %d: energy %f out of [0, 1]", g.Tick(), a.Energy)
		}
		if a.Angle < 0 || a.Angle >= 2*math.Pi {
			t.Fatalf("tick %d: angle %f out of [0, 2pi)", g.Tick(), a.Angle)
		}
		f := g.Field()
		if a.X < 0 || a.X > f.Width || a.Y < 0 || a.Y > f.Height {
			t.Fatalf("tick %d: position (%f, %f) outside dish", g.Tick(), a.X, a.Y)
		}
		n := len(f.Sources)
		if n < cfg.Field.MinSources || n > cfg.Field.MaxSources {
			t.Fatalf("tick %d: source count %d outside [%d, %d]",
				g.Tick(), n, cfg.Field.MinSources, cfg.Field.MaxSources)
		}
	}
}

func TestStatsCallbackFiresPerWindow(t *testing.T) {
	g := newHeadlessGame(t, 11)
	defer g.Unload()

	var windows []telemetry.WindowStats
	g.SetStatsCallback(func(s telemetry.WindowStats) {
		windows = append(windows, s)
	})

	windowTicks := int32(config.Cfg().Telemetry.StatsWindowTicks)
	for g.Tick() < 3*windowTicks {
		g.UpdateHeadless()
	}

	if len(windows) < 3 {
		t.Fatalf("expected at least 3 stats windows, got %d", len(windows))
	}
	for i, w := range windows {
		if w.Ticks == 0 {
			t.Errorf("window %d has zero ticks", i)
		}
		if w.EnergyMean < 0 || w.EnergyMean > 1 {
			t.Errorf("window %d energy mean %f out of range", i, w.EnergyMean)
		}
	}
}

func TestStepsPerUpdateAdvancesTicks(t *testing.T) {
	g := newHeadlessGame(t, 3)
	defer g.Unload()

	g.UpdateHeadless()
	if g.Tick() != 4 {
		t.Errorf("Tick = %d after one update with 4 steps, want 4", g.Tick())
	}
}

func TestResetReseedsWorld(t *testing.T) {
	g := newHeadlessGame(t, 5)
	defer g.Unload()

	for g.Tick() < 500 {
		g.UpdateHeadless()
	}

	tuned := g.Agent().Params()
	tuned.Target = 0.5
	g.Agent().SetParams(tuned)

	g.Reset(99)

	if g.Tick() != 0 {
		t.Errorf("tick not reset: %d", g.Tick())
	}
	if g.Memory().Count() != 0 {
		t.Errorf("landmarks survived reset: %d", g.Memory().Count())
	}
	if g.Agent().Energy != 1.0 {
		t.Errorf("agent energy not reset: %f", g.Agent().Energy)
	}
	// Tunables persist across resets.
	if g.Agent().Params().Target != 0.5 {
		t.Errorf("tuned target lost on reset: %f", g.Agent().Params().Target)
	}
}

func TestSameSeedGivesSameTrajectory(t *testing.T) {
	run := func(seed int64) (x, y, energy float64) {
		g := newHeadlessGame(t, seed)
		defer g.Unload()
		for g.Tick() < 1000 {
			g.UpdateHeadless()
		}
		a := g.Agent()
		return a.X, a.Y, a.Energy
	}

	x1, y1, e1 := run(42)
	x2, y2, e2 := run(42)

	if x1 != x2 || y1 != y2 || e1 != e2 {
		t.Errorf("identical seeds diverged: (%f, %f, %f) vs (%f, %f, %f)",
			x1, y1, e1, x2, y2, e2)
	}
}
