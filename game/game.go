// Package game owns the simulation loop: it advances the nutrient
// field, runs the agent's sense/step cycle, maintains episodic memory,
// and feeds the telemetry pipeline. Rendering and input only exist in
// graphical mode; headless runs touch no raylib state.
package game

import (
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/protozoa/config"
	"github.com/pthm-cable/protozoa/memory"
	"github.com/pthm-cable/protozoa/sim"
	"github.com/pthm-cable/protozoa/telemetry"
	"github.com/pthm-cable/protozoa/ui"
)

// Options configures a new Game.
type Options struct {
	Seed           int64
	LogStats       bool
	OutputDir      string
	Headless       bool
	StepsPerUpdate int
}

// StatsCallback receives each flushed stats window.
type StatsCallback func(telemetry.WindowStats)

// Game holds the complete simulation state.
type Game struct {
	rng     *rand.Rand
	rngSeed int64

	field *sim.Field
	agent *sim.Agent
	mem   *memory.Episodic

	// Telemetry pipeline
	collector        *telemetry.Collector
	perfCollector    *telemetry.PerfCollector
	bookmarkDetector *telemetry.BookmarkDetector
	outputManager    *telemetry.OutputManager
	statsCallback    StatsCallback
	logStats         bool

	// Memory gating
	storeThreshold float64

	// Deltas since the last tick, for windowed event counters
	lastRespawns int
	lastStores   int

	// State
	tick           int32
	paused         bool
	stepsPerUpdate int
	headless       bool

	// Debug overlays (graphical mode)
	debugMode     bool
	showSources   bool
	showSensors   bool
	showLandmarks bool

	// Rendering (nil in headless mode)
	fieldRenderer *fieldRenderer
	hud           *ui.HUD
	panel         *ui.TuningPanel

	screenWidth, screenHeight float32
}

// NewGameWithOptions creates a game configured by opts. Config must be
// initialized before calling this.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()

	rng := rand.New(rand.NewSource(opts.Seed))

	field := sim.NewField(cfg.World.Width, cfg.World.Height, cfg.FieldParams(), rng)
	agent := sim.NewAgent(cfg.World.Width/2, cfg.World.Height/2, cfg.AgentParams(), rng)
	mem := memory.NewEpisodic(cfg.Memory.MaxLandmarks, cfg.Memory.VisitRadius, cfg.Memory.Decay)

	stepsPerUpdate := opts.StepsPerUpdate
	if stepsPerUpdate < 1 {
		stepsPerUpdate = 1
	}

	g := &Game{
		rng:     rng,
		rngSeed: opts.Seed,

		field: field,
		agent: agent,
		mem:   mem,

		collector:        telemetry.NewCollector(int32(cfg.Telemetry.StatsWindowTicks), cfg.Telemetry.SatedEpsilon),
		perfCollector:    telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		bookmarkDetector: telemetry.NewBookmarkDetector(),
		logStats:         opts.LogStats,

		storeThreshold: cfg.Memory.StoreThreshold,

		stepsPerUpdate: stepsPerUpdate,
		headless:       opts.Headless,

		screenWidth:  float32(cfg.Screen.Width),
		screenHeight: float32(cfg.Screen.Height),
	}

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			slog.Error("failed to create output manager", "dir", opts.OutputDir, "error", err)
		} else {
			g.outputManager = om
			if err := om.WriteConfig(cfg); err != nil {
				slog.Error("failed to write config snapshot", "error", err)
			}
		}
	}

	if !opts.Headless {
		g.fieldRenderer = newFieldRenderer(int32(cfg.Screen.Width), int32(cfg.Screen.Height))
		g.hud = ui.NewHUD()
		g.panel = ui.NewTuningPanel(float32(cfg.Screen.Width)-270, 40)
	}

	return g
}

// SetStatsCallback registers a callback invoked on every window flush.
func (g *Game) SetStatsCallback(cb StatsCallback) {
	g.statsCallback = cb
}

// Update runs one frame in graphical mode: input, then the configured
// number of simulation steps unless paused.
func (g *Game) Update() {
	g.handleInput()

	g.perfCollector.RecordFrame()

	if g.paused {
		return
	}

	for i := 0; i < g.stepsPerUpdate; i++ {
		g.simulationStep()
	}
}

// UpdateHeadless runs simulation steps without any input or rendering.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.simulationStep()
	}
}

// simulationStep runs a single tick: field dynamics, sensing, the
// control update, memory maintenance, then telemetry.
func (g *Game) simulationStep() {
	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseField)
	g.field.Advance()

	g.perfCollector.StartPhase(telemetry.PhaseSense)
	g.agent.Sense(g.field)

	g.perfCollector.StartPhase(telemetry.PhaseStep)
	g.agent.Step(g.field.Bounds())

	g.perfCollector.StartPhase(telemetry.PhaseMemory)
	g.updateMemory()

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.sampleTelemetry()

	g.perfCollector.EndTick()
	g.tick++

	g.flushTelemetry()
}

// updateMemory records the agent's position as a landmark when it is
// sensing rich nutrient, and ages the whole store.
func (g *Game) updateMemory() {
	if g.agent.MeanSense >= g.storeThreshold {
		g.mem.MaybeStore(g.agent.X, g.agent.Y, g.agent.MeanSense, uint64(g.tick))
	}
	g.mem.DecayAll()
}

// sampleTelemetry records this tick's agent state and event deltas.
func (g *Game) sampleTelemetry() {
	g.collector.Sample(
		g.agent.Energy,
		g.agent.Error(),
		g.agent.Speed,
		g.agent.MeanSense,
		g.agent.Exhausted(),
	)

	if d := g.field.TotalRespawns() - g.lastRespawns; d > 0 {
		g.collector.RecordSourceRespawns(d)
		g.lastRespawns = g.field.TotalRespawns()
	}
	if d := g.mem.Stores() - g.lastStores; d > 0 {
		g.collector.RecordLandmarkStores(d)
		g.lastStores = g.mem.Stores()
	}
}

// Reset reseeds the world while keeping the telemetry pipeline and
// current tunables.
func (g *Game) Reset(seed int64) {
	cfg := config.Cfg()

	g.rngSeed = seed
	g.rng = rand.New(rand.NewSource(seed))

	params := g.agent.Params()
	g.field = sim.NewField(cfg.World.Width, cfg.World.Height, cfg.FieldParams(), g.rng)
	g.agent = sim.NewAgent(cfg.World.Width/2, cfg.World.Height/2, params, g.rng)
	g.mem.Clear()

	g.lastRespawns = 0
	g.lastStores = 0
	g.tick = 0
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// Agent exposes the agent for inspection.
func (g *Game) Agent() *sim.Agent { return g.agent }

// Field exposes the nutrient field for inspection.
func (g *Game) Field() *sim.Field { return g.field }

// Memory exposes the landmark store for inspection.
func (g *Game) Memory() *memory.Episodic { return g.mem }

// Unload releases GPU resources and closes any open output files.
func (g *Game) Unload() {
	if g.fieldRenderer != nil {
		g.fieldRenderer.Unload()
	}
	if g.outputManager != nil {
		g.outputManager.Close()
	}
}
