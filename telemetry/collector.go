package telemetry

import "math"

// Collector accumulates per-tick samples and events within stats
// windows and produces WindowStats.
type Collector struct {
	windowTicks     int32
	windowStartTick int32

	// Per-tick samples for the current window
	energies []float64
	errors   []float64
	speeds   []float64
	senses   []float64

	// Event counters for the current window
	exhaustedTicks int
	satedTicks     int
	sourceRespawns int
	landmarkStores int

	// |error| below this counts the tick as sated.
	satedEpsilon float64
}

// NewCollector creates a stats collector flushing every windowTicks
// ticks. Ticks with |error| below satedEpsilon count as sated.
func NewCollector(windowTicks int32, satedEpsilon float64) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{
		windowTicks:  windowTicks,
		satedEpsilon: satedEpsilon,
	}
}

// Sample records one tick of agent state.
func (c *Collector) Sample(energy, err, speed, sense float64, exhausted bool) {
	c.energies = append(c.energies, energy)
	c.errors = append(c.errors, err)
	c.speeds = append(c.speeds, speed)
	c.senses = append(c.senses, sense)

	if exhausted {
		c.exhaustedTicks++
	}
	if math.Abs(err) < c.satedEpsilon {
		c.satedTicks++
	}
}

// RecordSourceRespawns adds n source replacement events.
func (c *Collector) RecordSourceRespawns(n int) {
	c.sourceRespawns += n
}

// RecordLandmarkStores adds n new-landmark events.
func (c *Collector) RecordLandmarkStores(n int) {
	c.landmarkStores += n
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Flush produces a WindowStats and resets state for the next window.
// Landmark memory state is sampled at window end by the caller.
func (c *Collector) Flush(currentTick int32, landmarkCount int, landmarkReliability float64) WindowStats {
	energyMean, energyStd, energyP10, energyP50, energyP90 := summarize(c.energies)
	errorMean, errorStd, _, _, _ := summarize(c.errors)
	speedMean, _, _, _, _ := summarize(c.speeds)
	senseMean, _, _, _, _ := summarize(c.senses)

	var absErrSum, speedMax float64
	for _, e := range c.errors {
		absErrSum += math.Abs(e)
	}
	absErrMean := 0.0
	if len(c.errors) > 0 {
		absErrMean = absErrSum / float64(len(c.errors))
	}
	for _, s := range c.speeds {
		if s > speedMax {
			speedMax = s
		}
	}

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		Ticks:           len(c.energies),

		EnergyMean: energyMean,
		EnergyStd:  energyStd,
		EnergyP10:  energyP10,
		EnergyP50:  energyP50,
		EnergyP90:  energyP90,

		ErrorMean:    errorMean,
		ErrorStd:     errorStd,
		AbsErrorMean: absErrMean,

		SpeedMean: speedMean,
		SpeedMax:  speedMax,

		SenseMean: senseMean,

		ExhaustedTicks: c.exhaustedTicks,
		SatedTicks:     c.satedTicks,
		SourceRespawns: c.sourceRespawns,
		LandmarkStores: c.landmarkStores,

		LandmarkCount:       landmarkCount,
		LandmarkReliability: landmarkReliability,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.energies = c.energies[:0]
	c.errors = c.errors[:0]
	c.speeds = c.speeds[:0]
	c.senses = c.senses[:0]
	c.exhaustedTicks = 0
	c.satedTicks = 0
	c.sourceRespawns = 0
	c.landmarkStores = 0

	return stats
}

// WindowTicks returns the number of ticks per window.
func (c *Collector) WindowTicks() int32 {
	return c.windowTicks
}
