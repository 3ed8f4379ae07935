package sim

import (
	"math"
	"math/rand"
)

// Sampler answers point concentration queries. *Field implements it;
// tests substitute fixed-value fields.
type Sampler interface {
	Concentration(x, y float64) float64
}

// Agent is the single foraging organism. It steers to minimize the
// deviation between its mean sensed concentration and a fixed target,
// while an energy scalar integrates metabolic cost against intake.
type Agent struct {
	X, Y  float64
	Angle float64 // heading in [0, 2*pi)
	Speed float64 // recomputed each tick from sensed error

	// Last sensor readings, overwritten by Sense.
	ValL float64
	ValR float64

	// Energy in [0, 1]; the only persistent internal state beyond
	// position and heading.
	Energy float64

	// MeanSense and TempGradient track the sensed mean and its per-tick
	// delta for display and telemetry; they do not feed the control law.
	MeanSense    float64
	TempGradient float64

	params AgentParams
	rng    *rand.Rand
}

// NewAgent creates an agent at (x, y) with a random initial heading
// and full energy.
func NewAgent(x, y float64, params AgentParams, rng *rand.Rand) *Agent {
	return &Agent{
		X:      x,
		Y:      y,
		Angle:  rng.Float64() * 2 * math.Pi,
		Energy: 1.0,
		params: params,
		rng:    rng,
	}
}

// Params returns the tunables in effect.
func (a *Agent) Params() AgentParams { return a.params }

// SetParams replaces the tunables, taking effect next tick.
func (a *Agent) SetParams(p AgentParams) { a.params = p }

// Error returns the signed deviation of the last sensed mean from the
// target; negative means under-target ("hungry").
func (a *Agent) Error() float64 {
	return (a.ValL+a.ValR)/2 - a.params.Target
}

// SensorPositions returns the left and right sample points for the
// current pose.
func (a *Agent) SensorPositions() (lx, ly, rx, ry float64) {
	lx, ly = a.sensorPoint(+a.params.SensorAngle)
	rx, ry = a.sensorPoint(-a.params.SensorAngle)
	return lx, ly, rx, ry
}

func (a *Agent) sensorPoint(offset float64) (x, y float64) {
	theta := a.Angle + offset
	x = a.X + a.params.SensorDistance*math.Cos(theta)
	y = a.Y + a.params.SensorDistance*math.Sin(theta)
	return x, y
}

// Sense samples the field at the two sensor points and stores the
// readings. It never mutates the field.
func (a *Agent) Sense(f Sampler) {
	lx, ly, rx, ry := a.SensorPositions()
	a.ValL = f.Concentration(lx, ly)
	a.ValR = f.Concentration(rx, ry)
}

// Step runs one control update from the last sensed values: heading,
// speed, metabolism, then position, clamped into b.
//
// Heading noise scales with |error|, so a sated agent moves almost
// deterministically while a starved one tumbles, escaping spots where
// the left-right gradient vanishes.
func (a *Agent) Step(b Bounds) {
	p := a.params

	mean := (a.ValL + a.ValR) / 2
	err := mean - p.Target
	gradient := a.ValL - a.ValR

	a.TempGradient = mean - a.MeanSense
	a.MeanSense = mean

	noise := a.uniform(-0.5, 0.5) * math.Abs(err)
	a.Angle += -p.LearningRate*err*gradient + noise
	a.Angle = wrapAngle(a.Angle)

	a.Speed = p.MaxSpeed * math.Abs(err)

	cost := p.BaseCost + p.MoveCost*(a.Speed/p.MaxSpeed)
	intake := p.IntakeRate * mean
	a.Energy = clamp(a.Energy-cost+intake, 0, 1)

	// Exhausted agents slow down but never fully stop turning over.
	if a.Energy <= p.CriticalEnergy {
		a.Speed *= p.ExhaustionFactor
	}

	a.X = clamp(a.X+a.Speed*math.Cos(a.Angle), 0, b.Width)
	a.Y = clamp(a.Y+a.Speed*math.Sin(a.Angle), 0, b.Height)
}

// Exhausted reports whether energy is at or below the critical level.
func (a *Agent) Exhausted() bool {
	return a.Energy <= a.params.CriticalEnergy
}

func (a *Agent) uniform(lo, hi float64) float64 {
	return lo + a.rng.Float64()*(hi-lo)
}

// wrapAngle reduces an angle into [0, 2*pi). The wrap is always into a
// positive turn; the convention must stay fixed for deterministic tests.
func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
