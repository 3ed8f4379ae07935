package sim

// FieldParams configures source generation and per-tick field dynamics.
// Pass a value at construction; the Field never reads global state.
type FieldParams struct {
	MinSources int
	MaxSources int

	RadiusMin    float64
	RadiusMax    float64
	IntensityMin float64
	IntensityMax float64

	DecayFactor      float64 // intensity multiplier per tick, < 1
	BrownianStep     float64 // max |drift| per axis per tick
	RespawnThreshold float64 // replace source below this intensity
}

// DefaultFieldParams returns the standard field tuning.
func DefaultFieldParams() FieldParams {
	return FieldParams{
		MinSources:       5,
		MaxSources:       10,
		RadiusMin:        5.0,
		RadiusMax:        15.0,
		IntensityMin:     0.5,
		IntensityMax:     1.0,
		DecayFactor:      0.995,
		BrownianStep:     0.5,
		RespawnThreshold: 0.05,
	}
}

// AgentParams configures the control law and metabolism.
// A value copy is held per agent so tests can vary tunables
// per-instance without cross-test leakage.
type AgentParams struct {
	Target         float64 // preferred mean concentration
	SensorDistance float64
	SensorAngle    float64 // radians off heading, left = +
	LearningRate   float64
	MaxSpeed       float64

	BaseCost         float64 // metabolic drain per tick at rest
	MoveCost         float64 // extra drain per unit of normalized speed
	IntakeRate       float64 // energy gain per unit of sensed mean
	CriticalEnergy   float64 // at or below this the agent is exhausted
	ExhaustionFactor float64 // speed multiplier when exhausted
}

// DefaultAgentParams returns the standard control-law tuning.
func DefaultAgentParams() AgentParams {
	return AgentParams{
		Target:           0.8,
		SensorDistance:   2.0,
		SensorAngle:      0.5,
		LearningRate:     0.15,
		MaxSpeed:         1.5,
		BaseCost:         0.0005,
		MoveCost:         0.0025,
		IntakeRate:       0.03,
		CriticalEnergy:   0.01,
		ExhaustionFactor: 0.5,
	}
}

// Bounds is the rectangular domain positions are clamped into.
type Bounds struct {
	Width  float64
	Height float64
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
