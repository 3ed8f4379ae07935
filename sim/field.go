// Package sim implements the nutrient field and the agent that forages
// it: a continuous 2D environment synthesized from drifting Gaussian
// sources, and a two-sensor gradient follower with an energy budget.
package sim

import (
	"math"
	"math/rand"
)

// Source is one Gaussian nutrient blob. Sources are value records: a
// decayed source is replaced wholesale, never resurrected in place.
type Source struct {
	X, Y      float64
	Radius    float64
	Intensity float64
}

// Field is the bounded nutrient environment. Concentration anywhere is
// the clamped sum of every source's Gaussian contribution.
type Field struct {
	Width  float64
	Height float64

	// Sources holds between MinSources and MaxSources entries for the
	// field's entire lifetime; Advance replaces exhausted entries
	// instead of removing them.
	Sources []Source

	params   FieldParams
	rng      *rand.Rand
	respawns int
}

// NewField creates a field with a random number of random sources.
func NewField(width, height float64, params FieldParams, rng *rand.Rand) *Field {
	f := &Field{
		Width:  width,
		Height: height,
		params: params,
		rng:    rng,
	}

	n := params.MinSources + rng.Intn(params.MaxSources-params.MinSources+1)
	f.Sources = make([]Source, n)
	for i := range f.Sources {
		f.Sources[i] = f.randomSource()
	}
	return f
}

// Params returns the field tuning in effect.
func (f *Field) Params() FieldParams { return f.params }

// SetParams replaces the field tuning. Existing sources are untouched;
// the new tuning governs subsequent Advance calls and replacements.
func (f *Field) SetParams(p FieldParams) { f.params = p }

func (f *Field) randomSource() Source {
	p := f.params
	return Source{
		X:         f.rng.Float64() * f.Width,
		Y:         f.rng.Float64() * f.Height,
		Radius:    p.RadiusMin + f.rng.Float64()*(p.RadiusMax-p.RadiusMin),
		Intensity: p.IntensityMin + f.rng.Float64()*(p.IntensityMax-p.IntensityMin),
	}
}

// Concentration returns the nutrient level at (x, y) in [0, 1].
// Overlapping sources sum and saturate at 1: the clamp bounds sensor
// readings to a normalized interval regardless of source density.
func (f *Field) Concentration(x, y float64) float64 {
	var c float64
	for i := range f.Sources {
		s := &f.Sources[i]
		dx := x - s.X
		dy := y - s.Y
		c += s.Intensity * math.Exp(-(dx*dx+dy*dy)/(2*s.Radius*s.Radius))
	}
	return clamp(c, 0, 1)
}

// Advance moves the field one tick: every source decays, drifts, is
// clamped back into bounds, and is replaced with a fresh random source
// once its intensity falls below the respawn threshold. Replacement is
// immediate; queries later in the same tick see the new source.
func (f *Field) Advance() {
	p := f.params
	for i := range f.Sources {
		s := &f.Sources[i]

		s.Intensity *= p.DecayFactor

		s.X = clamp(s.X+f.uniform(-p.BrownianStep, p.BrownianStep), 0, f.Width)
		s.Y = clamp(s.Y+f.uniform(-p.BrownianStep, p.BrownianStep), 0, f.Height)

		if s.Intensity < p.RespawnThreshold {
			f.Sources[i] = f.randomSource()
			f.respawns++
		}
	}
}

// TotalRespawns returns the cumulative number of source replacements.
func (f *Field) TotalRespawns() int { return f.respawns }

// Bounds returns the field's domain for position clamping.
func (f *Field) Bounds() Bounds {
	return Bounds{Width: f.Width, Height: f.Height}
}

func (f *Field) uniform(lo, hi float64) float64 {
	return lo + f.rng.Float64()*(hi-lo)
}
