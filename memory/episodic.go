// Package memory implements the agent's episodic landmark store:
// remembered high-nutrient locations with reliability that decays when
// they go unvisited. The store is observational; it feeds overlays and
// telemetry, not the control law.
package memory

// Landmark is one remembered high-nutrient location.
type Landmark struct {
	X, Y          float64
	PeakNutrient  float64
	LastVisitTick uint64
	VisitCount    uint64
	Reliability   float64
}

// Value returns the landmark's worth: peak nutrient weighted by
// reliability.
func (l *Landmark) Value() float64 {
	return l.PeakNutrient * l.Reliability
}

// DistanceSq returns the squared distance from the landmark to (x, y).
func (l *Landmark) DistanceSq(x, y float64) float64 {
	dx := l.X - x
	dy := l.Y - y
	return dx*dx + dy*dy
}

func (l *Landmark) refresh(nutrient float64, tick uint64) {
	if nutrient > l.PeakNutrient {
		l.PeakNutrient = nutrient
	}
	l.LastVisitTick = tick
	l.VisitCount++
	l.Reliability = 1.0
}

// Episodic is a bounded landmark store. When full, a new landmark
// evicts the least valuable entry only if it beats it.
type Episodic struct {
	landmarks []Landmark
	max       int
	visitRSq  float64 // squared visit radius
	decay     float64 // reliability multiplier per DecayAll
	stores    int
}

// NewEpisodic creates an empty store holding at most max landmarks.
// Positions within visitRadius of an existing landmark refresh it
// instead of creating a new one.
func NewEpisodic(max int, visitRadius, decay float64) *Episodic {
	return &Episodic{
		landmarks: make([]Landmark, 0, max),
		max:       max,
		visitRSq:  visitRadius * visitRadius,
		decay:     decay,
	}
}

// Count returns the number of stored landmarks.
func (e *Episodic) Count() int { return len(e.landmarks) }

// Stores returns the total number of new landmarks stored so far.
func (e *Episodic) Stores() int { return e.stores }

// Landmarks returns the stored landmarks for display. Callers must not
// retain the slice across mutations.
func (e *Episodic) Landmarks() []Landmark { return e.landmarks }

// MaybeStore records a nutrient observation at (x, y). Near an existing
// landmark it refreshes that landmark; otherwise it fills a free slot,
// or replaces the least valuable landmark when the observation beats it.
func (e *Episodic) MaybeStore(x, y, nutrient float64, tick uint64) {
	for i := range e.landmarks {
		if e.landmarks[i].DistanceSq(x, y) < e.visitRSq {
			e.landmarks[i].refresh(nutrient, tick)
			return
		}
	}

	fresh := Landmark{
		X:             x,
		Y:             y,
		PeakNutrient:  nutrient,
		LastVisitTick: tick,
		VisitCount:    1,
		Reliability:   1.0,
	}

	if len(e.landmarks) < e.max {
		e.landmarks = append(e.landmarks, fresh)
		e.stores++
		return
	}

	worst := 0
	for i := 1; i < len(e.landmarks); i++ {
		if e.landmarks[i].Value() < e.landmarks[worst].Value() {
			worst = i
		}
	}
	if nutrient > e.landmarks[worst].Value() {
		e.landmarks[worst] = fresh
		e.stores++
	}
}

// DecayAll ages every landmark and drops those whose reliability has
// collapsed.
func (e *Episodic) DecayAll() {
	kept := e.landmarks[:0]
	for _, l := range e.landmarks {
		l.Reliability *= e.decay
		if l.Reliability >= 0.01 {
			kept = append(kept, l)
		}
	}
	e.landmarks = kept
}

// Best returns the most valuable landmark, or false when empty.
func (e *Episodic) Best() (Landmark, bool) {
	if len(e.landmarks) == 0 {
		return Landmark{}, false
	}
	best := 0
	for i := 1; i < len(e.landmarks); i++ {
		if e.landmarks[i].Value() > e.landmarks[best].Value() {
			best = i
		}
	}
	return e.landmarks[best], true
}

// BestDistant returns the most valuable landmark at least minDistance
// away from (x, y), or false when none qualifies.
func (e *Episodic) BestDistant(x, y, minDistance float64) (Landmark, bool) {
	minSq := minDistance * minDistance
	found := false
	var best Landmark
	for _, l := range e.landmarks {
		if l.DistanceSq(x, y) < minSq {
			continue
		}
		if !found || l.Value() > best.Value() {
			best = l
			found = true
		}
	}
	return best, found
}

// MeanReliability returns the average reliability across landmarks,
// or 0 when empty.
func (e *Episodic) MeanReliability() float64 {
	if len(e.landmarks) == 0 {
		return 0
	}
	var sum float64
	for _, l := range e.landmarks {
		sum += l.Reliability
	}
	return sum / float64(len(e.landmarks))
}

// Clear removes all landmarks and resets the store counter.
func (e *Episodic) Clear() {
	e.landmarks = e.landmarks[:0]
	e.stores = 0
}
