package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a stats window.
type WindowStats struct {
	WindowStartTick int32 `csv:"-"`
	WindowEndTick   int32 `csv:"window_end"`
	Ticks           int   `csv:"ticks"`

	// Agent energy over the window
	EnergyMean float64 `csv:"energy_mean"`
	EnergyStd  float64 `csv:"energy_std"`
	EnergyP10  float64 `csv:"energy_p10"`
	EnergyP50  float64 `csv:"energy_p50"`
	EnergyP90  float64 `csv:"energy_p90"`

	// Control-law error (sensed mean minus target)
	ErrorMean    float64 `csv:"error_mean"`
	ErrorStd     float64 `csv:"error_std"`
	AbsErrorMean float64 `csv:"abs_error_mean"`

	// Movement
	SpeedMean float64 `csv:"speed_mean"`
	SpeedMax  float64 `csv:"speed_max"`

	// Sensed concentration
	SenseMean float64 `csv:"sense_mean"`

	// Events during window
	ExhaustedTicks int `csv:"exhausted_ticks"`
	SatedTicks     int `csv:"sated_ticks"`
	SourceRespawns int `csv:"source_respawns"`
	LandmarkStores int `csv:"landmark_stores"`

	// Landmark memory state at window end
	LandmarkCount       int     `csv:"landmark_count"`
	LandmarkReliability float64 `csv:"landmark_reliability"`
}

// summarize returns mean, stddev, and the 10/50/90 percentiles of values.
// Zeroes when empty; stddev is 0 for a single sample.
func summarize(values []float64) (mean, std, p10, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0
	}

	mean = stat.Mean(values, nil)
	if n > 1 {
		std = stat.StdDev(values, nil)
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)

	return mean, std, p10, p50, p90
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"ticks", s.Ticks,
		"energy_mean", s.EnergyMean,
		"energy_std", s.EnergyStd,
		"energy_p10", s.EnergyP10,
		"energy_p50", s.EnergyP50,
		"energy_p90", s.EnergyP90,
		"error_mean", s.ErrorMean,
		"error_std", s.ErrorStd,
		"abs_error_mean", s.AbsErrorMean,
		"speed_mean", s.SpeedMean,
		"speed_max", s.SpeedMax,
		"sense_mean", s.SenseMean,
		"exhausted_ticks", s.ExhaustedTicks,
		"sated_ticks", s.SatedTicks,
		"source_respawns", s.SourceRespawns,
		"landmark_stores", s.LandmarkStores,
		"landmark_count", s.LandmarkCount,
		"landmark_reliability", s.LandmarkReliability,
	)
}
