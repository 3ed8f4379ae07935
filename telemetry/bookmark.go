package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkExhaustion BookmarkType = "exhaustion"
	BookmarkRecovery   BookmarkType = "recovery"
	BookmarkSatedRun   BookmarkType = "sated_run"
	BookmarkStarvation BookmarkType = "starvation"
)

// Bookmark marks a notable episode in the agent's run.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Tick        int32        `csv:"tick"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector flags interesting windows: the agent running out of
// energy, recovering, holding its target, or starving outright.
type BookmarkDetector struct {
	wasExhausted bool
	wasStarving  bool

	// Fraction of a window's ticks that must be sated for a sated run.
	satedFraction float64
	// Mean energy below this marks a starvation window.
	starvationEnergy float64
}

// NewBookmarkDetector creates a detector with default thresholds.
func NewBookmarkDetector() *BookmarkDetector {
	return &BookmarkDetector{
		satedFraction:    0.8,
		starvationEnergy: 0.1,
	}
}

// Check analyzes the latest window and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	exhausted := stats.ExhaustedTicks > 0
	if exhausted && !bd.wasExhausted {
		bookmarks = append(bookmarks, Bookmark{
			Type: BookmarkExhaustion,
			Tick: stats.WindowEndTick,
			Description: fmt.Sprintf("agent exhausted for %d of %d ticks",
				stats.ExhaustedTicks, stats.Ticks),
		})
	}
	if !exhausted && bd.wasExhausted {
		bookmarks = append(bookmarks, Bookmark{
			Type: BookmarkRecovery,
			Tick: stats.WindowEndTick,
			Description: fmt.Sprintf("energy recovered to %.2f mean",
				stats.EnergyMean),
		})
	}
	bd.wasExhausted = exhausted

	if stats.Ticks > 0 {
		sated := float64(stats.SatedTicks) / float64(stats.Ticks)
		if sated >= bd.satedFraction {
			bookmarks = append(bookmarks, Bookmark{
				Type: BookmarkSatedRun,
				Tick: stats.WindowEndTick,
				Description: fmt.Sprintf("held target for %.0f%% of window",
					sated*100),
			})
		}
	}

	starving := stats.EnergyMean < bd.starvationEnergy && stats.Ticks > 0
	if starving && !bd.wasStarving {
		bookmarks = append(bookmarks, Bookmark{
			Type: BookmarkStarvation,
			Tick: stats.WindowEndTick,
			Description: fmt.Sprintf("mean energy down to %.3f",
				stats.EnergyMean),
		})
	}
	bd.wasStarving = starving

	return bookmarks
}
