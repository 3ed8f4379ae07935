// Package ui renders the HUD and the parameter tuning panel.
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title string

	// Agent state
	Sense        float64
	Target       float64
	Error        float64
	Speed        float64
	Energy       float64
	TempGradient float64

	// World state
	SourceCount   int
	LandmarkCount int

	// Loop state
	Tick   int32
	Steps  int
	FPS    int32
	Paused bool
}

// HUD renders the main heads-up display.
type HUD struct{}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	// Sensor and control readout
	rl.DrawText(
		fmt.Sprintf("Sens: %.3f | Tgt: %.2f | Err: %+.3f | Spd: %.2f | Egy: %.2f",
			data.Sense, data.Target, data.Error, data.Speed, data.Energy),
		10, 35, 16, rl.LightGray,
	)

	gradText := fmt.Sprintf("dSens: %+.4f", data.TempGradient)
	gradColor := rl.Gray
	if data.TempGradient > 0.001 {
		gradColor = rl.Green
	} else if data.TempGradient < -0.001 {
		gradColor = rl.Orange
	}
	rl.DrawText(gradText, 10, 55, 14, gradColor)

	rl.DrawText(
		fmt.Sprintf("Sources: %d | Landmarks: %d", data.SourceCount, data.LandmarkCount),
		10, 73, 14, rl.LightGray,
	)

	rl.DrawText(
		fmt.Sprintf("Tick: %d | Steps: %dx | FPS: %d", data.Tick, data.Steps, data.FPS),
		10, 91, 14, rl.LightGray,
	)

	statusText := "Running"
	statusColor := rl.Green
	if data.Paused {
		statusText = "PAUSED"
		statusColor = rl.Yellow
	}
	rl.DrawText(statusText, 10, 109, 14, statusColor)

	// Energy bar under the readout
	drawEnergyBar(10, 130, 160, 8, data.Energy)
}

func drawEnergyBar(x, y, w, h int32, energy float64) {
	rl.DrawRectangle(x, y, w, h, rl.Color{R: 40, G: 40, B: 48, A: 255})
	fill := int32(float64(w) * energy)
	c := rl.Color{R: 90, G: 220, B: 120, A: 255}
	if energy < 0.3 {
		c = rl.Color{R: 230, G: 160, B: 60, A: 255}
	}
	rl.DrawRectangle(x, y, fill, h, c)
	rl.DrawRectangleLines(x, y, w, h, rl.Gray)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenWidth, screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}
