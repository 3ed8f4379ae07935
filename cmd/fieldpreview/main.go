// Nutrient field preview tool - interactive visualization with sliders.
//
// Usage: go run ./cmd/fieldpreview
package main

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/protozoa/sim"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 512
	gridSize     = 128
	panelWidth   = windowWidth - previewSize - 30

	worldSize = 100.0
)

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Nutrient Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	params := sim.DefaultFieldParams()
	seed := time.Now().UnixNano()

	field := sim.NewField(worldSize, worldSize, params, rand.New(rand.NewSource(seed)))

	grid := make([]float64, gridSize*gridSize)
	img := rl.GenImageColor(gridSize, gridSize, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureFilter(texture, rl.FilterBilinear)
	defer rl.UnloadTexture(texture)

	animating := true
	needsReseed := false

	sampleField(field, grid)
	updateTexture(texture, grid)

	for !rl.WindowShouldClose() {
		if needsReseed {
			field = sim.NewField(worldSize, worldSize, params, rand.New(rand.NewSource(seed)))
			needsReseed = false
		}
		field.SetParams(params)

		if animating {
			field.Advance()
		}
		sampleField(field, grid)
		updateTexture(texture, grid)

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Preview on the left
		rl.DrawTexturePro(
			texture,
			rl.Rectangle{X: 0, Y: 0, Width: gridSize, Height: gridSize},
			rl.Rectangle{X: 10, Y: 10, Width: previewSize, Height: previewSize},
			rl.Vector2{}, 0, rl.White,
		)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("sources: %d | respawns: %d", len(field.Sources), field.TotalRespawns()),
			10, previewSize+20, 16, rl.DarkGray)

		// Parameter panel on the right
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Nutrient Field Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		reseedChanged := false

		params.DecayFactor = slider(panelX, &panelY, "Decay factor (intensity per tick)",
			params.DecayFactor, 0.9, 1.0, "%.4f", nil)
		params.BrownianStep = slider(panelX, &panelY, "Brownian step (drift per axis)",
			params.BrownianStep, 0.0, 2.0, "%.2f", nil)
		params.RespawnThreshold = slider(panelX, &panelY, "Respawn threshold",
			params.RespawnThreshold, 0.005, 0.3, "%.3f", nil)

		params.RadiusMin = slider(panelX, &panelY, "Radius min",
			params.RadiusMin, 1.0, params.RadiusMax, "%.1f", &reseedChanged)
		params.RadiusMax = slider(panelX, &panelY, "Radius max",
			params.RadiusMax, params.RadiusMin, 30.0, "%.1f", &reseedChanged)
		params.IntensityMin = slider(panelX, &panelY, "Intensity min",
			params.IntensityMin, 0.1, params.IntensityMax, "%.2f", &reseedChanged)
		params.IntensityMax = slider(panelX, &panelY, "Intensity max",
			params.IntensityMax, params.IntensityMin, 1.0, "%.2f", &reseedChanged)

		minSources := slider(panelX, &panelY, "Min sources",
			float64(params.MinSources), 1, float64(params.MaxSources), "%.0f", &reseedChanged)
		params.MinSources = int(minSources)
		maxSources := slider(panelX, &panelY, "Max sources",
			float64(params.MaxSources), float64(params.MinSources), 20, "%.0f", &reseedChanged)
		params.MaxSources = int(maxSources)

		if reseedChanged {
			needsReseed = true
		}

		panelY += 10
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(animating, "Stop", "Animate")) {
			animating = !animating
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Step") {
			field.Advance()
		}
		panelY += 40

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			seed = time.Now().UnixNano()
			needsReseed = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = sim.DefaultFieldParams()
			needsReseed = true
		}

		rl.EndDrawing()
	}
}

// slider draws a labeled SliderBar row and returns the new value. When
// changed is non-nil it is set on any edit, for params that need a
// field reseed.
func slider(x float32, y *float32, label string, value, min, max float64, format string, changed *bool) float64 {
	rl.DrawText(label, int32(x), int32(*y), 14, rl.Gray)
	*y += 18

	v := gui.SliderBar(
		rl.Rectangle{X: x, Y: *y, Width: float32(panelWidth - 80), Height: 20},
		fmt.Sprintf(format, min), fmt.Sprintf(format, max),
		float32(value), float32(min), float32(max),
	)
	rl.DrawText(fmt.Sprintf(format, v), int32(x+float32(panelWidth-70)), int32(*y+2), 16, rl.DarkGray)
	*y += 32

	if changed != nil && float64(v) != value {
		*changed = true
	}
	return float64(v)
}

func toggleText(cond bool, onTrue, onFalse string) string {
	if cond {
		return onTrue
	}
	return onFalse
}

// sampleField fills grid with concentrations over the whole dish.
func sampleField(f *sim.Field, grid []float64) {
	for gy := 0; gy < gridSize; gy++ {
		wy := (float64(gy) + 0.5) / gridSize * f.Height
		for gx := 0; gx < gridSize; gx++ {
			wx := (float64(gx) + 0.5) / gridSize * f.Width
			grid[gy*gridSize+gx] = f.Concentration(wx, wy)
		}
	}
}

func updateTexture(texture rl.Texture2D, grid []float64) {
	pixels := make([]color.RGBA, len(grid))
	for i, v := range grid {
		// Dark blue through green to pale yellow
		var r, g, b uint8
		if v < 0.5 {
			t := v / 0.5
			r = uint8(10 + t*30)
			g = uint8(20 + t*140)
			b = uint8(70 - t*20)
		} else {
			t := (v - 0.5) / 0.5
			r = uint8(40 + t*200)
			g = uint8(160 + t*85)
			b = uint8(50 + t*100)
		}
		pixels[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	rl.UpdateTexture(texture, pixels)
}
