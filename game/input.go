package game

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput processes keyboard input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}

	// Debug mode toggle
	if rl.IsKeyPressed(rl.KeyD) {
		g.debugMode = !g.debugMode
		if g.debugMode {
			g.showSources = true
		}
	}

	// Debug sub-options (only when debug mode is active)
	if g.debugMode {
		if rl.IsKeyPressed(rl.KeyS) {
			g.showSources = !g.showSources
		}
		if rl.IsKeyPressed(rl.KeyE) {
			g.showSensors = !g.showSensors
		}
		if rl.IsKeyPressed(rl.KeyL) {
			g.showLandmarks = !g.showLandmarks
		}
	}

	// Tuning panel toggle
	if rl.IsKeyPressed(rl.KeyT) && g.panel != nil {
		g.panel.Visible = !g.panel.Visible
	}

	if rl.IsKeyPressed(rl.KeyR) {
		g.Reset(time.Now().UnixNano())
	}
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	if g.panel != nil {
		g.panel.SetPosition(w-270, 40)
	}
}
