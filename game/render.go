package game

import (
	"fmt"
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/protozoa/sim"
	"github.com/pthm-cable/protozoa/ui"
)

// fieldRenderer draws the nutrient field as a coarse texture stretched
// over the window. One texel covers a 4x4 pixel block; bilinear
// filtering smooths the result.
type fieldRenderer struct {
	texture rl.Texture2D
	pixels  []color.RGBA
	gridW   int32
	gridH   int32
}

func newFieldRenderer(screenW, screenH int32) *fieldRenderer {
	gridW := screenW / 4
	gridH := screenH / 4

	img := rl.GenImageColor(int(gridW), int(gridH), rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureFilter(texture, rl.FilterBilinear)

	return &fieldRenderer{
		texture: texture,
		pixels:  make([]color.RGBA, gridW*gridH),
		gridW:   gridW,
		gridH:   gridH,
	}
}

// Update resamples the field into the texture.
func (fr *fieldRenderer) Update(f *sim.Field) {
	for gy := int32(0); gy < fr.gridH; gy++ {
		wy := (float64(gy) + 0.5) / float64(fr.gridH) * f.Height
		for gx := int32(0); gx < fr.gridW; gx++ {
			wx := (float64(gx) + 0.5) / float64(fr.gridW) * f.Width
			c := f.Concentration(wx, wy)
			fr.pixels[gy*fr.gridW+gx] = nutrientColor(c)
		}
	}
	rl.UpdateTexture(fr.texture, fr.pixels)
}

// Draw stretches the field texture over the whole window.
func (fr *fieldRenderer) Draw(screenW, screenH float32) {
	src := rl.Rectangle{X: 0, Y: 0, Width: float32(fr.gridW), Height: float32(fr.gridH)}
	dst := rl.Rectangle{X: 0, Y: 0, Width: screenW, Height: screenH}
	rl.DrawTexturePro(fr.texture, src, dst, rl.Vector2{}, 0, rl.White)
}

func (fr *fieldRenderer) Unload() {
	rl.UnloadTexture(fr.texture)
}

// nutrientColor maps concentration in [0, 1] to a deep-water-to-bloom
// ramp: near-black blue through teal and green up to pale yellow.
func nutrientColor(v float64) color.RGBA {
	var r, g, b uint8
	switch {
	case v < 0.25:
		t := v / 0.25
		r = uint8(8 + t*8)
		g = uint8(12 + t*48)
		b = uint8(36 + t*54)
	case v < 0.5:
		t := (v - 0.25) / 0.25
		r = uint8(16 + t*14)
		g = uint8(60 + t*80)
		b = uint8(90 - t*10)
	case v < 0.75:
		t := (v - 0.5) / 0.25
		r = uint8(30 + t*90)
		g = uint8(140 + t*60)
		b = uint8(80 - t*30)
	default:
		t := (v - 0.75) / 0.25
		r = uint8(120 + t*120)
		g = uint8(200 + t*45)
		b = uint8(50 + t*90)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Draw renders one frame. Safe to call only in graphical mode.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	g.fieldRenderer.Update(g.field)
	g.fieldRenderer.Draw(g.screenWidth, g.screenHeight)

	if g.debugMode {
		g.drawDebugOverlays()
	}

	g.drawAgent()

	g.drawHUD()

	if g.panel != nil && g.panel.Visible {
		g.agent.SetParams(g.panel.Draw(g.agent.Params()))
	}

	rl.EndDrawing()
}

// worldToScreen maps world coordinates to pixels.
func (g *Game) worldToScreen(x, y float64) (float32, float32) {
	sx := float32(x / g.field.Width * float64(g.screenWidth))
	sy := float32(y / g.field.Height * float64(g.screenHeight))
	return sx, sy
}

// worldScale returns pixels per world unit along x.
func (g *Game) worldScale() float32 {
	return g.screenWidth / float32(g.field.Width)
}

func (g *Game) drawAgent() {
	x, y := g.worldToScreen(g.agent.X, g.agent.Y)
	scale := g.worldScale()

	// Body: oriented triangle, nose pointing along the heading.
	size := 1.2 * scale
	bodyColor := rl.Color{R: 240, G: 240, B: 255, A: 255}
	if g.agent.Exhausted() {
		bodyColor = rl.Color{R: 255, G: 90, B: 90, A: 255}
	}
	drawOrientedTriangle(x, y, size, float32(g.agent.Angle), bodyColor)

	// Energy ring around the body.
	ringColor := rl.Color{R: 90, G: 220, B: 120, A: 200}
	if g.agent.Energy < 0.3 {
		ringColor = rl.Color{R: 230, G: 160, B: 60, A: 200}
	}
	rl.DrawCircleLines(int32(x), int32(y), size*1.6, ringColor)
	endAngle := float32(360 * g.agent.Energy)
	rl.DrawCircleSector(rl.Vector2{X: x, Y: y}, size*1.6,
		-90, endAngle-90, 24, rl.Color{R: ringColor.R, G: ringColor.G, B: ringColor.B, A: 60})

	if g.debugMode && g.showSensors {
		lx, ly, rx, ry := g.agent.SensorPositions()
		slx, sly := g.worldToScreen(lx, ly)
		srx, sry := g.worldToScreen(rx, ry)
		rl.DrawCircleV(rl.Vector2{X: slx, Y: sly}, 3, rl.SkyBlue)
		rl.DrawCircleV(rl.Vector2{X: srx, Y: sry}, 3, rl.Pink)
		rl.DrawLineV(rl.Vector2{X: x, Y: y}, rl.Vector2{X: slx, Y: sly}, rl.Fade(rl.SkyBlue, 0.5))
		rl.DrawLineV(rl.Vector2{X: x, Y: y}, rl.Vector2{X: srx, Y: sry}, rl.Fade(rl.Pink, 0.5))
	}
}

// drawOrientedTriangle draws a triangle centered at (x, y) pointing
// along angle.
func drawOrientedTriangle(x, y, size, angle float32, c rl.Color) {
	nose := rl.Vector2{
		X: x + size*float32(math.Cos(float64(angle))),
		Y: y + size*float32(math.Sin(float64(angle))),
	}
	left := rl.Vector2{
		X: x + size*0.7*float32(math.Cos(float64(angle)+2.5)),
		Y: y + size*0.7*float32(math.Sin(float64(angle)+2.5)),
	}
	right := rl.Vector2{
		X: x + size*0.7*float32(math.Cos(float64(angle)-2.5)),
		Y: y + size*0.7*float32(math.Sin(float64(angle)-2.5)),
	}
	// Raylib culls back faces; vertices must wind counterclockwise.
	rl.DrawTriangle(nose, right, left, c)
}

func (g *Game) drawDebugOverlays() {
	if g.showSources {
		for _, s := range g.field.Sources {
			x, y := g.worldToScreen(s.X, s.Y)
			radius := float32(s.Radius) * g.worldScale()
			alpha := float32(s.Intensity) * 0.8
			rl.DrawCircleLines(int32(x), int32(y), radius, rl.Fade(rl.Yellow, alpha))
			rl.DrawCircleV(rl.Vector2{X: x, Y: y}, 2, rl.Fade(rl.Yellow, alpha))
		}
	}

	if g.showLandmarks {
		for _, l := range g.mem.Landmarks() {
			x, y := g.worldToScreen(l.X, l.Y)
			alpha := float32(l.Reliability)
			rl.DrawCircleLines(int32(x), int32(y), 8, rl.Fade(rl.Purple, alpha))
			rl.DrawText(fmt.Sprintf("%.2f", l.Value()), int32(x)+10, int32(y)-6, 10, rl.Fade(rl.Purple, alpha))
		}
	}

	g.drawDebugMenu()
}

func (g *Game) drawDebugMenu() {
	x := int32(10)
	y := int32(g.screenHeight) - 110

	rl.DrawText("DEBUG [D]", x, y, 14, rl.Yellow)
	y += 18

	entries := []struct {
		key   string
		label string
		on    bool
	}{
		{"S", "sources", g.showSources},
		{"E", "sensors", g.showSensors},
		{"L", "landmarks", g.showLandmarks},
	}
	for _, e := range entries {
		c := rl.Gray
		state := "off"
		if e.on {
			c = rl.Green
			state = "on"
		}
		rl.DrawText(fmt.Sprintf("[%s] %s: %s", e.key, e.label, state), x, y, 12, c)
		y += 14
	}
}

func (g *Game) drawHUD() {
	g.hud.Draw(ui.HUDData{
		Title:         "Protozoa",
		Sense:         g.agent.MeanSense,
		Target:        g.agent.Params().Target,
		Error:         g.agent.Error(),
		Speed:         g.agent.Speed,
		Energy:        g.agent.Energy,
		TempGradient:  g.agent.TempGradient,
		Tick:          g.tick,
		Steps:         g.stepsPerUpdate,
		FPS:           rl.GetFPS(),
		Paused:        g.paused,
		SourceCount:   len(g.field.Sources),
		LandmarkCount: g.mem.Count(),
	})

	g.hud.DrawControls(int32(g.screenWidth), int32(g.screenHeight),
		"SPACE pause | <> speed | D debug | T tuning | R reset | F11 fullscreen")
}
