package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/protozoa/sim"
)

const (
	panelWidth   = 260
	sliderHeight = 18
	rowStride    = 44
)

// TuningPanel exposes the control-law tunables as live sliders.
// Metabolism stays fixed; only the steering side is adjustable.
type TuningPanel struct {
	Visible bool

	x, y float32
}

// NewTuningPanel creates a hidden panel anchored at (x, y).
func NewTuningPanel(x, y float32) *TuningPanel {
	return &TuningPanel{x: x, y: y}
}

// SetPosition moves the panel anchor.
func (p *TuningPanel) SetPosition(x, y float32) {
	p.x = x
	p.y = y
}

// Draw renders the panel and returns the (possibly edited) params.
func (p *TuningPanel) Draw(params sim.AgentParams) sim.AgentParams {
	rl.DrawRectangle(int32(p.x)-10, int32(p.y)-10, panelWidth+20, 6*rowStride+60, rl.Fade(rl.Black, 0.7))
	rl.DrawText("Tuning [T]", int32(p.x), int32(p.y), 16, rl.White)

	y := p.y + 26

	params.Target = p.slider(&y, "Target concentration", params.Target, 0.1, 1.0, "%.2f")
	params.LearningRate = p.slider(&y, "Turn gain", params.LearningRate, 0.01, 1.0, "%.2f")
	params.SensorDistance = p.slider(&y, "Sensor distance", params.SensorDistance, 0.5, 8.0, "%.1f")
	params.SensorAngle = p.slider(&y, "Sensor half-angle", params.SensorAngle, 0.1, 1.5, "%.2f")
	params.MaxSpeed = p.slider(&y, "Max speed", params.MaxSpeed, 0.1, 4.0, "%.1f")

	if gui.Button(rl.Rectangle{X: p.x, Y: y + 6, Width: 100, Height: 26}, "Defaults") {
		d := sim.DefaultAgentParams()
		params.Target = d.Target
		params.LearningRate = d.LearningRate
		params.SensorDistance = d.SensorDistance
		params.SensorAngle = d.SensorAngle
		params.MaxSpeed = d.MaxSpeed
	}

	return params
}

func (p *TuningPanel) slider(y *float32, label string, value, min, max float64, format string) float64 {
	rl.DrawText(label, int32(p.x), int32(*y), 12, rl.LightGray)
	*y += 16

	v := gui.SliderBar(
		rl.Rectangle{X: p.x, Y: *y, Width: panelWidth - 50, Height: sliderHeight},
		"", "",
		float32(value), float32(min), float32(max),
	)
	rl.DrawText(fmt.Sprintf(format, v), int32(p.x+panelWidth-42), int32(*y+2), 14, rl.White)

	*y += rowStride - 16
	return float64(v)
}
