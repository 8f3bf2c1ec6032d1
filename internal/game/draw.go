package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/carousel/internal/config"
	"github.com/iburimskiy/carousel/internal/geometry"
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 16, G: 18, B: 28, A: 255})

	g.drawPlatform(screen)
	g.drawHub(screen)
	g.drawHorses(screen)

	g.drawButtons(screen)
	g.drawSlider(screen)
	g.drawStatus(screen)
}

func (g *Game) drawPlatform(screen *ebiten.Image) {
	r := float32(g.cfg.PlatformRadius)
	vector.DrawFilledCircle(screen, centerX, centerY, r, color.RGBA{R: 46, G: 38, B: 58, A: 255}, true)
	vector.StrokeCircle(screen, centerX, centerY, r, 3, color.RGBA{R: 150, G: 130, B: 90, A: 255}, true)

	// Inner deck ring the horses ride on.
	vector.StrokeCircle(screen, centerX, centerY, float32(g.cfg.OrbitRadius), 1,
		color.RGBA{R: 90, G: 80, B: 100, A: 255}, true)
}

func (g *Game) drawHub(screen *ebiten.Image) {
	angle := g.driver.CurrentAngle()

	// Spoke from the center makes the hub's rotation visible.
	sx, sy := geometry.HubMarker(centerX, centerY, angle, hubRadius*2.5)
	vector.StrokeLine(screen, centerX, centerY, float32(sx), float32(sy), 3,
		color.RGBA{R: 220, G: 200, B: 120, A: 255}, true)

	vector.DrawFilledCircle(screen, centerX, centerY, hubRadius, color.RGBA{R: 170, G: 150, B: 100, A: 255}, true)
	vector.StrokeCircle(screen, centerX, centerY, hubRadius, 2, color.RGBA{R: 230, G: 215, B: 160, A: 255}, true)
}

func (g *Game) drawHorses(screen *ebiten.Image) {
	angle := g.driver.CurrentAngle()
	w := g.cfg.HorseWidth
	h := g.cfg.HorseHeight

	for i := 0; i < g.ring.Count; i++ {
		p := g.ring.HorsePlacement(i, centerX, centerY, angle)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-w/2, -h/2)
		op.GeoM.Rotate(p.FacingDeg * math.Pi / 180)
		op.GeoM.Translate(p.X, p.Y)

		// Tint each horse with its own hue around the wheel.
		r, gr, b := hsvToRgb(float64(i)*g.ring.SpacingDeg(), 0.65, 0.95)
		op.ColorScale.Scale(float32(r)/255, float32(gr)/255, float32(b)/255, 1)

		screen.DrawImage(g.horseImg, op)

		// Outline so horses read against the deck.
		c := geometry.Corners(p, w, h)
		outline := color.RGBA{R: 20, G: 20, B: 30, A: 255}
		for j := range c {
			k := (j + 1) % len(c)
			vector.StrokeLine(screen, float32(c[j][0]), float32(c[j][1]),
				float32(c[k][0]), float32(c[k][1]), 1, outline, true)
		}
	}
}

func (g *Game) drawButtons(screen *ebiten.Image) {
	drawOne := func(b *button, label string, base color.RGBA) {
		bg := base
		if b.pressed {
			bg.R -= 30
			bg.G -= 30
			bg.B -= 30
		} else if b.hovered {
			bg.R += 20
			bg.G += 20
			bg.B += 20
		}
		vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), bg, false)
		vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 2,
			color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

		textWidth := len(label) * 8
		ebitenutil.DebugPrintAt(screen, label, b.x+(b.w-textWidth)/2, b.y+(b.h-16)/2)
	}

	drawOne(&g.startButton, "Start Ride", color.RGBA{R: 60, G: 120, B: 80, A: 255})
	drawOne(&g.stopButton, "STOP", color.RGBA{R: 150, G: 50, B: 50, A: 255})
}

func (g *Game) drawSlider(screen *ebiten.Image) {
	// Track
	vector.DrawFilledRect(screen, sliderX, sliderY, sliderWidth, sliderHeight,
		color.RGBA{R: 25, G: 30, B: 40, A: 255}, false)
	vector.StrokeRect(screen, sliderX, sliderY, sliderWidth, sliderHeight, 2,
		color.RGBA{R: 70, G: 80, B: 100, A: 255}, false)

	steps := config.MaxRevolutions - config.MinRevolutions
	progress := float64(g.revolutions-config.MinRevolutions) / float64(steps)

	// Filled portion and knob
	vector.DrawFilledRect(screen, sliderX, sliderY, float32(progress*sliderWidth), sliderHeight,
		color.RGBA{R: 80, G: 100, B: 140, A: 255}, false)

	knobX := sliderX + float32(progress*sliderWidth)
	knobColor := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if g.sliderHovered || g.sliderDragging {
		knobColor = color.RGBA{R: 220, G: 230, B: 255, A: 255}
	}
	vector.DrawFilledCircle(screen, knobX, sliderY+sliderHeight/2, knobRadius, knobColor, true)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Revolutions: %d", g.revolutions),
		sliderX+sliderWidth+16, sliderY)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	var status string
	if g.driver.IsRunning() {
		status = fmt.Sprintf("Ride in progress - %s left", formatDuration(g.driver.Remaining()))
	} else {
		status = "Stopped"
	}

	counter := counterText(g.cfg.Counter, g.driver.CompletedRevolutions(), g.driver.TotalRevolutions())

	ebitenutil.DebugPrintAt(screen, status, 20, 116)
	ebitenutil.DebugPrintAt(screen, counter, 20, 132)
	ebitenutil.DebugPrintAt(screen, "Space: start, S: stop, Esc/Q: quit", 20, config.WindowHeight-24)
}

// counterText renders the revolution counter. In fraction mode the
// "/total" part only appears once a ride has a target; before the first
// ride (and after an emergency stop) total is zero and showing "0/0"
// would be noise.
func counterText(format string, completed, total int) string {
	if format == config.CounterCompleted || total == 0 {
		return fmt.Sprintf("Revolutions: %d", completed)
	}
	return fmt.Sprintf("Revolutions: %d/%d", completed, total)
}
