// Package game is the Ebitengine front end of the carousel: it owns the
// window, the in-canvas controls and the render loop, and drives the
// ride state machine once per tick.
package game

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/carousel/internal/audio"
	"github.com/iburimskiy/carousel/internal/config"
	"github.com/iburimskiy/carousel/internal/geometry"
	"github.com/iburimskiy/carousel/internal/ride"
)

const (
	// Platform center in canvas coordinates. Offset downward to leave
	// room for the controls along the top.
	centerX = config.WindowWidth / 2
	centerY = 360

	// Control layout
	buttonWidth  = 120
	buttonHeight = 40
	startButtonX = 20
	startButtonY = 20
	stopButtonX  = 150
	stopButtonY  = 20

	sliderX      = 20
	sliderY      = 84
	sliderWidth  = 250
	sliderHeight = 16
	knobRadius   = 10

	hubRadius = 14
)

type button struct {
	x, y, w, h int
	hovered    bool
	pressed    bool
}

func (b *button) contains(mx, my int) bool {
	return mx >= b.x && mx <= b.x+b.w && my >= b.y && my <= b.y+b.h
}

// Game implements ebiten.Game. All carousel state lives in the ride
// driver; everything drawn is recomputed from its angle each frame.
type Game struct {
	cfg    config.Config
	ring   geometry.Ring
	driver *ride.Driver
	music  *audio.Player // nil when audio is disabled or failed to init

	horseImg *ebiten.Image

	revolutions int // slider value, MinRevolutions..MaxRevolutions

	startButton button
	stopButton  button

	sliderHovered  bool
	sliderDragging bool

	prevKey     map[ebiten.Key]bool
	prevRunning bool
}

func New(cfg config.Config) *Game {
	g := &Game{
		cfg:         cfg,
		ring:        geometry.Ring{Count: cfg.HorseCount, Radius: cfg.OrbitRadius},
		driver:      ride.NewDriver(cfg.BaseRevolutionDuration(), ride.EasingByName(cfg.Easing)),
		revolutions: config.MinRevolutions,
		startButton: button{x: startButtonX, y: startButtonY, w: buttonWidth, h: buttonHeight},
		stopButton:  button{x: stopButtonX, y: stopButtonY, w: buttonWidth, h: buttonHeight},
		prevKey:     map[ebiten.Key]bool{},
	}
	g.horseImg = newHorseImage(cfg.HorseWidth, cfg.HorseHeight)

	if cfg.Music {
		player, err := audio.NewPlayer()
		if err != nil {
			gameLog.Warn().Err(err).Msg("audio unavailable, riding in silence")
		} else {
			g.music = player
		}
	}
	return g
}

// newHorseImage prerenders a single white horse sprite; each horse is
// tinted at draw time. The sprite points along +X before rotation,
// matching a facing angle of zero.
func newHorseImage(w, h float64) *ebiten.Image {
	img := ebiten.NewImage(int(w), int(h))
	body := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	saddle := color.RGBA{R: 90, G: 90, B: 90, A: 255}

	vector.DrawFilledRect(img, 0, 0, float32(w), float32(h), body, false)
	// Saddle stripe across the middle third.
	vector.DrawFilledRect(img, float32(w/3), 0, float32(w/3), float32(h), saddle, false)
	return img
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mouseX, mouseY := ebiten.CursorPosition()

	g.startButton.hovered = g.startButton.contains(mouseX, mouseY)
	g.stopButton.hovered = g.stopButton.contains(mouseX, mouseY)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if g.startButton.hovered {
			g.startButton.pressed = true
		}
		if g.stopButton.hovered {
			g.stopButton.pressed = true
		}
		if g.sliderContains(mouseX, mouseY) {
			g.sliderDragging = true
			g.setSliderFromMouse(mouseX)
		}
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.startButton.pressed && g.startButton.hovered {
			g.startRide()
		}
		if g.stopButton.pressed && g.stopButton.hovered {
			g.stopRide()
		}
		g.startButton.pressed = false
		g.stopButton.pressed = false
		g.sliderDragging = false
	}

	g.sliderHovered = g.sliderContains(mouseX, mouseY)
	if g.sliderDragging {
		g.setSliderFromMouse(mouseX)
	}

	if justPressed(ebiten.KeySpace) {
		g.startRide()
	}
	if justPressed(ebiten.KeyS) {
		g.stopRide()
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.driver.Update()

	// Natural completion: the driver flips to stopped on its own.
	if g.prevRunning && !g.driver.IsRunning() {
		gameLog.Info().
			Int("revolutions", g.driver.CompletedRevolutions()).
			Float64("angle", g.driver.CurrentAngle()).
			Msg("ride complete")
		if g.music != nil {
			g.music.SetPlaying(false)
		}
	}
	g.prevRunning = g.driver.IsRunning()

	return nil
}

func (g *Game) startRide() {
	n := g.driver.Start(g.revolutions)
	gameLog.Info().
		Int("revolutions", n).
		Dur("duration", g.cfg.BaseRevolutionDuration()*time.Duration(n)).
		Msg("ride started")
	if g.music != nil {
		g.music.SetPlaying(true)
	}
	g.prevRunning = true
}

func (g *Game) stopRide() {
	if !g.driver.IsRunning() {
		return
	}
	g.driver.Stop()
	gameLog.Info().
		Float64("angle", g.driver.CurrentAngle()).
		Msg("emergency stop")
	if g.music != nil {
		g.music.SetPlaying(false)
	}
	g.prevRunning = false
}

func (g *Game) sliderContains(mx, my int) bool {
	return mx >= sliderX-knobRadius && mx <= sliderX+sliderWidth+knobRadius &&
		my >= sliderY-knobRadius && my <= sliderY+sliderHeight+knobRadius
}

// setSliderFromMouse maps the cursor to a discrete revolution count.
func (g *Game) setSliderFromMouse(mouseX int) {
	progress := clamp01(float64(mouseX-sliderX) / float64(sliderWidth))
	steps := config.MaxRevolutions - config.MinRevolutions
	g.revolutions = config.MinRevolutions + int(progress*float64(steps)+0.5)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
