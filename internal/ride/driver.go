// Package ride owns the carousel's rotation state: a single angle value
// animated from a start toward a target, and the Stopped/Running state
// machine around it. The driver is single-owner and not goroutine safe;
// the game loop calls Update once per tick and reads are idempotent.
package ride

import (
	"time"

	"github.com/iburimskiy/carousel/internal/config"
)

// State is the ride's lifecycle state.
type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "Running"
	}
	return "Stopped"
}

// CompletedRevolutions converts an angle delta in degrees to whole
// revolutions, truncating toward zero. The angle never goes negative in
// normal operation, so truncation and floor agree.
func CompletedRevolutions(angleDeg float64) int {
	return int(angleDeg / 360)
}

// Driver advances the carousel angle toward a target over time.
// The current angle is unbounded and non-decreasing while running;
// renderers read it every frame and derive all placements from it.
type Driver struct {
	now func() time.Time

	angle      float64 // current rotation, degrees
	rideBase   float64 // angle at which the current ride's counting started
	state      State
	totalRevs  int // revolutions requested for the current ride
	tween      *Tween
	tweenStart time.Time

	baseDuration time.Duration // duration of a single revolution
	ease         EasingFunc
}

func NewDriver(baseDuration time.Duration, ease EasingFunc) *Driver {
	return &Driver{
		now:          time.Now,
		baseDuration: baseDuration,
		ease:         ease,
	}
}

// Start begins a ride of the given number of revolutions, clamped to
// [config.MinRevolutions, config.MaxRevolutions]. Starting while running
// restarts: the in-flight tween is superseded and the counter rebases at
// the current angle. Returns the clamped revolution count.
func (d *Driver) Start(revolutions int) int {
	if revolutions < config.MinRevolutions {
		revolutions = config.MinRevolutions
	}
	if revolutions > config.MaxRevolutions {
		revolutions = config.MaxRevolutions
	}

	target := d.angle + float64(revolutions)*360
	d.rideBase = d.angle
	d.totalRevs = revolutions
	d.tween = NewTween(d.angle, target, d.baseDuration*time.Duration(revolutions), d.ease)
	d.tweenStart = d.now()
	d.state = Running
	return revolutions
}

// Stop is the emergency stop: the tween is cancelled, the angle freezes
// where it is, and the displayed count resets to zero. No-op if already
// stopped.
func (d *Driver) Stop() {
	if d.state != Running {
		return
	}
	d.tween = nil
	d.state = Stopped
	d.rideBase = d.angle
	d.totalRevs = 0
}

// Update advances the angle from the wall clock. Call once per frame.
// On natural completion the angle lands exactly on the target and the
// counter keeps its final value.
func (d *Driver) Update() {
	if d.state != Running {
		return
	}
	value, done := d.tween.At(d.now().Sub(d.tweenStart))
	d.angle = value
	if done {
		d.tween = nil
		d.state = Stopped
	}
}

func (d *Driver) CurrentAngle() float64 { return d.angle }

func (d *Driver) IsRunning() bool { return d.state == Running }

// RideState returns the current lifecycle state.
func (d *Driver) RideState() State { return d.state }

// CompletedRevolutions returns whole revolutions completed since the
// current ride began (or since the last emergency stop rebased it).
func (d *Driver) CompletedRevolutions() int {
	return CompletedRevolutions(d.angle - d.rideBase)
}

// TotalRevolutions returns the revolutions requested for the current or
// just-finished ride; zero after an emergency stop.
func (d *Driver) TotalRevolutions() int { return d.totalRevs }

// Remaining reports how much ride time is left, zero when stopped.
func (d *Driver) Remaining() time.Duration {
	if d.state != Running || d.tween == nil {
		return 0
	}
	left := d.tween.duration - d.now().Sub(d.tweenStart)
	if left < 0 {
		return 0
	}
	return left
}
