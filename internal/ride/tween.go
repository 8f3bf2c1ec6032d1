package ride

import "time"

// EasingFunc maps normalized elapsed time t in [0,1] to normalized
// progress in [0,1]. Curves must be monotonic with f(0)=0 and f(1)=1.
type EasingFunc func(t float64) float64

func Linear(t float64) float64 { return t }

// EaseOutQuad decelerates toward the end of the ride, the way a real
// carousel coasts to a halt.
func EaseOutQuad(t float64) float64 { return t * (2 - t) }

// EasingByName resolves a config easing name. Unknown names fall back
// to ease-out.
func EasingByName(name string) EasingFunc {
	if name == "linear" {
		return Linear
	}
	return EaseOutQuad
}

// Tween interpolates a value from one end to the other over a fixed
// duration using an easing curve. It has no clock of its own: the owner
// supplies elapsed time, which keeps it trivially cancellable (drop the
// Tween) and deterministic to test.
type Tween struct {
	from, to float64
	duration time.Duration
	ease     EasingFunc
}

func NewTween(from, to float64, duration time.Duration, ease EasingFunc) *Tween {
	if ease == nil {
		ease = Linear
	}
	return &Tween{from: from, to: to, duration: duration, ease: ease}
}

// At returns the interpolated value at the given elapsed time and
// whether the tween has finished. Elapsed times at or past the duration
// clamp exactly to the end value, so the final frame always settles on
// the target rather than a float approximation of it.
func (tw *Tween) At(elapsed time.Duration) (value float64, done bool) {
	if elapsed >= tw.duration || tw.duration <= 0 {
		return tw.to, true
	}
	if elapsed <= 0 {
		return tw.from, false
	}
	p := tw.ease(float64(elapsed) / float64(tw.duration))
	return tw.from + (tw.to-tw.from)*p, false
}
