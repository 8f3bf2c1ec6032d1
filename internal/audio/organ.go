// Package audio plays a synthesized carousel-organ loop while the ride
// is running. There is no audio input or file decoding; the melody is
// generated sample by sample.
package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	// Waltz tempo: one beat is a quarter note at ~140 bpm.
	beatDuration = 430 * time.Millisecond

	volume = 0.25
)

type note struct {
	freq  float64 // Hz; 0 is a rest
	beats float64
}

// A small waltz phrase in C major, looped forever. Oom-pah-pah bass is
// approximated by putting the root on the downbeat of each bar.
var melody = []note{
	{523.25, 1}, {659.25, 1}, {783.99, 1}, // C5 E5 G5
	{523.25, 1}, {698.46, 1}, {880.00, 1}, // C5 F5 A5
	{587.33, 1}, {739.99, 1}, {880.00, 1}, // D5 F#5 A5
	{783.99, 2}, {0, 1}, // G5, rest
	{523.25, 1}, {659.25, 1}, {783.99, 1},
	{587.33, 1}, {698.46, 1}, {880.00, 1},
	{659.25, 1}, {783.99, 1}, {987.77, 1}, // E5 G5 B5
	{1046.50, 2}, {0, 1}, // C6, rest
}

// organ implements beep.Streamer, producing the looping melody. Each
// note gets a percussive exponential decay so it reads as a pipe-organ
// pluck rather than a flat sine.
type organ struct {
	sr      beep.SampleRate
	noteIdx int
	pos     int // sample offset within the current note
}

func newOrgan(sr beep.SampleRate) *organ {
	return &organ{sr: sr}
}

func (o *organ) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		n := melody[o.noteIdx]
		noteSamples := o.noteLen(n)

		var v float64
		if n.freq > 0 {
			t := float64(o.pos) / float64(o.sr)
			envelope := math.Exp(-3 * float64(o.pos) / float64(noteSamples))
			// Fundamental plus a quieter octave for a reedy timbre.
			v = volume * envelope * (math.Sin(2*math.Pi*n.freq*t) +
				0.4*math.Sin(4*math.Pi*n.freq*t))
		}
		samples[i][0] = v
		samples[i][1] = v

		o.pos++
		if o.pos >= noteSamples {
			o.pos = 0
			o.noteIdx++
			if o.noteIdx >= len(melody) {
				o.noteIdx = 0
			}
		}
	}
	return len(samples), true
}

func (o *organ) Err() error { return nil }

func (o *organ) noteLen(n note) int {
	return o.sr.N(time.Duration(n.beats * float64(beatDuration)))
}

// Player owns the speaker and a pause control around the organ loop.
type Player struct {
	ctrl *beep.Ctrl
}

// NewPlayer initializes the speaker and starts the organ loop paused.
// The loop stays registered with the speaker for the process lifetime;
// SetPlaying toggles it.
func NewPlayer() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return nil, err
	}
	ctrl := &beep.Ctrl{Streamer: newOrgan(sampleRate), Paused: true}
	speaker.Play(ctrl)
	return &Player{ctrl: ctrl}, nil
}

func (p *Player) SetPlaying(playing bool) {
	speaker.Lock()
	p.ctrl.Paused = !playing
	speaker.Unlock()
}
