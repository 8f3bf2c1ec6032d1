package game

import (
	"testing"
	"time"
)

func TestSetSliderFromMouse(t *testing.T) {
	tests := []struct {
		name   string
		mouseX int
		want   int
	}{
		{"Left edge", sliderX, 1},
		{"Past left edge", sliderX - 100, 1},
		{"Right edge", sliderX + sliderWidth, 4},
		{"Past right edge", sliderX + sliderWidth + 100, 4},
		{"One third", sliderX + sliderWidth/3, 2},
		{"Two thirds", sliderX + 2*sliderWidth/3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &Game{}
			g.setSliderFromMouse(tt.mouseX)
			if g.revolutions != tt.want {
				t.Errorf("revolutions = %d, want %d", g.revolutions, tt.want)
			}
		})
	}
}

func TestButtonContains(t *testing.T) {
	b := button{x: 20, y: 20, w: 120, h: 40}

	if !b.contains(20, 20) || !b.contains(140, 60) || !b.contains(80, 40) {
		t.Error("points inside button reported outside")
	}
	if b.contains(19, 40) || b.contains(141, 40) || b.contains(80, 61) {
		t.Error("points outside button reported inside")
	}
}

func TestCounterText(t *testing.T) {
	tests := []struct {
		name             string
		format           string
		completed, total int
		want             string
	}{
		{"Fraction mid-ride", "fraction", 1, 2, "Revolutions: 1/2"},
		{"Fraction after completion", "fraction", 2, 2, "Revolutions: 2/2"},
		{"Fraction before first ride", "fraction", 0, 0, "Revolutions: 0"},
		{"Fraction after emergency stop", "fraction", 0, 0, "Revolutions: 0"},
		{"Completed only", "completed", 3, 4, "Revolutions: 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := counterText(tt.format, tt.completed, tt.total); got != tt.want {
				t.Errorf("counterText(%q, %d, %d) = %q, want %q",
					tt.format, tt.completed, tt.total, got, tt.want)
			}
		})
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{2.5, 1},
	}
	for _, tt := range tests {
		if got := clamp01(tt.in); got != tt.want {
			t.Errorf("clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00"},
		{7 * time.Second, "00:07"},
		{20 * time.Second, "00:20"},
		{90 * time.Second, "01:30"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.in); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHsvToRgbPrimaries(t *testing.T) {
	if r, g, b := hsvToRgb(0, 1, 1); r != 255 || g != 0 || b != 0 {
		t.Errorf("hue 0 = (%d, %d, %d), want pure red", r, g, b)
	}
	if r, g, b := hsvToRgb(120, 1, 1); r != 0 || g != 255 || b != 0 {
		t.Errorf("hue 120 = (%d, %d, %d), want pure green", r, g, b)
	}
	if r, g, b := hsvToRgb(240, 1, 1); r != 0 || g != 0 || b != 255 {
		t.Errorf("hue 240 = (%d, %d, %d), want pure blue", r, g, b)
	}
}
