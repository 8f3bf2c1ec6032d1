// Package geometry computes the placement of carousel horses on their
// circular orbit. All functions are pure: the same inputs always produce
// bit-identical outputs, so the renderer can recompute every frame.
package geometry

import (
	"fmt"
	"math"
)

// Placement is the derived position and orientation of one horse.
// FacingDeg is tangent to the orbit (orbital angle + 90), so the horse
// points forward along its path.
type Placement struct {
	X         float64
	Y         float64
	FacingDeg float64
}

// Ring describes a circular arrangement of equally spaced horses.
type Ring struct {
	Count  int     // number of horses on the ring
	Radius float64 // orbit radius in pixels
}

// SpacingDeg returns the angular distance between adjacent horses.
func (r Ring) SpacingDeg() float64 {
	return 360.0 / float64(r.Count)
}

// HorsePlacement returns the placement of horse index at the given
// carousel rotation. index must be in [0, Count); passing anything else
// is a programming error and panics.
func (r Ring) HorsePlacement(index int, centerX, centerY, angleDeg float64) Placement {
	if index < 0 || index >= r.Count {
		panic(fmt.Sprintf("geometry: horse index %d out of range [0,%d)", index, r.Count))
	}

	thetaDeg := float64(index)*r.SpacingDeg() + angleDeg
	thetaRad := thetaDeg * math.Pi / 180
	return Placement{
		X:         centerX + r.Radius*math.Cos(thetaRad),
		Y:         centerY + r.Radius*math.Sin(thetaRad),
		FacingDeg: thetaDeg + 90,
	}
}

// HubMarker returns the endpoint of the hub spoke: a point at distance
// radius from the center, rotated with the carousel. The spoke makes the
// hub's rotation visible even though the hub itself is a circle.
func HubMarker(centerX, centerY, angleDeg, radius float64) (x, y float64) {
	rad := angleDeg * math.Pi / 180
	return centerX + radius*math.Cos(rad), centerY + radius*math.Sin(rad)
}

// Corners returns the four corners of a w×h rectangle centered on the
// placement and rotated to its facing angle, in drawing order.
func Corners(p Placement, w, h float64) [4][2]float64 {
	rad := p.FacingDeg * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)

	var out [4][2]float64
	local := [4][2]float64{
		{-w / 2, -h / 2},
		{w / 2, -h / 2},
		{w / 2, h / 2},
		{-w / 2, h / 2},
	}
	for i, c := range local {
		out[i][0] = p.X + c[0]*cos - c[1]*sin
		out[i][1] = p.Y + c[0]*sin + c[1]*cos
	}
	return out
}
