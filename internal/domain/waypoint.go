package domain

import "math"

// Offset from the ship's current position, never an absolute coordinate.
type Waypoint struct {
	X int64
	Y int64
}

type RotationDirection int

const (
	CounterClockwise RotationDirection = iota
	Clockwise
)

// Rotation of the waypoint about the ship.
type Rotation struct {
	Direction RotationDirection
	Degrees   int64
}

// Signed returns the rotation as a counter-clockwise angle; clockwise turns are negative.
func (r Rotation) Signed() int64 {
	if r.Direction == Clockwise {
		return -r.Degrees
	}
	return r.Degrees
}

// Rotate the waypoint counter-clockwise by degrees (negative turns clockwise).
//
// Multiples of 90 use exact quarter turns. Any other angle goes through the
// rotation matrix and each coordinate is rounded to the nearest integer.
func (w *Waypoint) Rotate(degrees int64) {
	if degrees%90 == 0 {
		quarters := ((degrees/90)%4 + 4) % 4
		for i := int64(0); i < quarters; i++ {
			w.X, w.Y = -w.Y, w.X
		}
		return
	}

	rad := float64(degrees) * math.Pi / 180
	sin, cos := math.Sincos(rad)
	x, y := float64(w.X), float64(w.Y)
	w.X = int64(math.Round(x*cos - y*sin))
	w.Y = int64(math.Round(x*sin + y*cos))
}

// Apply a directional rotation.
func (w *Waypoint) Apply(r Rotation) {
	w.Rotate(r.Signed())
}
