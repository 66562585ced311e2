package domain

import (
	"fmt"
	"strings"
)

// SteeringMode selects what N/E/S/W instructions move.
type SteeringMode int

const (
	// Translations move the waypoint; the ship only moves on Forward.
	WaypointSteering SteeringMode = iota
	// Translations move the ship directly; the waypoint is a unit heading.
	HeadingSteering
)

func (m SteeringMode) String() string {
	if m == HeadingSteering {
		return "heading"
	}
	return "waypoint"
}

// Parse "waypoint" or "heading" (case-insensitive).
func ParseSteeringMode(s string) (SteeringMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "waypoint":
		return WaypointSteering, nil
	case "heading":
		return HeadingSteering, nil
	}
	return 0, fmt.Errorf("parse steering mode: unknown mode %q", s)
}

// Ship aggregate: absolute position plus the waypoint it steers by.
type Ship struct {
	X        int64
	Y        int64
	Waypoint Waypoint
	Mode     SteeringMode
}

// Ship at the origin with the waypoint 10 east and 1 north.
func NewShip() *Ship {
	return &Ship{
		Waypoint: Waypoint{X: 10, Y: 1},
		Mode:     WaypointSteering,
	}
}

// Ship at the origin facing east, moved directly by N/E/S/W.
func NewHeadingShip() *Ship {
	return &Ship{
		Waypoint: Waypoint{X: 1, Y: 0},
		Mode:     HeadingSteering,
	}
}

// Construct a ship for the given steering mode.
func NewShipFor(mode SteeringMode) *Ship {
	if mode == HeadingSteering {
		return NewHeadingShip()
	}
	return NewShip()
}

// Apply a single instruction.
// Translations move the waypoint (or the ship in heading mode), rotations
// turn the waypoint about the ship, and Forward moves the ship toward the
// waypoint n times.
func (s *Ship) Exec(in Instruction) error {
	tx, ty := &s.Waypoint.X, &s.Waypoint.Y
	if s.Mode == HeadingSteering {
		tx, ty = &s.X, &s.Y
	}

	switch in.Action {
	case North:
		*ty += in.Value
	case East:
		*tx += in.Value
	case South:
		*ty -= in.Value
	case West:
		*tx -= in.Value
	case Left:
		s.Waypoint.Apply(Rotation{Direction: CounterClockwise, Degrees: in.Value})
	case Right:
		s.Waypoint.Apply(Rotation{Direction: Clockwise, Degrees: in.Value})
	case Forward:
		s.X += in.Value * s.Waypoint.X
		s.Y += in.Value * s.Waypoint.Y
	default:
		return fmt.Errorf("exec instruction %v: %w", in, ErrInstructionCode)
	}

	return nil
}

// Apply instructions strictly in order, stopping at the first invalid one.
func (s *Ship) ExecAll(ins []Instruction) error {
	for i, in := range ins {
		if err := s.Exec(in); err != nil {
			return fmt.Errorf("exec all: instruction #%d: %w", i+1, err)
		}
	}

	return nil
}

func (s *Ship) Position() (int64, int64) { return s.X, s.Y }

// Taxicab distance of the ship from the origin.
func (s *Ship) ManhattanDistance() uint64 {
	return abs(s.X) + abs(s.Y)
}

func abs(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}
