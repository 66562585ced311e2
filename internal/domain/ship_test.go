package domain

import (
	"errors"
	"testing"
)

func canonicalRoute() []Instruction {
	return []Instruction{
		{Action: Forward, Value: 10},
		{Action: North, Value: 3},
		{Action: Forward, Value: 7},
		{Action: Right, Value: 90},
		{Action: Forward, Value: 11},
	}
}

func TestShipExecAllCanonicalRoute(t *testing.T) {
	tests := []struct {
		name         string
		ship         *Ship
		wantX, wantY int64
		wantDist     uint64
		wantWaypoint Waypoint
	}{
		{"waypoint", NewShip(), 214, -72, 286, Waypoint{X: 4, Y: -10}},
		{"heading", NewHeadingShip(), 17, -8, 25, Waypoint{X: 0, Y: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.ship.ExecAll(canonicalRoute()); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			x, y := tt.ship.Position()
			if x != tt.wantX || y != tt.wantY {
				t.Fatalf("position = (%d, %d), want (%d, %d)", x, y, tt.wantX, tt.wantY)
			}
			if d := tt.ship.ManhattanDistance(); d != tt.wantDist {
				t.Fatalf("manhattan distance = %d, want %d", d, tt.wantDist)
			}
			if tt.ship.Waypoint != tt.wantWaypoint {
				t.Fatalf("waypoint = %+v, want %+v", tt.ship.Waypoint, tt.wantWaypoint)
			}
		})
	}
}

func TestShipHeadingTranslationsMoveShip(t *testing.T) {
	ship := NewHeadingShip()
	route := []Instruction{
		{Action: North, Value: 4},
		{Action: West, Value: 2},
		{Action: Left, Value: 180},
		{Action: Forward, Value: 3},
	}

	if err := ship.ExecAll(route); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ship.X != -5 || ship.Y != 4 {
		t.Fatalf("position = (%d, %d), want (-5, 4)", ship.X, ship.Y)
	}
}

func TestParseSteeringMode(t *testing.T) {
	for in, want := range map[string]SteeringMode{
		"waypoint":  WaypointSteering,
		" Heading ": HeadingSteering,
	} {
		got, err := ParseSteeringMode(in)
		if err != nil {
			t.Fatalf("parse %q: unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("parse %q = %v, want %v", in, got, want)
		}
	}

	if _, err := ParseSteeringMode("drift"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestShipForwardIsLinear(t *testing.T) {
	steps := []int64{1, 5, 12, 100}

	ship := NewShip()
	var total int64
	for _, n := range steps {
		if err := ship.Exec(Instruction{Action: Forward, Value: n}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		total += n
	}

	x, y := ship.Position()
	if x != total*10 || y != total {
		t.Fatalf("position = (%d, %d), want (%d, %d)", x, y, total*10, total)
	}
	if ship.Waypoint != (Waypoint{X: 10, Y: 1}) {
		t.Fatalf("forward changed waypoint: %+v", ship.Waypoint)
	}
}

func TestShipTranslationsMoveOnlyWaypoint(t *testing.T) {
	ship := NewShip()
	route := []Instruction{
		{Action: North, Value: 4},
		{Action: East, Value: 2},
		{Action: South, Value: 1},
		{Action: West, Value: 20},
	}

	if err := ship.ExecAll(route); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ship.X != 0 || ship.Y != 0 {
		t.Fatalf("ship moved to (%d, %d)", ship.X, ship.Y)
	}
	if ship.Waypoint != (Waypoint{X: -8, Y: 4}) {
		t.Fatalf("waypoint = %+v, want {-8 4}", ship.Waypoint)
	}
}

func TestShipRotationKeepsShipPosition(t *testing.T) {
	ship := &Ship{X: 3, Y: -7, Waypoint: Waypoint{X: 10, Y: 4}}

	if err := ship.Exec(Instruction{Action: Left, Value: 90}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ship.X != 3 || ship.Y != -7 {
		t.Fatalf("rotation moved ship to (%d, %d)", ship.X, ship.Y)
	}
	if ship.Waypoint != (Waypoint{X: -4, Y: 10}) {
		t.Fatalf("waypoint = %+v, want {-4 10}", ship.Waypoint)
	}
}

func TestShipExecAllRejectsUnknownAction(t *testing.T) {
	ship := NewShip()
	route := []Instruction{
		{Action: Forward, Value: 2},
		{Action: Action('X'), Value: 1},
		{Action: Forward, Value: 2},
	}

	err := ship.ExecAll(route)
	if !errors.Is(err, ErrInstructionCode) {
		t.Fatalf("err = %v, want ErrInstructionCode", err)
	}
	if ship.X != 20 || ship.Y != 2 {
		t.Fatalf("position = (%d, %d), want (20, 2)", ship.X, ship.Y)
	}
}

func TestShipManhattanDistanceNegativeCoordinates(t *testing.T) {
	ship := &Ship{X: -100, Y: -20}
	if d := ship.ManhattanDistance(); d != 120 {
		t.Fatalf("manhattan distance = %d, want 120", d)
	}
}
