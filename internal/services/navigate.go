package services

import (
	"context"
	"errors"
	"ferry-nav-service/internal/domain"
	"ferry-nav-service/internal/platform/obs"
	"ferry-nav-service/internal/ports"
	"fmt"
)

// Final state of a navigation run.
type NavigationResult struct {
	X                 int64
	Y                 int64
	ManhattanDistance uint64
	Instructions      int
}

func (r NavigationResult) String() string {
	return fmt.Sprintf("Absolute position: (%d, %d) - Manhattan distance is: %d", r.X, r.Y, r.ManhattanDistance)
}

// Navigate loads every instruction and applies it, in order, to a fresh ship
// steered with mode.
func Navigate(
	ctx context.Context,
	mode domain.SteeringMode,
	repo ports.InstructionRepository,
) (_ NavigationResult, err error) {
	defer obs.Time(ctx, "navigate")(&err)

	if repo == nil {
		return NavigationResult{}, errors.New("navigate: instruction repository must be non-nil")
	}

	instructions, err := repo.ListInstructions(ctx)
	if err != nil {
		return NavigationResult{}, fmt.Errorf("navigate: list instructions: %w", err)
	}

	ship := domain.NewShipFor(mode)
	if err := ship.ExecAll(instructions); err != nil {
		return NavigationResult{}, fmt.Errorf("navigate: %w", err)
	}

	x, y := ship.Position()
	return NavigationResult{
		X:                 x,
		Y:                 y,
		ManhattanDistance: ship.ManhattanDistance(),
		Instructions:      len(instructions),
	}, nil
}
