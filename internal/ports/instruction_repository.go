package ports

import (
	"context"
	"ferry-nav-service/internal/domain"
)

// Port: a boundary for retrieving navigation instructions from a data source.
type InstructionRepository interface {
	// Retrieve every instruction in input order.
	ListInstructions(ctx context.Context) ([]domain.Instruction, error)
}
