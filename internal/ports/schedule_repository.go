package ports

import (
	"context"
	"ferry-nav-service/internal/domain"
)

// Port: a boundary for retrieving the shuttle schedule to scan.
type ScheduleRepository interface {
	// Retrieve the target timestamp and shuttle periods.
	LoadSchedule(ctx context.Context) (domain.Schedule, error)
}
