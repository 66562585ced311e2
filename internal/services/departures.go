package services

import (
	"context"
	"errors"
	"ferry-nav-service/internal/domain"
	"ferry-nav-service/internal/platform/obs"
	"ferry-nav-service/internal/ports"
	"fmt"
	"slices"
)

// Result of scanning a schedule: every entry by ascending wait, and the
// entry we would take.
type DepartureReport struct {
	Entries  []domain.ScheduleEntry
	Earliest domain.ScheduleEntry
}

func (r DepartureReport) Answer() int64 { return r.Earliest.Answer() }

// Build one entry per shuttle period, in schedule order.
func BuildEntries(schedule domain.Schedule) []domain.ScheduleEntry {
	entries := make([]domain.ScheduleEntry, 0, len(schedule.Periods))
	for _, p := range schedule.Periods {
		entries = append(entries, domain.NewScheduleEntry(schedule.Timestamp, p))
	}
	return entries
}

// SortByWait orders entries by ascending wait.
// The sort is stable, so shuttles with equal waits keep their schedule order.
func SortByWait(entries []domain.ScheduleEntry) {
	slices.SortStableFunc(entries, func(a, b domain.ScheduleEntry) int {
		if a.Wait < b.Wait {
			return -1
		}
		if a.Wait > b.Wait {
			return 1
		}
		return 0
	})
}

// EarliestDeparture returns an entry with the smallest wait.
func EarliestDeparture(entries []domain.ScheduleEntry) (domain.ScheduleEntry, error) {
	if len(entries) == 0 {
		return domain.ScheduleEntry{}, fmt.Errorf("earliest departure: %w", domain.ErrEmptySchedule)
	}

	sorted := slices.Clone(entries)
	SortByWait(sorted)
	return sorted[0], nil
}

func ScanDepartures(ctx context.Context, repo ports.ScheduleRepository) (_ *DepartureReport, err error) {
	defer obs.Time(ctx, "scan_departures")(&err)

	if repo == nil {
		return nil, errors.New("scan departures: schedule repository must be non-nil")
	}

	schedule, err := repo.LoadSchedule(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan departures: load schedule: %w", err)
	}

	if schedule.Timestamp < 0 {
		return nil, fmt.Errorf("scan departures: timestamp %d: %w", schedule.Timestamp, domain.ErrTimestamp)
	}
	for _, p := range schedule.Periods {
		if p < 1 {
			return nil, fmt.Errorf("scan departures: period %d: %w", p, domain.ErrInvalidPeriod)
		}
	}

	entries := BuildEntries(schedule)
	SortByWait(entries)

	earliest, err := EarliestDeparture(entries)
	if err != nil {
		return nil, fmt.Errorf("scan departures: %w", err)
	}

	return &DepartureReport{Entries: entries, Earliest: earliest}, nil
}
