package domain

import "fmt"

// Parsed scanner input: the earliest time we can leave and the periods of
// every running shuttle. Placeholder entries are already dropped.
type Schedule struct {
	Timestamp int64
	Periods   []int64
}

// Represents the next departure of one shuttle relative to a timestamp.
// Entries are derived values and are never mutated after construction.
type ScheduleEntry struct {
	ID            int64
	NextDeparture int64
	Wait          int64
}

// Build the entry for a shuttle with the given period (>= 1).
// Wait is zero when timestamp is already a multiple of period.
func NewScheduleEntry(timestamp, period int64) ScheduleEntry {
	k := (timestamp + period - 1) / period
	next := k * period

	return ScheduleEntry{
		ID:            period,
		NextDeparture: next,
		Wait:          next - timestamp,
	}
}

func (e ScheduleEntry) Answer() int64 { return e.ID * e.Wait }

func (e ScheduleEntry) String() string {
	return fmt.Sprintf("Shuttle id: [%3d] next departure: [%4d], next departure in wait time: [%3d]", e.ID, e.NextDeparture, e.Wait)
}
