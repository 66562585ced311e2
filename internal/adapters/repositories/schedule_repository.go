package repositories

import (
	"bufio"
	"context"
	"errors"
	"ferry-nav-service/internal/domain"
	"ferry-nav-service/internal/platform/obs"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse the scanner input: a timestamp line followed by a comma-separated
// list of shuttle periods. Tokens that are not integers (such as "x") are
// placeholders and are dropped.
func ParseSchedule(r io.Reader) (domain.Schedule, error) {
	scanner := bufio.NewScanner(r)

	lines := make([]string, 0, 2)
	for len(lines) < 2 && scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return domain.Schedule{}, readErr(err)
	}

	if len(lines) < 1 || lines[0] == "" {
		return domain.Schedule{}, fmt.Errorf("parse schedule: missing timestamp line: %w", domain.ErrEmptySchedule)
	}
	if len(lines) < 2 || lines[1] == "" {
		return domain.Schedule{}, fmt.Errorf("parse schedule: missing shuttle line: %w", domain.ErrEmptySchedule)
	}

	ts, err := strconv.ParseInt(lines[0], 10, 64)
	if err != nil || ts < 0 {
		return domain.Schedule{}, fmt.Errorf("parse schedule: timestamp %q: %w", lines[0], domain.ErrTimestamp)
	}

	tokens := strings.Split(lines[1], ",")
	periods := make([]int64, 0, len(tokens))
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		p, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			continue
		}
		if p <= 0 {
			return domain.Schedule{}, fmt.Errorf("parse schedule: token #%d %q: period must be >= 1: %w", i+1, tok, domain.ErrInvalidPeriod)
		}
		periods = append(periods, p)
	}

	if len(periods) == 0 {
		return domain.Schedule{}, fmt.Errorf("parse schedule: no shuttle periods: %w", domain.ErrEmptySchedule)
	}

	return domain.Schedule{Timestamp: ts, Periods: periods}, nil
}

// File-backed implementation of the ScheduleRepository port.
type FileScheduleRepository struct{ Path string }

func NewFileScheduleRepository(path string) *FileScheduleRepository {
	return &FileScheduleRepository{Path: path}
}

// Return the schedule stored in the input file.
func (r *FileScheduleRepository) LoadSchedule(ctx context.Context) (_ domain.Schedule, err error) {
	defer obs.Time(ctx, "schedule.file.Load")(&err)

	if r.Path == "" {
		return domain.Schedule{}, errors.New("file schedule repository: path is empty")
	}

	return withInputFile(r.Path, ParseSchedule)
}

// In-memory ScheduleRepository, used for tests and embedded callers.
type StaticScheduleRepository struct {
	schedule domain.Schedule
}

func NewStaticScheduleRepository(timestamp int64, periods ...int64) *StaticScheduleRepository {
	return &StaticScheduleRepository{schedule: domain.Schedule{Timestamp: timestamp, Periods: periods}}
}

func (r *StaticScheduleRepository) LoadSchedule(ctx context.Context) (domain.Schedule, error) {
	periods := make([]int64, len(r.schedule.Periods))
	copy(periods, r.schedule.Periods)
	return domain.Schedule{Timestamp: r.schedule.Timestamp, Periods: periods}, nil
}
