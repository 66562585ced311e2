package main

import (
	"bytes"
	"context"
	"ferry-nav-service/internal/adapters/repositories"
	"ferry-nav-service/internal/config"
	"ferry-nav-service/internal/platform/obs"
	"ferry-nav-service/internal/services"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
)

func main() {
	config.Load()

	ctx := obs.WithRunID(context.Background(), uuid.NewString())
	if err := run(ctx, os.Stdout, config.InputPath()); err != nil {
		log.Fatal(err)
	}
}

// run scans the schedule and writes one line per shuttle, shortest wait
// first, followed by the answer. Nothing is written when the scan fails.
func run(ctx context.Context, w io.Writer, inputPath string) error {
	repo := repositories.NewFileScheduleRepository(inputPath)
	report, err := services.ScanDepartures(ctx, repo)
	if err != nil {
		return err
	}

	log.Printf("run_id=%s shuttles=%d sorted_by=wait", obs.RunID(ctx), len(report.Entries))

	var buf bytes.Buffer
	for _, e := range report.Entries {
		fmt.Fprintln(&buf, e)
	}
	fmt.Fprintf(&buf, "Result of part 1: %d\n", report.Answer())

	_, err = w.Write(buf.Bytes())
	return err
}
