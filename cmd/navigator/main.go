package main

import (
	"context"
	"ferry-nav-service/internal/adapters/repositories"
	"ferry-nav-service/internal/config"
	"ferry-nav-service/internal/domain"
	"ferry-nav-service/internal/platform/obs"
	"ferry-nav-service/internal/services"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
)

// main is the navigator composition root.
// It wires the file-backed instruction repository into the navigation service
// and prints the ship's final position. Any input error aborts the run.
func main() {
	config.Load()

	ctx := obs.WithRunID(context.Background(), uuid.NewString())
	if err := run(ctx, os.Stdout, config.InputPath(), config.NavMode()); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, w io.Writer, inputPath, navMode string) error {
	mode, err := domain.ParseSteeringMode(navMode)
	if err != nil {
		return err
	}

	repo := repositories.NewFileInstructionRepository(inputPath)
	res, err := services.Navigate(ctx, mode, repo)
	if err != nil {
		return err
	}

	log.Printf("run_id=%s mode=%s instructions=%d", obs.RunID(ctx), mode, res.Instructions)
	_, err = fmt.Fprintln(w, res)
	return err
}
