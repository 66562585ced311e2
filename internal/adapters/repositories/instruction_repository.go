package repositories

import (
	"bufio"
	"context"
	"errors"
	"ferry-nav-service/internal/domain"
	"ferry-nav-service/internal/platform/obs"
	"fmt"
	"io"
)

// Parse one instruction per line, preserving line order.
// A single trailing newline does not produce an instruction; any other
// empty line is malformed.
func ParseInstructions(r io.Reader) ([]domain.Instruction, error) {
	scanner := bufio.NewScanner(r)

	instructions := make([]domain.Instruction, 0, 64)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		in, err := domain.ParseInstruction(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("parse instructions: line %d: %w", lineNo, err)
		}
		instructions = append(instructions, in)
	}
	if err := scanner.Err(); err != nil {
		return nil, readErr(err)
	}

	return instructions, nil
}

// File-backed implementation of the InstructionRepository port.
type FileInstructionRepository struct{ Path string }

func NewFileInstructionRepository(path string) *FileInstructionRepository {
	return &FileInstructionRepository{Path: path}
}

// Return all instructions stored in the input file.
func (r *FileInstructionRepository) ListInstructions(ctx context.Context) (_ []domain.Instruction, err error) {
	defer obs.Time(ctx, "instructions.file.List")(&err)

	if r.Path == "" {
		return nil, errors.New("file instruction repository: path is empty")
	}

	return withInputFile(r.Path, ParseInstructions)
}

// In-memory InstructionRepository, used for tests and embedded callers.
type StaticInstructionRepository struct {
	instructions []domain.Instruction
}

func NewStaticInstructionRepository(instructions ...domain.Instruction) *StaticInstructionRepository {
	return &StaticInstructionRepository{instructions: instructions}
}

func (r *StaticInstructionRepository) ListInstructions(ctx context.Context) ([]domain.Instruction, error) {
	out := make([]domain.Instruction, len(r.instructions))
	copy(out, r.instructions)
	return out, nil
}
