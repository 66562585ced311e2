package repositories

import (
	"errors"
	"ferry-nav-service/internal/domain"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Open the input file and hand it to parse, closing it afterwards.
// Open failures are classified as missing or unreadable input.
func withInputFile[T any](path string, parse func(io.Reader) (T, error)) (T, error) {
	var zero T

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zero, fmt.Errorf("open input %q: %w: %w", path, domain.ErrMissingInput, err)
		}
		return zero, fmt.Errorf("open input %q: %w: %w", path, domain.ErrUnreadableInput, err)
	}
	defer f.Close()

	return parse(f)
}

func readErr(err error) error {
	return fmt.Errorf("read input: %w: %w", domain.ErrUnreadableInput, err)
}
