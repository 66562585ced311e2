package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultInputPath = "input.txt"
	DefaultNavMode   = "waypoint"
)

// Load reads .env from the working directory when present.
// A missing file is not an error: the process environment and defaults apply.
func Load(filenames ...string) {
	if err := godotenv.Load(filenames...); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
}

// Get returns the trimmed value of key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func InputPath() string { return Get("INPUT_PATH", DefaultInputPath) }

func NavMode() string { return Get("NAV_MODE", DefaultNavMode) }
