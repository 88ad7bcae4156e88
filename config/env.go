package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Environment variables providing defaults for command-line flags.
const (
	EnvLogLevel  = "POFILL_LOG_LEVEL"
	EnvLogFormat = "POFILL_LOG_FORMAT"
)

// LoadEnv loads rootDir/.env into the process environment if it exists.
// Variables that are already set are not overridden.
func LoadEnv(rootDir string) error {
	path := filepath.Join(rootDir, ".env")
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// Getenv returns the value of key, or fallback when it is unset or empty.
func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
