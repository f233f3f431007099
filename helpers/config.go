package helpers

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Env variable names shared by every binary.
const (
	EnvConfigPath = "CONFIG_PATH"
	EnvEnvFile    = "ENV_FILE"
)

// LoadEnvFile loads the dotenv file named by ENV_FILE into the process environment.
// Variables that are already set are not overwritten. No-op when ENV_FILE is empty.
//
// Called first from cmd/registry and cmd/sidecar LoadConfig.
func LoadEnvFile() error {
	path := strings.TrimSpace(os.Getenv(EnvEnvFile))
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s %s: %w", EnvEnvFile, path, err)
	}
	return nil
}

// LoadYAMLFile decodes the YAML file named by CONFIG_PATH into out. Relative paths are made absolute.
//
// Returns: (false, nil) when CONFIG_PATH is empty and out is untouched; (true, nil) after a successful decode;
// (false, error) on read or parse failure.
func LoadYAMLFile(out any) (bool, error) {
	path := strings.TrimSpace(os.Getenv(EnvConfigPath))
	if path == "" {
		return false, nil
	}
	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return false, err
		}
		path = abs
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("parse config %s: %w", path, err)
	}
	return true, nil
}

// EnvString returns the trimmed value of key, or def when unset or blank.
func EnvString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// EnvInt parses key as an integer, returning def when unset.
func EnvInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, raw)
	}
	return v, nil
}

// EnvSeconds parses key as a number of seconds (fractions allowed), returning def when unset.
func EnvSeconds(key string, def time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number of seconds, got %q", key, raw)
	}
	return time.Duration(v * float64(time.Second)), nil
}

// EnvMillis parses key as a whole number of milliseconds, returning def when unset.
func EnvMillis(key string, def time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer (ms), got %q", key, raw)
	}
	return time.Duration(v) * time.Millisecond, nil
}
