package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// LoadConfigFrom loads the configuration at path.
// If the file doesn't exist, it returns default configuration.
// If the file is corrupted, it returns an error.
// Missing fields (absent from JSON) are silently defaulted.
func LoadConfigFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}

	jsonBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := &Config{}
	if err := json.Unmarshal(jsonBytes, config); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	presentKeys := detectPresentKeys(jsonBytes)
	ApplyMissingDefaults(config, presentKeys)

	return config, nil
}

// CreateConfigIfMissing writes a default config to path if nothing is
// there yet, so users have a file to edit.
func CreateConfigIfMissing(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return AtomicWriteJSON(path, DefaultConfig())
	}
	return nil
}
