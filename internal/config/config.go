// Package config resolves the fixed store-directory path once at
// startup so it can be passed explicitly to the components that need
// it. There is no config file and no environment lookup: the store
// lives at a well-known location under the user's home directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// StoreDirName is the hidden directory under $HOME that holds all
// task records.
const StoreDirName = ".constellations"

// Config carries the paths resolved at startup.
type Config struct {
	// StoreDir is the root directory for task records.
	StoreDir string
}

// Load resolves the store directory beneath the user's home directory.
// It does not create the directory or check that it exists.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("no home directory: %w", err)
	}
	return &Config{StoreDir: filepath.Join(home, StoreDirName)}, nil
}
