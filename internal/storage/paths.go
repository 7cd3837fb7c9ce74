// Package storage provides persistent storage for named othello boards.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const appName = "othello"

// DataDirEnv names the environment variable that overrides the platform
// data directory.
const DataDirEnv = "OTHELLO_DATA_DIR"

// GetDataDir returns the data directory for the application, creating it if
// needed. $OTHELLO_DATA_DIR wins when set; otherwise:
// - macOS: ~/Library/Application Support/othello/
// - Linux: $XDG_DATA_HOME/othello/ or ~/.local/share/othello/
// - Windows: %APPDATA%/othello/
func GetDataDir() (string, error) {
	dataDir := os.Getenv(DataDirEnv)
	if dataDir == "" {
		base, err := platformDataHome()
		if err != nil {
			return "", fmt.Errorf("storage: locate data dir: %w", err)
		}
		dataDir = filepath.Join(base, appName)
	}

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return "", fmt.Errorf("storage: create data dir: %w", err)
	}
	return dataDir, nil
}

func platformDataHome() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support"), nil

	case "windows":
		if dir := os.Getenv("APPDATA"); dir != "" {
			return dir, nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "AppData", "Roaming"), nil

	default:
		if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
			return dir, nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share"), nil
	}
}

// GetDatabaseDir returns the directory for storing the BadgerDB database.
func GetDatabaseDir() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}

	dbDir := filepath.Join(dataDir, "db")
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return "", fmt.Errorf("storage: create database dir: %w", err)
	}
	return dbDir, nil
}
