package config

import (
	"os"
	"path/filepath"
)

type Config struct {
	DataPath string
	DBPath   string
}

// New resolves the data directory. An empty path falls back to
// ~/.focusforge so the binary works with no flags at all.
func New(dataPath string) (Config, error) {
	if dataPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		dataPath = filepath.Join(home, ".focusforge")
	}
	return Config{
		DataPath: dataPath,
		DBPath:   filepath.Join(dataPath, "focusforge.db"),
	}, nil
}
