package state

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Settings is the opaque user-preferences record. The reward core never
// reads it; only the presentation layer does.
type Settings struct {
	SoundEnabled        bool   `json:"sound_enabled"`
	Notifications       bool   `json:"notifications"`
	Theme               string `json:"theme"`
	LastDurationSeconds int    `json:"last_duration_seconds"`
}

func DefaultSettings() Settings {
	return Settings{SoundEnabled: true, Notifications: true, Theme: "dark", LastDurationSeconds: 25 * 60}
}

type SettingsStore struct {
	path string
}

func NewSettingsStore(dataPath string) *SettingsStore {
	return &SettingsStore{path: filepath.Join(dataPath, "settings.json")}
}

// Load never fails: unreadable or missing settings fall back to defaults.
func (s *SettingsStore) Load() Settings {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logrus.WithError(err).Warn("loading settings failed, using defaults")
		}
		return DefaultSettings()
	}
	settings := DefaultSettings()
	if err := json.Unmarshal(payload, &settings); err != nil {
		logrus.WithError(err).Warn("decoding settings failed, using defaults")
		return DefaultSettings()
	}
	return settings
}

func (s *SettingsStore) Save(settings Settings) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		logrus.WithError(err).Warn("persisting settings failed")
		return
	}
	payload, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		logrus.WithError(err).Warn("persisting settings failed")
		return
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		logrus.WithError(err).Warn("persisting settings failed")
	}
}
