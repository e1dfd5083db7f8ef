package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"focusforge/internal/modules/shop/domain"
	shopout "focusforge/internal/modules/shop/port/out"
	apperrors "focusforge/internal/platform/errors"
)

type FileGameStateStore struct {
	path string
}

func NewFileGameStateStore(dataPath string) shopout.GameStateStore {
	return &FileGameStateStore{path: filepath.Join(dataPath, "gamestate.json")}
}

func (s *FileGameStateStore) Load(_ context.Context) (domain.GameState, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.GameState{}, apperrors.ErrNotFound
		}
		return domain.GameState{}, fmt.Errorf("read game state: %w", err)
	}
	var state domain.GameState
	if err := json.Unmarshal(payload, &state); err != nil {
		return domain.GameState{}, fmt.Errorf("decode game state: %w", err)
	}
	return state, nil
}

func (s *FileGameStateStore) Save(_ context.Context, state domain.GameState) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	payload, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal game state: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write game state: %w", err)
	}
	return nil
}
