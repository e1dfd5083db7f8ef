package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"focusforge/internal/modules/rewards/domain"
	rewardsout "focusforge/internal/modules/rewards/port/out"
	apperrors "focusforge/internal/platform/errors"
)

// FileSnapshotStore keeps the rewards record as one JSON document under the
// data directory. Save rewrites the whole file so a snapshot is always
// internally consistent.
type FileSnapshotStore struct {
	path string
}

func NewFileSnapshotStore(dataPath string) rewardsout.SnapshotStore {
	return &FileSnapshotStore{path: filepath.Join(dataPath, "rewards.json")}
}

func (s *FileSnapshotStore) Load(_ context.Context) (domain.Ledger, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Ledger{}, apperrors.ErrNotFound
		}
		return domain.Ledger{}, fmt.Errorf("read rewards snapshot: %w", err)
	}
	var ledger domain.Ledger
	if err := json.Unmarshal(payload, &ledger); err != nil {
		return domain.Ledger{}, fmt.Errorf("decode rewards snapshot: %w", err)
	}
	return ledger, nil
}

func (s *FileSnapshotStore) Save(_ context.Context, ledger domain.Ledger) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	payload, err := json.MarshalIndent(ledger, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal rewards snapshot: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write rewards snapshot: %w", err)
	}
	return nil
}

func (s *FileSnapshotStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear rewards snapshot: %w", err)
	}
	return nil
}
