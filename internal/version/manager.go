// Package version mints config version records for a game's lineage.
package version

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stakehouse/pitboss/internal/ports"
)

// Manager computes and persists the next semantic version of a game's config
// lineage. There is no error path beyond storage faults: a missing or
// malformed predecessor simply restarts the lineage at 1.0.0.
type Manager struct {
	versions ports.VersionStore
}

func NewManager(versions ports.VersionStore) *Manager {
	return &Manager{versions: versions}
}

// Next loads the most recent version for gameID, bumps it, persists the new
// record in draft status, and moves the game's current-version pointer.
func (m *Manager) Next(ctx context.Context, gameID, createdBy, notes string) (*ports.GameConfigVersion, error) {
	latest, err := m.versions.Latest(ctx, gameID)
	if err != nil {
		return nil, err
	}
	next := "1.0.0"
	if latest != nil {
		next = bump(latest.Version)
	}
	rec := &ports.GameConfigVersion{
		ID:        uuid.NewString(),
		GameID:    gameID,
		Version:   next,
		CreatedBy: createdBy,
		Status:    ports.VersionStatusDraft,
		Notes:     notes,
		CreatedAt: time.Now().UTC(),
	}
	if err := m.versions.Insert(ctx, rec); err != nil {
		return nil, err
	}
	if err := m.versions.SetCurrent(ctx, gameID, rec.ID); err != nil {
		return nil, err
	}
	return rec, nil
}

// bump increments the patch component. Anything that does not parse as
// major.minor.patch resets the lineage to 1.0.0.
func bump(prev string) string {
	parts := strings.Split(prev, ".")
	if len(parts) != 3 {
		return "1.0.0"
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return "1.0.0"
		}
		nums[i] = n
	}
	return fmt.Sprintf("%d.%d.%d", nums[0], nums[1], nums[2]+1)
}
