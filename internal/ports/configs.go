package ports

import (
	"context"
	"encoding/json"
	"time"

	"github.com/stakehouse/pitboss/internal/gameconfig"
)

// Version lifecycle statuses.
const (
	VersionStatusDraft    = "draft"
	VersionStatusActive   = "active"
	VersionStatusArchived = "archived"
)

// Game is the domain DTO for a configurable game. Category decides which
// config types the game may carry.
type Game struct {
	ID               string
	Name             string
	Category         string
	CurrentVersionID string
	Enabled          bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// GameConfigVersion is one immutable entry of a game's config lineage.
// Records are never mutated after creation; the lineage only grows.
type GameConfigVersion struct {
	ID        string
	GameID    string
	Version   string
	CreatedBy string
	Status    string
	Notes     string
	CreatedAt time.Time
}

// ConfigDocument is one immutable stored snapshot of a config type for a
// game. Saves insert new documents; the current one is the newest for
// (game, type).
type ConfigDocument struct {
	ID              string
	GameID          string
	ConfigType      gameconfig.Type
	ConfigVersionID string
	SchemaVersion   int
	Payload         json.RawMessage
	CreatedBy       string
	CreatedAt       time.Time
}

// GameStore looks up games. Get returns (nil, nil) when the game does not
// exist.
type GameStore interface {
	Get(ctx context.Context, id string) (*Game, error)
	Create(ctx context.Context, g *Game) error
}

// VersionStore persists the append-only version lineage. Latest returns
// (nil, nil) for a game with no versions yet.
type VersionStore interface {
	Latest(ctx context.Context, gameID string) (*GameConfigVersion, error)
	Insert(ctx context.Context, v *GameConfigVersion) error
	List(ctx context.Context, gameID string) ([]*GameConfigVersion, error)
	SetCurrent(ctx context.Context, gameID, versionID string) error
}

// ConfigStore persists config documents append-only. Find methods return
// (nil, nil) when nothing matches.
type ConfigStore interface {
	FindLatest(ctx context.Context, gameID string, t gameconfig.Type) (*ConfigDocument, error)
	Insert(ctx context.Context, doc *ConfigDocument) error
	FindByVersion(ctx context.Context, gameID string, t gameconfig.Type, versionID string) (*ConfigDocument, error)
}
