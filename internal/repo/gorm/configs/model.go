package configs

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Game is the DB model for a configurable game.
type Game struct {
	gorm.Model
	GameID           string `gorm:"size:36;uniqueIndex;not null"`
	Name             string
	Category         string `gorm:"size:32;index"`
	CurrentVersionID string `gorm:"size:36"`
	Enabled          bool   `gorm:"default:true"`
}

// Version is the DB model for one config lineage entry. Rows are insert-only;
// the autoincrement id doubles as creation order.
type Version struct {
	gorm.Model
	VersionID string `gorm:"size:36;uniqueIndex;not null"`
	GameID    string `gorm:"size:36;index;not null"`
	Version   string `gorm:"size:32;not null"`
	CreatedBy string `gorm:"size:64"`
	Status    string `gorm:"size:16;default:draft"`
	Notes     string `gorm:"type:text"`
}

// Document is the DB model for one stored config snapshot. Insert-only; the
// current document for (game, type) is the newest row.
type Document struct {
	gorm.Model
	DocumentID      string `gorm:"size:36;uniqueIndex;not null"`
	GameID          string `gorm:"size:36;index:idx_doc_game_type,priority:1;not null"`
	ConfigType      string `gorm:"size:32;index:idx_doc_game_type,priority:2;not null"`
	ConfigVersionID string `gorm:"size:36;index"`
	SchemaVersion   int    `gorm:"default:1"`
	Payload         datatypes.JSON
	CreatedBy       string `gorm:"size:64"`
}
