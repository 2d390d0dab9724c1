package configs

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/stakehouse/pitboss/internal/gameconfig"
	"github.com/stakehouse/pitboss/internal/ports"
)

func AutoMigrate(db *gorm.DB) error { return db.AutoMigrate(&Game{}, &Version{}, &Document{}) }

// GameRepo implements ports.GameStore.
type GameRepo struct{ db *gorm.DB }

func NewGameRepo(db *gorm.DB) *GameRepo { return &GameRepo{db: db} }

func (r *GameRepo) Get(ctx context.Context, id string) (*ports.Game, error) {
	var g Game
	err := r.db.WithContext(ctx).Where("game_id=?", id).First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ports.Game{
		ID:               g.GameID,
		Name:             g.Name,
		Category:         g.Category,
		CurrentVersionID: g.CurrentVersionID,
		Enabled:          g.Enabled,
		CreatedAt:        g.CreatedAt,
		UpdatedAt:        g.UpdatedAt,
	}, nil
}

func (r *GameRepo) Create(ctx context.Context, g *ports.Game) error {
	row := Game{
		GameID:   g.ID,
		Name:     g.Name,
		Category: g.Category,
		Enabled:  g.Enabled,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

// VersionRepo implements ports.VersionStore. Rows are insert-only; the
// autoincrement id is the creation order.
type VersionRepo struct{ db *gorm.DB }

func NewVersionRepo(db *gorm.DB) *VersionRepo { return &VersionRepo{db: db} }

func (r *VersionRepo) Latest(ctx context.Context, gameID string) (*ports.GameConfigVersion, error) {
	var v Version
	err := r.db.WithContext(ctx).Where("game_id=?", gameID).Order("id DESC").First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return versionDTO(&v), nil
}

func (r *VersionRepo) Insert(ctx context.Context, v *ports.GameConfigVersion) error {
	row := Version{
		VersionID: v.ID,
		GameID:    v.GameID,
		Version:   v.Version,
		CreatedBy: v.CreatedBy,
		Status:    v.Status,
		Notes:     v.Notes,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *VersionRepo) List(ctx context.Context, gameID string) ([]*ports.GameConfigVersion, error) {
	var rows []Version
	if err := r.db.WithContext(ctx).Where("game_id=?", gameID).Order("id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*ports.GameConfigVersion, 0, len(rows))
	for i := range rows {
		out = append(out, versionDTO(&rows[i]))
	}
	return out, nil
}

func (r *VersionRepo) SetCurrent(ctx context.Context, gameID, versionID string) error {
	return r.db.WithContext(ctx).
		Model(&Game{}).
		Where("game_id=?", gameID).
		Update("current_version_id", versionID).Error
}

// DocumentRepo implements ports.ConfigStore. Insert-only; the current
// document for (game, type) is the newest row.
type DocumentRepo struct{ db *gorm.DB }

func NewDocumentRepo(db *gorm.DB) *DocumentRepo { return &DocumentRepo{db: db} }

func (r *DocumentRepo) FindLatest(ctx context.Context, gameID string, t gameconfig.Type) (*ports.ConfigDocument, error) {
	var d Document
	err := r.db.WithContext(ctx).
		Where("game_id=? AND config_type=?", gameID, string(t)).
		Order("id DESC").
		First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return documentDTO(&d), nil
}

func (r *DocumentRepo) Insert(ctx context.Context, doc *ports.ConfigDocument) error {
	row := Document{
		DocumentID:      doc.ID,
		GameID:          doc.GameID,
		ConfigType:      string(doc.ConfigType),
		ConfigVersionID: doc.ConfigVersionID,
		SchemaVersion:   doc.SchemaVersion,
		Payload:         datatypes.JSON(doc.Payload),
		CreatedBy:       doc.CreatedBy,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *DocumentRepo) FindByVersion(ctx context.Context, gameID string, t gameconfig.Type, versionID string) (*ports.ConfigDocument, error) {
	var d Document
	err := r.db.WithContext(ctx).
		Where("game_id=? AND config_type=? AND config_version_id=?", gameID, string(t), versionID).
		Order("id DESC").
		First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return documentDTO(&d), nil
}

func versionDTO(v *Version) *ports.GameConfigVersion {
	return &ports.GameConfigVersion{
		ID:        v.VersionID,
		GameID:    v.GameID,
		Version:   v.Version,
		CreatedBy: v.CreatedBy,
		Status:    v.Status,
		Notes:     v.Notes,
		CreatedAt: v.CreatedAt,
	}
}

func documentDTO(d *Document) *ports.ConfigDocument {
	return &ports.ConfigDocument{
		ID:              d.DocumentID,
		GameID:          d.GameID,
		ConfigType:      gameconfig.Type(d.ConfigType),
		ConfigVersionID: d.ConfigVersionID,
		SchemaVersion:   d.SchemaVersion,
		Payload:         []byte(d.Payload),
		CreatedBy:       d.CreatedBy,
		CreatedAt:       d.CreatedAt,
	}
}
