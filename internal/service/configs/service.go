// Package configs orchestrates the game-config engine: validation, version
// minting, append-only persistence, auditing, and the diff read path.
package configs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/stakehouse/pitboss/internal/audit/chain"
	"github.com/stakehouse/pitboss/internal/gameconfig"
	"github.com/stakehouse/pitboss/internal/gameconfig/diff"
	"github.com/stakehouse/pitboss/internal/ports"
	"github.com/stakehouse/pitboss/internal/version"
)

var (
	ErrGameNotFound     = errors.New("game not found")
	ErrConfigNotFound   = errors.New("config document not found")
	ErrVersionNotFound  = errors.New("config version not found")
	ErrTypeNotSupported = errors.New("config type not supported")
)

// NotAvailableError marks a config type the game's category does not offer.
type NotAvailableError struct {
	ConfigType gameconfig.Type
	Category   string
}

func (e *NotAvailableError) Error() string {
	return fmt.Sprintf("config type %s not available for category %s", e.ConfigType, e.Category)
}

// Code is the machine-readable error code for the HTTP boundary, e.g.
// DICE_MATH_NOT_AVAILABLE_FOR_GAME.
func (e *NotAvailableError) Code() string { return e.ConfigType.NotAvailableCode() }

// typesByCategory maps a game category to the config types it may carry.
var typesByCategory = map[string][]gameconfig.Type{
	"dice":      {gameconfig.TypeDiceMath},
	"crash":     {gameconfig.TypeCrashMath},
	"slot":      {gameconfig.TypeSlotAdvanced, gameconfig.TypePaytable, gameconfig.TypeReelStrips, gameconfig.TypeJackpots},
	"blackjack": {gameconfig.TypeBlackjackRules},
	"poker":     {gameconfig.TypePokerRules},
}

func availableFor(category string, t gameconfig.Type) bool {
	for _, have := range typesByCategory[category] {
		if have == t {
			return true
		}
	}
	return false
}

// Deps wires the storage and side-effect collaborators. Audit and Cache are
// optional; a nil value disables the concern.
type Deps struct {
	Games    ports.GameStore
	Versions ports.VersionStore
	Docs     ports.ConfigStore
	Audit    *chain.Writer
	Cache    *redis.Client
	CacheTTL time.Duration
}

// Service is safe for concurrent use. Saves are last-write-wins: two
// concurrent saves for the same game may mint the same next patch number;
// both documents persist and the newer row wins the "current" read.
type Service struct {
	games    ports.GameStore
	versions ports.VersionStore
	docs     ports.ConfigStore
	minter   *version.Manager
	audit    *chain.Writer
	cache    *redis.Client
	cacheTTL time.Duration
}

func NewService(d Deps) *Service {
	ttl := d.CacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Service{
		games:    d.Games,
		versions: d.Versions,
		docs:     d.Docs,
		minter:   version.NewManager(d.Versions),
		audit:    d.Audit,
		cache:    d.Cache,
		cacheTTL: ttl,
	}
}

type SaveInput struct {
	GameID    string
	Type      gameconfig.Type
	Payload   map[string]any
	AdminID   string
	Notes     string
	RequestID string
}

type SaveResult struct {
	Document *ports.ConfigDocument
	Version  *ports.GameConfigVersion
}

// Save runs the full write pipeline: availability check, typed validation,
// version mint, append-only insert, audit record, cache refresh. Validation
// failures come back as *gameconfig.ValidationError.
func (s *Service) Save(ctx context.Context, in SaveInput) (*SaveResult, error) {
	if !in.Type.Valid() {
		return nil, ErrTypeNotSupported
	}
	game, err := s.games.Get(ctx, in.GameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, ErrGameNotFound
	}
	if !availableFor(game.Category, in.Type) {
		return nil, &NotAvailableError{ConfigType: in.Type, Category: game.Category}
	}

	normalized, verr := gameconfig.Validate(in.Type, in.Payload)
	if verr != nil {
		return nil, verr
	}
	payload, err := json.Marshal(normalized)
	if err != nil {
		return nil, err
	}

	prev, err := s.docs.FindLatest(ctx, in.GameID, in.Type)
	if err != nil {
		return nil, err
	}

	ver, err := s.minter.Next(ctx, in.GameID, in.AdminID, in.Notes)
	if err != nil {
		return nil, err
	}

	doc := &ports.ConfigDocument{
		ID:              uuid.NewString(),
		GameID:          in.GameID,
		ConfigType:      in.Type,
		ConfigVersionID: ver.ID,
		SchemaVersion:   1,
		Payload:         payload,
		CreatedBy:       in.AdminID,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.docs.Insert(ctx, doc); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, in, prev, doc)
	s.cacheSet(ctx, doc)

	return &SaveResult{Document: doc, Version: ver}, nil
}

// Current returns the most recent document for (game, type), read through
// the cache when one is configured.
func (s *Service) Current(ctx context.Context, gameID string, t gameconfig.Type) (*ports.ConfigDocument, error) {
	if !t.Valid() {
		return nil, ErrTypeNotSupported
	}
	game, err := s.games.Get(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, ErrGameNotFound
	}
	if doc := s.cacheGet(ctx, gameID, t); doc != nil {
		return doc, nil
	}
	doc, err := s.docs.FindLatest(ctx, gameID, t)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrConfigNotFound
	}
	s.cacheSet(ctx, doc)
	return doc, nil
}

// Versions lists a game's config lineage, newest first.
func (s *Service) Versions(ctx context.Context, gameID string) ([]*ports.GameConfigVersion, error) {
	game, err := s.games.Get(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, ErrGameNotFound
	}
	return s.versions.List(ctx, gameID)
}

type DiffResult struct {
	GameID        string          `json:"game_id"`
	ConfigType    gameconfig.Type `json:"config_type"`
	FromVersionID string          `json:"from_version_id"`
	ToVersionID   string          `json:"to_version_id"`
	Changes       []diff.Change   `json:"changes"`
}

// Diff loads two stored snapshots of the same type, shapes them through the
// type's diffable projection, and returns their structural differences.
// Neither snapshot is mutated.
func (s *Service) Diff(ctx context.Context, gameID string, t gameconfig.Type, fromVersionID, toVersionID string) (*DiffResult, error) {
	if !t.Valid() {
		return nil, ErrTypeNotSupported
	}
	game, err := s.games.Get(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, ErrGameNotFound
	}
	from, err := s.loadProjection(ctx, gameID, t, fromVersionID)
	if err != nil {
		return nil, err
	}
	to, err := s.loadProjection(ctx, gameID, t, toVersionID)
	if err != nil {
		return nil, err
	}
	return &DiffResult{
		GameID:        gameID,
		ConfigType:    t,
		FromVersionID: fromVersionID,
		ToVersionID:   toVersionID,
		Changes:       diff.Diff(from, to),
	}, nil
}

func (s *Service) loadProjection(ctx context.Context, gameID string, t gameconfig.Type, versionID string) (map[string]any, error) {
	doc, err := s.docs.FindByVersion(ctx, gameID, t, versionID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: %s", ErrVersionNotFound, versionID)
	}
	var payload map[string]any
	if err := json.Unmarshal(doc.Payload, &payload); err != nil {
		return nil, err
	}
	return diff.Project(t, payload), nil
}

// recordAudit is fire-and-forget: an audit write failure is logged, never
// surfaced to the save caller.
func (s *Service) recordAudit(ctx context.Context, in SaveInput, prev, doc *ports.ConfigDocument) {
	if s.audit == nil {
		return
	}
	rec := chain.Record{
		Action:          "config." + string(in.Type) + ".save",
		GameID:          in.GameID,
		AdminID:         in.AdminID,
		ConfigVersionID: doc.ConfigVersionID,
		NewValue:        doc.Payload,
		RequestID:       in.RequestID,
	}
	if prev != nil {
		rec.OldValue = prev.Payload
	}
	if err := s.audit.Record(rec); err != nil {
		logx.WithContext(ctx).Errorf("audit record: %v", err)
	}
}

func cacheKey(gameID string, t gameconfig.Type) string {
	return "cfg:" + gameID + ":" + string(t)
}

func (s *Service) cacheGet(ctx context.Context, gameID string, t gameconfig.Type) *ports.ConfigDocument {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, cacheKey(gameID, t)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logx.WithContext(ctx).Errorf("config cache get: %v", err)
		}
		return nil
	}
	var doc ports.ConfigDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil
	}
	return &doc
}

func (s *Service) cacheSet(ctx context.Context, doc *ports.ConfigDocument) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKey(doc.GameID, doc.ConfigType), raw, s.cacheTTL).Err(); err != nil {
		logx.WithContext(ctx).Errorf("config cache set: %v", err)
	}
}
