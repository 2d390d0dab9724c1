package configs

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/stakehouse/pitboss/internal/audit/chain"
	"github.com/stakehouse/pitboss/internal/gameconfig"
	"github.com/stakehouse/pitboss/internal/ports"
	configrepo "github.com/stakehouse/pitboss/internal/repo/gorm/configs"
)

func newTestService(t *testing.T) (*Service, *configrepo.GameRepo) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := configrepo.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	audit, err := chain.NewWriter(filepath.Join(t.TempDir(), "audit.log"))
	if err != nil {
		t.Fatalf("audit writer: %v", err)
	}
	t.Cleanup(func() { audit.Close() })

	games := configrepo.NewGameRepo(db)
	svc := NewService(Deps{
		Games:    games,
		Versions: configrepo.NewVersionRepo(db),
		Docs:     configrepo.NewDocumentRepo(db),
		Audit:    audit,
	})
	return svc, games
}

func seedGame(t *testing.T, games *configrepo.GameRepo, id, category string) {
	t.Helper()
	if err := games.Create(context.Background(), &ports.Game{ID: id, Name: id, Category: category, Enabled: true}); err != nil {
		t.Fatalf("seed game: %v", err)
	}
}

func slotPayload(speed string, defaultSpins, maxSpins int) map[string]any {
	return map[string]any{
		"spin_speed":             speed,
		"autoplay_default_spins": defaultSpins,
		"autoplay_max_spins":     maxSpins,
	}
}

func TestService_SaveRoundTrip(t *testing.T) {
	svc, games := newTestService(t)
	seedGame(t, games, "slot-1", "slot")
	ctx := context.Background()

	res, err := svc.Save(ctx, SaveInput{
		GameID:  "slot-1",
		Type:    gameconfig.TypeSlotAdvanced,
		Payload: slotPayload("fast", 25, 200),
		AdminID: "admin-1",
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if res.Version.Version != "1.0.0" {
		t.Fatalf("first version = %q", res.Version.Version)
	}

	doc, err := svc.Current(ctx, "slot-1", gameconfig.TypeSlotAdvanced)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	var stored map[string]any
	if err := json.Unmarshal(doc.Payload, &stored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if stored["spin_speed"] != "fast" || stored["autoplay_default_spins"] != 25.0 || stored["autoplay_max_spins"] != 200.0 {
		t.Fatalf("stored = %v", stored)
	}
	if doc.CreatedBy != "admin-1" || doc.SchemaVersion != 1 {
		t.Fatalf("doc = %+v", doc)
	}
}

func TestService_VersionLineage(t *testing.T) {
	svc, games := newTestService(t)
	seedGame(t, games, "slot-1", "slot")
	ctx := context.Background()

	want := []string{"1.0.0", "1.0.1", "1.0.2"}
	for i, expect := range want {
		res, err := svc.Save(ctx, SaveInput{
			GameID:  "slot-1",
			Type:    gameconfig.TypeSlotAdvanced,
			Payload: slotPayload("normal", 10+i, 100),
			AdminID: "admin-1",
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
		if res.Version.Version != expect {
			t.Fatalf("save %d: version = %q, want %q", i, res.Version.Version, expect)
		}
	}

	list, err := svc.Versions(ctx, "slot-1")
	if err != nil {
		t.Fatalf("versions: %v", err)
	}
	if len(list) != 3 || list[0].Version != "1.0.2" {
		t.Fatalf("list = %+v", list)
	}
}

func TestService_ValidationFailureSavesNothing(t *testing.T) {
	svc, games := newTestService(t)
	seedGame(t, games, "slot-1", "slot")
	ctx := context.Background()

	_, err := svc.Save(ctx, SaveInput{
		GameID:  "slot-1",
		Type:    gameconfig.TypeSlotAdvanced,
		Payload: slotPayload("turbo", 10, 100),
	})
	var verr *gameconfig.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if verr.Code != "SLOT_ADVANCED_VALIDATION_FAILED" {
		t.Fatalf("code = %q", verr.Code)
	}

	if _, err := svc.Current(ctx, "slot-1", gameconfig.TypeSlotAdvanced); !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("failed save persisted something: %v", err)
	}
	list, err := svc.Versions(ctx, "slot-1")
	if err != nil {
		t.Fatalf("versions: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("failed save minted a version: %+v", list)
	}
}

func TestService_NotAvailableForCategory(t *testing.T) {
	svc, games := newTestService(t)
	seedGame(t, games, "dice-1", "dice")

	_, err := svc.Save(context.Background(), SaveInput{
		GameID:  "dice-1",
		Type:    gameconfig.TypeSlotAdvanced,
		Payload: slotPayload("fast", 10, 100),
	})
	var na *NotAvailableError
	if !errors.As(err, &na) {
		t.Fatalf("expected NotAvailableError, got %v", err)
	}
	if na.Code() != "SLOT_ADVANCED_NOT_AVAILABLE_FOR_GAME" {
		t.Fatalf("code = %q", na.Code())
	}
}

func TestService_GameNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Save(ctx, SaveInput{GameID: "ghost", Type: gameconfig.TypeDiceMath, Payload: map[string]any{}}); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("save: %v", err)
	}
	if _, err := svc.Current(ctx, "ghost", gameconfig.TypeDiceMath); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("current: %v", err)
	}
	if _, err := svc.Versions(ctx, "ghost"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("versions: %v", err)
	}
}

func TestService_UnsupportedType(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Save(context.Background(), SaveInput{GameID: "g", Type: gameconfig.Type("roulette"), Payload: map[string]any{}})
	if !errors.Is(err, ErrTypeNotSupported) {
		t.Fatalf("save: %v", err)
	}
}

func TestService_Diff(t *testing.T) {
	svc, games := newTestService(t)
	seedGame(t, games, "slot-1", "slot")
	ctx := context.Background()

	first, err := svc.Save(ctx, SaveInput{
		GameID: "slot-1", Type: gameconfig.TypeSlotAdvanced,
		Payload: slotPayload("fast", 25, 200),
	})
	if err != nil {
		t.Fatalf("save 1: %v", err)
	}
	second, err := svc.Save(ctx, SaveInput{
		GameID: "slot-1", Type: gameconfig.TypeSlotAdvanced,
		Payload: slotPayload("slow", 10, 50),
	})
	if err != nil {
		t.Fatalf("save 2: %v", err)
	}

	res, err := svc.Diff(ctx, "slot-1", gameconfig.TypeSlotAdvanced, first.Version.ID, second.Version.ID)
	if err != nil {
		t.Fatalf("diff: %v", err)
	}
	if len(res.Changes) != 3 {
		t.Fatalf("changes = %+v", res.Changes)
	}
	paths := map[string]bool{}
	for _, ch := range res.Changes {
		paths[ch.FieldPath] = true
	}
	for _, want := range []string{"spin_speed", "autoplay.autoplay_default_spins", "autoplay.autoplay_max_spins"} {
		if !paths[want] {
			t.Fatalf("missing %q in %v", want, paths)
		}
	}

	// identical versions diff empty
	same, err := svc.Diff(ctx, "slot-1", gameconfig.TypeSlotAdvanced, second.Version.ID, second.Version.ID)
	if err != nil {
		t.Fatalf("self diff: %v", err)
	}
	if len(same.Changes) != 0 {
		t.Fatalf("self diff = %+v", same.Changes)
	}
}

func TestService_DiffVersionNotFound(t *testing.T) {
	svc, games := newTestService(t)
	seedGame(t, games, "slot-1", "slot")
	ctx := context.Background()

	res, err := svc.Save(ctx, SaveInput{
		GameID: "slot-1", Type: gameconfig.TypeSlotAdvanced,
		Payload: slotPayload("fast", 25, 200),
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	_, err = svc.Diff(ctx, "slot-1", gameconfig.TypeSlotAdvanced, res.Version.ID, "missing-version")
	if !errors.Is(err, ErrVersionNotFound) {
		t.Fatalf("diff: %v", err)
	}
}

func TestService_CurrentIsNewestPerType(t *testing.T) {
	svc, games := newTestService(t)
	seedGame(t, games, "slot-1", "slot")
	ctx := context.Background()

	if _, err := svc.Save(ctx, SaveInput{
		GameID: "slot-1", Type: gameconfig.TypeSlotAdvanced,
		Payload: slotPayload("fast", 25, 200),
	}); err != nil {
		t.Fatalf("save slot-advanced: %v", err)
	}
	if _, err := svc.Save(ctx, SaveInput{
		GameID: "slot-1", Type: gameconfig.TypeJackpots,
		Payload: map[string]any{"jackpots": []any{map[string]any{
			"name": "mini", "currency": "EUR", "seed": 100.0, "cap": 1000.0,
			"contribution_percent": 1.0, "hit_frequency_param": 0.01,
		}}},
	}); err != nil {
		t.Fatalf("save jackpots: %v", err)
	}

	doc, err := svc.Current(ctx, "slot-1", gameconfig.TypeSlotAdvanced)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if doc.ConfigType != gameconfig.TypeSlotAdvanced {
		t.Fatalf("cross-type leak: %+v", doc)
	}
}
