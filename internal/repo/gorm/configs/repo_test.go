package configs

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/stakehouse/pitboss/internal/gameconfig"
	"github.com/stakehouse/pitboss/internal/ports"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestGameRepo_CreateGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewGameRepo(db)
	ctx := context.Background()

	if err := repo.Create(ctx, &ports.Game{ID: "g1", Name: "Lucky Dice", Category: "dice", Enabled: true}); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := repo.Get(ctx, "g1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Name != "Lucky Dice" || got.Category != "dice" || !got.Enabled {
		t.Fatalf("game = %+v", got)
	}

	missing, err := repo.Get(ctx, "nope")
	if err != nil || missing != nil {
		t.Fatalf("missing game: %v %v", missing, err)
	}
}

func TestVersionRepo_LineageOrder(t *testing.T) {
	db := newTestDB(t)
	games := NewGameRepo(db)
	versions := NewVersionRepo(db)
	ctx := context.Background()

	if err := games.Create(ctx, &ports.Game{ID: "g1", Category: "dice"}); err != nil {
		t.Fatalf("create game: %v", err)
	}

	latest, err := versions.Latest(ctx, "g1")
	if err != nil || latest != nil {
		t.Fatalf("empty lineage: %v %v", latest, err)
	}

	for i, v := range []string{"1.0.0", "1.0.1", "1.0.2"} {
		rec := &ports.GameConfigVersion{ID: string(rune('a' + i)), GameID: "g1", Version: v, Status: ports.VersionStatusDraft}
		if err := versions.Insert(ctx, rec); err != nil {
			t.Fatalf("insert %s: %v", v, err)
		}
	}

	latest, err = versions.Latest(ctx, "g1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest.Version != "1.0.2" {
		t.Fatalf("latest = %+v", latest)
	}

	list, err := versions.List(ctx, "g1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 || list[0].Version != "1.0.2" || list[2].Version != "1.0.0" {
		t.Fatalf("list order = %+v", list)
	}

	if err := versions.SetCurrent(ctx, "g1", latest.ID); err != nil {
		t.Fatalf("set current: %v", err)
	}
	game, err := games.Get(ctx, "g1")
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	if game.CurrentVersionID != latest.ID {
		t.Fatalf("current pointer = %q", game.CurrentVersionID)
	}
}

func TestDocumentRepo_AppendOnly(t *testing.T) {
	db := newTestDB(t)
	docs := NewDocumentRepo(db)
	ctx := context.Background()

	missing, err := docs.FindLatest(ctx, "g1", gameconfig.TypeDiceMath)
	if err != nil || missing != nil {
		t.Fatalf("empty store: %v %v", missing, err)
	}

	for i, payload := range []string{`{"n":1}`, `{"n":2}`} {
		doc := &ports.ConfigDocument{
			ID:              string(rune('a' + i)),
			GameID:          "g1",
			ConfigType:      gameconfig.TypeDiceMath,
			ConfigVersionID: "v" + string(rune('a'+i)),
			SchemaVersion:   1,
			Payload:         []byte(payload),
		}
		if err := docs.Insert(ctx, doc); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	latest, err := docs.FindLatest(ctx, "g1", gameconfig.TypeDiceMath)
	if err != nil {
		t.Fatalf("find latest: %v", err)
	}
	if latest.ID != "b" || string(latest.Payload) != `{"n":2}` {
		t.Fatalf("latest = %+v", latest)
	}

	// earlier snapshot still addressable by its version
	old, err := docs.FindByVersion(ctx, "g1", gameconfig.TypeDiceMath, "va")
	if err != nil {
		t.Fatalf("find by version: %v", err)
	}
	if old == nil || string(old.Payload) != `{"n":1}` {
		t.Fatalf("old = %+v", old)
	}

	// type is part of the key
	other, err := docs.FindLatest(ctx, "g1", gameconfig.TypeCrashMath)
	if err != nil || other != nil {
		t.Fatalf("cross-type read: %v %v", other, err)
	}
}
