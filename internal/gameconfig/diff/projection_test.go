package diff

import (
	"testing"

	"github.com/stakehouse/pitboss/internal/gameconfig"
)

func TestProject_SlotAdvancedNestsAutoplay(t *testing.T) {
	payload := map[string]any{
		"spin_speed":             "fast",
		"autoplay_default_spins": 25.0,
		"autoplay_max_spins":     200.0,
	}
	out := Project(gameconfig.TypeSlotAdvanced, payload)
	if _, ok := out["autoplay_default_spins"]; ok {
		t.Fatalf("autoplay field left at top level: %v", out)
	}
	autoplay, ok := out["autoplay"].(map[string]any)
	if !ok {
		t.Fatalf("autoplay group missing: %v", out)
	}
	if autoplay["autoplay_default_spins"] != 25.0 || autoplay["autoplay_max_spins"] != 200.0 {
		t.Fatalf("autoplay = %v", autoplay)
	}
	if out["spin_speed"] != "fast" {
		t.Fatalf("spin_speed = %v", out["spin_speed"])
	}
	// input untouched
	if _, ok := payload["autoplay"]; ok {
		t.Fatalf("projection mutated its input: %v", payload)
	}
}

func TestProject_SlotAdvancedDiffScenario(t *testing.T) {
	from := Project(gameconfig.TypeSlotAdvanced, map[string]any{
		"spin_speed": "fast", "autoplay_default_spins": 25.0, "autoplay_max_spins": 200.0,
	})
	to := Project(gameconfig.TypeSlotAdvanced, map[string]any{
		"spin_speed": "slow", "autoplay_default_spins": 10.0, "autoplay_max_spins": 50.0,
	})
	got := Diff(from, to)
	if len(got) != 3 {
		t.Fatalf("changes = %v", got)
	}
	paths := map[string]bool{}
	for _, ch := range got {
		if ch.ChangeType != ChangeModified {
			t.Fatalf("change type = %+v", ch)
		}
		paths[ch.FieldPath] = true
	}
	for _, want := range []string{"spin_speed", "autoplay.autoplay_default_spins", "autoplay.autoplay_max_spins"} {
		if !paths[want] {
			t.Fatalf("missing path %q in %v", want, paths)
		}
	}
}

func TestProject_DefaultCopies(t *testing.T) {
	payload := map[string]any{"base_rtp": 96.0}
	out := Project(gameconfig.TypeCrashMath, payload)
	out["base_rtp"] = 97.0
	if payload["base_rtp"] != 96.0 {
		t.Fatalf("projection aliased its input")
	}
}
