package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/zeromicro/go-zero/rest/pathvar"
)

func TestDiffConfigHandler(t *testing.T) {
	svcCtx := newTestSvcContext(t)

	first := postConfig(t, svcCtx, "slot-1", "slot-advanced", map[string]any{
		"payload": map[string]any{
			"spin_speed":             "fast",
			"autoplay_default_spins": 25,
			"autoplay_max_spins":     200,
		},
	})
	second := postConfig(t, svcCtx, "slot-1", "slot-advanced", map[string]any{
		"payload": map[string]any{
			"spin_speed":             "slow",
			"autoplay_default_spins": 10,
			"autoplay_max_spins":     50,
		},
	})
	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Fatalf("saves failed: %d %d", first.Code, second.Code)
	}
	var fromResp, toResp map[string]any
	if err := json.Unmarshal(first.Body.Bytes(), &fromResp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := json.Unmarshal(second.Body.Bytes(), &toResp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	fromID, _ := fromResp["config_version_id"].(string)
	toID, _ := toResp["config_version_id"].(string)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/games/slot-1/configs/slot-advanced/diff?from_version_id="+fromID+"&to_version_id="+toID, nil)
	req = pathvar.WithVars(req, map[string]string{"game_id": "slot-1", "config_type": "slot-advanced"})
	w := httptest.NewRecorder()
	DiffConfigHandler(svcCtx)(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	changes, ok := resp["changes"].([]any)
	if !ok || len(changes) != 3 {
		t.Fatalf("changes = %v", resp["changes"])
	}
	paths := map[string]bool{}
	for _, raw := range changes {
		ch := raw.(map[string]any)
		if ch["change_type"] != "modified" {
			t.Fatalf("change = %v", ch)
		}
		paths[ch["field_path"].(string)] = true
	}
	for _, want := range []string{"spin_speed", "autoplay.autoplay_default_spins", "autoplay.autoplay_max_spins"} {
		if !paths[want] {
			t.Fatalf("missing %q in %v", want, paths)
		}
	}
}

func TestDiffConfigHandler_VersionNotFound(t *testing.T) {
	svcCtx := newTestSvcContext(t)
	if w := postConfig(t, svcCtx, "slot-1", "slot-advanced", map[string]any{
		"payload": map[string]any{
			"spin_speed":             "fast",
			"autoplay_default_spins": 25,
			"autoplay_max_spins":     200,
		},
	}); w.Code != http.StatusOK {
		t.Fatalf("save: %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/games/slot-1/configs/slot-advanced/diff?from_version_id=missing&to_version_id=missing", nil)
	req = pathvar.WithVars(req, map[string]string{"game_id": "slot-1", "config_type": "slot-advanced"})
	w := httptest.NewRecorder()
	DiffConfigHandler(svcCtx)(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	details, ok := resp["details"].(map[string]any)
	if !ok || details["reason"] != "version_not_found" {
		t.Fatalf("details = %v", resp["details"])
	}
}
