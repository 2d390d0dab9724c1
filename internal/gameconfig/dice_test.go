package gameconfig

import "testing"

func validDicePayload() map[string]any {
	return map[string]any{
		"range_min":              0.0,
		"range_max":              99.99,
		"step":                   0.01,
		"house_edge_percent":     1.0,
		"min_payout_multiplier":  1.01,
		"max_payout_multiplier":  990.0,
		"allow_over":             true,
		"allow_under":            true,
		"min_target":             1.0,
		"max_target":             98.0,
		"round_duration_seconds": 5,
		"bet_phase_seconds":      3,
		"max_session_loss":       1000.0,
		"enforcement_mode":       "hard_block",
		"country_overrides": map[string]any{
			"TR": map[string]any{"max_session_loss": 800.0},
		},
	}
}

func TestValidateDiceMath_Valid(t *testing.T) {
	cfg, err := ValidateDiceMath(validDicePayload())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxSessionLoss == nil || *cfg.MaxSessionLoss != 1000.0 {
		t.Fatalf("max_session_loss not preserved: %v", cfg.MaxSessionLoss)
	}
	if cfg.EnforcementMode != EnforcementHardBlock {
		t.Fatalf("enforcement_mode = %q", cfg.EnforcementMode)
	}
	tr, ok := cfg.CountryOverrides["TR"]
	if !ok {
		t.Fatalf("TR override missing: %v", cfg.CountryOverrides)
	}
	if tr["max_session_loss"] != 800.0 {
		t.Fatalf("TR.max_session_loss = %v", tr["max_session_loss"])
	}
}

func TestValidateDiceMath_BadEnforcementMode(t *testing.T) {
	p := validDicePayload()
	p["enforcement_mode"] = "invalid_mode"
	_, err := ValidateDiceMath(p)
	if err == nil {
		t.Fatalf("expected error")
	}
	if err.Code != "DICE_MATH_VALIDATION_FAILED" {
		t.Fatalf("code = %q", err.Code)
	}
	if err.Details.Field != "enforcement_mode" || err.Details.Reason != ReasonUnsupportedEnforcementMode {
		t.Fatalf("details = %+v", err.Details)
	}
}

func TestValidateDiceMath_DefaultEnforcementMode(t *testing.T) {
	p := validDicePayload()
	delete(p, "enforcement_mode")
	cfg, err := ValidateDiceMath(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.EnforcementMode != EnforcementLogOnly {
		t.Fatalf("default enforcement_mode = %q", cfg.EnforcementMode)
	}
}

func TestValidateDiceMath_InvalidCountryCode(t *testing.T) {
	p := validDicePayload()
	p["country_overrides"] = map[string]any{"TUR": map[string]any{"max_session_loss": 800.0}}
	_, err := ValidateDiceMath(p)
	if err == nil {
		t.Fatalf("expected error")
	}
	if err.Details.Field != "country_overrides" || err.Details.Reason != ReasonInvalidCountryCode {
		t.Fatalf("details = %+v", err.Details)
	}
}

func TestValidateDiceMath_RuleOrder(t *testing.T) {
	// Two violations at once: range inverted and step zero. The range rule
	// runs first and must be the one reported.
	p := validDicePayload()
	p["range_min"] = 100.0
	p["range_max"] = 50.0
	p["step"] = 0
	_, err := ValidateDiceMath(p)
	if err == nil {
		t.Fatalf("expected error")
	}
	if err.Details.Field != "range_min" || err.Details.Reason != ReasonInvalidRange {
		t.Fatalf("details = %+v", err.Details)
	}
}

func TestValidateDiceMath_StepRules(t *testing.T) {
	p := validDicePayload()
	p["step"] = -0.5
	if _, err := ValidateDiceMath(p); err == nil || err.Details.Reason != ReasonInvalidStep {
		t.Fatalf("step<=0: %+v", err)
	}

	p = validDicePayload()
	p["step"] = 0.0001
	if _, err := ValidateDiceMath(p); err == nil || err.Details.Reason != ReasonTooManySteps {
		t.Fatalf("too many steps: %+v", err)
	}
}

func TestValidateDiceMath_HouseEdgeOutOfRange(t *testing.T) {
	for _, edge := range []float64{0, -1, 5.01} {
		p := validDicePayload()
		p["house_edge_percent"] = edge
		_, err := ValidateDiceMath(p)
		if err == nil || err.Details.Field != "house_edge_percent" || err.Details.Reason != ReasonOutOfRange {
			t.Fatalf("edge %v: %+v", edge, err)
		}
	}
}

func TestValidateDiceMath_TargetsOutsideRange(t *testing.T) {
	p := validDicePayload()
	p["min_target"] = -5.0
	if _, err := ValidateDiceMath(p); err == nil || err.Details.Reason != ReasonInvalidTargetRange {
		t.Fatalf("min_target: %+v", err)
	}

	p = validDicePayload()
	p["max_target"] = 100.5
	if _, err := ValidateDiceMath(p); err == nil || err.Details.Field != "max_target" {
		t.Fatalf("max_target: %+v", err)
	}
}

func TestValidateDiceMath_RoundTiming(t *testing.T) {
	p := validDicePayload()
	p["round_duration_seconds"] = 2
	p["bet_phase_seconds"] = 3
	_, err := ValidateDiceMath(p)
	if err == nil || err.Details.Reason != ReasonInvalidRoundTiming {
		t.Fatalf("timing: %+v", err)
	}
}

func TestValidateDiceMath_NeitherModeAllowed(t *testing.T) {
	p := validDicePayload()
	p["allow_over"] = false
	p["allow_under"] = false
	_, err := ValidateDiceMath(p)
	if err == nil || err.Details.Field != "allow_over" || err.Details.Reason != ReasonInvalidMode {
		t.Fatalf("modes: %+v", err)
	}
}

func TestValidateDiceMath_SeedRotation(t *testing.T) {
	p := validDicePayload()
	p["seed_rotation_interval_rounds"] = 0
	_, err := ValidateDiceMath(p)
	if err == nil || err.Details.Reason != ReasonInvalidSeedRotationInterval {
		t.Fatalf("seed rotation: %+v", err)
	}

	p = validDicePayload()
	p["seed_rotation_interval_rounds"] = 500
	cfg, verr := ValidateDiceMath(p)
	if verr != nil {
		t.Fatalf("unexpected error: %v", verr)
	}
	if cfg.SeedRotationIntervalRounds == nil || *cfg.SeedRotationIntervalRounds != 500 {
		t.Fatalf("seed rotation = %v", cfg.SeedRotationIntervalRounds)
	}
}

func TestValidateDiceMath_MissingRequired(t *testing.T) {
	p := validDicePayload()
	delete(p, "range_min")
	_, err := ValidateDiceMath(p)
	if err == nil || err.Details.Field != "range_min" || err.Details.Reason != ReasonMissing {
		t.Fatalf("missing: %+v", err)
	}
}
