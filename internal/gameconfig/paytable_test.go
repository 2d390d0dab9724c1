package gameconfig

import "testing"

func TestValidatePaytable_Valid(t *testing.T) {
	cfg, err := ValidatePaytable(map[string]any{
		"symbols": []any{
			map[string]any{"code": "WILD", "pays": map[string]any{"3": 50, "4": 200, "5": 1000}},
			map[string]any{"code": "A", "pays": map[string]any{"3": 5, "4": 20, "5": 100}},
		},
		"lines": 25,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Symbols) != 2 || cfg.Symbols[0].Code != "WILD" {
		t.Fatalf("symbols = %+v", cfg.Symbols)
	}
	if cfg.Symbols[0].Pays["5"] != 1000 {
		t.Fatalf("pays = %v", cfg.Symbols[0].Pays)
	}
	if cfg.Lines == nil || *cfg.Lines != 25 {
		t.Fatalf("lines = %v", cfg.Lines)
	}
}

func TestValidatePaytable_EmptySymbolCode(t *testing.T) {
	_, err := ValidatePaytable(map[string]any{
		"symbols": []any{map[string]any{"code": "", "pays": map[string]any{"3": 5}}},
	})
	if err == nil || err.Details.Field != "code" || err.Details.Reason != ReasonInvalidSymbol {
		t.Fatalf("empty code: %+v", err)
	}
	if err.Details.Index == nil || *err.Details.Index != 0 {
		t.Fatalf("index = %v", err.Details.Index)
	}
}

func TestValidatePaytable_NegativePay(t *testing.T) {
	_, err := ValidatePaytable(map[string]any{
		"symbols": []any{map[string]any{"code": "K", "pays": map[string]any{"3": -5}}},
	})
	if err == nil || err.Details.Field != "pays.3" || err.Details.Reason != ReasonNegative {
		t.Fatalf("negative pay: %+v", err)
	}
}

func TestValidatePaytable_Shape(t *testing.T) {
	if _, err := ValidatePaytable(map[string]any{}); err == nil || err.Details.Reason != ReasonMissing {
		t.Fatalf("missing symbols: %+v", err)
	}
	if _, err := ValidatePaytable(map[string]any{"symbols": []any{}}); err == nil || err.Details.Reason != ReasonTooShort {
		t.Fatalf("empty symbols: %+v", err)
	}
	_, err := ValidatePaytable(map[string]any{
		"symbols": []any{map[string]any{"code": "Q", "pays": map[string]any{"3": 5}}},
		"lines":   0,
	})
	if err == nil || err.Details.Field != "lines" || err.Details.Reason != ReasonMustBePositive {
		t.Fatalf("zero lines: %+v", err)
	}
}
