package gameconfig

// PaytableSymbol is one symbol and its payouts keyed by match count.
type PaytableSymbol struct {
	Code string             `json:"code"`
	Pays map[string]float64 `json:"pays"`
}

// PaytableConfig is the normalized paytable document.
type PaytableConfig struct {
	Symbols []PaytableSymbol `json:"symbols"`
	Lines   *int64           `json:"lines,omitempty"`
}

// ValidatePaytable checks a paytable payload and returns the normalized
// config or the first failure.
func ValidatePaytable(payload map[string]any) (*PaytableConfig, *ValidationError) {
	c := checker{code: TypePaytable.ErrorCode()}

	raw, ok := payload["symbols"]
	if !ok || raw == nil {
		return nil, c.fail("symbols", nil, ReasonMissing)
	}
	entries, ok := raw.([]any)
	if !ok {
		return nil, c.fail("symbols", raw, ReasonInvalidType)
	}
	if len(entries) == 0 {
		return nil, c.fail("symbols", entries, ReasonTooShort)
	}

	symbols := make([]PaytableSymbol, 0, len(entries))
	for i, rawEntry := range entries {
		entry, ok := rawEntry.(map[string]any)
		if !ok {
			return nil, c.failAt(i, "symbols", rawEntry, ReasonInvalidType)
		}
		code, _ := entry["code"].(string)
		if code == "" {
			return nil, c.failAt(i, "code", entry["code"], ReasonInvalidSymbol)
		}
		rawPays, ok := entry["pays"].(map[string]any)
		if !ok {
			return nil, c.failAt(i, "pays", entry["pays"], ReasonInvalidType)
		}
		pays := make(map[string]float64, len(rawPays))
		for _, count := range sortedKeys(rawPays) {
			v, ok := toNumber(rawPays[count])
			if !ok {
				return nil, c.failAt(i, "pays."+count, rawPays[count], ReasonInvalidType)
			}
			if v < 0 {
				return nil, c.failAt(i, "pays."+count, v, ReasonNegative)
			}
			pays[count] = v
		}
		symbols = append(symbols, PaytableSymbol{Code: code, Pays: pays})
	}

	var lines *int64
	if rawLines, present := payload["lines"]; present && rawLines != nil {
		n, ok := toInt(rawLines)
		if !ok {
			return nil, c.fail("lines", rawLines, ReasonInvalidType)
		}
		if n < 1 {
			return nil, c.fail("lines", n, ReasonMustBePositive)
		}
		lines = &n
	}

	return &PaytableConfig{Symbols: symbols, Lines: lines}, nil
}
