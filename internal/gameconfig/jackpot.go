package gameconfig

// JackpotEntry is one progressive jackpot definition.
type JackpotEntry struct {
	Name                string  `json:"name"`
	Currency            string  `json:"currency"`
	Seed                float64 `json:"seed"`
	Cap                 float64 `json:"cap"`
	ContributionPercent float64 `json:"contribution_percent"`
	HitFrequencyParam   float64 `json:"hit_frequency_param"`
}

// JackpotsConfig is the normalized jackpots document.
type JackpotsConfig struct {
	Jackpots []JackpotEntry `json:"jackpots"`
}

// ValidateJackpots checks a jackpots payload and returns the normalized
// config or the first failure. Per-entry failures carry the entry index.
func ValidateJackpots(payload map[string]any) (*JackpotsConfig, *ValidationError) {
	c := checker{code: TypeJackpots.ErrorCode()}

	raw, ok := payload["jackpots"]
	if !ok || raw == nil {
		return nil, c.fail("jackpots", nil, ReasonMissing)
	}
	entries, ok := raw.([]any)
	if !ok {
		return nil, c.fail("jackpots", raw, ReasonInvalidType)
	}
	if len(entries) == 0 {
		return nil, c.fail("jackpots", entries, ReasonTooShort)
	}

	out := make([]JackpotEntry, 0, len(entries))
	for i, rawEntry := range entries {
		entry, ok := rawEntry.(map[string]any)
		if !ok {
			return nil, c.failAt(i, "jackpots", rawEntry, ReasonInvalidType)
		}
		name, _ := entry["name"].(string)
		if name == "" {
			return nil, c.failAt(i, "name", entry["name"], ReasonMissing)
		}
		currency, _ := entry["currency"].(string)
		if currency == "" {
			return nil, c.failAt(i, "currency", entry["currency"], ReasonMissing)
		}
		seed, ok := toNumber(entry["seed"])
		if !ok {
			return nil, c.failAt(i, "seed", entry["seed"], ReasonInvalidType)
		}
		if seed < 0 {
			return nil, c.failAt(i, "seed", seed, ReasonNegative)
		}
		cap, ok := toNumber(entry["cap"])
		if !ok {
			return nil, c.failAt(i, "cap", entry["cap"], ReasonInvalidType)
		}
		if cap < seed {
			return nil, c.failAt(i, "cap", cap, ReasonCapLtSeed)
		}
		contribution, ok := toNumber(entry["contribution_percent"])
		if !ok {
			return nil, c.failAt(i, "contribution_percent", entry["contribution_percent"], ReasonInvalidType)
		}
		if contribution < 0 || contribution > 10 {
			return nil, c.failAt(i, "contribution_percent", contribution, ReasonOutOfRange)
		}
		hitFreq, ok := toNumber(entry["hit_frequency_param"])
		if !ok {
			return nil, c.failAt(i, "hit_frequency_param", entry["hit_frequency_param"], ReasonInvalidType)
		}
		if hitFreq <= 0 {
			return nil, c.failAt(i, "hit_frequency_param", hitFreq, ReasonMustBePositive)
		}
		out = append(out, JackpotEntry{
			Name:                name,
			Currency:            currency,
			Seed:                seed,
			Cap:                 cap,
			ContributionPercent: contribution,
			HitFrequencyParam:   hitFreq,
		})
	}
	return &JackpotsConfig{Jackpots: out}, nil
}
