package gameconfig

// SlotAdvancedConfig is the normalized advanced-behavior document for slot
// games (spin pacing and autoplay guard rails).
type SlotAdvancedConfig struct {
	SpinSpeed                        string   `json:"spin_speed"`
	AutoplayDefaultSpins             int64    `json:"autoplay_default_spins"`
	AutoplayMaxSpins                 int64    `json:"autoplay_max_spins"`
	AutoplayStopOnBalanceDropPercent *float64 `json:"autoplay_stop_on_balance_drop_percent,omitempty"`
}

// ValidateSlotAdvanced checks a slot-advanced payload and returns the
// normalized config or the first failure.
func ValidateSlotAdvanced(payload map[string]any) (*SlotAdvancedConfig, *ValidationError) {
	c := checker{code: TypeSlotAdvanced.ErrorCode()}

	spinSpeed, err := c.reqStr(payload, "spin_speed")
	if err != nil {
		return nil, err
	}
	switch spinSpeed {
	case "slow", "normal", "fast":
	default:
		return nil, c.fail("spin_speed", spinSpeed, ReasonUnsupportedValue)
	}

	defaultSpins, err := c.reqInt(payload, "autoplay_default_spins")
	if err != nil {
		return nil, err
	}
	if defaultSpins <= 0 {
		return nil, c.fail("autoplay_default_spins", defaultSpins, ReasonMustBePositive)
	}
	maxSpins, err := c.reqInt(payload, "autoplay_max_spins")
	if err != nil {
		return nil, err
	}
	if maxSpins <= 0 {
		return nil, c.fail("autoplay_max_spins", maxSpins, ReasonMustBePositive)
	}
	if defaultSpins > maxSpins {
		return nil, c.fail("autoplay_default_spins", defaultSpins, ReasonInvalidRange)
	}

	stopPercent, err := c.optNum(payload, "autoplay_stop_on_balance_drop_percent")
	if err != nil {
		return nil, err
	}
	if stopPercent != nil && (*stopPercent <= 0 || *stopPercent > 100) {
		return nil, c.fail("autoplay_stop_on_balance_drop_percent", *stopPercent, ReasonOutOfRange)
	}

	return &SlotAdvancedConfig{
		SpinSpeed:                        spinSpeed,
		AutoplayDefaultSpins:             defaultSpins,
		AutoplayMaxSpins:                 maxSpins,
		AutoplayStopOnBalanceDropPercent: stopPercent,
	}, nil
}
