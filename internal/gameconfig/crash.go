package gameconfig

// CrashMathConfig is the normalized crash math/limits document.
type CrashMathConfig struct {
	BaseRTP                    float64     `json:"base_rtp"`
	VolatilityProfile          string      `json:"volatility_profile"`
	MinMultiplier              float64     `json:"min_multiplier"`
	MaxMultiplier              float64     `json:"max_multiplier"`
	RoundDurationSeconds       float64     `json:"round_duration_seconds"`
	BetPhaseSeconds            float64     `json:"bet_phase_seconds"`
	GracePeriodSeconds         float64     `json:"grace_period_seconds"`
	MinBetPerRound             *float64    `json:"min_bet_per_round,omitempty"`
	MaxBetPerRound             *float64    `json:"max_bet_per_round,omitempty"`
	SeedRotationIntervalRounds *int64      `json:"seed_rotation_interval_rounds,omitempty"`
	EnforcementMode            string      `json:"enforcement_mode"`
	MaxLossPerRound            *float64    `json:"max_loss_per_round,omitempty"`
	MaxWinPerRound             *float64    `json:"max_win_per_round,omitempty"`
	MaxTotalLossPerSession     *float64    `json:"max_total_loss_per_session,omitempty"`
	MaxTotalWinPerSession      *float64    `json:"max_total_win_per_session,omitempty"`
	MaxRoundsPerSession        *int64      `json:"max_rounds_per_session,omitempty"`
	CountryOverrides           OverrideMap `json:"country_overrides,omitempty"`
}

var crashOverrideKeys = []string{
	"max_loss_per_round",
	"max_win_per_round",
	"max_total_loss_per_session",
	"max_total_win_per_session",
	"max_rounds_per_session",
}

// ValidateCrashMath checks a crash math payload rule by rule and returns the
// normalized config or the first failure.
func ValidateCrashMath(payload map[string]any) (*CrashMathConfig, *ValidationError) {
	c := checker{code: TypeCrashMath.ErrorCode()}

	baseRTP, err := c.reqNum(payload, "base_rtp")
	if err != nil {
		return nil, err
	}
	if baseRTP < 90 || baseRTP > 99.9 {
		return nil, c.fail("base_rtp", baseRTP, ReasonOutOfRange)
	}

	volatility, err := c.reqStr(payload, "volatility_profile")
	if err != nil {
		return nil, err
	}
	switch volatility {
	case "low", "medium", "high":
	default:
		return nil, c.fail("volatility_profile", volatility, ReasonUnsupportedValue)
	}

	minMult, err := c.reqNum(payload, "min_multiplier")
	if err != nil {
		return nil, err
	}
	maxMult, err := c.reqNum(payload, "max_multiplier")
	if err != nil {
		return nil, err
	}
	if minMult < 1.0 || minMult >= maxMult {
		return nil, c.fail("min_multiplier", minMult, ReasonInvalidRange)
	}
	if maxMult > 10000 {
		return nil, c.fail("max_multiplier", maxMult, ReasonInvalidRange)
	}

	roundDuration, err := c.reqNum(payload, "round_duration_seconds")
	if err != nil {
		return nil, err
	}
	betPhase, err := c.reqNum(payload, "bet_phase_seconds")
	if err != nil {
		return nil, err
	}
	grace, err := c.reqNum(payload, "grace_period_seconds")
	if err != nil {
		return nil, err
	}
	if roundDuration < betPhase+grace {
		return nil, c.fail("round_duration_seconds", roundDuration, ReasonInvalidRoundTiming)
	}
	if betPhase < 2 {
		return nil, c.fail("bet_phase_seconds", betPhase, ReasonInvalidRoundTiming)
	}

	minBet, err := c.optNum(payload, "min_bet_per_round")
	if err != nil {
		return nil, err
	}
	maxBet, err := c.optNum(payload, "max_bet_per_round")
	if err != nil {
		return nil, err
	}
	if minBet != nil && maxBet != nil && *minBet > *maxBet {
		return nil, c.fail("min_bet_per_round", *minBet, ReasonInvalidRange)
	}

	seedRotation, err := c.optPositiveInt(payload, "seed_rotation_interval_rounds", ReasonInvalidSeedRotationInterval)
	if err != nil {
		return nil, err
	}

	mode, err := c.enforcementMode(payload)
	if err != nil {
		return nil, err
	}

	maxLossPerRound, err := c.optPositive(payload, "max_loss_per_round")
	if err != nil {
		return nil, err
	}
	maxWinPerRound, err := c.optPositive(payload, "max_win_per_round")
	if err != nil {
		return nil, err
	}
	maxTotalLoss, err := c.optPositive(payload, "max_total_loss_per_session")
	if err != nil {
		return nil, err
	}
	maxTotalWin, err := c.optPositive(payload, "max_total_win_per_session")
	if err != nil {
		return nil, err
	}
	maxRounds, err := c.optPositiveInt(payload, "max_rounds_per_session", ReasonMustBePositive)
	if err != nil {
		return nil, err
	}

	overrides, err := ValidateCountryOverrides(c.code, "country_overrides", payload["country_overrides"], crashOverrideKeys)
	if err != nil {
		return nil, err
	}

	return &CrashMathConfig{
		BaseRTP:                    baseRTP,
		VolatilityProfile:          volatility,
		MinMultiplier:              minMult,
		MaxMultiplier:              maxMult,
		RoundDurationSeconds:       roundDuration,
		BetPhaseSeconds:            betPhase,
		GracePeriodSeconds:         grace,
		MinBetPerRound:             minBet,
		MaxBetPerRound:             maxBet,
		SeedRotationIntervalRounds: seedRotation,
		EnforcementMode:            mode,
		MaxLossPerRound:            maxLossPerRound,
		MaxWinPerRound:             maxWinPerRound,
		MaxTotalLossPerSession:     maxTotalLoss,
		MaxTotalWinPerSession:      maxTotalWin,
		MaxRoundsPerSession:        maxRounds,
		CountryOverrides:           overrides,
	}, nil
}
