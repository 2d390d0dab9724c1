package gameconfig

// DiceMathConfig is the normalized dice math/limits document.
type DiceMathConfig struct {
	RangeMin                   float64     `json:"range_min"`
	RangeMax                   float64     `json:"range_max"`
	Step                       float64     `json:"step"`
	HouseEdgePercent           float64     `json:"house_edge_percent"`
	MinPayoutMultiplier        float64     `json:"min_payout_multiplier"`
	MaxPayoutMultiplier        float64     `json:"max_payout_multiplier"`
	AllowOver                  bool        `json:"allow_over"`
	AllowUnder                 bool        `json:"allow_under"`
	MinTarget                  float64     `json:"min_target"`
	MaxTarget                  float64     `json:"max_target"`
	RoundDurationSeconds       float64     `json:"round_duration_seconds"`
	BetPhaseSeconds            float64     `json:"bet_phase_seconds"`
	MaxWinPerBet               *float64    `json:"max_win_per_bet,omitempty"`
	MaxLossPerBet              *float64    `json:"max_loss_per_bet,omitempty"`
	MaxSessionLoss             *float64    `json:"max_session_loss,omitempty"`
	MaxSessionBets             *int64      `json:"max_session_bets,omitempty"`
	SeedRotationIntervalRounds *int64      `json:"seed_rotation_interval_rounds,omitempty"`
	EnforcementMode            string      `json:"enforcement_mode"`
	CountryOverrides           OverrideMap `json:"country_overrides,omitempty"`
}

var diceOverrideKeys = []string{
	"max_win_per_bet",
	"max_loss_per_bet",
	"max_session_loss",
	"max_session_bets",
}

// maxRangeSteps caps (range_max-range_min)/step so a hostile config cannot
// describe an absurdly fine-grained target range.
const maxRangeSteps = 100000

// ValidateDiceMath checks a dice math payload rule by rule and returns the
// normalized config or the first failure.
func ValidateDiceMath(payload map[string]any) (*DiceMathConfig, *ValidationError) {
	c := checker{code: TypeDiceMath.ErrorCode()}

	rangeMin, err := c.reqNum(payload, "range_min")
	if err != nil {
		return nil, err
	}
	rangeMax, err := c.reqNum(payload, "range_max")
	if err != nil {
		return nil, err
	}
	if rangeMin >= rangeMax {
		return nil, c.fail("range_min", rangeMin, ReasonInvalidRange)
	}

	step, err := c.reqNum(payload, "step")
	if err != nil {
		return nil, err
	}
	if step <= 0 {
		return nil, c.fail("step", step, ReasonInvalidStep)
	}
	if (rangeMax-rangeMin)/step > maxRangeSteps {
		return nil, c.fail("step", step, ReasonTooManySteps)
	}

	houseEdge, err := c.reqNum(payload, "house_edge_percent")
	if err != nil {
		return nil, err
	}
	if houseEdge <= 0 || houseEdge > 5 {
		return nil, c.fail("house_edge_percent", houseEdge, ReasonOutOfRange)
	}

	minPayout, err := c.reqNum(payload, "min_payout_multiplier")
	if err != nil {
		return nil, err
	}
	maxPayout, err := c.reqNum(payload, "max_payout_multiplier")
	if err != nil {
		return nil, err
	}
	if minPayout < 1.0 {
		return nil, c.fail("min_payout_multiplier", minPayout, ReasonInvalidPayoutRange)
	}
	if maxPayout < minPayout {
		return nil, c.fail("max_payout_multiplier", maxPayout, ReasonInvalidPayoutRange)
	}

	maxWinPerBet, err := c.optPositive(payload, "max_win_per_bet")
	if err != nil {
		return nil, err
	}
	maxLossPerBet, err := c.optPositive(payload, "max_loss_per_bet")
	if err != nil {
		return nil, err
	}
	maxSessionLoss, err := c.optPositive(payload, "max_session_loss")
	if err != nil {
		return nil, err
	}
	maxSessionBets, err := c.optPositiveInt(payload, "max_session_bets", ReasonMustBePositive)
	if err != nil {
		return nil, err
	}

	mode, err := c.enforcementMode(payload)
	if err != nil {
		return nil, err
	}

	overrides, err := ValidateCountryOverrides(c.code, "country_overrides", payload["country_overrides"], diceOverrideKeys)
	if err != nil {
		return nil, err
	}

	minTarget, err := c.reqNum(payload, "min_target")
	if err != nil {
		return nil, err
	}
	maxTarget, err := c.reqNum(payload, "max_target")
	if err != nil {
		return nil, err
	}
	if minTarget < rangeMin {
		return nil, c.fail("min_target", minTarget, ReasonInvalidTargetRange)
	}
	if maxTarget > rangeMax {
		return nil, c.fail("max_target", maxTarget, ReasonInvalidTargetRange)
	}

	roundDuration, err := c.reqNum(payload, "round_duration_seconds")
	if err != nil {
		return nil, err
	}
	betPhase, err := c.reqNum(payload, "bet_phase_seconds")
	if err != nil {
		return nil, err
	}
	if roundDuration < betPhase {
		return nil, c.fail("round_duration_seconds", roundDuration, ReasonInvalidRoundTiming)
	}

	allowOver, err := c.optBool(payload, "allow_over")
	if err != nil {
		return nil, err
	}
	allowUnder, err := c.optBool(payload, "allow_under")
	if err != nil {
		return nil, err
	}
	if !allowOver && !allowUnder {
		return nil, c.fail("allow_over", false, ReasonInvalidMode)
	}

	seedRotation, err := c.optPositiveInt(payload, "seed_rotation_interval_rounds", ReasonInvalidSeedRotationInterval)
	if err != nil {
		return nil, err
	}

	return &DiceMathConfig{
		RangeMin:                   rangeMin,
		RangeMax:                   rangeMax,
		Step:                       step,
		HouseEdgePercent:           houseEdge,
		MinPayoutMultiplier:        minPayout,
		MaxPayoutMultiplier:        maxPayout,
		AllowOver:                  allowOver,
		AllowUnder:                 allowUnder,
		MinTarget:                  minTarget,
		MaxTarget:                  maxTarget,
		RoundDurationSeconds:       roundDuration,
		BetPhaseSeconds:            betPhase,
		MaxWinPerBet:               maxWinPerBet,
		MaxLossPerBet:              maxLossPerBet,
		MaxSessionLoss:             maxSessionLoss,
		MaxSessionBets:             maxSessionBets,
		SeedRotationIntervalRounds: seedRotation,
		EnforcementMode:            mode,
		CountryOverrides:           overrides,
	}, nil
}
