package gameconfig

// Poker variants offered by the platform.
var pokerVariants = map[string]bool{
	"texas_holdem":    true,
	"omaha":           true,
	"omaha_hilo":      true,
	"seven_card_stud": true,
	"five_card_draw":  true,
}

// PokerRulesConfig is the normalized poker table-rules document. Blind and
// buy-in fields are expressed in big blinds; rake caps in table currency.
type PokerRulesConfig struct {
	Variant           string   `json:"variant"`
	LimitType         string   `json:"limit_type"`
	MinPlayers        int64    `json:"min_players"`
	MaxPlayers        int64    `json:"max_players"`
	MinBuyinBB        float64  `json:"min_buyin_bb"`
	MaxBuyinBB        float64  `json:"max_buyin_bb"`
	RakeType          string   `json:"rake_type,omitempty"`
	RakePercent       *float64 `json:"rake_percent,omitempty"`
	RakeCapCurrency   *float64 `json:"rake_cap_currency,omitempty"`
	SmallBlindBB      float64  `json:"small_blind_bb"`
	BigBlindBB        float64  `json:"big_blind_bb"`
	UseAntes          bool     `json:"use_antes"`
	AnteBB            *float64 `json:"ante_bb,omitempty"`
	MinPlayersToStart *int64   `json:"min_players_to_start,omitempty"`
	TableLimits
}

// ValidatePokerRules checks a poker-rules payload and returns the normalized
// config or the first failure.
func ValidatePokerRules(payload map[string]any) (*PokerRulesConfig, *ValidationError) {
	c := checker{code: TypePokerRules.ErrorCode()}

	variant, err := c.reqStr(payload, "variant")
	if err != nil {
		return nil, err
	}
	if !pokerVariants[variant] {
		return nil, c.fail("variant", variant, ReasonUnsupportedVariant)
	}

	limitType, err := c.reqStr(payload, "limit_type")
	if err != nil {
		return nil, err
	}
	switch limitType {
	case "no_limit", "pot_limit", "fixed_limit":
	default:
		return nil, c.fail("limit_type", limitType, ReasonUnsupportedLimitType)
	}

	minPlayers, err := c.reqInt(payload, "min_players")
	if err != nil {
		return nil, err
	}
	maxPlayers, err := c.reqInt(payload, "max_players")
	if err != nil {
		return nil, err
	}
	if minPlayers < 2 || minPlayers > maxPlayers || maxPlayers > 10 {
		return nil, c.fail("min_players", minPlayers, ReasonInvalidPlayersRange)
	}

	minBuyin, err := c.reqNum(payload, "min_buyin_bb")
	if err != nil {
		return nil, err
	}
	maxBuyin, err := c.reqNum(payload, "max_buyin_bb")
	if err != nil {
		return nil, err
	}
	if minBuyin <= 0 || minBuyin > maxBuyin {
		return nil, c.fail("min_buyin_bb", minBuyin, ReasonInvalidBuyinRange)
	}

	rakeType, _, err := c.optStr(payload, "rake_type")
	if err != nil {
		return nil, err
	}
	var rakePercent, rakeCap *float64
	// rake_type values other than "percentage" (time, none) carry no
	// constrained fields today.
	if rakeType == "percentage" {
		p, err := c.reqNum(payload, "rake_percent")
		if err != nil {
			return nil, err
		}
		if p <= 0 || p > 10 {
			return nil, c.fail("rake_percent", p, ReasonOutOfRange)
		}
		rakePercent = &p
		rakeCap, err = c.optNum(payload, "rake_cap_currency")
		if err != nil {
			return nil, err
		}
		if rakeCap != nil && *rakeCap < 0 {
			return nil, c.fail("rake_cap_currency", *rakeCap, ReasonNegative)
		}
	}

	smallBlind, err := c.reqNum(payload, "small_blind_bb")
	if err != nil {
		return nil, err
	}
	bigBlind, err := c.reqNum(payload, "big_blind_bb")
	if err != nil {
		return nil, err
	}
	if smallBlind <= 0 || smallBlind >= bigBlind {
		return nil, c.fail("small_blind_bb", smallBlind, ReasonInvalidBlinds)
	}

	useAntes, err := c.optBool(payload, "use_antes")
	if err != nil {
		return nil, err
	}
	var anteBB *float64
	if useAntes {
		a, err := c.optNum(payload, "ante_bb")
		if err != nil {
			return nil, err
		}
		if a == nil || *a <= 0 {
			return nil, c.fail("ante_bb", payload["ante_bb"], ReasonInvalidAnte)
		}
		anteBB = a
	}

	minToStart, err := c.optInt(payload, "min_players_to_start")
	if err != nil {
		return nil, err
	}
	if minToStart != nil && (*minToStart < minPlayers || *minToStart > maxPlayers) {
		return nil, c.fail("min_players_to_start", *minToStart, ReasonInvalidMinPlayersToStart)
	}

	limits, err := c.tableLimits(payload)
	if err != nil {
		return nil, err
	}

	return &PokerRulesConfig{
		Variant:           variant,
		LimitType:         limitType,
		MinPlayers:        minPlayers,
		MaxPlayers:        maxPlayers,
		MinBuyinBB:        minBuyin,
		MaxBuyinBB:        maxBuyin,
		RakeType:          rakeType,
		RakePercent:       rakePercent,
		RakeCapCurrency:   rakeCap,
		SmallBlindBB:      smallBlind,
		BigBlindBB:        bigBlind,
		UseAntes:          useAntes,
		AnteBB:            anteBB,
		MinPlayersToStart: minToStart,
		TableLimits:       limits,
	}, nil
}
