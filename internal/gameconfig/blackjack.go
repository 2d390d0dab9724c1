package gameconfig

// SideBet is one optional blackjack side wager with its own betting band and
// payout table.
type SideBet struct {
	Code        string         `json:"code"`
	Min         float64        `json:"min"`
	Max         float64        `json:"max"`
	PayoutTable map[string]any `json:"payout_table,omitempty"`
}

// BlackjackRulesConfig is the normalized blackjack table-rules document.
type BlackjackRulesConfig struct {
	DeckCount       int64     `json:"deck_count"`
	BlackjackPayout float64   `json:"blackjack_payout"`
	SplitMaxHands   int64     `json:"split_max_hands"`
	MinBet          float64   `json:"min_bet"`
	MaxBet          float64   `json:"max_bet"`
	SideBets        []SideBet `json:"side_bets,omitempty"`
	TableLimits
}

// ValidateBlackjackRules checks a blackjack-rules payload and returns the
// normalized config or the first failure.
func ValidateBlackjackRules(payload map[string]any) (*BlackjackRulesConfig, *ValidationError) {
	c := checker{code: TypeBlackjackRules.ErrorCode()}

	deckCount, err := c.reqInt(payload, "deck_count")
	if err != nil {
		return nil, err
	}
	if deckCount < 1 || deckCount > 8 {
		return nil, c.fail("deck_count", deckCount, ReasonOutOfRange)
	}

	payout, err := c.reqNum(payload, "blackjack_payout")
	if err != nil {
		return nil, err
	}
	if payout < 1.2 || payout > 1.6 {
		return nil, c.fail("blackjack_payout", payout, ReasonOutOfRange)
	}

	splitMax, err := c.reqInt(payload, "split_max_hands")
	if err != nil {
		return nil, err
	}
	if splitMax < 1 || splitMax > 4 {
		return nil, c.fail("split_max_hands", splitMax, ReasonOutOfRange)
	}

	minBet, err := c.reqNum(payload, "min_bet")
	if err != nil {
		return nil, err
	}
	if minBet <= 0 {
		return nil, c.fail("min_bet", minBet, ReasonMustBePositive)
	}
	maxBet, err := c.reqNum(payload, "max_bet")
	if err != nil {
		return nil, err
	}
	if maxBet <= minBet {
		return nil, c.fail("max_bet", maxBet, ReasonInvalidRange)
	}

	sideBets, err := c.sideBets(payload)
	if err != nil {
		return nil, err
	}

	limits, err := c.tableLimits(payload)
	if err != nil {
		return nil, err
	}

	return &BlackjackRulesConfig{
		DeckCount:       deckCount,
		BlackjackPayout: payout,
		SplitMaxHands:   splitMax,
		MinBet:          minBet,
		MaxBet:          maxBet,
		SideBets:        sideBets,
		TableLimits:     limits,
	}, nil
}

func (c checker) sideBets(payload map[string]any) ([]SideBet, *ValidationError) {
	raw, ok := payload["side_bets"]
	if !ok || raw == nil {
		return nil, nil
	}
	entries, ok := raw.([]any)
	if !ok {
		return nil, c.fail("side_bets", raw, ReasonInvalidType)
	}
	out := make([]SideBet, 0, len(entries))
	for i, rawEntry := range entries {
		entry, ok := rawEntry.(map[string]any)
		if !ok {
			return nil, c.failAt(i, "side_bets", rawEntry, ReasonInvalidType)
		}
		code, err := c.reqStr(entry, "code")
		if err != nil {
			return nil, c.failAt(i, "code", entry["code"], err.Details.Reason)
		}
		if code == "" {
			return nil, c.failAt(i, "code", code, ReasonMissing)
		}
		min, ok := toNumber(entry["min"])
		if !ok {
			return nil, c.failAt(i, "min", entry["min"], ReasonInvalidType)
		}
		max, ok := toNumber(entry["max"])
		if !ok {
			return nil, c.failAt(i, "max", entry["max"], ReasonInvalidType)
		}
		if min >= max {
			return nil, c.failAt(i, "min", min, ReasonInvalidRange)
		}
		var table map[string]any
		if rawTable, present := entry["payout_table"]; present && rawTable != nil {
			table, ok = rawTable.(map[string]any)
			if !ok {
				return nil, c.failAt(i, "payout_table", rawTable, ReasonInvalidType)
			}
		}
		out = append(out, SideBet{Code: code, Min: min, Max: max, PayoutTable: table})
	}
	return out, nil
}
