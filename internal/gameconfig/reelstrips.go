package gameconfig

import "fmt"

// ReelLayout describes the reel frame of a slot game.
type ReelLayout struct {
	Reels int64 `json:"reels"`
}

// ReelStripsConfig is the normalized reel-strips document: one symbol strip
// per reel.
type ReelStripsConfig struct {
	Layout ReelLayout `json:"layout"`
	Reels  [][]string `json:"reels"`
}

// ValidateReelStrips checks a reel-strips payload and returns the normalized
// config or the first failure.
func ValidateReelStrips(payload map[string]any) (*ReelStripsConfig, *ValidationError) {
	c := checker{code: TypeReelStrips.ErrorCode()}

	rawLayout, ok := payload["layout"]
	if !ok || rawLayout == nil {
		return nil, c.fail("layout", nil, ReasonMissing)
	}
	layout, ok := rawLayout.(map[string]any)
	if !ok {
		return nil, c.fail("layout", rawLayout, ReasonInvalidType)
	}
	rawReelCount, ok := layout["reels"]
	if !ok || rawReelCount == nil {
		return nil, c.fail("layout.reels", nil, ReasonMissing)
	}
	reelCount, ok := toInt(rawReelCount)
	if !ok {
		return nil, c.fail("layout.reels", rawReelCount, ReasonInvalidType)
	}
	if reelCount < 1 {
		return nil, c.fail("layout.reels", reelCount, ReasonMustBePositive)
	}

	rawReels, ok := payload["reels"]
	if !ok || rawReels == nil {
		return nil, c.fail("reels", nil, ReasonMissing)
	}
	reelList, ok := rawReels.([]any)
	if !ok {
		return nil, c.fail("reels", rawReels, ReasonInvalidType)
	}
	if int64(len(reelList)) != reelCount {
		return nil, c.fail("reels", len(reelList), ReasonCountMismatch)
	}

	reels := make([][]string, 0, len(reelList))
	for i, rawStrip := range reelList {
		strip, ok := rawStrip.([]any)
		if !ok {
			return nil, c.fail(fmt.Sprintf("reels[%d]", i), rawStrip, ReasonInvalidType)
		}
		if len(strip) == 0 {
			return nil, c.fail(fmt.Sprintf("reels[%d]", i), strip, ReasonTooShort)
		}
		symbols := make([]string, 0, len(strip))
		for j, rawSymbol := range strip {
			symbol, ok := rawSymbol.(string)
			if !ok || symbol == "" {
				return nil, c.fail(fmt.Sprintf("reels[%d][%d]", i, j), rawSymbol, ReasonInvalidSymbol)
			}
			symbols = append(symbols, symbol)
		}
		reels = append(reels, symbols)
	}

	return &ReelStripsConfig{Layout: ReelLayout{Reels: reelCount}, Reels: reels}, nil
}
