package gameconfig

import "strings"

// Type identifies one validated config schema. Each type keeps its own closed
// rule set; there is no shared generic schema.
type Type string

const (
	TypeDiceMath       Type = "dice-math"
	TypeCrashMath      Type = "crash-math"
	TypeSlotAdvanced   Type = "slot-advanced"
	TypeBlackjackRules Type = "blackjack-rules"
	TypePokerRules     Type = "poker-rules"
	TypeJackpots       Type = "jackpots"
	TypePaytable       Type = "paytable"
	TypeReelStrips     Type = "reel-strips"
)

// All lists every supported config type in a stable order.
func All() []Type {
	return []Type{
		TypeDiceMath,
		TypeCrashMath,
		TypeSlotAdvanced,
		TypeBlackjackRules,
		TypePokerRules,
		TypeJackpots,
		TypePaytable,
		TypeReelStrips,
	}
}

// Valid reports whether t is one of the supported config types.
func (t Type) Valid() bool {
	switch t {
	case TypeDiceMath, TypeCrashMath, TypeSlotAdvanced, TypeBlackjackRules,
		TypePokerRules, TypeJackpots, TypePaytable, TypeReelStrips:
		return true
	}
	return false
}

func (t Type) prefix() string {
	return strings.ToUpper(strings.ReplaceAll(string(t), "-", "_"))
}

// ErrorCode is the machine-readable code carried by validation failures for
// this config type, e.g. DICE_MATH_VALIDATION_FAILED.
func (t Type) ErrorCode() string { return t.prefix() + "_VALIDATION_FAILED" }

// NotAvailableCode is the code used when a game's category does not offer this
// config type, e.g. DICE_MATH_NOT_AVAILABLE_FOR_GAME.
func (t Type) NotAvailableCode() string { return t.prefix() + "_NOT_AVAILABLE_FOR_GAME" }
