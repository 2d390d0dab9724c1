package gameconfig

import "fmt"

// Reason is a machine-readable cause attached to every validation failure.
// The set is closed; consumers match on these values.
type Reason string

const (
	ReasonMustBePositive              Reason = "must_be_positive"
	ReasonInvalidCountryCode          Reason = "invalid_country_code"
	ReasonUnsupportedEnforcementMode  Reason = "unsupported_enforcement_mode"
	ReasonOutOfRange                  Reason = "out_of_range"
	ReasonInvalidRange                Reason = "invalid_range"
	ReasonTooManySteps                Reason = "too_many_steps"
	ReasonInvalidStep                 Reason = "invalid_step"
	ReasonInvalidPayoutRange          Reason = "invalid_payout_range"
	ReasonInvalidTargetRange          Reason = "invalid_target_range"
	ReasonInvalidRoundTiming          Reason = "invalid_round_timing"
	ReasonInvalidMode                 Reason = "invalid_mode"
	ReasonInvalidSeedRotationInterval Reason = "invalid_seed_rotation_interval"
	ReasonCountMismatch               Reason = "count_mismatch"
	ReasonInvalidSymbol               Reason = "invalid_symbol"
	ReasonCapLtSeed                   Reason = "cap_lt_seed"
	ReasonMissing                     Reason = "missing"
	ReasonInvalidType                 Reason = "invalid_type"
	ReasonTooLong                     Reason = "too_long"
	ReasonTooShort                    Reason = "too_short"
	ReasonNegative                    Reason = "negative"
	ReasonUnsupportedVariant          Reason = "unsupported_variant"
	ReasonUnsupportedLimitType        Reason = "unsupported_limit_type"
	ReasonInvalidPlayersRange         Reason = "invalid_players_range"
	ReasonInvalidBuyinRange           Reason = "invalid_buyin_range"
	ReasonInvalidBlinds               Reason = "invalid_blinds"
	ReasonInvalidAnte                 Reason = "invalid_ante"
	ReasonInvalidMinPlayersToStart    Reason = "invalid_min_players_to_start"
	ReasonUnsupportedValue            Reason = "unsupported_value"
)

// ErrorDetails pinpoints the failing field. Index is set only for failures
// inside an array-valued config (e.g. jackpot entries).
type ErrorDetails struct {
	Field  string `json:"field"`
	Value  any    `json:"value,omitempty"`
	Reason Reason `json:"reason"`
	Index  *int   `json:"index,omitempty"`
}

// ValidationError is the structured result of a failed validation. Validators
// return it as a value; it doubles as an error for plumbing through service
// layers.
type ValidationError struct {
	Code    string       `json:"error_code"`
	Message string       `json:"message"`
	Details ErrorDetails `json:"details"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// checker binds a config type's error code so rule helpers can emit complete
// errors without each call site repeating the code.
type checker struct{ code string }

func (c checker) fail(field string, value any, reason Reason) *ValidationError {
	return &ValidationError{
		Code:    c.code,
		Message: fmt.Sprintf("field %q: %s", field, reason),
		Details: ErrorDetails{Field: field, Value: value, Reason: reason},
	}
}

func (c checker) failAt(index int, field string, value any, reason Reason) *ValidationError {
	idx := index
	return &ValidationError{
		Code:    c.code,
		Message: fmt.Sprintf("entry %d, field %q: %s", index, field, reason),
		Details: ErrorDetails{Field: field, Value: value, Reason: reason, Index: &idx},
	}
}
