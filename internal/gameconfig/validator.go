package gameconfig

// Validate dispatches a payload to the type's validator and returns the
// normalized document (ready to marshal) or the first failing check. The
// payload is a decoded JSON object; the normalized result is always one of
// the typed config structs.
func Validate(t Type, payload map[string]any) (any, *ValidationError) {
	switch t {
	case TypeDiceMath:
		return retype(ValidateDiceMath(payload))
	case TypeCrashMath:
		return retype(ValidateCrashMath(payload))
	case TypeSlotAdvanced:
		return retype(ValidateSlotAdvanced(payload))
	case TypeBlackjackRules:
		return retype(ValidateBlackjackRules(payload))
	case TypePokerRules:
		return retype(ValidatePokerRules(payload))
	case TypeJackpots:
		return retype(ValidateJackpots(payload))
	case TypePaytable:
		return retype(ValidatePaytable(payload))
	case TypeReelStrips:
		return retype(ValidateReelStrips(payload))
	}
	return nil, &ValidationError{
		Code:    "CONFIG_TYPE_UNKNOWN",
		Message: "unknown config type " + string(t),
		Details: ErrorDetails{Field: "config_type", Value: string(t), Reason: ReasonUnsupportedValue},
	}
}

// retype flattens a typed validator result into the dispatch signature
// without boxing a typed nil into a non-nil any.
func retype[T any](cfg *T, err *ValidationError) (any, *ValidationError) {
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
