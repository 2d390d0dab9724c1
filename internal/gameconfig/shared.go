package gameconfig

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

// Enforcement modes for configured safety limits.
const (
	EnforcementHardBlock = "hard_block"
	EnforcementLogOnly   = "log_only"
)

// toNumber coerces a decoded JSON value to float64. Booleans and nil are
// rejected even though cast would happily convert them.
func toNumber(v any) (float64, bool) {
	switch v.(type) {
	case bool, nil:
		return 0, false
	}
	f, err := cast.ToFloat64E(v)
	return f, err == nil
}

// toInt coerces to int64 and rejects fractional floats rather than
// truncating them.
func toInt(v any) (int64, bool) {
	switch x := v.(type) {
	case bool, nil:
		return 0, false
	case float64:
		if x != math.Trunc(x) {
			return 0, false
		}
		return int64(x), true
	case float32:
		f := float64(x)
		if f != math.Trunc(f) {
			return 0, false
		}
		return int64(f), true
	}
	n, err := cast.ToInt64E(v)
	return n, err == nil
}

func (c checker) reqNum(p map[string]any, field string) (float64, *ValidationError) {
	raw, ok := p[field]
	if !ok || raw == nil {
		return 0, c.fail(field, nil, ReasonMissing)
	}
	f, ok := toNumber(raw)
	if !ok {
		return 0, c.fail(field, raw, ReasonInvalidType)
	}
	return f, nil
}

func (c checker) optNum(p map[string]any, field string) (*float64, *ValidationError) {
	raw, ok := p[field]
	if !ok || raw == nil {
		return nil, nil
	}
	f, ok := toNumber(raw)
	if !ok {
		return nil, c.fail(field, raw, ReasonInvalidType)
	}
	return &f, nil
}

func (c checker) reqInt(p map[string]any, field string) (int64, *ValidationError) {
	raw, ok := p[field]
	if !ok || raw == nil {
		return 0, c.fail(field, nil, ReasonMissing)
	}
	n, ok := toInt(raw)
	if !ok {
		return 0, c.fail(field, raw, ReasonInvalidType)
	}
	return n, nil
}

func (c checker) optInt(p map[string]any, field string) (*int64, *ValidationError) {
	raw, ok := p[field]
	if !ok || raw == nil {
		return nil, nil
	}
	n, ok := toInt(raw)
	if !ok {
		return nil, c.fail(field, raw, ReasonInvalidType)
	}
	return &n, nil
}

func (c checker) reqStr(p map[string]any, field string) (string, *ValidationError) {
	raw, ok := p[field]
	if !ok || raw == nil {
		return "", c.fail(field, nil, ReasonMissing)
	}
	s, ok := raw.(string)
	if !ok {
		return "", c.fail(field, raw, ReasonInvalidType)
	}
	return s, nil
}

func (c checker) optStr(p map[string]any, field string) (string, bool, *ValidationError) {
	raw, ok := p[field]
	if !ok || raw == nil {
		return "", false, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", false, c.fail(field, raw, ReasonInvalidType)
	}
	return s, true, nil
}

func (c checker) optBool(p map[string]any, field string) (bool, *ValidationError) {
	raw, ok := p[field]
	if !ok || raw == nil {
		return false, nil
	}
	b, ok := raw.(bool)
	if !ok {
		return false, c.fail(field, raw, ReasonInvalidType)
	}
	return b, nil
}

// optPositive implements the positive-or-none rule: the field may be absent or
// null, but a present value must be numeric and strictly positive.
func (c checker) optPositive(p map[string]any, field string) (*float64, *ValidationError) {
	raw, ok := p[field]
	if !ok || raw == nil {
		return nil, nil
	}
	f, ok := toNumber(raw)
	if !ok || f <= 0 {
		return nil, c.fail(field, raw, ReasonMustBePositive)
	}
	return &f, nil
}

// optPositiveInt is optPositive for integer-valued fields, with a caller
// supplied reason (seed rotation intervals report their own reason).
func (c checker) optPositiveInt(p map[string]any, field string, reason Reason) (*int64, *ValidationError) {
	raw, ok := p[field]
	if !ok || raw == nil {
		return nil, nil
	}
	n, ok := toInt(raw)
	if !ok || n <= 0 {
		return nil, c.fail(field, raw, reason)
	}
	return &n, nil
}

// enforcementMode applies the shared enforcement_mode rule: default log_only
// when absent, case-folded, and restricted to hard_block/log_only.
func (c checker) enforcementMode(p map[string]any) (string, *ValidationError) {
	raw, ok := p["enforcement_mode"]
	if !ok || raw == nil {
		return EnforcementLogOnly, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", c.fail("enforcement_mode", raw, ReasonUnsupportedEnforcementMode)
	}
	mode := strings.ToLower(strings.TrimSpace(s))
	switch mode {
	case EnforcementHardBlock, EnforcementLogOnly:
		return mode, nil
	}
	return "", c.fail("enforcement_mode", raw, ReasonUnsupportedEnforcementMode)
}
