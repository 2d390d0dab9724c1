package gameconfig

import (
	"sort"
	"strings"
	"unicode"
)

// OverrideMap maps an uppercase two-letter country code to the sparse set of
// limit fields overridden for that country. Values are int64 for fields named
// *_rounds or *_bets and float64 otherwise; all are strictly positive after
// validation.
type OverrideMap map[string]map[string]any

// ValidateCountryOverrides normalizes a raw country_overrides payload.
// Absent or empty input yields an empty map. Country codes must be exactly two
// alphabetic characters and are uppercased; each allowed field present in a
// country's override object is type-coerced and must be > 0. code is the
// calling config type's error code, parent the field name the raw value was
// found under.
func ValidateCountryOverrides(code, parent string, raw any, allowed []string) (OverrideMap, *ValidationError) {
	c := checker{code: code}
	out := OverrideMap{}
	if raw == nil {
		return out, nil
	}
	byCountry, ok := raw.(map[string]any)
	if !ok {
		return nil, c.fail(parent, raw, ReasonInvalidType)
	}
	countries := sortedKeys(byCountry)
	for _, key := range countries {
		if !isCountryCode(key) {
			return nil, c.fail(parent, key, ReasonInvalidCountryCode)
		}
		country := strings.ToUpper(key)
		fields, ok := byCountry[key].(map[string]any)
		if !ok {
			return nil, c.fail(parent+"."+country, byCountry[key], ReasonInvalidType)
		}
		norm := map[string]any{}
		for _, name := range allowed {
			raw, present := fields[name]
			if !present || raw == nil {
				continue
			}
			path := parent + "." + country + "." + name
			if strings.HasSuffix(name, "_rounds") || strings.HasSuffix(name, "_bets") {
				n, ok := toInt(raw)
				if !ok || n <= 0 {
					return nil, c.fail(path, raw, ReasonMustBePositive)
				}
				norm[name] = n
			} else {
				f, ok := toNumber(raw)
				if !ok || f <= 0 {
					return nil, c.fail(path, raw, ReasonMustBePositive)
				}
				norm[name] = f
			}
		}
		if len(norm) > 0 {
			out[country] = norm
		}
	}
	return out, nil
}

func isCountryCode(s string) bool {
	if len(s) != 2 {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
