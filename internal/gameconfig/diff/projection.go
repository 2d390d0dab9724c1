package diff

import "github.com/stakehouse/pitboss/internal/gameconfig"

// slot-advanced groups its autoplay knobs under one key so diffs read as
// autoplay.<field> instead of three top-level entries.
var slotAutoplayFields = []string{
	"autoplay_default_spins",
	"autoplay_max_spins",
	"autoplay_stop_on_balance_drop_percent",
}

// Project shapes a stored document payload into the diffable projection for
// its config type. Most types diff as stored; slot-advanced nests autoplay
// sub-fields. The input is never mutated.
func Project(t gameconfig.Type, payload map[string]any) map[string]any {
	switch t {
	case gameconfig.TypeSlotAdvanced:
		out := map[string]any{}
		autoplay := map[string]any{}
		for k, v := range payload {
			moved := false
			for _, f := range slotAutoplayFields {
				if k == f {
					autoplay[k] = v
					moved = true
					break
				}
			}
			if !moved {
				out[k] = v
			}
		}
		out["autoplay"] = autoplay
		return out
	default:
		out := make(map[string]any, len(payload))
		for k, v := range payload {
			out[k] = v
		}
		return out
	}
}
