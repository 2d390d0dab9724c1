// Package diff computes structural differences between two snapshots of the
// same config type. It operates on a closed value model (scalar, sequence,
// mapping) built from decoded JSON, so the walk never falls back to dynamic
// type inspection.
package diff

import "sort"

type kind int

const (
	kindScalar kind = iota
	kindSequence
	kindMapping
)

// Value is one node of the closed model.
type Value struct {
	kind   kind
	scalar any
	seq    []Value
	keys   []string
	fields map[string]Value
}

// FromJSON normalizes a decoded JSON value (map[string]any / []any / scalar)
// into the closed model. Mapping keys are held sorted so walks are
// deterministic.
func FromJSON(v any) Value {
	switch x := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fields := make(map[string]Value, len(x))
		for _, k := range keys {
			fields[k] = FromJSON(x[k])
		}
		return Value{kind: kindMapping, keys: keys, fields: fields}
	case []any:
		seq := make([]Value, len(x))
		for i, item := range x {
			seq[i] = FromJSON(item)
		}
		return Value{kind: kindSequence, seq: seq}
	default:
		return Value{kind: kindScalar, scalar: x}
	}
}

// Interface converts the node back to its plain JSON shape for reporting in
// change records.
func (v Value) Interface() any {
	switch v.kind {
	case kindMapping:
		out := make(map[string]any, len(v.keys))
		for _, k := range v.keys {
			out[k] = v.fields[k].Interface()
		}
		return out
	case kindSequence:
		out := make([]any, len(v.seq))
		for i, item := range v.seq {
			out[i] = item.Interface()
		}
		return out
	default:
		return v.scalar
	}
}

func equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case kindMapping:
		if len(a.keys) != len(b.keys) {
			return false
		}
		for _, k := range a.keys {
			bv, ok := b.fields[k]
			if !ok || !equal(a.fields[k], bv) {
				return false
			}
		}
		return true
	case kindSequence:
		if len(a.seq) != len(b.seq) {
			return false
		}
		for i := range a.seq {
			if !equal(a.seq[i], b.seq[i]) {
				return false
			}
		}
		return true
	default:
		return a.scalar == b.scalar
	}
}
