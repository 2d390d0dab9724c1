package diff

import "fmt"

// ChangeType classifies one structural change.
type ChangeType string

const (
	ChangeAdded    ChangeType = "added"
	ChangeRemoved  ChangeType = "removed"
	ChangeModified ChangeType = "modified"
)

// Change is one structural difference at a dot/bracket field path. Never
// persisted; produced only for the diff read path.
type Change struct {
	FieldPath  string     `json:"field_path"`
	OldValue   any        `json:"old_value"`
	NewValue   any        `json:"new_value"`
	ChangeType ChangeType `json:"change_type"`
}

// Diff walks two decoded JSON snapshots and returns their structural
// differences in a deterministic order. Containers whose divergence is fully
// explained by children never get their own modified entry. Diff(x, x) is
// always empty.
func Diff(oldDoc, newDoc any) []Change {
	return walk("", FromJSON(oldDoc), FromJSON(newDoc), []Change{})
}

func walk(path string, oldV, newV Value, acc []Change) []Change {
	if equal(oldV, newV) {
		return acc
	}
	switch {
	case oldV.kind == kindMapping && newV.kind == kindMapping:
		for _, key := range unionKeys(oldV.keys, newV.keys) {
			childPath := key
			if path != "" {
				childPath = path + "." + key
			}
			oldChild, inOld := oldV.fields[key]
			newChild, inNew := newV.fields[key]
			switch {
			case inOld && !inNew:
				acc = append(acc, Change{FieldPath: childPath, OldValue: oldChild.Interface(), ChangeType: ChangeRemoved})
			case !inOld && inNew:
				acc = append(acc, Change{FieldPath: childPath, NewValue: newChild.Interface(), ChangeType: ChangeAdded})
			default:
				acc = walk(childPath, oldChild, newChild, acc)
			}
		}
		return acc
	case oldV.kind == kindSequence && newV.kind == kindSequence:
		max := len(oldV.seq)
		if len(newV.seq) > max {
			max = len(newV.seq)
		}
		for i := 0; i < max; i++ {
			childPath := fmt.Sprintf("%s[%d]", path, i)
			switch {
			case i >= len(newV.seq):
				acc = append(acc, Change{FieldPath: childPath, OldValue: oldV.seq[i].Interface(), ChangeType: ChangeRemoved})
			case i >= len(oldV.seq):
				acc = append(acc, Change{FieldPath: childPath, NewValue: newV.seq[i].Interface(), ChangeType: ChangeAdded})
			default:
				acc = walk(childPath, oldV.seq[i], newV.seq[i], acc)
			}
		}
		return acc
	default:
		// scalar vs scalar, or mismatched container kinds
		return append(acc, Change{
			FieldPath:  path,
			OldValue:   oldV.Interface(),
			NewValue:   newV.Interface(),
			ChangeType: ChangeModified,
		})
	}
}

// unionKeys merges two sorted key slices, preserving order and dropping
// duplicates.
func unionKeys(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		default:
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}
