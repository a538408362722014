package overlay

import "github.com/samber/lo"

// DetectEdit compares two span text lists, assuming a single point of edit.
// pos is the length of their common prefix; extent is the number of spans
// inserted (positive) or removed (negative).
func DetectEdit(old, new []string) (pos, extent int) {
	n := min(len(old), len(new))
	for pos < n && old[pos] == new[pos] {
		pos++
	}
	return pos, len(new) - len(old)
}

// Remap moves overlay keys from the old span list to the new one. Keys before
// the edit stay; later keys shift by the edit extent. Keys of removed spans,
// and keys shifted out of range, are dropped: a key that would land before
// the edit point belonged to a deleted span and never takes over a prefix
// span's index. The returned overlay may be ov
// itself when nothing moved.
func Remap(ov Overlay, old, new []string) Overlay {
	pos, extent := DetectEdit(old, new)
	if extent == 0 {
		return ov
	}

	moved := lo.FilterMap(lo.Entries(ov), func(e lo.Entry[int, Interpretation], _ int) (lo.Entry[int, Interpretation], bool) {
		if e.Key < pos {
			return e, true
		}
		e.Key += extent
		return e, e.Key >= pos && e.Key < len(new)
	})
	return Overlay(lo.FromEntries(moved))
}
