package gesture

// MovedIndices bridges a generic list-reorder event into an index pair by
// scanning for the first and last positional mismatch between the old and
// new order.
//
// Contract: the two slices must describe the same items and differ by at
// most one contiguous relocation. That is what a single drag produces. If a
// caller hands in an order where several items moved independently, the
// result is a single, possibly wrong, pair; this limitation is deliberate
// and callers must not feed multi-element diffs through it.
func MovedIndices(before, after []string) (from, to int, ok bool) {
	if len(before) != len(after) {
		return 0, 0, false
	}

	lo := 0
	for lo < len(before) && before[lo] == after[lo] {
		lo++
	}
	if lo == len(before) {
		return 0, 0, false // identical order
	}

	hi := len(before) - 1
	for hi > lo && before[hi] == after[hi] {
		hi--
	}

	switch {
	case before[lo] == after[hi]:
		// The item at lo moved down to hi; everything between shifted up.
		return lo, hi, shiftedBy(before, after, lo, hi, 1)
	case before[hi] == after[lo]:
		// The item at hi moved up to lo; everything between shifted down.
		return hi, lo, shiftedBy(before, after, lo, hi, -1)
	default:
		return 0, 0, false
	}
}

// shiftedBy verifies the non-moved items inside [lo, hi] shifted uniformly
// by delta, which holds exactly when the window is one relocation.
func shiftedBy(before, after []string, lo, hi, delta int) bool {
	if delta > 0 {
		for i := lo; i < hi; i++ {
			if after[i] != before[i+1] {
				return false
			}
		}
		return true
	}
	for i := lo + 1; i <= hi; i++ {
		if after[i] != before[i-1] {
			return false
		}
	}
	return true
}
