// Package search provides binary search over index ranges whose keys may
// fail to materialize, which is common when probing sparse metadata such
// as page indexes: an entry might carry no usable key at all, and that is
// an abort condition rather than a comparison outcome.
package search

import "cmp"

// Range binary-searches [start, end) for target, reading the key of a
// probed index through keyAt. The midpoint is computed as
// start+(end-start)/2 so large ranges cannot overflow.
//
// keyAt reports false when the probed index has no key; the whole search
// aborts immediately with ok=false in that case, before probing anything
// else. Otherwise ok is true and found tells exact match (index holds the
// match) from absence (index holds the insertion point that keeps the
// range sorted).
//
// With duplicate keys equal to target, the reported index is whichever
// probe compared equal first; no first-or-last-occurrence guarantee is
// made.
func Range[K cmp.Ordered](start, end int, target K, keyAt func(int) (K, bool)) (index int, found, ok bool) {
	for start < end {
		mid := start + (end-start)/2

		key, exists := keyAt(mid)
		if !exists {
			return 0, false, false
		}

		switch cmp.Compare(key, target) {
		case -1:
			start = mid + 1
		case 1:
			end = mid
		default:
			return mid, true, true
		}
	}

	return start, false, true
}
