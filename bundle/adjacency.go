package bundle

import (
	"fmt"

	"github.com/katalvlaran/bungraph/handle"
)

// GetAdjacency classifies how two bundle sides overlap as sets, checking
// both sides' flips so that orientation does not hide a match. Both
// sides must already be frozen (ErrInvalidBundleOp otherwise).
//
// Classification (per the four intersections members(a)∩members(b),
// members(a)∩flips(b), flips(a)∩members(b), flips(a)∩flips(b)):
//
//   - AdjStrong iff any one of the four equals both side sizes (identical
//     member sets under some orientation).
//   - AdjWeak iff none is total but at least one is non-empty.
//   - AdjNone otherwise.
//
// Complexity: O(n + m) per intersection, four intersections.
func GetAdjacency(a, b *Side) (Adjacency, error) {
	if !a.frozen || !b.frozen {
		return AdjNone, fmt.Errorf("bundle: GetAdjacency: %w", ErrInvalidBundleOp)
	}

	counts := [4]int{
		intersectSortedCount(a.members, b.members),
		intersectSortedCount(a.members, b.flips),
		intersectSortedCount(a.flips, b.members),
		intersectSortedCount(a.flips, b.flips),
	}

	na, nb := len(a.members), len(b.members)
	anyNonEmpty := false
	for _, c := range counts {
		if na == nb && c == na && na > 0 {
			return AdjStrong, nil
		}
		if c > 0 {
			anyNonEmpty = true
		}
	}
	if anyNonEmpty {
		return AdjWeak, nil
	}

	return AdjNone, nil
}

// intersectSortedCount counts the common elements of two ascending-sorted
// handle slices via a merge scan.
func intersectSortedCount(a, b []handle.Handle) int {
	i, j, count := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			count++
			i++
			j++
		case a[i].Less(b[j]):
			i++
		default:
			j++
		}
	}

	return count
}
