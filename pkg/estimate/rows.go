package estimate

import (
	"fmt"

	"github.com/kaelstrom/voltorb-oracle/pkg/board"
	"github.com/kaelstrom/voltorb-oracle/pkg/propagate"
)

// rowSolutions enumerates each row's solution set once, reusing
// propagate.Enumerate so the estimator's notion of "consistent with
// current domains" never drifts from the Constraint Engine's.
func rowSolutions(b *board.Board) ([5]board.SolutionSet, error) {
	var sets [5]board.SolutionSet
	for i, row := range b.Rows {
		sol := propagate.Enumerate(row)
		if len(sol) == 0 {
			return sets, fmt.Errorf("estimate: row %d has an empty solution set on a board that should already be propagated", i)
		}
		sets[i] = sol
	}
	return sets, nil
}

// jointSize returns the product of the five rows' solution set sizes,
// i.e. the number of candidate joint boards before column checking.
// It saturates at math.MaxInt rather than overflowing, so callers can
// safely compare it against a threshold.
func jointSize(sets [5]board.SolutionSet) int {
	const maxInt = int(^uint(0) >> 1)
	size := 1
	for _, s := range sets {
		if size > maxInt/len(s) {
			return maxInt
		}
		size *= len(s)
	}
	return size
}
