package propagate

import (
	"fmt"

	"github.com/kaelstrom/voltorb-oracle/pkg/board"
)

// Status is the outcome of a Propagate call.
type Status int

const (
	// Stable means the board reached a fixpoint with no contradiction.
	Stable Status = iota
	// Contradiction means some line's solution set, or some cell's
	// domain, emptied out. See the returned error for which.
	Contradiction
)

// ContradictionError names the line and reason a propagation run
// failed, so callers can render an actionable message (spec 4.2, 7).
type ContradictionError struct {
	LineKind board.Kind
	LineIdx  int
	Reason   string
}

func (e *ContradictionError) Error() string {
	return fmt.Sprintf("propagate: contradiction on %s line %d: %s", e.LineKind, e.LineIdx, e.Reason)
}

// maxIterationMultiplier bounds Propagate's work-queue draining at
// 10x the number of lines (spec 5's "fails fast otherwise" safety
// valve); real runs converge in a small fraction of that because arc
// consistency at this granularity is confluent.
const maxIterationMultiplier = 10

// Propagate drives b to a fixpoint using line-level arc consistency.
// The work queue starts with all ten lines dirty, in row-then-column
// index order, and drains deterministically: whichever cell narrows a
// line's domain dirties that cell's other line, queued only if it
// isn't already pending.
func Propagate(b *board.Board) (Status, error) {
	lines := b.Lines() // rows 0..4, then cols 0..4, fixed order
	dirty := make([]bool, len(lines))
	queue := make([]int, len(lines))
	for i := range lines {
		dirty[i] = true
		queue[i] = i
	}

	maxIterations := maxIterationMultiplier * len(lines)
	iterations := 0

	for len(queue) > 0 {
		iterations++
		if iterations > maxIterations {
			return Contradiction, fmt.Errorf("propagate: exceeded %d iterations without reaching a fixpoint", maxIterations)
		}

		idx := queue[0]
		queue = queue[1:]
		dirty[idx] = false
		line := lines[idx]

		solutions := Enumerate(line)
		if len(solutions) == 0 {
			return Contradiction, &ContradictionError{LineKind: line.Kind, LineIdx: line.Index, Reason: "solution set is empty"}
		}

		for k, cell := range line.Cells {
			projected := solutions.ProjectPosition(k)
			narrowed := cell.Domain.Intersect(projected)
			if narrowed.Empty() {
				return Contradiction, &ContradictionError{LineKind: line.Kind, LineIdx: line.Index, Reason: fmt.Sprintf("cell (%d,%d) domain emptied", cell.Row, cell.Col)}
			}
			if narrowed == cell.Domain {
				continue
			}
			cell.Domain = narrowed

			// The cell's other line is now dirty.
			other := b.LineFor(cell.Coord(), otherKind(line.Kind))
			otherIdx := lineQueueIndex(other)
			if !dirty[otherIdx] {
				dirty[otherIdx] = true
				queue = append(queue, otherIdx)
			}
		}
	}

	return Stable, nil
}

func otherKind(k board.Kind) board.Kind {
	if k == board.KindRow {
		return board.KindCol
	}
	return board.KindRow
}

// lineQueueIndex maps a line back to its position in b.Lines()'s
// fixed row-then-column ordering.
func lineQueueIndex(l *board.Line) int {
	if l.Kind == board.KindRow {
		return l.Index
	}
	return 5 + l.Index
}

// Enumerate computes a line's solution set: every 5-tuple assigning
// each cell from its current domain such that the five values sum to
// SumTarget and exactly ZeroTarget of them are zero. The search space
// is at most 4^5 = 1024 tuples, pruned immediately by domain
// membership, so this runs in well under a millisecond per line.
// Propagate uses this to narrow domains; the estimator reuses it
// unchanged to build exact per-row solution sets for its fast path.
func Enumerate(line *board.Line) board.SolutionSet {
	var out board.SolutionSet
	var cfg board.Configuration

	var rec func(pos, sum, zeros int)
	rec = func(pos, sum, zeros int) {
		if pos == 5 {
			if sum == line.SumTarget && zeros == line.ZeroTarget {
				out = append(out, cfg)
			}
			return
		}
		remaining := 5 - pos - 1
		for _, v := range line.Cells[pos].Domain.Values() {
			nextZeros := zeros
			if v == 0 {
				nextZeros++
			}
			if nextZeros > line.ZeroTarget {
				continue
			}
			// Prune: even the maximum possible future sum can't reach
			// the target, or the minimum possible future sum already
			// overshoots it.
			nextSum := sum + v
			maxFuture := nextSum + remaining*3
			minFuture := nextSum
			if maxFuture < line.SumTarget || minFuture > line.SumTarget {
				continue
			}
			cfg[pos] = v
			rec(pos+1, nextSum, nextZeros)
		}
	}
	rec(0, 0, 0)

	return out
}
