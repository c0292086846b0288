package estimate

import "github.com/kaelstrom/voltorb-oracle/pkg/board"

// exactJointThreshold bounds how many candidate joint boards (the
// product of row solution-set sizes) Path A will walk in full. Above
// this, exact enumeration risks seconds-scale latency for a single
// analyze call, so the estimator falls back to sampling instead.
const exactJointThreshold = 20000

// estimateExact walks every joint board formed by picking one
// configuration per row, pruning column sums and zero counts
// incrementally so most partial assignments die before reaching row
// 5. Every column-consistent board contributes equally to the tally;
// the result carries no sampling error.
func estimateExact(b *board.Board, sets [5]board.SolutionSet) Result {
	tally := make(map[board.Coord][4]int, 25)
	var grid [5][5]int
	var colSum, colZeros [5]int
	total := 0

	var rec func(row int)
	rec = func(row int) {
		if row == 5 {
			total++
			for r := 0; r < 5; r++ {
				for c := 0; c < 5; c++ {
					coord := board.Coord{Row: r, Col: c}
					counts := tally[coord]
					counts[grid[r][c]]++
					tally[coord] = counts
				}
			}
			return
		}

		remainingRows := 5 - row - 1
		savedSum, savedZeros := colSum, colZeros
		for _, cfg := range sets[row] {
			nextSum := savedSum
			nextZeros := savedZeros
			feasible := true
			for c := 0; c < 5; c++ {
				nextSum[c] += cfg[c]
				if cfg[c] == 0 {
					nextZeros[c]++
				}
				col := b.Cols[c]
				if nextZeros[c] > col.ZeroTarget {
					feasible = false
					break
				}
				maxFuture := nextSum[c] + remainingRows*3
				minFuture := nextSum[c]
				if maxFuture < col.SumTarget || minFuture > col.SumTarget {
					feasible = false
					break
				}
				if row == 4 && (nextSum[c] != col.SumTarget || nextZeros[c] != col.ZeroTarget) {
					feasible = false
					break
				}
			}
			if !feasible {
				continue
			}

			for c := 0; c < 5; c++ {
				grid[row][c] = cfg[c]
			}
			colSum, colZeros = nextSum, nextZeros
			rec(row + 1)
		}
		colSum, colZeros = savedSum, savedZeros
	}
	rec(0)

	if total == 0 {
		return Result{Path: PathExact, AcceptedSamples: 0}
	}

	marginals := make(map[board.Coord]board.Marginal, 25)
	for coord, counts := range tally {
		var m board.Marginal
		for v := 0; v < 4; v++ {
			m[v] = float64(counts[v]) / float64(total)
		}
		marginals[coord] = m
	}
	return Result{Marginals: marginals, AcceptedSamples: total, Path: PathExact}
}
