package estimate

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kaelstrom/voltorb-oracle/pkg/board"
	"github.com/kaelstrom/voltorb-oracle/pkg/rng"
)

// sampleWorkers is the fixed degree of parallelism for Path B.
// Each worker owns its own RNG and private tally; combining them at
// the end is a plain commutative, associative sum, so this count only
// affects wall-clock time, never the result's shape.
const sampleWorkers = 8

type tally struct {
	counts   map[board.Coord][4]int
	accepted int
}

func newTally() tally {
	return tally{counts: make(map[board.Coord][4]int, 25)}
}

func (t *tally) add(grid [5][5]int) {
	t.accepted++
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			coord := board.Coord{Row: r, Col: c}
			counts := t.counts[coord]
			counts[grid[r][c]]++
			t.counts[coord] = counts
		}
	}
}

func (t *tally) merge(other tally) {
	t.accepted += other.accepted
	for coord, counts := range other.counts {
		existing := t.counts[coord]
		for v := 0; v < 4; v++ {
			existing[v] += counts[v]
		}
		t.counts[coord] = existing
	}
}

// estimateSampled runs constrained random sampling: each worker draws
// a uniform random configuration per row, accepts the resulting grid
// if every column's targets are satisfied, and tallies acceptances.
// Sampling stops when the combined accepted-or-attempted count reaches
// cfg.SampleBudget, the wall-clock deadline elapses, or ctx is
// cancelled.
func estimateSampled(ctx context.Context, b *board.Board, cfg board.EngineConfig, sets [5]board.SolutionSet, masterSeed uint64, configHash []byte) Result {
	deadline := time.Now().Add(time.Duration(cfg.WallClockMS) * time.Millisecond)
	budgetPerWorker := cfg.SampleBudget / sampleWorkers
	if budgetPerWorker < 1 {
		budgetPerWorker = 1
	}

	results := make([]tally, sampleWorkers)
	var wg sync.WaitGroup
	for w := 0; w < sampleWorkers; w++ {
		wg.Add(1)
		go func(workerIdx int) {
			defer wg.Done()
			name := workerName(workerIdx)
			worker := rng.NewRNG(masterSeed, name, configHash)
			results[workerIdx] = sampleWorker(ctx, worker, sets, b, budgetPerWorker, deadline)
		}(w)
	}
	wg.Wait()

	combined := newTally()
	for _, r := range results {
		combined.merge(r)
	}

	if combined.accepted == 0 {
		return uniformFallback(b)
	}

	marginals := make(map[board.Coord]board.Marginal, 25)
	for coord, counts := range combined.counts {
		var m board.Marginal
		for v := 0; v < 4; v++ {
			m[v] = float64(counts[v]) / float64(combined.accepted)
		}
		marginals[coord] = m
	}
	return Result{Marginals: marginals, AcceptedSamples: combined.accepted, Path: PathSampled}
}

func sampleWorker(ctx context.Context, worker *rng.RNG, sets [5]board.SolutionSet, b *board.Board, budget int, deadline time.Time) tally {
	t := newTally()
	var grid [5][5]int

	for attempts := 0; attempts < budget; attempts++ {
		select {
		case <-ctx.Done():
			return t
		default:
		}
		if time.Now().After(deadline) {
			return t
		}

		for r := 0; r < 5; r++ {
			cfg := sets[r][worker.Intn(len(sets[r]))]
			for c := 0; c < 5; c++ {
				grid[r][c] = cfg[c]
			}
		}

		if columnsConsistent(b, grid) {
			t.add(grid)
		}
	}
	return t
}

func columnsConsistent(b *board.Board, grid [5][5]int) bool {
	for c := 0; c < 5; c++ {
		col := b.Cols[c]
		sum, zeros := 0, 0
		for r := 0; r < 5; r++ {
			v := grid[r][c]
			sum += v
			if v == 0 {
				zeros++
			}
		}
		if sum != col.SumTarget || zeros != col.ZeroTarget {
			return false
		}
	}
	return true
}

func workerName(idx int) string {
	return fmt.Sprintf("sampler-%d", idx)
}
