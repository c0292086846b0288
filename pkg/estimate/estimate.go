package estimate

import (
	"context"
	"time"

	"github.com/kaelstrom/voltorb-oracle/pkg/board"
)

// Estimate produces a marginal distribution over {0,1,2,3} for every
// cell of a post-propagation board. b is read-only: Estimate never
// mutates it, and concurrent sampling workers each operate on their
// own stack-local grid rather than b itself.
func Estimate(ctx context.Context, b *board.Board, cfg board.EngineConfig) (Result, error) {
	sets, err := rowSolutions(b)
	if err != nil {
		return Result{}, err
	}

	if jointSize(sets) <= exactJointThreshold {
		if result := estimateExact(b, sets); result.AcceptedSamples > 0 {
			return result, nil
		}
		// The rows' solution sets are individually non-empty but no
		// joint combination satisfies every column: propagation's
		// local arc consistency didn't fully capture the correlation.
		// Fall through to sampling rather than reporting zero boards.
	}

	masterSeed := requestSeed(cfg)
	configHash := cfg.Hash()
	return estimateSampled(ctx, b, cfg, sets, masterSeed, configHash), nil
}

// requestSeed returns cfg.Seed if set, otherwise derives one from the
// current time, mirroring the teacher's own seed-on-demand convention.
func requestSeed(cfg board.EngineConfig) uint64 {
	if cfg.Seed != nil {
		return *cfg.Seed
	}
	now := time.Now().UnixNano()
	if now <= 0 {
		now = 1
	}
	return uint64(now)
}
