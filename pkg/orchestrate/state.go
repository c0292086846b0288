package orchestrate

import "github.com/kaelstrom/voltorb-oracle/pkg/board"

// classifyState applies spec's won/lost/active rules: lost if any
// revealed cell's asserted value is 0; won if every still-hidden cell
// (domain size > 1) has no chance of holding a 2 or 3; active
// otherwise.
func classifyState(b *board.Board, req *board.Request) board.GameState {
	for _, rc := range req.Revealed {
		if rc.Value == 0 {
			return board.StateLost
		}
	}

	highValues := board.NewMask(2, 3)
	for _, cell := range b.HiddenCells() {
		if cell.Domain.Intersect(highValues) != board.EmptyMask {
			return board.StateActive
		}
	}
	return board.StateWon
}

// applyLowConfidence finishes a response when the estimator accepted
// zero samples (spec 7: LowConfidence "degrades gracefully... surfaces
// an error if no propagation-level guarantees exist"). If propagation
// left no guarantees at all there is nothing usable to return, so the
// request fails outright; otherwise the guarantees already on resp
// stand, flagged, with no recommendations fabricated from the
// uniform-over-domain fallback marginals.
func applyLowConfidence(resp *board.AnalysisResponse, mode board.Mode, sampleBudget int) (*board.AnalysisResponse, error) {
	guarantees := len(resp.GuaranteedSafe) + len(resp.GuaranteedVoltorb) + len(resp.ForcedValues)
	if guarantees == 0 {
		return nil, &LowConfidenceError{AttemptedBudget: sampleBudget}
	}

	resp.LowConfidence = true
	resp.Explanation = lowConfidenceExplanation(mode, len(resp.GuaranteedSafe), len(resp.GuaranteedVoltorb), len(resp.ForcedValues))
	return resp, nil
}

// recommendableCoords returns every cell the policy may rank: every
// cell except the ones the caller originally revealed. Forced cells
// (singleton by propagation, not by reveal) and guaranteed-safe cells
// still appear here per the response contract.
func recommendableCoords(b *board.Board) []board.Coord {
	cells := b.AllCells()
	coords := make([]board.Coord, 0, len(cells))
	for _, cell := range cells {
		if !cell.Given {
			coords = append(coords, cell.Coord())
		}
	}
	return coords
}
