package orchestrate

import (
	"fmt"

	"github.com/kaelstrom/voltorb-oracle/pkg/board"
	"github.com/kaelstrom/voltorb-oracle/pkg/estimate"
)

// wonLostExplanation renders the short message for a round that
// ended before estimation and policy ran.
func wonLostExplanation(state board.GameState) string {
	switch state {
	case board.StateWon:
		return "round won: every remaining hidden cell can only hold 0 or 1"
	case board.StateLost:
		return "round lost: a revealed cell was a voltorb"
	default:
		return ""
	}
}

// lowConfidenceExplanation renders the message for a round where
// sampling accepted zero boards but propagation still left usable
// guarantees, so Analyze returns those guarantees with no
// recommendations rather than ranking noise.
func lowConfidenceExplanation(mode board.Mode, safeCount, hazardCount, forcedCount int) string {
	return fmt.Sprintf("mode=%s: low confidence (estimator accepted zero samples); recommendations withheld, guarantees only: %d safe, %d voltorb, %d forced",
		mode, safeCount, hazardCount, forcedCount)
}

// explain names the active mode, the top recommendation, whether
// exact enumeration or sampling produced the marginals, and whether a
// quit advisory fired.
func explain(mode board.Mode, ranked []board.Recommendation, result estimate.Result, quit bool) string {
	basis := "exact enumeration"
	if result.Path == estimate.PathSampled {
		basis = fmt.Sprintf("sampling (%d accepted boards)", result.AcceptedSamples)
		if result.LowConfidence {
			basis = "low-confidence fallback (too few accepted samples)"
		}
	}

	if len(ranked) == 0 {
		return fmt.Sprintf("mode=%s: no hidden cells remain to recommend; basis=%s", mode, basis)
	}

	top := ranked[0]
	msg := fmt.Sprintf("mode=%s: top pick (%d,%d) risk=%s p_voltorb=%.3f; basis=%s",
		mode, top.Position.Row, top.Position.Col, top.RiskTier, top.PVoltorb, basis)
	if quit {
		msg += "; quitting is advised"
	}
	return msg
}
