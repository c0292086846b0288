package policy

import (
	"sort"

	"github.com/kaelstrom/voltorb-oracle/pkg/board"
)

// RiskTier buckets a hazard probability into a qualitative tier using
// the three ascending boundaries from EngineConfig.RiskTiers: Safe at
// or below tiers[0], Low up to tiers[1], Medium up to tiers[2], High
// above that.
func RiskTier(p0 float64, tiers [3]float64) board.Tier {
	switch {
	case p0 <= tiers[0]:
		return board.TierSafe
	case p0 <= tiers[1]:
		return board.TierLow
	case p0 <= tiers[2]:
		return board.TierMedium
	default:
		return board.TierHigh
	}
}

// buildRecommendations assembles one Recommendation per hidden cell
// with its hazard probability, risk tier, and full distribution. The
// expected-value field is filled in by the caller since its meaning
// differs between level and profit mode.
func buildRecommendations(hidden []board.Coord, marginals map[board.Coord]board.Marginal, tiers [3]float64) []board.Recommendation {
	recs := make([]board.Recommendation, 0, len(hidden))
	for _, coord := range hidden {
		m := marginals[coord]
		p0 := m[0]
		recs = append(recs, board.Recommendation{
			Position:     coord,
			PVoltorb:     p0,
			RiskTier:     RiskTier(p0, tiers),
			Distribution: m.AsDistribution(),
		})
	}
	return recs
}

// RankLevel ranks hidden cells for the survival-first objective:
// ascending hazard probability, tie-broken by descending expected
// value. ExpectedValue on each recommendation is E[value].
func RankLevel(hidden []board.Coord, marginals map[board.Coord]board.Marginal, tiers [3]float64) []board.Recommendation {
	recs := buildRecommendations(hidden, marginals, tiers)
	for i := range recs {
		recs[i].ExpectedValue = marginals[recs[i].Position].ExpectedValue()
	}
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].PVoltorb != recs[j].PVoltorb {
			return recs[i].PVoltorb < recs[j].PVoltorb
		}
		return recs[i].ExpectedValue > recs[j].ExpectedValue
	})
	return recs
}

// RankProfit ranks hidden cells for the reward-first objective:
// descending risk-adjusted expected value U = Σ_{v=1..3} v·marginal[v],
// tie-broken by ascending hazard probability. ExpectedValue on each
// recommendation holds U, not the unconditional E[value].
func RankProfit(hidden []board.Coord, marginals map[board.Coord]board.Marginal, tiers [3]float64) []board.Recommendation {
	recs := buildRecommendations(hidden, marginals, tiers)
	for i := range recs {
		recs[i].ExpectedValue = marginals[recs[i].Position].ExpectedNonZero()
	}
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].ExpectedValue != recs[j].ExpectedValue {
			return recs[i].ExpectedValue > recs[j].ExpectedValue
		}
		return recs[i].PVoltorb < recs[j].PVoltorb
	})
	return recs
}

// QuitAdvisoryLevel reports whether the level-mode quit advisory
// fires: the minimum hazard probability across hidden cells strictly
// exceeds threshold and no guaranteed-safe cell exists. ranked must
// already be RankLevel's output (ascending p0).
func QuitAdvisoryLevel(ranked []board.Recommendation, guaranteedSafeCount int, threshold float64) bool {
	if guaranteedSafeCount > 0 || len(ranked) == 0 {
		return false
	}
	return ranked[0].PVoltorb > threshold
}

// QuitAdvisoryProfit reports whether the profit-mode quit advisory
// fires: the maximum risk-adjusted expected value across hidden cells
// is strictly below threshold. ranked must already be RankProfit's
// output (descending U).
func QuitAdvisoryProfit(ranked []board.Recommendation, threshold float64) bool {
	if len(ranked) == 0 {
		return false
	}
	return ranked[0].ExpectedValue < threshold
}
