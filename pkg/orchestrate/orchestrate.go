package orchestrate

import (
	"context"
	"fmt"

	"github.com/kaelstrom/voltorb-oracle/pkg/board"
	"github.com/kaelstrom/voltorb-oracle/pkg/estimate"
	"github.com/kaelstrom/voltorb-oracle/pkg/policy"
	"github.com/kaelstrom/voltorb-oracle/pkg/propagate"
	"github.com/kaelstrom/voltorb-oracle/pkg/validate"
)

// Analyze runs one full decision-support pass over a request: validate,
// propagate, classify, estimate, rank, explain. Every typed error from
// the components below is wrapped here before returning, so callers
// only ever see a single error value.
func Analyze(ctx context.Context, req *board.Request, cfg board.EngineConfig) (*board.AnalysisResponse, error) {
	if err := validate.Validate(req); err != nil {
		return nil, fmt.Errorf("orchestrate: validation failed: %w", err)
	}

	b, err := propagate.Build(req)
	if err != nil {
		return nil, fmt.Errorf("orchestrate: build failed: %w", err)
	}

	status, err := propagate.Propagate(b)
	if err != nil {
		return nil, fmt.Errorf("orchestrate: propagation failed: %w", err)
	}
	if status == propagate.Contradiction {
		return nil, &InternalError{Detail: "propagate reported Contradiction without an error"}
	}

	safe, hazard, forced := propagate.ExtractDeductions(b)
	state := classifyState(b, req)

	resp := &board.AnalysisResponse{
		GuaranteedSafe:    safe,
		GuaranteedVoltorb: hazard,
		ForcedValues:      forced,
		Mode:              req.Mode,
		GameState:         state,
	}

	if state == board.StateWon || state == board.StateLost {
		resp.Explanation = wonLostExplanation(state)
		return resp, nil
	}

	result, err := estimate.Estimate(ctx, b, cfg)
	if err != nil {
		return nil, fmt.Errorf("orchestrate: estimation failed: %w", err)
	}

	if result.LowConfidence {
		return applyLowConfidence(resp, req.Mode, cfg.SampleBudget)
	}

	candidates := recommendableCoords(b)

	var ranked []board.Recommendation
	var quit bool
	switch req.Mode {
	case board.ModeProfit:
		ranked = policy.RankProfit(candidates, result.Marginals, cfg.RiskTiers)
		quit = policy.QuitAdvisoryProfit(ranked, cfg.QuitThresholdProfit)
	default:
		ranked = policy.RankLevel(candidates, result.Marginals, cfg.RiskTiers)
		quit = policy.QuitAdvisoryLevel(ranked, len(safe), cfg.QuitThresholdLevel)
	}

	resp.Recommendations = ranked
	resp.QuitRecommended = quit
	resp.Explanation = explain(req.Mode, ranked, result, quit)

	return resp, nil
}
