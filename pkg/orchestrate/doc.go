// Package orchestrate implements Analyze, the engine's single public
// entry point. It sequences validation, constraint propagation, round-
// state classification, distribution estimation, and policy ranking,
// and is the sole place that translates typed component errors into
// the response shape external callers see.
//
// # Sequence
//
//  1. validate.Validate — malformed requests return early.
//  2. propagate.Build then propagate.Propagate — a contradiction
//     returns early with no recommendations.
//  3. Classify game state: won, lost, or active.
//  4. On won or lost, skip estimation and policy; emit guarantees only.
//  5. estimate.Estimate over the post-propagation board.
//  6. policy.RankLevel or policy.RankProfit, plus the matching quit
//     advisory check.
//  7. Assemble the explanation string.
package orchestrate
