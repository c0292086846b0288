// Package estimate implements the Distribution Estimator: given a
// post-propagation board, it produces a marginal probability
// distribution over {0,1,2,3} for every hidden cell.
//
// # Strategy
//
// Each row's solution set is enumerated once (reusing
// propagate.Enumerate) and cached for the request. Two paths follow
// from there:
//
// Path A, exact joint enumeration, is taken when the cartesian product
// of all five rows' solution set sizes is small enough to walk in
// full. Every joint board is generated, checked against all five
// column targets, and every column-consistent board contributes
// equally to the tally. This is exact: no sampling error, no
// LowConfidence path.
//
// Path B, constrained random sampling, is the default for boards where
// the exact product is too large. Each worker goroutine repeatedly
// draws one uniform-random configuration per row, accepts the
// resulting grid if it satisfies every column's sum and zero targets,
// and tallies accepted boards into a private (cell, value) counter.
// Workers combine their tallies at the end; the combination is
// commutative and associative so worker count never affects the
// result's shape, only its sampling noise.
//
// Both paths report marginals as tally / total, where total is either
// the exact column-consistent count (Path A) or the accepted sample
// count (Path B). If Path B accepts zero samples before its budget or
// deadline is exhausted, Result.LowConfidence is set and marginals
// fall back to a uniform distribution over each cell's domain.
package estimate
