// Package propagate implements the Constraint Engine (spec 4.2): it
// builds a Board from a validated Request, then drives cell domains to
// a fixpoint using arc consistency at line granularity, and exposes
// the guaranteed-safe, guaranteed-hazard, and forced-value deductions
// that fall out of that fixpoint.
//
// # Algorithm
//
// For each dirty line L, Propagate enumerates every 5-tuple consistent
// with L's cells' current domains and L's two targets (its solution
// set), projects that set back onto each cell position, and narrows
// the cell's domain to the intersection with the projection. Any
// domain narrowing dirties the cell's other line (its row if L was a
// column, its column if L was a row). The queue starts with rows 0..4
// then columns 0..4 and drains first-in first-out, appending each
// newly dirtied line at the back, so propagation output is
// reproducible.
//
// An empty solution set or an empty cell domain at any point is a
// Contradiction; Propagate never retries and is fully deterministic.
package propagate
