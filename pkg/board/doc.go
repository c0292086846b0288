// Package board defines the data model shared by every stage of the
// Voltorb decision engine: cells, lines, boards, line configurations,
// marginals, and the request/response/config types exchanged with
// callers.
//
// # Overview
//
// A Board is a 5x5 grid of Cells plus ten Line descriptors (five rows,
// five columns). Each Cell carries a Domain — a 4-bit Mask over the
// values {0,1,2,3} — rather than a single value, because most cells
// start out hidden and only narrow to a singleton once the caller
// reveals them or the Constraint Engine (package propagate) deduces
// their value. The Distribution Estimator (package estimate) reads
// domains but never narrows them.
//
// This package owns no solving logic. It owns the shapes that solving
// logic operates on, plus the arithmetic-only parts of those shapes
// (Mask set operations, Line target bounds) that have no dependency on
// a particular algorithm.
//
// # Coordinates
//
// Rows and columns are both indexed 0..4. A Coord identifies a single
// cell; a Line is identified by (Kind, Index).
package board
