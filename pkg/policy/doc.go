// Package policy ranks hidden cells into recommendations under one of
// two objectives and decides whether a quit advisory should fire.
//
// Level mode optimizes survival: cells are ranked by ascending hazard
// probability, tie-broken by descending expected value. Profit mode
// optimizes reward: cells are ranked by descending risk-adjusted
// expected value, tie-broken by ascending hazard probability. Both
// modes attach a qualitative risk tier to every recommendation.
package policy
