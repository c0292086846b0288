// Package render draws diagnostic snapshots of a Board for operators
// debugging propagation or sampling. It is not part of the analyze
// contract: orchestrate.Analyze never calls it, and nothing in the
// response depends on it.
package render
