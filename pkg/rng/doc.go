// Package rng provides deterministic random number generation for the
// Distribution Estimator.
//
// # Overview
//
// The RNG type ensures reproducible sampling by deriving component-
// specific seeds from a request's master seed. This lets each sampling
// worker have an independent random sequence while the overall
// analysis stays reproducible when a seed is supplied.
//
// # Sub-Seed Derivation
//
// Each RNG derives its seed using SHA-256:
//
//	seed_component = H(masterSeed, componentName, configHash)
//
// where:
//   - masterSeed: the request's top-level seed
//   - componentName: worker identifier (e.g. "sampler-3")
//   - configHash: hash of the EngineConfig governing the request
//
// This ensures:
//  1. Same inputs always produce same RNG sequence (determinism)
//  2. Different workers get independent random sequences (isolation)
//  3. Config changes result in different sequences (sensitivity)
//
// # Usage
//
//	configHash := cfg.Hash()
//	worker := rng.NewRNG(masterSeed, "sampler-3", configHash)
//	cfg := sets[r][worker.Intn(len(sets[r]))]
//
// # Thread Safety
//
// RNG instances are NOT thread-safe. Each goroutine should use its own
// RNG instance. Create worker-specific RNGs before spawning goroutines
// and pass them explicitly.
package rng
