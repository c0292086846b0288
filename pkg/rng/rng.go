package rng

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand"
)

// RNG provides deterministic random number generation for one
// component of a single analysis request. Each component derives its
// own seed from the request's master seed so that, e.g., every
// sampling worker in the Distribution Estimator gets an independent
// sequence while the whole request stays reproducible end to end. The
// derivation follows:
//
//	seed_component = H(masterSeed, componentName, configHash)
//
// where H is SHA-256 and the first 8 bytes become the uint64 seed.
type RNG struct {
	source *rand.Rand
}

// NewRNG derives a component-specific RNG from the request's master
// seed, a component name (e.g. "sampler-3"), and a hash of the
// request's EngineConfig. Same inputs always yield the same sequence;
// different component names yield independent sequences; different
// configs yield different sequences.
func NewRNG(masterSeed uint64, name string, configHash []byte) *RNG {
	h := sha256.New()

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], masterSeed)
	h.Write(buf[:])
	h.Write([]byte(name))
	h.Write(configHash)

	hash := h.Sum(nil)
	derivedSeed := binary.BigEndian.Uint64(hash[:8])

	return &RNG{source: rand.New(rand.NewSource(int64(derivedSeed)))}
}

// Intn returns a pseudo-random integer in [0, n). It panics if n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn argument must be positive")
	}
	return r.source.Intn(n)
}
