// Package kernel implements the single per-work-item search step: seed the
// PRNG, hash, clamp, multiply by the base point, compress, Base58-encode,
// and test the pattern. This is the body meant to run identically on GPU
// and CPU — internal/dispatch's CPU backend calls Attempt directly once
// per work item; a GPU backend would translate this same sequence into
// device code while keeping every constant and step identical.
package kernel

import (
	"github.com/davidzita/grind/internal/base58"
	"github.com/davidzita/grind/internal/curve"
	"github.com/davidzita/grind/internal/pattern"
	"github.com/davidzita/grind/internal/rng"
	"github.com/davidzita/grind/internal/sha512core"
)

// Result is what a single successful work item reports.
type Result struct {
	WorkItemID uint64
	PrivateKey [64]byte // seed(32) ‖ compressed_public_key(32)
	Address    string
}

// Clamp applies the standard Ed25519 scalar clamp in place: clear the low
// 3 bits of byte 0, set bit 6 of byte 31, clear bit 7 of byte 31.
func Clamp(b *[32]byte) {
	b[0] &^= 0b0000_0111
	b[31] &^= 0b1000_0000
	b[31] |= 0b0100_0000
}

// Attempt runs one work item: derive seed[32] from (hostSeed0, hostSeed1,
// workItemID), hash it, clamp, multiply by the base point, compress,
// Base58-encode, and test m. It returns (Result, true) on a match.
func Attempt(hostSeed0, hostSeed1, workItemID uint64, m *pattern.Matcher) (Result, bool) {
	r := rng.New(hostSeed0, hostSeed1, workItemID)
	seed := r.Seed32()

	hash := sha512core.Sum512(seed[:])

	var scalar [32]byte
	copy(scalar[:], hash[:32])
	Clamp(&scalar)

	point := curve.ScalarBaseMult(scalar)
	pub := curve.Compress(point)

	addr := base58.Encode(pub[:])
	if !m.Match(addr) {
		return Result{}, false
	}

	var pk [64]byte
	copy(pk[:32], seed[:])
	copy(pk[32:], pub[:])

	return Result{WorkItemID: workItemID, PrivateKey: pk, Address: addr}, true
}
