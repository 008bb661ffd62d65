// Package keypair implements the on-disk persistence format for found
// matches and the host-side re-verification check.
package keypair

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/davidzita/grind/internal/base58"
)

// Keypair is the 64-byte seed‖compressed_public_key value persisted to
// disk, wire-compatible with existing Solana keypair tooling.
type Keypair struct {
	Seed      [32]byte
	PublicKey [32]byte
}

// Bytes returns the 64-byte seed‖compressed_public_key concatenation.
func (k Keypair) Bytes() [64]byte {
	var out [64]byte
	copy(out[:32], k.Seed[:])
	copy(out[32:], k.PublicKey[:])
	return out
}

// FromPrivateKey splits a 64-byte seed‖compressed_public_key value into a
// Keypair.
func FromPrivateKey(pk [64]byte) Keypair {
	var k Keypair
	copy(k.Seed[:], pk[:32])
	copy(k.PublicKey[:], pk[32:])
	return k
}

// Verify re-derives the address from k's public key and reports whether it
// matches wantAddress byte-for-byte. A mismatch indicates a kernel bug and
// must never be silently ignored.
func Verify(k Keypair, wantAddress string) bool {
	return base58.Encode(k.PublicKey[:]) == wantAddress
}

// Save persists k to <address>.json in the working directory, as a single
// line JSON array of 64 decimal byte values with a trailing newline.
func Save(address string, k Keypair) error {
	pk := k.Bytes()
	values := make([]int, len(pk))
	for i, b := range pk {
		values[i] = int(b)
	}

	encoded, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("keypair: marshal %s: %w", address, err)
	}
	encoded = append(encoded, '\n')

	filename := address + ".json"
	if err := os.WriteFile(filename, encoded, 0o644); err != nil {
		return fmt.Errorf("keypair: write %s: %w", filename, err)
	}
	return nil
}
