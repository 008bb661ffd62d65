package curve

import (
	"encoding/hex"
	"testing"

	"github.com/davidzita/grind/internal/base58"
	"github.com/davidzita/grind/internal/sha512core"
)

func clampTestScalar(h []byte) [32]byte {
	var s [32]byte
	copy(s[:], h[:32])
	s[0] &^= 0x07
	s[31] &^= 0x80
	s[31] |= 0x40
	return s
}

// TestScalarBaseMultFixedSeed exercises the full Attempt-equivalent pipeline
// (clamp -> scalar*G -> compress) for a fixed, pre-computed scalar and
// checks the compressed point against a value computed once from this
// implementation and pinned here as a golden vector.
func TestScalarBaseMultFixedSeed(t *testing.T) {
	// SHA-512 of 32 zero bytes, truncated to 32 bytes and clamped.
	h, err := hex.DecodeString("5046adc1dba838867b2bbbfdd0c3423e58b57970b5267a90f57960924a87f196")
	if err != nil {
		t.Fatal(err)
	}
	scalar := clampTestScalar(h)

	if scalar[0]&0x07 != 0 {
		t.Fatalf("clamp failed: scalar[0] low bits set: %x", scalar[0])
	}
	if scalar[31]&0xC0 != 0x40 {
		t.Fatalf("clamp failed: scalar[31] = %x, want bits 0x40 set and 0x80 clear", scalar[31])
	}

	point := ScalarBaseMult(scalar)
	pub := Compress(point)

	const want = "3b6a27bcceb6a42d62a3a8d02a6f0d73653215771de243a63ac048a18b59da29"
	if got := hex.EncodeToString(pub[:]); got != want {
		t.Fatalf("Compress(ScalarBaseMult(scalar)) = %s, want %s", got, want)
	}
}

// TestScalarBaseMultRFC8032Vector1 runs the same clamp -> scalar*G ->
// compress pipeline against RFC 8032 section 7.1's first Ed25519 test
// vector, so a bug shared between the implementation and a self-pinned
// golden (e.g. a swapped sign bit or wrong base-point constant) can't
// hide behind TestScalarBaseMultFixedSeed alone.
func TestScalarBaseMultRFC8032Vector1(t *testing.T) {
	const seedHex = "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"
	const wantPubHex = "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a"
	const wantAddress = "FVen3X669xLzsi6N2V91DoiyzHzg1uAgqiT8jZ9nS96Z"

	seed, err := hex.DecodeString(seedHex)
	if err != nil {
		t.Fatal(err)
	}

	h := sha512core.Sum512(seed)
	scalar := clampTestScalar(h[:32])

	point := ScalarBaseMult(scalar)
	pub := Compress(point)

	if got := hex.EncodeToString(pub[:]); got != wantPubHex {
		t.Fatalf("Compress(ScalarBaseMult(scalar)) = %s, want %s (RFC 8032 vector 1 public key)", got, wantPubHex)
	}
	if got := base58.Encode(pub[:]); got != wantAddress {
		t.Fatalf("base58.Encode(pub) = %s, want %s", got, wantAddress)
	}
}

func TestIdentityIsAdditiveIdentity(t *testing.T) {
	g := basePoint()
	sum := Add(Identity(), g)
	if !pointsEqual(sum, g) {
		t.Fatalf("Add(Identity(), G) != G")
	}
}

func TestDoubleMatchesAdd(t *testing.T) {
	g := basePoint()
	if !pointsEqual(Double(g), Add(g, g)) {
		t.Fatalf("Double(G) != Add(G,G)")
	}
}

func TestScalarBaseMultZeroIsIdentity(t *testing.T) {
	var zero [32]byte
	p := ScalarBaseMult(zero)
	if !pointsEqual(p, Identity()) {
		t.Fatalf("ScalarBaseMult(0) is not the identity")
	}
}

// pointsEqual compares two extended-coordinate points by their affine
// representation (X/Z, Y/Z), since extended coordinates are not unique.
func pointsEqual(p, q Ge) bool {
	return Compress(p) == Compress(q)
}
