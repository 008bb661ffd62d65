// Package curve implements the twisted Edwards curve used by Ed25519:
// point representation, doubling, addition, fixed-base scalar
// multiplication, and compression.
package curve

import "github.com/davidzita/grind/internal/field"

// Ge is a point in extended twisted-Edwards coordinates (X:Y:Z:T), where
// the affine point is (X/Z, Y/Z) and T = XY/Z.
type Ge struct {
	X, Y, Z, T *field.Fe
}

// Identity returns the neutral element (0, 1, 1, 0).
func Identity() Ge {
	return Ge{X: field.Zero(), Y: field.One(), Z: field.One(), T: field.Zero()}
}

// basePoint is the standard Ed25519 base point G, in extended coordinates
// with Z=1 and T=X*Y.
func basePoint() Ge {
	bx := field.FromBytes(baseX[:])
	by := field.FromBytes(baseY[:])
	return Ge{X: bx, Y: by, Z: field.One(), T: field.Mul(bx, by)}
}

// baseX, baseY hold the Ed25519 base point's affine coordinates, 32-byte
// little-endian, matching the RFC 8032 test vectors.
var (
	baseX = [32]byte{
		0x1a, 0xd5, 0x25, 0x8f, 0x60, 0x2d, 0x56, 0xc9,
		0xb2, 0xa7, 0x25, 0x95, 0x60, 0xc7, 0x2c, 0x69,
		0x5c, 0xdc, 0xd6, 0xfd, 0x31, 0xe2, 0xa4, 0xc0,
		0xfe, 0x53, 0x6e, 0xcd, 0xd3, 0x36, 0x69, 0x21,
	}
	baseY = [32]byte{
		0x58, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
		0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
		0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
		0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
	}
)

// Double returns 2*p using the a=-1 extended twisted-Edwards doubling
// formulas.
func Double(p Ge) Ge {
	A := field.Sq(p.X)
	B := field.Sq(p.Y)
	C := field.Double(field.Sq(p.Z))
	D := field.Neg(A)
	xy := field.Add(p.X, p.Y)
	E := field.Sub(field.Sub(field.Sq(xy), A), B)
	G := field.Add(D, B)
	F := field.Sub(G, C)
	H := field.Sub(D, B)

	return Ge{
		X: field.Mul(E, F),
		Y: field.Mul(G, H),
		T: field.Mul(E, H),
		Z: field.Mul(F, G),
	}
}

// Add returns p+q using the extended+extended "add-2008-hwcd-3" formulas.
func Add(p, q Ge) Ge {
	A := field.Mul(field.Sub(p.Y, p.X), field.Sub(q.Y, q.X))
	B := field.Mul(field.Add(p.Y, p.X), field.Add(q.Y, q.X))
	C := field.Mul(field.Mul(p.T, q.T), field.D2)
	D := field.Double(field.Mul(p.Z, q.Z))
	E := field.Sub(B, A)
	F := field.Sub(D, C)
	G := field.Add(D, C)
	H := field.Add(B, A)

	return Ge{
		X: field.Mul(E, F),
		Y: field.Mul(G, H),
		T: field.Mul(E, H),
		Z: field.Mul(F, G),
	}
}

// ScalarBaseMult computes scalar*G using a simple LSB-first double-and-add
// scan. Not constant-time, which is acceptable here because a vanity
// search leaks its output by definition: the found keypair is the whole
// point.
//
// scalar is the 32-byte little-endian clamped Ed25519 scalar.
func ScalarBaseMult(scalar [32]byte) Ge {
	r := Identity()
	q := basePoint()

	for byteIdx := 0; byteIdx < 32; byteIdx++ {
		b := scalar[byteIdx]
		for bit := 0; bit < 8; bit++ {
			if b&(1<<uint(bit)) != 0 {
				r = Add(r, q)
			}
			q = Double(q)
		}
	}

	return r
}

// Compress encodes p as a 32-byte compressed point: the low 255 bits carry
// y (after a full field inversion to reach affine coordinates) and the
// high bit of the last byte carries sign(x).
func Compress(p Ge) [32]byte {
	zInv := field.Invert(p.Z)
	x := field.Mul(p.X, zInv)
	y := field.Mul(p.Y, zInv)

	out := y.ToBytes()
	if x.IsNegative() {
		out[31] |= 0x80
	}
	return out
}
