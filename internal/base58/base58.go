// Package base58 implements Bitcoin-alphabet Base58 encoding and decoding.
// Hand-rolled for the same reason as internal/sha512core: this is kernel
// code that has to stay portable to a non-host compute target, so no
// third-party Base58 package sits in the hot path.
package base58

import "fmt"

// alphabet is the 58-character Bitcoin alphabet: no 0, O, I, or l.
const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var decodeTable [256]int8

func init() {
	for i := range decodeTable {
		decodeTable[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		decodeTable[alphabet[i]] = int8(i)
	}
}

// Encode returns the Base58 encoding of src. Each leading 0x00 byte in src
// becomes a leading '1' in the output, preserving the count of leading
// zero bytes.
func Encode(src []byte) string {
	zeros := 0
	for zeros < len(src) && src[zeros] == 0 {
		zeros++
	}

	// big-endian byte string to base-58 digits via repeated long division.
	input := make([]byte, len(src))
	copy(input, src)

	digits := make([]byte, 0, len(src)*138/100+1)
	start := zeros
	for start < len(input) {
		carry := 0
		for i := start; i < len(input); i++ {
			acc := carry*256 + int(input[i])
			input[i] = byte(acc / 58)
			carry = acc % 58
		}
		digits = append(digits, byte(carry))
		for start < len(input) && input[start] == 0 {
			start++
		}
	}

	out := make([]byte, zeros+len(digits))
	for i := 0; i < zeros; i++ {
		out[i] = alphabet[0]
	}
	for i, d := range digits {
		out[zeros+len(digits)-1-i] = alphabet[d]
	}
	return string(out)
}

// Decode reverses Encode. It is used only by tests to check the round-trip
// property; the search kernel itself never decodes.
func Decode(s string) ([]byte, error) {
	zeros := 0
	for zeros < len(s) && s[zeros] == alphabet[0] {
		zeros++
	}

	b := make([]byte, 0, len(s)*733/1000+1)
	for i := zeros; i < len(s); i++ {
		v := decodeTable[s[i]]
		if v < 0 {
			return nil, fmt.Errorf("base58: invalid character %q at offset %d", s[i], i)
		}
		carry := int(v)
		for j := 0; j < len(b); j++ {
			acc := int(b[j])*58 + carry
			b[j] = byte(acc & 0xff)
			carry = acc >> 8
		}
		for carry > 0 {
			b = append(b, byte(carry&0xff))
			carry >>= 8
		}
	}

	out := make([]byte, zeros+len(b))
	for i := 0; i < len(b); i++ {
		out[zeros+len(b)-1-i] = b[i]
	}
	return out, nil
}
