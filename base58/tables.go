// Package base58 implements the Bitcoin-style base58 encoding of
// arbitrary octet sequences.
//
// The input is interpreted as a big-endian integer and re-expressed
// in base 58 over an alphabet that excludes the visually ambiguous
// characters '0', 'O', 'I' and 'l'. Because zero has no positional
// representation, each leading 0x00 octet is carried structurally as
// one leading '1' character.
//
// This is arbitrary-precision base conversion, not bit regrouping:
// encoding and decoding cost O(input length x output length), which
// is quadratic in the worst case. Callers handling untrusted input of
// unbounded size should impose their own length limits.
package base58

const b58Invalid = 0xFF

var encodeTab, decodeTab = func() ([58]byte, [256]byte) {
	const b58Chars = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

	var enc [58]byte
	var dec [256]byte

	for i := range dec {
		dec[i] = b58Invalid
	}

	for i := range b58Chars {
		i := byte(i)
		v := b58Chars[i]

		enc[i] = v
		dec[v] = i
	}

	return enc, dec
}()

// the whitespace set tolerated by Decode
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}
