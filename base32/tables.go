// Package base32 implements the RFC 4648 base32 encoding of
// arbitrary octet sequences.
//
// Encoding groups input bits into 5-bit symbols and pads the output
// with '=' to the next 8 character quantum. Decoding is case
// insensitive, stops at the first padding character, and silently
// skips any byte outside the alphabet, so missing padding, embedded
// whitespace, and line wrapping are all tolerated. Residual padding
// bits that are not zero fail decoding.
package base32

const (
	b32Invalid = 0xFF
	b32Pad     = '='
)

//
// decode table is derived from the forward alphabet, folding letter case
//

var encodeTab, decodeTab = func() ([32]byte, [256]byte) {
	const (
		b32Chars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
		b32UpToLow = byte('a' - 'A')
	)

	var enc [32]byte
	var dec [256]byte

	for i := range dec {
		dec[i] = b32Invalid
	}

	for i := range b32Chars {
		i := byte(i)
		v := b32Chars[i]

		enc[i] = v
		dec[v] = i
		if v > '9' {
			dec[v+b32UpToLow] = i
		}
	}

	return enc, dec
}()
