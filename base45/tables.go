// Package base45 implements the RFC 9285 base45 encoding of
// arbitrary octet sequences.
//
// Unlike the power-of-two codecs, base45 works on 2-octet groups with
// base-45 positional arithmetic: a 16-bit value v becomes the three
// symbols for v%45, (v/45)%45 and (v/2025)%45, emitted in that order
// (least significant first). A trailing single octet becomes two
// symbols. The alphabet is case sensitive; note that space is a valid
// symbol (value 36), so interior spaces are significant.
package base45

const b45Invalid = 0xFF

var encodeTab, decodeTab = func() ([45]byte, [256]byte) {
	const b45Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

	var enc [45]byte
	var dec [256]byte

	for i := range dec {
		dec[i] = b45Invalid
	}

	for i := range b45Chars {
		i := byte(i)
		v := b45Chars[i]

		enc[i] = v
		dec[v] = i
	}

	return enc, dec
}()
