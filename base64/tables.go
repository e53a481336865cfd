// Package base64 implements the RFC 4648 base64 encoding of
// arbitrary octet sequences.
package base64

const (
	b64Invalid = 0xFF
	b64Pad     = '='
)

var encodeTab, decodeTab = func() ([64]byte, [256]byte) {
	const b64Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

	var enc [64]byte
	var dec [256]byte

	for i := range dec {
		dec[i] = b64Invalid
	}

	for i := range b64Chars {
		i := byte(i)
		v := b64Chars[i]

		enc[i] = v
		dec[v] = i
	}

	return enc, dec
}()
