// Package base16 implements the RFC 4648 hexadecimal encoding of
// arbitrary octet sequences.
//
// Encoding always uses the uppercase alphabet and maps every input
// octet to exactly two characters. Decoding is case insensitive and
// silently skips any byte outside the alphabet, so encoded text may
// be decorated with whitespace or punctuation. An odd count of
// surviving hex digits is an error.
package base16

import (
	"errors"
	"slices"
)

const b16Invalid = 0xFF

// ErrInvalidBase16Length reports a dangling hex digit: after skipping
// non-alphabet bytes, the input held an odd number of digits.
var ErrInvalidBase16Length = errors.New("base16: non-integral number of hex digits")

var encodeTab, decodeTab = func() ([16]byte, [256]byte) {
	const b16Chars = "0123456789ABCDEF"

	var enc [16]byte
	var dec [256]byte

	for i := range dec {
		dec[i] = b16Invalid
	}

	for i := range b16Chars {
		i := byte(i)
		v := b16Chars[i]

		enc[i] = v
		dec[v] = i
		if v > '9' {
			dec[v+('a'-'A')] = i
		}
	}

	return enc, dec
}()

// EncodedLength returns the number of bytes required to encode n
// bytes. It returns -1 if n is negative or the result would overflow.
func EncodedLength(n int) int {
	if n < 0 || n != 0 && 2*n <= n {
		return -1
	}

	return 2 * n
}

func appendEncode(dst, src []byte) []byte {
	for _, b := range src {
		dst = append(dst, encodeTab[b>>4], encodeTab[b&0x0F])
	}

	return dst
}

// Encode returns nil if src is empty, otherwise it returns the
// encoded form of src.
func Encode(src []byte) []byte {
	n := len(src)
	if n == 0 {
		return nil
	}

	return appendEncode(make([]byte, 0, 2*n), src)
}

// EncodeString returns "" if src is empty, otherwise it returns the
// encoded form of the raw bytes of src.
func EncodeString(src string) string {
	n := len(src)
	if n == 0 {
		return ""
	}

	dst := make([]byte, 0, 2*n)
	for i := range n {
		b := src[i]
		dst = append(dst, encodeTab[b>>4], encodeTab[b&0x0F])
	}

	return string(dst)
}

// AppendEncode returns the encoded form of src appended to dst
// if src is not empty. If src is empty dst is returned as-is.
func AppendEncode(dst, src []byte) []byte {
	n := len(src)
	if n == 0 {
		return dst
	}

	return appendEncode(slices.Grow(dst, 2*n), src)
}

func appendDecode(dst, src []byte) ([]byte, error) {
	var group byte
	var half bool

	for _, c := range src {
		v := decodeTab[c]
		if v == b16Invalid {
			continue
		}

		if !half {
			group = v << 4
			half = true
			continue
		}

		dst = append(dst, group|v)
		half = false
	}

	if half {
		return nil, ErrInvalidBase16Length
	}

	return dst, nil
}

// Decode returns the octets encoded by src. Bytes outside the
// alphabet are skipped; both hex digit cases are accepted. Decoding
// fails with ErrInvalidBase16Length when a dangling digit remains.
func Decode(src []byte) ([]byte, error) {
	n := len(src)
	if n == 0 {
		return nil, nil
	}

	return appendDecode(make([]byte, 0, n/2), src)
}

// DecodeString decodes the encoded text src. See Decode.
func DecodeString(src string) ([]byte, error) {
	return Decode([]byte(src))
}

// AppendDecode appends the octets encoded by src to dst. On a
// malformed input it returns nil and the error.
func AppendDecode(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst, nil
	}

	return appendDecode(dst, src)
}

// DecodeLenient is the legacy-compatible decode mode: it returns nil
// for malformed input instead of an error, making failure
// indistinguishable from decoding an empty input. New callers should
// prefer Decode.
func DecodeLenient(src []byte) []byte {
	dst, err := Decode(src)
	if err != nil {
		return nil
	}

	return dst
}
