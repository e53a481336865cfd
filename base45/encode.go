package base45

import "slices"

// EncodedLength returns the number of bytes required to encode n
// bytes: 3 characters per full octet pair plus 2 for a trailing
// octet. It returns -1 if n is negative or the result would overflow.
func EncodedLength(n int) int {
	if n < 0 {
		return -1
	}
	if n == 0 {
		return 0
	}

	result := encodedLenExpression(n)
	if result <= n {
		return -1
	}

	return result
}

func encodedLenExpression(n int) int {
	return n/2*3 + n%2*2
}

func appendEncode(dst, src []byte) []byte {
	for ; len(src) >= 2; src = src[2:] {
		v := uint32(src[0])<<8 | uint32(src[1])

		dst = append(dst, encodeTab[v%45], encodeTab[v/45%45], encodeTab[v/2025])
	}

	if len(src) > 0 {
		v := uint32(src[0])

		dst = append(dst, encodeTab[v%45], encodeTab[v/45])
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

	return appendEncode(make([]byte, 0, encodedLenExpression(n)), src)
}

// EncodeString returns "" if src is empty, otherwise it returns the
// encoded form of the raw bytes of src.
func EncodeString(src string) string {
	if len(src) == 0 {
		return ""
	}

	return string(Encode([]byte(src)))
}

// AppendEncode returns the encoded form of src appended to dst
// if src is not empty. If src is empty dst is returned as-is.
func AppendEncode(dst, src []byte) []byte {
	n := len(src)
	if n == 0 {
		return dst
	}

	return appendEncode(slices.Grow(dst, encodedLenExpression(n)), src)
}
