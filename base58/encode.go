package base58

import "slices"

func appendEncode(dst, src []byte) []byte {
	zeros := 0
	for zeros < len(src) && src[zeros] == 0 {
		zeros++
	}
	src = src[zeros:]

	// Base-58 digits of the result, least significant first. The
	// capacity follows the log(256)/log(58) growth factor, which
	// bounds the final digit count.
	digits := make([]byte, 0, len(src)*137/100+1)

	for _, b := range src {
		carry := uint32(b)

		for i := range digits {
			carry += uint32(digits[i]) << 8
			digits[i] = byte(carry % 58)
			carry /= 58
		}

		for carry > 0 {
			digits = append(digits, byte(carry%58))
			carry /= 58
		}
	}

	orig := len(dst)
	dst = slices.Grow(dst, zeros+len(digits))

	// A zero octet has no base-58 positional value; '1' stands in for
	// each one, most significant position first.
	for range zeros {
		dst = append(dst, '1')
	}

	dst = dst[:orig+zeros+len(digits)]
	for i, d := range digits {
		dst[len(dst)-1-i] = encodeTab[d]
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

	return appendEncode(make([]byte, 0, n*137/100+1), src)
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
	if len(src) == 0 {
		return dst
	}

	return appendEncode(dst, src)
}
