package base58

import "errors"

// ErrInvalidBase58Char reports a byte that is neither whitespace nor
// part of the alphabet. Unlike the RFC 4648 codecs, base58 does not
// skip arbitrary decoration; only whitespace is tolerated.
var ErrInvalidBase58Char = errors.New("base58: invalid base58 character")

func appendDecode(dst, src []byte) ([]byte, error) {
	// Leading zero octets are encoded as '1' characters. Count them
	// first; whitespace mixed into the run does not break it.
	zeros := 0
	i := 0
scan:
	for ; i < len(src); i++ {
		switch {
		case src[i] == '1':
			zeros++
		case isSpace(src[i]):
		default:
			break scan
		}
	}

	// Base-256 digits of the result, least significant first.
	digits := make([]byte, 0, len(src)-i)

	for ; i < len(src); i++ {
		c := src[i]
		if isSpace(c) {
			continue
		}

		v := decodeTab[c]
		if v == b58Invalid {
			return nil, ErrInvalidBase58Char
		}

		carry := uint32(v)

		for j := range digits {
			carry += uint32(digits[j]) * 58
			digits[j] = byte(carry)
			carry >>= 8
		}

		for carry > 0 {
			digits = append(digits, byte(carry))
			carry >>= 8
		}
	}

	// Reverse into big-endian order; the zeros region ahead of the
	// digits stays 0x00, restoring the leading zero octets.
	dst = append(dst, make([]byte, zeros+len(digits))...)
	for j, d := range digits {
		dst[len(dst)-1-j] = d
	}

	return dst, nil
}

// Decode returns the octets encoded by src. Whitespace anywhere in
// the input is skipped, including within the leading '1' run; any
// other byte outside the alphabet fails with ErrInvalidBase58Char.
//
// Decoding costs O(input length x output length); see the package
// documentation.
func Decode(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}

	return appendDecode(nil, src)
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
