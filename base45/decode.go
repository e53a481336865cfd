package base45

import "errors"

// ErrInvalidBase45Length reports a final group of exactly one symbol.
// A well formed value ends on a full 3-symbol group or a 2-symbol
// group for a trailing octet; one dangling symbol cannot represent
// any octet sequence.
var ErrInvalidBase45Length = errors.New("base45: dangling character in final group")

func appendDecode(dst, src []byte) ([]byte, error) {
	var group [3]byte
	var groupSize int

	for _, c := range src {
		v := decodeTab[c]
		if v == b45Invalid {
			continue
		}

		group[groupSize] = v
		groupSize++

		if groupSize == 3 {
			v := uint32(group[0]) + uint32(group[1])*45 + uint32(group[2])*2025

			dst = append(dst, byte(v>>8), byte(v))
			groupSize = 0
		}
	}

	switch groupSize {
	case 0:
	case 2:
		dst = append(dst, byte(uint32(group[0])+uint32(group[1])*45))
	default:
		return nil, ErrInvalidBase45Length
	}

	return dst, nil
}

// Decode returns the octets encoded by src. Bytes outside the
// alphabet, including lowercase letters, are skipped; the alphabet is
// case sensitive per RFC 9285. Decoding fails with
// ErrInvalidBase45Length when a single symbol remains in the final
// group.
func Decode(src []byte) ([]byte, error) {
	n := len(src)
	if n == 0 {
		return nil, nil
	}

	return appendDecode(make([]byte, 0, n/3*2+1), src)
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
