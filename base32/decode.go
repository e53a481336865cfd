package base32

import (
	"errors"
	"unsafe"
)

// ErrInvalidBase32Padding reports that the bits left over in the final
// partial group were not all zero. A conforming encoder only ever
// zero-fills the final symbol, so a non-zero residue means the input
// was corrupted or truncated mid-symbol.
var ErrInvalidBase32Padding = errors.New("base32: non-zero padding bits")

// decoding cannot assume canonical block sizes (invalid bytes are
// skipped, padding may be absent), so it scans with a sliding bit
// register instead of the unrolled fixed-group form of the encoder.
func appendDecode(dst, src []byte) ([]byte, error) {
	var group uint32
	var groupSize uint32

	for _, c := range src {
		// Padding terminates the value; anything after it is ignored.
		if c == b32Pad {
			break
		}

		v := decodeTab[c]
		if v == b32Invalid {
			continue
		}

		group = group<<5 | uint32(v)
		groupSize += 5

		if groupSize >= 8 {
			groupSize -= 8
			dst = append(dst, byte(group>>groupSize))
		}
	}

	if groupSize > 0 && group&(1<<groupSize-1) != 0 {
		return nil, ErrInvalidBase32Padding
	}

	return dst, nil
}

// Decode returns the octets encoded by src. Decoding stops at the
// first '=' character; bytes outside the alphabet are skipped and
// letter case is ignored. Trailing padding may be absent entirely.
// Decoding fails with ErrInvalidBase32Padding when the residual bits
// of the final partial group are not zero.
func Decode(src []byte) ([]byte, error) {
	n := len(src)
	if n == 0 {
		return nil, nil
	}

	return appendDecode(make([]byte, 0, n/8*5+4), src)
}

// DecodeString decodes the encoded text src. See Decode.
func DecodeString(src string) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}

	return Decode(unsafe.Slice(unsafe.StringData(src), len(src)))
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
