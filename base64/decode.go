package base64

import "unsafe"

func appendDecode(dst, src []byte) []byte {
	var group uint32
	var groupSize uint32

	for _, c := range src {
		// Padding terminates the value; anything after it is ignored.
		if c == b64Pad {
			break
		}

		v := decodeTab[c]
		if v == b64Invalid {
			continue
		}

		group = group<<6 | uint32(v)
		groupSize += 6

		if groupSize == 24 {
			dst = append(dst, byte(group>>16), byte(group>>8), byte(group))
			group = 0
			groupSize = 0
		}
	}

	// Partial final group: zero-fill to 24 bits and emit whole octets.
	if groupSize > 0 {
		group <<= 24 - groupSize
		dst = append(dst, byte(group>>16))
		if groupSize >= 16 {
			dst = append(dst, byte(group>>8))
		}
	}

	return dst
}

// Decode returns the octets encoded by src. Decoding stops at the
// first '=' character and bytes outside the alphabet are skipped, so
// missing padding, embedded whitespace, and line wrapping are all
// tolerated.
//
// Decoding never fails; the error is always nil and exists for parity
// with the other codecs in this module.
func Decode(src []byte) ([]byte, error) {
	n := len(src)
	if n == 0 {
		return nil, nil
	}

	return appendDecode(make([]byte, 0, n/4*3+2), src), nil
}

// DecodeString decodes the encoded text src. See Decode.
func DecodeString(src string) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}

	return Decode(unsafe.Slice(unsafe.StringData(src), len(src)))
}

// AppendDecode appends the octets encoded by src to dst. See Decode.
func AppendDecode(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst, nil
	}

	return appendDecode(dst, src), nil
}

// DecodeLenient is the legacy-compatible decode mode matching the
// empty-result signaling of Decode's error cases in the other codecs.
// For base64 no input is rejected, so it simply discards the nil
// error. New callers should prefer Decode.
func DecodeLenient(src []byte) []byte {
	dst, _ := Decode(src)
	return dst
}
