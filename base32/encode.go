package base32

import (
	"slices"
	"unsafe"
)

// EncodedLength returns the number of bytes required to encode n
// bytes, including padding. It returns -1 if n is negative or the
// result would overflow.
//
// If the input is zero, zero will be returned.
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
	return (n + 4) / 5 * 8
}

func encodedLen(n int) int {
	result := encodedLenExpression(n)
	if result <= n {
		panic("base32: invalid encode source length")
	}

	return result
}

func encode(dstPtr, srcPtr unsafe.Pointer, n int) {

	for range n / 5 {
		b0 := *(*byte)(srcPtr)
		b1 := *(*byte)(unsafe.Add(srcPtr, 1))
		b2 := *(*byte)(unsafe.Add(srcPtr, 2))
		b3 := *(*byte)(unsafe.Add(srcPtr, 3))
		b4 := *(*byte)(unsafe.Add(srcPtr, 4))

		*(*byte)(dstPtr) = encodeTab[b0>>3]
		*(*byte)(unsafe.Add(dstPtr, 1)) = encodeTab[((b0<<2)|(b1>>6))&31]
		*(*byte)(unsafe.Add(dstPtr, 2)) = encodeTab[(b1>>1)&31]
		*(*byte)(unsafe.Add(dstPtr, 3)) = encodeTab[((b1<<4)|(b2>>4))&31]
		*(*byte)(unsafe.Add(dstPtr, 4)) = encodeTab[((b2<<1)|(b3>>7))&31]
		*(*byte)(unsafe.Add(dstPtr, 5)) = encodeTab[(b3>>2)&31]
		*(*byte)(unsafe.Add(dstPtr, 6)) = encodeTab[((b3<<3)|(b4>>5))&31]
		*(*byte)(unsafe.Add(dstPtr, 7)) = encodeTab[b4&31]

		srcPtr = unsafe.Add(srcPtr, 5)
		dstPtr = unsafe.Add(dstPtr, 8)
	}

	// Tail, padded to a full 8 character quantum.
	var written int
	switch n % 5 {
	case 0:
		return
	case 1:
		b0 := *(*byte)(srcPtr)

		*(*byte)(dstPtr) = encodeTab[b0>>3]
		*(*byte)(unsafe.Add(dstPtr, 1)) = encodeTab[(b0<<2)&31]
		written = 2
	case 2:
		b0 := *(*byte)(srcPtr)
		b1 := *(*byte)(unsafe.Add(srcPtr, 1))

		*(*byte)(dstPtr) = encodeTab[b0>>3]
		*(*byte)(unsafe.Add(dstPtr, 1)) = encodeTab[((b0<<2)|(b1>>6))&31]
		*(*byte)(unsafe.Add(dstPtr, 2)) = encodeTab[(b1>>1)&31]
		*(*byte)(unsafe.Add(dstPtr, 3)) = encodeTab[(b1<<4)&31]
		written = 4
	case 3:
		b0 := *(*byte)(srcPtr)
		b1 := *(*byte)(unsafe.Add(srcPtr, 1))
		b2 := *(*byte)(unsafe.Add(srcPtr, 2))

		*(*byte)(dstPtr) = encodeTab[b0>>3]
		*(*byte)(unsafe.Add(dstPtr, 1)) = encodeTab[((b0<<2)|(b1>>6))&31]
		*(*byte)(unsafe.Add(dstPtr, 2)) = encodeTab[(b1>>1)&31]
		*(*byte)(unsafe.Add(dstPtr, 3)) = encodeTab[((b1<<4)|(b2>>4))&31]
		*(*byte)(unsafe.Add(dstPtr, 4)) = encodeTab[(b2<<1)&31]
		written = 5
	case 4:
		b0 := *(*byte)(srcPtr)
		b1 := *(*byte)(unsafe.Add(srcPtr, 1))
		b2 := *(*byte)(unsafe.Add(srcPtr, 2))
		b3 := *(*byte)(unsafe.Add(srcPtr, 3))

		*(*byte)(dstPtr) = encodeTab[b0>>3]
		*(*byte)(unsafe.Add(dstPtr, 1)) = encodeTab[((b0<<2)|(b1>>6))&31]
		*(*byte)(unsafe.Add(dstPtr, 2)) = encodeTab[(b1>>1)&31]
		*(*byte)(unsafe.Add(dstPtr, 3)) = encodeTab[((b1<<4)|(b2>>4))&31]
		*(*byte)(unsafe.Add(dstPtr, 4)) = encodeTab[((b2<<1)|(b3>>7))&31]
		*(*byte)(unsafe.Add(dstPtr, 5)) = encodeTab[(b3>>2)&31]
		*(*byte)(unsafe.Add(dstPtr, 6)) = encodeTab[(b3<<3)&31]
		written = 7
	}

	for i := written; i < 8; i++ {
		*(*byte)(unsafe.Add(dstPtr, i)) = b32Pad
	}
}

// Encode returns nil if src is empty, otherwise it returns the
// encoded form of src padded to a multiple of 8 characters.
func Encode(src []byte) []byte {
	n := len(src)
	if n == 0 {
		return nil
	}

	n = encodedLen(n)
	dst := make([]byte, n)

	encode(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), len(src))

	return dst
}

// EncodeString returns "" if src is empty, otherwise it returns the
// encoded form of the raw bytes of src.
func EncodeString(src string) string {
	n := len(src)
	if n == 0 {
		return ""
	}

	n = encodedLen(n)
	dst := make([]byte, n)

	encode(unsafe.Pointer(&dst[0]), unsafe.Pointer(unsafe.StringData(src)), len(src))

	return string(dst)
}

// AppendEncode returns the encoded form of src appended to dst
// if src is not empty. If src is empty dst is returned as-is.
func AppendEncode(dst, src []byte) []byte {
	n := len(src)
	if n == 0 {
		return dst
	}

	n = encodedLen(n)
	orig := len(dst)

	dst = slices.Grow(dst, n)
	dst = dst[:orig+n]

	encode(unsafe.Pointer(&dst[orig]), unsafe.Pointer(&src[0]), len(src))

	return dst
}
