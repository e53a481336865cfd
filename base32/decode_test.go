package base32

import (
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

type dCall uint8

const (
	decCall dCall = iota + 1
	decStrCall
	appendDecCall
	decLenientCall
)

type decoderTestCase struct {
	// when describes the action being taken in a BDD style
	when string
	// then describes the desired outcome from the action taken in a BDD style
	then string
	// the function operation to call
	call dCall
	// src is the source data to decode
	src string
	// dst is where decoded data will be placed
	dst []byte

	// expectations

	expStr string
	expErr error
}

func (tc decoderTestCase) clone() decoderTestCase {
	ctc := tc

	ctc.dst = slices.Clone(tc.dst)

	return ctc
}

func (tc decoderTestCase) runTI(t *testing.T, tci int) {
	t.Helper()

	f := func(tc decoderTestCase, extraCfg string) func(*testing.T) {
		tc = tc.clone()

		f := func(t *testing.T) {
			t.Helper()

			t.Run("when "+tc.when, func(t *testing.T) {
				t.Helper()

				then := tc.then
				if then == "" {
					if tc.expErr != nil {
						then = "an error should occur"
					} else {
						then = "no error should occur"
					}
				}
				t.Run("then "+then, func(t *testing.T) {
					t.Helper()

					tc.run(t)
				})
			})
		}

		prefix := strconv.Itoa(tci)
		if extraCfg != "" {
			prefix += "/" + extraCfg
		}

		nf := f
		return func(t *testing.T) {
			t.Helper()

			t.Run(prefix, nf)
		}
	}

	tc.runVariants(t, f)
}

func (tc decoderTestCase) runVariants(t *testing.T, f func(decoderTestCase, string) func(*testing.T)) {
	t.Helper()

	f(tc, "")(t)

	if tc.call != decCall {
		return
	}

	{
		tc := tc.clone()

		tc.call = decStrCall
		f(tc, "decCall2decStrCall")(t)
	}

	{
		tc := tc.clone()

		tc.call = decLenientCall
		f(tc, "decCall2decLenientCall")(t)
	}

	if tc.expErr == nil {
		{
			tc := tc.clone()

			dst := []byte(`test_`)
			tc.expStr = string(dst) + tc.expStr
			tc.dst = dst
			tc.call = appendDecCall
			f(tc, "decCall2appendDecCall")(t)
		}

		{
			tc := tc.clone()

			tc.call = appendDecCall
			f(tc, "decCall2appendDecCall-nil-dst")(t)
		}
	}
}

func (tc decoderTestCase) run(t *testing.T) {
	t.Helper()

	is := assert.New(t)

	var src []byte
	if len(tc.src) > 0 {
		src = []byte(tc.src)
	}

	switch tc.call {
	case decCall:
		is.Nil(tc.dst)

		resp, errResp := Decode(src)

		tc.check(t, resp, errResp)
	case decStrCall:
		resp, errResp := DecodeString(tc.src)

		tc.check(t, resp, errResp)
	case appendDecCall:
		resp, errResp := AppendDecode(tc.dst, src)

		tc.check(t, resp, errResp)
	case decLenientCall:
		resp := DecodeLenient(src)

		if tc.expErr != nil {
			is.Nil(resp)
			return
		}

		is.Equal(tc.expStr, string(resp))
	default:
		panic("misconfigured test case")
	}
}

func (tc decoderTestCase) check(t *testing.T, resp []byte, errResp error) {
	t.Helper()

	is := assert.New(t)

	if tc.expErr != nil {
		is.ErrorIs(errResp, tc.expErr)
		is.Nil(resp)
		return
	}

	is.NoError(errResp)
	is.Equal(tc.expStr, string(resp))
}

func TestDecode(t *testing.T) {
	t.Parallel()

	tcs := []decoderTestCase{
		{
			when: "0 bytes",
			call: decCall,
		},
		{
			when:   "1 byte with padding",
			call:   decCall,
			src:    "MY======",
			expStr: "f",
		},
		{
			when:   "2 bytes with padding",
			call:   decCall,
			src:    "MZXQ====",
			expStr: "fo",
		},
		{
			when:   "3 bytes with padding",
			call:   decCall,
			src:    "MZXW6===",
			expStr: "foo",
		},
		{
			when:   "4 bytes with padding",
			call:   decCall,
			src:    "MZXW6YQ=",
			expStr: "foob",
		},
		{
			when:   "full quantum",
			call:   decCall,
			src:    "MZXW6YTB",
			expStr: "fooba",
		},
		{
			when:   "6 bytes with padding",
			call:   decCall,
			src:    "MZXW6YTBOI======",
			expStr: "foobar",
		},
		{
			when:   "lowercase input",
			call:   decCall,
			src:    "mzxw6ytboi======",
			expStr: "foobar",
		},
		{
			when:   "padding entirely absent",
			call:   decCall,
			src:    "MZXW6YTBOI",
			expStr: "foobar",
		},
		{
			when:   "short input with padding absent",
			call:   decCall,
			src:    "MY",
			expStr: "f",
		},
		{
			when:   "interior whitespace and line wrapping",
			call:   decCall,
			src:    "MZXW\n6YTB OI==\t====",
			expStr: "foobar",
		},
		{
			when:   "data after the first padding character",
			call:   decCall,
			then:   "everything after the padding should be ignored",
			src:    "MY==MZXQ",
			expStr: "f",
		},
		{
			when:   "long multi-line lowercase input",
			call:   decCall,
			src:    "krugkidrovuwg2zamjzg653oebtg66banj2w24dteb\nxxmzlseb2gqzjanrqxu6jamrxwo===",
			expStr: "The quick brown fox jumps over the lazy dog",
		},
		{
			when:   "non-zero residual padding bits",
			call:   decCall,
			src:    "MZ",
			expErr: ErrInvalidBase32Padding,
		},
		{
			when:   "truncated final symbol with non-zero bits",
			call:   decCall,
			src:    "MZXW6YTBO7",
			expErr: ErrInvalidBase32Padding,
		},
	}

	for i, tc := range tcs {
		tc.runTI(t, i)
	}
}
