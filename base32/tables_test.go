package base32

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTables(t *testing.T) {
	t.Parallel()

	const b32Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

	is := assert.New(t)

	for i := range 256 {
		c := byte(i)

		uc := c
		if uc >= 'a' && uc <= 'z' {
			uc -= ('a' - 'A')
		}

		v := strings.IndexByte(b32Chars, uc)
		if v == -1 {
			is.Equal(byte(b32Invalid), decodeTab[c])
			continue
		}

		is.Equal(byte(v), decodeTab[c])
		is.Equal(uc, encodeTab[v])
	}

	// padding is not a symbol
	is.Equal(byte(b32Invalid), decodeTab[b32Pad])
}
