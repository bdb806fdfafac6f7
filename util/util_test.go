package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalToUint64(t *testing.T) {
	cases := []struct {
		in   string
		want uint64
		ok   bool
	}{
		{"0", 0, true},
		{"42", 42, true},
		{"0042", 42, true},
		{"+7", 7, true},
		{"100.000", 100, true},
		{"12.9", 12, true},
		{"18446744073709551615", math.MaxUint64, true},
		{"18446744073709551616", 0, false},
		{"340282366920938463463374607431768211456", 0, false},
		{"100000000000000000000000000000000000000000000000000000000000000000000000000000000", 0, false},
		{"-1", 0, false},
		{"", 0, false},
		{"1e3", 0, false},
		{"abc", 0, false},
		{".5", 0, false},
	}
	for _, c := range cases {
		got, ok := DecimalToUint64(c.in)
		require.Equal(t, c.ok, ok, "input %q", c.in)
		if c.ok {
			assert.Equal(t, c.want, got, "input %q", c.in)
		}
	}
}

func TestSplitByComma(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitByComma(" a, ,b "))
}
