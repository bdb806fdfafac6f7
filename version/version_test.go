package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	cases := []struct {
		in                  string
		major, minor, patch int32
		pre                 string
	}{
		{"0.1.0", 0, 1, 0, ""},
		{"v1.2.3", 1, 2, 3, ""},
		{"1.2.3-rc.1", 1, 2, 3, "rc.1"},
		{"1.2.3-beta+build.5", 1, 2, 3, "beta"},
		{"2.7", 2, 7, 0, ""},
	}
	for _, c := range cases {
		major, minor, patch, pre, err := ParseVersion(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.major, major, c.in)
		assert.Equal(t, c.minor, minor, c.in)
		assert.Equal(t, c.patch, patch, c.in)
		assert.Equal(t, c.pre, pre, c.in)
	}

	for _, in := range []string{"", "one.two", "1.2.3.4", "1.x"} {
		_, _, _, _, err := ParseVersion(in)
		assert.Error(t, err, in)
	}
}

func TestCompilerChannel(t *testing.T) {
	assert.Equal(t, ChannelStable, CompilerChannel("go1.21.5"))
	assert.Equal(t, ChannelBeta, CompilerChannel("go1.22rc1"))
	assert.Equal(t, ChannelBeta, CompilerChannel("go1.18beta2"))
	assert.Equal(t, ChannelDev, CompilerChannel("devel go1.23-2a4b6c8 Mon Jan 1 00:00:00 2024 +0000"))
}

func TestCompiler(t *testing.T) {
	v, host, channel, err := Compiler()
	require.NoError(t, err)
	assert.NotEmpty(t, v)
	assert.Contains(t, host, "/")
	assert.Contains(t, []string{ChannelStable, ChannelBeta, ChannelDev}, channel)
}
