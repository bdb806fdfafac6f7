package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalCache(t *testing.T) {
	c, err := NewLocalCache(2)
	require.NoError(t, err)

	c.Set("1", "a")
	c.Set("2", "b")
	c.Set("3", "c")
	_, found := c.Get("1")
	assert.False(t, found)

	v, found := c.Get("3")
	require.True(t, found)
	assert.Equal(t, "c", v)

	c.Remove("3")
	_, found = c.Get("3")
	assert.False(t, found)

	_, err = NewLocalCache(0)
	assert.Error(t, err)
}
