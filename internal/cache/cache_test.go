package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGet(t *testing.T) {
	c := New(time.Minute)

	c.Set("k", "v")
	value, found := c.GetValue("k")
	require.True(t, found)
	assert.Equal(t, "v", value)
}

func TestExpiration(t *testing.T) {
	c := New(time.Minute)

	c.Set("k", "v", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	_, found := c.GetValue("k")
	assert.False(t, found)
}

func TestDeleteByPrefix(t *testing.T) {
	c := New(time.Minute)

	c.Set("products:list:a", 1)
	c.Set("products:list:b", 2)
	c.Set("product:1", 3)

	c.DeleteByPrefix("products:list:")

	_, found := c.GetValue("products:list:a")
	assert.False(t, found)
	_, found = c.GetValue("product:1")
	assert.True(t, found)
	assert.Equal(t, 1, c.Size())
}
