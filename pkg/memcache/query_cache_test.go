package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQueryCachePutGet(t *testing.T) {
	c := NewQueryCache()

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Put("k", "v", time.Minute)
	v, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestQueryCacheExpiry(t *testing.T) {
	c := NewQueryCache()
	c.Put("k", "v", -time.Second)

	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestQueryCacheRequestCounter(t *testing.T) {
	c := NewQueryCache()
	assert.Equal(t, int64(0), c.Requests())
	assert.Equal(t, int64(1), c.CountRequest())
	assert.Equal(t, int64(2), c.CountRequest())
	assert.Equal(t, int64(2), c.Requests())
}
