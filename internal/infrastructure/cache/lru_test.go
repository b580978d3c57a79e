package cache_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/keymapper-dev/keymapper/internal/domain/entity"
	"github.com/keymapper-dev/keymapper/internal/infrastructure/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	c := cache.NewLRU[string, int](2)
	c.Set("a", 1)
	c.Set("b", 2)

	_, ok := c.Get("a")
	require.True(t, ok)
	c.Set("c", 3)

	_, ok = c.Get("b")
	assert.False(t, ok, "b was least recently used")
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, uint64(1), c.Stats().Evictions)
}

func TestLRU_SetExistingRefreshes(t *testing.T) {
	c := cache.NewLRU[string, int](2)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("a", 10)
	c.Set("c", 3)

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 10, v)
	_, ok = c.Get("b")
	assert.False(t, ok)
}

func TestLRU_RemoveAndClear(t *testing.T) {
	c := cache.NewLRU[string, int](4)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Remove("a")
	c.Remove("missing")
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Zero(t, c.Len())
	_, ok := c.Get("b")
	assert.False(t, ok)
}

func TestLRU_MinimumCapacity(t *testing.T) {
	c := cache.NewLRU[string, int](0)
	c.Set("a", 1)
	c.Set("b", 2)

	assert.Equal(t, 1, c.Len())
}

func TestLRU_Stats(t *testing.T) {
	c := cache.NewLRU[string, map[string]*entity.ActionError](4)
	c.Set("home", map[string]*entity.ActionError{})

	c.Get("home")
	c.Get("home")
	c.Get("flashlight")

	assert.Equal(t, cache.Stats{Hits: 2, Misses: 1}, c.Stats())
}

func TestLRU_Concurrent(t *testing.T) {
	c := cache.NewLRU[string, int](32)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				key := fmt.Sprintf("k%d", (i*100+j)%64)
				c.Set(key, j)
				c.Get(key)
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 32)
}
