package cache_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/progress-api/internal/infrastructure/cache"
)

type stats struct {
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

func TestMemoryCache_SetGet(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryCache()

	require.NoError(t, c.Set(ctx, "dashboard-stats", stats{Total: 3, Percent: 50}, time.Minute))

	var got stats
	ok, err := c.Get(ctx, "dashboard-stats", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, stats{Total: 3, Percent: 50}, got)

	ok, err = c.Get(ctx, "otra-clave", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCache_Expira(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c := cache.NewMemoryCacheWithClock(func() time.Time { return now })

	require.NoError(t, c.Set(ctx, "use-cases-list", []int{1, 2}, 30*time.Second))

	now = now.Add(29 * time.Second)
	var got []int
	ok, _ := c.Get(ctx, "use-cases-list", &got)
	assert.True(t, ok, "antes del TTL sigue vigente")

	now = now.Add(time.Second)
	ok, _ = c.Get(ctx, "use-cases-list", &got)
	assert.False(t, ok, "al cumplirse el TTL expira")
}

func TestMemoryCache_DeleteByPrefix(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryCache()
	require.NoError(t, c.Set(ctx, "use-cases-list", 1, time.Minute))
	require.NoError(t, c.Set(ctx, "use-case-navigation", 2, time.Minute))
	require.NoError(t, c.Set(ctx, "dashboard-stats", 3, time.Minute))

	require.NoError(t, c.DeleteByPrefix(ctx, "use-case"))

	var v int
	ok, _ := c.Get(ctx, "use-cases-list", &v)
	assert.False(t, ok)
	ok, _ = c.Get(ctx, "use-case-navigation", &v)
	assert.False(t, ok)
	ok, _ = c.Get(ctx, "dashboard-stats", &v)
	assert.True(t, ok)

	require.NoError(t, c.DeleteByPrefix(ctx, ""))
	ok, _ = c.Get(ctx, "dashboard-stats", &v)
	assert.False(t, ok, "prefijo vacío borra todo")
}

func TestMemoryCache_TTLCeroNoGuarda(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryCache()
	require.NoError(t, c.Set(ctx, "k", 1, 0))

	var v int
	ok, _ := c.Get(ctx, "k", &v)
	assert.False(t, ok)
}

func TestMemoryCache_Concurrente(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryCache()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = c.Set(ctx, "k", i, time.Minute)
			var v int
			_, _ = c.Get(ctx, "k", &v)
			_ = c.DeleteByPrefix(ctx, "x")
		}(i)
	}
	wg.Wait()

	var v int
	ok, err := c.Get(ctx, "k", &v)
	require.NoError(t, err)
	assert.True(t, ok)
}
