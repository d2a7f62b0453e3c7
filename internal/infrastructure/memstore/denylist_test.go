package memstore

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDenylistAddContains(t *testing.T) {
	d := NewDenylist()
	ctx := context.Background()

	found, err := d.Contains(ctx, "unknown")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, d.Add(ctx, "tok-1", time.Minute))
	found, err = d.Contains(ctx, "tok-1")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestDenylistExpiry(t *testing.T) {
	d := NewDenylist()
	ctx := context.Background()

	require.NoError(t, d.Add(ctx, "tok-1", 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	found, err := d.Contains(ctx, "tok-1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDenylistConcurrentAccess(t *testing.T) {
	d := NewDenylist()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			token := fmt.Sprintf("tok-%d", i)
			_ = d.Add(ctx, token, time.Minute)
			_, _ = d.Contains(ctx, token)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 32; i++ {
		found, err := d.Contains(ctx, fmt.Sprintf("tok-%d", i))
		require.NoError(t, err)
		assert.True(t, found)
	}
}
