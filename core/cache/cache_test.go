package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetOrLoad(t *testing.T) {
	t.Run("Caches Within TTL", func(t *testing.T) {
		s := New(time.Minute)
		var calls int

		load := func() (any, error) {
			calls++
			return int64(42), nil
		}

		v, err := s.GetOrLoad("k", load)
		require.NoError(t, err)
		assert.Equal(t, int64(42), v)

		v, err = s.GetOrLoad("k", load)
		require.NoError(t, err)
		assert.Equal(t, int64(42), v)
		assert.Equal(t, 1, calls)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("Zero TTL Disables Caching", func(t *testing.T) {
		s := New(0)
		var calls int
		load := func() (any, error) {
			calls++
			return calls, nil
		}

		_, _ = s.GetOrLoad("k", load)
		v, err := s.GetOrLoad("k", load)
		require.NoError(t, err)
		assert.Equal(t, 2, v)
		assert.Equal(t, 0, s.Len())
	})

	t.Run("Errors Are Not Cached", func(t *testing.T) {
		s := New(time.Minute)
		boom := errors.New("db down")

		_, err := s.GetOrLoad("k", func() (any, error) { return nil, boom })
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 0, s.Len())

		v, err := s.GetOrLoad("k", func() (any, error) { return "ok", nil })
		require.NoError(t, err)
		assert.Equal(t, "ok", v)
	})

	t.Run("Invalidate Forces Reload", func(t *testing.T) {
		s := New(time.Minute)
		var calls int
		load := func() (any, error) {
			calls++
			return calls, nil
		}

		_, _ = s.GetOrLoad("k", load)
		s.Invalidate("k")
		v, err := s.GetOrLoad("k", load)
		require.NoError(t, err)
		assert.Equal(t, 2, v)
	})
}

func TestStore_Singleflight(t *testing.T) {
	s := New(time.Minute)
	var calls int32
	release := make(chan struct{})

	load := func() (any, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return "value", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := s.GetOrLoad("shared", load)
			assert.NoError(t, err)
			assert.Equal(t, "value", v)
		}()
	}

	// Give the goroutines time to pile up on the in-flight load.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestEntry_IsExpired(t *testing.T) {
	assert.True(t, (&Entry{TTL: 0, Built: time.Now()}).IsExpired())
	assert.False(t, (&Entry{TTL: time.Hour, Built: time.Now()}).IsExpired())
	assert.True(t, (&Entry{TTL: time.Millisecond, Built: time.Now().Add(-time.Second)}).IsExpired())
}
