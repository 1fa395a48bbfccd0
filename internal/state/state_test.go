package state

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	timeout = time.Second
	tick    = 5 * time.Millisecond
)

func TestSequence(t *testing.T) {
	var s Sequence

	first := s.Begin()
	assert.True(t, s.IsCurrent(first))

	second := s.Begin()
	assert.False(t, s.IsCurrent(first))
	assert.True(t, s.IsCurrent(second))
}

func TestSliceLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores Result", func(t *testing.T) {
		var s Slice[[]string]

		got, err := s.Load(ctx, func(context.Context) ([]string, error) {
			return []string{"a"}, nil
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, got)
		v, err := s.Get()
		assert.NoError(t, err)
		assert.Equal(t, []string{"a"}, v)
		assert.True(t, s.Loaded())
	})

	t.Run("Failure Resets To Zero", func(t *testing.T) {
		var s Slice[[]string]
		s.Set([]string{"old"})
		boom := errors.New("boom")

		_, err := s.Load(ctx, func(context.Context) ([]string, error) {
			return []string{"partial"}, boom
		})

		assert.ErrorIs(t, err, boom)
		v, err := s.Get()
		assert.Nil(t, v)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("Stale Response Is Discarded", func(t *testing.T) {
		var s Slice[int]
		release := make(chan struct{})
		done := make(chan error)

		go func() {
			_, err := s.Load(ctx, func(context.Context) (int, error) {
				<-release
				return 1, nil
			})
			done <- err
		}()

		// Wait until the slow load has taken its token.
		require.Eventually(t, func() bool { return s.seq.n.Load() == 1 }, timeout, tick)

		got, err := s.Load(ctx, func(context.Context) (int, error) { return 2, nil })
		require.NoError(t, err)
		assert.Equal(t, 2, got)

		close(release)
		assert.ErrorIs(t, <-done, ErrStale)

		v, _ := s.Get()
		assert.Equal(t, 2, v)
	})
}

func TestMemoryAccumulator(t *testing.T) {
	ctx := context.Background()
	acc := NewMemoryAccumulator()

	added, err := acc.Add(ctx, "u1", "7", "Downtown")
	require.NoError(t, err)
	assert.True(t, added)

	added, _ = acc.Add(ctx, "u1", "7", "Renamed")
	assert.False(t, added)

	_, _ = acc.Add(ctx, "u2", "8", "Uptown")

	got, err := acc.Entries(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"7": "Downtown"}, got)

	empty, err := acc.Entries(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
