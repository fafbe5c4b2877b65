package pool

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jzx17/taskpool/internal/testutils"
	"github.com/jzx17/taskpool/pkg/types"
)

func TestFuture_GetBlocksUntilResolved(t *testing.T) {
	fut := newFuture[int]()

	release := make(chan struct{})
	go func() {
		<-release
		fut.resolve(42)
	}()

	assert.False(t, fut.Resolved())

	got := testutils.RunAsync(func() {
		v, err := fut.Get()
		assert.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	select {
	case <-got:
		t.Fatal("Get returned before the future resolved")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	testutils.WaitClosed(t, got, 2*time.Second)
	assert.True(t, fut.Resolved())
}

func TestFuture_GetRepeatable(t *testing.T) {
	fut := newFuture[string]()
	fut.resolve("hello")

	for i := 0; i < 3; i++ {
		v, err := fut.Get()
		assert.NoError(t, err)
		assert.Equal(t, "hello", v)
	}
}

func TestFuture_RejectDeliversFailure(t *testing.T) {
	fut := newFuture[int]()
	boom := errors.New("boom")
	fut.reject(boom)

	v, err := fut.Get()
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, v)
}

func TestFuture_ResolvesExactlyOnce(t *testing.T) {
	fut := newFuture[int]()
	fut.resolve(1)
	fut.resolve(2)
	fut.reject(errors.New("late failure"))

	v, err := fut.Get()
	assert.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestFuture_TryGet(t *testing.T) {
	fut := newFuture[int]()

	v, err := fut.TryGet()
	assert.ErrorIs(t, err, types.ErrNotResolved)
	assert.Zero(t, v)

	fut.resolve(9)

	v, err = fut.TryGet()
	assert.NoError(t, err)
	assert.Equal(t, 9, v)
}

func TestFuture_GetContext(t *testing.T) {
	t.Run("cancelled wait", func(t *testing.T) {
		fut := newFuture[int]()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fut.GetContext(ctx)
		assert.ErrorIs(t, err, context.Canceled)

		// abandoning the wait does not consume the result
		fut.resolve(5)
		v, err := fut.Get()
		assert.NoError(t, err)
		assert.Equal(t, 5, v)
	})

	t.Run("resolved before deadline", func(t *testing.T) {
		fut := newFuture[int]()
		fut.resolve(11)

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		v, err := fut.GetContext(ctx)
		require.NoError(t, err)
		assert.Equal(t, 11, v)
	})
}

func TestFuture_Done(t *testing.T) {
	fut := newFuture[int]()

	select {
	case <-fut.Done():
		t.Fatal("done channel closed before resolution")
	default:
	}

	fut.resolve(1)
	testutils.WaitClosed(t, fut.Done(), time.Second)
}
