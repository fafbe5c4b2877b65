package pool

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTask_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tk := newTask(func() error { return nil })
		assert.NotEmpty(t, tk.ID())
		assert.False(t, seen[tk.ID()], "duplicate task id %s", tk.ID())
		seen[tk.ID()] = true
	}
}

func TestTask_InvokeReportsOutcome(t *testing.T) {
	ok := newTask(func() error { return nil })
	assert.NoError(t, ok.invoke())

	boom := errors.New("bad task")
	failing := newTask(func() error { return boom })
	assert.ErrorIs(t, failing.invoke(), boom)
}
