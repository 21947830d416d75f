package visualizer

import (
	"io"
	"sync"
	"testing"

	"gradeboard/internal/logger"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTestAnimator() *Animator {
	log := logger.NewZerolog(io.Discard, zerolog.Disabled)
	return NewAnimator(NewBoard(620, 360), log)
}

func TestAnimatorSingleSlot(t *testing.T) {
	animator := newTestAnimator()

	assert.False(t, animator.Running())
	assert.True(t, animator.TryAcquire())
	assert.True(t, animator.Running())

	// A second start must be rejected while the slot is held.
	assert.False(t, animator.TryAcquire())

	animator.Release()
	assert.False(t, animator.Running())
	assert.True(t, animator.TryAcquire())
}

func TestAnimatorSlotUnderContention(t *testing.T) {
	animator := newTestAnimator()

	var wg sync.WaitGroup
	winners := make(chan struct{}, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if animator.TryAcquire() {
				winners <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(winners)

	count := 0
	for range winners {
		count++
	}
	assert.Equal(t, 1, count)
}

func TestPlayStateColors(t *testing.T) {
	state := newPlayState()
	assert.Equal(t, ColorBase, state.colorFor(0))

	state.key = 2
	assert.Equal(t, ColorKey, state.colorFor(2))
	assert.Equal(t, ColorBase, state.colorFor(3))

	// After a swap the travelling key shows pass-green.
	state.keyColor = ColorPass
	assert.Equal(t, ColorPass, state.colorFor(2))

	state.prefix = 1
	assert.Equal(t, ColorPass, state.colorFor(0))
	assert.Equal(t, ColorPass, state.colorFor(1))

	state.done = true
	for i := 0; i < 4; i++ {
		assert.Equal(t, ColorDone, state.colorFor(i))
	}
}

func TestPlayStateSnapshotsAreIndependent(t *testing.T) {
	state := newPlayState()
	state.key = 2

	// A by-value snapshot keeps its colors when the original moves on.
	snapshot := state
	state.key = 5
	state.prefix = 3

	assert.Equal(t, ColorKey, snapshot.colorFor(2))
	assert.Equal(t, ColorBase, snapshot.colorFor(5))
	assert.Equal(t, ColorBase, snapshot.colorFor(3))
}
