package visualizer

import (
	"image/color"
	"sync"
	"time"

	"gradeboard/internal/logger"
	"gradeboard/internal/models"
	"gradeboard/internal/sorting"

	"fyne.io/fyne/v2"
)

const (
	liftHeight  float32 = 30
	swapFrames          = 8
	defaultRate float64 = 40
)

// Animator plays a sort trace over the board in a single worker
// goroutine. Every canvas mutation goes through fyne.Do with
// by-value state snapshots, so the queued closures never observe a
// half-updated run. The speed source is sampled live so slider
// changes take effect mid-run.
type Animator struct {
	board  *Board
	logger logger.Logger
	token  *models.CancellationToken

	mu      sync.Mutex
	running bool

	speed      func() float64
	onReorder  func([]models.Student)
	onFinished func(algorithm string, cancelled bool)
}

func NewAnimator(board *Board, log logger.Logger) *Animator {
	return &Animator{
		board:  board,
		logger: log,
		token:  models.NewCancellationToken(),
	}
}

// SetSpeedSource wires the slider position (1..100) into the animator.
func (a *Animator) SetSpeedSource(speed func() float64) {
	a.speed = speed
}

// SetReorderHandler is invoked after every swap with the bars' current
// order, so the records table can follow the animation.
func (a *Animator) SetReorderHandler(handler func([]models.Student)) {
	a.onReorder = handler
}

// SetFinishedHandler is invoked when a run completes or is stopped.
func (a *Animator) SetFinishedHandler(handler func(algorithm string, cancelled bool)) {
	a.onFinished = handler
}

// Running reports whether an animation slot is held.
func (a *Animator) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}

// TryAcquire reserves the single animation slot. Callers must reserve
// before loading the board so two starts can never interleave.
func (a *Animator) TryAcquire() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.running {
		return false
	}
	a.running = true
	return true
}

// Release frees the slot without running, for callers that acquired
// it but could not start.
func (a *Animator) Release() {
	a.mu.Lock()
	a.running = false
	a.mu.Unlock()
}

// Start plays the trace on the already-acquired slot.
func (a *Animator) Start(algorithm string, trace sorting.Trace) {
	a.token.Reset()
	a.logger.Info("Animator", "animation started", map[string]interface{}{
		"algorithm": algorithm,
		"steps":     len(trace),
		"bars":      a.board.Count(),
	})

	go a.run(algorithm, trace)
}

// Stop requests cancellation; the worker exits between frames.
func (a *Animator) Stop() {
	a.token.Cancel()
}

// Shutdown stops any running animation.
func (a *Animator) Shutdown() {
	a.Stop()
	a.logger.Info("Animator", "shutdown", nil)
}

// playState tracks the lasting highlights of a run. The worker owns
// the single mutable instance; UI closures only ever see copies.
type playState struct {
	key      int
	keyColor color.Color
	prefix   int
	done     bool
}

func newPlayState() playState {
	return playState{key: -1, keyColor: ColorKey, prefix: -1}
}

// colorFor is the lasting color of slot i, ignoring transient compare
// flashes.
func (s playState) colorFor(i int) color.Color {
	switch {
	case s.done:
		return ColorDone
	case i <= s.prefix:
		return ColorPass
	case i == s.key:
		return s.keyColor
	default:
		return ColorBase
	}
}

func (a *Animator) run(algorithm string, trace sorting.Trace) {
	state := newPlayState()

	cancelled := false
	for _, step := range trace {
		if a.token.IsCancelled() {
			cancelled = true
			break
		}
		a.apply(&state, step)
	}

	a.Release()

	a.logger.Info("Animator", "animation finished", map[string]interface{}{
		"algorithm": algorithm,
		"cancelled": cancelled,
	})

	if a.onReorder != nil {
		a.onReorder(a.board.Students())
	}
	if a.onFinished != nil {
		a.onFinished(algorithm, cancelled)
	}
}

func (a *Animator) apply(state *playState, step sorting.Step) {
	switch step.Op {
	case sorting.OpKey:
		previous := state.key
		state.key = step.I
		state.keyColor = ColorKey
		snapshot := *state
		fyne.Do(func() {
			if previous >= 0 && previous != snapshot.key {
				a.board.SetFill(previous, snapshot.colorFor(previous))
			}
			a.board.SetFill(snapshot.key, ColorKey)
		})
		a.pause()

	case sorting.OpCompare:
		i, j := step.I, step.J
		fyne.Do(func() {
			a.board.SetFill(i, ColorCompare)
			a.board.SetFill(j, ColorCompare)
		})
		a.pause()
		a.restore(*state)

	case sorting.OpSwap:
		a.animateSwap(step.I, step.J)
		// The key highlight travels with its bar and shows
		// pass-green once it has moved, like the original palette.
		switch state.key {
		case step.I:
			state.key = step.J
			state.keyColor = ColorPass
		case step.J:
			state.key = step.I
			state.keyColor = ColorPass
		}
		a.restore(*state)
		if a.onReorder != nil {
			a.onReorder(a.board.Students())
		}
		a.pause()

	case sorting.OpPassDone:
		state.key = -1
		a.restore(*state)
		a.pause()

	case sorting.OpSortedPrefix:
		state.key = -1
		state.prefix = step.I
		a.restore(*state)
		a.pause()

	case sorting.OpDone:
		state.key = -1
		state.done = true
		a.restore(*state)
	}
}

func (a *Animator) restore(state playState) {
	fyne.Do(func() {
		for i := 0; i < a.board.Count(); i++ {
			a.board.SetFill(i, state.colorFor(i))
		}
	})
}

// animateSwap lifts both bars, slides them past each other and drops
// them, then exchanges the slot bookkeeping.
func (a *Animator) animateSwap(i, j int) {
	distance := a.board.SlotDistance(i, j)

	a.movePhase(i, j, 0, -liftHeight, 0, -liftHeight)
	a.movePhase(i, j, distance, 0, -distance, 0)
	a.movePhase(i, j, 0, liftHeight, 0, liftHeight)

	fyne.Do(func() {
		a.board.SwapSlots(i, j)
	})
}

func (a *Animator) movePhase(i, j int, dxi, dyi, dxj, dyj float32) {
	for frame := 0; frame < swapFrames; frame++ {
		if a.token.IsCancelled() {
			// Finish the motion in one jump so the board stays
			// consistent with the slot bookkeeping.
			remaining := float32(swapFrames - frame)
			fyne.Do(func() {
				a.board.MoveBarBy(i, dxi/swapFrames*remaining, dyi/swapFrames*remaining)
				a.board.MoveBarBy(j, dxj/swapFrames*remaining, dyj/swapFrames*remaining)
			})
			return
		}
		fyne.Do(func() {
			a.board.MoveBarBy(i, dxi/swapFrames, dyi/swapFrames)
			a.board.MoveBarBy(j, dxj/swapFrames, dyj/swapFrames)
		})
		time.Sleep(a.frameDelay())
	}
}

// stepDelay maps the slider position onto the pause between steps,
// the same curve the speed control always had: (101-speed)/700 s.
func (a *Animator) stepDelay() time.Duration {
	speed := defaultRate
	if a.speed != nil {
		speed = a.speed()
	}
	if speed < 1 {
		speed = 1
	}
	if speed > 100 {
		speed = 100
	}

	delay := time.Duration((101 - speed) / 700 * float64(time.Second))
	if delay < time.Millisecond {
		delay = time.Millisecond
	}
	return delay
}

func (a *Animator) frameDelay() time.Duration {
	delay := a.stepDelay() / 4
	if delay < time.Millisecond {
		delay = time.Millisecond
	}
	return delay
}

func (a *Animator) pause() {
	time.Sleep(a.stepDelay())
}
